package domain

// AggregatePeriod é o rótulo usado quando a subcategoria é informada como agregado de 6 meses
const AggregatePeriod = "6M"

// CategoryPeriod representa o faturamento de mercado de uma categoria macro em um período
type CategoryPeriod struct {
	Category  string  `json:"category"`
	Period    string  `json:"period"`
	Revenue   float64 `json:"revenue"`
	Units     int64   `json:"units"`
	AvgTicket float64 `json:"avg_ticket"`
}

// NewCategoryPeriod cria um período já com o ticket médio calculado
func NewCategoryPeriod(category, period string, revenue float64, units int64) CategoryPeriod {
	return CategoryPeriod{
		Category:  category,
		Period:    period,
		Revenue:   revenue,
		Units:     units,
		AvgTicket: AvgTicket(revenue, units),
	}
}

// SubcategoryEntry é um lançamento (mensal ou agregado) de uma subcategoria
type SubcategoryEntry struct {
	Period    string  `json:"period"`
	Revenue   float64 `json:"revenue"`
	Units     int64   `json:"units"`
	AvgTicket float64 `json:"avg_ticket"`
}

// NewSubcategoryEntry cria um lançamento já com o ticket médio calculado
func NewSubcategoryEntry(period string, revenue float64, units int64) SubcategoryEntry {
	return SubcategoryEntry{
		Period:    period,
		Revenue:   revenue,
		Units:     units,
		AvgTicket: AvgTicket(revenue, units),
	}
}

// SubcategoryRecord agrupa os lançamentos de uma subcategoria dentro da categoria macro
type SubcategoryRecord struct {
	Category string             `json:"category"`
	Name     string             `json:"name"`
	Entries  []SubcategoryEntry `json:"entries"`
}

// SubcategorySummary é a visão consolidada (soma dos lançamentos) de uma subcategoria
type SubcategorySummary struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Units     int64   `json:"units"`
	AvgTicket float64 `json:"avg_ticket"`
	Months    int     `json:"months"`
}

// Summary consolida os lançamentos somando faturamento e unidades
func (r SubcategoryRecord) Summary() SubcategorySummary {
	summary := SubcategorySummary{
		Category: r.Category,
		Name:     r.Name,
		Months:   len(r.Entries),
	}

	for _, entry := range r.Entries {
		summary.Revenue += entry.Revenue
		summary.Units += entry.Units
	}
	summary.AvgTicket = AvgTicket(summary.Revenue, summary.Units)

	return summary
}

// CategorySummary resume o histórico de uma categoria macro
type CategorySummary struct {
	Category      string  `json:"category"`
	Periods       int     `json:"periods"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRevenue    float64 `json:"avg_revenue"`
	AvgTicket     float64 `json:"avg_ticket"`
	Subcategories int     `json:"subcategories"`
}

// CategorySnapshot é a foto de uma categoria com seus períodos e subcategorias
type CategorySnapshot struct {
	Category      string               `json:"category"`
	Periods       []CategoryPeriod     `json:"periods"`
	Subcategories []SubcategorySummary `json:"subcategories"`
}

// SessionSnapshot representa o estado completo de uma sessão de análise
type SessionSnapshot struct {
	ID         string             `json:"id,omitempty"`
	Profile    *ClientProfile     `json:"profile,omitempty"`
	Categories []CategorySnapshot `json:"categories"`
}
