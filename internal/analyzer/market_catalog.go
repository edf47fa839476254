package analyzer

import (
	"fmt"
	"strings"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

// MarketCatalog guarda o histórico de faturamento de mercado por categoria macro.
// As categorias e os períodos preservam a ordem de inserção.
type MarketCatalog struct {
	periods map[string][]domain.CategoryPeriod
	order   []string
}

func NewMarketCatalog() *MarketCatalog {
	return &MarketCatalog{
		periods: make(map[string][]domain.CategoryPeriod),
	}
}

// Add inclui um período na categoria, criando a categoria se necessário
func (c *MarketCatalog) Add(category, period string, revenue float64, units int64) error {
	category = strings.TrimSpace(category)
	period = strings.TrimSpace(period)

	if err := checkName("categoria", category); err != nil {
		return err
	}
	if err := checkName("período", period); err != nil {
		return err
	}
	if err := checkAmount("faturamento", revenue); err != nil {
		return err
	}
	if err := checkUnits("unidades", units); err != nil {
		return err
	}

	if c.indexOf(category, period) >= 0 {
		return fmt.Errorf("%w: %s/%s", ErrDuplicatePeriod, category, period)
	}

	if _, ok := c.periods[category]; !ok {
		c.order = append(c.order, category)
	}
	c.periods[category] = append(c.periods[category], domain.NewCategoryPeriod(category, period, revenue, units))

	return nil
}

// Edit substitui faturamento e unidades de um período existente.
// Retorna false sem alterar nada quando o período não existe.
func (c *MarketCatalog) Edit(category, period string, revenue float64, units int64) (bool, error) {
	if err := checkAmount("faturamento", revenue); err != nil {
		return false, err
	}
	if err := checkUnits("unidades", units); err != nil {
		return false, err
	}

	idx := c.indexOf(category, period)
	if idx < 0 {
		return false, nil
	}

	c.periods[category][idx] = domain.NewCategoryPeriod(category, period, revenue, units)
	return true, nil
}

// Remove exclui um período; a categoria some junto com o último período
func (c *MarketCatalog) Remove(category, period string) bool {
	idx := c.indexOf(category, period)
	if idx < 0 {
		return false
	}

	periods := c.periods[category]
	c.periods[category] = append(periods[:idx:idx], periods[idx+1:]...)

	if len(c.periods[category]) == 0 {
		c.removeCategory(category)
	}

	return true
}

// Has indica se a categoria possui ao menos um período
func (c *MarketCatalog) Has(category string) bool {
	return len(c.periods[category]) > 0
}

// Categories lista as categorias em ordem de inserção
func (c *MarketCatalog) Categories() []string {
	return append([]string(nil), c.order...)
}

// Periods retorna uma cópia dos períodos da categoria, na ordem de inserção
func (c *MarketCatalog) Periods(category string) []domain.CategoryPeriod {
	return append([]domain.CategoryPeriod{}, c.periods[category]...)
}

// Summary resume o histórico da categoria; ok=false quando ela não existe
func (c *MarketCatalog) Summary(category string) (domain.CategorySummary, bool) {
	periods := c.periods[category]
	if len(periods) == 0 {
		return domain.CategorySummary{}, false
	}

	summary := domain.CategorySummary{
		Category: category,
		Periods:  len(periods),
	}

	var units int64
	for _, p := range periods {
		summary.TotalRevenue += p.Revenue
		units += p.Units
	}
	summary.AvgRevenue = summary.TotalRevenue / float64(len(periods))
	summary.AvgTicket = domain.AvgTicket(summary.TotalRevenue, units)

	return summary, true
}

func (c *MarketCatalog) indexOf(category, period string) int {
	for i, p := range c.periods[category] {
		if p.Period == period {
			return i
		}
	}
	return -1
}

func (c *MarketCatalog) removeCategory(category string) bool {
	if _, ok := c.periods[category]; !ok {
		return false
	}

	delete(c.periods, category)
	for i, name := range c.order {
		if name == category {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}

	return true
}

func (c *MarketCatalog) rename(category, newName string) {
	periods, ok := c.periods[category]
	if !ok {
		return
	}

	for i := range periods {
		periods[i].Category = newName
	}
	delete(c.periods, category)
	c.periods[newName] = periods

	for i, name := range c.order {
		if name == category {
			c.order[i] = newName
			break
		}
	}
}
