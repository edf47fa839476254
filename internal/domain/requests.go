package domain

// ProfileRequest é o corpo de PUT /v1/sessions/:id/profile
type ProfileRequest struct {
	Company        string   `json:"company" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	TicketPrice    float64  `json:"ticket_price" validate:"gte=0"`
	MarginPct      float64  `json:"margin" validate:"gte=0,lte=100"`
	Revenue3P      float64  `json:"revenue_last_3_periods" validate:"gte=0"`
	Units3P        int64    `json:"units_last_3_periods" validate:"gte=0"`
	TolerancePct   *float64 `json:"tolerance,omitempty" validate:"omitempty,gte=0,lte=100"`
	CustomTicket   *float64 `json:"custom_ticket_price,omitempty" validate:"omitempty,gte=0"`
	CAC            *float64 `json:"cac,omitempty" validate:"omitempty,gte=0"`
	MarketingSpend *float64 `json:"marketing_spend,omitempty" validate:"omitempty,gte=0"`
}

func (r ProfileRequest) ToInput() ProfileInput {
	return ProfileInput{
		Company:        r.Company,
		Category:       r.Category,
		TicketPrice:    r.TicketPrice,
		MarginPct:      r.MarginPct,
		Revenue3P:      r.Revenue3P,
		Units3P:        r.Units3P,
		TolerancePct:   r.TolerancePct,
		CustomTicket:   r.CustomTicket,
		CAC:            r.CAC,
		MarketingSpend: r.MarketingSpend,
	}
}

// CategoryPeriodRequest inclui um período no histórico da categoria
type CategoryPeriodRequest struct {
	Period  string  `json:"period" validate:"required"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Units   int64   `json:"units" validate:"gte=0"`
}

// PeriodValuesRequest substitui os valores de um período existente
type PeriodValuesRequest struct {
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Units   int64   `json:"units" validate:"gte=0"`
}

type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// SubcategoryRequest cadastra uma subcategoria; com Period vira um lançamento mensal
type SubcategoryRequest struct {
	Name    string  `json:"name" validate:"required"`
	Period  string  `json:"period,omitempty"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Units   int64   `json:"units" validate:"gte=0"`
}

// EditSubcategoryRequest renomeia (Name opcional) e substitui os valores da subcategoria
type EditSubcategoryRequest struct {
	Name    string  `json:"name,omitempty"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Units   int64   `json:"units" validate:"gte=0"`
}
