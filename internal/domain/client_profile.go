// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// DefaultTolerance é a faixa de preço aceita em torno do ticket de mercado (±20%)
const DefaultTolerance = 0.20

// ClientProfile representa os dados do seller analisado na sessão
type ClientProfile struct {
	Company        string   `json:"company"`
	Category       string   `json:"category"`
	TicketPrice    float64  `json:"ticket_price"`
	Margin         float64  `json:"margin"`
	Revenue3P      float64  `json:"revenue_last_3_periods"`
	Units3P        int64    `json:"units_last_3_periods"`
	Tolerance      float64  `json:"tolerance"`
	CustomTicket   *float64 `json:"custom_ticket_price,omitempty"`
	CAC            *float64 `json:"cac,omitempty"`
	MarketingSpend *float64 `json:"marketing_spend,omitempty"`
}

// ProfileInput representa os dados brutos informados pelo usuário.
// MarginPct e TolerancePct aceitam tanto percentuais (15) quanto frações (0.15).
type ProfileInput struct {
	Company        string
	Category       string
	TicketPrice    float64
	MarginPct      float64
	Revenue3P      float64
	Units3P        int64
	TolerancePct   *float64
	CustomTicket   *float64
	CAC            *float64
	MarketingSpend *float64
}

// Ticket retorna o ticket efetivo do cliente: custom > declarado > faturamento/unidades
func (p ClientProfile) Ticket() float64 {
	if p.CustomTicket != nil && *p.CustomTicket > 0 {
		return *p.CustomTicket
	}
	if p.TicketPrice > 0 {
		return p.TicketPrice
	}
	return AvgTicket(p.Revenue3P, p.Units3P)
}

// MonthlyBaseline é o faturamento mensal atual (média dos últimos 3 períodos)
func (p ClientProfile) MonthlyBaseline() float64 {
	return p.Revenue3P / 3
}

// Baseline6M anualiza o faturamento de 3 períodos para uma janela de 6 meses
func (p ClientProfile) Baseline6M() float64 {
	return p.Revenue3P * 2
}

// NormalizeFraction interpreta valores > 1 como percentuais
func NormalizeFraction(value float64) float64 {
	if value > 1 {
		return value / 100
	}
	return value
}

// AvgTicket calcula faturamento/unidades, retornando 0 quando não há unidades
func AvgTicket(revenue float64, units int64) float64 {
	if units <= 0 {
		return 0
	}
	return revenue / float64(units)
}
