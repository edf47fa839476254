package analyzer

import "github.com/vfg2006/market-analyzer-api/internal/domain"

// EvaluateFit compara o ticket do cliente com a faixa [mercado*(1-tol), mercado*(1+tol)].
// Os limites são inclusivos. Sem ticket de mercado o cliente é tratado como acima da faixa.
func EvaluateFit(clientTicket, marketTicket, tolerance float64) domain.Fit {
	limits := ticketLimits(marketTicket, tolerance)

	fit := domain.Fit{
		LowerBound:   limits.LowerBound,
		UpperBound:   limits.UpperBound,
		ClientTicket: clientTicket,
		MarketTicket: marketTicket,
	}

	switch {
	case marketTicket <= 0:
		fit.Band, fit.Reading = domain.FitAbove, domain.ReadingReducePrice
	case clientTicket < limits.LowerBound:
		fit.Band, fit.Reading = domain.FitBelow, domain.ReadingRaisePrice
	case clientTicket > limits.UpperBound:
		fit.Band, fit.Reading = domain.FitAbove, domain.ReadingReducePrice
	default:
		fit.Band, fit.Reading = domain.FitWithin, domain.ReadingPriceOK
	}

	return fit
}

func ticketLimits(marketTicket, tolerance float64) domain.TicketLimits {
	return domain.TicketLimits{
		MarketTicket: marketTicket,
		LowerBound:   marketTicket * (1 - tolerance),
		UpperBound:   marketTicket * (1 + tolerance),
		Tolerance:    tolerance,
	}
}

// TicketLimits retorna a faixa de ticket aceita para a subcategoria
func (s *Session) TicketLimits(category, subcategory string) *domain.TicketLimits {
	summary, ok := s.subcategories.Summary(category, subcategory)
	if !ok {
		return nil
	}

	profile, _ := s.Profile()
	limits := ticketLimits(summary.AvgTicket, profile.Tolerance)
	return &limits
}

// CurrentShare retorna a participação atual do cliente (%) no mercado da subcategoria
func (s *Session) CurrentShare(category, subcategory string) float64 {
	summary, ok := s.subcategories.Summary(category, subcategory)
	if !ok || summary.Revenue <= 0 {
		return 0
	}

	profile, _ := s.Profile()
	return profile.Baseline6M() / summary.Revenue * 100
}
