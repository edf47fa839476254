package analyzer

import (
	"math"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

const (
	minHistoryPeriods     = 3
	maxTicketDivergence   = 0.5
	penaltyShortHistory   = 30
	penaltyTicketDiverges = 20
	penaltyNoBaseline     = 40
)

const (
	ReasonInsufficientHistory = "insufficient market history"
	ReasonTicketOutsideMarket = "ticket far outside market average"
	ReasonNoClientBaseline    = "no client revenue baseline"
)

// Confidence pontua (0-100) a confiabilidade das projeções da subcategoria.
// Retorna nil quando a subcategoria não existe.
func (s *Session) Confidence(category, subcategory string) *domain.ConfidenceResult {
	summary, ok := s.subcategories.Summary(category, subcategory)
	if !ok {
		return nil
	}

	profile, _ := s.Profile()
	result := &domain.ConfidenceResult{Score: 100, Reasons: []string{}}

	if len(s.market.Periods(category)) < minHistoryPeriods {
		result.Score -= penaltyShortHistory
		result.Reasons = append(result.Reasons, ReasonInsufficientHistory)
	}

	if ticketDiverges(profile.Ticket(), summary.AvgTicket) {
		result.Score -= penaltyTicketDiverges
		result.Reasons = append(result.Reasons, ReasonTicketOutsideMarket)
	}

	if profile.Revenue3P <= 0 {
		result.Score -= penaltyNoBaseline
		result.Reasons = append(result.Reasons, ReasonNoClientBaseline)
	}

	if result.Score < 0 {
		result.Score = 0
	}

	switch {
	case result.Score >= 80:
		result.Level = domain.ConfidenceHigh
	case result.Score >= 50:
		result.Level = domain.ConfidenceMedium
	default:
		result.Level = domain.ConfidenceLow
	}

	return result
}

func ticketDiverges(clientTicket, marketTicket float64) bool {
	if marketTicket <= 0 {
		return true
	}
	return math.Abs(clientTicket-marketTicket)/marketTicket > maxTicketDivergence
}
