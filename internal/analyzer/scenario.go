package analyzer

import (
	"math"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

// SimulateScenarios projeta faturamento e lucro de 6 meses para cada meta de participação.
// Sem metas informadas usa as metas padrão da sessão. Retorna nil quando a subcategoria não existe.
func (s *Session) SimulateScenarios(category, subcategory string, targets []domain.ShareTarget) *domain.ScenarioSimulation {
	summary, ok := s.subcategories.Summary(category, subcategory)
	if !ok {
		return nil
	}

	if len(targets) == 0 {
		targets = s.shareTargets
	}

	profile, _ := s.Profile()
	baseline := profile.Baseline6M()
	ticket := profile.Ticket()
	if ticket <= 0 {
		ticket = summary.AvgTicket
	}

	simulation := &domain.ScenarioSimulation{
		Category:     category,
		Subcategory:  subcategory,
		MarketSize:   summary.Revenue,
		MarketTicket: summary.AvgTicket,
		Baseline6M:   baseline,
		Scenarios:    make([]domain.ScenarioResult, 0, len(targets)),
	}
	if summary.Revenue > 0 {
		simulation.CurrentShare = baseline / summary.Revenue * 100
	}

	for _, target := range targets {
		revenue := summary.Revenue * target.Share
		profit := revenue * profile.Margin
		delta := revenue - baseline

		result := domain.ScenarioResult{
			Name:             target.Name,
			TargetShare:      target.Share,
			TicketUsed:       ticket,
			ProjectedRevenue: revenue,
			ProjectedProfit:  profit,
			Delta:            delta,
			GrowthPct:        growthPct(revenue, baseline),
			AdditionalProfit: profit - baseline*profile.Margin,
		}
		if ticket > 0 {
			result.ProjectedUnits = int64(math.Round(revenue / ticket))
		}

		simulation.Scenarios = append(simulation.Scenarios, result)
	}

	return simulation
}

func growthPct(projected, baseline float64) float64 {
	if baseline > 0 {
		return (projected - baseline) / baseline * 100
	}
	if projected > 0 {
		return 100
	}
	return 0
}
