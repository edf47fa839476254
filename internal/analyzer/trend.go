package analyzer

import (
	"math"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

const (
	trendThresholdPct = 2.0
	projectedPeriods  = 3
)

// Trend calcula o crescimento médio da categoria e projeta os próximos 3 períodos
// compondo o faturamento mensal atual do cliente
func (s *Session) Trend(category string) domain.TrendResult {
	profile, _ := s.Profile()
	periods := s.market.Periods(category)

	result := domain.TrendResult{
		Category:    category,
		Direction:   domain.TrendStable,
		Baseline:    profile.MonthlyBaseline(),
		PeriodsUsed: len(periods),
	}

	if len(periods) >= 2 {
		result.MonthlyGrowthPct = meanGrowth(periods)
		switch {
		case result.MonthlyGrowthPct > trendThresholdPct:
			result.Direction = domain.TrendHigh
		case result.MonthlyGrowthPct < -trendThresholdPct:
			result.Direction = domain.TrendLow
		}
	}

	result.Months = make([]domain.MonthlyProjection, 0, projectedPeriods)
	for i := 1; i <= projectedPeriods; i++ {
		revenue := result.Baseline * math.Pow(1+result.MonthlyGrowthPct/100, float64(i))

		month := domain.MonthlyProjection{Month: i, Revenue: revenue}
		if result.Baseline > 0 {
			month.GrowthVsBaselinePct = (revenue - result.Baseline) / result.Baseline * 100
		}

		result.Months = append(result.Months, month)
		result.Projection3P += revenue
	}

	return result
}

func meanGrowth(periods []domain.CategoryPeriod) float64 {
	var total float64
	for i := 1; i < len(periods); i++ {
		total += pctChange(periods[i-1].Revenue, periods[i].Revenue)
	}
	return total / float64(len(periods)-1)
}

func pctChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	change := (current - previous) / previous * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0
	}
	return change
}
