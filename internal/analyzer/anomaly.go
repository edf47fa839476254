package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

const criticalDivergencePct = 40.0

// DetectAnomalies percorre o ranking da categoria procurando divergência
// extrema de preço e mercados grandes classificados como EVITAR
func (s *Session) DetectAnomalies(category string) []domain.Anomaly {
	anomalies := []domain.Anomaly{}

	ranking := s.GenerateRanking(category)
	if len(ranking) == 0 {
		return anomalies
	}

	median := medianMarketSize(ranking)

	for _, entry := range ranking {
		divergence := priceDivergence(entry.ClientTicket, entry.MarketTicket)

		switch {
		case divergence > criticalDivergencePct:
			anomalies = append(anomalies, domain.Anomaly{
				Type:          domain.AnomalyCriticalPriceHigh,
				Category:      entry.Category,
				Subcategory:   entry.Subcategory,
				Message:       priceMessage("acima", divergence),
				Severity:      domain.SeverityHigh,
				DivergencePct: finiteOrZero(divergence),
			})
		case divergence < -criticalDivergencePct:
			anomalies = append(anomalies, domain.Anomaly{
				Type:          domain.AnomalyCriticalPriceLow,
				Category:      entry.Category,
				Subcategory:   entry.Subcategory,
				Message:       priceMessage("abaixo", divergence),
				Severity:      domain.SeverityMedium,
				DivergencePct: divergence,
			})
		}

		if entry.Status == domain.StatusAvoid && entry.MarketSize > median {
			anomalies = append(anomalies, domain.Anomaly{
				Type:          domain.AnomalyMissedOpportunity,
				Category:      entry.Category,
				Subcategory:   entry.Subcategory,
				Message:       fmt.Sprintf("Mercado acima da mediana da categoria classificado como %s", entry.Status),
				Severity:      domain.SeverityLow,
				DivergencePct: finiteOrZero(divergence),
			})
		}
	}

	return anomalies
}

// priceDivergence retorna a diferença percentual do ticket do cliente para o de mercado.
// Sem ticket de mercado a divergência é tratada como máxima.
func priceDivergence(clientTicket, marketTicket float64) float64 {
	if marketTicket <= 0 {
		return math.Inf(1)
	}
	return (clientTicket - marketTicket) / marketTicket * 100
}

func priceMessage(direction string, divergence float64) string {
	if math.IsInf(divergence, 0) {
		return "Subcategoria sem ticket de mercado para comparação de preço"
	}
	return fmt.Sprintf("Ticket %.1f%% %s do mercado", math.Abs(divergence), direction)
}

func medianMarketSize(ranking []domain.RankingEntry) float64 {
	sizes := make([]float64, len(ranking))
	for i, entry := range ranking {
		sizes[i] = entry.MarketSize
	}
	sort.Float64s(sizes)

	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}

func finiteOrZero(value float64) float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
