package analyzer

import (
	"fmt"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

type recommendation struct {
	label  string
	action string
}

var recommendations = map[domain.Status]map[domain.PriceReading]recommendation{
	domain.StatusFocus: {
		domain.ReadingPriceOK:    {"SCALE AGGRESSIVELY", "Increase ad spend ~20% and secure 60-day stock"},
		domain.ReadingRaisePrice: {"ADJUST MARGIN", "Raise price gradually 3-5%"},
	},
	domain.StatusOK: {
		domain.ReadingPriceOK: {"MAINTAIN & OPTIMIZE", "Keep current price and optimize listings and ads"},
	},
	domain.StatusAvoid: {
		domain.ReadingReducePrice: {"REVIEW COSTS", "Review cost structure before competing on price"},
	},
}

var defaultRecommendation = recommendation{"MONITOR", "Track market share and price monthly"}

var priorities = map[domain.Status]domain.Priority{
	domain.StatusFocus: domain.PriorityMaximum,
	domain.StatusOK:    domain.PriorityHigh,
	domain.StatusAvoid: domain.PriorityMedium,
}

// Recommend mapeia (status, leitura de preço) para o rótulo e a ação imediata
func Recommend(status domain.Status, reading domain.PriceReading) (string, string) {
	if byReading, ok := recommendations[status]; ok {
		if rec, ok := byReading[reading]; ok {
			return rec.label, rec.action
		}
	}
	return defaultRecommendation.label, defaultRecommendation.action
}

// ActionPlan gera uma recomendação por subcategoria, na ordem do ranking
func (s *Session) ActionPlan(category string) []domain.ActionItem {
	ranking := s.GenerateRanking(category)
	plan := make([]domain.ActionItem, 0, len(ranking))

	for _, entry := range ranking {
		plan = append(plan, actionItem(entry))
	}

	return plan
}

// ActionFor retorna a recomendação de uma subcategoria ou nil quando ela não existe
func (s *Session) ActionFor(category, subcategory string) *domain.ActionItem {
	entry := s.rankingEntry(category, subcategory)
	if entry == nil {
		return nil
	}

	item := actionItem(*entry)
	return &item
}

func actionItem(entry domain.RankingEntry) domain.ActionItem {
	label, action := Recommend(entry.Status, entry.Reading)

	return domain.ActionItem{
		Category:            entry.Category,
		Subcategory:         entry.Subcategory,
		Status:              entry.Status,
		Reading:             entry.Reading,
		Score:               entry.Score,
		Priority:            priorities[entry.Status],
		ShortRecommendation: label,
		ImmediateAction:     action,
		Rationale: []string{
			fmt.Sprintf("Score %.2f (%s)", entry.Score, entry.Status),
			fmt.Sprintf("Ticket cliente %.2f vs mercado %.2f: %s", entry.ClientTicket, entry.MarketTicket, entry.Reading),
			fmt.Sprintf("Mercado de %.2f em 6 meses", entry.MarketSize),
		},
	}
}
