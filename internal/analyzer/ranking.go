package analyzer

import (
	"sort"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

// Pesos da pontuação: tamanho de mercado, enquadramento de preço e margem
const (
	MarketWeight = 0.4
	FitWeight    = 0.4
	MarginWeight = 0.2
)

// Pontuação do pilar de preço por faixa
const (
	FitScoreWithin = 1.0
	FitScoreBelow  = 0.7
	FitScoreAbove  = 0.3
)

// Limites de classificação
const (
	FocusThreshold = 0.7
	OKThreshold    = 0.4
)

func fitScore(band domain.FitBand) float64 {
	switch band {
	case domain.FitWithin:
		return FitScoreWithin
	case domain.FitBelow:
		return FitScoreBelow
	default:
		return FitScoreAbove
	}
}

// Score calcula a pontuação composta [0,1] de uma subcategoria.
// maxRevenue é o maior faturamento entre as subcategorias da mesma categoria.
func Score(revenue, maxRevenue float64, band domain.FitBand, margin float64) float64 {
	marketScore := 0.0
	if maxRevenue > 0 {
		marketScore = revenue / maxRevenue
	}

	score := MarketWeight*marketScore + FitWeight*fitScore(band) + MarginWeight*margin
	return clamp(score, 0, 1)
}

// Classify transforma pontuação e enquadramento em status
func Classify(score float64, band domain.FitBand) domain.Status {
	switch {
	case score >= FocusThreshold && band == domain.FitWithin:
		return domain.StatusFocus
	case score >= OKThreshold || band == domain.FitWithin:
		return domain.StatusOK
	default:
		return domain.StatusAvoid
	}
}

// GenerateRanking ordena as subcategorias por pontuação decrescente.
// Categoria vazia gera o ranking de todas as categorias, com a pontuação
// de mercado normalizada dentro de cada categoria.
func (s *Session) GenerateRanking(category string) []domain.RankingEntry {
	categories := []string{category}
	if category == "" {
		categories = s.subcategories.Categories()
	}

	entries := []domain.RankingEntry{}
	for _, c := range categories {
		entries = append(entries, s.rankCategory(c)...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

func (s *Session) rankCategory(category string) []domain.RankingEntry {
	summaries := s.subcategories.Summaries(category)
	if len(summaries) == 0 {
		return nil
	}

	maxRevenue := 0.0
	for _, sub := range summaries {
		if sub.Revenue > maxRevenue {
			maxRevenue = sub.Revenue
		}
	}

	profile, _ := s.Profile()
	clientTicket := profile.Ticket()

	entries := make([]domain.RankingEntry, 0, len(summaries))
	for _, sub := range summaries {
		fit := EvaluateFit(clientTicket, sub.AvgTicket, profile.Tolerance)
		score := Score(sub.Revenue, maxRevenue, fit.Band, profile.Margin)

		entries = append(entries, domain.RankingEntry{
			Category:     category,
			Subcategory:  sub.Name,
			MarketSize:   sub.Revenue,
			Units:        sub.Units,
			MarketTicket: sub.AvgTicket,
			ClientTicket: clientTicket,
			Score:        score,
			Status:       Classify(score, fit.Band),
			Band:         fit.Band,
			Reading:      fit.Reading,
		})
	}

	return entries
}

func (s *Session) rankingEntry(category, subcategory string) *domain.RankingEntry {
	for _, entry := range s.GenerateRanking(category) {
		if entry.Subcategory == subcategory {
			e := entry
			return &e
		}
	}
	return nil
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
