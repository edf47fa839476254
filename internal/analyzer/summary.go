package analyzer

import "github.com/vfg2006/market-analyzer-api/internal/domain"

// CategorySummaries resume cada categoria do catálogo de mercado, em ordem de inserção
func (s *Session) CategorySummaries() []domain.CategorySummary {
	summaries := []domain.CategorySummary{}

	for _, category := range s.market.Categories() {
		summary, ok := s.market.Summary(category)
		if !ok {
			continue
		}
		summary.Subcategories = s.subcategories.Count(category)
		summaries = append(summaries, summary)
	}

	return summaries
}

// Report reúne as saídas do motor para o relatório de uma subcategoria.
// Retorna nil quando a subcategoria não existe.
func (s *Session) Report(category, subcategory string) *domain.ReportData {
	if _, ok := s.subcategories.Summary(category, subcategory); !ok {
		return nil
	}

	profile, _ := s.Profile()

	return &domain.ReportData{
		Profile:     profile,
		Category:    category,
		Subcategory: subcategory,
		Confidence:  s.Confidence(category, subcategory),
		Categories:  s.CategorySummaries(),
		Ranking:     s.GenerateRanking(category),
		Scenarios:   s.SimulateScenarios(category, subcategory, nil),
		Trend:       s.Trend(category),
		Action:      s.ActionFor(category, subcategory),
	}
}
