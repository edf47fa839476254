// Package analyzer implementa o motor de priorização de subcategorias:
// catálogos de mercado, ranking, cenários, tendência, confiança, alertas e plano de ação.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

// DefaultShareTargets são as metas de participação usadas quando nenhuma é informada
func DefaultShareTargets() []domain.ShareTarget {
	return []domain.ShareTarget{
		{Name: "Conservative", Share: 0.002},
		{Name: "Likely", Share: 0.005},
		{Name: "Optimistic", Share: 0.01},
	}
}

// Option configura uma Session
type Option func(*Session)

// WithDefaultTolerance define a tolerância usada quando o perfil não informa uma
func WithDefaultTolerance(tolerance float64) Option {
	return func(s *Session) {
		if tolerance > 0 {
			s.defaultTolerance = domain.NormalizeFraction(tolerance)
		}
	}
}

// WithShareTargets define as metas de participação padrão dos cenários
func WithShareTargets(targets []domain.ShareTarget) Option {
	return func(s *Session) {
		if len(targets) > 0 {
			s.shareTargets = append([]domain.ShareTarget(nil), targets...)
		}
	}
}

// Session é a sessão de análise: perfil do cliente, catálogo de mercado e de subcategorias.
// Não é segura para uso concorrente, quem a possui serializa o acesso.
type Session struct {
	profile    domain.ClientProfile
	hasProfile bool

	market        *MarketCatalog
	subcategories *SubcategoryCatalog

	defaultTolerance float64
	shareTargets     []domain.ShareTarget
}

// NewSession cria uma sessão vazia
func NewSession(opts ...Option) *Session {
	s := &Session{
		market:           NewMarketCatalog(),
		subcategories:    NewSubcategoryCatalog(),
		defaultTolerance: domain.DefaultTolerance,
		shareTargets:     DefaultShareTargets(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetProfile substitui o perfil do cliente, normalizando margem e tolerância
func (s *Session) SetProfile(input domain.ProfileInput) (domain.ClientProfile, error) {
	company := strings.TrimSpace(input.Company)
	category := strings.TrimSpace(input.Category)
	if err := checkName("empresa", company); err != nil {
		return domain.ClientProfile{}, err
	}
	if err := checkName("categoria", category); err != nil {
		return domain.ClientProfile{}, err
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"ticket", input.TicketPrice},
		{"margem", input.MarginPct},
		{"faturamento", input.Revenue3P},
	}
	for _, amount := range amounts {
		if err := checkAmount(amount.field, amount.value); err != nil {
			return domain.ClientProfile{}, err
		}
	}
	if err := checkUnits("unidades", input.Units3P); err != nil {
		return domain.ClientProfile{}, err
	}

	margin := domain.NormalizeFraction(input.MarginPct)
	if margin > 1 {
		return domain.ClientProfile{}, fmt.Errorf("%w: margem %v", ErrOutOfRange, input.MarginPct)
	}

	tolerance := s.defaultTolerance
	if input.TolerancePct != nil {
		if err := checkAmount("tolerância", *input.TolerancePct); err != nil {
			return domain.ClientProfile{}, err
		}
		tolerance = domain.NormalizeFraction(*input.TolerancePct)
		if tolerance > 1 {
			return domain.ClientProfile{}, fmt.Errorf("%w: tolerância %v", ErrOutOfRange, *input.TolerancePct)
		}
	}

	optional := []struct {
		field string
		value *float64
	}{
		{"ticket customizado", input.CustomTicket},
		{"CAC", input.CAC},
		{"investimento em marketing", input.MarketingSpend},
	}
	for _, amount := range optional {
		if amount.value == nil {
			continue
		}
		if err := checkAmount(amount.field, *amount.value); err != nil {
			return domain.ClientProfile{}, err
		}
	}

	s.profile = domain.ClientProfile{
		Company:        company,
		Category:       category,
		TicketPrice:    input.TicketPrice,
		Margin:         margin,
		Revenue3P:      input.Revenue3P,
		Units3P:        input.Units3P,
		Tolerance:      tolerance,
		CustomTicket:   copyFloat(input.CustomTicket),
		CAC:            copyFloat(input.CAC),
		MarketingSpend: copyFloat(input.MarketingSpend),
	}
	s.hasProfile = true

	return s.profile, nil
}

// Profile retorna o perfil atual; sem perfil, um perfil zerado com a tolerância padrão
func (s *Session) Profile() (domain.ClientProfile, bool) {
	if !s.hasProfile {
		return domain.ClientProfile{Tolerance: s.defaultTolerance}, false
	}
	return s.profile, true
}

// Market expõe o catálogo de mercado por categoria
func (s *Session) Market() *MarketCatalog {
	return s.market
}

// Subcategories expõe o catálogo de subcategorias
func (s *Session) Subcategories() *SubcategoryCatalog {
	return s.subcategories
}

// ShareTargets retorna as metas de participação padrão da sessão
func (s *Session) ShareTargets() []domain.ShareTarget {
	return append([]domain.ShareTarget(nil), s.shareTargets...)
}

// RenameCategory renomeia a categoria nos dois catálogos.
// Retorna false quando a categoria não existe em nenhum deles.
func (s *Session) RenameCategory(category, newName string) (bool, error) {
	newName = strings.TrimSpace(newName)
	if err := checkName("novo nome da categoria", newName); err != nil {
		return false, err
	}
	if !s.market.Has(category) && !s.subcategories.HasCategory(category) {
		return false, nil
	}
	if category == newName {
		return true, nil
	}
	if s.market.Has(newName) || s.subcategories.HasCategory(newName) {
		return false, fmt.Errorf("%w: %s", ErrDuplicateCategory, newName)
	}

	s.market.rename(category, newName)
	s.subcategories.renameCategory(category, newName)

	if s.hasProfile && s.profile.Category == category {
		s.profile.Category = newName
	}

	return true, nil
}

// RemoveCategory remove a categoria e todas as suas subcategorias
func (s *Session) RemoveCategory(category string) bool {
	removedMarket := s.market.removeCategory(category)
	removedSubs := s.subcategories.RemoveCategory(category)
	return removedMarket || removedSubs
}

// RemoveCategoryPeriod remove um período; quando era o último, a categoria
// deixa de existir e suas subcategorias são removidas junto
func (s *Session) RemoveCategoryPeriod(category, period string) bool {
	removed := s.market.Remove(category, period)
	if removed && !s.market.Has(category) {
		s.subcategories.RemoveCategory(category)
	}
	return removed
}

// Clear volta a sessão ao estado vazio
func (s *Session) Clear() {
	s.profile = domain.ClientProfile{}
	s.hasProfile = false
	s.market = NewMarketCatalog()
	s.subcategories = NewSubcategoryCatalog()
}

// Categories lista as categorias conhecidas em ordem de inserção
// (primeiro as do catálogo de mercado, depois as que só têm subcategorias)
func (s *Session) Categories() []string {
	seen := make(map[string]bool)
	var categories []string

	for _, category := range s.market.Categories() {
		seen[category] = true
		categories = append(categories, category)
	}
	for _, category := range s.subcategories.Categories() {
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}

	return categories
}

// Snapshot retorna uma cópia do estado completo da sessão
func (s *Session) Snapshot() domain.SessionSnapshot {
	snapshot := domain.SessionSnapshot{Categories: []domain.CategorySnapshot{}}

	if profile, ok := s.Profile(); ok {
		snapshot.Profile = &profile
	}

	for _, category := range s.Categories() {
		snapshot.Categories = append(snapshot.Categories, domain.CategorySnapshot{
			Category:      category,
			Periods:       s.market.Periods(category),
			Subcategories: s.subcategories.Summaries(category),
		})
	}

	return snapshot
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
