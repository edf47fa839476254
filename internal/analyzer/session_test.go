package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSession_SetProfile(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.ProfileInput
		wantErr  error
		validate func(t *testing.T, profile domain.ClientProfile)
	}{
		{
			name: "Margem informada em percentual é convertida para fração",
			input: domain.ProfileInput{
				Company: "Loja", Category: "Ferramentas", TicketPrice: 200, MarginPct: 15, Revenue3P: 50000, Units3P: 250,
			},
			validate: func(t *testing.T, profile domain.ClientProfile) {
				assert.InDelta(t, 0.15, profile.Margin, 1e-9)
				assert.InDelta(t, domain.DefaultTolerance, profile.Tolerance, 1e-9)
			},
		},
		{
			name: "Margem já fracionária é mantida",
			input: domain.ProfileInput{
				Company: "Loja", Category: "Ferramentas", TicketPrice: 200, MarginPct: 0.15, TolerancePct: floatPtr(30),
			},
			validate: func(t *testing.T, profile domain.ClientProfile) {
				assert.InDelta(t, 0.15, profile.Margin, 1e-9)
				assert.InDelta(t, 0.30, profile.Tolerance, 1e-9)
			},
		},
		{
			name: "Ticket customizado tem precedência sobre o declarado",
			input: domain.ProfileInput{
				Company: "Loja", Category: "Ferramentas", TicketPrice: 200, CustomTicket: floatPtr(180),
			},
			validate: func(t *testing.T, profile domain.ClientProfile) {
				assert.Equal(t, 180.0, profile.Ticket())
			},
		},
		{
			name: "Ticket zerado é derivado de faturamento e unidades",
			input: domain.ProfileInput{
				Company: "Loja", Category: "Ferramentas", Revenue3P: 30000, Units3P: 150,
			},
			validate: func(t *testing.T, profile domain.ClientProfile) {
				assert.Equal(t, 200.0, profile.Ticket())
			},
		},
		{
			name:    "Margem acima de 100% é rejeitada",
			input:   domain.ProfileInput{Company: "Loja", Category: "Ferramentas", MarginPct: 150},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "Valor não finito é rejeitado",
			input:   domain.ProfileInput{Company: "Loja", Category: "Ferramentas", Revenue3P: math.NaN()},
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "Empresa obrigatória",
			input:   domain.ProfileInput{Category: "Ferramentas"},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			profile, err := s.SetProfile(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := s.Profile()
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			tt.validate(t, profile)
		})
	}
}

func TestMarketCatalog(t *testing.T) {
	t.Run("Período duplicado é rejeitado", func(t *testing.T) {
		c := NewMarketCatalog()
		require.NoError(t, c.Add("Ferramentas", "Jan", 100, 10))

		err := c.Add("Ferramentas", "Jan", 200, 20)
		assert.ErrorIs(t, err, ErrDuplicatePeriod)
		assert.Len(t, c.Periods("Ferramentas"), 1)
	})

	t.Run("Unidades zeradas geram ticket zero", func(t *testing.T) {
		c := NewMarketCatalog()
		require.NoError(t, c.Add("Ferramentas", "Jan", 100, 0))

		assert.Equal(t, 0.0, c.Periods("Ferramentas")[0].AvgTicket)
	})

	t.Run("Editar período inexistente não altera nada", func(t *testing.T) {
		c := NewMarketCatalog()
		require.NoError(t, c.Add("Ferramentas", "Jan", 100, 10))

		ok, err := c.Edit("Ferramentas", "Fev", 500, 5)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 100.0, c.Periods("Ferramentas")[0].Revenue)
	})

	t.Run("Editar período recalcula o ticket", func(t *testing.T) {
		c := NewMarketCatalog()
		require.NoError(t, c.Add("Ferramentas", "Jan", 100, 10))

		ok, err := c.Edit("Ferramentas", "Jan", 500, 4)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 125.0, c.Periods("Ferramentas")[0].AvgTicket)
	})

	t.Run("Categorias preservam a ordem de inserção", func(t *testing.T) {
		c := NewMarketCatalog()
		require.NoError(t, c.Add("B", "Jan", 1, 1))
		require.NoError(t, c.Add("A", "Jan", 1, 1))
		require.NoError(t, c.Add("C", "Jan", 1, 1))

		assert.Equal(t, []string{"B", "A", "C"}, c.Categories())
	})
}

func TestSubcategoryCatalog(t *testing.T) {
	t.Run("Edição lida de volta com ticket recalculado", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		require.NoError(t, c.Add("Ferramentas", "Furadeiras", 1000, 10))

		ok, err := c.Edit("Ferramentas", "Furadeiras", "Furadeiras e Parafusadeiras", 3000, 20)
		require.NoError(t, err)
		assert.True(t, ok)

		summary, found := c.Summary("Ferramentas", "Furadeiras e Parafusadeiras")
		require.True(t, found)
		assert.Equal(t, 3000.0, summary.Revenue)
		assert.Equal(t, int64(20), summary.Units)
		assert.Equal(t, 150.0, summary.AvgTicket)

		_, found = c.Summary("Ferramentas", "Furadeiras")
		assert.False(t, found)
	})

	t.Run("Edição com unidades zeradas gera ticket zero", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		require.NoError(t, c.Add("Ferramentas", "Furadeiras", 1000, 10))

		_, err := c.Edit("Ferramentas", "Furadeiras", "", 500, 0)
		require.NoError(t, err)

		summary, _ := c.Summary("Ferramentas", "Furadeiras")
		assert.Equal(t, 0.0, summary.AvgTicket)
	})

	t.Run("Renomear para nome existente é rejeitado", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		require.NoError(t, c.Add("Ferramentas", "A", 1, 1))
		require.NoError(t, c.Add("Ferramentas", "B", 1, 1))

		_, err := c.Edit("Ferramentas", "A", "B", 2, 2)
		assert.ErrorIs(t, err, ErrDuplicateSubcategory)
	})

	t.Run("Lançamentos mensais são somados na leitura", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		require.NoError(t, c.AddPeriod("Ferramentas", "Furadeiras", "Jan", 1000, 10))
		require.NoError(t, c.AddPeriod("Ferramentas", "Furadeiras", "Fev", 2000, 10))

		summary, found := c.Summary("Ferramentas", "Furadeiras")
		require.True(t, found)
		assert.Equal(t, 3000.0, summary.Revenue)
		assert.Equal(t, int64(20), summary.Units)
		assert.Equal(t, 2, summary.Months)

		err := c.AddPeriod("Ferramentas", "Furadeiras", "Jan", 1, 1)
		assert.ErrorIs(t, err, ErrDuplicatePeriod)
	})

	t.Run("Subcategoria duplicada é rejeitada", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		require.NoError(t, c.Add("Ferramentas", "A", 1, 1))

		assert.ErrorIs(t, c.Add("Ferramentas", "A", 1, 1), ErrDuplicateSubcategory)
	})

	t.Run("Remover inexistente retorna false", func(t *testing.T) {
		c := NewSubcategoryCatalog()
		assert.False(t, c.Remove("Ferramentas", "A"))
	})
}

func TestSession_CategoryLifecycle(t *testing.T) {
	t.Run("Remover o último período remove a categoria e suas subcategorias", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Market().Add("Ferramentas", "Jan", 100, 10))
		require.NoError(t, s.Subcategories().Add("Ferramentas", "Furadeiras", 100, 1))

		assert.True(t, s.RemoveCategoryPeriod("Ferramentas", "Jan"))
		assert.Empty(t, s.Categories())
		assert.Nil(t, s.Subcategories().Get("Ferramentas", "Furadeiras"))
	})

	t.Run("Remover categoria remove as subcategorias", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Market().Add("Ferramentas", "Jan", 100, 10))
		require.NoError(t, s.Subcategories().Add("Ferramentas", "Furadeiras", 100, 1))

		assert.True(t, s.RemoveCategory("Ferramentas"))
		assert.Empty(t, s.GenerateRanking("Ferramentas"))
		assert.False(t, s.RemoveCategory("Ferramentas"))
	})

	t.Run("Renomear categoria inexistente é no-op", func(t *testing.T) {
		s := NewSession()
		ok, err := s.RenameCategory("Inexistente", "Nova")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Renomear categoria atualiza catálogos e perfil", func(t *testing.T) {
		s := NewSession()
		_, err := s.SetProfile(domain.ProfileInput{Company: "Loja", Category: "Ferramentas"})
		require.NoError(t, err)
		require.NoError(t, s.Market().Add("Ferramentas", "Jan", 100, 10))
		require.NoError(t, s.Subcategories().Add("Ferramentas", "Furadeiras", 100, 1))

		ok, err := s.RenameCategory("Ferramentas", "Ferramentas e Construção")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, []string{"Ferramentas e Construção"}, s.Categories())
		assert.NotNil(t, s.Subcategories().Get("Ferramentas e Construção", "Furadeiras"))
		profile, _ := s.Profile()
		assert.Equal(t, "Ferramentas e Construção", profile.Category)
	})

	t.Run("Renomear para categoria existente é rejeitado", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Market().Add("A", "Jan", 100, 10))
		require.NoError(t, s.Market().Add("B", "Jan", 100, 10))

		_, err := s.RenameCategory("A", "B")
		assert.ErrorIs(t, err, ErrDuplicateCategory)
	})

	t.Run("Clear volta ao estado vazio", func(t *testing.T) {
		s := NewSession()
		_, err := s.SetProfile(domain.ProfileInput{Company: "Loja", Category: "Ferramentas"})
		require.NoError(t, err)
		require.NoError(t, s.Market().Add("Ferramentas", "Jan", 100, 10))

		s.Clear()

		snapshot := s.Snapshot()
		assert.Nil(t, snapshot.Profile)
		assert.Empty(t, snapshot.Categories)
	})
}

func TestSession_CategorySummaries(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Market().Add("Ferramentas", "Jan", 1000, 10))
	require.NoError(t, s.Market().Add("Ferramentas", "Fev", 3000, 10))
	require.NoError(t, s.Subcategories().Add("Ferramentas", "Furadeiras", 100, 1))
	require.NoError(t, s.Subcategories().Add("Ferramentas", "Serras", 100, 1))

	summaries := s.CategorySummaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Periods)
	assert.Equal(t, 4000.0, summaries[0].TotalRevenue)
	assert.Equal(t, 2000.0, summaries[0].AvgRevenue)
	assert.Equal(t, 200.0, summaries[0].AvgTicket)
	assert.Equal(t, 2, summaries[0].Subcategories)
}
