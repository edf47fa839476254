package analyzing

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	importermocks "github.com/vfg2006/market-analyzer-api/infrastructure/importer/mocks"
	reportmocks "github.com/vfg2006/market-analyzer-api/infrastructure/report/mocks"
	"github.com/vfg2006/market-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
	"github.com/vfg2006/market-analyzer-api/internal/config"
	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/pkg/apiErrors"
)

type serviceFixture struct {
	service   *Service
	importer  *importermocks.MockImporter
	generator *reportmocks.MockGenerator
}

func newFixture(t *testing.T, maxSessions int) *serviceFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{Session: config.Session{TTLMinutes: 120}}
	mockImporter := importermocks.NewMockImporter(ctrl)
	mockGenerator := reportmocks.NewMockGenerator(ctrl)

	svc := NewService(repository.NewSessionRepository(maxSessions), mockImporter, mockGenerator, cfg).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC) }

	return &serviceFixture{service: svc, importer: mockImporter, generator: mockGenerator}
}

// seed cria uma sessão com perfil, três períodos e duas subcategorias
func (f *serviceFixture) seed(t *testing.T) string {
	t.Helper()

	info, err := f.service.CreateSession()
	require.NoError(t, err)

	_, err = f.service.SetProfile(info.ID, domain.ProfileInput{
		Company: "Loja Teste", Category: "Ferramentas", TicketPrice: 204.34,
		MarginPct: 15, Revenue3P: 50000, Units3P: 245,
	})
	require.NoError(t, err)

	for _, p := range []struct {
		period  string
		revenue float64
	}{{"Jan", 1e9}, {"Fev", 1.1e9}, {"Mar", 1.21e9}} {
		require.NoError(t, f.service.AddCategoryPeriod(info.ID, "Ferramentas", p.period, p.revenue, 5000000))
	}

	require.NoError(t, f.service.AddSubcategory(info.ID, "Ferramentas", "Ferramentas Elétricas", "", 3.72e9, 19578947))
	require.NoError(t, f.service.AddSubcategory(info.ID, "Ferramentas", "Ferramentas Manuais", "", 1.2e9, 26666667))

	return info.ID
}

func requireCode(t *testing.T, err error, code string) *AnalysisError {
	t.Helper()

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr), "erro inesperado: %v", err)
	assert.Equal(t, code, analysisErr.Code)
	return analysisErr
}

func TestService_SessionLifecycle(t *testing.T) {
	f := newFixture(t, 1)

	info, err := f.service.CreateSession()
	require.NoError(t, err)
	assert.Len(t, info.ID, 12)
	assert.Equal(t, "2h0m0s", info.ExpiresIn)

	_, err = f.service.CreateSession()
	requireCode(t, err, apiErrors.ErrSessionLimit)

	snapshot, err := f.service.GetSession(info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, snapshot.ID)
	assert.Nil(t, snapshot.Profile)
	assert.Empty(t, snapshot.Categories)

	require.NoError(t, f.service.DeleteSession(info.ID))

	_, err = f.service.GetSession(info.ID)
	analysisErr := requireCode(t, err, apiErrors.ErrSessionNotFound)
	assert.Equal(t, info.ID, analysisErr.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = f.service.DeleteSession(info.ID)
	requireCode(t, err, apiErrors.ErrSessionNotFound)
}

func TestService_CatalogErrors(t *testing.T) {
	f := newFixture(t, 0)
	id := f.seed(t)

	tests := []struct {
		name string
		run  func() error
		code string
	}{
		{
			name: "Período duplicado gera conflito",
			run:  func() error { return f.service.AddCategoryPeriod(id, "Ferramentas", "Jan", 1, 1) },
			code: apiErrors.ErrConflict,
		},
		{
			name: "Subcategoria duplicada gera conflito",
			run: func() error {
				return f.service.AddSubcategory(id, "Ferramentas", "Ferramentas Manuais", "", 1, 1)
			},
			code: apiErrors.ErrConflict,
		},
		{
			name: "Faturamento não finito é rejeitado",
			run:  func() error { return f.service.AddCategoryPeriod(id, "Ferramentas", "Abr", math.NaN(), 1) },
			code: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Nome vazio é rejeitado",
			run:  func() error { return f.service.AddSubcategory(id, "Ferramentas", " ", "", 1, 1) },
			code: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Editar período inexistente",
			run:  func() error { return f.service.EditCategoryPeriod(id, "Ferramentas", "Dez", 1, 1) },
			code: apiErrors.ErrResourceNotFound,
		},
		{
			name: "Remover subcategoria inexistente",
			run:  func() error { return f.service.RemoveSubcategory(id, "Ferramentas", "Jardim") },
			code: apiErrors.ErrResourceNotFound,
		},
		{
			name: "Renomear para categoria existente",
			run: func() error {
				if err := f.service.AddCategoryPeriod(id, "Casa", "Jan", 10, 1); err != nil {
					return err
				}
				return f.service.RenameCategory(id, "Casa", "Ferramentas")
			},
			code: apiErrors.ErrConflict,
		},
		{
			name: "Renomear categoria inexistente",
			run:  func() error { return f.service.RenameCategory(id, "Jardim", "Quintal") },
			code: apiErrors.ErrResourceNotFound,
		},
		{
			name: "Sessão desconhecida",
			run:  func() error { return f.service.RemoveCategory("desconhecida", "Ferramentas") },
			code: apiErrors.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.run(), tt.code)
		})
	}
}

func TestService_Reads(t *testing.T) {
	f := newFixture(t, 0)
	id := f.seed(t)

	ranking, err := f.service.GenerateRanking(id, "")
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Ferramentas Elétricas", ranking[0].Subcategory)
	assert.Equal(t, domain.StatusFocus, ranking[0].Status)

	empty, err := f.service.GenerateRanking(id, "Jardim")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	simulation, err := f.service.SimulateScenarios(id, "Ferramentas", "Ferramentas Elétricas", nil)
	require.NoError(t, err)
	require.Len(t, simulation.Scenarios, 3)
	assert.InDelta(t, 18.6e6, simulation.Scenarios[1].ProjectedRevenue, 1e-3)

	_, err = f.service.SimulateScenarios(id, "Ferramentas", "Jardim", nil)
	requireCode(t, err, apiErrors.ErrResourceNotFound)

	limits, err := f.service.TicketLimits(id, "Ferramentas", "Ferramentas Elétricas")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, limits.Tolerance, 1e-9)

	trend, err := f.service.Trend(id, "Ferramentas")
	require.NoError(t, err)
	assert.Equal(t, domain.TrendHigh, trend.Direction)

	confidence, err := f.service.Confidence(id, "Ferramentas", "Ferramentas Elétricas")
	require.NoError(t, err)
	assert.Equal(t, 100, confidence.Score)

	_, err = f.service.Confidence(id, "Ferramentas", "Jardim")
	requireCode(t, err, apiErrors.ErrResourceNotFound)

	anomalies, err := f.service.DetectAnomalies(id, "Ferramentas")
	require.NoError(t, err)
	assert.NotNil(t, anomalies)

	plan, err := f.service.ActionPlan(id, "Ferramentas")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, domain.PriorityMaximum, plan[0].Priority)

	summaries, err := f.service.CategorySummaries(id)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Subcategories)
}

func TestService_ImportWorkbook(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *serviceFixture)
		validate func(t *testing.T, f *serviceFixture, id string, summary *domain.ImportSummary, err error)
	}{
		{
			name: "Importação substitui a sessão inteira",
			setup: func(f *serviceFixture) {
				imported := analyzer.NewSession()
				_, _ = imported.SetProfile(domain.ProfileInput{Company: "Nova", Category: "Casa", TicketPrice: 80})
				_ = imported.Subcategories().Add("Casa", "Panelas", 1000, 10)

				f.importer.EXPECT().
					Import(gomock.Any()).
					Return(imported, &domain.ImportSummary{ProfileLoaded: true, Subcategories: 1}, nil)
			},
			validate: func(t *testing.T, f *serviceFixture, id string, summary *domain.ImportSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, id, summary.SessionID)
				assert.Equal(t, 2024, summary.ImportedAt.Year())

				snapshot, err := f.service.GetSession(id)
				require.NoError(t, err)
				require.NotNil(t, snapshot.Profile)
				assert.Equal(t, "Nova", snapshot.Profile.Company)
				require.Len(t, snapshot.Categories, 1)
				assert.Equal(t, "Casa", snapshot.Categories[0].Category)
			},
		},
		{
			name: "Falha na importação mantém a sessão atual",
			setup: func(f *serviceFixture) {
				f.importer.EXPECT().
					Import(gomock.Any()).
					Return(nil, nil, errors.New("linha 4: valor numérico inválido"))
			},
			validate: func(t *testing.T, f *serviceFixture, id string, summary *domain.ImportSummary, err error) {
				assert.Nil(t, summary)
				analysisErr := requireCode(t, err, apiErrors.ErrImportFailed)
				assert.Contains(t, analysisErr.Details, "linha 4")

				snapshot, err := f.service.GetSession(id)
				require.NoError(t, err)
				assert.Equal(t, "Loja Teste", snapshot.Profile.Company)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			id := f.seed(t)
			tt.setup(f)

			summary, err := f.service.ImportWorkbook(id, strings.NewReader("xlsx"))
			tt.validate(t, f, id, summary, err)
		})
	}
}

func TestService_ExportRanking(t *testing.T) {
	f := newFixture(t, 0)
	id := f.seed(t)

	data, err := f.service.ExportRanking(id, "", "CSV")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Posição,Categoria"))
	assert.Contains(t, string(data), "Ferramentas Elétricas")

	data, err = f.service.ExportRanking(id, "Ferramentas", "xlsx")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))

	_, err = f.service.ExportRanking(id, "", "pdf")
	requireCode(t, err, apiErrors.ErrInvalidRequest)
}

func TestService_GenerateReport(t *testing.T) {
	tests := []struct {
		name        string
		subcategory string
		setup       func(f *serviceFixture)
		validate    func(t *testing.T, data []byte, err error)
	}{
		{
			name:        "Relatório gerado com dados do motor",
			subcategory: "Ferramentas Elétricas",
			setup: func(f *serviceFixture) {
				f.generator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(w io.Writer, data *domain.ReportData) error {
						assert.Equal(t, "Ferramentas Elétricas", data.Subcategory)
						assert.False(t, data.GeneratedAt.IsZero())
						assert.NotNil(t, data.Scenarios)
						_, err := w.Write([]byte("%PDF-1.3"))
						return err
					})
			},
			validate: func(t *testing.T, data []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, "%PDF-1.3", string(data))
			},
		},
		{
			name:        "Subcategoria inexistente não chama o gerador",
			subcategory: "Jardim",
			setup:       func(f *serviceFixture) {},
			validate: func(t *testing.T, data []byte, err error) {
				assert.Nil(t, data)
				requireCode(t, err, apiErrors.ErrResourceNotFound)
			},
		},
		{
			name:        "Erro do gerador",
			subcategory: "Ferramentas Manuais",
			setup: func(f *serviceFixture) {
				f.generator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(errors.New("fonte indisponível"))
			},
			validate: func(t *testing.T, data []byte, err error) {
				assert.Nil(t, data)
				requireCode(t, err, apiErrors.ErrReportGeneration)
				assert.ErrorIs(t, err, ErrReportGeneration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			id := f.seed(t)
			tt.setup(f)

			data, err := f.service.GenerateReport(id, "Ferramentas", tt.subcategory)
			tt.validate(t, data, err)
		})
	}
}
