package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

func rankingFixture() []domain.RankingEntry {
	return []domain.RankingEntry{
		{
			Position: 1, Category: "Ferramentas", Subcategory: "Ferramentas Elétricas",
			MarketSize: 3720000000, Units: 19578947, MarketTicket: 190, ClientTicket: 204.34,
			Score: 0.83, Status: domain.StatusFocus, Band: domain.FitWithin, Reading: domain.ReadingPriceOK,
		},
		{
			Position: 2, Category: "Ferramentas", Subcategory: "=HYPERLINK(\"x\")",
			MarketSize: 1200000000, Units: 26666667, MarketTicket: 45, ClientTicket: 204.34,
			Score: 0.279, Status: domain.StatusAvoid, Band: domain.FitAbove, Reading: domain.ReadingReducePrice,
		},
	}
}

func TestEscapeCSVCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Ferramentas", "Ferramentas"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"%x", "'%x"},
		{"\tTab", "'\tTab"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeCSVCell(tt.input))
	}
}

func TestWriteRankingCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, "CSV", rankingFixture()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, rankingHeaders, records[0])
	assert.Equal(t, "Ferramentas Elétricas", records[1][2])
	assert.Equal(t, "3720000000.00", records[1][3])
	assert.Equal(t, "FOCO", records[1][8])
	assert.Equal(t, "'=HYPERLINK(\"x\")", records[2][2])
}

func TestWriteRankingXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, FormatXLSX, rankingFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(rankingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Posição", rows[0][0])
	assert.Equal(t, "Ferramentas Elétricas", rows[1][2])
	assert.Equal(t, "EVITAR", rows[2][8])
}

func TestWriteRanking_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteRanking(&buf, "pdf", rankingFixture()))
}

func TestPDFGenerator_Generate(t *testing.T) {
	data := &domain.ReportData{
		Profile: domain.ClientProfile{
			Company: "Loja Teste", Category: "Ferramentas", TicketPrice: 204.34,
			Margin: 0.15, Revenue3P: 50000, Units3P: 245, Tolerance: 0.2,
		},
		Category:    "Ferramentas",
		Subcategory: "Ferramentas Elétricas",
		Confidence:  &domain.ConfidenceResult{Score: 80, Level: domain.ConfidenceHigh, Reasons: []string{"ticket far outside market average"}},
		Categories:  []domain.CategorySummary{{Category: "Ferramentas", Periods: 3, TotalRevenue: 3.31e9, AvgRevenue: 1.1e9, AvgTicket: 200}},
		Ranking:     rankingFixture(),
		Scenarios: &domain.ScenarioSimulation{
			MarketSize: 3720000000, Baseline6M: 100000, CurrentShare: 0.0027,
			Scenarios: []domain.ScenarioResult{{Name: "Likely", TargetShare: 0.005, ProjectedRevenue: 18600000, ProjectedProfit: 2790000, Delta: 18500000, GrowthPct: 18500}},
		},
		Trend: domain.TrendResult{
			Direction: domain.TrendHigh, MonthlyGrowthPct: 10, Baseline: 16666.67, Projection3P: 60683.33,
			Months: []domain.MonthlyProjection{{Month: 1, Revenue: 18333.33, GrowthVsBaselinePct: 10}},
		},
		Action: &domain.ActionItem{
			Priority: domain.PriorityMaximum, Score: 0.83, ShortRecommendation: "SCALE AGGRESSIVELY",
			ImmediateAction: "Increase ad spend ~20% and secure 60-day stock", Rationale: []string{"Score 0.83 (FOCO)"},
		},
		GeneratedAt: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, NewPDFGenerator().Generate(&buf, data))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	assert.Error(t, NewPDFGenerator().Generate(&buf, nil))
}

func TestPDFGenerator_WithoutOptionalSections(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFGenerator().Generate(&buf, &domain.ReportData{Category: "Casa", Subcategory: "Panelas"})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
