package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

func buildWorkbook(t *testing.T, sheets map[string]map[int][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)

		for rowNum, values := range rows {
			cellName, err := excelize.CoordinatesToCellName(1, rowNum)
			require.NoError(t, err)
			row := values
			require.NoError(t, f.SetSheetRow(name, cellName, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func clientSheet() map[int][]any {
	return map[int][]any{
		1:  {"DADOS DO CLIENTE"},
		4:  {"Empresa", "Loja Teste"},
		5:  {"Categoria Macro", "Ferramentas"},
		6:  {"Ticket Médio (R$)", "R$ 204,34"},
		7:  {"Margem (%)", "15%"},
		8:  {"Faturamento Médio (3 meses)", "R$ 50.000,00"},
		9:  {"Unidades Vendidas (3 meses)", 245},
		10: {"Range Permitido (%)", "20"},
		11: {"Ticket Custom"},
	}
}

func TestWorkbookImporter_Import(t *testing.T) {
	buf := buildWorkbook(t, map[string]map[int][]any{
		"Cliente": clientSheet(),
		"Mercado_Categoria": {
			1: {"HISTÓRICO DA CATEGORIA"},
			3: {"Periodo (texto)", "Faturamento (R$)", "Unidades"},
			4: {"Jan/24", "1.000.000.000", 5000000},
			5: {"Fev/24", "1,1 bi", "5.500.000"},
			6: {"Mar/24", "1.21B", "6050000"},
			7: {"", "", ""},
		},
		"Mercado_Subcategoria": {
			3: {"Categoria", "Subcategoria", "Faturamento 6M (R$)", "Unidades 6M"},
			4: {"Ferramentas", "Ferramentas Elétricas", "3,72 bi", "19.578.947"},
			5: {"", "Ferramentas Manuais", "1.2B", "26666667"},
		},
	})

	session, summary, err := NewWorkbookImporter(DefaultHeaderRow).Import(buf)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.True(t, summary.ProfileLoaded)
	assert.Equal(t, 3, summary.CategoryPeriods)
	assert.Equal(t, 2, summary.Subcategories)
	assert.Empty(t, summary.Warnings)

	profile, ok := session.Profile()
	require.True(t, ok)
	assert.Equal(t, "Loja Teste", profile.Company)
	assert.Equal(t, "Ferramentas", profile.Category)
	assert.InDelta(t, 204.34, profile.TicketPrice, 1e-9)
	assert.InDelta(t, 0.15, profile.Margin, 1e-9)
	assert.InDelta(t, 50000.0, profile.Revenue3P, 1e-9)
	assert.Equal(t, int64(245), profile.Units3P)
	assert.InDelta(t, 0.20, profile.Tolerance, 1e-9)
	assert.Nil(t, profile.CustomTicket)

	periods := session.Market().Periods("Ferramentas")
	require.Len(t, periods, 3)
	assert.Equal(t, "Fev/24", periods[1].Period)
	assert.Equal(t, 1100000000.0, periods[1].Revenue)
	assert.Equal(t, int64(5500000), periods[1].Units)

	ranking := session.GenerateRanking("Ferramentas")
	require.Len(t, ranking, 2)
	assert.Equal(t, "Ferramentas Elétricas", ranking[0].Subcategory)
	assert.Equal(t, domain.StatusFocus, ranking[0].Status)
	assert.Equal(t, "Ferramentas", ranking[1].Category)
}

func TestWorkbookImporter_MonthlyVariant(t *testing.T) {
	buf := buildWorkbook(t, map[string]map[int][]any{
		"Client": {
			1: {"Company", "Acme"},
			2: {"Category", "Home"},
			3: {"Ticket", "80"},
			4: {"Margin", "0.2"},
		},
		"MarketSubcategory": {
			1: {"Category", "Subcategory", "Period", "Revenue", "Units"},
			2: {"Home", "Pans", "Jan", "1000", "10"},
			3: {"Home", "Pans", "Feb", "3000", "30"},
			4: {"Home", "Knives", "Jan", "500", "0"},
		},
	})

	session, summary, err := NewWorkbookImporter(DefaultHeaderRow).Import(buf)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Subcategories)
	assert.Len(t, summary.Warnings, 1)

	pans, ok := session.Subcategories().Summary("Home", "Pans")
	require.True(t, ok)
	assert.Equal(t, 4000.0, pans.Revenue)
	assert.Equal(t, int64(40), pans.Units)
	assert.Equal(t, 100.0, pans.AvgTicket)
	assert.Equal(t, 2, pans.Months)

	knives, ok := session.Subcategories().Summary("Home", "Knives")
	require.True(t, ok)
	assert.Equal(t, 0.0, knives.AvgTicket)
}

func TestWorkbookImporter_NumericCells(t *testing.T) {
	buf := buildWorkbook(t, map[string]map[int][]any{
		"Cliente": {
			1: {"Empresa", "Loja Teste"},
			2: {"Categoria", "Ferramentas"},
			3: {"Ticket Médio (R$)", 1234.567},
			4: {"Margem (%)", 0.15},
			5: {"Faturamento Médio (3 meses)", 50000.125},
			6: {"Unidades Vendidas (3 meses)", 40.6},
			7: {"Ticket Custom", 204.345},
		},
		"Mercado_Categoria": {
			3: {"Periodo", "Faturamento", "Unidades"},
			4: {"Jan/24", 1234.567, 1000},
			5: {"Fev/24", "1.234", 1000},
		},
		"Mercado_Subcategoria": {
			3: {"Subcategoria", "Faturamento", "Unidades"},
			4: {"Panelas", 204.345, 3},
		},
	})

	session, _, err := NewWorkbookImporter(DefaultHeaderRow).Import(buf)
	require.NoError(t, err)

	profile, ok := session.Profile()
	require.True(t, ok)
	assert.InDelta(t, 1234.567, profile.TicketPrice, 1e-9)
	assert.InDelta(t, 50000.125, profile.Revenue3P, 1e-9)
	assert.Equal(t, int64(41), profile.Units3P)
	require.NotNil(t, profile.CustomTicket)
	assert.InDelta(t, 204.345, *profile.CustomTicket, 1e-9)

	periods := session.Market().Periods("Ferramentas")
	require.Len(t, periods, 2)
	assert.InDelta(t, 1234.567, periods[0].Revenue, 1e-9)
	// texto continua usando o ponto como separador de milhar
	assert.InDelta(t, 1234.0, periods[1].Revenue, 1e-9)

	panelas, ok := session.Subcategories().Summary("Ferramentas", "Panelas")
	require.True(t, ok)
	assert.InDelta(t, 204.345, panelas.Revenue, 1e-9)
}

func TestWorkbookImporter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sheets  map[string]map[int][]any
		wantErr error
		wantMsg string
	}{
		{
			name:    "Planilha sem abas reconhecidas",
			sheets:  map[string]map[int][]any{"Outra": {1: {"x"}}},
			wantErr: ErrEmptyWorkbook,
		},
		{
			name: "Cliente sem empresa",
			sheets: map[string]map[int][]any{
				"Cliente": {1: {"Categoria", "Ferramentas"}},
			},
			wantErr: ErrMissingProfile,
		},
		{
			name: "Aba de mercado sem colunas obrigatórias",
			sheets: map[string]map[int][]any{
				"Cliente":           clientSheet(),
				"Mercado_Categoria": {3: {"Periodo", "Valor"}},
			},
			wantErr: ErrMissingColumn,
		},
		{
			name: "Valor numérico inválido informa a linha",
			sheets: map[string]map[int][]any{
				"Cliente": clientSheet(),
				"Mercado_Categoria": {
					3: {"Periodo", "Faturamento", "Unidades"},
					4: {"Jan", "muito", "10"},
				},
			},
			wantMsg: "linha 4",
		},
		{
			name: "Período duplicado é rejeitado",
			sheets: map[string]map[int][]any{
				"Cliente": clientSheet(),
				"Mercado_Categoria": {
					3: {"Periodo", "Faturamento", "Unidades"},
					4: {"Jan", "10", "1"},
					5: {"Jan", "20", "2"},
				},
			},
			wantMsg: "linha 5",
		},
		{
			name: "Subcategoria sem categoria e sem cliente",
			sheets: map[string]map[int][]any{
				"Mercado_Subcategoria": {
					3: {"Subcategoria", "Faturamento", "Unidades"},
					4: {"Panelas", "10", "1"},
				},
			},
			wantMsg: "categoria não informada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buildWorkbook(t, tt.sheets)

			session, summary, err := NewWorkbookImporter(DefaultHeaderRow).Import(buf)
			require.Error(t, err)
			assert.Nil(t, session)
			assert.Nil(t, summary)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.True(t, strings.Contains(err.Error(), tt.wantMsg), err.Error())
			}
		})
	}
}

func TestWorkbookImporter_InvalidFile(t *testing.T) {
	_, _, err := NewWorkbookImporter(0).Import(strings.NewReader("não é um xlsx"))
	assert.Error(t, err)
}
