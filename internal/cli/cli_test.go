package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	sheets := map[string]map[int][]any{
		"Cliente": {
			4: {"Empresa", "Loja Teste"},
			5: {"Categoria Macro", "Ferramentas"},
			6: {"Ticket Médio (R$)", "204,34"},
			7: {"Margem (%)", "15%"},
			8: {"Faturamento Médio (3 meses)", "50000"},
			9: {"Unidades Vendidas (3 meses)", 245},
		},
		"Mercado_Categoria": {
			3: {"Periodo", "Faturamento", "Unidades"},
			4: {"Jan/24", 1000000000, 5000000},
			5: {"Fev/24", 1100000000, 5500000},
			6: {"Mar/24", 1210000000, 6050000},
		},
		"Mercado_Subcategoria": {
			3: {"Categoria", "Subcategoria", "Faturamento 6M", "Unidades 6M"},
			4: {"Ferramentas", "Ferramentas Elétricas", 3720000000, 19578947},
			5: {"Ferramentas", "Ferramentas Manuais", 1200000000, 26666667},
			6: {"Casa", "Panelas", 500000000, 5000000},
		},
	}

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

	path := filepath.Join(t.TempDir(), "plano.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRankCommand(t *testing.T) {
	file := writeWorkbook(t)

	out, err := run(t, "rank", "--file", file, "--category", "Ferramentas")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SUBCATEGORIA")
	assert.Contains(t, lines[1], "Ferramentas Elétricas")
	assert.Contains(t, lines[1], "FOCO")
}

func TestRankCommand_DefaultCategory(t *testing.T) {
	file := writeWorkbook(t)

	tests := []struct {
		name      string
		args      []string
		wantLines int
		wantCasa  bool
	}{
		{name: "Sem --category usa a categoria do cliente", args: nil, wantLines: 3, wantCasa: false},
		{name: "Com --all ranqueia todas as categorias", args: []string{"--all"}, wantLines: 4, wantCasa: true},
		{name: "Categoria explícita", args: []string{"--category", "Casa"}, wantLines: 2, wantCasa: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"rank", "--file", file}, tt.args...)...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			assert.Len(t, lines, tt.wantLines)
			assert.Equal(t, tt.wantCasa, strings.Contains(out, "Panelas"))
		})
	}
}

func TestRankCommand_CSV(t *testing.T) {
	file := writeWorkbook(t)
	target := filepath.Join(t.TempDir(), "ranking.csv")

	out, err := run(t, "rank", "--file", file, "--format", "csv", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Posição,Categoria"))
}

func TestSimulateCommand(t *testing.T) {
	file := writeWorkbook(t)

	out, err := run(t, "simulate", "--file", file, "--subcategory", "Ferramentas Elétricas", "--share", "Likely=0,5")
	require.NoError(t, err)

	assert.Contains(t, out, "Ferramentas / Ferramentas Elétricas")
	assert.Contains(t, out, "Likely")
	assert.Contains(t, out, "0.50%")
	assert.Contains(t, out, "R$ 18.600.000,00")
}

func TestTrendCommand(t *testing.T) {
	file := writeWorkbook(t)

	out, err := run(t, "trend", "--file", file)
	require.NoError(t, err)

	assert.Contains(t, out, "Tendência: High")
	assert.Contains(t, out, "+3")
	assert.Contains(t, out, "TOTAL")
}

func TestTrendCommand_JSON(t *testing.T) {
	file := writeWorkbook(t)

	out, err := run(t, "trend", "--file", file, "--category", "Ferramentas", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"direction": "High"`)
	assert.Contains(t, out, `"periods_used": 3`)
}

func TestReportCommand(t *testing.T) {
	file := writeWorkbook(t)
	target := filepath.Join(t.TempDir(), "relatorio.pdf")

	_, err := run(t, "report", "--file", file, "--subcategory", "Ferramentas Manuais", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCommandErrors(t *testing.T) {
	file := writeWorkbook(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "sem planilha", args: []string{"rank"}, wantErr: "--file"},
		{name: "planilha inexistente", args: []string{"trend", "--file", "nao-existe.xlsx"}, wantErr: "planilha não encontrada"},
		{name: "subcategoria inexistente", args: []string{"simulate", "--file", file, "--subcategory", "Jardim"}, wantErr: "subcategoria não encontrada"},
		{name: "meta inválida", args: []string{"simulate", "--file", file, "--subcategory", "Jardim", "--share", "Likely"}, wantErr: "meta de participação inválida"},
		{name: "formato inválido", args: []string{"rank", "--file", file, "--format", "pdf"}, wantErr: "formato de exportação não suportado"},
		{name: "categoria e --all juntos", args: []string{"rank", "--file", file, "--all", "--category", "Casa"}, wantErr: "não ambos"},
		{name: "subcategoria obrigatória", args: []string{"report", "--file", file}, wantErr: "subcategory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
