package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	rankingSheet = "Ranking"
)

var rankingHeaders = []string{
	"Posição", "Categoria", "Subcategoria", "Mercado 6M", "Unidades", "Ticket Mercado",
	"Ticket Cliente", "Score", "Status", "Faixa", "Leitura",
}

// EscapeCSVCell protege contra injeção de fórmulas em planilhas
func EscapeCSVCell(value string) string {
	if value == "" {
		return value
	}

	switch value[0] {
	case '=', '+', '-', '@', '|', '%', '\t', '\r', '\n':
		return "'" + value
	}

	return value
}

// WriteRanking exporta o ranking no formato pedido
func WriteRanking(w io.Writer, format string, entries []domain.RankingEntry) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteRankingCSV(w, entries)
	case FormatXLSX:
		return WriteRankingXLSX(w, entries)
	default:
		return fmt.Errorf("formato de exportação não suportado: %s", format)
	}
}

func WriteRankingCSV(w io.Writer, entries []domain.RankingEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(rankingHeaders); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Position),
			EscapeCSVCell(e.Category),
			EscapeCSVCell(e.Subcategory),
			strconv.FormatFloat(e.MarketSize, 'f', 2, 64),
			strconv.FormatInt(e.Units, 10),
			strconv.FormatFloat(e.MarketTicket, 'f', 2, 64),
			strconv.FormatFloat(e.ClientTicket, 'f', 2, 64),
			strconv.FormatFloat(e.Score, 'f', 4, 64),
			string(e.Status),
			string(e.Band),
			string(e.Reading),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever linha %d: %w", e.Position, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func WriteRankingXLSX(w io.Writer, entries []domain.RankingEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rankingSheet); err != nil {
		return fmt.Errorf("erro ao preparar planilha: %w", err)
	}

	header := make([]any, len(rankingHeaders))
	for i, h := range rankingHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(rankingSheet, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, e := range entries {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			e.Position, e.Category, e.Subcategory, e.MarketSize, e.Units, e.MarketTicket,
			e.ClientTicket, e.Score, string(e.Status), string(e.Band), string(e.Reading),
		}
		if err := f.SetSheetRow(rankingSheet, cellName, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d: %w", e.Position, err)
		}
	}

	if err := f.SetPanes(rankingSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("erro ao congelar cabeçalho: %w", err)
	}

	return f.Write(w)
}
