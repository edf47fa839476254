// Package report gera o relatório executivo em PDF e as exportações do ranking
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

const (
	topOpportunities    = 5
	highPotentialMarket = 1_000_000
	pageWidth           = 190
)

// Generator escreve o relatório de uma subcategoria
type Generator interface {
	Generate(w io.Writer, data *domain.ReportData) error
}

// PDFGenerator monta o relatório executivo usando fpdf
type PDFGenerator struct {
	font string
}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{font: "Arial"}
}

type pdfWriter struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	font string
}

// Generate renderiza o relatório; os valores vêm prontos do motor de análise
func (g *PDFGenerator) Generate(w io.Writer, data *domain.ReportData) error {
	if data == nil {
		return fmt.Errorf("relatório sem dados")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")

	r := &pdfWriter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		font: g.font,
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(r.font, "I", 8)
		pdf.CellFormat(0, 8, r.tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	r.header(data)
	r.summary(data)
	r.opportunities(data)
	r.scenarios(data)
	r.projection(data)
	r.actionPlan(data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("erro ao gerar PDF: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r *pdfWriter) header(data *domain.ReportData) {
	generatedAt := data.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	r.pdf.SetFont(r.font, "B", 16)
	r.pdf.CellFormat(0, 10, r.tr("Relatório Executivo de Priorização"), "", 1, "C", false, 0, "")

	r.pdf.SetFont(r.font, "", 10)
	r.pdf.CellFormat(0, 6, r.tr(fmt.Sprintf("%s | %s > %s", data.Profile.Company, data.Category, data.Subcategory)), "", 1, "C", false, 0, "")
	r.pdf.CellFormat(0, 6, r.tr("Gerado em "+generatedAt.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfWriter) section(title string) {
	r.pdf.Ln(2)
	r.pdf.SetFont(r.font, "B", 12)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.CellFormat(0, 8, r.tr(title), "", 1, "L", true, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetFont(r.font, "", 9)
}

func (r *pdfWriter) line(text string) {
	r.pdf.MultiCell(0, 5, r.tr(text), "", "L", false)
}

func (r *pdfWriter) table(headers []string, widths []float64, rows [][]string) {
	r.pdf.SetFont(r.font, "B", 8)
	r.pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, r.tr(h), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont(r.font, "", 8)
	for _, row := range rows {
		for i, value := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			r.pdf.CellFormat(widths[i], 6, r.tr(value), "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(2)
}

func (r *pdfWriter) summary(data *domain.ReportData) {
	r.section("1. Resumo")

	p := data.Profile
	r.line(fmt.Sprintf("Ticket atual: %s | Margem: %.1f%% | Faixa aceita: ±%.0f%%",
		utils.FormatBRL(p.Ticket()), p.Margin*100, p.Tolerance*100))
	r.line(fmt.Sprintf("Faturamento últimos 3 períodos: %s (%d unidades)", utils.FormatBRL(p.Revenue3P), p.Units3P))

	if data.Confidence != nil {
		r.line(fmt.Sprintf("Confiança da análise: %d%% (%s)", data.Confidence.Score, data.Confidence.Level))
		for _, reason := range data.Confidence.Reasons {
			r.line("  - " + reason)
		}
	}

	for _, c := range data.Categories {
		if c.Category != data.Category {
			continue
		}
		r.line(fmt.Sprintf("Categoria %s: %d períodos, média de %s por período, ticket médio %s",
			c.Category, c.Periods, utils.FormatBR(c.AvgRevenue), utils.FormatBRL(c.AvgTicket)))
	}
}

func (r *pdfWriter) opportunities(data *domain.ReportData) {
	r.section("2. Matriz de Oportunidades")

	entries := append([]domain.RankingEntry(nil), data.Ranking...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MarketSize > entries[j].MarketSize
	})
	if len(entries) > topOpportunities {
		entries = entries[:topOpportunities]
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		potential := "Média"
		if e.MarketSize > highPotentialMarket {
			potential = "Alta"
		}
		rows = append(rows, []string{
			e.Subcategory,
			utils.FormatBR(e.MarketSize),
			utils.FormatBRL(e.MarketTicket),
			fmt.Sprintf("%.2f", e.Score),
			string(e.Status),
			potential,
		})
	}

	r.table(
		[]string{"Subcategoria", "Mercado 6M", "Ticket", "Score", "Status", "Potencial"},
		[]float64{60, 28, 30, 20, 24, 28},
		rows,
	)
}

func (r *pdfWriter) scenarios(data *domain.ReportData) {
	r.section("3. Cenários de Crescimento")

	if data.Scenarios == nil {
		r.line("Sem dados de mercado para a subcategoria.")
		return
	}

	s := data.Scenarios
	r.line(fmt.Sprintf("Mercado 6M: %s | Participação atual: %.4f%% | Base 6M: %s",
		utils.FormatBR(s.MarketSize), s.CurrentShare, utils.FormatBRL(s.Baseline6M)))

	rows := make([][]string, 0, len(s.Scenarios))
	for _, sc := range s.Scenarios {
		rows = append(rows, []string{
			sc.Name,
			fmt.Sprintf("%.2f%%", sc.TargetShare*100),
			utils.FormatBR(sc.ProjectedRevenue),
			utils.FormatBR(sc.ProjectedProfit),
			utils.FormatBR(sc.Delta),
			fmt.Sprintf("%.1f%%", sc.GrowthPct),
		})
	}

	r.table(
		[]string{"Cenário", "Meta", "Faturamento", "Lucro", "Delta", "Crescimento"},
		[]float64{40, 22, 34, 32, 32, 30},
		rows,
	)
}

func (r *pdfWriter) projection(data *domain.ReportData) {
	r.section("4. Projeção de Demanda")

	t := data.Trend
	r.line(fmt.Sprintf("Tendência: %s | Crescimento mensal médio: %.2f%% | Projeção 3 períodos: %s",
		t.Direction, t.MonthlyGrowthPct, utils.FormatBRL(t.Projection3P)))

	rows := make([][]string, 0, len(t.Months))
	for _, m := range t.Months {
		rows = append(rows, []string{
			fmt.Sprintf("Mês %d", m.Month),
			utils.FormatBRL(m.Revenue),
			fmt.Sprintf("%+.1f%%", m.GrowthVsBaselinePct),
		})
	}

	r.table([]string{"Período", "Faturamento", "vs. atual"}, []float64{60, 70, 60}, rows)
}

func (r *pdfWriter) actionPlan(data *domain.ReportData) {
	r.section("5. Plano de Ação")

	if data.Action == nil {
		r.line("Sem recomendação para a subcategoria.")
		return
	}

	a := data.Action
	r.pdf.SetFont(r.font, "B", 10)
	r.line(fmt.Sprintf("Prioridade %s | Score %.2f | %s", a.Priority, a.Score, a.ShortRecommendation))
	r.pdf.SetFont(r.font, "", 9)
	r.line("Ação imediata: " + a.ImmediateAction)
	r.line(strings.Join(a.Rationale, "; "))
}
