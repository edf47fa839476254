// Package importer converte planilhas Excel em sessões de análise
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

const (
	DefaultHeaderRow = 3
	headerScanLimit  = 10
)

var (
	ErrEmptyWorkbook  = errors.New("planilha sem abas reconhecidas")
	ErrMissingColumn  = errors.New("coluna obrigatória não encontrada")
	ErrMissingProfile = errors.New("dados obrigatórios do cliente ausentes")
)

var (
	clientSheetAliases      = []string{"cliente", "client"}
	categorySheetAliases    = []string{"mercadocategoria", "marketcategory"}
	subcategorySheetAliases = []string{"mercadosubcategoria", "marketsubcategory"}
)

// Importer produz uma nova sessão a partir de um arquivo
type Importer interface {
	Import(r io.Reader) (*analyzer.Session, *domain.ImportSummary, error)
}

// WorkbookImporter lê planilhas com as abas Cliente, Mercado_Categoria e Mercado_Subcategoria
type WorkbookImporter struct {
	headerRow int
	options   []analyzer.Option
}

// NewWorkbookImporter cria o importador; headerRow é a linha (1-based) do cabeçalho das abas de mercado
func NewWorkbookImporter(headerRow int, opts ...analyzer.Option) *WorkbookImporter {
	if headerRow <= 0 {
		headerRow = DefaultHeaderRow
	}

	return &WorkbookImporter{
		headerRow: headerRow,
		options:   opts,
	}
}

// Import lê a planilha inteira e devolve uma sessão nova; nada é mesclado em sessões existentes
func (i *WorkbookImporter) Import(r io.Reader) (*analyzer.Session, *domain.ImportSummary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	session := analyzer.NewSession(i.options...)
	summary := &domain.ImportSummary{ImportedAt: time.Now()}
	sheets := f.GetSheetList()

	clientSheet := findSheet(sheets, clientSheetAliases)
	categorySheet := findSheet(sheets, categorySheetAliases)
	subcategorySheet := findSheet(sheets, subcategorySheetAliases)

	if clientSheet == "" && categorySheet == "" && subcategorySheet == "" {
		return nil, nil, ErrEmptyWorkbook
	}

	if clientSheet == "" {
		summary.Warnings = append(summary.Warnings, "aba Cliente não encontrada")
	} else {
		sheet, err := readSheet(f, clientSheet)
		if err != nil {
			return nil, nil, err
		}

		input, err := parseProfile(sheet)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "aba %s", clientSheet)
		}

		if _, err := session.SetProfile(input); err != nil {
			return nil, nil, errors.Wrapf(err, "aba %s", clientSheet)
		}
		summary.ProfileLoaded = true
	}

	defaultCategory := ""
	if profile, ok := session.Profile(); ok {
		defaultCategory = profile.Category
	}

	if categorySheet == "" {
		summary.Warnings = append(summary.Warnings, "aba Mercado_Categoria não encontrada")
	} else {
		sheet, err := readSheet(f, categorySheet)
		if err != nil {
			return nil, nil, err
		}

		count, err := i.loadCategoryPeriods(session, sheet, defaultCategory)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "aba %s", categorySheet)
		}
		summary.CategoryPeriods = count
	}

	if subcategorySheet == "" {
		summary.Warnings = append(summary.Warnings, "aba Mercado_Subcategoria não encontrada")
	} else {
		sheet, err := readSheet(f, subcategorySheet)
		if err != nil {
			return nil, nil, err
		}

		count, err := i.loadSubcategories(session, sheet, defaultCategory)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "aba %s", subcategorySheet)
		}
		summary.Subcategories = count
	}

	return session, summary, nil
}

func (i *WorkbookImporter) loadCategoryPeriods(session *analyzer.Session, sheet sheetData, defaultCategory string) (int, error) {
	headerIdx, header, ok := i.locateHeader(sheet.rows, [][]string{revenueAliases, unitsAliases, periodAliases})
	if !ok {
		return 0, errors.Wrap(ErrMissingColumn, "período, faturamento e unidades")
	}

	used := map[int]bool{}
	revenueCol := findColumn(header, used, revenueAliases)
	unitsCol := findColumn(header, used, unitsAliases)
	periodCol := findColumn(header, used, periodAliases)
	categoryCol := findColumn(header, used, categoryAliases)

	count := 0
	for idx := headerIdx + 1; idx < len(sheet.rows); idx++ {
		row := sheet.rows[idx]
		period := cell(row, periodCol)
		if period == "" {
			continue
		}

		category := cell(row, categoryCol)
		if category == "" {
			category = defaultCategory
		}
		if category == "" {
			return count, fmt.Errorf("linha %d: categoria não informada", idx+1)
		}

		revenue, units, err := parseFigures(sheet, idx, revenueCol, unitsCol)
		if err != nil {
			return count, errors.Wrapf(err, "linha %d", idx+1)
		}

		if err := session.Market().Add(category, period, revenue, units); err != nil {
			return count, errors.Wrapf(err, "linha %d", idx+1)
		}
		count++
	}

	return count, nil
}

func (i *WorkbookImporter) loadSubcategories(session *analyzer.Session, sheet sheetData, defaultCategory string) (int, error) {
	headerIdx, header, ok := i.locateHeader(sheet.rows, [][]string{subcategoryAliases, revenueAliases, unitsAliases})
	if !ok {
		return 0, errors.Wrap(ErrMissingColumn, "subcategoria, faturamento e unidades")
	}

	used := map[int]bool{}
	nameCol := findColumn(header, used, subcategoryAliases)
	revenueCol := findColumn(header, used, revenueAliases)
	unitsCol := findColumn(header, used, unitsAliases)
	periodCol := findColumn(header, used, periodAliases)
	categoryCol := findColumn(header, used, categoryAliases)

	seen := map[string]bool{}
	for idx := headerIdx + 1; idx < len(sheet.rows); idx++ {
		row := sheet.rows[idx]
		name := cell(row, nameCol)
		if name == "" {
			continue
		}

		category := cell(row, categoryCol)
		if category == "" {
			category = defaultCategory
		}
		if category == "" {
			return len(seen), fmt.Errorf("linha %d: categoria não informada", idx+1)
		}

		revenue, units, err := parseFigures(sheet, idx, revenueCol, unitsCol)
		if err != nil {
			return len(seen), errors.Wrapf(err, "linha %d", idx+1)
		}

		if period := cell(row, periodCol); period != "" {
			err = session.Subcategories().AddPeriod(category, name, period, revenue, units)
		} else {
			err = session.Subcategories().Add(category, name, revenue, units)
		}
		if err != nil {
			return len(seen), errors.Wrapf(err, "linha %d", idx+1)
		}

		seen[category+"\x00"+name] = true
	}

	return len(seen), nil
}

// locateHeader usa a linha configurada e, se ela não tiver as colunas obrigatórias,
// procura o cabeçalho nas primeiras linhas da aba
func (i *WorkbookImporter) locateHeader(rows [][]string, required [][]string) (int, []string, bool) {
	candidates := []int{i.headerRow - 1}
	for idx := 0; idx < len(rows) && idx < headerScanLimit; idx++ {
		if idx != i.headerRow-1 {
			candidates = append(candidates, idx)
		}
	}

	for _, idx := range candidates {
		if idx < 0 || idx >= len(rows) {
			continue
		}

		used := map[int]bool{}
		complete := true
		for _, aliases := range required {
			if findColumn(rows[idx], used, aliases) < 0 {
				complete = false
				break
			}
		}
		if complete {
			return idx, rows[idx], true
		}
	}

	return 0, nil, false
}

func parseFigures(sheet sheetData, row, revenueCol, unitsCol int) (float64, int64, error) {
	revenue, err := sheet.amount(row, revenueCol)
	if err != nil {
		return 0, 0, errors.Wrap(err, "faturamento")
	}

	units, err := sheet.units(row, unitsCol)
	if err != nil {
		return 0, 0, errors.Wrap(err, "unidades")
	}

	return revenue, units, nil
}

func findSheet(sheets []string, aliases []string) string {
	for _, sheet := range sheets {
		normalized := strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToLower(sheet))
		for _, alias := range aliases {
			if normalized == alias {
				return sheet
			}
		}
	}
	return ""
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
