package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

type cellKey struct {
	row, col int
}

// sheetData guarda o texto formatado de cada célula e o valor bruto das células numéricas.
// Células numéricas não passam pela heurística de separadores de ParseAmount.
type sheetData struct {
	rows    [][]string
	numbers map[cellKey]float64
}

func readSheet(f *excelize.File, sheet string) (sheetData, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return sheetData{}, errors.Wrapf(err, "erro ao ler aba %s", sheet)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheetData{}, errors.Wrapf(err, "erro ao ler aba %s", sheet)
	}

	data := sheetData{rows: rows, numbers: map[cellKey]float64{}}
	for r, row := range raw {
		for c, value := range row {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}

			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return sheetData{}, errors.Wrapf(err, "aba %s", sheet)
			}

			// números gravados sem o atributo t ficam como CellTypeUnset
			kind, err := f.GetCellType(sheet, name)
			if err != nil {
				return sheetData{}, errors.Wrapf(err, "aba %s, célula %s", sheet, name)
			}
			if kind != excelize.CellTypeNumber && kind != excelize.CellTypeUnset {
				continue
			}

			if number, err := strconv.ParseFloat(value, 64); err == nil {
				data.numbers[cellKey{r, c}] = number
			}
		}
	}

	return data, nil
}

func (s sheetData) text(row, col int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	return cell(s.rows[row], col)
}

// amount lê células numéricas pelo valor bruto e textos via ParseAmount
func (s sheetData) amount(row, col int) (float64, error) {
	if number, ok := s.numbers[cellKey{row, col}]; ok {
		return number, nil
	}
	return utils.ParseAmount(s.text(row, col))
}

func (s sheetData) units(row, col int) (int64, error) {
	if number, ok := s.numbers[cellKey{row, col}]; ok {
		return int64(math.Round(number)), nil
	}
	return utils.ParseUnits(s.text(row, col))
}
