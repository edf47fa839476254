package importer

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

var (
	periodAliases      = []string{"período", "periodo", "period", "mês", "mes", "month"}
	revenueAliases     = []string{"faturamento", "revenue", "receita"}
	unitsAliases       = []string{"unidades", "units", "quantidade", "qtd"}
	categoryAliases    = []string{"categoria", "category"}
	subcategoryAliases = []string{"subcategoria", "subcategory"}
)

// findColumn retorna a primeira coluna ainda livre cujo cabeçalho contém algum dos aliases
func findColumn(header []string, used map[int]bool, aliases []string) int {
	for idx, title := range header {
		if used[idx] {
			continue
		}

		normalized := strings.ToLower(strings.TrimSpace(title))
		for _, alias := range aliases {
			if strings.Contains(normalized, alias) {
				used[idx] = true
				return idx
			}
		}
	}
	return -1
}

type profileField int

const (
	fieldCustomTicket profileField = iota
	fieldTicket
	fieldCompany
	fieldCategory
	fieldMargin
	fieldRevenue
	fieldUnits
	fieldTolerance
	fieldCAC
	fieldMarketing
)

// ordem importa: "ticket custom" precisa casar antes de "ticket"
var profileLabels = []struct {
	field   profileField
	aliases []string
}{
	{fieldCustomTicket, []string{"custom", "personalizado"}},
	{fieldTicket, []string{"ticket"}},
	{fieldCompany, []string{"empresa", "company", "loja"}},
	{fieldCategory, []string{"categoria", "category"}},
	{fieldMargin, []string{"margem", "margin"}},
	{fieldRevenue, []string{"faturamento", "revenue", "receita"}},
	{fieldUnits, []string{"unidades", "units", "quantidade"}},
	{fieldTolerance, []string{"range", "toler", "faixa"}},
	{fieldCAC, []string{"cac"}},
	{fieldMarketing, []string{"marketing", "investimento"}},
}

func matchProfileField(label string) (profileField, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, candidate := range profileLabels {
		for _, alias := range candidate.aliases {
			if strings.Contains(normalized, alias) {
				return candidate.field, true
			}
		}
	}
	return 0, false
}

// parseProfile lê a aba Cliente: cada linha tem um rótulo seguido do valor
func parseProfile(sheet sheetData) (domain.ProfileInput, error) {
	values := map[profileField]cellKey{}

	for r, row := range sheet.rows {
		labelIdx := -1
		for idx := range row {
			if cell(row, idx) != "" {
				labelIdx = idx
				break
			}
		}
		if labelIdx < 0 {
			continue
		}

		field, ok := matchProfileField(row[labelIdx])
		if !ok {
			continue
		}
		if _, exists := values[field]; exists {
			continue
		}

		for idx := labelIdx + 1; idx < len(row); idx++ {
			if cell(row, idx) != "" {
				values[field] = cellKey{r, idx}
				break
			}
		}
	}

	text := func(field profileField) string {
		key, ok := values[field]
		if !ok {
			return ""
		}
		return sheet.text(key.row, key.col)
	}

	input := domain.ProfileInput{
		Company:  text(fieldCompany),
		Category: text(fieldCategory),
	}
	if input.Company == "" || input.Category == "" {
		return input, errors.Wrap(ErrMissingProfile, "empresa e categoria")
	}

	var err error
	if input.TicketPrice, err = parseOptional(sheet, values, fieldTicket, "ticket médio"); err != nil {
		return input, err
	}
	if input.MarginPct, err = parseOptional(sheet, values, fieldMargin, "margem"); err != nil {
		return input, err
	}
	if input.Revenue3P, err = parseOptional(sheet, values, fieldRevenue, "faturamento"); err != nil {
		return input, err
	}
	if key, ok := values[fieldUnits]; ok {
		if input.Units3P, err = sheet.units(key.row, key.col); err != nil {
			return input, errors.Wrap(err, "unidades")
		}
	}

	pointers := []struct {
		field  profileField
		label  string
		target **float64
	}{
		{fieldTolerance, "range permitido", &input.TolerancePct},
		{fieldCustomTicket, "ticket customizado", &input.CustomTicket},
		{fieldCAC, "CAC", &input.CAC},
		{fieldMarketing, "investimento em marketing", &input.MarketingSpend},
	}
	for _, p := range pointers {
		if _, ok := values[p.field]; !ok {
			continue
		}
		value, err := parseOptional(sheet, values, p.field, p.label)
		if err != nil {
			return input, err
		}
		if value > 0 {
			*p.target = &value
		}
	}

	return input, nil
}

func parseOptional(sheet sheetData, values map[profileField]cellKey, field profileField, label string) (float64, error) {
	key, ok := values[field]
	if !ok {
		return 0, nil
	}

	value, err := sheet.amount(key.row, key.col)
	if err != nil {
		return 0, errors.Wrap(err, label)
	}
	return value, nil
}
