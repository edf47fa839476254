package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("valor numérico inválido")

type amountSuffix struct {
	suffix     string
	multiplier int64
}

// ordem importa: "mil" antes de "mi", sufixos longos antes dos curtos
var amountSuffixes = []amountSuffix{
	{"mil", 1_000},
	{"bi", 1_000_000_000},
	{"mi", 1_000_000},
	{"b", 1_000_000_000},
	{"m", 1_000_000},
	{"k", 1_000},
}

// 1 a 3 dígitos sem zero à esquerda, ponto e exatamente 3 dígitos: "1.500", "120.000"
var thousandsPattern = regexp.MustCompile(`^[1-9]\d{0,2}\.\d{3}$`)

// ParseAmount converte textos de planilha em número.
// Aceita "R$ 1.234,56", "1234.56", "1.5M", "2,3 mi", "1,2 bi", "850K" e "15%".
// Texto vazio retorna 0.
func ParseAmount(text string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.NewReplacer("r$", "", "$", "", "\u00a0", "", " ", "", "%", "").Replace(s)

	if s == "" || s == "-" || s == "nan" {
		return 0, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	multiplier := int64(1)
	for _, sfx := range amountSuffixes {
		if strings.HasSuffix(s, sfx.suffix) {
			multiplier = sfx.multiplier
			s = strings.TrimSuffix(s, sfx.suffix)
			break
		}
	}

	s = normalizeSeparators(s, multiplier > 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	d = d.Mul(decimal.NewFromInt(multiplier))
	if negative {
		d = d.Neg()
	}

	value, _ := d.Float64()
	return value, nil
}

// ParseUnits converte o texto em quantidade inteira, arredondando
func ParseUnits(text string) (int64, error) {
	value, err := ParseAmount(text)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(value)), nil
}

// normalizeSeparators deixa apenas '.' como separador decimal.
// Com '.' e ',' presentes o último é o decimal; vírgula única é decimal;
// ponto único só é separador de milhar no formato "1.500" (até 3 dígitos antes do ponto, sem sufixo);
// "1234.567" continua decimal.
func normalizeSeparators(s string, hasSuffix bool) string {
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case commas == 1:
		return strings.Replace(s, ",", ".", 1)
	case commas > 1:
		return strings.ReplaceAll(s, ",", "")
	case dots > 1:
		return strings.ReplaceAll(s, ".", "")
	case dots == 1 && !hasSuffix && thousandsPattern.MatchString(s):
		return strings.Replace(s, ".", "", 1)
	}

	return s
}

// FormatBR abrevia valores para exibição: 1,5M, 1,2K ou 1.234
func FormatBR(value float64) string {
	abs := math.Abs(value)

	switch {
	case abs >= 1_000_000_000:
		return strings.Replace(fmt.Sprintf("%.1fB", value/1_000_000_000), ".", ",", 1)
	case abs >= 1_000_000:
		return strings.Replace(fmt.Sprintf("%.1fM", value/1_000_000), ".", ",", 1)
	case abs >= 1_000:
		return strings.Replace(fmt.Sprintf("%.1fK", value/1_000), ".", ",", 1)
	}

	return fmt.Sprintf("%.0f", value)
}

// FormatBRL formata valores monetários no padrão brasileiro: R$ 1.234,56
func FormatBRL(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), fraction)
}
