package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"Texto vazio", "", 0},
		{"Traço", "-", 0},
		{"Inteiro simples", "1500", 1500},
		{"Decimal com ponto", "1234.56", 1234.56},
		{"Moeda brasileira", "R$ 1.234,56", 1234.56},
		{"Moeda americana", "$1,234.56", 1234.56},
		{"Milhar com ponto", "1.500", 1500},
		{"Milhares com vários pontos", "3.720.000.000", 3720000000},
		{"Decimal com vírgula", "0,15", 0.15},
		{"Fração com três casas", "0.150", 0.15},
		{"Decimal com três casas e quatro dígitos inteiros", "1234.567", 1234.567},
		{"Faturamento com três casas decimais", "50000.125", 50000.125},
		{"Negativo com três casas decimais", "-1234.567", -1234.567},
		{"Zero à esquerda não é milhar", "012.345", 12.345},
		{"Sufixo M", "1.5M", 1500000},
		{"Sufixo mi com vírgula", "2,3 mi", 2300000},
		{"Sufixo bi", "1,2 bi", 1200000000},
		{"Sufixo K", "850K", 850000},
		{"Sufixo mil", "1,5 mil", 1500},
		{"Percentual", "15%", 15},
		{"Negativo", "-1.234,50", -1234.5},
		{"Negativo entre parênteses", "(200)", -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "1,2,3.4.5", "R$ --"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, input)
	}
}

func TestParseUnits(t *testing.T) {
	units, err := ParseUnits("19.578.947")
	require.NoError(t, err)
	assert.Equal(t, int64(19578947), units)

	units, err = ParseUnits("2,6")
	require.NoError(t, err)
	assert.Equal(t, int64(3), units)
}

func TestFormatBR(t *testing.T) {
	assert.Equal(t, "3,7B", FormatBR(3720000000))
	assert.Equal(t, "1,5M", FormatBR(1500000))
	assert.Equal(t, "1,2K", FormatBR(1234))
	assert.Equal(t, "999", FormatBR(999))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,50", FormatBRL(0.5))
	assert.Equal(t, "R$ 3.720.000.000,00", FormatBRL(3720000000))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-10))
}

func TestParseShareTarget(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantShare float64
		wantErr   bool
	}{
		{name: "Dois pontos", input: "Likely:0.5", wantName: "Likely", wantShare: 0.005},
		{name: "Igual com vírgula", input: "Agressivo=2,5", wantName: "Agressivo", wantShare: 0.025},
		{name: "Com percentual", input: "Base: 1%", wantName: "Base", wantShare: 0.01},
		{name: "Sem separador", input: "Likely", wantErr: true},
		{name: "Sem nome", input: ":1", wantErr: true},
		{name: "Meta zero", input: "Zero:0", wantErr: true},
		{name: "Acima de 100", input: "Tudo:150", wantErr: true},
		{name: "Valor inválido", input: "X:abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, share, err := ParseShareTarget(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShare)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.InDelta(t, tt.wantShare, share, 1e-12)
		})
	}
}
