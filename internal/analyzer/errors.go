package analyzer

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidNumber        = errors.New("valor numérico inválido")
	ErrOutOfRange           = errors.New("valor fora do intervalo permitido")
	ErrEmptyName            = errors.New("nome obrigatório")
	ErrDuplicatePeriod      = errors.New("período já cadastrado para a categoria")
	ErrDuplicateSubcategory = errors.New("subcategoria já cadastrada na categoria")
	ErrDuplicateCategory    = errors.New("categoria já cadastrada")
)

func checkAmount(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s não é um número finito", ErrInvalidNumber, field)
	}
	if value < 0 {
		return fmt.Errorf("%w: %s não pode ser negativo (%v)", ErrInvalidNumber, field, value)
	}
	return nil
}

func checkUnits(field string, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s não pode ser negativo (%d)", ErrInvalidNumber, field, value)
	}
	return nil
}

func checkName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrEmptyName, field)
	}
	return nil
}
