package utils

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidShare = errors.New("meta de participação inválida")

// ParseShareTarget lê metas no formato "Nome:pct" ou "Nome=pct", com pct em percentual.
// "Likely:0,5" devolve ("Likely", 0.005).
func ParseShareTarget(text string) (string, float64, error) {
	idx := strings.IndexAny(text, ":=")
	if idx <= 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidShare, text)
	}

	name := strings.TrimSpace(text[:idx])
	if name == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidShare, text)
	}

	pct, err := ParseAmount(text[idx+1:])
	if err != nil || pct <= 0 || pct > 100 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidShare, text)
	}

	return name, pct / 100, nil
}
