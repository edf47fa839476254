package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise
var (
	// Erros de sessão
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("too many active sessions")

	// Erros de validação
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// Erros de catálogo
	ErrCategoryNotFound    = errors.New("category not found")
	ErrPeriodNotFound      = errors.New("period not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrDuplicateEntry      = errors.New("duplicate entry")

	// Erros de entrada e saída
	ErrImportFailed     = errors.New("error importing workbook")
	ErrReportGeneration = errors.New("error generating report")
	ErrExportFailed     = errors.New("error exporting ranking")
)

// AnalysisError é um erro com contexto adicional para a sessão de análise
type AnalysisError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string // ID da sessão envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAnalysisErrorWithID cria um novo AnalysisError com o ID da sessão
func NewAnalysisErrorWithID(err error, code string, sessionID string, details string) *AnalysisError {
	return &AnalysisError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
