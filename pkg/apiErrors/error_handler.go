package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Arquivo acima do limite
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado pela rota

	// Erros de sessão (3000-3999)
	ErrSessionNotFound = "SES_001" // Sessão não encontrada ou expirada
	ErrSessionLimit    = "SES_002" // Limite de sessões ativas

	// Erros de análise (4000-4999)
	ErrResourceNotFound = "ANL_001" // Categoria, período ou subcategoria inexistente
	ErrConflict         = "ANL_002" // Registro duplicado
	ErrNoData           = "ANL_003" // Sem dados suficientes para a análise
	ErrImportFailed     = "ANL_004" // Falha ao importar planilha

	// Erros do servidor (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrReportGeneration = "SRV_005" // Erro ao gerar relatório ou exportação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrSessionLimit:        http.StatusTooManyRequests,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrConflict:            http.StatusConflict,
	ErrNoData:              http.StatusNotFound,
	ErrImportFailed:        http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrReportGeneration:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
