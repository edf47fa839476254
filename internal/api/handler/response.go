package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/market-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/market-analyzer-api/pkg/log"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// maxJSONBody limita o corpo das requisições JSON
const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody decodifica e valida o corpo; em caso de erro já escreve a resposta
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados da requisição inválidos", validationDetails(validationErrs))
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	return true
}

func validationDetails(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		details[fieldErr.Field()] = rule
	}
	return details
}

// writeServiceError traduz o erro do serviço para a resposta padronizada
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		if apiErrors.StatusFor(analysisErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error(fallback)
		} else {
			logger.WithError(err).Warn(fallback)
		}

		var details map[string]any
		if analysisErr.SessionID != "" {
			details = map[string]any{"session_id": analysisErr.SessionID}
		}
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), details)
		return
	}

	logger.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

type pathParams struct {
	httprouter.Params
}

func paramsOf(r *http.Request) pathParams {
	return pathParams{httprouter.ParamsFromContext(r.Context())}
}

func (p pathParams) session() string {
	return p.ByName("id")
}

func (p pathParams) category() string {
	return strings.TrimSpace(p.ByName("category"))
}

// queryCategory lê o filtro de categoria da query string
func queryCategory(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("category"))
}
