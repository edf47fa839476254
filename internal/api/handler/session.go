package handler

import (
	"net/http"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/market-analyzer-api/pkg/log"
)

func CreateSession(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.CreateSession()
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao criar sessão")
			return
		}

		writeJSON(w, http.StatusCreated, info)
	})
}

func GetSession(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		snapshot, err := service.GetSession(id)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao consultar sessão")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func DeleteSession(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		if err := service.DeleteSession(id); err != nil {
			writeServiceError(w, logger, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ClearSession(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		if err := service.ClearSession(id); err != nil {
			writeServiceError(w, logger, err, "Erro ao limpar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SetProfile(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		var request domain.ProfileRequest
		if !decodeBody(w, r, &request) {
			return
		}

		profile, err := service.SetProfile(id, request.ToInput())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao salvar perfil do cliente")
			return
		}

		logger.WithFields(log.Fields{
			"company":  profile.Company,
			"category": profile.Category,
		}).Info("Perfil do cliente atualizado")

		writeJSON(w, http.StatusOK, profile)
	})
}

func ListCategories(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		summaries, err := service.CategorySummaries(id)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao listar categorias")
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	})
}

func AddCategoryPeriod(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var request domain.CategoryPeriodRequest
		if !decodeBody(w, r, &request) {
			return
		}

		err := service.AddCategoryPeriod(params.session(), params.category(), request.Period, request.Revenue, request.Units)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao incluir período")
			return
		}

		w.WriteHeader(http.StatusCreated)
	})
}

func EditCategoryPeriod(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var request domain.PeriodValuesRequest
		if !decodeBody(w, r, &request) {
			return
		}

		err := service.EditCategoryPeriod(params.session(), params.category(), params.ByName("period"), request.Revenue, request.Units)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao editar período")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func RemoveCategoryPeriod(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		if err := service.RemoveCategoryPeriod(params.session(), params.category(), params.ByName("period")); err != nil {
			writeServiceError(w, logger, err, "Erro ao remover período")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func RenameCategory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var request domain.RenameCategoryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		if err := service.RenameCategory(params.session(), params.category(), request.Name); err != nil {
			writeServiceError(w, logger, err, "Erro ao renomear categoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func RemoveCategory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		if err := service.RemoveCategory(params.session(), params.category()); err != nil {
			writeServiceError(w, logger, err, "Erro ao remover categoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func AddSubcategory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var request domain.SubcategoryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		err := service.AddSubcategory(params.session(), params.category(), request.Name, request.Period, request.Revenue, request.Units)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao incluir subcategoria")
			return
		}

		w.WriteHeader(http.StatusCreated)
	})
}

func EditSubcategory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var request domain.EditSubcategoryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		err := service.EditSubcategory(params.session(), params.category(), params.ByName("name"), request.Name, request.Revenue, request.Units)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao editar subcategoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func RemoveSubcategory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		if err := service.RemoveSubcategory(params.session(), params.category(), params.ByName("name")); err != nil {
			writeServiceError(w, logger, err, "Erro ao remover subcategoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
