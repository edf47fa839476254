package handler

import (
	"net/http"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/market-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/market-analyzer-api/pkg/log"
	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

// GetRanking ranqueia as subcategorias; sem ?category= considera todas as categorias
func GetRanking(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		category := queryCategory(r)
		logger := log.ForSession(r.Context(), id)

		ranking, err := service.GenerateRanking(id, category)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar ranking")
			return
		}

		logger.WithFields(log.Fields{
			"category": category,
			"entries":  len(ranking),
		}).Debug("Ranking gerado")

		writeJSON(w, http.StatusOK, ranking)
	})
}

// GetScenarios simula os cenários de participação; ?share=Nome:pct substitui as metas padrão
func GetScenarios(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		var targets []domain.ShareTarget
		for _, raw := range r.URL.Query()["share"] {
			name, share, err := utils.ParseShareTarget(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{"share": raw})
				return
			}
			targets = append(targets, domain.ShareTarget{Name: name, Share: share})
		}

		simulation, err := service.SimulateScenarios(params.session(), params.category(), params.ByName("name"), targets)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao simular cenários")
			return
		}

		writeJSON(w, http.StatusOK, simulation)
	})
}

func GetTicketLimits(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		limits, err := service.TicketLimits(params.session(), params.category(), params.ByName("name"))
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular faixa de ticket")
			return
		}

		writeJSON(w, http.StatusOK, limits)
	})
}

func GetConfidence(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		confidence, err := service.Confidence(params.session(), params.category(), params.ByName("name"))
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular confiança")
			return
		}

		writeJSON(w, http.StatusOK, confidence)
	})
}

func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		trend, err := service.Trend(params.session(), params.category())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular tendência")
			return
		}

		writeJSON(w, http.StatusOK, trend)
	})
}

func GetAnomalies(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		anomalies, err := service.DetectAnomalies(params.session(), params.category())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao detectar anomalias")
			return
		}

		writeJSON(w, http.StatusOK, anomalies)
	})
}

func GetActionPlan(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := paramsOf(r)
		logger := log.ForSession(r.Context(), params.session())

		plan, err := service.ActionPlan(params.session(), params.category())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar plano de ação")
			return
		}

		writeJSON(w, http.StatusOK, plan)
	})
}
