package handler

import (
	"net/http"

	"github.com/vfg2006/market-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
)

const (
	sessionPath     = "/v1/sessions/:id"
	categoryPath    = sessionPath + "/categories/:category"
	subcategoryPath = categoryPath + "/subcategories/:name"
)

func Healthcheck(sessions SessionCounter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(sessions),
		},
	}
}

func Sessions(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    sessionPath,
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    sessionPath,
			Method:  http.MethodDelete,
			Handler: DeleteSession(service),
		},
		{
			Path:    sessionPath + "/clear",
			Method:  http.MethodPost,
			Handler: ClearSession(service),
		},
		{
			Path:    sessionPath + "/profile",
			Method:  http.MethodPut,
			Handler: SetProfile(service),
		},
	}
}

func Catalog(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    sessionPath + "/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    categoryPath,
			Method:  http.MethodPut,
			Handler: RenameCategory(service),
		},
		{
			Path:    categoryPath,
			Method:  http.MethodDelete,
			Handler: RemoveCategory(service),
		},
		{
			Path:    categoryPath + "/periods",
			Method:  http.MethodPost,
			Handler: AddCategoryPeriod(service),
		},
		{
			Path:    categoryPath + "/periods/:period",
			Method:  http.MethodPut,
			Handler: EditCategoryPeriod(service),
		},
		{
			Path:    categoryPath + "/periods/:period",
			Method:  http.MethodDelete,
			Handler: RemoveCategoryPeriod(service),
		},
		{
			Path:    categoryPath + "/subcategories",
			Method:  http.MethodPost,
			Handler: AddSubcategory(service),
		},
		{
			Path:    subcategoryPath,
			Method:  http.MethodPut,
			Handler: EditSubcategory(service),
		},
		{
			Path:    subcategoryPath,
			Method:  http.MethodDelete,
			Handler: RemoveSubcategory(service),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    sessionPath + "/ranking",
			Method:  http.MethodGet,
			Handler: GetRanking(service),
		},
		{
			Path:    categoryPath + "/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
		{
			Path:    categoryPath + "/anomalies",
			Method:  http.MethodGet,
			Handler: GetAnomalies(service),
		},
		{
			Path:    categoryPath + "/action-plan",
			Method:  http.MethodGet,
			Handler: GetActionPlan(service),
		},
		{
			Path:    subcategoryPath + "/scenarios",
			Method:  http.MethodGet,
			Handler: GetScenarios(service),
		},
		{
			Path:    subcategoryPath + "/confidence",
			Method:  http.MethodGet,
			Handler: GetConfidence(service),
		},
		{
			Path:    subcategoryPath + "/ticket-limits",
			Method:  http.MethodGet,
			Handler: GetTicketLimits(service),
		},
	}
}

func Files(service analyzing.Analyzer, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    sessionPath + "/import",
			Method:  http.MethodPost,
			Handler: ImportWorkbook(service, maxUploadBytes),
		},
		{
			Path:    sessionPath + "/ranking/export",
			Method:  http.MethodGet,
			Handler: ExportRanking(service),
		},
		{
			Path:    sessionPath + "/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
