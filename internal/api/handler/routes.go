package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-engine/internal/api/handler/router"
	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-engine/internal/usecases/cohorting"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/internal/usecases/forecasting"
	"github.com/vfg2006/analytics-engine/internal/usecases/funneling"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
	"github.com/vfg2006/analytics-engine/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Query(querier querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/query/metrics",
			Method:      http.MethodGet,
			Handler:     GetAvailableMetrics(querier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/query/dimensions",
			Method:      http.MethodGet,
			Handler:     GetAvailableDimensions(querier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/query",
			Method:      http.MethodPost,
			Handler:     RunQuery(querier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/query/timeseries",
			Method:      http.MethodGet,
			Handler:     GetTimeSeries(querier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Summaries(aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/summaries",
			Method:      http.MethodGet,
			Handler:     GetDailySummaries(aggregator),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/summaries/rebuild",
			Method:      http.MethodPost,
			Handler:     RebuildDailySummary(aggregator),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/traffic-sources",
			Method:      http.MethodGet,
			Handler:     GetTrafficSources(aggregator),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Funnels(funneler funneling.Funneler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/funnels",
			Method:      http.MethodPost,
			Handler:     CreateFunnel(funneler),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/funnels",
			Method:      http.MethodGet,
			Handler:     ListFunnels(funneler),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/funnels/:id",
			Method:      http.MethodGet,
			Handler:     GetFunnel(funneler),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/funnels/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetFunnelSummary(funneler),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Cohorts(cohorter cohorting.Cohorter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cohorts",
			Method:      http.MethodPost,
			Handler:     CreateCohort(cohorter),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/cohorts",
			Method:      http.MethodGet,
			Handler:     ListCohorts(cohorter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cohorts/:id/members",
			Method:      http.MethodGet,
			Handler:     GetCohortMembers(cohorter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cohorts/:id/retention",
			Method:      http.MethodGet,
			Handler:     GetCohortRetention(cohorter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cohort-comparison",
			Method:      http.MethodGet,
			Handler:     CompareCohorts(cohorter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Grants(forecaster forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/grants/burn-rate",
			Method:      http.MethodPost,
			Handler:     CalculateBurnRate(forecaster),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/grants/summary",
			Method:      http.MethodPost,
			Handler:     GetGrantSummary(forecaster),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Reports(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(reporter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     CreateReport(reporter),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodGet,
			Handler:     GetReport(reporter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReport(reporter),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/reports/:id/pause",
			Method:      http.MethodPut,
			Handler:     PauseReport(reporter),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/reports/:id/resume",
			Method:      http.MethodPut,
			Handler:     ResumeReport(reporter),
			Middlewares: middlewares{middleware.Admins()},
		},
		{
			Path:        "/v1/reports/:id/run",
			Method:      http.MethodPost,
			Handler:     RunReport(reporter),
			Middlewares: middlewares{middleware.Admins()},
		},
	}
}

func Dashboards(dashboarder dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodGet,
			Handler:     ListDashboards(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodPost,
			Handler:     CreateDashboard(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodGet,
			Handler:     GetDashboard(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDashboard(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodDelete,
			Handler:     ArchiveDashboard(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id/default",
			Method:      http.MethodPut,
			Handler:     SetDefaultDashboard(dashboarder),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(jobs []CronJob) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: middlewares{middleware.PlatformAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: middlewares{middleware.PlatformAdminOnly()},
		},
	}
}
