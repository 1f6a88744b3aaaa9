package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/log"
)

func GetAvailableMetrics(querier querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, querier.GetAvailableMetrics())
	})
}

func GetAvailableDimensions(querier querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, querier.GetAvailableDimensions())
	})
}

// RunQuery executes an ad-hoc query. Malformed specs are a 400 here, unlike
// the dashboard paths which degrade to empty results.
func RunQuery(querier querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var spec domain.QuerySpec
		if err := decodeBody(w, r, &spec); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid query body", nil)
			return
		}

		rows, err := querier.Query(r.Context(), spec, tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error executing query")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"metric": spec.Metric,
			"rows":   len(rows),
		}).Debug("query executed")

		writeJSON(w, http.StatusOK, map[string]any{
			"rows":  rows,
			"count": len(rows),
		})
	})
}

func GetTimeSeries(querier querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		metric := r.URL.Query().Get("metric")
		if _, ok := querier.GetAvailableMetrics()[metric]; !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "unknown metric", metric)
			return
		}

		period := domain.TimePeriod(r.URL.Query().Get("period"))
		switch period {
		case "":
			period = domain.PeriodDay
		case domain.PeriodHour, domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "period must be hour, day, week or month", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"metric": metric,
			"period": period,
			"points": querier.GetTimeSeries(r.Context(), metric, period, tenantID),
		})
	})
}
