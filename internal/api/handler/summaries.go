package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/log"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

func GetDailySummaries(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := requireTenant(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		start, end, ok := dateRange(r, time.Now())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		summaries, err := aggregator.GetDailyMetrics(r.Context(), tenantID, start, end)
		if err != nil {
			writeServiceError(w, r, err, "error loading daily summaries")
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	})
}

// RebuildDailySummary recomputes one day for the caller's tenant. The day
// defaults to yesterday.
func RebuildDailySummary(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := requireTenant(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		day := utils.StartOfDay(time.Now()).AddDate(0, 0, -1)
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
				return
			}
			day = parsed
		}

		summary, err := aggregator.AggregateTenantDay(r.Context(), tenantID, day)
		if err != nil {
			writeServiceError(w, r, err, "error rebuilding daily summary")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant_id": tenantID,
			"date":      day.Format(time.DateOnly),
		}).Info("daily summary rebuilt on demand")

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetTrafficSources(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := requireTenant(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		start, end, ok := dateRange(r, time.Now())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		sources, err := aggregator.GetTrafficSources(r.Context(), tenantID, start, end)
		if err != nil {
			writeServiceError(w, r, err, "error loading traffic sources")
			return
		}

		writeJSON(w, http.StatusOK, sources)
	})
}
