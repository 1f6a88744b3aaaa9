package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/log"
)

func CreateReport(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var report domain.ScheduledReport
		if err := decodeBody(w, r, &report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid report body", nil)
			return
		}
		report.TenantID = tenantID
		report.OwnerID = claims.UserID

		created, err := reporter.CreateReport(r.Context(), &report)
		if err != nil {
			writeServiceError(w, r, err, "error creating report")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func ListReports(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		reports, err := reporter.ListReports(r.Context(), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error listing reports")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	})
}

func GetReport(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		report, err := reporter.GetReport(r.Context(), reportID(r), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error loading report")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func DeleteReport(reporter reporting.Reporter) http.Handler {
	return reportAction(reporter.DeleteReport, "error deleting report")
}

func PauseReport(reporter reporting.Reporter) http.Handler {
	return reportAction(reporter.PauseReport, "error pausing report")
}

func ResumeReport(reporter reporting.Reporter) http.Handler {
	return reportAction(reporter.ResumeReport, "error resuming report")
}

type reportActionFunc func(ctx context.Context, id string, tenantID *int64) error

func reportAction(action reportActionFunc, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		if err := action(r.Context(), reportID(r), tenantID); err != nil {
			writeServiceError(w, r, err, message)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// RunReport executes and mails a report now without touching its schedule.
func RunReport(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		id := reportID(r)
		result, sent, err := reporter.RunReport(r.Context(), id, tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error running report")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"report_id": id,
			"sent":      sent,
		}).Info("report run on demand")

		writeJSON(w, http.StatusOK, map[string]any{
			"result": result,
			"sent":   sent,
		})
	})
}

func reportID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}
