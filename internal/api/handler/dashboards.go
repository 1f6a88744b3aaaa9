package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
)

func ListDashboards(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		dashboards, err := dashboarder.ListDashboards(r.Context(), claims.UserID, tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error listing dashboards")
			return
		}

		writeJSON(w, http.StatusOK, dashboards)
	})
}

func CreateDashboard(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var dashboard domain.Dashboard
		if err := decodeBody(w, r, &dashboard); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid dashboard body", nil)
			return
		}
		dashboard.OwnerID = claims.UserID
		dashboard.TenantID = tenantID

		created, err := dashboarder.CreateDashboard(r.Context(), &dashboard)
		if err != nil {
			writeServiceError(w, r, err, "error creating dashboard")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func GetDashboard(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		dashboard, err := dashboarder.GetDashboard(r.Context(), dashboardID(r), claims.UserID, tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error loading dashboard")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	})
}

func UpdateDashboard(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var dashboard domain.Dashboard
		if err := decodeBody(w, r, &dashboard); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid dashboard body", nil)
			return
		}
		dashboard.ID = dashboardID(r)
		dashboard.TenantID = tenantID

		updated, err := dashboarder.UpdateDashboard(r.Context(), &dashboard, claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "error updating dashboard")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func SetDefaultDashboard(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		if err := dashboarder.SetDefaultDashboard(r.Context(), dashboardID(r), claims.UserID, tenantID); err != nil {
			writeServiceError(w, r, err, "error setting default dashboard")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ArchiveDashboard(dashboarder dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		if err := dashboarder.ArchiveDashboard(r.Context(), dashboardID(r), claims.UserID, tenantID); err != nil {
			writeServiceError(w, r, err, "error archiving dashboard")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func dashboardID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}
