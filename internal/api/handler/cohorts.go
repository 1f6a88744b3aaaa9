package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/cohorting"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
)

func CreateCohort(cohorter cohorting.Cohorter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var cohort domain.CohortDefinition
		if err := decodeBody(w, r, &cohort); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid cohort body", nil)
			return
		}
		cohort.TenantID = tenantID

		created, err := cohorter.CreateCohort(r.Context(), &cohort)
		if err != nil {
			writeServiceError(w, r, err, "error creating cohort")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func ListCohorts(cohorter cohorting.Cohorter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		cohorts, err := cohorter.ListCohorts(r.Context(), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error listing cohorts")
			return
		}

		writeJSON(w, http.StatusOK, cohorts)
	})
}

func GetCohortMembers(cohorter cohorting.Cohorter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cohort, ok := loadCohort(w, r, cohorter)
		if !ok {
			return
		}

		members, err := cohorter.GetCohortMembers(r.Context(), cohort)
		if err != nil {
			writeServiceError(w, r, err, "error loading cohort members")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"cohort_id": cohort.ID,
			"count":     len(members),
			"members":   members,
		})
	})
}

func GetCohortRetention(cohorter cohorting.Cohorter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weeks, ok := intParam(r, "weeks", cohorting.DefaultWeeks)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "weeks must be an integer", nil)
			return
		}

		cohort, ok := loadCohort(w, r, cohorter)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"cohort_id": cohort.ID,
			"retention": cohorter.BuildRetentionCurve(r.Context(), cohort, weeks),
		})
	})
}

func CompareCohorts(cohorter cohorting.Cohorter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		weeks, ok := intParam(r, "weeks", cohorting.DefaultWeeks)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "weeks must be an integer", nil)
			return
		}

		ids := make([]string, 0)
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ids is required", nil)
			return
		}

		writeJSON(w, http.StatusOK, cohorter.CompareCohorts(r.Context(), ids, tenantID, weeks))
	})
}

func loadCohort(w http.ResponseWriter, r *http.Request, cohorter cohorting.Cohorter) (*domain.CohortDefinition, bool) {
	_, tenantID, err := tenantScope(r)
	if err != nil {
		writeScopeError(w, err)
		return nil, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	cohort, err := cohorter.GetCohort(r.Context(), id, tenantID)
	if err != nil {
		writeServiceError(w, r, err, "error loading cohort")
		return nil, false
	}

	return cohort, true
}
