package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/funneling"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
)

func CreateFunnel(funneler funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := requireTenant(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		var funnel domain.FunnelDefinition
		if err := decodeBody(w, r, &funnel); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid funnel body", nil)
			return
		}
		funnel.TenantID = tenantID

		created, err := funneler.CreateFunnel(r.Context(), &funnel)
		if err != nil {
			writeServiceError(w, r, err, "error creating funnel")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func ListFunnels(funneler funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tenantID, err := tenantScope(r)
		if err != nil {
			writeScopeError(w, err)
			return
		}

		funnels, err := funneler.ListFunnels(r.Context(), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "error listing funnels")
			return
		}

		writeJSON(w, http.StatusOK, funnels)
	})
}

// GetFunnel returns the definition with its step counts over the requested range.
func GetFunnel(funneler funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		funnel, start, end, ok := loadFunnel(w, r, funneler)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"funnel": funnel,
			"steps":  funneler.CalculateFunnel(r.Context(), funnel, start, end),
		})
	})
}

func GetFunnelSummary(funneler funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		funnel, start, end, ok := loadFunnel(w, r, funneler)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, funneler.GetFunnelSummary(r.Context(), funnel, start, end))
	})
}

func loadFunnel(w http.ResponseWriter, r *http.Request, funneler funneling.Funneler) (*domain.FunnelDefinition, time.Time, time.Time, bool) {
	_, tenantID, err := tenantScope(r)
	if err != nil {
		writeScopeError(w, err)
		return nil, time.Time{}, time.Time{}, false
	}

	start, end, ok := dateRange(r, time.Now())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
		return nil, time.Time{}, time.Time{}, false
	}

	if err := funneler.ValidateRange(start, end); err != nil {
		writeServiceError(w, r, err, "invalid date range")
		return nil, time.Time{}, time.Time{}, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	funnel, err := funneler.GetFunnel(r.Context(), id, tenantID)
	if err != nil {
		writeServiceError(w, r, err, "error loading funnel")
		return nil, time.Time{}, time.Time{}, false
	}

	return funnel, start, end, true
}
