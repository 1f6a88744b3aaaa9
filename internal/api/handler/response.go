package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-engine/internal/usecases/cohorting"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/internal/usecases/funneling"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/log"
	"github.com/vfg2006/analytics-engine/pkg/middleware"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRangeDays = 30
	maxBodyBytes     = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("error encoding response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// writeServiceError maps a use-case error to its API code. Errors without a
// code are logged and reported as internal.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func errorCode(err error) string {
	var (
		queryErr     *querying.QueryError
		aggregateErr *aggregating.AggregateError
		funnelErr    *funneling.FunnelError
		cohortErr    *cohorting.CohortError
		reportErr    *reporting.ReportError
		dashboardErr *dashboarding.DashboardError
	)

	switch {
	case errors.As(err, &queryErr):
		return queryErr.Code
	case errors.As(err, &aggregateErr):
		return aggregateErr.Code
	case errors.As(err, &funnelErr):
		return funnelErr.Code
	case errors.As(err, &cohortErr):
		return cohortErr.Code
	case errors.As(err, &reportErr):
		return reportErr.Code
	case errors.As(err, &dashboardErr):
		return dashboardErr.Code
	default:
		return apiErrors.ErrInternalServer
	}
}

// tenantScope resolves the tenant a request reads. Tenant users are pinned to
// their own tenant. Platform admins read platform-wide unless they pass
// tenant_id.
func tenantScope(r *http.Request) (*domain.Claims, *int64, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, nil, errUnauthenticated
	}

	if claims.RoleID != middleware.RolePlatformAdmin {
		if claims.TenantID == nil {
			return nil, nil, errTenantRequired
		}
		return claims, claims.TenantID, nil
	}

	raw := r.URL.Query().Get("tenant_id")
	if raw == "" {
		return claims, claims.TenantID, nil
	}

	tenantID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tenantID <= 0 {
		return nil, nil, errInvalidTenant
	}
	return claims, &tenantID, nil
}

// requireTenant is tenantScope for endpoints that only make sense for one tenant.
func requireTenant(r *http.Request) (*domain.Claims, int64, error) {
	claims, tenantID, err := tenantScope(r)
	if err != nil {
		return nil, 0, err
	}
	if tenantID == nil {
		return nil, 0, errTenantRequired
	}
	return claims, *tenantID, nil
}

var (
	errUnauthenticated = errors.New("user is not authenticated")
	errTenantRequired  = errors.New("a tenant is required for this resource")
	errInvalidTenant   = errors.New("tenant_id must be a positive integer")
)

func writeScopeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errUnauthenticated):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, err.Error(), nil)
	case errors.Is(err, errInvalidTenant):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrTenantRequired, err.Error(), nil)
	}
}

// dateRange reads the optional start and end query parameters (YYYY-MM-DD,
// end inclusive) into a half-open range.
func dateRange(r *http.Request, now time.Time) (time.Time, time.Time, bool) {
	start, end, err := utils.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"), now, defaultRangeDays)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func intParam(r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
