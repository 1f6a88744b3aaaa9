package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	aggregatemocks "github.com/vfg2006/analytics-engine/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/analytics-engine/internal/usecases/authenticating"
	cohortmocks "github.com/vfg2006/analytics-engine/internal/usecases/cohorting/mocks"
	dashboardmocks "github.com/vfg2006/analytics-engine/internal/usecases/dashboarding/mocks"
	forecastmocks "github.com/vfg2006/analytics-engine/internal/usecases/forecasting/mocks"
	funnelmocks "github.com/vfg2006/analytics-engine/internal/usecases/funneling/mocks"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	reportmocks "github.com/vfg2006/analytics-engine/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestServer_Chain(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authenticating.NewService(config.Auth{Secret: "chain-secret"})
	querier := querying.NewService(nil, config.Query{DefaultLimit: 100, MaxLimit: 1000})

	server, err := New(&config.Config{Server: config.Server{Port: "0"}}, Services{
		Authenticator: auth,
		Querier:       querier,
		Aggregator:    aggregatemocks.NewMockAggregator(ctrl),
		Funneler:      funnelmocks.NewMockFunneler(ctrl),
		Cohorter:      cohortmocks.NewMockCohorter(ctrl),
		Forecaster:    forecastmocks.NewMockForecaster(ctrl),
		Reporter:      reportmocks.NewMockReporter(ctrl),
		Dashboarder:   dashboardmocks.NewMockDashboarder(ctrl),
	})
	require.NoError(t, err)

	tenantID := int64(4)
	token, err := auth.IssueToken(domain.Claims{UserID: 9, RoleID: 3, TenantID: &tenantID}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{name: "healthcheck is public", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "metrics are public", path: "/metrics", wantStatus: http.StatusOK},
		{name: "missing token", path: "/v1/query/metrics", wantStatus: http.StatusUnauthorized},
		{name: "bad token", path: "/v1/query/metrics", token: "nope", wantStatus: http.StatusUnauthorized},
		{name: "authenticated", path: "/v1/query/metrics", token: token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			server.httpServer.Handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewRouter_LeavesOutMissingServices(t *testing.T) {
	querier := querying.NewService(nil, config.Query{DefaultLimit: 100, MaxLimit: 1000})

	rt := NewRouter(Services{Querier: querier})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "healthcheck", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "reports without a reporter", method: http.MethodDelete, path: "/v1/reports/r1", wantStatus: http.StatusNotFound},
		{name: "funnels without a funneler", method: http.MethodGet, path: "/v1/funnels", wantStatus: http.StatusNotFound},
		{name: "cron without jobs", method: http.MethodGet, path: "/v1/cron/status", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
