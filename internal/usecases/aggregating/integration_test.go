//go:build integration

package aggregating

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/infrastructure/migration"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
)

const postgresImage = "postgres:16-alpine"

func startPostgres(t *testing.T, ctx context.Context) *postgres.Connection {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "analytics",
				"POSTGRES_PASSWORD": "analytics",
				"POSTGRES_DB":       "analytics",
				"TZ":                "UTC",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Skipping test: could not start %s: %v", postgresImage, err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://analytics:analytics@%s:%s/analytics?sslmode=disable", host, port.Port())
	conn, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, migration.Apply(ctx, conn))
	// A second apply must be a no-op.
	require.NoError(t, migration.Apply(ctx, conn))

	return conn
}

func seedEvents(t *testing.T, ctx context.Context, conn *postgres.Connection) {
	t.Helper()

	const insert = `INSERT INTO analytics_event
		(tenant_id, event_type, occurred_at, session_id, visitor_id, page_url, referrer, device_type, payload)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9::jsonb)`

	events := []struct {
		tenant    int64
		eventType string
		at        string
		session   string
		visitor   string
		page      string
		referrer  string
		device    string
		payload   string
	}{
		{1, "page_view", "2024-03-14T10:00:00Z", "s1", "v1", "/home", "https://google.com", "desktop", `{}`},
		{1, "page_view", "2024-03-14T10:05:00Z", "s1", "v1", "/pricing", "", "desktop", `{}`},
		{1, "purchase", "2024-03-14T10:10:00Z", "s1", "v1", "", "", "desktop", `{"value": "120.50"}`},
		// counted as an order but carries no readable value
		{1, "purchase", "2024-03-14T10:20:00Z", "s1", "v1", "", "", "desktop", `{"value": "n/a"}`},
		{1, "page_view", "2024-03-14T12:00:00Z", "s2", "v2", "/home", "", "mobile", `{}`},
		{1, "signup", "2024-03-14T15:00:00Z", "s3", "v3", "", "", "mobile", `{}`},
		// outside the rolled-up day
		{1, "page_view", "2024-03-15T00:00:00Z", "s4", "v4", "/home", "", "desktop", `{}`},
		{2, "page_view", "2024-03-13T23:59:59Z", "s5", "v5", "/home", "", "desktop", `{}`},
	}

	for _, e := range events {
		at, err := time.Parse(time.RFC3339, e.at)
		require.NoError(t, err)

		_, err = conn.ExecContext(ctx, insert,
			e.tenant, e.eventType, at, e.session, e.visitor, e.page, e.referrer, e.device, e.payload)
		require.NoError(t, err)
	}
}

func TestIntegration_DailyRollupIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	conn := startPostgres(t, ctx)
	seedEvents(t, ctx, conn)

	queryConfig := config.Query{DefaultLimit: 100, MaxLimit: 1000, MaxRangeDays: 366, DefaultWindowDays: 30}
	events := repository.NewEventRepository(conn, 0)
	summaries := repository.NewDailySummaryRepository(conn)
	service := NewService(events, summaries, querying.NewService(events, queryConfig), config.Rollup{MaxConcurrentTenants: 2}, queryConfig)

	asOf := time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	result, err := service.AggregateDailyMetrics(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, day, result.Date)
	assert.Equal(t, 1, result.Tenants)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 0, result.Failed)

	first, err := summaries.GetByTenantAndDate(ctx, 1, day)
	require.NoError(t, err)
	require.NotNil(t, first)

	assert.Equal(t, int64(3), first.PageViews)
	assert.Equal(t, int64(3), first.UniqueVisitors)
	assert.Equal(t, int64(3), first.Sessions)
	assert.Equal(t, int64(2), first.OrdersCount)
	assert.Equal(t, int64(1), first.NewUsers)
	assert.True(t, decimal.RequireFromString("120.50").Equal(first.TotalRevenue), first.TotalRevenue.String())
	assert.True(t, decimal.RequireFromString("60.25").Equal(first.AvgOrderValue), first.AvgOrderValue.String())
	assert.InDelta(t, 0.6667, first.ConversionRate, 0.0001)
	require.NotEmpty(t, first.TopPages)
	assert.Equal(t, "/home", first.TopPages[0].URL)
	assert.Equal(t, int64(2), first.TopPages[0].Views)

	result, err = service.AggregateDailyMetrics(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)

	second, err := summaries.GetByTenantAndDate(ctx, 1, day)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PageViews, second.PageViews)
	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt, "an unchanged rollup must not touch the row")

	var rows int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_summary`).Scan(&rows))
	assert.Equal(t, 1, rows)
}
