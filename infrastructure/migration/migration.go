package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
)

//go:embed schema.sql
var schema string

const DefaultDashboardName = "Overview"

// Schema returns the DDL applied by Apply.
func Schema() string {
	return schema
}

// Apply runs the whole schema in a single transaction. Every statement is
// idempotent, so applying twice is a no-op.
func Apply(ctx context.Context, conn postgres.Conn) error {
	startTime := time.Now()
	logrus.Info("Applying database schema...")

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("error applying schema: %w", err)
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Database schema applied")
	return nil
}

// DefaultLayout is the widget set of the seeded dashboard.
func DefaultLayout() map[string]any {
	return map[string]any{
		"columns": 12,
		"widgets": []any{
			map[string]any{"type": "metric", "metric": "page_views", "width": 3},
			map[string]any{"type": "metric", "metric": "unique_visitors", "width": 3},
			map[string]any{"type": "metric", "metric": "sessions", "width": 3},
			map[string]any{"type": "metric", "metric": "revenue", "width": 3},
			map[string]any{"type": "timeseries", "metric": "page_views", "period": "day", "width": 12},
			map[string]any{"type": "table", "source": "traffic_sources", "width": 6},
			map[string]any{"type": "table", "source": "top_pages", "width": 6},
		},
	}
}

// SeedDefaultDashboard creates the shared platform-wide default dashboard of
// ownerID unless one already exists. It reports whether a dashboard was created.
func SeedDefaultDashboard(ctx context.Context, dashboards dashboarding.Dashboarder, ownerID int64) (*domain.Dashboard, bool, error) {
	existing, err := dashboards.ListDashboards(ctx, ownerID, nil)
	if err != nil {
		return nil, false, fmt.Errorf("error listing dashboards: %w", err)
	}

	for _, d := range existing {
		if d.IsDefault && d.TenantID == nil && d.OwnerID == ownerID {
			logrus.WithField("dashboard_id", d.ID).Info("Default dashboard already present, skipping seed")
			return d, false, nil
		}
	}

	created, err := dashboards.CreateDashboard(ctx, &domain.Dashboard{
		Name:         DefaultDashboardName,
		LayoutConfig: DefaultLayout(),
		OwnerID:      ownerID,
		IsDefault:    true,
		IsShared:     true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("error creating default dashboard: %w", err)
	}

	logrus.WithField("dashboard_id", created.ID).Info("Default dashboard seeded")
	return created, true, nil
}
