package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

const (
	dashboardTable = "dashboard d"
)

var dashboardColumns = []string{
	"d.id", "d.name", "d.layout_config", "d.owner_id", "d.tenant_id", "d.is_default", "d.is_shared",
	"d.status", "d.created_at", "d.updated_at",
}

type DashboardRepository interface {
	Create(ctx context.Context, dashboard *domain.Dashboard) error
	GetByID(ctx context.Context, id string, tenantID *int64) (*domain.Dashboard, error)
	List(ctx context.Context, ownerID int64, tenantID *int64) ([]*domain.Dashboard, error)
	Update(ctx context.Context, dashboard *domain.Dashboard) (bool, error)
	SetDefault(ctx context.Context, id string, ownerID int64, tenantID *int64) (bool, error)
	Archive(ctx context.Context, id string, tenantID *int64) (bool, error)
}

type dashboardRepository struct {
	conn postgres.Conn
}

func NewDashboardRepository(conn postgres.Conn) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) Create(ctx context.Context, dashboard *domain.Dashboard) error {
	layout, err := marshalJSONColumn(dashboard.LayoutConfig)
	if err != nil {
		return fmt.Errorf("error serializing layout_config: %w", err)
	}

	query, args, err := psql.
		Insert("dashboard").
		Columns("id", "name", "layout_config", "owner_id", "tenant_id", "is_default", "is_shared", "status").
		Values(
			dashboard.ID,
			dashboard.Name,
			layout,
			dashboard.OwnerID,
			nullableInt64(dashboard.TenantID),
			dashboard.IsDefault,
			dashboard.IsShared,
			string(dashboard.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&dashboard.CreatedAt, &dashboard.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *dashboardRepository) GetByID(ctx context.Context, id string, tenantID *int64) (*domain.Dashboard, error) {
	q := psql.
		Select(dashboardColumns...).
		From(dashboardTable).
		Where(squirrel.Eq{"d.id": id})

	query, args, err := visibleToTenant(q, "d.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	dashboard, err := scanDashboard(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning dashboard: %w", err)
	}

	return dashboard, nil
}

// List returns the active dashboards the user can open: their own, the ones
// shared inside the tenant, and platform-wide ones.
func (r *dashboardRepository) List(ctx context.Context, ownerID int64, tenantID *int64) ([]*domain.Dashboard, error) {
	query, args, err := listDashboardsQuery(ownerID, tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	dashboards := make([]*domain.Dashboard, 0)
	for rows.Next() {
		dashboard, err := scanDashboard(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning dashboards: %w", err)
		}
		dashboards = append(dashboards, dashboard)
	}

	return dashboards, rows.Err()
}

func listDashboardsQuery(ownerID int64, tenantID *int64) squirrel.SelectBuilder {
	q := psql.
		Select(dashboardColumns...).
		From(dashboardTable).
		Where(squirrel.Eq{"d.status": string(domain.DashboardStatusActive)}).
		OrderBy("d.is_default DESC", "d.name ASC", "d.id")

	visible := squirrel.Or{
		squirrel.Eq{"d.owner_id": ownerID},
		squirrel.Eq{"d.tenant_id": nil},
	}
	if tenantID != nil {
		visible = append(visible, squirrel.Eq{"d.tenant_id": *tenantID, "d.is_shared": true})
		q = q.Where(squirrel.Or{squirrel.Eq{"d.tenant_id": *tenantID}, squirrel.Eq{"d.tenant_id": nil}})
	} else {
		visible = append(visible, squirrel.Eq{"d.is_shared": true})
	}

	return q.Where(visible)
}

func (r *dashboardRepository) Update(ctx context.Context, dashboard *domain.Dashboard) (bool, error) {
	layout, err := marshalJSONColumn(dashboard.LayoutConfig)
	if err != nil {
		return false, fmt.Errorf("error serializing layout_config: %w", err)
	}

	q := psql.
		Update("dashboard").
		Set("name", dashboard.Name).
		Set("layout_config", layout).
		Set("is_shared", dashboard.IsShared).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dashboard.ID, "status": string(domain.DashboardStatusActive)})

	if dashboard.TenantID != nil {
		q = q.Where(squirrel.Eq{"tenant_id": *dashboard.TenantID})
	}

	return execAffected(ctx, r.conn, q)
}

// SetDefault makes id the only default dashboard of ownerID within the tenant.
func (r *dashboardRepository) SetDefault(ctx context.Context, id string, ownerID int64, tenantID *int64) (bool, error) {
	var updated bool

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		unset := psql.
			Update("dashboard").
			Set("is_default", false).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"owner_id": ownerID, "is_default": true}).
			Where(tenantEq("tenant_id", tenantID))

		if _, err := execAffected(ctx, tx, unset); err != nil {
			return err
		}

		set := psql.
			Update("dashboard").
			Set("is_default", true).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id, "owner_id": ownerID, "status": string(domain.DashboardStatusActive)})

		ok, err := execAffected(ctx, tx, set)
		if err != nil {
			return err
		}
		if !ok {
			return sql.ErrNoRows
		}

		updated = true
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return updated, nil
}

func (r *dashboardRepository) Archive(ctx context.Context, id string, tenantID *int64) (bool, error) {
	q := psql.
		Update("dashboard").
		Set("status", string(domain.DashboardStatusArchived)).
		Set("is_default", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if tenantID != nil {
		q = q.Where(squirrel.Eq{"tenant_id": *tenantID})
	}

	return execAffected(ctx, r.conn, q)
}

func scanDashboard(row rowScanner) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}
	var layout []byte
	var tenantID sql.NullInt64
	var status string

	err := row.Scan(
		&dashboard.ID,
		&dashboard.Name,
		&layout,
		&dashboard.OwnerID,
		&tenantID,
		&dashboard.IsDefault,
		&dashboard.IsShared,
		&status,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	dashboard.TenantID = int64Ptr(tenantID)
	dashboard.Status = domain.DashboardStatus(status)

	if err := unmarshalJSONColumn(layout, &dashboard.LayoutConfig); err != nil {
		return nil, fmt.Errorf("error deserializing layout_config: %w", err)
	}

	return dashboard, nil
}
