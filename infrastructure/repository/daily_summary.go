package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

const (
	dailySummaryTable = "daily_summary ds"
)

var dailySummaryColumns = []string{
	"ds.id", "ds.tenant_id", "ds.date", "ds.page_views", "ds.unique_visitors", "ds.sessions",
	"ds.bounce_rate", "ds.avg_session_duration", "ds.new_users", "ds.orders_count",
	"ds.total_revenue", "ds.avg_order_value", "ds.conversion_rate", "ds.top_pages",
	"ds.top_referrers", "ds.device_breakdown", "ds.created_at", "ds.updated_at",
}

// summaryValueColumns are overwritten on every upsert.
var summaryValueColumns = []string{
	"page_views", "unique_visitors", "sessions", "bounce_rate", "avg_session_duration",
	"new_users", "orders_count", "total_revenue", "avg_order_value", "conversion_rate",
	"top_pages", "top_referrers", "device_breakdown",
}

type DailySummaryRepository interface {
	GetByTenantAndDate(ctx context.Context, tenantID int64, date time.Time) (*domain.DailySummary, error)
	SaveOrUpdate(ctx context.Context, summary *domain.DailySummary) error
	GetByDateRange(ctx context.Context, tenantID int64, start, end time.Time) ([]*domain.DailySummary, error)
}

type dailySummaryRepository struct {
	conn postgres.Queryer
}

func NewDailySummaryRepository(conn postgres.Queryer) DailySummaryRepository {
	return &dailySummaryRepository{
		conn: conn,
	}
}

func (r *dailySummaryRepository) GetByTenantAndDate(ctx context.Context, tenantID int64, date time.Time) (*domain.DailySummary, error) {
	query, args, err := psql.
		Select(dailySummaryColumns...).
		From(dailySummaryTable).
		Where(squirrel.Eq{"ds.tenant_id": tenantID, "ds.date": date.UTC().Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	summary, err := scanDailySummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning daily summary: %w", err)
	}

	return summary, nil
}

// GetByDateRange returns the stored summaries whose date falls in [start, end), ordered by date.
func (r *dailySummaryRepository) GetByDateRange(ctx context.Context, tenantID int64, start, end time.Time) ([]*domain.DailySummary, error) {
	query, args, err := psql.
		Select(dailySummaryColumns...).
		From(dailySummaryTable).
		Where(squirrel.Eq{"ds.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"ds.date": start.UTC().Format(time.DateOnly)}).
		Where(squirrel.Lt{"ds.date": end.UTC().Format(time.DateOnly)}).
		OrderBy("ds.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary, err := scanDailySummary(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning daily summaries: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summaries, nil
}

// SaveOrUpdate overwrites every value column of the (tenant_id, date) row.
// When nothing changed the row is left untouched, updated_at included.
func (r *dailySummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.DailySummary) error {
	query, err := upsertDailySummaryQuery(summary)
	if err != nil {
		return err
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func upsertDailySummaryQuery(summary *domain.DailySummary) (squirrel.InsertBuilder, error) {
	topPages, err := marshalJSONColumn(summary.TopPages)
	if err != nil {
		return squirrel.InsertBuilder{}, fmt.Errorf("error serializing top_pages: %w", err)
	}

	topReferrers, err := marshalJSONColumn(summary.TopReferrers)
	if err != nil {
		return squirrel.InsertBuilder{}, fmt.Errorf("error serializing top_referrers: %w", err)
	}

	devices, err := marshalJSONColumn(summary.DeviceBreakdown)
	if err != nil {
		return squirrel.InsertBuilder{}, fmt.Errorf("error serializing device_breakdown: %w", err)
	}

	set := ""
	current := ""
	excluded := ""
	for i, column := range summaryValueColumns {
		if i > 0 {
			set += ", "
			current += ", "
			excluded += ", "
		}
		set += column + " = EXCLUDED." + column
		current += "daily_summary." + column
		excluded += "EXCLUDED." + column
	}

	return psql.
		Insert("daily_summary").
		Columns(append([]string{"tenant_id", "date"}, summaryValueColumns...)...).
		Values(
			summary.TenantID,
			summary.Date.UTC().Format(time.DateOnly),
			summary.PageViews,
			summary.UniqueVisitors,
			summary.Sessions,
			summary.BounceRate,
			summary.AvgSessionDuration,
			summary.NewUsers,
			summary.OrdersCount,
			summary.TotalRevenue,
			summary.AvgOrderValue,
			summary.ConversionRate,
			topPages,
			topReferrers,
			devices,
		).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (tenant_id, date) DO UPDATE SET %s, updated_at = NOW() WHERE (%s) IS DISTINCT FROM (%s)",
			set, current, excluded,
		)), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDailySummary(row rowScanner) (*domain.DailySummary, error) {
	summary := &domain.DailySummary{}
	var topPages, topReferrers, devices []byte

	err := row.Scan(
		&summary.ID,
		&summary.TenantID,
		&summary.Date,
		&summary.PageViews,
		&summary.UniqueVisitors,
		&summary.Sessions,
		&summary.BounceRate,
		&summary.AvgSessionDuration,
		&summary.NewUsers,
		&summary.OrdersCount,
		&summary.TotalRevenue,
		&summary.AvgOrderValue,
		&summary.ConversionRate,
		&topPages,
		&topReferrers,
		&devices,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.Date = summary.Date.UTC()

	if err := unmarshalJSONColumn(topPages, &summary.TopPages); err != nil {
		return nil, fmt.Errorf("error deserializing top_pages: %w", err)
	}
	if err := unmarshalJSONColumn(topReferrers, &summary.TopReferrers); err != nil {
		return nil, fmt.Errorf("error deserializing top_referrers: %w", err)
	}
	if err := unmarshalJSONColumn(devices, &summary.DeviceBreakdown); err != nil {
		return nil, fmt.Errorf("error deserializing device_breakdown: %w", err)
	}

	return summary, nil
}
