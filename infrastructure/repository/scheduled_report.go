package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

const (
	scheduledReportTable = "scheduled_report sr"
)

var scheduledReportColumns = []string{
	"sr.id", "sr.name", "sr.report_type", "sr.tenant_id", "sr.owner_id", "sr.metrics", "sr.filters",
	"sr.date_range", "sr.schedule_type", "sr.recipients", "sr.last_sent", "sr.next_send", "sr.status",
	"sr.created_at", "sr.updated_at",
}

type ScheduledReportRepository interface {
	ListDue(ctx context.Context, now time.Time, limit uint64) ([]*domain.ScheduledReport, error)
	GetByID(ctx context.Context, id string, tenantID *int64) (*domain.ScheduledReport, error)
	List(ctx context.Context, tenantID *int64) ([]*domain.ScheduledReport, error)
	Create(ctx context.Context, report *domain.ScheduledReport) error
	UpdateStatus(ctx context.Context, id string, tenantID *int64, status domain.ReportStatus, nextSend *time.Time) (bool, error)
	MarkSent(ctx context.Context, id string, previousNextSend, lastSent, nextSend time.Time) (bool, error)
	Delete(ctx context.Context, id string, tenantID *int64) (bool, error)
}

type scheduledReportRepository struct {
	conn postgres.Queryer
}

func NewScheduledReportRepository(conn postgres.Queryer) ScheduledReportRepository {
	return &scheduledReportRepository{
		conn: conn,
	}
}

// ListDue returns active reports whose next_send is at or before now, oldest first.
func (r *scheduledReportRepository) ListDue(ctx context.Context, now time.Time, limit uint64) ([]*domain.ScheduledReport, error) {
	query, args, err := dueReportsQuery(now, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.list(ctx, query, args)
}

func dueReportsQuery(now time.Time, limit uint64) squirrel.SelectBuilder {
	return psql.
		Select(scheduledReportColumns...).
		From(scheduledReportTable).
		Where(squirrel.Eq{"sr.status": string(domain.ReportStatusActive)}).
		Where(squirrel.LtOrEq{"sr.next_send": now.UTC()}).
		OrderBy("sr.next_send ASC", "sr.id").
		Limit(limit)
}

func (r *scheduledReportRepository) GetByID(ctx context.Context, id string, tenantID *int64) (*domain.ScheduledReport, error) {
	q := psql.
		Select(scheduledReportColumns...).
		From(scheduledReportTable).
		Where(squirrel.Eq{"sr.id": id})

	query, args, err := withTenant(q, "sr.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	report, err := scanScheduledReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning scheduled report: %w", err)
	}

	return report, nil
}

func (r *scheduledReportRepository) List(ctx context.Context, tenantID *int64) ([]*domain.ScheduledReport, error) {
	q := psql.
		Select(scheduledReportColumns...).
		From(scheduledReportTable).
		OrderBy("sr.created_at DESC", "sr.id")

	query, args, err := withTenant(q, "sr.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *scheduledReportRepository) list(ctx context.Context, query string, args []any) ([]*domain.ScheduledReport, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	reports := make([]*domain.ScheduledReport, 0)
	for rows.Next() {
		report, err := scanScheduledReport(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning scheduled reports: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

func (r *scheduledReportRepository) Create(ctx context.Context, report *domain.ScheduledReport) error {
	filters, err := marshalJSONColumn(report.Filters)
	if err != nil {
		return fmt.Errorf("error serializing filters: %w", err)
	}

	query, args, err := psql.
		Insert("scheduled_report").
		Columns(
			"id", "name", "report_type", "tenant_id", "owner_id", "metrics", "filters",
			"date_range", "schedule_type", "recipients", "next_send", "status",
		).
		Values(
			report.ID,
			report.Name,
			string(report.ReportType),
			nullableInt64(report.TenantID),
			report.OwnerID,
			pq.Array(report.Metrics),
			filters,
			report.DateRange,
			string(report.ScheduleType),
			pq.Array(report.Recipients),
			report.NextSend.UTC(),
			string(report.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// UpdateStatus switches a report between active and paused. nextSend is
// written only when non-nil. Reports false when no row matched.
func (r *scheduledReportRepository) UpdateStatus(ctx context.Context, id string, tenantID *int64, status domain.ReportStatus, nextSend *time.Time) (bool, error) {
	q := psql.
		Update("scheduled_report").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if nextSend != nil {
		q = q.Set("next_send", nextSend.UTC())
	}
	if tenantID != nil {
		q = q.Where(squirrel.Eq{"tenant_id": *tenantID})
	}

	return execAffected(ctx, r.conn, q)
}

// MarkSent advances a report after a dispatch. The update only applies while
// next_send still equals previousNextSend, so overlapping runs advance a
// report once.
func (r *scheduledReportRepository) MarkSent(ctx context.Context, id string, previousNextSend, lastSent, nextSend time.Time) (bool, error) {
	return execAffected(ctx, r.conn, markSentQuery(id, previousNextSend, lastSent, nextSend))
}

func markSentQuery(id string, previousNextSend, lastSent, nextSend time.Time) squirrel.UpdateBuilder {
	return psql.
		Update("scheduled_report").
		Set("last_sent", lastSent.UTC()).
		Set("next_send", nextSend.UTC()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "next_send": previousNextSend.UTC()})
}

func (r *scheduledReportRepository) Delete(ctx context.Context, id string, tenantID *int64) (bool, error) {
	q := psql.
		Delete("scheduled_report").
		Where(squirrel.Eq{"id": id})

	if tenantID != nil {
		q = q.Where(squirrel.Eq{"tenant_id": *tenantID})
	}

	return execAffected(ctx, r.conn, q)
}

func scanScheduledReport(row rowScanner) (*domain.ScheduledReport, error) {
	report := &domain.ScheduledReport{}
	var reportType, scheduleType, status string
	var tenantID sql.NullInt64
	var lastSent sql.NullTime
	var filters []byte
	var metrics, recipients pq.StringArray

	err := row.Scan(
		&report.ID,
		&report.Name,
		&reportType,
		&tenantID,
		&report.OwnerID,
		&metrics,
		&filters,
		&report.DateRange,
		&scheduleType,
		&recipients,
		&lastSent,
		&report.NextSend,
		&status,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.ReportType = domain.ReportType(reportType)
	report.ScheduleType = domain.ScheduleType(scheduleType)
	report.Status = domain.ReportStatus(status)
	report.TenantID = int64Ptr(tenantID)
	report.LastSent = timePtr(lastSent)
	report.NextSend = report.NextSend.UTC()
	report.Metrics = []string(metrics)
	report.Recipients = []string(recipients)

	if err := unmarshalJSONColumn(filters, &report.Filters); err != nil {
		return nil, fmt.Errorf("error deserializing filters: %w", err)
	}

	return report, nil
}
