package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

const (
	// EventsTable is the aliased event store table; query builders outside this
	// package reference columns as ae.<column>.
	EventsTable = "analytics_event ae"

	maxSessionEventRows = 500000
)

// EventRepository is the read side of the event store. Every method takes
// explicit tenant and time bounds; none of them writes.
type EventRepository interface {
	ListActiveTenants(ctx context.Context, start, end time.Time) ([]int64, error)
	GetSessionStats(ctx context.Context, tenantID int64, start, end time.Time) (*domain.SessionStats, error)
	GetTopPages(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.PageCount, error)
	GetTopReferrers(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.ReferrerCount, error)
	GetDeviceCounts(ctx context.Context, tenantID int64, start, end time.Time) (map[string]int64, error)
	GetTrafficSources(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.TrafficSource, error)
	GetSessionEventTimes(ctx context.Context, tenantID int64, eventType string, start, end time.Time) (map[string][]time.Time, error)
	GetSessionsWithEvent(ctx context.Context, tenantID int64, eventType string, start, end time.Time) (map[string]struct{}, error)
	CountActiveUsers(ctx context.Context, tenantID *int64, userIDs []int64, start, end time.Time) (int, error)
	CountReturningVisitors(ctx context.Context, tenantID *int64, start, end time.Time) (returning int64, total int64, err error)
	Aggregate(ctx context.Context, query squirrel.Sqlizer) ([]domain.QueryRow, error)
}

type eventRepository struct {
	conn    postgres.Queryer
	maxRows uint64
}

func NewEventRepository(conn postgres.Queryer, maxSessionRows int) EventRepository {
	rows := uint64(maxSessionEventRows)
	if maxSessionRows > 0 {
		rows = uint64(maxSessionRows)
	}

	return &eventRepository{
		conn:    conn,
		maxRows: rows,
	}
}

func (r *eventRepository) ListActiveTenants(ctx context.Context, start, end time.Time) ([]int64, error) {
	query, args, err := activeTenantsQuery(start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	tenants := make([]int64, 0)
	for rows.Next() {
		var tenantID int64
		if err := rows.Scan(&tenantID); err != nil {
			return nil, fmt.Errorf("error scanning tenant id: %w", err)
		}
		tenants = append(tenants, tenantID)
	}

	return tenants, rows.Err()
}

func activeTenantsQuery(start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select("DISTINCT ae.tenant_id").
		From(EventsTable).
		Where("ae.tenant_id IS NOT NULL").
		OrderBy("ae.tenant_id")

	return inRange(q, "ae.occurred_at", start, end)
}

func (r *eventRepository) GetSessionStats(ctx context.Context, tenantID int64, start, end time.Time) (*domain.SessionStats, error) {
	query, args, err := sessionStatsQuery(tenantID, start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	stats := &domain.SessionStats{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.Sessions,
		&stats.BouncedSessions,
		&stats.AvgSessionDuration,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning session stats: %w", err)
	}

	return stats, nil
}

// sessionStatsQuery groups the day's events by session, then counts bounced
// sessions (exactly one page view) and averages max-min event time.
func sessionStatsQuery(tenantID int64, start, end time.Time) squirrel.SelectBuilder {
	perSession := squirrel.
		Select("ae.session_id").
		Column("COUNT(*) FILTER (WHERE ae.event_type = ?) AS page_views", domain.EventTypePageView).
		Column("EXTRACT(EPOCH FROM MAX(ae.occurred_at) - MIN(ae.occurred_at)) AS duration").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"ae.occurred_at": start.UTC()}).
		Where(squirrel.Lt{"ae.occurred_at": end.UTC()}).
		GroupBy("ae.session_id")

	return psql.
		Select(
			"COUNT(*) AS sessions",
			"COUNT(*) FILTER (WHERE s.page_views = 1) AS bounced",
			"COALESCE(AVG(s.duration), 0)::float8 AS avg_duration",
		).
		FromSelect(perSession, "s")
}

func (r *eventRepository) GetTopPages(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.PageCount, error) {
	query, args, err := topPagesQuery(tenantID, start, end, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	pages := make([]domain.PageCount, 0)
	for rows.Next() {
		var page domain.PageCount
		if err := rows.Scan(&page.URL, &page.Views); err != nil {
			return nil, fmt.Errorf("error scanning top page: %w", err)
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

func topPagesQuery(tenantID int64, start, end time.Time, limit uint64) squirrel.SelectBuilder {
	q := psql.
		Select("ae.page_url", "COUNT(*) AS views").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID, "ae.event_type": domain.EventTypePageView}).
		Where("ae.page_url IS NOT NULL").
		GroupBy("ae.page_url").
		OrderBy("views DESC", "ae.page_url ASC").
		Limit(limit)

	return inRange(q, "ae.occurred_at", start, end)
}

func (r *eventRepository) GetTopReferrers(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.ReferrerCount, error) {
	query, args, err := topReferrersQuery(tenantID, start, end, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	referrers := make([]domain.ReferrerCount, 0)
	for rows.Next() {
		var ref domain.ReferrerCount
		if err := rows.Scan(&ref.Referrer, &ref.Count); err != nil {
			return nil, fmt.Errorf("error scanning referrer: %w", err)
		}
		referrers = append(referrers, ref)
	}

	return referrers, rows.Err()
}

func topReferrersQuery(tenantID int64, start, end time.Time, limit uint64) squirrel.SelectBuilder {
	q := psql.
		Select("ae.referrer", "COUNT(*) AS total").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID, "ae.event_type": domain.EventTypePageView}).
		Where("ae.referrer IS NOT NULL").
		Where(squirrel.NotEq{"ae.referrer": ""}).
		GroupBy("ae.referrer").
		OrderBy("total DESC", "ae.referrer ASC").
		Limit(limit)

	return inRange(q, "ae.occurred_at", start, end)
}

func (r *eventRepository) GetDeviceCounts(ctx context.Context, tenantID int64, start, end time.Time) (map[string]int64, error) {
	query, args, err := deviceCountsQuery(tenantID, start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var device string
		var count int64
		if err := rows.Scan(&device, &count); err != nil {
			return nil, fmt.Errorf("error scanning device count: %w", err)
		}
		counts[device] += count
	}

	return counts, rows.Err()
}

func deviceCountsQuery(tenantID int64, start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select("COALESCE(NULLIF(ae.device_type, ''), 'unknown') AS device", "COUNT(*) AS total").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID}).
		GroupBy("device")

	return inRange(q, "ae.occurred_at", start, end)
}

func (r *eventRepository) GetTrafficSources(ctx context.Context, tenantID int64, start, end time.Time, limit uint64) ([]domain.TrafficSource, error) {
	query, args, err := trafficSourcesQuery(tenantID, start, end, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	sources := make([]domain.TrafficSource, 0)
	for rows.Next() {
		var source domain.TrafficSource
		if err := rows.Scan(&source.UTMSource, &source.Referrer, &source.Count); err != nil {
			return nil, fmt.Errorf("error scanning traffic source: %w", err)
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

func trafficSourcesQuery(tenantID int64, start, end time.Time, limit uint64) squirrel.SelectBuilder {
	q := psql.
		Select(
			"COALESCE(ae.utm_source, '') AS utm_source",
			"COALESCE(ae.referrer, '') AS referrer",
			"COUNT(*) AS total",
		).
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID, "ae.event_type": domain.EventTypePageView}).
		GroupBy("ae.utm_source", "ae.referrer").
		OrderBy("total DESC").
		Limit(limit)

	return inRange(q, "ae.occurred_at", start, end)
}

// GetSessionEventTimes returns, per session, the ascending times at which the
// session fired eventType. At most maxRows events are read.
func (r *eventRepository) GetSessionEventTimes(ctx context.Context, tenantID int64, eventType string, start, end time.Time) (map[string][]time.Time, error) {
	query, args, err := sessionEventTimesQuery(tenantID, eventType, start, end, r.maxRows).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	var read uint64
	times := make(map[string][]time.Time)
	for rows.Next() {
		var sessionID string
		var occurredAt time.Time
		if err := rows.Scan(&sessionID, &occurredAt); err != nil {
			return nil, fmt.Errorf("error scanning session event: %w", err)
		}
		times[sessionID] = append(times[sessionID], occurredAt.UTC())
		read++
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.warnIfTruncated(read, tenantID, eventType, start, end)
	return times, nil
}

func sessionEventTimesQuery(tenantID int64, eventType string, start, end time.Time, limit uint64) squirrel.SelectBuilder {
	q := psql.
		Select("ae.session_id", "ae.occurred_at").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID, "ae.event_type": eventType}).
		OrderBy("ae.session_id", "ae.occurred_at").
		Limit(limit)

	return inRange(q, "ae.occurred_at", start, end)
}

// GetSessionsWithEvent returns the distinct sessions that fired eventType at
// least once. At most maxRows sessions are read.
func (r *eventRepository) GetSessionsWithEvent(ctx context.Context, tenantID int64, eventType string, start, end time.Time) (map[string]struct{}, error) {
	query, args, err := sessionsWithEventQuery(tenantID, eventType, start, end, r.maxRows).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	sessions := make(map[string]struct{})
	for rows.Next() {
		var sessionID string
		if err := rows.Scan(&sessionID); err != nil {
			return nil, fmt.Errorf("error scanning session id: %w", err)
		}
		sessions[sessionID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.warnIfTruncated(uint64(len(sessions)), tenantID, eventType, start, end)
	return sessions, nil
}

func sessionsWithEventQuery(tenantID int64, eventType string, start, end time.Time, limit uint64) squirrel.SelectBuilder {
	q := psql.
		Select("DISTINCT ae.session_id").
		From(EventsTable).
		Where(squirrel.Eq{"ae.tenant_id": tenantID, "ae.event_type": eventType}).
		OrderBy("ae.session_id").
		Limit(limit)

	return inRange(q, "ae.occurred_at", start, end)
}

// warnIfTruncated logs when a session read stopped at the row cap, which
// means later sessions were left out of the result.
func (r *eventRepository) warnIfTruncated(read uint64, tenantID int64, eventType string, start, end time.Time) {
	if read < r.maxRows {
		return
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"event_type": eventType,
		"start":      start.Format(time.RFC3339),
		"end":        end.Format(time.RFC3339),
		"max_rows":   r.maxRows,
	}).Warn("Session event read hit the row cap; funnel counts are truncated")
}

// CountActiveUsers counts how many of userIDs fired at least one event in [start, end).
func (r *eventRepository) CountActiveUsers(ctx context.Context, tenantID *int64, userIDs []int64, start, end time.Time) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	query, args, err := activeUsersQuery(tenantID, userIDs, start, end).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting active users: %w", err)
	}

	return count, nil
}

func activeUsersQuery(tenantID *int64, userIDs []int64, start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select("COUNT(DISTINCT ae.user_id)").
		From(EventsTable).
		Where(squirrel.Expr("ae.user_id = ANY(?)", pq.Array(userIDs)))

	q = withTenant(q, "ae.tenant_id", tenantID)
	return inRange(q, "ae.occurred_at", start, end)
}

// CountReturningVisitors counts visitors active in [start, end) and how many
// of them had been seen before start.
func (r *eventRepository) CountReturningVisitors(ctx context.Context, tenantID *int64, start, end time.Time) (int64, int64, error) {
	query, args, err := returningVisitorsQuery(tenantID, start, end).ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("error building query: %w", err)
	}

	var returning, total int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&returning, &total); err != nil {
		return 0, 0, fmt.Errorf("error counting returning visitors: %w", err)
	}

	return returning, total, nil
}

func returningVisitorsQuery(tenantID *int64, start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select().
		Column(`COUNT(DISTINCT ae.visitor_id) FILTER (WHERE EXISTS (
			SELECT 1 FROM analytics_event prev
			WHERE prev.visitor_id = ae.visitor_id
			AND prev.tenant_id IS NOT DISTINCT FROM ae.tenant_id
			AND prev.occurred_at < ?)) AS returning_visitors`, start.UTC()).
		Column("COUNT(DISTINCT ae.visitor_id) AS total_visitors").
		From(EventsTable)

	q = withTenant(q, "ae.tenant_id", tenantID)
	return inRange(q, "ae.occurred_at", start, end)
}

// Aggregate runs a query built by the query layer and decodes its rows.
func (r *eventRepository) Aggregate(ctx context.Context, query squirrel.Sqlizer) ([]domain.QueryRow, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	result, err := scanQueryRows(rows)
	if err != nil {
		return nil, fmt.Errorf("error scanning aggregate rows: %w", err)
	}

	return result, nil
}
