package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

const maxCohortMembers = 100000

// cohortFilterColumns is the allow-list for custom cohort filters.
var cohortFilterColumns = map[string]string{
	"event_type":   "ae.event_type",
	"country":      "ae.country",
	"device_type":  "ae.device_type",
	"utm_source":   "ae.utm_source",
	"utm_campaign": "ae.utm_campaign",
}

// CohortFilterAllowed reports whether custom cohorts may filter on field.
func CohortFilterAllowed(field string) bool {
	_, ok := cohortFilterColumns[field]
	return ok
}

// ErrUnsupportedCohortFilter is returned when a custom cohort filters on a
// field outside the allow-list.
type ErrUnsupportedCohortFilter struct {
	Field string
}

func (e ErrUnsupportedCohortFilter) Error() string {
	return fmt.Sprintf("unsupported cohort filter: %s", e.Field)
}

// CohortMemberRepository derives cohort membership from the user registry and
// the event store. Membership is never stored.
type CohortMemberRepository interface {
	RegisteredBetween(ctx context.Context, tenantID *int64, start, end time.Time) ([]int64, error)
	FirstPurchaseBetween(ctx context.Context, tenantID *int64, start, end time.Time) ([]int64, error)
	ActiveInVertical(ctx context.Context, tenantID *int64, vertical string, start, end time.Time) ([]int64, error)
	MatchingEvents(ctx context.Context, tenantID *int64, filters map[string]string, start, end time.Time) ([]int64, error)
}

type cohortMemberRepository struct {
	conn postgres.Queryer
}

func NewCohortMemberRepository(conn postgres.Queryer) CohortMemberRepository {
	return &cohortMemberRepository{
		conn: conn,
	}
}

func (r *cohortMemberRepository) RegisteredBetween(ctx context.Context, tenantID *int64, start, end time.Time) ([]int64, error) {
	return r.selectIDs(ctx, registeredBetweenQuery(tenantID, start, end))
}

func registeredBetweenQuery(tenantID *int64, start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select("DISTINCT u.id").
		From("users u").
		OrderBy("u.id").
		Limit(maxCohortMembers)

	if tenantID != nil {
		q = q.
			Join("group_membership gm ON gm.user_id = u.id").
			Where(squirrel.Eq{"gm.tenant_id": *tenantID})
	}

	return inRange(q, "u.created_at", start, end)
}

func (r *cohortMemberRepository) FirstPurchaseBetween(ctx context.Context, tenantID *int64, start, end time.Time) ([]int64, error) {
	return r.selectIDs(ctx, firstPurchaseBetweenQuery(tenantID, start, end))
}

func firstPurchaseBetweenQuery(tenantID *int64, start, end time.Time) squirrel.SelectBuilder {
	firstPurchases := squirrel.
		Select("ae.user_id", "MIN(ae.occurred_at) AS first_at").
		From(EventsTable).
		Where(squirrel.Eq{"ae.event_type": domain.EventTypePurchase}).
		Where("ae.user_id IS NOT NULL").
		GroupBy("ae.user_id")
	firstPurchases = withTenant(firstPurchases, "ae.tenant_id", tenantID)

	q := psql.
		Select("fp.user_id").
		FromSelect(firstPurchases, "fp").
		OrderBy("fp.user_id").
		Limit(maxCohortMembers)

	return inRange(q, "fp.first_at", start, end)
}

func (r *cohortMemberRepository) ActiveInVertical(ctx context.Context, tenantID *int64, vertical string, start, end time.Time) ([]int64, error) {
	return r.selectIDs(ctx, activeInVerticalQuery(tenantID, vertical, start, end))
}

func activeInVerticalQuery(tenantID *int64, vertical string, start, end time.Time) squirrel.SelectBuilder {
	q := psql.
		Select("DISTINCT ae.user_id").
		From(EventsTable).
		Where("ae.user_id IS NOT NULL").
		OrderBy("ae.user_id").
		Limit(maxCohortMembers)

	if vertical != "" {
		q = q.
			Join("group_membership gm ON gm.user_id = ae.user_id AND gm.tenant_id = ae.tenant_id").
			Where(squirrel.Eq{"gm.vertical": vertical})
	}

	q = withTenant(q, "ae.tenant_id", tenantID)
	return inRange(q, "ae.occurred_at", start, end)
}

func (r *cohortMemberRepository) MatchingEvents(ctx context.Context, tenantID *int64, filters map[string]string, start, end time.Time) ([]int64, error) {
	query, err := matchingEventsQuery(tenantID, filters, start, end)
	if err != nil {
		return nil, err
	}
	return r.selectIDs(ctx, query)
}

func matchingEventsQuery(tenantID *int64, filters map[string]string, start, end time.Time) (squirrel.SelectBuilder, error) {
	q := psql.
		Select("DISTINCT ae.user_id").
		From(EventsTable).
		Where("ae.user_id IS NOT NULL").
		OrderBy("ae.user_id").
		Limit(maxCohortMembers)

	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		column, ok := cohortFilterColumns[key]
		if !ok {
			return squirrel.SelectBuilder{}, ErrUnsupportedCohortFilter{Field: key}
		}
		q = q.Where(squirrel.Eq{column: filters[key]})
	}

	q = withTenant(q, "ae.tenant_id", tenantID)
	return inRange(q, "ae.occurred_at", start, end), nil
}

func (r *cohortMemberRepository) selectIDs(ctx context.Context, query squirrel.SelectBuilder) ([]int64, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning member id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
