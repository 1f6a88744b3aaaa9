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
	cohortDefinitionTable = "cohort_definition cd"
)

var cohortDefinitionColumns = []string{
	"cd.id", "cd.name", "cd.type", "cd.tenant_id", "cd.date_range_start", "cd.date_range_end",
	"cd.filters", "cd.created_at", "cd.updated_at",
}

type CohortDefinitionRepository interface {
	Create(ctx context.Context, cohort *domain.CohortDefinition) error
	GetByID(ctx context.Context, id string, tenantID *int64) (*domain.CohortDefinition, error)
	List(ctx context.Context, tenantID *int64) ([]*domain.CohortDefinition, error)
}

type cohortDefinitionRepository struct {
	conn postgres.Queryer
}

func NewCohortDefinitionRepository(conn postgres.Queryer) CohortDefinitionRepository {
	return &cohortDefinitionRepository{
		conn: conn,
	}
}

func (r *cohortDefinitionRepository) Create(ctx context.Context, cohort *domain.CohortDefinition) error {
	filters, err := marshalJSONColumn(cohort.Filters)
	if err != nil {
		return fmt.Errorf("error serializing filters: %w", err)
	}

	query, args, err := psql.
		Insert("cohort_definition").
		Columns("id", "name", "type", "tenant_id", "date_range_start", "date_range_end", "filters").
		Values(
			cohort.ID,
			cohort.Name,
			string(cohort.Type),
			nullableInt64(cohort.TenantID),
			cohort.DateRangeStart,
			cohort.DateRangeEnd,
			filters,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cohort.CreatedAt, &cohort.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// GetByID scopes the lookup to tenantID. Platform-wide cohorts (NULL tenant)
// are visible to every tenant.
func (r *cohortDefinitionRepository) GetByID(ctx context.Context, id string, tenantID *int64) (*domain.CohortDefinition, error) {
	q := psql.
		Select(cohortDefinitionColumns...).
		From(cohortDefinitionTable).
		Where(squirrel.Eq{"cd.id": id})

	query, args, err := visibleToTenant(q, "cd.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	cohort, err := scanCohortDefinition(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning cohort definition: %w", err)
	}

	return cohort, nil
}

func (r *cohortDefinitionRepository) List(ctx context.Context, tenantID *int64) ([]*domain.CohortDefinition, error) {
	q := psql.
		Select(cohortDefinitionColumns...).
		From(cohortDefinitionTable).
		OrderBy("cd.created_at DESC", "cd.id")

	query, args, err := visibleToTenant(q, "cd.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	cohorts := make([]*domain.CohortDefinition, 0)
	for rows.Next() {
		cohort, err := scanCohortDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning cohort definitions: %w", err)
		}
		cohorts = append(cohorts, cohort)
	}

	return cohorts, rows.Err()
}

func scanCohortDefinition(row rowScanner) (*domain.CohortDefinition, error) {
	cohort := &domain.CohortDefinition{}
	var cohortType string
	var tenantID sql.NullInt64
	var start, end sql.NullTime
	var filters []byte

	err := row.Scan(
		&cohort.ID,
		&cohort.Name,
		&cohortType,
		&tenantID,
		&start,
		&end,
		&filters,
		&cohort.CreatedAt,
		&cohort.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cohort.Type = domain.CohortType(cohortType)
	cohort.TenantID = int64Ptr(tenantID)
	cohort.DateRangeStart = timePtr(start)
	cohort.DateRangeEnd = timePtr(end)

	if err := unmarshalJSONColumn(filters, &cohort.Filters); err != nil {
		return nil, fmt.Errorf("error deserializing filters: %w", err)
	}

	return cohort, nil
}
