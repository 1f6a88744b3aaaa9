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
	funnelDefinitionTable = "funnel_definition fd"
)

var funnelDefinitionColumns = []string{
	"fd.id", "fd.tenant_id", "fd.name", "fd.steps", "fd.conversion_window_hours", "fd.created_at", "fd.updated_at",
}

type FunnelDefinitionRepository interface {
	Create(ctx context.Context, funnel *domain.FunnelDefinition) error
	GetByID(ctx context.Context, id string, tenantID *int64) (*domain.FunnelDefinition, error)
	List(ctx context.Context, tenantID *int64) ([]*domain.FunnelDefinition, error)
}

type funnelDefinitionRepository struct {
	conn postgres.Queryer
}

func NewFunnelDefinitionRepository(conn postgres.Queryer) FunnelDefinitionRepository {
	return &funnelDefinitionRepository{
		conn: conn,
	}
}

func (r *funnelDefinitionRepository) Create(ctx context.Context, funnel *domain.FunnelDefinition) error {
	steps, err := marshalJSONColumn(funnel.Steps)
	if err != nil {
		return fmt.Errorf("error serializing steps: %w", err)
	}

	query, args, err := psql.
		Insert("funnel_definition").
		Columns("id", "tenant_id", "name", "steps", "conversion_window_hours").
		Values(funnel.ID, funnel.TenantID, funnel.Name, steps, funnel.ConversionWindowHours).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&funnel.CreatedAt, &funnel.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *funnelDefinitionRepository) GetByID(ctx context.Context, id string, tenantID *int64) (*domain.FunnelDefinition, error) {
	q := psql.
		Select(funnelDefinitionColumns...).
		From(funnelDefinitionTable).
		Where(squirrel.Eq{"fd.id": id})

	query, args, err := withTenant(q, "fd.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	funnel, err := scanFunnelDefinition(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning funnel definition: %w", err)
	}

	return funnel, nil
}

func (r *funnelDefinitionRepository) List(ctx context.Context, tenantID *int64) ([]*domain.FunnelDefinition, error) {
	q := psql.
		Select(funnelDefinitionColumns...).
		From(funnelDefinitionTable).
		OrderBy("fd.created_at DESC", "fd.id")

	query, args, err := withTenant(q, "fd.tenant_id", tenantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	funnels := make([]*domain.FunnelDefinition, 0)
	for rows.Next() {
		funnel, err := scanFunnelDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning funnel definitions: %w", err)
		}
		funnels = append(funnels, funnel)
	}

	return funnels, rows.Err()
}

func scanFunnelDefinition(row rowScanner) (*domain.FunnelDefinition, error) {
	funnel := &domain.FunnelDefinition{}
	var steps []byte

	err := row.Scan(
		&funnel.ID,
		&funnel.TenantID,
		&funnel.Name,
		&steps,
		&funnel.ConversionWindowHours,
		&funnel.CreatedAt,
		&funnel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSONColumn(steps, &funnel.Steps); err != nil {
		return nil, fmt.Errorf("error deserializing steps: %w", err)
	}

	return funnel, nil
}
