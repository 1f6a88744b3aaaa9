package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// psql is the statement builder shared by every repository.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// withTenant scopes q to tenantID. A nil tenant means platform-wide.
func withTenant(q squirrel.SelectBuilder, column string, tenantID *int64) squirrel.SelectBuilder {
	if tenantID == nil {
		return q
	}
	return q.Where(squirrel.Eq{column: *tenantID})
}

// tenantEq matches column against tenantID exactly, NULL included.
func tenantEq(column string, tenantID *int64) squirrel.Eq {
	if tenantID == nil {
		return squirrel.Eq{column: nil}
	}
	return squirrel.Eq{column: *tenantID}
}

// visibleToTenant keeps rows owned by tenantID plus platform-wide rows (NULL tenant).
func visibleToTenant(q squirrel.SelectBuilder, column string, tenantID *int64) squirrel.SelectBuilder {
	if tenantID == nil {
		return q
	}
	return q.Where(squirrel.Or{
		squirrel.Eq{column: *tenantID},
		squirrel.Eq{column: nil},
	})
}

// inRange applies the half-open [start, end) interval on column.
func inRange(q squirrel.SelectBuilder, column string, start, end time.Time) squirrel.SelectBuilder {
	return q.
		Where(squirrel.GtOrEq{column: start.UTC()}).
		Where(squirrel.Lt{column: end.UTC()})
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time.UTC()
	return &out
}

// execAffected runs a write and reports whether it touched any row.
func execAffected(ctx context.Context, conn postgres.Queryer, q squirrel.Sqlizer) (bool, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building query: %w", err)
	}

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("error executing query: %w", err)
}

// marshalJSONColumn encodes v for a JSONB column. A nil value is stored as JSON null.
func marshalJSONColumn(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalJSONColumn(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// scanQueryRows decodes an arbitrary aggregate result into rows keyed by column name.
func scanQueryRows(rows *sql.Rows) ([]domain.QueryRow, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]domain.QueryRow, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(domain.QueryRow, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// normalizeValue turns driver values into JSON-friendly Go values. NUMERIC
// arrives as []byte and is parsed into a number.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		s := string(val)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case time.Time:
		return val.UTC()
	default:
		return val
	}
}
