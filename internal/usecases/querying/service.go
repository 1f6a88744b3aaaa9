package querying

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/metrics"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

const valueColumn = "value"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Querier is the ad-hoc metric/dimension query layer over the event store.
type Querier interface {
	Query(ctx context.Context, spec domain.QuerySpec, tenantID *int64) ([]domain.QueryRow, error)
	ExecuteQuery(ctx context.Context, spec domain.QuerySpec, tenantID *int64) []domain.QueryRow
	Totals(ctx context.Context, metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time) (map[string]float64, error)
	GetTimeSeries(ctx context.Context, metricKey string, period domain.TimePeriod, tenantID *int64) []domain.TimeSeriesPoint
	ValidateSpec(spec domain.QuerySpec) error
	GetAvailableMetrics() map[string]domain.MetricInfo
	GetAvailableDimensions() map[string]domain.DimensionInfo
}

type Service struct {
	events repository.EventRepository
	cfg    config.Query
	now    func() time.Time
}

func NewService(events repository.EventRepository, cfg config.Query) *Service {
	return &Service{
		events: events,
		cfg:    cfg,
		now:    time.Now,
	}
}

// plan is a validated spec, resolved against the catalogs.
type plan struct {
	metric     metric
	dimensions []string
	filters    []string
	values     map[string]string
	start      time.Time
	end        time.Time
	limit      uint64
}

// ValidateSpec runs the same checks as Query without touching the store.
func (s *Service) ValidateSpec(spec domain.QuerySpec) error {
	_, err := s.compile(spec)
	return err
}

func (s *Service) compile(spec domain.QuerySpec) (*plan, error) {
	if err := validation.ValidateStruct(spec); err != nil {
		return nil, invalidInput(ErrInvalidSpec, err.Error())
	}

	m, ok := metricCatalog[spec.Metric]
	if !ok {
		return nil, invalidInput(ErrUnknownMetric, spec.Metric)
	}

	dims := make([]string, 0, len(spec.Dimensions))
	seen := make(map[string]bool, len(spec.Dimensions))
	for _, key := range spec.Dimensions {
		if _, ok := dimensionCatalog[key]; !ok {
			return nil, invalidInput(ErrUnknownDimension, key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		dims = append(dims, key)
	}

	filters, err := filterKeys(spec.Filters)
	if err != nil {
		return nil, err
	}

	start, end, err := s.resolveRange(spec.DateRange)
	if err != nil {
		return nil, err
	}

	return &plan{
		metric:     m,
		dimensions: dims,
		filters:    filters,
		values:     spec.Filters,
		start:      start,
		end:        end,
		limit:      s.resolveLimit(spec.Limit),
	}, nil
}

func filterKeys(filters map[string]string) ([]string, error) {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		if _, ok := filterColumns[key]; !ok {
			return nil, invalidInput(ErrUnsupportedFilter, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Service) resolveRange(r domain.DateRange) (time.Time, time.Time, error) {
	end := r.End.UTC()
	if r.End.IsZero() {
		end = utils.StartOfDay(s.now()).AddDate(0, 0, 1)
	}

	start := r.Start.UTC()
	if r.Start.IsZero() {
		start = end.AddDate(0, 0, -s.cfg.DefaultWindowDays)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, invalidInput(ErrInvalidDateRange,
			fmt.Sprintf("start %s, end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	if s.cfg.MaxRangeDays > 0 && end.Sub(start) > time.Duration(s.cfg.MaxRangeDays)*24*time.Hour {
		return time.Time{}, time.Time{}, invalidInput(ErrDateRangeTooLarge,
			fmt.Sprintf("maximum is %d days", s.cfg.MaxRangeDays))
	}

	return start, end, nil
}

func (s *Service) resolveLimit(limit int) uint64 {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return uint64(limit)
}

// Query validates spec and runs it, returning input and store errors to the caller.
func (s *Service) Query(ctx context.Context, spec domain.QuerySpec, tenantID *int64) ([]domain.QueryRow, error) {
	p, err := s.compile(spec)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("query", "invalid").Inc()
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("query"))
	defer timer.ObserveDuration()

	rows, err := s.events.Aggregate(ctx, buildQuery(p, tenantID))
	if err != nil {
		metrics.QueryErrors.WithLabelValues("query", "store").Inc()
		return nil, errors.Wrap(err, "error executing query")
	}

	return rows, nil
}

// ExecuteQuery is the dashboard entry point: any failure is logged and
// turned into an empty result.
func (s *Service) ExecuteQuery(ctx context.Context, spec domain.QuerySpec, tenantID *int64) []domain.QueryRow {
	rows, err := s.Query(ctx, spec, tenantID)
	if err != nil {
		entry := logrus.WithFields(logrus.Fields{
			"operation":  "execute_query",
			"tenant_id":  tenantLabel(tenantID),
			"metric":     spec.Metric,
			"dimensions": spec.Dimensions,
		}).WithError(err)

		var queryErr *QueryError
		if errors.As(err, &queryErr) {
			entry.Warn("rejected ad-hoc query")
		} else {
			entry.Error("ad-hoc query failed")
		}
		return []domain.QueryRow{}
	}

	return rows
}

func buildQuery(p *plan, tenantID *int64) squirrel.SelectBuilder {
	q := psql.Select()

	groupBy := make([]string, 0, len(p.dimensions))
	orderBy := make([]string, 0, len(p.dimensions)+1)
	hasDate := false
	for _, key := range p.dimensions {
		d := dimensionCatalog[key]
		q = q.Column(d.expr + " AS " + key)
		groupBy = append(groupBy, d.expr)
		if key == "date" {
			hasDate = true
		}
	}

	q = q.Column(p.metric.expression() + " AS " + valueColumn).From(repository.EventsTable)

	if p.metric.eventType != "" {
		q = q.Where(squirrel.Eq{eventTypeColumn: p.metric.eventType})
	}
	q = applyFilters(q, p.filters, p.values)
	q = scopeTenant(q, tenantID)
	q = q.
		Where(squirrel.GtOrEq{"ae.occurred_at": p.start}).
		Where(squirrel.Lt{"ae.occurred_at": p.end})

	if len(groupBy) > 0 {
		q = q.GroupBy(groupBy...)
	}

	if hasDate {
		orderBy = append(orderBy, dimensionCatalog["date"].expr+" ASC")
	}
	orderBy = append(orderBy, valueColumn+" DESC")
	for _, expr := range groupBy {
		if hasDate && expr == dimensionCatalog["date"].expr {
			continue
		}
		orderBy = append(orderBy, expr+" ASC")
	}

	return q.OrderBy(orderBy...).Limit(p.limit)
}

func applyFilters(q squirrel.SelectBuilder, keys []string, values map[string]string) squirrel.SelectBuilder {
	for _, key := range keys {
		q = q.Where(squirrel.Eq{filterColumns[key]: values[key]})
	}
	return q
}

func scopeTenant(q squirrel.SelectBuilder, tenantID *int64) squirrel.SelectBuilder {
	if tenantID == nil {
		return q
	}
	return q.Where(squirrel.Eq{"ae.tenant_id": *tenantID})
}

// Totals computes several metrics over [start, end) in a single scan, one
// FILTER clause per metric. Metrics with no events come back as zero.
func (s *Service) Totals(ctx context.Context, metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time) (map[string]float64, error) {
	q, err := buildTotalsQuery(metricKeys, filters, tenantID, start, end)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("totals", "invalid").Inc()
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("totals"))
	defer timer.ObserveDuration()

	rows, err := s.events.Aggregate(ctx, q)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("totals", "store").Inc()
		return nil, errors.Wrap(err, "error executing query")
	}

	totals := make(map[string]float64, len(metricKeys))
	for _, key := range metricKeys {
		totals[key] = 0
		if len(rows) > 0 {
			totals[key] = toFloat(rows[0][key])
		}
	}

	return totals, nil
}

// ExactTotals is Totals read as decimals. Every metric is cast to text in SQL
// so NUMERIC sums reach the caller without a float round trip.
func (s *Service) ExactTotals(ctx context.Context, metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time) (map[string]decimal.Decimal, error) {
	q, err := totalsQuery(metricKeys, filters, tenantID, start, end, true)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("totals", "invalid").Inc()
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("totals"))
	defer timer.ObserveDuration()

	rows, err := s.events.Aggregate(ctx, q)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("totals", "store").Inc()
		return nil, errors.Wrap(err, "error executing query")
	}

	totals := make(map[string]decimal.Decimal, len(metricKeys))
	for _, key := range metricKeys {
		totals[key] = decimal.Zero
		if len(rows) == 0 {
			continue
		}

		value, err := toDecimal(rows[0][key])
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %s", key)
		}
		totals[key] = value
	}

	return totals, nil
}

func buildTotalsQuery(metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time) (squirrel.SelectBuilder, error) {
	return totalsQuery(metricKeys, filters, tenantID, start, end, false)
}

func totalsQuery(metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time, asText bool) (squirrel.SelectBuilder, error) {
	if len(metricKeys) == 0 {
		return squirrel.SelectBuilder{}, invalidInput(ErrInvalidSpec, "no metrics requested")
	}

	q := psql.Select()
	for _, key := range metricKeys {
		m, ok := metricCatalog[key]
		if !ok {
			return squirrel.SelectBuilder{}, invalidInput(ErrUnknownMetric, key)
		}
		expr, args := m.filteredExpression()
		if asText {
			expr = "(" + expr + ")::text"
		}
		q = q.Column(expr+" AS "+key, args...)
	}

	keys, err := filterKeys(filters)
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	q = q.From(repository.EventsTable)
	q = applyFilters(q, keys, filters)
	q = scopeTenant(q, tenantID)

	return q.
		Where(squirrel.GtOrEq{"ae.occurred_at": start.UTC()}).
		Where(squirrel.Lt{"ae.occurred_at": end.UTC()}), nil
}

// GetTimeSeries buckets metricKey by period over the default window ending
// today. Invalid input and store failures yield an empty series.
func (s *Service) GetTimeSeries(ctx context.Context, metricKey string, period domain.TimePeriod, tenantID *int64) []domain.TimeSeriesPoint {
	logger := logrus.WithFields(logrus.Fields{
		"operation": "time_series",
		"tenant_id": tenantLabel(tenantID),
		"metric":    metricKey,
		"period":    period,
	})

	q, err := s.buildTimeSeriesQuery(metricKey, period, tenantID)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("time_series", "invalid").Inc()
		logger.WithError(err).Warn("rejected time series query")
		return []domain.TimeSeriesPoint{}
	}

	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("time_series"))
	defer timer.ObserveDuration()

	rows, err := s.events.Aggregate(ctx, q)
	if err != nil {
		metrics.QueryErrors.WithLabelValues("time_series", "store").Inc()
		logger.WithError(err).Error("time series query failed")
		return []domain.TimeSeriesPoint{}
	}

	points := make([]domain.TimeSeriesPoint, 0, len(rows))
	for _, row := range rows {
		bucket, ok := row["period"].(time.Time)
		if !ok {
			continue
		}
		points = append(points, domain.TimeSeriesPoint{
			Period: bucket.UTC(),
			Value:  toFloat(row[valueColumn]),
		})
	}

	return points
}

func (s *Service) buildTimeSeriesQuery(metricKey string, period domain.TimePeriod, tenantID *int64) (squirrel.SelectBuilder, error) {
	m, ok := metricCatalog[metricKey]
	if !ok {
		return squirrel.SelectBuilder{}, invalidInput(ErrUnknownMetric, metricKey)
	}

	unit, ok := periodUnits[period]
	if !ok {
		return squirrel.SelectBuilder{}, invalidInput(ErrUnknownPeriod, string(period))
	}

	start, end, err := s.resolveRange(domain.DateRange{})
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	q := psql.
		Select(fmt.Sprintf("date_trunc('%s', ae.occurred_at AT TIME ZONE 'UTC') AS period", unit)).
		Column(m.expression() + " AS " + valueColumn).
		From(repository.EventsTable)

	if m.eventType != "" {
		q = q.Where(squirrel.Eq{eventTypeColumn: m.eventType})
	}
	q = scopeTenant(q, tenantID)

	return q.
		Where(squirrel.GtOrEq{"ae.occurred_at": start}).
		Where(squirrel.Lt{"ae.occurred_at": end}).
		GroupBy("period").
		OrderBy("period ASC"), nil
}

func (s *Service) GetAvailableMetrics() map[string]domain.MetricInfo {
	out := make(map[string]domain.MetricInfo, len(metricCatalog))
	for key, m := range metricCatalog {
		out[key] = domain.MetricInfo{
			Label:       m.label,
			Description: m.description,
			Type:        m.valueType,
		}
	}
	return out
}

func (s *Service) GetAvailableDimensions() map[string]domain.DimensionInfo {
	out := make(map[string]domain.DimensionInfo, len(dimensionCatalog))
	for key, d := range dimensionCatalog {
		out[key] = domain.DimensionInfo{
			Label:       d.label,
			Description: d.description,
		}
	}
	return out
}

func toFloat(v any) float64 {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case string:
		return decimal.NewFromString(val)
	case []byte:
		return decimal.NewFromString(string(val))
	case int64:
		return decimal.NewFromInt(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case float64:
		return decimal.NewFromFloat(val), nil
	default:
		return decimal.Zero, fmt.Errorf("unexpected total type %T", v)
	}
}

func tenantLabel(tenantID *int64) any {
	if tenantID == nil {
		return "platform"
	}
	return *tenantID
}
