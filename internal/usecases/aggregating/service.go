package aggregating

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/metrics"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

const (
	topListSize        = 10
	defaultConcurrency = 4
	unknownDevice      = "unknown"
)

// rollupMetrics are read from the query layer so the stored summary and the
// ad-hoc queries share one definition per metric.
var rollupMetrics = []string{"page_views", "unique_visitors", "sessions", "conversions", "revenue", "signups"}

// MetricTotaler computes several metrics over a window in one pass, exactly.
type MetricTotaler interface {
	ExactTotals(ctx context.Context, metricKeys []string, filters map[string]string, tenantID *int64, start, end time.Time) (map[string]decimal.Decimal, error)
}

type Aggregator interface {
	AggregateDailyMetrics(ctx context.Context, asOf time.Time) (*RunResult, error)
	AggregateTenantDay(ctx context.Context, tenantID int64, day time.Time) (*domain.DailySummary, error)
	GetDailyMetrics(ctx context.Context, tenantID int64, start, end time.Time) ([]*domain.DailySummary, error)
	GetTrafficSources(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.TrafficSource, error)
}

// RunResult describes one batch rollup.
type RunResult struct {
	Date      time.Time `json:"date"`
	Tenants   int       `json:"tenants"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

type Service struct {
	events       repository.EventRepository
	summaries    repository.DailySummaryRepository
	totals       MetricTotaler
	cfg          config.Rollup
	maxRangeDays int
}

func NewService(
	events repository.EventRepository,
	summaries repository.DailySummaryRepository,
	totals MetricTotaler,
	cfg config.Rollup,
	queryCfg config.Query,
) *Service {
	return &Service{
		events:       events,
		summaries:    summaries,
		totals:       totals,
		cfg:          cfg,
		maxRangeDays: queryCfg.MaxRangeDays,
	}
}

// AggregateDailyMetrics rolls up the UTC day before asOf for every tenant with
// at least one event that day. A tenant failure is logged and counted; it never
// stops the batch. Only the tenant listing itself is fatal to the run.
func (s *Service) AggregateDailyMetrics(ctx context.Context, asOf time.Time) (*RunResult, error) {
	day := utils.StartOfDay(asOf).AddDate(0, 0, -1)
	end := day.AddDate(0, 0, 1)

	tenants, err := s.events.ListActiveTenants(ctx, day, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListTenants, err)
	}

	logrus.WithFields(logrus.Fields{
		"date":    day.Format(time.DateOnly),
		"tenants": len(tenants),
	}).Info("Starting daily rollup")

	result := &RunResult{Date: day, Tenants: len(tenants)}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	semaphore := make(chan struct{}, s.concurrency())

	for _, tenantID := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenantID int64) {
			defer wg.Done()
			defer func() { <-semaphore }()

			_, err := s.AggregateTenantDay(ctx, tenantID, day)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed++
				metrics.RollupTenants.WithLabelValues(metrics.StatusFailed).Inc()
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"date":      day.Format(time.DateOnly),
					"operation": "rollup",
				}).WithError(err).Error("Error aggregating tenant day")
				return
			}

			result.Succeeded++
			metrics.RollupTenants.WithLabelValues(metrics.StatusSuccess).Inc()
		}(tenantID)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"date":      day.Format(time.DateOnly),
		"tenants":   result.Tenants,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Daily rollup finished")

	return result, nil
}

// AggregateTenantDay recomputes and overwrites the summary of one tenant day.
// Running it again over the same events stores the same row.
func (s *Service) AggregateTenantDay(ctx context.Context, tenantID int64, day time.Time) (*domain.DailySummary, error) {
	if tenantID <= 0 {
		return nil, NewAggregateError(ErrInvalidTenant, apiErrors.ErrMissingRequiredData, tenantID, "")
	}

	day = utils.StartOfDay(day)

	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("rollup_tenant"))
	defer timer.ObserveDuration()

	summary, err := s.computeSummary(ctx, tenantID, day)
	if err != nil {
		return nil, NewAggregateError(ErrComputeSummary, apiErrors.ErrDatabaseOperation, tenantID, err.Error())
	}

	if err := s.summaries.SaveOrUpdate(ctx, summary); err != nil {
		return nil, NewAggregateError(ErrSaveSummary, apiErrors.ErrDatabaseOperation, tenantID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"date":       day.Format(time.DateOnly),
		"page_views": summary.PageViews,
		"orders":     summary.OrdersCount,
	}).Debug("Daily summary stored")

	return summary, nil
}

func (s *Service) computeSummary(ctx context.Context, tenantID int64, day time.Time) (*domain.DailySummary, error) {
	end := day.AddDate(0, 0, 1)

	totals, err := s.totals.ExactTotals(ctx, rollupMetrics, nil, &tenantID, day, end)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	stats, err := s.events.GetSessionStats(ctx, tenantID, day, end)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	pages, err := s.events.GetTopPages(ctx, tenantID, day, end, topListSize)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}

	referrers, err := s.events.GetTopReferrers(ctx, tenantID, day, end, topListSize)
	if err != nil {
		return nil, fmt.Errorf("top referrers: %w", err)
	}

	devices, err := s.events.GetDeviceCounts(ctx, tenantID, day, end)
	if err != nil {
		return nil, fmt.Errorf("device counts: %w", err)
	}

	return buildSummary(tenantID, day, totals, stats, pages, referrers, devices), nil
}

// buildSummary derives the stored rates from the raw counts. It is pure: the
// same inputs always give the same summary.
func buildSummary(
	tenantID int64,
	day time.Time,
	totals map[string]decimal.Decimal,
	stats *domain.SessionStats,
	pages []domain.PageCount,
	referrers []domain.ReferrerCount,
	devices map[string]int64,
) *domain.DailySummary {
	if stats == nil {
		stats = &domain.SessionStats{}
	}
	if pages == nil {
		pages = []domain.PageCount{}
	}
	if referrers == nil {
		referrers = []domain.ReferrerCount{}
	}

	orders := totals["conversions"].IntPart()
	uniqueVisitors := totals["unique_visitors"].IntPart()
	revenue := totals["revenue"].Round(2)

	avgOrderValue := decimal.Zero
	if orders > 0 {
		avgOrderValue = revenue.Div(decimal.NewFromInt(orders)).Round(2)
	}

	var bounceRate float64
	if stats.Sessions > 0 {
		bounceRate = utils.RoundTo(float64(stats.BouncedSessions)/float64(stats.Sessions), 4)
	}

	var conversionRate float64
	if uniqueVisitors > 0 {
		conversionRate = utils.RoundTo(float64(orders)/float64(uniqueVisitors), 4)
	}

	return &domain.DailySummary{
		TenantID:           tenantID,
		Date:               day,
		PageViews:          totals["page_views"].IntPart(),
		UniqueVisitors:     uniqueVisitors,
		Sessions:           totals["sessions"].IntPart(),
		BounceRate:         bounceRate,
		AvgSessionDuration: int64(math.Round(stats.AvgSessionDuration)),
		NewUsers:           totals["signups"].IntPart(),
		OrdersCount:        orders,
		TotalRevenue:       revenue,
		AvgOrderValue:      avgOrderValue,
		ConversionRate:     conversionRate,
		TopPages:           pages,
		TopReferrers:       referrers,
		DeviceBreakdown:    deviceBreakdown(devices),
	}
}

// deviceBreakdown turns raw counts into percentages of all counted events.
// Blank device types are folded into "unknown".
func deviceBreakdown(counts map[string]int64) map[string]float64 {
	merged := make(map[string]int64, len(counts))
	var total int64
	for device, count := range counts {
		if device == "" {
			device = unknownDevice
		}
		merged[device] += count
		total += count
	}

	breakdown := make(map[string]float64, len(merged))
	for device, count := range merged {
		breakdown[device] = utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(count), float64(total)))
	}
	return breakdown
}

func (s *Service) GetDailyMetrics(ctx context.Context, tenantID int64, start, end time.Time) ([]*domain.DailySummary, error) {
	if err := s.validateRange(tenantID, start, end); err != nil {
		return nil, err
	}

	summaries, err := s.summaries.GetByDateRange(ctx, tenantID, start, end)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"operation": "get_daily_metrics",
		}).WithError(err).Error("Error loading daily summaries")
		return nil, err
	}

	return summaries, nil
}

func (s *Service) GetTrafficSources(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.TrafficSource, error) {
	if err := s.validateRange(tenantID, start, end); err != nil {
		return nil, err
	}

	sources, err := s.events.GetTrafficSources(ctx, tenantID, start, end, topListSize)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"operation": "get_traffic_sources",
		}).WithError(err).Error("Error loading traffic sources")
		return nil, err
	}

	return sources, nil
}

func (s *Service) validateRange(tenantID int64, start, end time.Time) error {
	if !end.After(start) {
		return NewAggregateError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, tenantID, "")
	}

	if s.maxRangeDays > 0 && end.Sub(start) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return NewAggregateError(ErrDateRangeTooLarge, apiErrors.ErrInvalidDateRange, tenantID,
			fmt.Sprintf("maximum is %d days", s.maxRangeDays))
	}

	return nil
}

func (s *Service) concurrency() int {
	if s.cfg.MaxConcurrentTenants > 0 {
		return s.cfg.MaxConcurrentTenants
	}
	return defaultConcurrency
}
