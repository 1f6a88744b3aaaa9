package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

const breakdownLimit = 50

type MetricsSummary struct {
	TotalEvents int64 `json:"total_events"`
	Sessions    int64 `json:"sessions"`
	UniqueUsers int64 `json:"unique_users"`
}

type EventCount struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

type ConversionSummary struct {
	Visitors       int64   `json:"visitors"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

type RetentionSummary struct {
	TotalVisitors     int64   `json:"total_visitors"`
	ReturningVisitors int64   `json:"returning_visitors"`
	RetentionRate     float64 `json:"retention_rate"`
}

// execute runs report over its date range resolved at now.
func (s *Service) execute(ctx context.Context, report *domain.ScheduledReport, now time.Time) (*domain.ReportResult, error) {
	dateRange := ResolveDateRange(report.DateRange, now)

	var (
		results any
		err     error
	)

	switch report.ReportType {
	case domain.ReportTypeMetricsSummary:
		results, err = s.metricsSummary(ctx, report, dateRange)
	case domain.ReportTypeEventBreakdown:
		results, err = s.eventBreakdown(ctx, report, dateRange)
	case domain.ReportTypeConversion:
		results, err = s.conversion(ctx, report, dateRange)
	case domain.ReportTypeRetention:
		results, err = s.retention(ctx, report, dateRange)
	case domain.ReportTypeCustom:
		results, err = s.custom(ctx, report, dateRange)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownReportType, report.ReportType)
	}
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", report.ReportType, err)
	}

	return &domain.ReportResult{
		ReportID:   report.ID,
		ReportName: report.Name,
		ReportType: report.ReportType,
		DateRange:  dateRange,
		Results:    results,
		ExecutedAt: now.UTC(),
	}, nil
}

func (s *Service) metricsSummary(ctx context.Context, report *domain.ScheduledReport, r domain.DateRange) (*MetricsSummary, error) {
	totals, err := s.querier.Totals(ctx, []string{"total_events", "sessions", "unique_users"}, report.Filters, report.TenantID, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return &MetricsSummary{
		TotalEvents: int64(totals["total_events"]),
		Sessions:    int64(totals["sessions"]),
		UniqueUsers: int64(totals["unique_users"]),
	}, nil
}

func (s *Service) eventBreakdown(ctx context.Context, report *domain.ScheduledReport, r domain.DateRange) ([]EventCount, error) {
	rows, err := s.querier.Query(ctx, domain.QuerySpec{
		Metric:     "total_events",
		Dimensions: []string{"event_type"},
		Filters:    report.Filters,
		DateRange:  r,
		Limit:      breakdownLimit,
	}, report.TenantID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]EventCount, 0, len(rows))
	for _, row := range rows {
		eventType, _ := row["event_type"].(string)
		breakdown = append(breakdown, EventCount{
			EventType: eventType,
			Count:     toInt64(row["value"]),
		})
	}
	return breakdown, nil
}

func (s *Service) conversion(ctx context.Context, report *domain.ScheduledReport, r domain.DateRange) (*ConversionSummary, error) {
	totals, err := s.querier.Totals(ctx, []string{"unique_visitors", "conversions"}, report.Filters, report.TenantID, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	visitors := int64(totals["unique_visitors"])
	conversions := int64(totals["conversions"])

	return &ConversionSummary{
		Visitors:       visitors,
		Conversions:    conversions,
		ConversionRate: utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(conversions), float64(visitors))),
	}, nil
}

func (s *Service) retention(ctx context.Context, report *domain.ScheduledReport, r domain.DateRange) (*RetentionSummary, error) {
	returning, total, err := s.events.CountReturningVisitors(ctx, report.TenantID, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return &RetentionSummary{
		TotalVisitors:     total,
		ReturningVisitors: returning,
		RetentionRate:     utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(returning), float64(total))),
	}, nil
}

// custom runs one daily series per configured metric.
func (s *Service) custom(ctx context.Context, report *domain.ScheduledReport, r domain.DateRange) (map[string][]domain.QueryRow, error) {
	results := make(map[string][]domain.QueryRow, len(report.Metrics))
	for _, metric := range report.Metrics {
		rows, err := s.querier.Query(ctx, domain.QuerySpec{
			Metric:     metric,
			Dimensions: []string{"date"},
			Filters:    report.Filters,
			DateRange:  r,
		}, report.TenantID)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", metric, err)
		}
		results[metric] = rows
	}
	return results, nil
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	default:
		return 0
	}
}
