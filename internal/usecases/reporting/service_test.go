package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mailmocks "github.com/vfg2006/analytics-engine/infrastructure/integrator/mail/mocks"
	"github.com/vfg2006/analytics-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"go.uber.org/mock/gomock"
)

var (
	testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	testQueryConfig = config.Query{DefaultLimit: 100, MaxLimit: 1000, MaxRangeDays: 366, DefaultWindowDays: 30}
)

type fixture struct {
	service *Service
	reports *mocks.MockScheduledReportRepository
	events  *mocks.MockEventRepository
	mailer  *mailmocks.MockMailer
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		reports: mocks.NewMockScheduledReportRepository(ctrl),
		events:  mocks.NewMockEventRepository(ctrl),
		mailer:  mailmocks.NewMockMailer(ctrl),
	}

	querier := querying.NewService(f.events, testQueryConfig)
	f.service = NewService(f.reports, f.events, querier, f.mailer, config.Reports{BatchSize: 100, MaxConcurrentReports: 2})
	f.service.now = func() time.Time { return testNow }
	return f
}

func tenantPtr(id int64) *int64 {
	return &id
}

func dailySummaryReport() *domain.ScheduledReport {
	return &domain.ScheduledReport{
		ID:           "rep_daily",
		Name:         "Daily summary",
		ReportType:   domain.ReportTypeMetricsSummary,
		TenantID:     tenantPtr(7),
		DateRange:    PresetYesterday,
		ScheduleType: domain.ScheduleDaily,
		Recipients:   []string{"ana@example.com", "not-an-address", "luis@example.com"},
		NextSend:     testNow.Add(-time.Hour),
		Status:       domain.ReportStatusActive,
	}
}

func summaryRow() []domain.QueryRow {
	return []domain.QueryRow{{"total_events": int64(500), "sessions": int64(100), "unique_users": int64(20)}}
}

func TestService_ProcessScheduledReports(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture) *[]time.Time
		validate func(t *testing.T, result *RunResult, marked []time.Time, err error)
	}{
		{
			name: "a due daily report is sent once and advanced by exactly one day",
			setup: func(f *fixture) *[]time.Time {
				report := dailySummaryReport()
				previous := report.NextSend
				marked := []time.Time{}

				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{report}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
				f.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", "Report: Daily summary", gomock.Any()).Return(nil)
				f.mailer.EXPECT().Send(gomock.Any(), "luis@example.com", "Report: Daily summary", gomock.Any()).Return(nil)
				f.reports.EXPECT().MarkSent(gomock.Any(), "rep_daily", previous, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _, lastSent, nextSend time.Time) (bool, error) {
						marked = append(marked, previous, lastSent, nextSend)
						return true, nil
					})
				return &marked
			},
			validate: func(t *testing.T, result *RunResult, marked []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 1, Sent: 1}, result)

				require.Len(t, marked, 3)
				previous, lastSent, nextSend := marked[0], marked[1], marked[2]
				assert.Equal(t, testNow, lastSent)
				assert.Equal(t, 86400*time.Second, nextSend.Sub(previous))
			},
		},
		{
			name: "execution failure leaves the report due",
			setup: func(f *fixture) *[]time.Time {
				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{dailySummaryReport()}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 1, Failed: 1}, result)
			},
		},
		{
			name: "every valid recipient failing leaves the report due",
			setup: func(f *fixture) *[]time.Time {
				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{dailySummaryReport()}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("breaker open")).Times(2)
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Failed)
			},
		},
		{
			name: "a report already advanced by another run is skipped",
			setup: func(f *fixture) *[]time.Time {
				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{dailySummaryReport()}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				f.reports.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 1, Skipped: 1}, result)
			},
		},
		{
			name: "one failing report does not stop the others",
			setup: func(f *fixture) *[]time.Time {
				broken := dailySummaryReport()
				broken.ID = "rep_broken"
				broken.ReportType = domain.ReportTypeCustom
				broken.Metrics = []string{"bounce_ratio"}

				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{broken, dailySummaryReport()}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				f.reports.EXPECT().MarkSent(gomock.Any(), "rep_daily", gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 2, Sent: 1, Failed: 1}, result)
			},
		},
		{
			name: "the mailed body is the indented report",
			setup: func(f *fixture) *[]time.Time {
				report := dailySummaryReport()
				report.Recipients = []string{"ana@example.com"}

				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{report}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
				f.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", "Report: Daily summary", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, body string) error {
						assert.Contains(t, body, "\n  \"total_events\": 500")
						assert.NotContains(t, body, "\t")
						return nil
					})
				f.reports.EXPECT().MarkSent(gomock.Any(), "rep_daily", gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 1, Sent: 1}, result)
			},
		},
		{
			name: "a panic while mailing one report fails only that report",
			setup: func(f *fixture) *[]time.Time {
				boom := dailySummaryReport()
				boom.ID = "rep_boom"
				boom.Name = "Boom"
				boom.Recipients = []string{"ana@example.com"}
				daily := dailySummaryReport()
				daily.Recipients = []string{"luis@example.com"}

				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return([]*domain.ScheduledReport{boom, daily}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil).Times(2)
				f.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", "Report: Boom", gomock.Any()).
					DoAndReturn(func(context.Context, string, string, string) error {
						panic("smtp client closed")
					})
				f.mailer.EXPECT().Send(gomock.Any(), "luis@example.com", "Report: Daily summary", gomock.Any()).Return(nil)
				f.reports.EXPECT().MarkSent(gomock.Any(), "rep_daily", gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Due: 2, Sent: 1, Failed: 1}, result)
			},
		},
		{
			name: "listing failure is returned",
			setup: func(f *fixture) *[]time.Time {
				f.reports.EXPECT().ListDue(gomock.Any(), testNow, uint64(100)).Return(nil, errors.New("db down"))
				return &[]time.Time{}
			},
			validate: func(t *testing.T, result *RunResult, _ []time.Time, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			marked := tt.setup(f)

			result, err := f.service.ProcessScheduledReports(context.Background(), testNow)

			tt.validate(t, result, *marked, err)
		})
	}
}

func TestNextSendAfter(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.ScheduleType
		nextSend time.Time
		want     time.Time
	}{
		{name: "daily keeps the cadence", schedule: domain.ScheduleDaily, nextSend: testNow.Add(-time.Hour), want: testNow.Add(23 * time.Hour)},
		{name: "weekly adds seven days", schedule: domain.ScheduleWeekly, nextSend: testNow.Add(-time.Minute), want: testNow.Add(7*24*time.Hour - time.Minute)},
		{name: "monthly adds thirty days", schedule: domain.ScheduleMonthly, nextSend: testNow, want: testNow.Add(30 * 24 * time.Hour)},
		{name: "long overdue restarts from now", schedule: domain.ScheduleDaily, nextSend: testNow.AddDate(0, 0, -3), want: testNow.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &domain.ScheduledReport{ScheduleType: tt.schedule, NextSend: tt.nextSend}
			assert.Equal(t, tt.want, nextSendAfter(report, testNow))
		})
	}
}

func TestService_ExecuteReport(t *testing.T) {
	tests := []struct {
		name     string
		report   func() *domain.ScheduledReport
		setup    func(f *fixture)
		validate func(t *testing.T, result *domain.ReportResult, err error)
	}{
		{
			name:   "metrics summary",
			report: dailySummaryReport,
			setup: func(f *fixture) {
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "rep_daily", result.ReportID)
				assert.Equal(t, "Daily summary", result.ReportName)
				assert.Equal(t, testNow, result.ExecutedAt)
				assert.Equal(t, domain.DateRange{
					Start: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				}, result.DateRange)
				assert.Equal(t, &MetricsSummary{TotalEvents: 500, Sessions: 100, UniqueUsers: 20}, result.Results)
			},
		},
		{
			name: "event breakdown",
			report: func() *domain.ScheduledReport {
				r := dailySummaryReport()
				r.ReportType = domain.ReportTypeEventBreakdown
				return r
			},
			setup: func(f *fixture) {
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]domain.QueryRow{
					{"event_type": "page_view", "value": int64(90)},
					{"event_type": "purchase", "value": int64(3)},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []EventCount{{EventType: "page_view", Count: 90}, {EventType: "purchase", Count: 3}}, result.Results)
			},
		},
		{
			name: "conversion",
			report: func() *domain.ScheduledReport {
				r := dailySummaryReport()
				r.ReportType = domain.ReportTypeConversion
				return r
			},
			setup: func(f *fixture) {
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]domain.QueryRow{
					{"unique_visitors": int64(200), "conversions": int64(5)},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, &ConversionSummary{Visitors: 200, Conversions: 5, ConversionRate: 2.5}, result.Results)
			},
		},
		{
			name: "retention",
			report: func() *domain.ScheduledReport {
				r := dailySummaryReport()
				r.ReportType = domain.ReportTypeRetention
				r.DateRange = PresetLast7Days
				return r
			},
			setup: func(f *fixture) {
				f.events.EXPECT().CountReturningVisitors(gomock.Any(), tenantPtr(7), time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), testNow).
					Return(int64(30), int64(120), nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RetentionSummary{TotalVisitors: 120, ReturningVisitors: 30, RetentionRate: 25}, result.Results)
			},
		},
		{
			name: "custom runs one daily series per metric",
			report: func() *domain.ScheduledReport {
				r := dailySummaryReport()
				r.ReportType = domain.ReportTypeCustom
				r.Metrics = []string{"page_views", "signups"}
				return r
			},
			setup: func(f *fixture) {
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]domain.QueryRow{{"date": testNow, "value": int64(4)}}, nil).Times(2)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error) {
				require.NoError(t, err)
				series, ok := result.Results.(map[string][]domain.QueryRow)
				require.True(t, ok)
				assert.Len(t, series, 2)
				assert.Len(t, series["signups"], 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			report := tt.report()
			f.reports.EXPECT().GetByID(gomock.Any(), report.ID, tenantPtr(7)).Return(report, nil)
			tt.setup(f)

			result, err := f.service.ExecuteReport(context.Background(), report.ID, tenantPtr(7))

			tt.validate(t, result, err)
		})
	}
}

func TestService_ExecuteReport_NotFound(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().GetByID(gomock.Any(), "missing", tenantPtr(7)).Return(nil, nil)

	_, err := f.service.ExecuteReport(context.Background(), "missing", tenantPtr(7))

	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestService_RunReport(t *testing.T) {
	f := newFixture(t)
	report := dailySummaryReport()
	f.reports.EXPECT().GetByID(gomock.Any(), "rep_daily", tenantPtr(7)).Return(report, nil)
	f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(summaryRow(), nil)
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), "Report: Daily summary", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			if !strings.Contains(body, `"total_events": 500`) {
				return errors.New("unexpected body")
			}
			return nil
		}).Times(2)

	result, sent, err := f.service.RunReport(context.Background(), "rep_daily", tenantPtr(7))

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.NotNil(t, result)
}

func TestService_CreateReport(t *testing.T) {
	tests := []struct {
		name     string
		report   *domain.ScheduledReport
		setup    func(f *fixture)
		validate func(t *testing.T, report *domain.ScheduledReport, err error)
	}{
		{
			name: "fills the defaults",
			report: &domain.ScheduledReport{
				Name:         "Weekly",
				ReportType:   domain.ReportTypeMetricsSummary,
				TenantID:     tenantPtr(7),
				ScheduleType: domain.ScheduleWeekly,
				Recipients:   []string{"ana@example.com"},
			},
			setup: func(f *fixture) {
				f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ScheduledReport, err error) {
				require.NoError(t, err)
				assert.Len(t, report.ID, 12)
				assert.Equal(t, PresetLast30Days, report.DateRange)
				assert.Equal(t, domain.ReportStatusActive, report.Status)
				assert.Equal(t, testNow.Add(7*24*time.Hour), report.NextSend)
			},
		},
		{
			name: "custom reports need known metrics",
			report: &domain.ScheduledReport{
				Name:         "Custom",
				ReportType:   domain.ReportTypeCustom,
				Metrics:      []string{"page_views", "bounce_ratio"},
				ScheduleType: domain.ScheduleDaily,
				Recipients:   []string{"ana@example.com"},
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, _ *domain.ScheduledReport, err error) {
				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, "VAL_004", reportErr.Code)
			},
		},
		{
			name: "recipients must be addresses",
			report: &domain.ScheduledReport{
				Name:         "Bad recipients",
				ReportType:   domain.ReportTypeConversion,
				ScheduleType: domain.ScheduleDaily,
				Recipients:   []string{"nobody"},
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, _ *domain.ScheduledReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidReport)
			},
		},
		{
			name: "unknown preset is rejected",
			report: &domain.ScheduledReport{
				Name:         "Odd range",
				ReportType:   domain.ReportTypeConversion,
				DateRange:    "last_decade",
				ScheduleType: domain.ScheduleDaily,
				Recipients:   []string{"ana@example.com"},
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, _ *domain.ScheduledReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidReport)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			report, err := f.service.CreateReport(context.Background(), tt.report)

			tt.validate(t, report, err)
		})
	}
}

func TestService_Lifecycle(t *testing.T) {
	t.Run("pausing an unknown report", func(t *testing.T) {
		f := newFixture(t)
		f.reports.EXPECT().UpdateStatus(gomock.Any(), "missing", tenantPtr(7), domain.ReportStatusPaused, nil).Return(false, nil)

		err := f.service.PauseReport(context.Background(), "missing", tenantPtr(7))

		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("resuming after the send time passed reschedules from now", func(t *testing.T) {
		f := newFixture(t)
		report := dailySummaryReport()
		report.Status = domain.ReportStatusPaused
		next := testNow.Add(24 * time.Hour)

		f.reports.EXPECT().GetByID(gomock.Any(), "rep_daily", tenantPtr(7)).Return(report, nil)
		f.reports.EXPECT().UpdateStatus(gomock.Any(), "rep_daily", tenantPtr(7), domain.ReportStatusActive, &next).Return(true, nil)

		assert.NoError(t, f.service.ResumeReport(context.Background(), "rep_daily", tenantPtr(7)))
	})

	t.Run("resuming before the send time keeps it", func(t *testing.T) {
		f := newFixture(t)
		report := dailySummaryReport()
		report.NextSend = testNow.Add(time.Hour)

		f.reports.EXPECT().GetByID(gomock.Any(), "rep_daily", tenantPtr(7)).Return(report, nil)
		f.reports.EXPECT().UpdateStatus(gomock.Any(), "rep_daily", tenantPtr(7), domain.ReportStatusActive, nil).Return(true, nil)

		assert.NoError(t, f.service.ResumeReport(context.Background(), "rep_daily", tenantPtr(7)))
	})

	t.Run("deleting", func(t *testing.T) {
		f := newFixture(t)
		f.reports.EXPECT().Delete(gomock.Any(), "rep_daily", tenantPtr(7)).Return(true, nil)
		f.reports.EXPECT().Delete(gomock.Any(), "rep_daily", tenantPtr(7)).Return(false, nil)

		assert.NoError(t, f.service.DeleteReport(context.Background(), "rep_daily", tenantPtr(7)))
		assert.ErrorIs(t, f.service.DeleteReport(context.Background(), "rep_daily", tenantPtr(7)), ErrReportNotFound)
	})
}
