package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"go.uber.org/mock/gomock"
)

var (
	testAsOf = time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)
	testDay  = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	testEnd  = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	testQueryConfig = config.Query{DefaultLimit: 100, MaxLimit: 1000, MaxRangeDays: 366, DefaultWindowDays: 30}
)

type fixture struct {
	service   *Service
	events    *mocks.MockEventRepository
	summaries *mocks.MockDailySummaryRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	summaries := mocks.NewMockDailySummaryRepository(ctrl)

	totals := querying.NewService(events, testQueryConfig)

	return &fixture{
		service:   NewService(events, summaries, totals, config.Rollup{MaxConcurrentTenants: 2}, testQueryConfig),
		events:    events,
		summaries: summaries,
	}
}

func totalsRow(pageViews, visitors, sessions, orders int64, revenue string, signups int64) []domain.QueryRow {
	return []domain.QueryRow{{
		"page_views":      pageViews,
		"unique_visitors": visitors,
		"sessions":        sessions,
		"conversions":     orders,
		"revenue":         revenue,
		"signups":         signups,
	}}
}

// expectTenantReads stubs every per-tenant read of a successful rollup.
func expectTenantReads(events *mocks.MockEventRepository, tenantID int64, stats *domain.SessionStats, devices map[string]int64) {
	events.EXPECT().GetSessionStats(gomock.Any(), tenantID, testDay, testEnd).Return(stats, nil)
	events.EXPECT().GetTopPages(gomock.Any(), tenantID, testDay, testEnd, uint64(10)).
		Return([]domain.PageCount{{URL: "/pricing", Views: 60}, {URL: "/", Views: 40}}, nil)
	events.EXPECT().GetTopReferrers(gomock.Any(), tenantID, testDay, testEnd, uint64(10)).
		Return([]domain.ReferrerCount{{Referrer: "google.com", Count: 30}}, nil)
	events.EXPECT().GetDeviceCounts(gomock.Any(), tenantID, testDay, testEnd).Return(devices, nil)
}

func TestService_AggregateDailyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture) *[]*domain.DailySummary
		validate func(t *testing.T, result *RunResult, saved []*domain.DailySummary, err error)
	}{
		{
			name: "rolls up yesterday for a tenant with page views and purchases",
			setup: func(f *fixture) *[]*domain.DailySummary {
				saved := []*domain.DailySummary{}
				f.events.EXPECT().ListActiveTenants(gomock.Any(), testDay, testEnd).Return([]int64{7}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
					Return(totalsRow(100, 20, 20, 5, "500.00", 3), nil)
				expectTenantReads(f.events, 7,
					&domain.SessionStats{Sessions: 20, BouncedSessions: 5, AvgSessionDuration: 184.6},
					map[string]int64{"desktop": 75, "mobile": 20, "": 5},
				)
				f.summaries.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.DailySummary) error {
						saved = append(saved, s)
						return nil
					})
				return &saved
			},
			validate: func(t *testing.T, result *RunResult, saved []*domain.DailySummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, &RunResult{Date: testDay, Tenants: 1, Succeeded: 1}, result)

				require.Len(t, saved, 1)
				summary := saved[0]
				assert.Equal(t, int64(7), summary.TenantID)
				assert.Equal(t, testDay, summary.Date)
				assert.Equal(t, int64(100), summary.PageViews)
				assert.Equal(t, int64(5), summary.OrdersCount)
				assert.True(t, decimal.NewFromInt(500).Equal(summary.TotalRevenue))
				assert.True(t, decimal.NewFromInt(100).Equal(summary.AvgOrderValue))
				assert.Equal(t, int64(20), summary.UniqueVisitors)
				assert.Equal(t, 0.25, summary.ConversionRate)
				assert.Equal(t, 0.25, summary.BounceRate)
				assert.Equal(t, int64(185), summary.AvgSessionDuration)
				assert.Equal(t, int64(3), summary.NewUsers)
				assert.Equal(t, map[string]float64{"desktop": 75, "mobile": 20, "unknown": 5}, summary.DeviceBreakdown)
				assert.Len(t, summary.TopPages, 2)
			},
		},
		{
			name: "one failing tenant does not stop the others",
			setup: func(f *fixture) *[]*domain.DailySummary {
				saved := []*domain.DailySummary{}
				f.events.EXPECT().ListActiveTenants(gomock.Any(), testDay, testEnd).Return([]int64{1, 2}, nil)
				f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
					Return(totalsRow(10, 4, 4, 1, "20", 0), nil).Times(2)
				f.events.EXPECT().GetSessionStats(gomock.Any(), int64(1), testDay, testEnd).
					Return(nil, errors.New("connection reset"))
				expectTenantReads(f.events, 2, &domain.SessionStats{Sessions: 4}, map[string]int64{"mobile": 10})
				f.summaries.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.DailySummary) error {
						saved = append(saved, s)
						return nil
					})
				return &saved
			},
			validate: func(t *testing.T, result *RunResult, saved []*domain.DailySummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, result.Tenants)
				assert.Equal(t, 1, result.Succeeded)
				assert.Equal(t, 1, result.Failed)
				require.Len(t, saved, 1)
				assert.Equal(t, int64(2), saved[0].TenantID)
			},
		},
		{
			name: "no active tenants is an empty run",
			setup: func(f *fixture) *[]*domain.DailySummary {
				f.events.EXPECT().ListActiveTenants(gomock.Any(), testDay, testEnd).Return([]int64{}, nil)
				return &[]*domain.DailySummary{}
			},
			validate: func(t *testing.T, result *RunResult, saved []*domain.DailySummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, result.Tenants)
				assert.Empty(t, saved)
			},
		},
		{
			name: "tenant listing failure aborts the run",
			setup: func(f *fixture) *[]*domain.DailySummary {
				f.events.EXPECT().ListActiveTenants(gomock.Any(), testDay, testEnd).Return(nil, errors.New("db down"))
				return &[]*domain.DailySummary{}
			},
			validate: func(t *testing.T, result *RunResult, saved []*domain.DailySummary, err error) {
				assert.ErrorIs(t, err, ErrListTenants)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			saved := tt.setup(f)

			result, err := f.service.AggregateDailyMetrics(context.Background(), testAsOf)

			tt.validate(t, result, *saved, err)
		})
	}
}

func TestService_AggregateTenantDay(t *testing.T) {
	t.Run("rejects a missing tenant", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AggregateTenantDay(context.Background(), 0, testDay)

		assert.ErrorIs(t, err, ErrInvalidTenant)
	})

	t.Run("save failure is reported", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(totalsRow(0, 0, 0, 0, "0", 0), nil)
		expectTenantReads(f.events, 9, &domain.SessionStats{}, map[string]int64{})
		f.summaries.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		_, err := f.service.AggregateTenantDay(context.Background(), 9, testDay.Add(13*time.Hour))

		var aggErr *AggregateError
		require.ErrorAs(t, err, &aggErr)
		assert.ErrorIs(t, err, ErrSaveSummary)
		assert.Equal(t, int64(9), aggErr.TenantID)
	})

	t.Run("revenue keeps every digit of the stored sum", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
			Return(totalsRow(10, 3, 3, 3, "9007199254740993.01", 0), nil)
		expectTenantReads(f.events, 9, &domain.SessionStats{Sessions: 3}, map[string]int64{})
		f.summaries.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := f.service.AggregateTenantDay(context.Background(), 9, testDay)

		require.NoError(t, err)
		assert.Equal(t, "9007199254740993.01", summary.TotalRevenue.StringFixed(2))
		assert.Equal(t, "3002399751580331.00", summary.AvgOrderValue.StringFixed(2))
	})

	t.Run("empty day stores zero rates", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)
		expectTenantReads(f.events, 9, nil, nil)
		f.summaries.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := f.service.AggregateTenantDay(context.Background(), 9, testDay)

		require.NoError(t, err)
		assert.Zero(t, summary.BounceRate)
		assert.Zero(t, summary.ConversionRate)
		assert.True(t, summary.AvgOrderValue.IsZero())
		assert.Empty(t, summary.DeviceBreakdown)
	})
}

func TestService_GetDailyMetrics(t *testing.T) {
	t.Run("rejects an inverted range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.GetDailyMetrics(context.Background(), 3, testEnd, testDay)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects a range over the maximum span", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.GetDailyMetrics(context.Background(), 3, testDay, testDay.AddDate(0, 0, 367))

		var aggErr *AggregateError
		require.ErrorAs(t, err, &aggErr)
		assert.ErrorIs(t, err, ErrDateRangeTooLarge)
		assert.Equal(t, "VAL_005", aggErr.Code)
	})

	t.Run("returns stored summaries", func(t *testing.T) {
		f := newFixture(t)
		stored := []*domain.DailySummary{{TenantID: 3, Date: testDay}}
		f.summaries.EXPECT().GetByDateRange(gomock.Any(), int64(3), testDay, testEnd).Return(stored, nil)

		summaries, err := f.service.GetDailyMetrics(context.Background(), 3, testDay, testEnd)

		require.NoError(t, err)
		assert.Equal(t, stored, summaries)
	})
}

func TestService_GetTrafficSources(t *testing.T) {
	t.Run("returns the top sources", func(t *testing.T) {
		f := newFixture(t)
		sources := []domain.TrafficSource{{UTMSource: "newsletter", Count: 12}}
		f.events.EXPECT().GetTrafficSources(gomock.Any(), int64(3), testDay, testEnd, uint64(10)).Return(sources, nil)

		got, err := f.service.GetTrafficSources(context.Background(), 3, testDay, testEnd)

		require.NoError(t, err)
		assert.Equal(t, sources, got)
	})

	t.Run("a multi-year range never reaches the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.GetTrafficSources(context.Background(), 3, testDay.AddDate(-3, 0, 0), testEnd)

		assert.ErrorIs(t, err, ErrDateRangeTooLarge)
	})
}

func TestDeviceBreakdown(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int64
		want   map[string]float64
	}{
		{name: "empty", counts: map[string]int64{}, want: map[string]float64{}},
		{name: "blank folds into unknown", counts: map[string]int64{"": 1, "unknown": 1, "tablet": 2}, want: map[string]float64{"unknown": 50, "tablet": 50}},
		{name: "rounded to two places", counts: map[string]int64{"desktop": 1, "mobile": 2}, want: map[string]float64{"desktop": 33.33, "mobile": 66.67}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deviceBreakdown(tt.counts))
		})
	}
}
