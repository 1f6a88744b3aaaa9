package aggregating

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/analytics-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"go.uber.org/mock/gomock"
)

// memorySummaries stores summaries by natural key, overwriting on conflict.
type memorySummaries struct {
	mu   sync.Mutex
	rows map[string]domain.DailySummary
}

func newMemorySummaries() *memorySummaries {
	return &memorySummaries{rows: map[string]domain.DailySummary{}}
}

func (m *memorySummaries) GetByTenantAndDate(_ context.Context, tenantID int64, date time.Time) (*domain.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[summaryKey(tenantID, date)]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memorySummaries) SaveOrUpdate(_ context.Context, summary *domain.DailySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[summaryKey(summary.TenantID, summary.Date)] = *summary
	return nil
}

func (m *memorySummaries) GetByDateRange(context.Context, int64, time.Time, time.Time) ([]*domain.DailySummary, error) {
	return nil, nil
}

func summaryKey(tenantID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", tenantID, date.Format(time.DateOnly))
}

func TestProperty_RollupIsIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("re-running a tenant day stores the same row", prop.ForAll(
		func(pageViews, visitors, orders, bounced int64, revenueCents int64, desktop, mobile int64) bool {
			ctrl := gomock.NewController(t)
			events := mocks.NewMockEventRepository(ctrl)
			store := newMemorySummaries()
			service := NewService(events, store, querying.NewService(events, testQueryConfig), config.Rollup{}, testQueryConfig)

			revenue := fmt.Sprintf("%d.%02d", revenueCents/100, revenueCents%100)
			events.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
				Return(totalsRow(pageViews, visitors, visitors, orders, revenue, 0), nil).AnyTimes()
			events.EXPECT().GetSessionStats(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&domain.SessionStats{Sessions: visitors, BouncedSessions: bounced % (visitors + 1), AvgSessionDuration: 61.5}, nil).AnyTimes()
			events.EXPECT().GetTopPages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]domain.PageCount{{URL: "/", Views: pageViews}}, nil).AnyTimes()
			events.EXPECT().GetTopReferrers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]domain.ReferrerCount{}, nil).AnyTimes()
			events.EXPECT().GetDeviceCounts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(map[string]int64{"desktop": desktop, "mobile": mobile}, nil).AnyTimes()

			ctx := context.Background()
			if _, err := service.AggregateTenantDay(ctx, 5, testDay); err != nil {
				return false
			}
			first, _ := store.GetByTenantAndDate(ctx, 5, testDay)

			if _, err := service.AggregateTenantDay(ctx, 5, testDay); err != nil {
				return false
			}
			second, _ := store.GetByTenantAndDate(ctx, 5, testDay)

			return len(store.rows) == 1 && reflect.DeepEqual(first, second)
		},
		gen.Int64Range(0, 100000),
		gen.Int64Range(0, 5000),
		gen.Int64Range(0, 500),
		gen.Int64Range(0, 5000),
		gen.Int64Range(0, 10000000),
		gen.Int64Range(0, 1000),
		gen.Int64Range(0, 1000),
	))

	properties.Property("rates stay within bounds", prop.ForAll(
		func(visitors, orders, sessions, bounced int64) bool {
			if orders > visitors {
				orders = visitors
			}
			if bounced > sessions {
				bounced = sessions
			}
			totals := map[string]decimal.Decimal{"unique_visitors": decimal.NewFromInt(visitors), "conversions": decimal.NewFromInt(orders)}
			stats := &domain.SessionStats{Sessions: sessions, BouncedSessions: bounced}

			summary := buildSummary(1, testDay, totals, stats, nil, nil, nil)

			return summary.ConversionRate >= 0 && summary.ConversionRate <= 1 &&
				summary.BounceRate >= 0 && summary.BounceRate <= 1
		},
		gen.Int64Range(0, 10000),
		gen.Int64Range(0, 10000),
		gen.Int64Range(0, 10000),
		gen.Int64Range(0, 10000),
	))

	properties.TestingRun(t)
}
