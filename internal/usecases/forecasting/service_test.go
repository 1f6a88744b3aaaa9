package forecasting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

func newTestService(now time.Time) *Service {
	service := NewService(config.Grant{})
	service.now = func() time.Time { return now }
	return service
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_CalculateBurnRate(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 12, 31)
	midYear := date(2024, 7, 1)

	tests := []struct {
		name     string
		total    decimal.Decimal
		spent    decimal.Decimal
		now      time.Time
		validate func(t *testing.T, result domain.BurnRate)
	}{
		{
			name:  "spend on track does not alert",
			total: decimal.NewFromInt(100000),
			spent: decimal.NewFromInt(50000),
			now:   midYear,
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, 50.0, result.BurnRate)
				assert.Equal(t, 49.86, result.ExpectedRate)
				assert.Equal(t, 0.14, result.Deviation)
				assert.False(t, result.Alert)
				assert.InDelta(t, 182, result.RunwayDays, 1)
				require.NotNil(t, result.ForecastEnd)
				assert.Equal(t, midYear.AddDate(0, 0, result.RunwayDays), *result.ForecastEnd)
			},
		},
		{
			name:  "overspending alerts",
			total: decimal.NewFromInt(100000),
			spent: decimal.NewFromInt(80000),
			now:   midYear,
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, 30.14, result.Deviation)
				assert.True(t, result.Alert)
			},
		},
		{
			name:  "underspending alerts too",
			total: decimal.NewFromInt(100000),
			spent: decimal.NewFromInt(10000),
			now:   midYear,
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Less(t, result.Deviation, -15.0)
				assert.True(t, result.Alert)
			},
		},
		{
			name:  "zero total is the zero result",
			total: decimal.Zero,
			spent: decimal.NewFromInt(500),
			now:   midYear,
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, domain.BurnRate{}, result)
			},
		},
		{
			name:  "no spend has no runway",
			total: decimal.NewFromInt(1000),
			spent: decimal.Zero,
			now:   midYear,
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, 0, result.RunwayDays)
				assert.Nil(t, result.ForecastEnd)
			},
		},
		{
			name:  "exhausted budget has zero runway ending now",
			total: decimal.NewFromInt(1000),
			spent: decimal.NewFromInt(1200),
			now:   midYear.Add(5 * time.Hour),
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, 0, result.RunwayDays)
				require.NotNil(t, result.ForecastEnd)
				assert.Equal(t, midYear.Add(5*time.Hour), *result.ForecastEnd)
			},
		},
		{
			name:  "the forecast keeps the time of day",
			total: decimal.NewFromInt(1000),
			spent: decimal.NewFromInt(500),
			now:   date(2024, 1, 11).Add(18 * time.Hour),
			validate: func(t *testing.T, result domain.BurnRate) {
				// 500 over 10.75 days leaves 500 for 10 more whole days.
				assert.Equal(t, 10, result.RunwayDays)
				require.NotNil(t, result.ForecastEnd)
				assert.Equal(t, date(2024, 1, 21).Add(18*time.Hour), *result.ForecastEnd)
			},
		},
		{
			name:  "before the grant starts nothing is expected",
			total: decimal.NewFromInt(1000),
			spent: decimal.Zero,
			now:   date(2023, 12, 1),
			validate: func(t *testing.T, result domain.BurnRate) {
				assert.Equal(t, 0.0, result.ExpectedRate)
				assert.False(t, result.Alert)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.now)

			tt.validate(t, service.CalculateBurnRate(tt.total, tt.spent, start, end))
		})
	}
}

func TestService_GetGrantSummary(t *testing.T) {
	service := newTestService(date(2024, 2, 15))

	summary := service.GetGrantSummary(domain.GrantConfig{
		Total:     decimal.NewFromInt(9100),
		Spent:     decimal.NewFromInt(4500),
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 4, 1),
		BudgetLines: []domain.BudgetLine{
			{Name: "Staff", Budget: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(950)},
			{Name: "Travel", Budget: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(500)},
			{Name: "Unplanned", Budget: decimal.Zero, Spent: decimal.NewFromInt(10)},
		},
	})

	assert.True(t, decimal.NewFromInt(4600).Equal(summary.Remaining))

	require.Len(t, summary.BudgetLines, 3)
	assert.Equal(t, 95.0, summary.BudgetLines[0].ConsumptionPct)
	assert.True(t, summary.BudgetLines[0].Alert)
	assert.Equal(t, 25.0, summary.BudgetLines[1].ConsumptionPct)
	assert.False(t, summary.BudgetLines[1].Alert)
	assert.Equal(t, 0.0, summary.BudgetLines[2].ConsumptionPct)

	require.Len(t, summary.Timeline, 3)
	assert.Equal(t, "2024-01", summary.Timeline[0].Month)
	assert.True(t, decimal.NewFromInt(3100).Equal(summary.Timeline[0].Expected))
	require.NotNil(t, summary.Timeline[0].Actual)
	assert.True(t, decimal.NewFromInt(3100).Equal(*summary.Timeline[0].Actual))

	assert.Equal(t, "2024-02", summary.Timeline[1].Month)
	require.NotNil(t, summary.Timeline[1].Actual)
	assert.True(t, decimal.NewFromInt(4500).Equal(*summary.Timeline[1].Actual))

	assert.Equal(t, "2024-03", summary.Timeline[2].Month)
	assert.True(t, decimal.NewFromInt(9100).Equal(summary.Timeline[2].Expected))
	assert.Nil(t, summary.Timeline[2].Actual)
}

func TestService_GetGrantSummary_InvertedPeriod(t *testing.T) {
	service := newTestService(date(2024, 2, 15))

	summary := service.GetGrantSummary(domain.GrantConfig{
		Total:     decimal.NewFromInt(100),
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 1, 1),
	})

	assert.Empty(t, summary.Timeline)
	assert.False(t, summary.Alert)
}
