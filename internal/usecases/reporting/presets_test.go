package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		preset string
		want   domain.DateRange
	}{
		{preset: PresetToday, want: domain.DateRange{Start: midnight, End: midnight.AddDate(0, 0, 1)}},
		{preset: PresetYesterday, want: domain.DateRange{Start: midnight.AddDate(0, 0, -1), End: midnight}},
		{preset: PresetLast7Days, want: domain.DateRange{Start: midnight.AddDate(0, 0, -7), End: now}},
		{preset: PresetLast30Days, want: domain.DateRange{Start: midnight.AddDate(0, 0, -30), End: now}},
		{preset: PresetLast90Days, want: domain.DateRange{Start: midnight.AddDate(0, 0, -90), End: now}},
		{preset: PresetThisMonth, want: domain.DateRange{Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), End: now}},
		{preset: PresetLastMonth, want: domain.DateRange{
			Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
		{preset: "", want: domain.DateRange{Start: midnight.AddDate(0, 0, -30), End: now}},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDateRange(tt.preset, now))
		})
	}
}

func TestResolveDateRange_ConvertsToUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 3, 15, 22, 0, 0, 0, saoPaulo)

	got := ResolveDateRange(PresetToday, now)

	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), got.Start)
}

func TestRenderEmail(t *testing.T) {
	result := &domain.ReportResult{
		ReportName: "Weekly",
		ReportType: domain.ReportTypeConversion,
		DateRange: domain.DateRange{
			Start: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		Results:    &ConversionSummary{Visitors: 10, Conversions: 1, ConversionRate: 10},
		ExecutedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	subject, body, err := renderEmail(result)

	assert.NoError(t, err)
	assert.Equal(t, "Report: Weekly", subject)
	assert.Contains(t, body, "Period: 2024-03-08 00:00 to 2024-03-15 10:30 UTC")
	assert.Contains(t, body, "Generated: 2024-03-15T10:30:00Z")
	assert.Contains(t, body, `"conversion_rate": 10`)
}
