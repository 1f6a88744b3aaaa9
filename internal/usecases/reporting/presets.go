package reporting

import (
	"time"

	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

const (
	PresetToday      = "today"
	PresetYesterday  = "yesterday"
	PresetLast7Days  = "last_7_days"
	PresetLast30Days = "last_30_days"
	PresetLast90Days = "last_90_days"
	PresetThisMonth  = "this_month"
	PresetLastMonth  = "last_month"

	DefaultPreset = PresetLast30Days
)

// ResolveDateRange turns a preset into a half-open UTC range relative to now.
// Rolling presets start at midnight N days ago and end at now. Unknown presets
// fall back to the last 30 days.
func ResolveDateRange(preset string, now time.Time) domain.DateRange {
	now = now.UTC()
	today := utils.StartOfDay(now)

	switch preset {
	case PresetToday:
		return domain.DateRange{Start: today, End: today.AddDate(0, 0, 1)}
	case PresetYesterday:
		return domain.DateRange{Start: today.AddDate(0, 0, -1), End: today}
	case PresetLast7Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -7), End: now}
	case PresetLast90Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -90), End: now}
	case PresetThisMonth:
		return domain.DateRange{Start: utils.StartOfMonth(now), End: now}
	case PresetLastMonth:
		thisMonth := utils.StartOfMonth(now)
		return domain.DateRange{Start: thisMonth.AddDate(0, -1, 0), End: thisMonth}
	default:
		return domain.DateRange{Start: today.AddDate(0, 0, -30), End: now}
	}
}
