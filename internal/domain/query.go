package domain

import "time"

// DateRange is half-open: Start is inclusive, End is exclusive.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

type QuerySpec struct {
	Metric     string            `json:"metric" validate:"required"`
	Dimensions []string          `json:"dimensions" validate:"max=3,dive,required"`
	Filters    map[string]string `json:"filters"`
	DateRange  DateRange         `json:"date_range"`
	Limit      int               `json:"limit" validate:"gte=0"`
}

// QueryRow is one result row keyed by dimension key plus "value".
type QueryRow map[string]any

type TimePeriod string

const (
	PeriodHour  TimePeriod = "hour"
	PeriodDay   TimePeriod = "day"
	PeriodWeek  TimePeriod = "week"
	PeriodMonth TimePeriod = "month"
)

type TimeSeriesPoint struct {
	Period time.Time `json:"period"`
	Value  float64   `json:"value"`
}

type MetricInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type DimensionInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}
