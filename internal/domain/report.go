package domain

import "time"

type ReportType string

const (
	ReportTypeMetricsSummary ReportType = "metrics_summary"
	ReportTypeEventBreakdown ReportType = "event_breakdown"
	ReportTypeConversion     ReportType = "conversion"
	ReportTypeRetention      ReportType = "retention"
	ReportTypeCustom         ReportType = "custom"
)

type ScheduleType string

const (
	ScheduleDaily   ScheduleType = "daily"
	ScheduleWeekly  ScheduleType = "weekly"
	ScheduleMonthly ScheduleType = "monthly"
)

// Interval is the fixed distance between two sends.
func (s ScheduleType) Interval() time.Duration {
	switch s {
	case ScheduleWeekly:
		return 7 * 24 * time.Hour
	case ScheduleMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

type ReportStatus string

const (
	ReportStatusActive ReportStatus = "active"
	ReportStatusPaused ReportStatus = "paused"
)

type ScheduledReport struct {
	ID           string            `json:"id"`
	Name         string            `json:"name" validate:"required,max=255"`
	ReportType   ReportType        `json:"report_type" validate:"required,oneof=metrics_summary event_breakdown conversion retention custom"`
	TenantID     *int64            `json:"tenant_id,omitempty"`
	OwnerID      int64             `json:"owner_id"`
	Metrics      []string          `json:"metrics" validate:"required_if=ReportType custom,dive,required"`
	Filters      map[string]string `json:"filters,omitempty"`
	DateRange    string            `json:"date_range" validate:"omitempty,oneof=today yesterday last_7_days last_30_days last_90_days this_month last_month"`
	ScheduleType ScheduleType      `json:"schedule_type" validate:"required,oneof=daily weekly monthly"`
	Recipients   []string          `json:"recipients" validate:"required,min=1,max=50,dive,email"`
	LastSent     *time.Time        `json:"last_sent,omitempty"`
	NextSend     time.Time         `json:"next_send"`
	Status       ReportStatus      `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type ReportResult struct {
	ReportID   string     `json:"report_id"`
	ReportName string     `json:"report_name"`
	ReportType ReportType `json:"report_type"`
	DateRange  DateRange  `json:"date_range"`
	Results    any        `json:"results"`
	ExecutedAt time.Time  `json:"executed_at"`
}
