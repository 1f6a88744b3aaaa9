package domain

import "time"

type FunnelStep struct {
	Label     string `json:"label" validate:"required,max=120"`
	EventType string `json:"event_type" validate:"required,max=64"`
}

type FunnelDefinition struct {
	ID                    string       `json:"id"`
	TenantID              int64        `json:"tenant_id"`
	Name                  string       `json:"name" validate:"required,max=255"`
	Steps                 []FunnelStep `json:"steps" validate:"required,min=1,max=20,dive"`
	ConversionWindowHours int          `json:"conversion_window_hours" validate:"gte=0"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

type FunnelStepResult struct {
	Step           int     `json:"step"`
	Label          string  `json:"label"`
	EventType      string  `json:"event_type"`
	Entered        int     `json:"entered"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversion_rate"`
	DropOffRate    float64 `json:"drop_off_rate"`
}

type FunnelSummary struct {
	FunnelID              string             `json:"funnel_id"`
	Name                  string             `json:"name"`
	Steps                 []FunnelStepResult `json:"steps"`
	TotalEntered          int                `json:"total_entered"`
	TotalConverted        int                `json:"total_converted"`
	OverallConversionRate float64            `json:"overall_conversion_rate"`
}
