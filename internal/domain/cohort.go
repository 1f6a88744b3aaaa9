package domain

import "time"

type CohortType string

const (
	CohortTypeRegistrationDate CohortType = "registration_date"
	CohortTypeFirstPurchase    CohortType = "first_purchase"
	CohortTypeVertical         CohortType = "vertical"
	CohortTypeCustom           CohortType = "custom"
)

type CohortDefinition struct {
	ID             string            `json:"id"`
	Name           string            `json:"name" validate:"required,max=255"`
	Type           CohortType        `json:"type" validate:"required,oneof=registration_date first_purchase vertical custom"`
	TenantID       *int64            `json:"tenant_id,omitempty"`
	DateRangeStart *time.Time        `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time        `json:"date_range_end,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// RetentionCurve is indexed by week number; week 0 is the cohort start.
type RetentionCurve []float64

type CohortComparison struct {
	Name         string         `json:"name"`
	Type         CohortType     `json:"type"`
	MembersCount int            `json:"members_count"`
	Retention    RetentionCurve `json:"retention"`
}
