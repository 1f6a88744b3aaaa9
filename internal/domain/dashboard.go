package domain

import "time"

type DashboardStatus string

const (
	DashboardStatusActive   DashboardStatus = "active"
	DashboardStatusArchived DashboardStatus = "archived"
)

type Dashboard struct {
	ID           string          `json:"id"`
	Name         string          `json:"name" validate:"required,max=255"`
	LayoutConfig map[string]any  `json:"layout_config"`
	OwnerID      int64           `json:"owner_id"`
	TenantID     *int64          `json:"tenant_id,omitempty"`
	IsDefault    bool            `json:"is_default"`
	IsShared     bool            `json:"is_shared"`
	Status       DashboardStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
