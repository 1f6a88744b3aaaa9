package domain

import "time"

const (
	EventTypePageView = "page_view"
	EventTypePurchase = "purchase"
	EventTypeSignup   = "signup"
)

// Event is a single tenant-scoped record appended by the ingestion service.
// The engine only reads events.
type Event struct {
	ID          int64          `json:"id"`
	TenantID    int64          `json:"tenant_id"`
	EventType   string         `json:"event_type"`
	OccurredAt  time.Time      `json:"occurred_at"`
	SessionID   string         `json:"session_id"`
	VisitorID   string         `json:"visitor_id"`
	UserID      *int64         `json:"user_id,omitempty"`
	PageURL     *string        `json:"page_url,omitempty"`
	Referrer    *string        `json:"referrer,omitempty"`
	DeviceType  *string        `json:"device_type,omitempty"`
	Country     *string        `json:"country,omitempty"`
	UTMSource   *string        `json:"utm_source,omitempty"`
	UTMMedium   *string        `json:"utm_medium,omitempty"`
	UTMCampaign *string        `json:"utm_campaign,omitempty"`
	UTMContent  *string        `json:"utm_content,omitempty"`
	UTMTerm     *string        `json:"utm_term,omitempty"`
	Payload     map[string]any `json:"payload"`
}

// SessionStats holds the per-session figures of one tenant day.
type SessionStats struct {
	Sessions           int64
	BouncedSessions    int64
	AvgSessionDuration float64
}
