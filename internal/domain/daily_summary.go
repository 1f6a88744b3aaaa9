package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is the rollup of one tenant's events for one UTC day.
type DailySummary struct {
	ID                 int64              `json:"id"`
	TenantID           int64              `json:"tenant_id"`
	Date               time.Time          `json:"date"`
	PageViews          int64              `json:"page_views"`
	UniqueVisitors     int64              `json:"unique_visitors"`
	Sessions           int64              `json:"sessions"`
	BounceRate         float64            `json:"bounce_rate"`
	AvgSessionDuration int64              `json:"avg_session_duration"`
	NewUsers           int64              `json:"new_users"`
	OrdersCount        int64              `json:"orders_count"`
	TotalRevenue       decimal.Decimal    `json:"total_revenue"`
	AvgOrderValue      decimal.Decimal    `json:"avg_order_value"`
	ConversionRate     float64            `json:"conversion_rate"`
	TopPages           []PageCount        `json:"top_pages"`
	TopReferrers       []ReferrerCount    `json:"top_referrers"`
	DeviceBreakdown    map[string]float64 `json:"device_breakdown"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type PageCount struct {
	URL   string `json:"url"`
	Views int64  `json:"views"`
}

type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

type TrafficSource struct {
	UTMSource string `json:"utm_source"`
	Referrer  string `json:"referrer"`
	Count     int64  `json:"count"`
}
