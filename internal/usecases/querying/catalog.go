package querying

import (
	"fmt"

	"github.com/vfg2006/analytics-engine/internal/domain"
)

const (
	valueTypeCount    = "count"
	valueTypeCurrency = "currency"

	eventTypeColumn = "ae.event_type"
)

// metric is an aggregation strategy. aggregate holds a single %s verb where the
// optional FILTER clause is placed, right after the aggregate call.
type metric struct {
	label       string
	description string
	valueType   string
	aggregate   string
	eventType   string
}

// purchaseValue reads payload.value as NUMERIC when it is a JSON number or a
// plain decimal string. Anything else counts as no value. The pattern avoids
// '?', which squirrel would rewrite as a placeholder.
const purchaseValue = `CASE WHEN jsonb_typeof(ae.payload->'value') = 'number' ` +
	`OR (ae.payload->>'value') ~ '^-{0,1}[0-9]+(\.[0-9]+){0,1}$' ` +
	`THEN (ae.payload->>'value')::numeric END`

var metricCatalog = map[string]metric{
	"page_views": {
		label:       "Page views",
		description: "Number of page_view events",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(*)%s",
		eventType:   domain.EventTypePageView,
	},
	"unique_visitors": {
		label:       "Unique visitors",
		description: "Distinct visitor ids with at least one event",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(DISTINCT ae.visitor_id)%s",
	},
	"sessions": {
		label:       "Sessions",
		description: "Distinct session ids with at least one event",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(DISTINCT ae.session_id)%s",
	},
	"conversions": {
		label:       "Conversions",
		description: "Number of purchase events",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(*)%s",
		eventType:   domain.EventTypePurchase,
	},
	"revenue": {
		label:       "Revenue",
		description: "Sum of the value carried by purchase events",
		valueType:   valueTypeCurrency,
		aggregate:   "COALESCE(SUM(" + purchaseValue + ")%s, 0)",
		eventType:   domain.EventTypePurchase,
	},
	"signups": {
		label:       "Sign-ups",
		description: "Number of signup events",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(*)%s",
		eventType:   domain.EventTypeSignup,
	},
	"total_events": {
		label:       "Total events",
		description: "Number of events of any type",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(*)%s",
	},
	"unique_users": {
		label:       "Unique users",
		description: "Distinct authenticated user ids",
		valueType:   valueTypeCount,
		aggregate:   "COUNT(DISTINCT ae.user_id)%s",
	},
}

// expression renders the bare aggregate. The event-type predicate is expected
// in the WHERE clause.
func (m metric) expression() string {
	return fmt.Sprintf(m.aggregate, "")
}

// filteredExpression renders the aggregate with its event-type predicate as a
// FILTER clause, so several metrics can share one scan.
func (m metric) filteredExpression() (string, []any) {
	if m.eventType == "" {
		return m.expression(), nil
	}
	return fmt.Sprintf(m.aggregate, " FILTER (WHERE "+eventTypeColumn+" = ?)"), []any{m.eventType}
}

type dimension struct {
	label       string
	description string
	expr        string
}

var dimensionCatalog = map[string]dimension{
	"date": {
		label:       "Date",
		description: "UTC calendar day of the event",
		expr:        "(ae.occurred_at AT TIME ZONE 'UTC')::date",
	},
	"event_type": {
		label:       "Event type",
		description: "Type of the recorded event",
		expr:        "ae.event_type",
	},
	"device_type": {
		label:       "Device",
		description: "Device class; empty values are reported as unknown",
		expr:        "COALESCE(NULLIF(ae.device_type, ''), 'unknown')",
	},
	"country": {
		label:       "Country",
		description: "Visitor country code",
		expr:        "ae.country",
	},
	"utm_source": {
		label:       "UTM source",
		description: "Campaign source parameter",
		expr:        "ae.utm_source",
	},
	"utm_campaign": {
		label:       "UTM campaign",
		description: "Campaign name parameter",
		expr:        "ae.utm_campaign",
	},
	"page_path": {
		label:       "Page",
		description: "URL of the page the event was recorded on",
		expr:        "ae.page_url",
	},
}

// filterColumns is the allow-list of filterable, indexed event fields.
var filterColumns = map[string]string{
	"event_type":   "ae.event_type",
	"device_type":  "ae.device_type",
	"country":      "ae.country",
	"utm_source":   "ae.utm_source",
	"utm_medium":   "ae.utm_medium",
	"utm_campaign": "ae.utm_campaign",
	"page_url":     "ae.page_url",
	"referrer":     "ae.referrer",
}

var periodUnits = map[domain.TimePeriod]string{
	domain.PeriodHour:  "hour",
	domain.PeriodDay:   "day",
	domain.PeriodWeek:  "week",
	domain.PeriodMonth: "month",
}
