package repository

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-engine/internal/domain"
)

var (
	dayStart = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd   = dayStart.AddDate(0, 0, 1)
)

func tenant(id int64) *int64 {
	return &id
}

func TestEventQueries_AlwaysScopeTenantAndRange(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (string, []any, error)
		contains []string
		args     int
	}{
		{
			name: "session stats",
			build: func() (string, []any, error) {
				return sessionStatsQuery(7, dayStart, dayEnd).ToSql()
			},
			contains: []string{
				"FROM (SELECT ae.session_id",
				"COUNT(*) FILTER (WHERE ae.event_type = $1) AS page_views",
				"ae.tenant_id = $2",
				"ae.occurred_at >= $3",
				"ae.occurred_at < $4",
				"GROUP BY ae.session_id) AS s",
				"COUNT(*) FILTER (WHERE s.page_views = 1) AS bounced",
			},
			args: 4,
		},
		{
			name: "top pages",
			build: func() (string, []any, error) {
				return topPagesQuery(7, dayStart, dayEnd, 10).ToSql()
			},
			contains: []string{
				"ae.event_type = $1 AND ae.tenant_id = $2",
				"ae.occurred_at >= $3",
				"ORDER BY views DESC, ae.page_url ASC",
				"LIMIT 10",
			},
			args: 4,
		},
		{
			name: "device counts",
			build: func() (string, []any, error) {
				return deviceCountsQuery(7, dayStart, dayEnd).ToSql()
			},
			contains: []string{
				"COALESCE(NULLIF(ae.device_type, ''), 'unknown') AS device",
				"ae.tenant_id = $1",
				"GROUP BY device",
			},
			args: 3,
		},
		{
			name: "session event times",
			build: func() (string, []any, error) {
				return sessionEventTimesQuery(7, "add_to_cart", dayStart, dayEnd, 500).ToSql()
			},
			contains: []string{
				"ae.event_type = $1 AND ae.tenant_id = $2",
				"ORDER BY ae.session_id, ae.occurred_at",
				"LIMIT 500",
			},
			args: 4,
		},
		{
			name: "sessions with event",
			build: func() (string, []any, error) {
				return sessionsWithEventQuery(7, "add_to_cart", dayStart, dayEnd, 500).ToSql()
			},
			contains: []string{
				"SELECT DISTINCT ae.session_id FROM analytics_event ae",
				"ae.event_type = $1 AND ae.tenant_id = $2",
				"ORDER BY ae.session_id",
				"LIMIT 500",
			},
			args: 4,
		},
		{
			name: "active users",
			build: func() (string, []any, error) {
				return activeUsersQuery(tenant(7), []int64{1, 2, 3}, dayStart, dayEnd).ToSql()
			},
			contains: []string{
				"ae.user_id = ANY($1)",
				"ae.tenant_id = $2",
				"ae.occurred_at < $4",
			},
			args: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			assert.Len(t, args, tt.args)
		})
	}
}

func TestEventRepository_WarnsWhenSessionReadIsTruncated(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	repo := NewEventRepository(nil, 3).(*eventRepository)

	repo.warnIfTruncated(2, 7, "purchase", dayStart, dayEnd)
	assert.Empty(t, hook.AllEntries())

	repo.warnIfTruncated(3, 7, "purchase", dayStart, dayEnd)
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, int64(7), entry.Data["tenant_id"])
	assert.Equal(t, uint64(3), entry.Data["max_rows"])
}

func TestActiveUsersQuery_PlatformWideOmitsTenant(t *testing.T) {
	query, args, err := activeUsersQuery(nil, []int64{1}, dayStart, dayEnd).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "tenant_id")
	assert.Len(t, args, 3)
}

func TestReturningVisitorsQuery(t *testing.T) {
	query, args, err := returningVisitorsQuery(tenant(3), dayStart, dayEnd).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "prev.occurred_at < $1")
	assert.Contains(t, query, "ae.tenant_id = $2")
	assert.Contains(t, query, "COUNT(DISTINCT ae.visitor_id) AS total_visitors")
	assert.Equal(t, []any{dayStart, int64(3), dayStart, dayEnd}, args)
}

func TestUpsertDailySummaryQuery(t *testing.T) {
	summary := &domain.DailySummary{
		TenantID:        9,
		Date:            dayStart,
		PageViews:       100,
		TopPages:        []domain.PageCount{{URL: "/", Views: 60}},
		TopReferrers:    []domain.ReferrerCount{},
		DeviceBreakdown: map[string]float64{"mobile": 100},
	}

	builder, err := upsertDailySummaryQuery(summary)
	require.NoError(t, err)

	query, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO daily_summary (tenant_id,date,page_views")
	assert.Contains(t, query, "ON CONFLICT (tenant_id, date) DO UPDATE SET page_views = EXCLUDED.page_views")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE (daily_summary.page_views, daily_summary.unique_visitors")
	assert.Contains(t, query, "IS DISTINCT FROM (EXCLUDED.page_views, EXCLUDED.unique_visitors")
	assert.NotContains(t, query, "page_views + ")

	require.Len(t, args, 15)
	assert.Equal(t, int64(9), args[0])
	assert.Equal(t, "2024-03-14", args[1])
	assert.Equal(t, `[{"url":"/","views":60}]`, args[12])
	assert.Equal(t, `[]`, args[13])
	assert.Equal(t, `{"mobile":100}`, args[14])
}

func TestCohortMemberQueries(t *testing.T) {
	t.Run("registration joins group membership when tenant scoped", func(t *testing.T) {
		query, args, err := registeredBetweenQuery(tenant(4), dayStart, dayEnd).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "JOIN group_membership gm ON gm.user_id = u.id")
		assert.Contains(t, query, "gm.tenant_id = $1")
		assert.Contains(t, query, "u.created_at >= $2")
		assert.Len(t, args, 3)
	})

	t.Run("registration platform wide", func(t *testing.T) {
		query, _, err := registeredBetweenQuery(nil, dayStart, dayEnd).ToSql()
		require.NoError(t, err)

		assert.NotContains(t, query, "group_membership")
	})

	t.Run("first purchase filters the per-user minimum", func(t *testing.T) {
		query, args, err := firstPurchaseBetweenQuery(tenant(4), dayStart, dayEnd).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "MIN(ae.occurred_at) AS first_at")
		assert.Contains(t, query, "ae.event_type = $1")
		assert.Contains(t, query, "ae.tenant_id = $2")
		assert.Contains(t, query, "fp.first_at >= $3")
		assert.Contains(t, query, "fp.first_at < $4")
		assert.Len(t, args, 4)
	})

	t.Run("vertical narrows by membership", func(t *testing.T) {
		query, args, err := activeInVerticalQuery(tenant(4), "retail", dayStart, dayEnd).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "gm.vertical = $1")
		assert.Contains(t, query, "ae.tenant_id = $2")
		assert.Len(t, args, 4)
	})

	t.Run("custom filters are allow-listed", func(t *testing.T) {
		query, err := matchingEventsQuery(tenant(4), map[string]string{
			"country":    "PT",
			"event_type": "signup",
		}, dayStart, dayEnd)
		require.NoError(t, err)

		sqlQuery, sqlArgs, err := query.ToSql()
		require.NoError(t, err)
		assert.Contains(t, sqlQuery, "ae.country = $1 AND ae.event_type = $2")
		assert.Equal(t, []any{"PT", "signup", int64(4), dayStart, dayEnd}, sqlArgs)
	})

	t.Run("custom filter outside the allow-list is rejected", func(t *testing.T) {
		_, err := matchingEventsQuery(tenant(4), map[string]string{"payload": "x"}, dayStart, dayEnd)

		var filterErr ErrUnsupportedCohortFilter
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, "payload", filterErr.Field)
	})
}

func TestScheduledReportQueries(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("due set excludes paused reports", func(t *testing.T) {
		query, args, err := dueReportsQuery(now, 200).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "sr.status = $1")
		assert.Contains(t, query, "sr.next_send <= $2")
		assert.Contains(t, query, "LIMIT 200")
		assert.Equal(t, []any{"active", now}, args)
	})

	t.Run("mark sent compares the previous next_send", func(t *testing.T) {
		previous := now.Add(-time.Hour)
		next := previous.Add(24 * time.Hour)

		query, args, err := markSentQuery("rep1", previous, now, next).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "UPDATE scheduled_report SET last_sent = $1, next_send = $2, updated_at = NOW()")
		assert.Contains(t, query, "WHERE id = $3 AND next_send = $4")
		assert.Equal(t, []any{now, next, "rep1", previous}, args)
	})
}

func TestListDashboardsQuery(t *testing.T) {
	query, args, err := listDashboardsQuery(11, tenant(2)).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "d.status = $1")
	assert.Contains(t, query, "(d.tenant_id = $2 OR d.tenant_id IS NULL)")
	assert.Contains(t, query, "d.owner_id = $3")
	assert.Contains(t, query, "d.is_shared = $4 AND d.tenant_id = $5")
	assert.Equal(t, []any{"active", int64(2), int64(11), true, int64(2)}, args)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "integer numeric", input: []byte("42"), expected: int64(42)},
		{name: "decimal numeric", input: []byte("12.50"), expected: 12.5},
		{name: "text bytes", input: []byte("mobile"), expected: "mobile"},
		{name: "time in utc", input: dayStart.In(time.FixedZone("X", 3600)), expected: dayStart},
		{name: "passthrough", input: int64(3), expected: int64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.input)
			if expectedTime, ok := tt.expected.(time.Time); ok {
				assert.True(t, expectedTime.Equal(got.(time.Time)))
				assert.Equal(t, time.UTC, got.(time.Time).Location())
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
