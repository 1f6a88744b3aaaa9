// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

var (
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_job_runs_total",
			Help: "Total scheduled job runs by job and outcome",
		},
		[]string{"job", "status"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_job_duration_seconds",
			Help:    "Duration of scheduled job runs in seconds",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 300, 900, 1800},
		},
		[]string{"job"},
	)

	RollupTenants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_rollup_tenants_total",
			Help: "Tenant daily rollups by outcome",
		},
		[]string{"status"},
	)

	ReportsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_reports_processed_total",
			Help: "Scheduled reports processed by outcome",
		},
		[]string{"status"},
	)

	MailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_mail_deliveries_total",
			Help: "Outbound report e-mails by outcome",
		},
		[]string{"status"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_query_duration_seconds",
			Help:    "Duration of event store aggregation queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_query_errors_total",
			Help: "Rejected or failed ad-hoc queries",
		},
		[]string{"operation", "reason"},
	)
)
