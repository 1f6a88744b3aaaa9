package repository

//go:generate mockgen -source=event.go -destination=mocks/event.go -package=mocks
//go:generate mockgen -source=daily_summary.go -destination=mocks/daily_summary.go -package=mocks
//go:generate mockgen -source=cohort_member.go -destination=mocks/cohort_member.go -package=mocks
//go:generate mockgen -source=funnel_definition.go -destination=mocks/funnel_definition.go -package=mocks
//go:generate mockgen -source=cohort_definition.go -destination=mocks/cohort_definition.go -package=mocks
//go:generate mockgen -source=scheduled_report.go -destination=mocks/scheduled_report.go -package=mocks
//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks
