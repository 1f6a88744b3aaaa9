package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetLine struct {
	Name   string          `json:"name" validate:"required"`
	Budget decimal.Decimal `json:"budget"`
	Spent  decimal.Decimal `json:"spent"`
}

type GrantConfig struct {
	Total       decimal.Decimal `json:"total"`
	Spent       decimal.Decimal `json:"spent"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
	BudgetLines []BudgetLine    `json:"budget_lines" validate:"dive"`
}

type BurnRate struct {
	BurnRate     float64    `json:"burn_rate"`
	ExpectedRate float64    `json:"expected_rate"`
	Deviation    float64    `json:"deviation"`
	Alert        bool       `json:"alert"`
	ForecastEnd  *time.Time `json:"forecast_end"`
	RunwayDays   int        `json:"runway_days"`
}

type BudgetLineStatus struct {
	Name           string          `json:"name"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	ConsumptionPct float64         `json:"consumption_pct"`
	Alert          bool            `json:"alert"`
}

// TimelinePoint is one month of the expected-vs-actual chart. Actual is nil
// for months after the current one.
type TimelinePoint struct {
	Month    string           `json:"month"`
	Expected decimal.Decimal  `json:"expected"`
	Actual   *decimal.Decimal `json:"actual"`
}

type GrantSummary struct {
	BurnRate
	Total       decimal.Decimal    `json:"total"`
	Spent       decimal.Decimal    `json:"spent"`
	Remaining   decimal.Decimal    `json:"remaining"`
	BudgetLines []BudgetLineStatus `json:"budget_lines"`
	Timeline    []TimelinePoint    `json:"timeline"`
}
