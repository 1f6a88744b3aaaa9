package forecasting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

const (
	defaultDeviationAlertPoints = 15.0
	defaultLineAlertPercent     = 90.0
)

type Forecaster interface {
	CalculateBurnRate(total, spent decimal.Decimal, start, end time.Time) domain.BurnRate
	GetGrantSummary(grant domain.GrantConfig) *domain.GrantSummary
}

type Service struct {
	cfg config.Grant
	now func() time.Time
}

func NewService(cfg config.Grant) *Service {
	if cfg.DeviationAlertPoints <= 0 {
		cfg.DeviationAlertPoints = defaultDeviationAlertPoints
	}
	if cfg.LineAlertPercent <= 0 {
		cfg.LineAlertPercent = defaultLineAlertPercent
	}

	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// CalculateBurnRate compares the share of the budget already spent with the
// share of the grant period already elapsed, assuming linear spending. A
// non-positive total yields the zero value.
func (s *Service) CalculateBurnRate(total, spent decimal.Decimal, start, end time.Time) domain.BurnRate {
	if !total.IsPositive() {
		return domain.BurnRate{}
	}

	now := s.now().UTC()
	elapsed, length := elapsedDays(start, end, now)

	var expected float64
	if length > 0 {
		expected = elapsed / length * 100
	}

	burn := spent.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
	deviation := utils.RoundWithTwoDecimalPlace(burn - expected)

	result := domain.BurnRate{
		BurnRate:     utils.RoundWithTwoDecimalPlace(burn),
		ExpectedRate: utils.RoundWithTwoDecimalPlace(expected),
		Deviation:    deviation,
		Alert:        math.Abs(deviation) > s.cfg.DeviationAlertPoints,
	}

	// Without any spend or elapsed time there is no daily burn to extrapolate.
	if elapsed <= 0 || !spent.IsPositive() {
		return result
	}

	daily := spent.InexactFloat64() / elapsed
	remaining := total.Sub(spent).InexactFloat64()

	runway := 0
	if remaining > 0 {
		runway = int(math.Floor(remaining / daily))
	}

	forecastEnd := now.UTC().AddDate(0, 0, runway)
	result.RunwayDays = runway
	result.ForecastEnd = &forecastEnd

	return result
}

// elapsedDays returns the days elapsed since start, clamped to the period, and
// the period length in days.
func elapsedDays(start, end, now time.Time) (float64, float64) {
	length := end.Sub(start).Hours() / 24
	if length <= 0 {
		return 0, 0
	}

	elapsed := now.Sub(start).Hours() / 24
	return math.Max(0, math.Min(elapsed, length)), length
}

// GetGrantSummary adds budget line consumption and a monthly expected vs
// actual timeline to the burn rate.
func (s *Service) GetGrantSummary(grant domain.GrantConfig) *domain.GrantSummary {
	burnRate := s.CalculateBurnRate(grant.Total, grant.Spent, grant.StartDate, grant.EndDate)

	summary := &domain.GrantSummary{
		BurnRate:    burnRate,
		Total:       grant.Total,
		Spent:       grant.Spent,
		Remaining:   grant.Total.Sub(grant.Spent),
		BudgetLines: s.budgetLines(grant.BudgetLines),
		Timeline:    s.timeline(grant),
	}

	if burnRate.Alert {
		logrus.WithFields(logrus.Fields{
			"burn_rate":     burnRate.BurnRate,
			"expected_rate": burnRate.ExpectedRate,
			"deviation":     burnRate.Deviation,
		}).Warn("Grant spending deviates from the linear plan")
	}

	return summary
}

func (s *Service) budgetLines(lines []domain.BudgetLine) []domain.BudgetLineStatus {
	out := make([]domain.BudgetLineStatus, 0, len(lines))
	for _, line := range lines {
		var pct float64
		if line.Budget.IsPositive() {
			pct = utils.RoundWithTwoDecimalPlace(line.Spent.Div(line.Budget).Mul(decimal.NewFromInt(100)).InexactFloat64())
		}

		out = append(out, domain.BudgetLineStatus{
			Name:           line.Name,
			Budget:         line.Budget,
			Spent:          line.Spent,
			ConsumptionPct: pct,
			Alert:          pct > s.cfg.LineAlertPercent,
		})
	}
	return out
}

// timeline has one point per calendar month of the grant. Expected is the
// linear cumulative spend at the month's end. No spend history is kept, so
// actual spreads the current spend at its average daily rate and is left out
// for months after the current one.
func (s *Service) timeline(grant domain.GrantConfig) []domain.TimelinePoint {
	start := grant.StartDate.UTC()
	end := grant.EndDate.UTC()
	if !end.After(start) {
		return []domain.TimelinePoint{}
	}

	now := s.now().UTC()
	elapsed, length := elapsedDays(start, end, now)

	var daily decimal.Decimal
	if elapsed > 0 {
		daily = grant.Spent.Div(decimal.NewFromFloat(elapsed))
	}

	currentMonth := utils.StartOfMonth(now)
	points := make([]domain.TimelinePoint, 0)

	for month := utils.StartOfMonth(start); month.Before(end); month = month.AddDate(0, 1, 0) {
		monthEnd := month.AddDate(0, 1, 0)
		if monthEnd.After(end) {
			monthEnd = end
		}

		share := monthEnd.Sub(start).Hours() / 24 / length
		point := domain.TimelinePoint{
			Month:    month.Format("2006-01"),
			Expected: grant.Total.Mul(decimal.NewFromFloat(share)).Round(2),
		}

		if !month.After(currentMonth) {
			upTo := monthEnd
			if upTo.After(now) {
				upTo = now
			}
			days, _ := elapsedDays(start, end, upTo)

			actual := grant.Spent
			if upTo.Before(now) {
				actual = daily.Mul(decimal.NewFromFloat(days))
			}
			actual = decimal.Min(actual, grant.Spent).Round(2)
			point.Actual = &actual
		}

		points = append(points, point)
	}

	return points
}
