package cohorting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

const (
	DefaultWeeks = 12
	MaxWeeks     = 52

	verticalFilter = "vertical"
	week           = 7 * 24 * time.Hour
)

type Cohorter interface {
	CreateCohort(ctx context.Context, cohort *domain.CohortDefinition) (*domain.CohortDefinition, error)
	GetCohort(ctx context.Context, id string, tenantID *int64) (*domain.CohortDefinition, error)
	ListCohorts(ctx context.Context, tenantID *int64) ([]*domain.CohortDefinition, error)
	GetCohortMembers(ctx context.Context, cohort *domain.CohortDefinition) ([]int64, error)
	BuildRetentionCurve(ctx context.Context, cohort *domain.CohortDefinition, weeks int) domain.RetentionCurve
	CompareCohorts(ctx context.Context, ids []string, tenantID *int64, weeks int) map[string]domain.CohortComparison
}

type Service struct {
	cohorts repository.CohortDefinitionRepository
	members repository.CohortMemberRepository
	events  repository.EventRepository
	now     func() time.Time
}

func NewService(
	cohorts repository.CohortDefinitionRepository,
	members repository.CohortMemberRepository,
	events repository.EventRepository,
) *Service {
	return &Service{
		cohorts: cohorts,
		members: members,
		events:  events,
		now:     time.Now,
	}
}

func (s *Service) CreateCohort(ctx context.Context, cohort *domain.CohortDefinition) (*domain.CohortDefinition, error) {
	if cohort == nil {
		return nil, NewCohortError(ErrInvalidCohort, apiErrors.ErrMissingRequiredData, "")
	}

	if err := validation.ValidateStruct(cohort); err != nil {
		return nil, NewCohortError(ErrInvalidCohort, apiErrors.ErrInvalidRequest, err.Error())
	}

	if err := validateFilters(cohort); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCohortError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	cohort.ID = id

	if err := s.cohorts.Create(ctx, cohort); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantField(cohort.TenantID),
			"operation": "create_cohort",
		}).WithError(err).Error("Error saving cohort")
		return nil, NewCohortError(ErrSaveCohort, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return cohort, nil
}

func validateFilters(cohort *domain.CohortDefinition) error {
	switch cohort.Type {
	case domain.CohortTypeVertical:
		if cohort.Filters[verticalFilter] == "" {
			return NewCohortError(ErrInvalidCohort, apiErrors.ErrMissingRequiredData, "vertical filter is required")
		}
	case domain.CohortTypeCustom:
		for field := range cohort.Filters {
			if !repository.CohortFilterAllowed(field) {
				return NewCohortError(ErrUnsupportedField, apiErrors.ErrInvalidRequest, field)
			}
		}
	}
	return nil
}

func (s *Service) GetCohort(ctx context.Context, id string, tenantID *int64) (*domain.CohortDefinition, error) {
	cohort, err := s.cohorts.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "error loading cohort")
	}

	if cohort == nil {
		return nil, NewCohortError(ErrCohortNotFound, apiErrors.ErrNotFound, id)
	}

	return cohort, nil
}

func (s *Service) ListCohorts(ctx context.Context, tenantID *int64) ([]*domain.CohortDefinition, error) {
	cohorts, err := s.cohorts.List(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "error listing cohorts")
	}

	return cohorts, nil
}

// GetCohortMembers derives the cohort's user ids. A cohort without a start
// date has no members.
func (s *Service) GetCohortMembers(ctx context.Context, cohort *domain.CohortDefinition) ([]int64, error) {
	if cohort == nil || cohort.DateRangeStart == nil {
		return []int64{}, nil
	}

	start, end := s.window(cohort)

	var (
		members []int64
		err     error
	)

	switch cohort.Type {
	case domain.CohortTypeRegistrationDate:
		members, err = s.members.RegisteredBetween(ctx, cohort.TenantID, start, end)
	case domain.CohortTypeFirstPurchase:
		members, err = s.members.FirstPurchaseBetween(ctx, cohort.TenantID, start, end)
	case domain.CohortTypeVertical:
		members, err = s.members.ActiveInVertical(ctx, cohort.TenantID, cohort.Filters[verticalFilter], start, end)
	case domain.CohortTypeCustom:
		members, err = s.members.MatchingEvents(ctx, cohort.TenantID, cohort.Filters, start, end)
	default:
		return nil, NewCohortError(ErrUnsupportedType, apiErrors.ErrInvalidRequest, string(cohort.Type))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %s cohort members", cohort.Type)
	}

	if members == nil {
		members = []int64{}
	}
	return members, nil
}

// window returns the membership bounds. The end date is inclusive; without
// one the cohort runs up to now.
func (s *Service) window(cohort *domain.CohortDefinition) (time.Time, time.Time) {
	start := utils.StartOfDay(*cohort.DateRangeStart)

	end := s.now().UTC()
	if cohort.DateRangeEnd != nil {
		end = utils.StartOfDay(*cohort.DateRangeEnd).AddDate(0, 0, 1)
	}
	return start, end
}

// BuildRetentionCurve returns, for weeks 0..weeks-1, the percentage of members
// active in that week after the cohort start. Week 0 is 100 for a non-empty
// cohort; weeks that have not started yet are 0. Any failure gives an all-zero
// curve.
func (s *Service) BuildRetentionCurve(ctx context.Context, cohort *domain.CohortDefinition, weeks int) domain.RetentionCurve {
	weeks = clampWeeks(weeks)
	curve := make(domain.RetentionCurve, weeks)

	members, err := s.GetCohortMembers(ctx, cohort)
	if err != nil {
		logFailure(cohort, err, "Error loading cohort members")
		return curve
	}

	return s.fillCurve(ctx, cohort, members, curve)
}

func (s *Service) fillCurve(ctx context.Context, cohort *domain.CohortDefinition, members []int64, curve domain.RetentionCurve) domain.RetentionCurve {
	if len(members) == 0 {
		return curve
	}

	curve[0] = 100
	start := utils.StartOfDay(*cohort.DateRangeStart)
	now := s.now().UTC()
	total := float64(len(members))

	for k := 1; k < len(curve); k++ {
		weekStart := start.Add(time.Duration(k) * week)
		if weekStart.After(now) {
			break
		}

		active, err := s.events.CountActiveUsers(ctx, cohort.TenantID, members, weekStart, weekStart.Add(week))
		if err != nil {
			logFailure(cohort, err, "Error counting retained members")
			return make(domain.RetentionCurve, len(curve))
		}

		curve[k] = utils.RoundWithTwoDecimalPlace(float64(active) / total * 100)
	}

	return curve
}

// CompareCohorts builds the curve of each cohort for side-by-side charting.
// Unknown ids are skipped.
func (s *Service) CompareCohorts(ctx context.Context, ids []string, tenantID *int64, weeks int) map[string]domain.CohortComparison {
	weeks = clampWeeks(weeks)
	comparison := make(map[string]domain.CohortComparison, len(ids))

	for _, id := range ids {
		if _, seen := comparison[id]; seen {
			continue
		}

		cohort, err := s.GetCohort(ctx, id, tenantID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"cohort_id": id,
				"tenant_id": tenantField(tenantID),
				"operation": "compare_cohorts",
			}).WithError(err).Warn("Skipping cohort in comparison")
			continue
		}

		curve := make(domain.RetentionCurve, weeks)
		members, err := s.GetCohortMembers(ctx, cohort)
		if err != nil {
			logFailure(cohort, err, "Error loading cohort members")
			members = []int64{}
		} else {
			curve = s.fillCurve(ctx, cohort, members, curve)
		}

		comparison[id] = domain.CohortComparison{
			Name:         cohort.Name,
			Type:         cohort.Type,
			MembersCount: len(members),
			Retention:    curve,
		}
	}

	return comparison
}

func clampWeeks(weeks int) int {
	if weeks <= 0 {
		return DefaultWeeks
	}
	if weeks > MaxWeeks {
		return MaxWeeks
	}
	return weeks
}

func logFailure(cohort *domain.CohortDefinition, err error, msg string) {
	fields := logrus.Fields{"operation": "retention_curve"}
	if cohort != nil {
		fields["cohort_id"] = cohort.ID
		fields["tenant_id"] = tenantField(cohort.TenantID)
	}
	logrus.WithFields(fields).WithError(err).Error(msg)
}

func tenantField(tenantID *int64) any {
	if tenantID == nil {
		return "platform"
	}
	return *tenantID
}
