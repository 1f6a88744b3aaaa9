package funneling

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

type Funneler interface {
	CreateFunnel(ctx context.Context, funnel *domain.FunnelDefinition) (*domain.FunnelDefinition, error)
	GetFunnel(ctx context.Context, id string, tenantID *int64) (*domain.FunnelDefinition, error)
	ListFunnels(ctx context.Context, tenantID *int64) ([]*domain.FunnelDefinition, error)
	ValidateRange(start, end time.Time) error
	CalculateFunnel(ctx context.Context, funnel *domain.FunnelDefinition, start, end time.Time) []domain.FunnelStepResult
	GetFunnelSummary(ctx context.Context, funnel *domain.FunnelDefinition, start, end time.Time) *domain.FunnelSummary
}

type Service struct {
	funnels      repository.FunnelDefinitionRepository
	events       repository.EventRepository
	maxRangeDays int
}

func NewService(funnels repository.FunnelDefinitionRepository, events repository.EventRepository, cfg config.Query) *Service {
	return &Service{
		funnels:      funnels,
		events:       events,
		maxRangeDays: cfg.MaxRangeDays,
	}
}

func (s *Service) CreateFunnel(ctx context.Context, funnel *domain.FunnelDefinition) (*domain.FunnelDefinition, error) {
	if funnel == nil || funnel.TenantID <= 0 {
		return nil, NewFunnelError(ErrInvalidFunnel, apiErrors.ErrMissingRequiredData, "tenant is required")
	}

	if err := validation.ValidateStruct(funnel); err != nil {
		return nil, NewFunnelError(ErrInvalidFunnel, apiErrors.ErrInvalidRequest, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewFunnelError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	funnel.ID = id

	if err := s.funnels.Create(ctx, funnel); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": funnel.TenantID,
			"operation": "create_funnel",
		}).WithError(err).Error("Error saving funnel")
		return nil, NewFunnelError(ErrSaveFunnel, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return funnel, nil
}

func (s *Service) GetFunnel(ctx context.Context, id string, tenantID *int64) (*domain.FunnelDefinition, error) {
	funnel, err := s.funnels.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "error loading funnel")
	}

	if funnel == nil {
		return nil, NewFunnelError(ErrFunnelNotFound, apiErrors.ErrNotFound, id)
	}

	return funnel, nil
}

func (s *Service) ListFunnels(ctx context.Context, tenantID *int64) ([]*domain.FunnelDefinition, error) {
	funnels, err := s.funnels.List(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "error listing funnels")
	}

	return funnels, nil
}

// ValidateRange rejects an empty period and one longer than the configured
// maximum span.
func (s *Service) ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return NewFunnelError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange,
			fmt.Sprintf("start %s, end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	if s.maxRangeDays > 0 && end.Sub(start) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return NewFunnelError(ErrDateRangeTooLarge, apiErrors.ErrInvalidDateRange,
			fmt.Sprintf("maximum is %d days", s.maxRangeDays))
	}

	return nil
}

// CalculateFunnel computes the step counts of funnel over [start, end) for the
// funnel's tenant. An invalid period or a store failure is logged and yields
// no steps.
func (s *Service) CalculateFunnel(ctx context.Context, funnel *domain.FunnelDefinition, start, end time.Time) []domain.FunnelStepResult {
	if funnel == nil || len(funnel.Steps) == 0 {
		return []domain.FunnelStepResult{}
	}

	fields := logrus.Fields{
		"tenant_id": funnel.TenantID,
		"funnel_id": funnel.ID,
		"operation": "calculate_funnel",
	}

	if err := s.ValidateRange(start, end); err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Funnel requested with an invalid date range")
		return []domain.FunnelStepResult{}
	}

	if funnel.ConversionWindowHours <= 0 {
		sets, err := s.loadSessionSets(ctx, funnel, start, end)
		if err != nil {
			logrus.WithFields(fields).WithError(err).Error("Error loading funnel step sessions")
			return []domain.FunnelStepResult{}
		}
		return stepResults(funnel.Steps, intersectionDepths(sets))
	}

	times := make([]stepTimes, len(funnel.Steps))
	for i, step := range funnel.Steps {
		sessions, err := s.events.GetSessionEventTimes(ctx, funnel.TenantID, step.EventType, start, end)
		if err != nil {
			logrus.WithFields(fields).WithField("event_type", step.EventType).WithError(err).Error("Error loading funnel step sessions")
			return []domain.FunnelStepResult{}
		}
		times[i] = sessions

		// No session can go past an empty step.
		if len(sessions) == 0 {
			for j := i + 1; j < len(times); j++ {
				times[j] = stepTimes{}
			}
			break
		}
	}

	window := time.Duration(funnel.ConversionWindowHours) * time.Hour
	return computeFunnel(funnel.Steps, times, window)
}

// loadSessionSets reads only which sessions fired each step, stopping at the
// first empty step.
func (s *Service) loadSessionSets(ctx context.Context, funnel *domain.FunnelDefinition, start, end time.Time) ([]sessionSet, error) {
	sets := make([]sessionSet, len(funnel.Steps))
	for i, step := range funnel.Steps {
		sessions, err := s.events.GetSessionsWithEvent(ctx, funnel.TenantID, step.EventType, start, end)
		if err != nil {
			return nil, errors.Wrapf(err, "error loading sessions for %s", step.EventType)
		}
		sets[i] = sessions

		if len(sessions) == 0 {
			for j := i + 1; j < len(sets); j++ {
				sets[j] = sessionSet{}
			}
			break
		}
	}
	return sets, nil
}

func (s *Service) GetFunnelSummary(ctx context.Context, funnel *domain.FunnelDefinition, start, end time.Time) *domain.FunnelSummary {
	results := s.CalculateFunnel(ctx, funnel, start, end)
	entered, converted, rate := summarize(results)

	summary := &domain.FunnelSummary{
		Steps:                 results,
		TotalEntered:          entered,
		TotalConverted:        converted,
		OverallConversionRate: rate,
	}
	if funnel != nil {
		summary.FunnelID = funnel.ID
		summary.Name = funnel.Name
	}

	return summary
}
