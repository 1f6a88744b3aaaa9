package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
)

const DailyRollupJob = "daily-rollup"

// DailyRollupService runs the daily summary rollup on a cron schedule in UTC.
type DailyRollupService struct {
	scheduler  *gocron.Scheduler
	config     config.Rollup
	aggregator aggregating.Aggregator
	state      *jobState
	baseCtx    context.Context
	now        func() time.Time
}

func NewDailyRollupService(aggregator aggregating.Aggregator, cfg config.Rollup) *DailyRollupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":          cfg.CronSchedule,
		"max_concurrent_tenants": cfg.MaxConcurrentTenants,
		"enabled":                cfg.Enabled,
	}).Info("Daily rollup scheduler configuration loaded")

	return &DailyRollupService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     cfg,
		aggregator: aggregator,
		state:      &jobState{name: DailyRollupJob},
		baseCtx:    context.Background(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *DailyRollupService) Name() string {
	return DailyRollupJob
}

func (s *DailyRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Daily rollup disabled by configuration")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Starting daily rollup scheduler")

	return schedule(ctx, s.scheduler, DailyRollupJob, s.config.CronSchedule, func() {
		if _, err := s.RunRollup(ctx); err != nil && !errors.Is(err, ErrJobRunning) {
			logrus.WithError(err).Error("Daily rollup failed")
		}
	})
}

// RunRollup aggregates the day before now for every active tenant.
func (s *DailyRollupService) RunRollup(ctx context.Context) (*aggregating.RunResult, error) {
	started := s.now()
	runID, ok := s.state.begin(started)
	if !ok {
		logrus.Info("Daily rollup already running, skipping")
		return nil, ErrJobRunning
	}

	fields := logrus.Fields{"job": DailyRollupJob, "run_id": runID}
	logrus.WithFields(fields).Info("Daily rollup started")

	result, err := s.aggregator.AggregateDailyMetrics(ctx, started)
	s.state.finish(started, s.now(), err)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"date":      result.Date.Format(time.DateOnly),
		"tenants":   result.Tenants,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
		"duration":  s.now().Sub(started).String(),
	}).Info("Daily rollup completed")

	return result, nil
}

// TriggerManualSync starts a rollup in the background. It returns false when
// a run is already in progress.
func (s *DailyRollupService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Daily rollup already running, ignoring manual trigger")
		return false
	}

	logrus.Info("Starting manual daily rollup")
	go func() {
		if _, err := s.RunRollup(s.baseCtx); err != nil && !errors.Is(err, ErrJobRunning) {
			logrus.WithError(err).Error("Manual daily rollup failed")
		}
	}()
	return true
}

func (s *DailyRollupService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["enabled"] = s.config.Enabled
	status["cron"] = s.config.CronSchedule
	status["max_concurrent_tenants"] = s.config.MaxConcurrentTenants
	return status
}
