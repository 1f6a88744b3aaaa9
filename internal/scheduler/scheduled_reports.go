package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
)

const ScheduledReportsJob = "scheduled-reports"

// ScheduledReportsService sends the reports that are due, hourly by default.
type ScheduledReportsService struct {
	scheduler *gocron.Scheduler
	config    config.Reports
	reporter  reporting.Reporter
	state     *jobState
	baseCtx   context.Context
	now       func() time.Time
}

func NewScheduledReportsService(reporter reporting.Reporter, cfg config.Reports) *ScheduledReportsService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.CronSchedule,
		"batch_size":     cfg.BatchSize,
		"max_concurrent": cfg.MaxConcurrentReports,
		"enabled":        cfg.Enabled,
	}).Info("Scheduled reports configuration loaded")

	return &ScheduledReportsService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		reporter:  reporter,
		state:     &jobState{name: ScheduledReportsJob},
		baseCtx:   context.Background(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *ScheduledReportsService) Name() string {
	return ScheduledReportsJob
}

func (s *ScheduledReportsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Scheduled reports disabled by configuration")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Starting scheduled reports scheduler")

	return schedule(ctx, s.scheduler, ScheduledReportsJob, s.config.CronSchedule, func() {
		if _, err := s.RunReports(ctx); err != nil && !errors.Is(err, ErrJobRunning) {
			logrus.WithError(err).Error("Scheduled reports run failed")
		}
	})
}

// RunReports processes every report due at the current time.
func (s *ScheduledReportsService) RunReports(ctx context.Context) (*reporting.RunResult, error) {
	started := s.now()
	runID, ok := s.state.begin(started)
	if !ok {
		logrus.Info("Scheduled reports already running, skipping")
		return nil, ErrJobRunning
	}

	result, err := s.reporter.ProcessScheduledReports(ctx, started)
	s.state.finish(started, s.now(), err)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"job":      ScheduledReportsJob,
		"run_id":   runID,
		"due":      result.Due,
		"sent":     result.Sent,
		"failed":   result.Failed,
		"skipped":  result.Skipped,
		"duration": s.now().Sub(started).String(),
	}).Info("Scheduled reports run completed")

	return result, nil
}

func (s *ScheduledReportsService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Scheduled reports already running, ignoring manual trigger")
		return false
	}

	logrus.Info("Starting manual scheduled reports run")
	go func() {
		if _, err := s.RunReports(s.baseCtx); err != nil && !errors.Is(err, ErrJobRunning) {
			logrus.WithError(err).Error("Manual scheduled reports run failed")
		}
	}()
	return true
}

func (s *ScheduledReportsService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["enabled"] = s.config.Enabled
	status["cron"] = s.config.CronSchedule
	status["batch_size"] = s.config.BatchSize
	status["max_concurrent"] = s.config.MaxConcurrentReports
	return status
}
