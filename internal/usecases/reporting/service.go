package reporting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/integrator/mail"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/metrics"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

const (
	defaultBatchSize     = 100
	defaultMaxConcurrent = 4
)

type Reporter interface {
	CreateReport(ctx context.Context, report *domain.ScheduledReport) (*domain.ScheduledReport, error)
	ListReports(ctx context.Context, tenantID *int64) ([]*domain.ScheduledReport, error)
	GetReport(ctx context.Context, id string, tenantID *int64) (*domain.ScheduledReport, error)
	PauseReport(ctx context.Context, id string, tenantID *int64) error
	ResumeReport(ctx context.Context, id string, tenantID *int64) error
	DeleteReport(ctx context.Context, id string, tenantID *int64) error
	ExecuteReport(ctx context.Context, id string, tenantID *int64) (*domain.ReportResult, error)
	RunReport(ctx context.Context, id string, tenantID *int64) (*domain.ReportResult, int, error)
	ProcessScheduledReports(ctx context.Context, now time.Time) (*RunResult, error)
}

// RunResult describes one pass over the due reports.
type RunResult struct {
	Due     int `json:"due"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type Service struct {
	reports repository.ScheduledReportRepository
	events  repository.EventRepository
	querier querying.Querier
	mailer  mail.Mailer
	cfg     config.Reports
	now     func() time.Time
}

func NewService(
	reports repository.ScheduledReportRepository,
	events repository.EventRepository,
	querier querying.Querier,
	mailer mail.Mailer,
	cfg config.Reports,
) *Service {
	return &Service{
		reports: reports,
		events:  events,
		querier: querier,
		mailer:  mailer,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *Service) CreateReport(ctx context.Context, report *domain.ScheduledReport) (*domain.ScheduledReport, error) {
	if report == nil {
		return nil, NewReportError(ErrInvalidReport, apiErrors.ErrMissingRequiredData, "")
	}

	if report.DateRange == "" {
		report.DateRange = DefaultPreset
	}

	if err := validation.ValidateStruct(report); err != nil {
		return nil, NewReportError(ErrInvalidReport, apiErrors.ErrInvalidRequest, err.Error())
	}

	available := s.querier.GetAvailableMetrics()
	for _, metric := range report.Metrics {
		if _, ok := available[metric]; !ok {
			return nil, NewReportError(ErrInvalidReport, apiErrors.ErrUnknownMetric, metric)
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	now := s.now().UTC()
	report.ID = id
	report.Status = domain.ReportStatusActive
	report.LastSent = nil
	if report.NextSend.IsZero() {
		report.NextSend = now.Add(report.ScheduleType.Interval())
	}

	if err := s.reports.Create(ctx, report); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantField(report.TenantID),
			"operation": "create_report",
		}).WithError(err).Error("Error saving report")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return report, nil
}

func (s *Service) ListReports(ctx context.Context, tenantID *int64) ([]*domain.ScheduledReport, error) {
	reports, err := s.reports.List(ctx, tenantID)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return reports, nil
}

func (s *Service) GetReport(ctx context.Context, id string, tenantID *int64) (*domain.ScheduledReport, error) {
	report, err := s.reports.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if report == nil {
		return nil, NewReportErrorWithID(ErrReportNotFound, apiErrors.ErrNotFound, id, "")
	}

	return report, nil
}

func (s *Service) PauseReport(ctx context.Context, id string, tenantID *int64) error {
	return s.updateStatus(ctx, id, tenantID, domain.ReportStatusPaused, nil)
}

// ResumeReport reactivates a report. A next send that passed while paused is
// moved to one interval from now instead of firing at once.
func (s *Service) ResumeReport(ctx context.Context, id string, tenantID *int64) error {
	report, err := s.GetReport(ctx, id, tenantID)
	if err != nil {
		return err
	}

	var nextSend *time.Time
	now := s.now().UTC()
	if !report.NextSend.After(now) {
		next := now.Add(report.ScheduleType.Interval())
		nextSend = &next
	}

	return s.updateStatus(ctx, id, tenantID, domain.ReportStatusActive, nextSend)
}

func (s *Service) updateStatus(ctx context.Context, id string, tenantID *int64, status domain.ReportStatus, nextSend *time.Time) error {
	updated, err := s.reports.UpdateStatus(ctx, id, tenantID, status, nextSend)
	if err != nil {
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if !updated {
		return NewReportErrorWithID(ErrReportNotFound, apiErrors.ErrNotFound, id, "")
	}

	return nil
}

func (s *Service) DeleteReport(ctx context.Context, id string, tenantID *int64) error {
	deleted, err := s.reports.Delete(ctx, id, tenantID)
	if err != nil {
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if !deleted {
		return NewReportErrorWithID(ErrReportNotFound, apiErrors.ErrNotFound, id, "")
	}

	return nil
}

// ExecuteReport computes a report now without mailing it.
func (s *Service) ExecuteReport(ctx context.Context, id string, tenantID *int64) (*domain.ReportResult, error) {
	report, err := s.GetReport(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, report, s.now())
	if err != nil {
		return nil, NewReportErrorWithID(ErrExecuteReport, executionCode(err), id, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   id,
		"report_type": report.ReportType,
		"tenant_id":   tenantField(report.TenantID),
	}).Info("Report executed")

	return result, nil
}

// RunReport executes and mails a report on demand. The schedule is left as is.
func (s *Service) RunReport(ctx context.Context, id string, tenantID *int64) (*domain.ReportResult, int, error) {
	report, err := s.GetReport(ctx, id, tenantID)
	if err != nil {
		return nil, 0, err
	}

	result, err := s.execute(ctx, report, s.now())
	if err != nil {
		return nil, 0, NewReportErrorWithID(ErrExecuteReport, executionCode(err), id, err.Error())
	}

	sent, err := s.deliver(ctx, report, result)
	if err != nil {
		return result, 0, NewReportErrorWithID(ErrDeliveryFailed, apiErrors.ErrExternalService, id, "")
	}

	return result, sent, nil
}

// ProcessScheduledReports executes and mails every active report due at now.
// Reports run concurrently and independently. A report that fails stays due
// and is retried on the next pass.
func (s *Service) ProcessScheduledReports(ctx context.Context, now time.Time) (*RunResult, error) {
	now = now.UTC()

	due, err := s.reports.ListDue(ctx, now, s.batchSize())
	if err != nil {
		return nil, fmt.Errorf("error listing due reports: %w", err)
	}

	result := &RunResult{Due: len(due)}
	if len(due) == 0 {
		return result, nil
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	semaphore := make(chan struct{}, s.maxConcurrent())

	for _, report := range due {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(report *domain.ScheduledReport) {
			defer wg.Done()
			defer func() { <-semaphore }()

			status := s.processReportSafely(ctx, report, now)
			metrics.ReportsProcessed.WithLabelValues(status).Inc()

			mu.Lock()
			defer mu.Unlock()
			switch status {
			case metrics.StatusSuccess:
				result.Sent++
			case metrics.StatusSkipped:
				result.Skipped++
			default:
				result.Failed++
			}
		}(report)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"due":     result.Due,
		"sent":    result.Sent,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("Scheduled reports processed")

	return result, nil
}

// processReportSafely turns a panic while handling one report into a failure
// of that report only.
func (s *Service) processReportSafely(ctx context.Context, report *domain.ScheduledReport, now time.Time) (status string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"report_id": report.ID,
				"operation": "process_scheduled_report",
				"panic":     fmt.Sprint(r),
			}).Error("Panic while processing scheduled report")
			status = metrics.StatusFailed
		}
	}()

	return s.processReport(ctx, report, now)
}

func (s *Service) processReport(ctx context.Context, report *domain.ScheduledReport, now time.Time) string {
	fields := logrus.Fields{
		"report_id":   report.ID,
		"report_type": report.ReportType,
		"tenant_id":   tenantField(report.TenantID),
		"operation":   "process_scheduled_report",
	}

	result, err := s.execute(ctx, report, now)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Error executing scheduled report")
		return metrics.StatusFailed
	}

	if _, err := s.deliver(ctx, report, result); err != nil {
		logrus.WithFields(fields).WithError(err).Error("Error delivering scheduled report")
		return metrics.StatusFailed
	}

	next := nextSendAfter(report, now)
	advanced, err := s.reports.MarkSent(ctx, report.ID, report.NextSend, now, next)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Error advancing scheduled report")
		return metrics.StatusFailed
	}

	if !advanced {
		logrus.WithFields(fields).Warn("Scheduled report was advanced by another run")
		return metrics.StatusSkipped
	}

	return metrics.StatusSuccess
}

// nextSendAfter keeps the report on its original cadence, one interval after
// the previous due time, unless that is still not in the future.
func nextSendAfter(report *domain.ScheduledReport, now time.Time) time.Time {
	interval := report.ScheduleType.Interval()

	next := report.NextSend.UTC().Add(interval)
	if !next.After(now) {
		next = now.Add(interval)
	}
	return next
}

func executionCode(err error) string {
	var queryErr *querying.QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Code
	}
	return apiErrors.ErrDatabaseOperation
}

func (s *Service) batchSize() uint64 {
	if s.cfg.BatchSize > 0 {
		return uint64(s.cfg.BatchSize)
	}
	return defaultBatchSize
}

func (s *Service) maxConcurrent() int {
	if s.cfg.MaxConcurrentReports > 0 {
		return s.cfg.MaxConcurrentReports
	}
	return defaultMaxConcurrent
}

func tenantField(tenantID *int64) any {
	if tenantID == nil {
		return "platform"
	}
	return *tenantID
}
