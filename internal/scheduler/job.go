package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/pkg/metrics"
)

var ErrJobRunning = errors.New("job is already running")

// jobState guards a job against overlapping runs and keeps what GetStatus reports.
type jobState struct {
	name            string
	mutex           sync.Mutex
	running         bool
	runID           string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastStatus      string
	lastError       string
}

// begin marks the job as running. It returns false when a run is in progress.
func (j *jobState) begin(now time.Time) (string, bool) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if j.running {
		return "", false
	}

	j.running = true
	j.runID = uuid.NewString()
	j.lastStartedAt = now
	return j.runID, true
}

func (j *jobState) finish(started, now time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusFailed
	}

	metrics.JobRuns.WithLabelValues(j.name, status).Inc()
	metrics.JobDuration.WithLabelValues(j.name).Observe(now.Sub(started).Seconds())

	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.running = false
	j.lastCompletedAt = now
	j.lastStatus = status
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}
}

func (j *jobState) isRunning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.running
}

func (j *jobState) snapshot() map[string]any {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	return map[string]any{
		"running":           j.running,
		"last_run_id":       j.runID,
		"last_started_at":   j.lastStartedAt,
		"last_completed_at": j.lastCompletedAt,
		"last_status":       j.lastStatus,
		"last_error":        j.lastError,
	}
}

// schedule registers task on cron and stops the scheduler when ctx is done.
func schedule(ctx context.Context, scheduler *gocron.Scheduler, name, cron string, task func()) error {
	if _, err := scheduler.Cron(cron).Do(task); err != nil {
		return fmt.Errorf("error scheduling %s: %w", name, err)
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", name).Info("Stopping scheduler")
		scheduler.Stop()
	}()

	return nil
}
