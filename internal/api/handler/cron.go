package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/log"
)

const CronJobTypeAll = "all"

// CronJob is a scheduled job that can also be started by hand.
type CronJob interface {
	Name() string
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunCronJob starts one job, or every job for type "all", in the background.
func RunCronJob(jobs []CronJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		selected := make([]CronJob, 0, len(jobs))
		for _, job := range jobs {
			if cronType == CronJobTypeAll || job.Name() == cronType {
				selected = append(selected, job)
			}
		}

		if len(selected) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "unknown cron job type", cronType)
			return
		}

		started := make([]string, 0, len(selected))
		running := make([]string, 0)
		for _, job := range selected {
			if job.TriggerManualSync() {
				started = append(started, job.Name())
			} else {
				running = append(running, job.Name())
			}
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":            cronType,
			"started":         started,
			"already_running": running,
		}).Info("cron jobs triggered manually")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"started":         started,
			"already_running": running,
		})
	})
}

func GetCronStatus(jobs []CronJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for _, job := range jobs {
			status[job.Name()] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
