package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// NewDefaultJobManager wires the jobs of the orders service. An empty
// statusReportSchedule disables the status report.
func NewDefaultJobManager(
	summaryHandler OrderStatusSummaryHandler,
	statusReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	if statusReportSchedule == "" {
		logger.Info("Order status report job disabled")
		return NewJobManager()
	}
	return NewJobManager(NewOrderStatusReportJob(summaryHandler, statusReportSchedule, logger))
}

// StartAll starts all scheduled jobs.
// If one fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
