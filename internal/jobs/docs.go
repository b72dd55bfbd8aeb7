// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are cron based (github.com/robfig/cron/v3) and log through log/slog.
//
// # Available Jobs
//
//  1. OrderStatusReportJob - logs the number of non-deleted orders per status
//     on a configurable schedule (DefaultStatusReportSchedule unless set)
//
// # Usage
//
//	jobManager := jobs.NewDefaultJobManager(summaryHandler, cfg.StatusReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing report is logged and retried on the next tick. A job that fails
// to start stops the jobs already running.
package jobs
