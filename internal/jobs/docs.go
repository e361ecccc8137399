// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SalesReportJob - writes the sales report file on the configured schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(generateSalesReportHandler, "0 0 2 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six field cron syntax with seconds. An empty schedule disables
// the job. A run that is still in progress when the next tick fires causes that tick
// to be skipped.
//
// # Error Handling
//
// - Failed runs are logged and retried on the next tick
// - An unparsable schedule makes StartAll fail
package jobs
