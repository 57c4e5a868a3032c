// Package jobs provides scheduled background tasks for the purchase system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order notifications.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Periodically hands pending notification records
// off for delivery and marks them sent
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "*/10 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch schedule is a cron expression with a seconds field and comes
// from configuration, so deployments can tune how quickly notifications leave
// the system.
package jobs
