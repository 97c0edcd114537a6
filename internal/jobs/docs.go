// Package jobs provides scheduled background tasks for the workshop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the service-order workflow.
//
// # Available Jobs
//
// 1. OpenOrdersReportJob - Runs daily at 06:00 to log how many orders sit in
// each open lifecycle state before the shop opens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listOrdersByStatusHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job is read-only; failures are logged and never interrupt the
// serving path.
package jobs
