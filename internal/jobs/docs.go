// Package jobs provides scheduled background tasks for the rating service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ExchangeRateRefreshJob - Runs hourly to keep the CAD-to-USD rate cache warm
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshExchangeRateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job uses the cron expression "0 0 * * * *", firing at the top
// of every hour to match the one-hour cache lifetime of the rate provider.
// Requests between firings are served from the warm cache.
//
// # Error Handling
//
// The rate provider never fails outright; on fetch problems it retains the
// last known rate or its fallback, so the job only logs at debug level.
package jobs
