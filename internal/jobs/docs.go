// Package jobs provides scheduled background tasks for the dispatch service, built on
// github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
//   - PoolMonitorJob logs how many jobs sit in each active status and re-announces
//     AVAILABLE jobs that have waited longer than the configured threshold.
//
// # Usage
//
//	monitor := jobs.NewPoolMonitorJob(listPoolHandler, notifier, kernel.SystemClock,
//		cfg.PoolMonitorSchedule, cfg.StaleAfter, logger)
//	manager := jobs.NewJobManager(monitor)
//
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Notification failures for
// single jobs are logged at Warn and do not fail the run.
package jobs
