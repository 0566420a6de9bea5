// Package jobs provides scheduled background tasks for the front desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(auditHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// CapacityAuditJob re-checks the capacity invariants on a schedule and logs
// every consistency fault at error level. It never changes stored state.
package jobs
