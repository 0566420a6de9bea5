package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	capacityAuditJob *CapacityAuditJob
}

// NewJobManager wires every scheduled job. An empty auditSchedule means DefaultAuditSchedule.
func NewJobManager(auditor capacityAuditor, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		capacityAuditJob: NewCapacityAuditJob(auditor, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.capacityAuditJob.Stop()
}
