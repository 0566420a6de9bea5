package jobs

import (
	"context"
	"log/slog"

	"frontdesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the top of every minute.
const DefaultAuditSchedule = "0 * * * * *"

type capacityAuditor interface {
	Handle(ctx context.Context, query queries.AuditCapacityQuery) (queries.AuditCapacityQueryResponse, error)
}

// CapacityAuditJob periodically recomputes the capacity invariants.
type CapacityAuditJob struct {
	auditor  capacityAuditor
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCapacityAuditJob creates the job. An empty schedule means DefaultAuditSchedule.
func NewCapacityAuditJob(auditor capacityAuditor, schedule string, logger *slog.Logger) *CapacityAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &CapacityAuditJob{
		auditor:  auditor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "capacity_audit_job"),
	}
}

// Start registers the audit with cron. An invalid schedule is returned as an error.
func (j *CapacityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity audit job started", "schedule", j.schedule)
	return nil
}

// RunOnce audits the store and returns the number of faults found.
// A failing audit is logged and reported as -1.
func (j *CapacityAuditJob) RunOnce(ctx context.Context) int {
	report, err := j.auditor.Handle(ctx, queries.NewAuditCapacityQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity audit failed", "error", err)
		return -1
	}

	for _, fault := range report.Faults {
		j.logger.ErrorContext(ctx, "Consistency fault",
			"subject", fault.Subject,
			"limit", fault.Limit,
			"used", fault.Used,
		)
	}

	j.logger.DebugContext(ctx, "Capacity audit finished",
		"tiers", report.TiersChecked,
		"facilities", report.FacilitiesChecked,
		"faults", len(report.Faults),
	)
	return len(report.Faults)
}

// Stop stops scheduling and waits for a running audit to finish.
func (j *CapacityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity audit job stopped")
}
