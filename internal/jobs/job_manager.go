// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are managed through JobManager, which
// starts and stops them as a unit.
package jobs

import (
	"fmt"
	"log/slog"

	"sendit/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueDeliveryJob *OverdueDeliveryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	notifyOverdueHandler commands.NotifyOverdueOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueDeliveryJob: NewOverdueDeliveryJob(notifyOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDeliveryJob.Stop()
}
