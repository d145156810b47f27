package jobs

import (
	"context"
	"log/slog"

	"sendit/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// overdueSweepSchedule runs the sweep at the top of every minute.
const overdueSweepSchedule = "0 * * * * *"

// OverdueDeliveryJob periodically sweeps for orders past their estimated
// delivery and pushes them through the notifier.
type OverdueDeliveryJob struct {
	handler commands.NotifyOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a job for overdue delivery notifications.
func NewOverdueDeliveryJob(handler commands.NotifyOverdueOrdersCommandHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery sweep.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewNotifyOverdueOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery sweep.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
