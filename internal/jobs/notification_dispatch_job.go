package jobs

import (
	"context"
	"log/slog"

	"purchase/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob periodically hands pending notification records off
// for delivery. The order save flow only creates the records; this job is
// what moves them to sent.
type NotificationDispatchJob struct {
	handler  commands.DispatchNotificationsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationDispatchJob creates a job that dispatches pending
// notifications on the given cron schedule (with a seconds field).
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job on its schedule.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
