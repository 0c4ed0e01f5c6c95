package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/notifications"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the in-memory notification queue.
// Runs every second and sends everything queued since the previous tick.
type NotificationDispatchJob struct {
	queue  *notifications.Queue
	sender notifications.Sender
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a job that delivers queued notifications.
func NewNotificationDispatchJob(
	queue *notifications.Queue,
	sender notifications.Sender,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		sender: sender,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		for {
			notification, ok := j.queue.TryDequeue()
			if !ok {
				return
			}

			if err := j.sender.Send(ctx, notification); err != nil {
				j.logger.ErrorContext(ctx, "Notification delivery failed",
					"recipient_id", notification.RecipientID.String(),
					"subject", notification.Subject,
					"error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
