package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notification is an out-of-band message for an account holder, such as a
// document rejection notice.
type Notification struct {
	RecipientID kernel.UUID
	Subject     string
	Body        string
}

// Notifier accepts notifications for delivery. Implementations may deliver
// asynchronously; a nil error means the notification was accepted, not that
// it has reached the recipient.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
