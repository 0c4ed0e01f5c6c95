package notifications

import (
	"context"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DefaultQueueCapacity bounds the in-memory notification backlog.
const DefaultQueueCapacity = 1024

// Queue is a bounded in-memory notification buffer. It implements
// ports.Notifier for producers; the dispatch job consumes it with TryDequeue.
// Safe for concurrent use.
type Queue struct {
	messages chan ports.Notification
}

// NewQueue creates a Queue with the given capacity, or
// DefaultQueueCapacity if capacity is not positive.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		messages: make(chan ports.Notification, capacity),
	}
}

// Notify enqueues a notification for asynchronous delivery.
// A full queue rejects the notification instead of blocking the caller.
func (q *Queue) Notify(_ context.Context, notification ports.Notification) error {
	select {
	case q.messages <- notification:
		return nil
	default:
		return errs.NewOperationNotAllowedError("notification queue is full")
	}
}

// TryDequeue pops the oldest notification, reporting false when the queue
// is empty.
func (q *Queue) TryDequeue() (ports.Notification, bool) {
	select {
	case notification := <-q.messages:
		return notification, true
	default:
		return ports.Notification{}, false
	}
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	return len(q.messages)
}
