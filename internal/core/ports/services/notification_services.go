package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// NotificationDispatcher hands notifications off for delivery without
// blocking the caller. Delivery failures are never reported back.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n domain.Notification)
}

// NotificationSink delivers a single notification to one destination.
type NotificationSink interface {
	Name() string
	Send(ctx context.Context, n domain.Notification) error
}
