package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
)

// LogSink writes notifications to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

var _ portssvc.NotificationSink = (*LogSink)(nil)

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(ctx context.Context, n domain.Notification) error {
	s.logger.InfoContext(ctx, "Notification",
		slog.Int64("expense_id", n.ExpenseID),
		slog.Int64("user_id", n.UserID),
		slog.String("status", string(n.Status)),
		slog.String("title", n.Title),
		slog.String("message", n.Message))
	return nil
}

// EventEnqueuer captures analytics events. utils.PosthogClientWrapper satisfies it.
type EventEnqueuer interface {
	Enqueue(distinctID string, event string, properties map[string]any) error
}

// PosthogSink forwards notifications as analytics events keyed by the expense owner.
type PosthogSink struct {
	client EventEnqueuer
}

func NewPosthogSink(client EventEnqueuer) *PosthogSink {
	return &PosthogSink{client: client}
}

var _ portssvc.NotificationSink = (*PosthogSink)(nil)

func (s *PosthogSink) Name() string { return "posthog" }

func (s *PosthogSink) Send(_ context.Context, n domain.Notification) error {
	return s.client.Enqueue(strconv.FormatInt(n.UserID, 10), "expense_notification", map[string]any{
		"expense_id": n.ExpenseID,
		"status":     string(n.Status),
		"title":      n.Title,
		"message":    n.Message,
		"created_at": n.CreatedAt,
	})
}
