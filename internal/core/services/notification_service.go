package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/SscSPs/expense_tracker_app/internal/platform/metrics"
)

// NotificationService queues notifications on a bounded channel and delivers
// them to every sink from a single worker goroutine. A full queue drops the
// notification; a failing sink is logged and skipped.
type NotificationService struct {
	queue   chan domain.Notification
	sinks   []portssvc.NotificationSink
	timeout time.Duration
	logger  *slog.Logger

	startOnce sync.Once
	// mu orders enqueues against Stop: once stopped is set no send can land
	// in the queue after the worker's final drain.
	mu      sync.RWMutex
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewNotificationService creates a dispatcher with the given queue capacity
// and per-sink delivery timeout.
func NewNotificationService(queueSize int, timeout time.Duration, logger *slog.Logger, sinks ...portssvc.NotificationSink) *NotificationService {
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		queue:   make(chan domain.Notification, queueSize),
		sinks:   sinks,
		timeout: timeout,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

var _ portssvc.NotificationDispatcher = (*NotificationService)(nil)

// Dispatch enqueues n without blocking.
func (s *NotificationService) Dispatch(ctx context.Context, n domain.Notification) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification dispatcher stopped, dropping notification",
			slog.Int64("expense_id", n.ExpenseID))
		metrics.NotificationDropped()
		return
	}

	select {
	case s.queue <- n:
		metrics.NotificationEnqueued()
		metrics.SetNotificationQueueDepth(len(s.queue))
	default:
		middleware.GetLoggerFromCtx(ctx).Warn("Notification queue full, dropping notification",
			slog.Int64("expense_id", n.ExpenseID),
			slog.String("status", string(n.Status)),
			slog.Int("capacity", cap(s.queue)))
		metrics.NotificationDropped()
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (s *NotificationService) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.run(ctx)
	})
}

// Stop asks the worker to deliver what is queued and exit, waiting until it
// does or ctx is done.
func (s *NotificationService) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stop)
	}
	s.mu.Unlock()
	s.Start(ctx) // a never-started worker still drains the queue

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		s.logger.Warn("Notification queue not drained before shutdown deadline", slog.Int("pending", len(s.queue)))
		return ctx.Err()
	}
}

func (s *NotificationService) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case n := <-s.queue:
			s.deliver(ctx, n)
		case <-s.stop:
			s.drain(context.WithoutCancel(ctx))
			return
		case <-ctx.Done():
			s.drain(context.WithoutCancel(ctx))
			return
		}
	}
}

func (s *NotificationService) drain(ctx context.Context) {
	for {
		select {
		case n := <-s.queue:
			s.deliver(ctx, n)
		default:
			return
		}
	}
}

func (s *NotificationService) deliver(ctx context.Context, n domain.Notification) {
	metrics.SetNotificationQueueDepth(len(s.queue))
	for _, sink := range s.sinks {
		sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := sink.Send(sendCtx, n)
		cancel()
		if err != nil {
			s.logger.Error("Notification delivery failed",
				slog.String("sink", sink.Name()),
				slog.Int64("expense_id", n.ExpenseID),
				slog.String("error", err.Error()))
			metrics.NotificationFailed(sink.Name())
		}
	}
}

// noopDispatcher is used when a service is built without a dispatcher.
type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, domain.Notification) {}
