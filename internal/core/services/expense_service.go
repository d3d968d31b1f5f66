package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/platform/metrics"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	notifier    portssvc.NotificationDispatcher
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseNotifier sets the dispatcher used after approve and reject.
func WithExpenseNotifier(n portssvc.NotificationDispatcher) ExpenseServiceOption {
	return func(s *expenseService) {
		s.notifier = n
	}
}

// WithExpenseClock overrides the time source.
func WithExpenseClock(clock func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.clock = clock
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: repo,
		notifier:    noopDispatcher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.Int64("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to get expense %d: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) GetExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	expenses, total, err := s.expenseRepo.FindExpensesByUser(ctx, userID, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses by user", slog.Int64("user_id", userID))
		return domain.Page[domain.Expense]{}, fmt.Errorf("failed to list expenses of user %d: %w", userID, err)
	}
	return domain.NewPage(expenses, page, total), nil
}

func (s *expenseService) GetExpensesByStatus(ctx context.Context, status string, page domain.PageRequest, ascending bool) (domain.Page[domain.Expense], domain.ExpenseStatus, error) {
	resolved, ok := domain.FindStatus(status)
	if !ok {
		resolved = domain.StatusPending
		s.LogDebug(ctx, "Unknown expense status, falling back to PENDING", slog.String("status", status))
	}

	expenses, total, err := s.expenseRepo.FindExpensesByStatus(ctx, resolved, page, ascending)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses by status", slog.String("status", string(resolved)))
		return domain.Page[domain.Expense]{}, resolved, fmt.Errorf("failed to list %s expenses: %w", resolved, err)
	}
	return domain.NewPage(expenses, page, total), resolved, nil
}

func (s *expenseService) GetSummaryByDateRange(ctx context.Context, start, end *time.Time) (*domain.ExpenseSummary, error) {
	var from, to time.Time
	if start == nil || end == nil {
		from, to = domain.CurrentMonthRange(s.Now())
	} else {
		from, to = *start, *end
	}
	if from.After(to) {
		return nil, fmt.Errorf("start date %s is after end date %s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), apperrors.ErrValidation)
	}

	rows, err := s.expenseRepo.SummarizeExpenses(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize expenses")
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	summary := domain.NewExpenseSummary(from, to, rows)
	return &summary, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID int64) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}

	now := s.Now()
	expense := domain.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		ReceiptURL:  req.ReceiptURL,
		Status:      domain.StatusPending,
		Attachments: []domain.ExpenseAttachment{},
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, &expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.Int64("expense_id", expense.ExpenseID), slog.Int64("user_id", userID))
	return &expense, nil
}

func (s *expenseService) SoftDeleteExpenseByID(ctx context.Context, expenseID int64) error {
	if err := s.expenseRepo.MarkExpenseDeleted(ctx, expenseID, s.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		}
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	s.LogInfo(ctx, "Expense soft deleted", slog.Int64("expense_id", expenseID))
	return nil
}

func (s *expenseService) ApproveExpense(ctx context.Context, expenseID int64, approverID int64) (*domain.Expense, error) {
	return s.transition(ctx, expenseID, func(e *domain.Expense, now time.Time) {
		e.Approve(approverID, now)
	})
}

func (s *expenseService) RejectExpense(ctx context.Context, req dto.RejectExpenseRequest) (*domain.Expense, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
	}
	return s.transition(ctx, req.ExpenseID, func(e *domain.Expense, now time.Time) {
		e.Reject(reason, now)
	})
}

// transition applies a PENDING -> terminal change. The stored status is
// re-checked by the update, so of two concurrent transitions only one wins.
func (s *expenseService) transition(ctx context.Context, expenseID int64, apply func(*domain.Expense, time.Time)) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense %d: %w", expenseID, err)
	}

	if !expense.IsPending() {
		s.LogWarn(ctx, "Expense is not pending",
			slog.Int64("expense_id", expenseID),
			slog.String("status", string(expense.Status)))
		return nil, fmt.Errorf("expense %d is %s, only PENDING expenses can change status: %w",
			expenseID, expense.Status, apperrors.ErrInvalidState)
	}

	from := expense.Status
	now := s.Now()
	apply(expense, now)

	if err := s.expenseRepo.UpdateExpenseStatus(ctx, *expense, from); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to update expense status", slog.Int64("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to update expense %d: %w", expenseID, err)
	}

	metrics.ExpenseTransition(string(expense.Status))
	s.LogInfo(ctx, "Expense status changed",
		slog.Int64("expense_id", expenseID),
		slog.String("status", string(expense.Status)))

	s.notifier.Dispatch(ctx, domain.NewNotificationFromExpense(*expense, now))
	return expense, nil
}
