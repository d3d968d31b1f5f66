package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

type reimbursementService struct {
	BaseService
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade
	expenseRepo       portsrepo.ExpenseReader
	notifier          portssvc.NotificationDispatcher
}

// ReimbursementServiceOption is a functional option for configuring the reimbursement service
type ReimbursementServiceOption func(*reimbursementService)

// WithReimbursementNotifier sets the dispatcher used after a reimbursement is created.
func WithReimbursementNotifier(n portssvc.NotificationDispatcher) ReimbursementServiceOption {
	return func(s *reimbursementService) {
		s.notifier = n
	}
}

// WithReimbursementClock overrides the time source.
func WithReimbursementClock(clock func() time.Time) ReimbursementServiceOption {
	return func(s *reimbursementService) {
		s.clock = clock
	}
}

// NewReimbursementService creates a new reimbursement service.
func NewReimbursementService(repo portsrepo.ReimbursementRepositoryFacade, expenseRepo portsrepo.ExpenseReader, options ...ReimbursementServiceOption) portssvc.ReimbursementSvcFacade {
	svc := &reimbursementService{
		reimbursementRepo: repo,
		expenseRepo:       expenseRepo,
		notifier:          noopDispatcher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReimbursementSvcFacade = (*reimbursementService)(nil)

func (s *reimbursementService) GetReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error) {
	r, err := s.reimbursementRepo.FindReimbursementByID(ctx, reimbursementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reimbursement %d: %w", reimbursementID, err)
	}
	return r, nil
}

func (s *reimbursementService) GetReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Reimbursement], error) {
	items, total, err := s.reimbursementRepo.FindReimbursementsByUser(ctx, userID, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reimbursements", slog.Int64("user_id", userID))
		return domain.Page[domain.Reimbursement]{}, fmt.Errorf("failed to list reimbursements of user %d: %w", userID, err)
	}
	return domain.NewPage(items, page, total), nil
}

func (s *reimbursementService) CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest, requestingUserID int64) (*domain.Reimbursement, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, req.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense %d: %w", req.ExpenseID, err)
	}

	if expense.Status != domain.StatusApproved {
		s.LogWarn(ctx, "Reimbursement requested for non-approved expense",
			slog.Int64("expense_id", expense.ExpenseID),
			slog.String("status", string(expense.Status)))
		return nil, fmt.Errorf("expense %d is %s, only APPROVED expenses can be reimbursed: %w",
			expense.ExpenseID, expense.Status, apperrors.ErrInvalidState)
	}

	now := s.Now()
	reimbursement := domain.Reimbursement{
		ExpenseID:   expense.ExpenseID,
		UserID:      expense.UserID,
		Amount:      expense.Amount,
		ProcessedBy: requestingUserID,
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   now,
		Expense:     expense,
	}

	if err := s.reimbursementRepo.SaveReimbursement(ctx, &reimbursement); err != nil {
		s.LogError(ctx, err, "Failed to save reimbursement", slog.Int64("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to reimburse expense %d: %w", expense.ExpenseID, err)
	}

	s.LogInfo(ctx, "Expense reimbursed",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.Int64("reimbursement_id", reimbursement.ReimbursementID),
		slog.Int64("processed_by", requestingUserID))

	s.notifier.Dispatch(ctx, domain.NewReimbursementNotification(reimbursement, *expense, now))
	return &reimbursement, nil
}
