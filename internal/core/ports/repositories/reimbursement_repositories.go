package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// ReimbursementReader defines read operations for reimbursement data
type ReimbursementReader interface {
	// FindReimbursementByID retrieves a reimbursement with its expense.
	FindReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error)

	// FindReimbursementsByUser retrieves a page of a user's reimbursements and the total count.
	FindReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Reimbursement, int64, error)
}

// ReimbursementWriter defines write operations for reimbursement data
type ReimbursementWriter interface {
	// SaveReimbursement inserts a reimbursement and fills in its generated ID.
	// It returns apperrors.ErrDuplicate if the expense was already reimbursed.
	SaveReimbursement(ctx context.Context, reimbursement *domain.Reimbursement) error
}

// ReimbursementRepositoryFacade combines all reimbursement-related repository interfaces
type ReimbursementRepositoryFacade interface {
	ReimbursementReader
	ReimbursementWriter
}
