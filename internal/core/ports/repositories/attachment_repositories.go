package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// AttachmentRepository defines persistence operations for expense attachments.
type AttachmentRepository interface {
	// FindAttachmentsByExpenseID lists the attachments of an expense, oldest first.
	FindAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error)

	// AppendAttachment adds an attachment to an existing expense and fills in its ID.
	// It returns apperrors.ErrNotFound if the expense does not exist.
	AppendAttachment(ctx context.Context, attachment *domain.ExpenseAttachment) error
}
