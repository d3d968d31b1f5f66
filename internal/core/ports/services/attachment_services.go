package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// AttachmentSvc defines operations on expense attachments
type AttachmentSvc interface {
	// GetAttachmentsByExpenseID lists the attachments of an expense.
	GetAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error)

	// AddAttachment appends a file to an existing expense. A missing expense is
	// an unrecoverable precondition failure for the request.
	AddAttachment(ctx context.Context, expenseID int64, fileURL string) (*domain.ExpenseAttachment, error)
}
