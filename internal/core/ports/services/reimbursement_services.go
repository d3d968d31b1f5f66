package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// ReimbursementReaderSvc defines read operations for reimbursement data
type ReimbursementReaderSvc interface {
	// GetReimbursementByID retrieves a specific reimbursement by its ID.
	GetReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error)

	// GetReimbursementsByUser retrieves a page of a user's reimbursements.
	GetReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Reimbursement], error)
}

// ReimbursementWriterSvc defines write operations for reimbursement data
type ReimbursementWriterSvc interface {
	// CreateReimbursement reimburses an APPROVED expense.
	CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest, requestingUserID int64) (*domain.Reimbursement, error)
}

// ReimbursementSvcFacade combines all reimbursement-related service interfaces
type ReimbursementSvcFacade interface {
	ReimbursementReaderSvc
	ReimbursementWriterSvc
}
