package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
)

type attachmentService struct {
	BaseService
	attachmentRepo portsrepo.AttachmentRepository
}

// NewAttachmentService creates a new attachment service.
func NewAttachmentService(repo portsrepo.AttachmentRepository, clock func() time.Time) portssvc.AttachmentSvc {
	return &attachmentService{
		BaseService:    BaseService{clock: clock},
		attachmentRepo: repo,
	}
}

var _ portssvc.AttachmentSvc = (*attachmentService)(nil)

func (s *attachmentService) GetAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error) {
	attachments, err := s.attachmentRepo.FindAttachmentsByExpenseID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments of expense %d: %w", expenseID, err)
	}
	return attachments, nil
}

func (s *attachmentService) AddAttachment(ctx context.Context, expenseID int64, fileURL string) (*domain.ExpenseAttachment, error) {
	fileURL = strings.TrimSpace(fileURL)
	if fileURL == "" {
		return nil, fmt.Errorf("file URL is required: %w", apperrors.ErrValidation)
	}

	attachment := domain.ExpenseAttachment{
		ExpenseID: expenseID,
		FileURL:   fileURL,
		CreatedAt: s.Now(),
	}

	if err := s.attachmentRepo.AppendAttachment(ctx, &attachment); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Attachment added to missing expense", slog.Int64("expense_id", expenseID))
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "Expense not found",
				fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrPreconditionFailed))
		}
		s.LogError(ctx, err, "Failed to add attachment", slog.Int64("expense_id", expenseID))
		return nil, fmt.Errorf("failed to add attachment to expense %d: %w", expenseID, err)
	}

	s.LogInfo(ctx, "Attachment added",
		slog.Int64("expense_id", expenseID),
		slog.Int64("attachment_id", attachment.AttachmentID))
	return &attachment, nil
}
