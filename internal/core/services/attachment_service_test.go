package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddAttachment_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockAttachmentRepository)
	repo.On("AppendAttachment", ctx, mock.MatchedBy(func(a *domain.ExpenseAttachment) bool {
		return a.ExpenseID == 7 && a.FileURL == "https://files.example.com/a.pdf"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.ExpenseAttachment).AttachmentID = 3
	}).Return(nil).Once()

	svc := services.NewAttachmentService(repo, func() time.Time { return now })
	attachment, err := svc.AddAttachment(ctx, 7, " https://files.example.com/a.pdf ")

	require.NoError(t, err)
	assert.Equal(t, int64(3), attachment.AttachmentID)
	assert.Equal(t, now, attachment.CreatedAt)
	repo.AssertExpectations(t)
}

func TestAddAttachment_MissingExpenseIsPreconditionFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAttachmentRepository)
	repo.On("AppendAttachment", ctx, mock.AnythingOfType("*domain.ExpenseAttachment")).Return(apperrors.ErrNotFound).Once()

	svc := services.NewAttachmentService(repo, time.Now)
	attachment, err := svc.AddAttachment(ctx, 99, "https://files.example.com/a.pdf")

	assert.Nil(t, attachment)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
}

func TestAddAttachment_BlankURL(t *testing.T) {
	repo := new(MockAttachmentRepository)
	svc := services.NewAttachmentService(repo, time.Now)

	_, err := svc.AddAttachment(context.Background(), 7, "  ")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "AppendAttachment", mock.Anything, mock.Anything)
}

func TestGetAttachmentsByExpenseID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAttachmentRepository)
	repo.On("FindAttachmentsByExpenseID", ctx, int64(7)).Return([]domain.ExpenseAttachment{{AttachmentID: 1, ExpenseID: 7}}, nil).Once()
	repo.On("FindAttachmentsByExpenseID", ctx, int64(8)).Return(nil, apperrors.ErrNotFound).Once()

	svc := services.NewAttachmentService(repo, time.Now)

	list, err := svc.GetAttachmentsByExpenseID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetAttachmentsByExpenseID(ctx, 8)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
