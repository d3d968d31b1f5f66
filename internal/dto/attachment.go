package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// AddAttachmentRequest defines the data needed to attach a file to an expense.
type AddAttachmentRequest struct {
	FileURL string `json:"fileURL" binding:"required,url"`
}

// AttachmentResponse defines the data returned for an attachment.
type AttachmentResponse struct {
	AttachmentID int64     `json:"attachmentID"`
	ExpenseID    int64     `json:"expenseID"`
	FileURL      string    `json:"fileURL"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToAttachmentResponse converts a domain.ExpenseAttachment to its DTO.
func ToAttachmentResponse(a domain.ExpenseAttachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID: a.AttachmentID,
		ExpenseID:    a.ExpenseID,
		FileURL:      a.FileURL,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAttachmentResponses converts a slice; nil becomes an empty slice.
func ToAttachmentResponses(as []domain.ExpenseAttachment) []AttachmentResponse {
	out := make([]AttachmentResponse, len(as))
	for i, a := range as {
		out[i] = ToAttachmentResponse(a)
	}
	return out
}
