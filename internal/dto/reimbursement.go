package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReimbursementRequest defines the data needed to reimburse an approved expense.
type CreateReimbursementRequest struct {
	ExpenseID int64  `json:"expenseID" binding:"required,gt=0"`
	Notes     string `json:"notes" binding:"max=500"`
}

// ReimbursementResponse defines the data returned for a reimbursement.
type ReimbursementResponse struct {
	ReimbursementID int64            `json:"reimbursementID"`
	ExpenseID       int64            `json:"expenseID"`
	UserID          int64            `json:"userID"`
	Amount          decimal.Decimal  `json:"amount"`
	ProcessedBy     int64            `json:"processedBy"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
	Expense         *ExpenseResponse `json:"expense,omitempty"`
}

// ToReimbursementResponse converts a domain.Reimbursement to its DTO.
func ToReimbursementResponse(r domain.Reimbursement) ReimbursementResponse {
	resp := ReimbursementResponse{
		ReimbursementID: r.ReimbursementID,
		ExpenseID:       r.ExpenseID,
		UserID:          r.UserID,
		Amount:          r.Amount,
		ProcessedBy:     r.ProcessedBy,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
	if r.Expense != nil {
		e := ToExpenseResponse(*r.Expense)
		resp.Expense = &e
	}
	return resp
}

// ToReimbursementPageResponse converts a page of domain reimbursements.
func ToReimbursementPageResponse(p domain.Page[domain.Reimbursement]) PageResponse[ReimbursementResponse] {
	return toPageResponse(domain.MapPage(p, ToReimbursementResponse))
}
