package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the layout of calendar dates in requests and responses.
const DateLayout = "2006-01-02"

// CreateExpenseRequest defines the data needed to submit a new expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal        `json:"amount"` // must be positive, checked by the service
	Category    domain.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Description string                 `json:"description" binding:"required,max=500"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	ReceiptURL  string                 `json:"receiptURL" binding:"required,url"`
}

// RejectExpenseRequest carries the expense to reject and the mandatory reason.
type RejectExpenseRequest struct {
	ExpenseID int64  `json:"-"` // Taken from the path
	Reason    string `json:"reason" binding:"required,min=3,max=500"`
}

// ExpensesByStatusParams are the query parameters of the by-status listing.
type ExpensesByStatusParams struct {
	PageParams
	Status      string `form:"status"`
	IsSortedASC bool   `form:"isSortedASC,default=true"`
}

// SummaryParams are the optional bounds of a summary request (RFC3339 or YYYY-MM-DD).
type SummaryParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID       int64                `json:"expenseID"`
	UserID          int64                `json:"userID"`
	Amount          decimal.Decimal      `json:"amount"`
	Category        string               `json:"category"`
	Description     string               `json:"description"`
	Date            string               `json:"date"`
	ReceiptURL      string               `json:"receiptURL"`
	Status          string               `json:"status"`
	ApprovedBy      *int64               `json:"approvedBy,omitempty"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	Attachments     []AttachmentResponse `json:"attachments"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// SummaryBucketResponse is one bucket of an expense summary.
type SummaryBucketResponse struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseSummaryResponse defines the data returned for a summary request.
type ExpenseSummaryResponse struct {
	StartDate    time.Time                        `json:"startDate"`
	EndDate      time.Time                        `json:"endDate"`
	DateRange    string                           `json:"dateRange"`
	TotalAmount  decimal.Decimal                  `json:"totalAmount"`
	ExpenseCount int64                            `json:"expenseCount"`
	ByStatus     map[string]SummaryBucketResponse `json:"byStatus"`
	ByCategory   map[string]SummaryBucketResponse `json:"byCategory"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		UserID:          e.UserID,
		Amount:          e.Amount,
		Category:        string(e.Category),
		Description:     e.Description,
		Date:            e.Date.Format(DateLayout),
		ReceiptURL:      e.ReceiptURL,
		Status:          string(e.Status),
		ApprovedBy:      e.ApprovedBy,
		RejectionReason: e.RejectionReason,
		Attachments:     ToAttachmentResponses(e.Attachments),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToExpensePageResponse converts a page of domain expenses.
func ToExpensePageResponse(p domain.Page[domain.Expense]) PageResponse[ExpenseResponse] {
	return toPageResponse(domain.MapPage(p, ToExpenseResponse))
}

// ToExpenseSummaryResponse converts a domain summary to its DTO.
func ToExpenseSummaryResponse(s domain.ExpenseSummary) ExpenseSummaryResponse {
	resp := ExpenseSummaryResponse{
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		DateRange:    s.SummaryDateRange(),
		TotalAmount:  s.TotalAmount,
		ExpenseCount: s.ExpenseCount,
		ByStatus:     make(map[string]SummaryBucketResponse, len(s.ByStatus)),
		ByCategory:   make(map[string]SummaryBucketResponse, len(s.ByCategory)),
	}
	for status, b := range s.ByStatus {
		resp.ByStatus[string(status)] = SummaryBucketResponse{Count: b.Count, Amount: b.Amount}
	}
	for category, b := range s.ByCategory {
		resp.ByCategory[string(category)] = SummaryBucketResponse{Count: b.Count, Amount: b.Amount}
	}
	return resp
}

func toPageResponse[T any](p domain.Page[T]) PageResponse[T] {
	return PageResponse[T]{
		Items:      p.Items,
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
