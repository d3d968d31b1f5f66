package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID       int64           `json:"expenseID" db:"expense_id"`
	UserID          int64           `json:"userID" db:"user_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Category        string          `json:"category" db:"category"`
	Description     string          `json:"description" db:"description"`
	ExpenseDate     time.Time       `json:"expenseDate" db:"expense_date"`
	ReceiptURL      string          `json:"receiptURL" db:"receipt_url"`
	Status          string          `json:"status" db:"status"`
	ApprovedBy      *int64          `json:"approvedBy" db:"approved_by"`
	RejectionReason *string         `json:"rejectionReason" db:"rejection_reason"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// ExpenseAttachment represents a row of the expense_attachments table.
type ExpenseAttachment struct {
	AttachmentID int64     `json:"attachmentID" db:"attachment_id"`
	ExpenseID    int64     `json:"expenseID" db:"expense_id"`
	FileURL      string    `json:"fileURL" db:"file_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ExpenseSummaryRow is one (status, category) group of the summary query.
type ExpenseSummaryRow struct {
	Status   string          `db:"status"`
	Category string          `db:"category"`
	Count    int64           `db:"expense_count"`
	Amount   decimal.Decimal `db:"total_amount"`
}
