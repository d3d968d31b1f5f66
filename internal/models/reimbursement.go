package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reimbursement represents a row of the reimbursements table.
type Reimbursement struct {
	ReimbursementID int64           `json:"reimbursementID" db:"reimbursement_id"`
	ExpenseID       int64           `json:"expenseID" db:"expense_id"`
	UserID          int64           `json:"userID" db:"user_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	ProcessedBy     int64           `json:"processedBy" db:"processed_by"`
	Notes           string          `json:"notes" db:"notes"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}
