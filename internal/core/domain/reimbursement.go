package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reimbursement is the payment record derived from an approved expense.
// There is at most one reimbursement per expense.
type Reimbursement struct {
	ReimbursementID int64           `json:"reimbursementID"`
	ExpenseID       int64           `json:"expenseID"`
	UserID          int64           `json:"userID"`
	Amount          decimal.Decimal `json:"amount"`
	ProcessedBy     int64           `json:"processedBy"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	Expense         *Expense        `json:"expense,omitempty"`
}
