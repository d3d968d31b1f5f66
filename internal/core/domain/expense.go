package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an expense.
// PENDING is the only initial state; APPROVED and REJECTED are terminal.
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "PENDING"
	StatusApproved ExpenseStatus = "APPROVED"
	StatusRejected ExpenseStatus = "REJECTED"
)

// FindStatus resolves a status name case-insensitively.
func FindStatus(s string) (ExpenseStatus, bool) {
	switch st := ExpenseStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

// StatusOrPending resolves a status name, falling back to PENDING when the
// input is not a known status.
func StatusOrPending(s string) ExpenseStatus {
	if st, ok := FindStatus(s); ok {
		return st
	}
	return StatusPending
}

// ExpenseCategory classifies what an expense was spent on.
type ExpenseCategory string

const (
	CategoryTravel         ExpenseCategory = "TRAVEL"
	CategoryMeals          ExpenseCategory = "MEALS"
	CategoryOfficeSupplies ExpenseCategory = "OFFICE_SUPPLIES"
	CategoryEquipment      ExpenseCategory = "EQUIPMENT"
	CategoryTraining       ExpenseCategory = "TRAINING"
	CategoryEntertainment  ExpenseCategory = "ENTERTAINMENT"
	CategoryOther          ExpenseCategory = "OTHER"
)

// ExpenseCategories lists every valid category.
var ExpenseCategories = []ExpenseCategory{
	CategoryTravel,
	CategoryMeals,
	CategoryOfficeSupplies,
	CategoryEquipment,
	CategoryTraining,
	CategoryEntertainment,
	CategoryOther,
}

// IsValid reports whether c is one of ExpenseCategories.
func (c ExpenseCategory) IsValid() bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Expense is an amount an employee spent and submitted for approval.
//
// RejectionReason is set if and only if Status is REJECTED, and ApprovedBy
// is set if and only if Status is APPROVED.
type Expense struct {
	ExpenseID       int64               `json:"expenseID"`
	UserID          int64               `json:"userID"`
	Amount          decimal.Decimal     `json:"amount"`
	Category        ExpenseCategory     `json:"category"`
	Description     string              `json:"description"`
	Date            time.Time           `json:"date"`
	ReceiptURL      string              `json:"receiptURL"`
	Status          ExpenseStatus       `json:"status"`
	ApprovedBy      *int64              `json:"approvedBy,omitempty"`
	RejectionReason *string             `json:"rejectionReason,omitempty"`
	Attachments     []ExpenseAttachment `json:"attachments"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsPending reports whether the expense can still be approved or rejected.
func (e Expense) IsPending() bool {
	return e.Status == StatusPending
}

// Approve moves a pending expense to APPROVED.
func (e *Expense) Approve(approverID int64, now time.Time) {
	e.Status = StatusApproved
	e.ApprovedBy = &approverID
	e.RejectionReason = nil
	e.UpdatedAt = now
}

// Reject moves a pending expense to REJECTED.
func (e *Expense) Reject(reason string, now time.Time) {
	e.Status = StatusRejected
	e.RejectionReason = &reason
	e.ApprovedBy = nil
	e.UpdatedAt = now
}
