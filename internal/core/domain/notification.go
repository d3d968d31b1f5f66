package domain

import (
	"fmt"
	"time"
)

// Notification is the message sent when an expense changes state.
type Notification struct {
	ExpenseID int64         `json:"expenseID"`
	UserID    int64         `json:"userID"`
	Status    ExpenseStatus `json:"status"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewNotificationFromExpense builds the notification for the expense's current state.
func NewNotificationFromExpense(e Expense, now time.Time) Notification {
	n := Notification{
		ExpenseID: e.ExpenseID,
		UserID:    e.UserID,
		Status:    e.Status,
		CreatedAt: now,
	}

	switch e.Status {
	case StatusApproved:
		n.Title = "Expense Approved"
		n.Message = fmt.Sprintf("Your expense #%d of %s has been approved.", e.ExpenseID, e.Amount.StringFixed(2))
	case StatusRejected:
		reason := ""
		if e.RejectionReason != nil {
			reason = *e.RejectionReason
		}
		n.Title = "Expense Rejected"
		n.Message = fmt.Sprintf("Your expense #%d of %s has been rejected. Reason: %s", e.ExpenseID, e.Amount.StringFixed(2), reason)
	default:
		n.Title = "Expense Updated"
		n.Message = fmt.Sprintf("Your expense #%d is now %s.", e.ExpenseID, e.Status)
	}

	return n
}

// NewReimbursementNotification builds the notification sent once an approved
// expense has been reimbursed.
func NewReimbursementNotification(r Reimbursement, e Expense, now time.Time) Notification {
	return Notification{
		ExpenseID: e.ExpenseID,
		UserID:    e.UserID,
		Status:    e.Status,
		Title:     "Expense Reimbursed",
		Message:   fmt.Sprintf("Your expense #%d has been reimbursed for %s.", e.ExpenseID, r.Amount.StringFixed(2)),
		CreatedAt: now,
	}
}
