package mapping

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelReimbursement converts a domain Reimbursement to a model Reimbursement
func ToModelReimbursement(d domain.Reimbursement) models.Reimbursement {
	return models.Reimbursement{
		ReimbursementID: d.ReimbursementID,
		ExpenseID:       d.ExpenseID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		ProcessedBy:     d.ProcessedBy,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainReimbursement converts a model Reimbursement and, when given, its expense.
func ToDomainReimbursement(m models.Reimbursement, expense *models.Expense) domain.Reimbursement {
	r := domain.Reimbursement{
		ReimbursementID: m.ReimbursementID,
		ExpenseID:       m.ExpenseID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		ProcessedBy:     m.ProcessedBy,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
	if expense != nil {
		e := ToDomainExpense(*expense)
		r.Expense = &e
	}
	return r
}
