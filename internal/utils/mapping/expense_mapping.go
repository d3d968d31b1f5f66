package mapping

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense. Attachments are
// stored separately and are not part of the row.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:       d.ExpenseID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		Category:        string(d.Category),
		Description:     d.Description,
		ExpenseDate:     d.Date,
		ReceiptURL:      d.ReceiptURL,
		Status:          string(d.Status),
		ApprovedBy:      d.ApprovedBy,
		RejectionReason: d.RejectionReason,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense with no attachments loaded.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:       m.ExpenseID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Category:        domain.ExpenseCategory(m.Category),
		Description:     m.Description,
		Date:            m.ExpenseDate,
		ReceiptURL:      m.ReceiptURL,
		Status:          domain.StatusOrPending(m.Status),
		ApprovedBy:      m.ApprovedBy,
		RejectionReason: m.RejectionReason,
		Attachments:     []domain.ExpenseAttachment{},
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		DeletedAt:       m.DeletedAt,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelAttachment converts a domain ExpenseAttachment to a model ExpenseAttachment
func ToModelAttachment(d domain.ExpenseAttachment) models.ExpenseAttachment {
	return models.ExpenseAttachment{
		AttachmentID: d.AttachmentID,
		ExpenseID:    d.ExpenseID,
		FileURL:      d.FileURL,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainAttachment converts a model ExpenseAttachment to a domain ExpenseAttachment
func ToDomainAttachment(m models.ExpenseAttachment) domain.ExpenseAttachment {
	return domain.ExpenseAttachment{
		AttachmentID: m.AttachmentID,
		ExpenseID:    m.ExpenseID,
		FileURL:      m.FileURL,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainAttachmentSlice converts model attachments; nil becomes an empty slice.
func ToDomainAttachmentSlice(ms []models.ExpenseAttachment) []domain.ExpenseAttachment {
	ds := make([]domain.ExpenseAttachment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttachment(m)
	}
	return ds
}

// ToDomainSummaryRows converts grouped summary rows.
func ToDomainSummaryRows(ms []models.ExpenseSummaryRow) []domain.SummaryRow {
	ds := make([]domain.SummaryRow, len(ms))
	for i, m := range ms {
		ds[i] = domain.SummaryRow{
			Status:   domain.StatusOrPending(m.Status),
			Category: domain.ExpenseCategory(m.Category),
			Count:    m.Count,
			Amount:   m.Amount,
		}
	}
	return ds
}
