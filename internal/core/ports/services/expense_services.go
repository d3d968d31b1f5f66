package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its ID.
	GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// GetExpensesByUser retrieves a page of a user's expenses. No expenses yields an empty page.
	GetExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Expense], error)

	// GetExpensesByStatus retrieves a page of expenses in a status, ordered by creation time.
	// Unrecognized status input falls back to PENDING; the status actually used is returned.
	GetExpensesByStatus(ctx context.Context, status string, page domain.PageRequest, ascending bool) (domain.Page[domain.Expense], domain.ExpenseStatus, error)

	// GetSummaryByDateRange aggregates expenses over [start, end]. If either bound
	// is nil the current calendar month is used.
	GetSummaryByDateRange(ctx context.Context, start, end *time.Time) (*domain.ExpenseSummary, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense submits a new expense in PENDING status.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID int64) (*domain.Expense, error)

	// SoftDeleteExpenseByID marks an expense deleted without removing the row.
	SoftDeleteExpenseByID(ctx context.Context, expenseID int64) error
}

// ExpenseWorkflowSvc defines the approval workflow transitions
type ExpenseWorkflowSvc interface {
	// ApproveExpense moves a PENDING expense to APPROVED and records the approver.
	ApproveExpense(ctx context.Context, expenseID int64, approverID int64) (*domain.Expense, error)

	// RejectExpense moves a PENDING expense to REJECTED and records the reason.
	RejectExpense(ctx context.Context, req dto.RejectExpenseRequest) (*domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseWorkflowSvc
}
