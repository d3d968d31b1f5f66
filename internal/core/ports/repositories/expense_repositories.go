package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a non-deleted expense together with its attachments.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// FindExpensesByUser retrieves a page of a user's expenses and the total count.
	FindExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Expense, int64, error)

	// FindExpensesByStatus retrieves a page of expenses in a status ordered by creation time.
	FindExpensesByStatus(ctx context.Context, status domain.ExpenseStatus, page domain.PageRequest, ascending bool) ([]domain.Expense, int64, error)

	// SummarizeExpenses groups non-deleted expenses incurred in [start, end] by status and category.
	SummarizeExpenses(ctx context.Context, start, end time.Time) ([]domain.SummaryRow, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense inserts a new expense and fills in its generated ID.
	SaveExpense(ctx context.Context, expense *domain.Expense) error

	// UpdateExpenseStatus persists a status transition only if the stored
	// status still equals from. It returns apperrors.ErrInvalidState otherwise.
	UpdateExpenseStatus(ctx context.Context, expense domain.Expense, from domain.ExpenseStatus) error
}

// ExpenseLifecycleManager defines operations for managing expense lifecycle
type ExpenseLifecycleManager interface {
	// MarkExpenseDeleted marks an expense as deleted (soft delete).
	MarkExpenseDeleted(ctx context.Context, expenseID int64, deletedAt time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpenseLifecycleManager
}
