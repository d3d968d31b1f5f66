package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/models"
	"github.com/SscSPs/expense_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseSelectQuery = `
SELECT
	e.expense_id, e.user_id, e.amount, e.category, e.description, e.expense_date,
	e.receipt_url, e.status, e.approved_by, e.rejection_reason,
	e.created_at, e.updated_at, e.deleted_at
FROM expenses e
`

// getExpenses runs the shared select with the given filter and loads the
// attachments of every returned expense in one extra query.
func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, expenseSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}

	expenses := mapping.ToDomainExpenseSlice(modelExpenses)
	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]int64, len(expenses))
	byID := make(map[int64]int, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ExpenseID
		byID[e.ExpenseID] = i
	}

	attRows, err := r.Pool.Query(ctx, attachmentSelectQuery+`WHERE a.expense_id = ANY($1) ORDER BY a.created_at, a.attachment_id`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense attachments", err)
	}
	defer attRows.Close()

	attachments, err := pgx.CollectRows(attRows, pgx.RowToStructByName[models.ExpenseAttachment])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect attachment rows", err)
	}
	for _, a := range attachments {
		i := byID[a.ExpenseID]
		expenses[i].Attachments = append(expenses[i].Attachments, mapping.ToDomainAttachment(a))
	}

	return expenses, nil
}

func (r *PgxExpenseRepository) count(ctx context.Context, filterQuery string, args ...any) (int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM expenses e "+filterQuery, args...).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count expenses", err)
	}
	return total, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.expense_id = $1 AND e.deleted_at IS NULL`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) FindExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Expense, int64, error) {
	filter := `WHERE e.user_id = $1 AND e.deleted_at IS NULL`

	total, err := r.count(ctx, filter, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Expense{}, 0, nil
	}

	expenses, err := r.getExpenses(ctx, filter+` ORDER BY e.created_at DESC, e.expense_id DESC LIMIT $2 OFFSET $3`,
		userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (r *PgxExpenseRepository) FindExpensesByStatus(ctx context.Context, status domain.ExpenseStatus, page domain.PageRequest, ascending bool) ([]domain.Expense, int64, error) {
	filter := `WHERE e.status = $1 AND e.deleted_at IS NULL`

	total, err := r.count(ctx, filter, string(status))
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Expense{}, 0, nil
	}

	dir := orderDirection(ascending)
	order := fmt.Sprintf(` ORDER BY e.created_at %s, e.expense_id %s LIMIT $2 OFFSET $3`, dir, dir)
	expenses, err := r.getExpenses(ctx, filter+order, string(status), page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (r *PgxExpenseRepository) SummarizeExpenses(ctx context.Context, start, end time.Time) ([]domain.SummaryRow, error) {
	query := `
		SELECT e.status, e.category, COUNT(*) AS expense_count, COALESCE(SUM(e.amount), 0) AS total_amount
		FROM expenses e
		WHERE e.deleted_at IS NULL AND e.expense_date BETWEEN $1 AND $2
		GROUP BY e.status, e.category
		ORDER BY e.status, e.category;
	`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense summary", err)
	}
	defer rows.Close()

	summaryRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExpenseSummaryRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense summary rows", err)
	}
	return mapping.ToDomainSummaryRows(summaryRows), nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense *domain.Expense) error {
	m := mapping.ToModelExpense(*expense)
	query := `
		INSERT INTO expenses (
			user_id, amount, category, description, expense_date, receipt_url,
			status, approved_by, rejection_reason, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING expense_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.Amount,
		m.Category,
		m.Description,
		m.ExpenseDate,
		m.ReceiptURL,
		m.Status,
		m.ApprovedBy,
		m.RejectionReason,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&expense.ExpenseID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("user %d does not exist: %w", m.UserID, apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to save expense", err)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expense domain.Expense, from domain.ExpenseStatus) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET status = $1, approved_by = $2, rejection_reason = $3, updated_at = $4
		WHERE expense_id = $5 AND status = $6 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.ApprovedBy,
		m.RejectionReason,
		m.UpdatedAt,
		m.ExpenseID,
		string(from),
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update status of expense %d", m.ExpenseID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d is no longer %s: %w", m.ExpenseID, from, apperrors.ErrInvalidState)
	}
	return nil
}

func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID int64, deletedAt time.Time) error {
	query := `
		UPDATE expenses
		SET deleted_at = $1, updated_at = $1
		WHERE expense_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark expense as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d not found or already deleted: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
