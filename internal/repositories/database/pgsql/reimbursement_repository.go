package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/models"
	"github.com/SscSPs/expense_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReimbursementRepository struct {
	BaseRepository
}

func newPgxReimbursementRepository(pool *pgxpool.Pool) portsrepo.ReimbursementRepositoryFacade {
	return &PgxReimbursementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReimbursementRepositoryFacade = (*PgxReimbursementRepository)(nil)

const reimbursementSelectQuery = `
SELECT
	r.reimbursement_id, r.expense_id, r.user_id, r.amount, r.processed_by, r.notes, r.created_at,
	e.expense_id, e.user_id, e.amount, e.category, e.description, e.expense_date,
	e.receipt_url, e.status, e.approved_by, e.rejection_reason,
	e.created_at, e.updated_at, e.deleted_at
FROM reimbursements r
JOIN expenses e ON e.expense_id = r.expense_id
`

func scanReimbursement(row pgx.Row) (domain.Reimbursement, error) {
	var m models.Reimbursement
	var e models.Expense
	err := row.Scan(
		&m.ReimbursementID, &m.ExpenseID, &m.UserID, &m.Amount, &m.ProcessedBy, &m.Notes, &m.CreatedAt,
		&e.ExpenseID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.ExpenseDate,
		&e.ReceiptURL, &e.Status, &e.ApprovedBy, &e.RejectionReason, &e.CreatedAt,
		&e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return domain.Reimbursement{}, err
	}
	return mapping.ToDomainReimbursement(m, &e), nil
}

func (r *PgxReimbursementRepository) FindReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error) {
	reimbursement, err := scanReimbursement(r.Pool.QueryRow(ctx, reimbursementSelectQuery+`WHERE r.reimbursement_id = $1`, reimbursementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find reimbursement %d", reimbursementID), err)
	}
	return &reimbursement, nil
}

func (r *PgxReimbursementRepository) FindReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Reimbursement, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM reimbursements WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count reimbursements", err)
	}
	if total == 0 {
		return []domain.Reimbursement{}, 0, nil
	}

	rows, err := r.Pool.Query(ctx,
		reimbursementSelectQuery+`WHERE r.user_id = $1 ORDER BY r.created_at DESC, r.reimbursement_id DESC LIMIT $2 OFFSET $3`,
		userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query reimbursements", err)
	}
	defer rows.Close()

	reimbursements := []domain.Reimbursement{}
	for rows.Next() {
		reimbursement, err := scanReimbursement(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan reimbursement row", err)
		}
		reimbursements = append(reimbursements, reimbursement)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating reimbursement rows", err)
	}

	return reimbursements, total, nil
}

func (r *PgxReimbursementRepository) SaveReimbursement(ctx context.Context, reimbursement *domain.Reimbursement) error {
	m := mapping.ToModelReimbursement(*reimbursement)
	query := `
		INSERT INTO reimbursements (expense_id, user_id, amount, processed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING reimbursement_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Amount,
		m.ProcessedBy,
		m.Notes,
		m.CreatedAt,
	).Scan(&reimbursement.ReimbursementID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("expense %d already reimbursed: %w", m.ExpenseID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save reimbursement", err)
	}
	return nil
}
