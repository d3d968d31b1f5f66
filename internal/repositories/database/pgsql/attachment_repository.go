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

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepository {
	return &PgxAttachmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AttachmentRepository = (*PgxAttachmentRepository)(nil)

const attachmentSelectQuery = `
SELECT a.attachment_id, a.expense_id, a.file_url, a.created_at
FROM expense_attachments a
`

func (r *PgxAttachmentRepository) FindAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM expenses WHERE expense_id = $1 AND deleted_at IS NULL)`, expenseID,
	).Scan(&exists)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to check expense existence", err)
	}
	if !exists {
		return nil, fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
	}

	rows, err := r.Pool.Query(ctx, attachmentSelectQuery+`WHERE a.expense_id = $1 ORDER BY a.created_at, a.attachment_id`, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments", err)
	}
	defer rows.Close()

	attachments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExpenseAttachment])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect attachment rows", err)
	}
	return mapping.ToDomainAttachmentSlice(attachments), nil
}

// AppendAttachment locks the parent expense row so the attachment is only
// written while the expense exists, then bumps the expense's updated_at.
func (r *PgxAttachmentRepository) AppendAttachment(ctx context.Context, attachment *domain.ExpenseAttachment) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var locked int64
	err = tx.QueryRow(ctx,
		`SELECT expense_id FROM expenses WHERE expense_id = $1 AND deleted_at IS NULL FOR UPDATE`, attachment.ExpenseID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("expense %d: %w", attachment.ExpenseID, apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to lock expense", err)
	}

	m := mapping.ToModelAttachment(*attachment)
	err = tx.QueryRow(ctx, `
		INSERT INTO expense_attachments (expense_id, file_url, created_at)
		VALUES ($1, $2, $3)
		RETURNING attachment_id;
	`, m.ExpenseID, m.FileURL, m.CreatedAt).Scan(&attachment.AttachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert attachment", err)
	}

	if _, err = tx.Exec(ctx, `UPDATE expenses SET updated_at = $1 WHERE expense_id = $2`, m.CreatedAt, m.ExpenseID); err != nil {
		return apperrors.NewAppError(500, "failed to touch expense", err)
	}

	return r.Commit(ctx, tx)
}
