package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	expenseRepo := newPgxExpenseRepository(dbPool)
	attachmentRepo := newPgxAttachmentRepository(dbPool)
	reimbursementRepo := newPgxReimbursementRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ExpenseRepo:       expenseRepo,
		AttachmentRepo:    attachmentRepo,
		ReimbursementRepo: reimbursementRepo,
		UserRepo:          userRepo,
	}
}
