package pgsql

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Runs against a real database when PGSQL_URL is set.
type PgxRepositoryTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	expenses portsrepo.ExpenseRepositoryFacade
	reimbs   portsrepo.ReimbursementRepositoryFacade
	users    portsrepo.UserRepositoryFacade
	ctx      context.Context
}

func TestPgxRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PgxRepositoryTestSuite))
}

func (s *PgxRepositoryTestSuite) SetupSuite() {
	url := os.Getenv("PGSQL_URL")
	if url == "" {
		s.T().Skip("PGSQL_URL not set")
	}
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))

	pool, err := database.NewPgxPool(s.ctx, url, true)
	s.Require().NoError(err)
	s.pool = pool
	s.expenses = newPgxExpenseRepository(pool)
	s.reimbs = newPgxReimbursementRepository(pool)
	s.users = newPgxUserRepository(pool)
}

func (s *PgxRepositoryTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

func (s *PgxRepositoryTestSuite) newUser(role domain.Role) domain.User {
	suffix := uuid.NewString()[:8]
	now := time.Now().UTC()
	u := domain.User{
		Username:     "repo-" + suffix,
		PasswordHash: "x",
		FirstName:    "Repo",
		Email:        "repo-" + suffix + "@example.com",
		Role:         role,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.users.SaveUser(s.ctx, &u))
	return u
}

func (s *PgxRepositoryTestSuite) newExpense(userID int64, amount string, category domain.ExpenseCategory, date time.Time) domain.Expense {
	now := time.Now().UTC()
	e := domain.Expense{
		UserID:      userID,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "repository test",
		Date:        date,
		ReceiptURL:  "https://receipts.example.com/r.png",
		Status:      domain.StatusPending,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.expenses.SaveExpense(s.ctx, &e))
	return e
}

func bucket(rows []domain.SummaryRow, status domain.ExpenseStatus, category domain.ExpenseCategory) (int64, decimal.Decimal) {
	for _, r := range rows {
		if r.Status == status && r.Category == category {
			return r.Count, r.Amount
		}
	}
	return 0, decimal.Zero
}

func (s *PgxRepositoryTestSuite) TestSummarizeExpenses_GroupsByStatusAndCategory() {
	day := time.Date(2987, 6, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2987, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2987, 6, 30, 23, 59, 59, 0, time.UTC)

	before, err := s.expenses.SummarizeExpenses(s.ctx, start, end)
	s.Require().NoError(err)

	user := s.newUser(domain.RoleEmployee)
	s.newExpense(user.UserID, "10.25", domain.CategoryMeals, day)
	s.newExpense(user.UserID, "4.75", domain.CategoryMeals, day)
	s.newExpense(user.UserID, "99.00", domain.CategoryTravel, day.AddDate(0, 1, 0)) // outside range

	after, err := s.expenses.SummarizeExpenses(s.ctx, start, end)
	s.Require().NoError(err)

	countBefore, amountBefore := bucket(before, domain.StatusPending, domain.CategoryMeals)
	countAfter, amountAfter := bucket(after, domain.StatusPending, domain.CategoryMeals)
	s.Equal(countBefore+2, countAfter)
	s.True(amountAfter.Sub(amountBefore).Equal(decimal.RequireFromString("15.00")))

	travelBefore, _ := bucket(before, domain.StatusPending, domain.CategoryTravel)
	travelAfter, _ := bucket(after, domain.StatusPending, domain.CategoryTravel)
	s.Equal(travelBefore, travelAfter)
}

func (s *PgxRepositoryTestSuite) TestUpdateExpenseStatus_ConcurrentTransitionsOnlyOneWins() {
	employee := s.newUser(domain.RoleEmployee)
	manager := s.newUser(domain.RoleManager)
	expense := s.newExpense(employee.UserID, "20.00", domain.CategoryEquipment, time.Now().UTC())

	approved := expense
	approved.Approve(manager.UserID, time.Now().UTC())
	rejected := expense
	rejected.Reject("duplicate submission", time.Now().UTC())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, candidate := range []domain.Expense{approved, rejected} {
		wg.Add(1)
		go func(i int, e domain.Expense) {
			defer wg.Done()
			errs[i] = s.expenses.UpdateExpenseStatus(s.ctx, e, domain.StatusPending)
		}(i, candidate)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, apperrors.ErrInvalidState):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, wins)
	s.Equal(1, conflicts)

	stored, err := s.expenses.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.NotEqual(domain.StatusPending, stored.Status)
}

func (s *PgxRepositoryTestSuite) TestSaveReimbursement_SecondForSameExpenseIsDuplicate() {
	employee := s.newUser(domain.RoleEmployee)
	finance := s.newUser(domain.RoleFinancial)
	expense := s.newExpense(employee.UserID, "30.00", domain.CategoryTraining, time.Now().UTC())

	approved := expense
	approved.Approve(finance.UserID, time.Now().UTC())
	s.Require().NoError(s.expenses.UpdateExpenseStatus(s.ctx, approved, domain.StatusPending))

	newReimbursement := func() domain.Reimbursement {
		return domain.Reimbursement{
			ExpenseID:   expense.ExpenseID,
			UserID:      employee.UserID,
			Amount:      expense.Amount,
			ProcessedBy: finance.UserID,
			CreatedAt:   time.Now().UTC(),
		}
	}

	first := newReimbursement()
	s.Require().NoError(s.reimbs.SaveReimbursement(s.ctx, &first))
	s.Positive(first.ReimbursementID)

	second := newReimbursement()
	s.ErrorIs(s.reimbs.SaveReimbursement(s.ctx, &second), apperrors.ErrDuplicate)
}
