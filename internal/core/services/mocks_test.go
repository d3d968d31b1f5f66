package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Expense, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *MockExpenseRepository) FindExpensesByStatus(ctx context.Context, status domain.ExpenseStatus, page domain.PageRequest, ascending bool) ([]domain.Expense, int64, error) {
	args := m.Called(ctx, status, page, ascending)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *MockExpenseRepository) SummarizeExpenses(ctx context.Context, start, end time.Time) ([]domain.SummaryRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SummaryRow), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, expense domain.Expense, from domain.ExpenseStatus) error {
	args := m.Called(ctx, expense, from)
	return args.Error(0)
}

func (m *MockExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID int64, deletedAt time.Time) error {
	args := m.Called(ctx, expenseID, deletedAt)
	return args.Error(0)
}

// MockAttachmentRepository is a mock type for the AttachmentRepository interface
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) FindAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) AppendAttachment(ctx context.Context, attachment *domain.ExpenseAttachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

// MockReimbursementRepository is a mock type for the ReimbursementRepositoryFacade interface
type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) FindReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, reimbursementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) FindReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.Reimbursement, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Reimbursement), args.Get(1).(int64), args.Error(2)
}

func (m *MockReimbursementRepository) SaveReimbursement(ctx context.Context, reimbursement *domain.Reimbursement) error {
	args := m.Called(ctx, reimbursement)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID int64, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

// recordingDispatcher captures dispatched notifications.
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n domain.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
}

func (d *recordingDispatcher) Sent() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Notification(nil), d.sent...)
}
