package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) GetExpensesByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(domain.Page[domain.Expense]), args.Error(1)
}
func (m *MockExpenseService) GetExpensesByStatus(ctx context.Context, status string, page domain.PageRequest, ascending bool) (domain.Page[domain.Expense], domain.ExpenseStatus, error) {
	args := m.Called(ctx, status, page, ascending)
	return args.Get(0).(domain.Page[domain.Expense]), args.Get(1).(domain.ExpenseStatus), args.Error(2)
}
func (m *MockExpenseService) GetSummaryByDateRange(ctx context.Context, start, end *time.Time) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID int64) (*domain.Expense, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) SoftDeleteExpenseByID(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}
func (m *MockExpenseService) ApproveExpense(ctx context.Context, expenseID int64, approverID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) RejectExpense(ctx context.Context, req dto.RejectExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ReimbursementService ---
type MockReimbursementService struct {
	mock.Mock
}

func (m *MockReimbursementService) GetReimbursementByID(ctx context.Context, reimbursementID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, reimbursementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reimbursement), args.Error(1)
}
func (m *MockReimbursementService) GetReimbursementsByUser(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.Reimbursement], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(domain.Page[domain.Reimbursement]), args.Error(1)
}
func (m *MockReimbursementService) CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest, requestingUserID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reimbursement), args.Error(1)
}

var _ portssvc.ReimbursementSvcFacade = (*MockReimbursementService)(nil)

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) GetAttachmentsByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseAttachment, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAttachment), args.Error(1)
}
func (m *MockAttachmentService) AddAttachment(ctx context.Context, expenseID int64, fileURL string) (*domain.ExpenseAttachment, error) {
	args := m.Called(ctx, expenseID, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseAttachment), args.Error(1)
}

var _ portssvc.AttachmentSvc = (*MockAttachmentService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, req, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
