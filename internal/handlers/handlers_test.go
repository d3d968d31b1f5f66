package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/handlers"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-for-handlers"
	testJWTIssuer = "expense-tracker-test"
)

type HandlersTestSuite struct {
	suite.Suite
	router           *gin.Engine
	expenseSvc       *MockExpenseService
	reimbursementSvc *MockReimbursementService
	attachmentSvc    *MockAttachmentService
	userSvc          *MockUserService
	tokenSvc         *MockTokenService
	employeeToken    string
	managerToken     string
	financialToken   string
	adminToken       string
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.expenseSvc = new(MockExpenseService)
	s.reimbursementSvc = new(MockReimbursementService)
	s.attachmentSvc = new(MockAttachmentService)
	s.userSvc = new(MockUserService)
	s.tokenSvc = new(MockTokenService)

	cfg := &config.Config{
		IsProduction:      true,
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         testJWTIssuer,
		LoginRateLimit:    "1000-M",
		APIRateLimit:      "1000-M",
	}
	services := &portssvc.ServiceContainer{
		Expense:       s.expenseSvc,
		Reimbursement: s.reimbursementSvc,
		Attachment:    s.attachmentSvc,
		User:          s.userSvc,
		Token:         s.tokenSvc,
	}

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, services))

	s.employeeToken = s.token(1, domain.RoleEmployee)
	s.managerToken = s.token(2, domain.RoleManager)
	s.financialToken = s.token(3, domain.RoleFinancial)
	s.adminToken = s.token(4, domain.RoleAdmin)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.expenseSvc.AssertExpectations(s.T())
	s.reimbursementSvc.AssertExpectations(s.T())
	s.attachmentSvc.AssertExpectations(s.T())
	s.userSvc.AssertExpectations(s.T())
	s.tokenSvc.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) token(userID int64, role domain.Role) string {
	tok, err := utils.GenerateJWT(userID, role, testJWTSecret, time.Hour, testJWTIssuer)
	s.Require().NoError(err)
	return tok
}

func (s *HandlersTestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var envelope map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func (s *HandlersTestSuite) assertEnvelope(envelope map[string]any, success bool, status int) {
	s.Equal(success, envelope["success"])
	s.EqualValues(status, envelope["statusCode"])
	s.Contains(envelope, "message")
	s.Contains(envelope, "data")
}

func sampleExpense(id int64, status domain.ExpenseStatus) *domain.Expense {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Expense{
		ExpenseID:   id,
		UserID:      1,
		Amount:      decimal.RequireFromString("42.50"),
		Category:    domain.CategoryMeals,
		Description: "Team lunch",
		Date:        now,
		ReceiptURL:  "https://receipts.example.com/1.png",
		Status:      status,
		Attachments: []domain.ExpenseAttachment{},
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

// --- health and home ---

func (s *HandlersTestSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

// --- expenses ---

func (s *HandlersTestSuite) TestGetExpense_Success() {
	s.expenseSvc.On("GetExpenseByID", mock.Anything, int64(7)).Return(sampleExpense(7, domain.StatusPending), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/7", "", nil)

	s.Equal(http.StatusOK, w.Code)
	s.assertEnvelope(env, true, http.StatusOK)
	data := env["data"].(map[string]any)
	s.EqualValues(7, data["expenseID"])
	s.Equal("PENDING", data["status"])
	s.Equal("2024-03-10", data["date"])
	s.Empty(data["attachments"])
}

func (s *HandlersTestSuite) TestGetExpense_NotFound() {
	s.expenseSvc.On("GetExpenseByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/99", "", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.assertEnvelope(env, false, http.StatusNotFound)
	s.Nil(env["data"])
}

func (s *HandlersTestSuite) TestGetExpense_BadID() {
	w, env := s.do(http.MethodGet, "/api/v1/expenses/abc", "", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.assertEnvelope(env, false, http.StatusBadRequest)
}

func (s *HandlersTestSuite) TestCreateExpense_RequiresToken() {
	w, env := s.do(http.MethodPost, "/api/v1/expenses", "", map[string]any{})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.assertEnvelope(env, false, http.StatusUnauthorized)
}

func (s *HandlersTestSuite) TestCreateExpense_Success() {
	body := map[string]any{
		"amount":      "42.50",
		"category":    "MEALS",
		"description": "Team lunch",
		"date":        "2024-03-10",
		"receiptURL":  "https://receipts.example.com/1.png",
	}
	s.expenseSvc.On("CreateExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Category == domain.CategoryMeals && req.Amount.Equal(decimal.RequireFromString("42.50"))
	}), int64(1)).Return(sampleExpense(10, domain.StatusPending), nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/expenses", s.employeeToken, body)

	s.Equal(http.StatusCreated, w.Code)
	s.assertEnvelope(env, true, http.StatusCreated)
}

func (s *HandlersTestSuite) TestCreateExpense_InvalidCategory() {
	body := map[string]any{
		"amount":      "10",
		"category":    "YACHTS",
		"description": "Boat",
		"date":        "2024-03-10",
		"receiptURL":  "https://receipts.example.com/1.png",
	}

	w, env := s.do(http.MethodPost, "/api/v1/expenses", s.employeeToken, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.assertEnvelope(env, false, http.StatusBadRequest)
}

func (s *HandlersTestSuite) TestCreateExpense_ForeignIssuerRejected() {
	foreign, err := utils.GenerateJWT(1, domain.RoleEmployee, testJWTSecret, time.Hour, "another-service")
	s.Require().NoError(err)

	w, env := s.do(http.MethodPost, "/api/v1/expenses", foreign, map[string]any{})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.assertEnvelope(env, false, http.StatusUnauthorized)
}

func (s *HandlersTestSuite) TestApproveExpense_EmployeeForbidden() {
	w, env := s.do(http.MethodPut, "/api/v1/expenses/5/approve", s.employeeToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.assertEnvelope(env, false, http.StatusForbidden)
}

func (s *HandlersTestSuite) TestApproveExpense_Success() {
	approved := sampleExpense(5, domain.StatusApproved)
	approver := int64(2)
	approved.ApprovedBy = &approver
	s.expenseSvc.On("ApproveExpense", mock.Anything, int64(5), int64(2)).Return(approved, nil).Once()

	w, env := s.do(http.MethodPut, "/api/v1/expenses/5/approve", s.managerToken, nil)

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.Equal("APPROVED", data["status"])
	s.EqualValues(2, data["approvedBy"])
}

func (s *HandlersTestSuite) TestApproveExpense_NotPendingConflict() {
	s.expenseSvc.On("ApproveExpense", mock.Anything, int64(5), int64(4)).Return(nil, apperrors.ErrInvalidState).Once()

	w, env := s.do(http.MethodPut, "/api/v1/expenses/5/approve", s.adminToken, nil)

	s.Equal(http.StatusConflict, w.Code)
	s.assertEnvelope(env, false, http.StatusConflict)
}

func (s *HandlersTestSuite) TestRejectExpense_RequiresReason() {
	w, env := s.do(http.MethodPut, "/api/v1/expenses/5/reject", s.managerToken, map[string]any{})

	s.Equal(http.StatusBadRequest, w.Code)
	s.assertEnvelope(env, false, http.StatusBadRequest)
}

func (s *HandlersTestSuite) TestRejectExpense_Success() {
	rejected := sampleExpense(5, domain.StatusRejected)
	reason := "Missing receipt"
	rejected.RejectionReason = &reason
	s.expenseSvc.On("RejectExpense", mock.Anything, dto.RejectExpenseRequest{ExpenseID: 5, Reason: reason}).Return(rejected, nil).Once()

	w, env := s.do(http.MethodPut, "/api/v1/expenses/5/reject", s.managerToken, map[string]any{"reason": reason})

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.Equal("REJECTED", data["status"])
	s.Equal(reason, data["rejectionReason"])
}

func (s *HandlersTestSuite) TestListExpensesByStatus_Defaults() {
	page := domain.NewPage([]domain.Expense{*sampleExpense(1, domain.StatusPending)}, domain.NewPageRequest(0, 10), 1)
	s.expenseSvc.On("GetExpensesByStatus", mock.Anything, "bogus", domain.PageRequest{Page: 0, Size: 10}, true).
		Return(page, domain.StatusPending, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/by-status?status=bogus", "", nil)

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.EqualValues(1, data["totalItems"])
	s.Len(data["items"], 1)
}

func (s *HandlersTestSuite) TestListExpensesByUser_Paged() {
	page := domain.NewPage([]domain.Expense{}, domain.NewPageRequest(2, 5), 0)
	s.expenseSvc.On("GetExpensesByUser", mock.Anything, int64(1), domain.PageRequest{Page: 2, Size: 5}).Return(page, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/by-user/1?page=2&size=5", "", nil)

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.Empty(data["items"])
}

func (s *HandlersTestSuite) TestListExpensesByUser_PageTooLarge() {
	w, env := s.do(http.MethodGet, "/api/v1/expenses/by-user/1?page=1844674407370955161&size=10", "", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.assertEnvelope(env, false, http.StatusBadRequest)
}

func (s *HandlersTestSuite) TestSummary_DateOnlyEndCoversDay() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	summary := domain.NewExpenseSummary(start, end, nil)
	s.expenseSvc.On("GetSummaryByDateRange", mock.Anything,
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(start) }),
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(end) }),
	).Return(&summary, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/summary?startDate=2024-01-01&endDate=2024-01-31", "", nil)

	s.Equal(http.StatusOK, w.Code)
	s.assertEnvelope(env, true, http.StatusOK)
}

func (s *HandlersTestSuite) TestSummary_BadDate() {
	w, env := s.do(http.MethodGet, "/api/v1/expenses/summary?startDate=yesterday", "", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.assertEnvelope(env, false, http.StatusBadRequest)
}

func (s *HandlersTestSuite) TestDeleteExpense_NotFound() {
	s.expenseSvc.On("SoftDeleteExpenseByID", mock.Anything, int64(3)).Return(apperrors.ErrNotFound).Once()

	w, _ := s.do(http.MethodDelete, "/api/v1/expenses/3", "", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

// --- attachments ---

func (s *HandlersTestSuite) TestAddAttachment_MissingExpenseIsServerError() {
	appErr := apperrors.NewAppError(http.StatusInternalServerError, "Expense not found", apperrors.ErrPreconditionFailed)
	s.attachmentSvc.On("AddAttachment", mock.Anything, int64(8), "https://files.example.com/a.pdf").Return(nil, appErr).Once()

	w, env := s.do(http.MethodPost, "/api/v1/expenses/8/attachments", s.employeeToken, map[string]any{"fileURL": "https://files.example.com/a.pdf"})

	s.Equal(http.StatusInternalServerError, w.Code)
	s.assertEnvelope(env, false, http.StatusInternalServerError)
	s.Equal("Expense not found", env["message"])
}

func (s *HandlersTestSuite) TestListAttachments() {
	s.attachmentSvc.On("GetAttachmentsByExpenseID", mock.Anything, int64(8)).Return([]domain.ExpenseAttachment{
		{AttachmentID: 1, ExpenseID: 8, FileURL: "https://files.example.com/a.pdf"},
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/8/attachments", "", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Len(env["data"], 1)
}

// --- reimbursements ---

func (s *HandlersTestSuite) TestGetReimbursement_RepositoryFailureIsGeneric() {
	connErr := errors.New("conn closed")
	s.reimbursementSvc.On("GetReimbursementByID", mock.Anything, int64(12)).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find reimbursement 12", connErr)).Once()

	w, env := s.do(http.MethodGet, "/api/v1/reimbursements/12", s.managerToken, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.assertEnvelope(env, false, http.StatusInternalServerError)
	s.Equal("Internal server error", env["message"])
}

func (s *HandlersTestSuite) TestGetExpense_UnwrappedFailureIsGeneric() {
	s.expenseSvc.On("GetExpenseByID", mock.Anything, int64(13)).
		Return(nil, fmt.Errorf("failed to load expense 13: %w", errors.New("dial tcp 10.0.0.5:5432"))).Once()

	w, env := s.do(http.MethodGet, "/api/v1/expenses/13", "", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Internal server error", env["message"])
}

func (s *HandlersTestSuite) TestReimbursements_EmployeeForbidden() {
	w, env := s.do(http.MethodGet, "/api/v1/reimbursements/1", s.employeeToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.assertEnvelope(env, false, http.StatusForbidden)
}

func (s *HandlersTestSuite) TestCreateReimbursement_Success() {
	req := dto.CreateReimbursementRequest{ExpenseID: 5, Notes: "Paid via payroll"}
	s.reimbursementSvc.On("CreateReimbursement", mock.Anything, req, int64(3)).Return(&domain.Reimbursement{
		ReimbursementID: 11,
		ExpenseID:       5,
		UserID:          1,
		Amount:          decimal.RequireFromString("42.50"),
		ProcessedBy:     3,
		Notes:           req.Notes,
	}, nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/reimbursements", s.financialToken, req)

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.EqualValues(11, data["reimbursementID"])
}

func (s *HandlersTestSuite) TestCreateReimbursement_Duplicate() {
	req := dto.CreateReimbursementRequest{ExpenseID: 5}
	s.reimbursementSvc.On("CreateReimbursement", mock.Anything, req, int64(2)).Return(nil, apperrors.ErrDuplicate).Once()

	w, env := s.do(http.MethodPost, "/api/v1/reimbursements", s.managerToken, req)

	s.Equal(http.StatusConflict, w.Code)
	s.assertEnvelope(env, false, http.StatusConflict)
}

// --- users and auth ---

func (s *HandlersTestSuite) TestUpdateUser_OtherUserForbidden() {
	w, _ := s.do(http.MethodPut, "/api/v1/users/2", s.employeeToken, map[string]any{"firstName": "X"})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestDeleteUser_AdminOnly() {
	w, _ := s.do(http.MethodDelete, "/api/v1/users/1", s.managerToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.userSvc.On("DeleteUser", mock.Anything, int64(1)).Return(nil).Once()
	w, env := s.do(http.MethodDelete, "/api/v1/users/1", s.adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.assertEnvelope(env, true, http.StatusOK)
}

func (s *HandlersTestSuite) TestGetProfile() {
	s.userSvc.On("GetUserByID", mock.Anything, int64(1)).Return(&domain.User{
		UserID: 1, Username: "jdoe", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Role: domain.RoleEmployee,
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/users/1/profile", s.employeeToken, nil)

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.Equal("Jane Doe", data["fullName"])
}

func (s *HandlersTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: 1, Username: "jdoe", Role: domain.RoleEmployee}
	expires := time.Now().Add(time.Hour)
	s.userSvc.On("AuthenticateUser", mock.Anything, "jdoe", "password123").Return(user, nil).Once()
	s.tokenSvc.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expires, nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "jdoe", Password: "password123"})

	s.Equal(http.StatusOK, w.Code)
	data := env["data"].(map[string]any)
	s.Equal("signed-token", data["token"])
}

func (s *HandlersTestSuite) TestLogin_BadCredentials() {
	s.userSvc.On("AuthenticateUser", mock.Anything, "jdoe", "nope").Return(nil, apperrors.ErrUnauthorized).Once()

	w, env := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "jdoe", Password: "nope"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.assertEnvelope(env, false, http.StatusUnauthorized)
}

func (s *HandlersTestSuite) TestRegister_CreatesEmployee() {
	req := dto.CreateUserRequest{Username: "newbie", Password: "longpassword", FirstName: "New", Email: "new@example.com"}
	s.userSvc.On("CreateUser", mock.Anything, req, domain.RoleEmployee).Return(&domain.User{
		UserID: 9, Username: "newbie", FirstName: "New", Email: "new@example.com", Role: domain.RoleEmployee,
	}, nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/auth/register", "", req)

	s.Equal(http.StatusCreated, w.Code)
	data := env["data"].(map[string]any)
	s.Equal("EMPLOYEE", data["role"])
}
