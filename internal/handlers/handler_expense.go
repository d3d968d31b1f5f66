package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses and their workflow.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers the expense routes. Reads and deletes are
// public; submission and the approval workflow require a bearer token.
func registerExpenseRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/by-user/:userId", h.listExpensesByUser)
		expenses.GET("/by-status", h.listExpensesByStatus)
		expenses.GET("/summary", h.getSummary)
		expenses.GET("/:id", h.getExpense)
		expenses.DELETE("/:id", h.deleteExpense)

		expenses.POST("", auth, h.createExpense)
		expenses.PUT("/:id/approve", auth, middleware.RequireRoles(approverRoles...), h.approveExpense)
		expenses.PUT("/:id/reject", auth, middleware.RequireRoles(approverRoles...), h.rejectExpense)
	}
}

// createExpense godoc
// @Summary Submit an expense
// @Description Submits a new expense for the authenticated user. The expense starts PENDING.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create expense")
		return
	}

	logger.Info("Expense submitted", slog.Int64("expense_id", expense.ExpenseID), slog.Int64("user_id", userID))
	c.JSON(http.StatusCreated, dto.Created(dto.ToExpenseResponse(*expense), "Expense created successfully"))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Description Retrieves a single expense including its attachments
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		respondError(c, err, "get expense")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(*expense), "Expense retrieved successfully"))
}

// listExpensesByUser godoc
// @Summary List a user's expenses
// @Description Retrieves a page of expenses submitted by a user
// @Tags expenses
// @Produce json
// @Param userId path int true "User ID"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=dto.PageResponse[dto.ExpenseResponse]}
// @Failure 400 {object} dto.Response
// @Router /expenses/by-user/{userId} [get]
func (h *expenseHandler) listExpensesByUser(c *gin.Context) {
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.expenseService.GetExpensesByUser(c.Request.Context(), userID, pageRequest(params))
	if err != nil {
		respondError(c, err, "list expenses by user")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExpensePageResponse(page), "Expenses retrieved successfully"))
}

// listExpensesByStatus godoc
// @Summary List expenses by status
// @Description Retrieves a page of expenses in a status ordered by creation time. Unknown statuses fall back to PENDING.
// @Tags expenses
// @Produce json
// @Param status query string false "Status" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(10)
// @Param isSortedASC query bool false "Oldest first" default(true)
// @Success 200 {object} dto.Response{data=dto.PageResponse[dto.ExpenseResponse]}
// @Failure 400 {object} dto.Response
// @Router /expenses/by-status [get]
func (h *expenseHandler) listExpensesByStatus(c *gin.Context) {
	var params dto.ExpensesByStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, status, err := h.expenseService.GetExpensesByStatus(c.Request.Context(), params.Status, pageRequest(params.PageParams), params.IsSortedASC)
	if err != nil {
		respondError(c, err, "list expenses by status")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExpensePageResponse(page), fmt.Sprintf("%s expenses retrieved successfully", status)))
}

// getSummary godoc
// @Summary Summarize expenses
// @Description Aggregates expenses by status and category over a date range. Defaults to the current month.
// @Tags expenses
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.Response{data=dto.ExpenseSummaryResponse}
// @Failure 400 {object} dto.Response
// @Router /expenses/summary [get]
func (h *expenseHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	start, err := parseSummaryDate(params.StartDate, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid startDate: "+err.Error(), http.StatusBadRequest))
		return
	}
	end, err := parseSummaryDate(params.EndDate, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid endDate: "+err.Error(), http.StatusBadRequest))
		return
	}

	summary, err := h.expenseService.GetSummaryByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "summarize expenses")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseSummaryResponse(*summary), "Summary generated successfully"))
}

// parseSummaryDate accepts RFC3339 or a bare date. A bare end date covers the whole day.
func parseSummaryDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD or RFC3339, got %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}

// approveExpense godoc
// @Summary Approve an expense
// @Description Moves a PENDING expense to APPROVED, recording the caller as approver
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /expenses/{id}/approve [put]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	approverID, ok := currentUser(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.ApproveExpense(c.Request.Context(), expenseID, approverID)
	if err != nil {
		respondError(c, err, "approve expense")
		return
	}

	logger.Info("Expense approved", slog.Int64("expense_id", expenseID), slog.Int64("approver_id", approverID))
	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(*expense), "Expense approved successfully"))
}

// rejectExpense godoc
// @Summary Reject an expense
// @Description Moves a PENDING expense to REJECTED with a mandatory reason
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param rejection body dto.RejectExpenseRequest true "Rejection reason"
// @Success 200 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /expenses/{id}/reject [put]
func (h *expenseHandler) rejectExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req dto.RejectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.ExpenseID = expenseID

	expense, err := h.expenseService.RejectExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "reject expense")
		return
	}

	logger.Info("Expense rejected", slog.Int64("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(*expense), "Expense rejected successfully"))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Soft deletes an expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.SoftDeleteExpenseByID(c.Request.Context(), expenseID); err != nil {
		respondError(c, err, "delete expense")
		return
	}

	logger.Info("Expense deleted", slog.Int64("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.OK(nil, "Expense deleted successfully"))
}
