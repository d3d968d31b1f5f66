package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reimbursementHandler handles HTTP requests related to reimbursements.
type reimbursementHandler struct {
	reimbursementService portssvc.ReimbursementSvcFacade
}

func newReimbursementHandler(rs portssvc.ReimbursementSvcFacade) *reimbursementHandler {
	return &reimbursementHandler{reimbursementService: rs}
}

// registerReimbursementRoutes registers the reimbursement routes, all restricted to managers and finance.
func registerReimbursementRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, reimbursementService portssvc.ReimbursementSvcFacade) {
	h := newReimbursementHandler(reimbursementService)

	reimbursements := rg.Group("/reimbursements", auth, middleware.RequireRoles(reimbursementRoles...))
	{
		reimbursements.POST("", h.createReimbursement)
		reimbursements.GET("/user/:userId", h.listReimbursementsByUser)
		reimbursements.GET("/:id", h.getReimbursement)
	}
}

// createReimbursement godoc
// @Summary Reimburse an approved expense
// @Description Records a reimbursement for an APPROVED expense. Each expense can be reimbursed once.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param reimbursement body dto.CreateReimbursementRequest true "Reimbursement"
// @Success 200 {object} dto.Response{data=dto.ReimbursementResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /reimbursements [post]
func (h *reimbursementHandler) createReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	processorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateReimbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reimbursement, err := h.reimbursementService.CreateReimbursement(c.Request.Context(), req, processorID)
	if err != nil {
		respondError(c, err, "create reimbursement")
		return
	}

	logger.Info("Expense reimbursed",
		slog.Int64("reimbursement_id", reimbursement.ReimbursementID),
		slog.Int64("expense_id", req.ExpenseID))
	c.JSON(http.StatusOK, dto.OK(dto.ToReimbursementResponse(*reimbursement), "Reimbursement processed successfully"))
}

// getReimbursement godoc
// @Summary Get a reimbursement by ID
// @Tags reimbursements
// @Produce json
// @Param id path int true "Reimbursement ID"
// @Success 200 {object} dto.Response{data=dto.ReimbursementResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /reimbursements/{id} [get]
func (h *reimbursementHandler) getReimbursement(c *gin.Context) {
	reimbursementID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	reimbursement, err := h.reimbursementService.GetReimbursementByID(c.Request.Context(), reimbursementID)
	if err != nil {
		respondError(c, err, "get reimbursement")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReimbursementResponse(*reimbursement), "Reimbursement retrieved successfully"))
}

// listReimbursementsByUser godoc
// @Summary List a user's reimbursements
// @Tags reimbursements
// @Produce json
// @Param userId path int true "User ID"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=dto.PageResponse[dto.ReimbursementResponse]}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /reimbursements/user/{userId} [get]
func (h *reimbursementHandler) listReimbursementsByUser(c *gin.Context) {
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.reimbursementService.GetReimbursementsByUser(c.Request.Context(), userID, pageRequest(params))
	if err != nil {
		respondError(c, err, "list reimbursements")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReimbursementPageResponse(page), "Reimbursements retrieved successfully"))
}
