package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvc
}

func newAttachmentHandler(as portssvc.AttachmentSvc) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

func registerAttachmentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, attachmentService portssvc.AttachmentSvc) {
	h := newAttachmentHandler(attachmentService)

	attachments := rg.Group("/expenses/:id/attachments")
	{
		attachments.GET("", h.listAttachments)
		attachments.POST("", auth, h.addAttachment)
	}
}

// listAttachments godoc
// @Summary List attachments of an expense
// @Tags attachments
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.Response{data=[]dto.AttachmentResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /expenses/{id}/attachments [get]
func (h *attachmentHandler) listAttachments(c *gin.Context) {
	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.GetAttachmentsByExpenseID(c.Request.Context(), expenseID)
	if err != nil {
		respondError(c, err, "list attachments")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAttachmentResponses(attachments), "Attachments retrieved successfully"))
}

// addAttachment godoc
// @Summary Attach a file to an expense
// @Description Appends a file URL to an existing expense
// @Tags attachments
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param attachment body dto.AddAttachmentRequest true "Attachment"
// @Success 201 {object} dto.Response{data=dto.AttachmentResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /expenses/{id}/attachments [post]
func (h *attachmentHandler) addAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	attachment, err := h.attachmentService.AddAttachment(c.Request.Context(), expenseID, req.FileURL)
	if err != nil {
		respondError(c, err, "add attachment")
		return
	}

	logger.Info("Attachment added", slog.Int64("expense_id", expenseID), slog.Int64("attachment_id", attachment.AttachmentID))
	c.JSON(http.StatusCreated, dto.Created(dto.ToAttachmentResponse(*attachment), "Attachment added successfully"))
}
