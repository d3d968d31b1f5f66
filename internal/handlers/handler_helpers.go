package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding rules on gin's validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		}
	})
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return domain.ExpenseCategory(fl.Field().String()).IsValid()
}

// respondError maps err onto a status code and writes the error envelope.
// Internal failures get a generic message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := apperrors.StatusCode(err)

	var appErr *apperrors.AppError
	message := "Internal server error"
	switch {
	case code >= http.StatusInternalServerError:
		// Only precondition failures carry a message meant for clients.
		if errors.Is(err, apperrors.ErrPreconditionFailed) && errors.As(err, &appErr) {
			message = appErr.Message
		}
	case errors.As(err, &appErr) && appErr.Code != 0:
		message = appErr.Message
	case code == http.StatusNotFound:
		message = "Resource not found"
	case code == http.StatusBadRequest:
		message = "Invalid request: " + err.Error()
	case errors.Is(err, apperrors.ErrInvalidState):
		message = "The resource is not in a valid state for this operation"
	case errors.Is(err, apperrors.ErrDuplicate):
		message = "Resource already exists"
	case code == http.StatusUnauthorized:
		message = "Unauthorized"
	case code == http.StatusForbidden:
		message = "Forbidden"
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected while trying to "+action,
			slog.Int("status", code),
			slog.String("error", err.Error()))
	}
	c.JSON(code, dto.Error(message, code))
}

// respondBindError writes a 400 for a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Error("Invalid request format: "+err.Error(), http.StatusBadRequest))
}

// int64Param parses a positive int64 path parameter, writing a 400 when it is malformed.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid "+name+": must be a positive integer", http.StatusBadRequest))
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user ID, writing a 401 when absent.
func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized", http.StatusUnauthorized))
		return 0, false
	}
	return userID, true
}

func pageRequest(p dto.PageParams) domain.PageRequest {
	return domain.NewPageRequest(p.Page, p.Size)
}
