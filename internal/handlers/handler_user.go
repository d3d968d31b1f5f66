package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes. Every route requires a bearer token.
func registerUserRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users", auth)
	{
		users.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createUser)
		users.GET("/:id", h.getUser)
		users.GET("/:id/profile", h.getProfile)
		users.PUT("/:id", h.updateUser) // Own or admin
		users.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a user with an explicit role (admin only). Defaults to EMPLOYEE.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Param   role query string false "Role" Enums(EMPLOYEE, MANAGER, FINANCIAL, ADMIN)
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role := domain.RoleEmployee
	if raw := c.Query("role"); raw != "" {
		parsed, ok := domain.ParseRole(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Error("Invalid role: "+raw, http.StatusBadRequest))
			return
		}
		role = parsed
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, role)
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	logger.Info("User created", slog.Int64("user_id", user.UserID), slog.String("role", string(role)))
	c.JSON(http.StatusCreated, dto.Created(dto.ToUserResponse(*user), "User created successfully"))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user by their ID
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user), "User retrieved successfully"))
}

// getProfile godoc
// @Summary Get a user's profile
// @Description Retrieves the public profile (full name, email, role) of a user
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.Response{data=dto.ProfileResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id}/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "get user profile")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProfileResponse(*user), "Profile retrieved successfully"))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates a user's details. Users may only update themselves unless they are an admin.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   user body dto.UpdateUserRequest true "User details to update"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	callerID, ok := currentUser(c)
	if !ok {
		return
	}
	if role, _ := middleware.GetRoleFromContext(c); callerID != userID && role != domain.RoleAdmin {
		logger.Warn("Attempt to update another user", slog.Int64("caller_id", callerID), slog.Int64("target_user_id", userID))
		c.JSON(http.StatusForbidden, dto.Error("You can only update your own account", http.StatusForbidden))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "update user")
		return
	}

	logger.Info("User updated", slog.Int64("user_id", userID))
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user), "User updated successfully"))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Marks a user as deleted (soft delete). Admin only.
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err, "delete user")
		return
	}

	logger.Info("User deleted", slog.Int64("user_id", userID))
	c.JSON(http.StatusOK, dto.OK(nil, "User deleted successfully"))
}
