package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer tokens
// and stores the user ID and role in the request context. Tokens must carry the
// configured issuer when one is set.
func AuthMiddleware(jwtSecret, jwtIssuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header required", http.StatusUnauthorized))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header format must be Bearer {token}", http.StatusUnauthorized))
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret, jwtIssuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(msg, http.StatusUnauthorized))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Error("User ID (subject) missing or malformed in valid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Invalid token claims", http.StatusUnauthorized))
			return
		}

		role, ok := domain.ParseRole(claims.Role)
		if !ok {
			logger.Warn("Unknown role in token", slog.String("role", claims.Role))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Invalid token claims", http.StatusUnauthorized))
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.Int64("user_id", userID), slog.String("role", string(role)))
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Set(string(userIDKey), userID)
		c.Set(string(roleKey), role)

		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user holds one of roles.
// It must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetRoleFromContext(c)
		if !ok {
			logger.Warn("Role check without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Unauthorized", http.StatusUnauthorized))
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		logger.Warn("User role not permitted for route", slog.String("role", string(role)), slog.String("route", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("You do not have permission to perform this action", http.StatusForbidden))
	}
}
