package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/cmd/docs"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}
	apiLimiter, err := middleware.NewMemoryLimiter(cfg.APIRateLimit)
	if err != nil {
		return fmt.Errorf("invalid API_RATE_LIMIT %q: %w", cfg.APIRateLimit, err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/", getHome)

	v1 := r.Group("/api/v1")

	// Register public authentication routes
	registerAuthRoutes(v1, services.User, services.Token, middleware.RateLimit(loginLimiter))

	// Everything else shares the API limiter; auth is applied per route group
	api := v1.Group("", middleware.RateLimit(apiLimiter))
	auth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	registerExpenseRoutes(api, auth, services.Expense)
	registerAttachmentRoutes(api, auth, services.Attachment)
	registerReimbursementRoutes(api, auth, services.Reimbursement)
	registerUserRoutes(api, auth, services.User)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// managers may decide on expenses.
var approverRoles = []domain.Role{domain.RoleManager, domain.RoleAdmin}

// reimbursementRoles may pay out and inspect reimbursements.
var reimbursementRoles = []domain.Role{domain.RoleManager, domain.RoleFinancial}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
