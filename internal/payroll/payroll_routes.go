package payroll

import (
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read_all"),
			handler.GetAll,
		)

		payrolls.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "summary"),
			handler.Summary,
		)

		payrolls.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read_employee"),
			handler.GetByEmployee,
		)

		payrolls.GET("/employee/:employeeId/trend",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "trend"),
			handler.Trend,
		)

		// Generation is guarded by the idempotency middleware so a retried
		// request replays the stored result instead of re-running the batch.
		payrolls.POST("/generate",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "payroll", "generate"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)

		payrolls.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "payroll", "update_status"),
			handler.UpdateStatus,
		)
	}
}
