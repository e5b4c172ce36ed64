package reports

import (
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/employees",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "reports", "read"),
			handler.Employees,
		)

		reports.GET("/attendance",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "reports", "read"),
			handler.Attendance,
		)

		reports.GET("/leaves",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "reports", "read"),
			handler.Leaves,
		)

		reports.GET("/payroll",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "reports", "read"),
			handler.Payrolls,
		)

		reports.GET("/overview",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "reports", "read"),
			handler.Overview,
		)

		reports.GET("/me/:email",
			middleware.RateLimitByUser(2, 8),
			middleware.RBACAuthorize(rbacService, "reports", "read_self"),
			handler.Self,
		)
	}
}
