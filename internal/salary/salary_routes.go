package salary

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
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read_all"),
			handler.GetAll,
		)

		salaries.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read_employee"),
			handler.GetByEmployee,
		)

		salaries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "write"),
			handler.Create,
		)

		salaries.PUT("/employee/:employeeId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "write"),
			handler.Update,
		)

		salaries.DELETE("/employee/:employeeId",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "salary", "write"),
			handler.Delete,
		)
	}
}
