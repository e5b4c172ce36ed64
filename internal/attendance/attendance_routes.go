package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read_all"),
			handler.GetAll,
		)

		attendance.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read_self"),
			handler.GetMine,
		)

		attendance.GET("/:email",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read_all"),
			handler.GetByEmail,
		)

		attendance.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			handler.Mark,
		)
	}
}
