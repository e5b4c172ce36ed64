package meeting

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
	meetings := r.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware())
	meetings.Use(middleware.ContextLogger(logger))
	{
		meetings.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "meeting", "manage"),
			handler.GetAll,
		)

		meetings.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "meeting", "read_self"),
			handler.GetMine,
		)

		meetings.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "meeting", "manage"),
			handler.GetById,
		)

		meetings.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "meeting", "manage"),
			handler.Create,
		)

		meetings.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "meeting", "manage"),
			handler.Update,
		)

		meetings.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "meeting", "manage"),
			handler.Delete,
		)
	}
}
