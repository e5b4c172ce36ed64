package auth

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/signup", middleware.RateLimitByIP(0.1, 3), handler.Signup)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)

		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/complete-profile", middleware.AuthMiddleware(), middleware.RateLimitByUser(1, 3), handler.CompleteProfile)
		auth.PUT("/profile", middleware.AuthMiddleware(), middleware.RateLimitByUser(1, 3), handler.UpdateProfile)
	}
}
