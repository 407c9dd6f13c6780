package admin

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/middleware"
	"github.com/TrueLearn-Academy/Emp-agent/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	auth := r.Group("/admin/auth")
	{
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)

		// Pendaftaran admin baru hanya oleh SUPER_ADMIN.
		auth.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "admin", "manage"),
			handler.Register,
		)
	}
}
