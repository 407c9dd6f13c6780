package export

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/middleware"
	"github.com/TrueLearn-Academy/Emp-agent/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	exports := r.Group("/admin/records/export")
	exports.Use(middleware.AuthMiddleware())
	{
		exports.GET("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "export", "read"),
			handler.ExportRecords,
		)
	}
}
