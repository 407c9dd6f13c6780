package audit

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
	trail := r.Group("/admin/records/:id/audit-logs")
	trail.Use(middleware.AuthMiddleware())
	{
		trail.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "audit", "read"),
			handler.ListForRecord,
		)
	}
}
