package workflow

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
	transitions := r.Group("/admin/records/:id")
	transitions.Use(middleware.AuthMiddleware())
	transitions.Use(middleware.ExtractUserID())
	{
		transitions.POST("/verify",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "record", "transition"),
			handler.Verify,
		)

		transitions.POST("/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "record", "transition"),
			handler.Reject,
		)
	}
}
