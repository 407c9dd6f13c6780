package record

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/middleware"
	"github.com/TrueLearn-Academy/Emp-agent/internal/rbac"

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
	// Wizard endpoints are public: pelamar belum punya akun saat onboarding.
	records := r.Group("/records")
	records.Use(middleware.ContextLogger(logger))
	{
		records.POST("",
			middleware.RateLimitByIP(0.5, 3),
			middleware.Idempotency(rdb),
			handler.CreateDraft,
		)

		records.GET("/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetById,
		)

		records.PATCH("/:id/sections/:section",
			middleware.RateLimitByIP(2, 10),
			handler.SaveSection,
		)

		records.POST("/:id/submit",
			middleware.RateLimitByIP(0.5, 3),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
	}

	admin := r.Group("/admin/records")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "record", "read"),
			handler.GetAll,
		)

		admin.GET("/stats",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "record", "read"),
			handler.GetStats,
		)

		admin.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "record", "read"),
			handler.GetById,
		)
	}
}
