package document

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	docs := r.Group("/records/:id/documents")
	docs.Use(middleware.ContextLogger(logger))
	{
		docs.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetByRecordID,
		)

		docs.POST("/:slot",
			middleware.RateLimitByIP(1, 5),
			handler.Upload,
		)
	}
}
