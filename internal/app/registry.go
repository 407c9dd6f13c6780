package app

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/admin"
	"github.com/TrueLearn-Academy/Emp-agent/internal/audit"
	"github.com/TrueLearn-Academy/Emp-agent/internal/document"
	"github.com/TrueLearn-Academy/Emp-agent/internal/export"
	"github.com/TrueLearn-Academy/Emp-agent/internal/messaging/kafka"
	"github.com/TrueLearn-Academy/Emp-agent/internal/middleware"
	"github.com/TrueLearn-Academy/Emp-agent/internal/rbac"
	"github.com/TrueLearn-Academy/Emp-agent/internal/record"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/counter"
	"github.com/TrueLearn-Academy/Emp-agent/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	adminRepo := admin.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	recordRepo := record.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	adminService := admin.NewService(adminRepo, logger)
	auditService := audit.NewService(auditRepo, logger)
	documentStorage := document.NewLocalStorage(cfg.UploadDir)
	documentService := document.NewService(documentRepo, documentStorage, rdb, logger)
	exportService := export.NewService(recordRepo, logger)
	recordService := record.NewService(
		gormDB, recordRepo, documentRepo, counterRepo, outboxRepo, rdb,
		record.Policy{RequireDocuments: cfg.RequireDocuments},
		logger,
	)
	workflowService := workflow.NewService(gormDB, recordRepo, auditRepo, outboxRepo, rdb, logger)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	exportHandler := export.NewHandler(exportService, logger)
	recordHandler := record.NewHandlerWithRedis(recordService, rdb, logger)
	workflowHandler := workflow.NewHandler(workflowService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		admin.RegisterRoutes(api, adminHandler, rbacService)
		audit.RegisterRoutes(api, auditHandler, rbacService)
		document.RegisterRoutes(api, documentHandler, logger)
		export.RegisterRoutes(api, exportHandler, rbacService)
		record.RegisterRoutes(api, recordHandler, rbacService, rdb, logger)
		workflow.RegisterRoutes(api, workflowHandler, rbacService)
	}

	return nil
}
