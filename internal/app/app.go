package app

import (
	"os"
	"strconv"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Config struct {
	UploadDir        string
	RequireDocuments bool
}

func LoadConfig() Config {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	// Default true: submit tanpa dokumen lengkap ditolak.
	requireDocs := true
	if v := os.Getenv("REQUIRE_DOCUMENTS"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			requireDocs = parsed
		}
	}

	return Config{
		UploadDir:        uploadDir,
		RequireDocuments: requireDocs,
	}
}

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Register Modules & Routes
	return registerModules(router, gormDB, redisClient, LoadConfig())
}
