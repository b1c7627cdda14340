package app

import (
	"os"

	"employee-api/internal/employee"
	"employee-api/internal/messaging/kafka"
	"employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

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

	if err := gormDB.AutoMigrate(&employee.Employee{}); err != nil {
		return err
	}
	if err := kafka.MigrateOutbox(gormDB); err != nil {
		return err
	}

	// Redis bersifat opsional: tanpa REDIS_ADDR, idempotency di-skip.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 3)
		if err != nil {
			logger.Warn("redis unavailable, idempotency disabled", zap.Error(err))
			rdb = nil
		}
	}

	return registerModules(router, gormDB, rdb, logger)
}
