package app

import (
	"net/http"

	"employee-api/internal/employee"
	"employee-api/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
	}

	router.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := gormDB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
