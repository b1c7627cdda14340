package employee

import (
	"employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.RequestID())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 30),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.GetById,
		)

		create := []gin.HandlerFunc{middleware.RateLimitByIP(1, 5)}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		create = append(create, handler.Create)
		employees.POST("", create...)

		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
