package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

// ConnectGORMWithRetry membuka koneksi Postgres via GORM dan menunggu DB siap
// (berguna saat container DB belum selesai boot).
func ConnectGORMWithRetry(
	host, user, password, dbname, port, sslmode string,
	maxRetries int,
) (*gorm.DB, error) {
	logger := zap.L().Named("connection.postgres")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetConnMaxLifetime(time.Hour)

					logger.Info("✅ connected to postgres")
					return db, nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}

		lastErr = err
		logger.Warn("⚠️ postgres not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	logger := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = rdb.Ping(context.Background()).Err()
		if lastErr == nil {
			logger.Info("✅ connected to redis")
			return rdb, nil
		}

		logger.Warn("⚠️ redis not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(lastErr),
		)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry memastikan broker bisa dihubungi dulu, baru
// mengembalikan writer (writer sendiri lazy, tidak membuka koneksi).
func ConnectKafkaWithRetry(broker string, maxRetries int) (*kafkago.Writer, error) {
	logger := zap.L().Named("connection.kafka")

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		conn, err := kafkago.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			logger.Info("✅ connected to kafka")
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(broker),
				Balancer:               &kafkago.LeastBytes{},
				AllowAutoTopicCreation: true,
			}, nil
		}

		lastErr = err
		logger.Warn("⚠️ kafka not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}
