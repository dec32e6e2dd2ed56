package utils

import (
	"context"
	"log"
	"time"

	"staycation/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingCacheClient holds booking flow sessions.
var BookingCacheClient *redis.Client

// InitBookingCache initializes the Redis client for booking sessions (using DB from AppConfig).
func InitBookingCache() {
	BookingCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBookingDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BookingCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Booking Cache): %v", err)
	}
}

// GetBookingCacheClient returns the Redis client for booking sessions.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}

// ReminderQueueOpt is the asynq connection for the reminder queue.
func ReminderQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}
