package utils

import (
	"context"
	"log"
	"time"

	"salesbot/config"

	"github.com/go-redis/redis/v8"
)

// BookingStoreClient is the Redis client backing the booking record store.
var BookingStoreClient *redis.Client

// InitBookingStore initializes the Redis client for booking persistence.
// Only called when the booking store is configured to use Redis.
func InitBookingStore() {
	BookingStoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBookingDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BookingStoreClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Booking Store): %v", err)
	}
}

// GetBookingStoreClient returns the Redis client for booking persistence.
func GetBookingStoreClient() *redis.Client {
	if BookingStoreClient == nil {
		InitBookingStore()
	}
	return BookingStoreClient
}
