package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
)

func GetRedisDB() *redis.Client {
	return rdb
}

func redisAddress() string {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Printf("REDIS_ADDRESS not set; defaulting to %s", redisAddr)
	}
	return redisAddr
}

// ConnectRedisWithRetry connects and sets the global Redis client.
// Redis only backs the rate limiter, so the caller bounds the attempts and
// runs without it when every attempt fails.
func ConnectRedisWithRetry(ctx context.Context, maxAttempts int) (*redis.Client, error) {
	redisAddr := redisAddress()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: "",
			DB:       0, // use default DB
			PoolSize: 100,
		})
		err := client.Ping(ctx).Err()
		if err == nil {
			rdb = client
			log.Printf("connected to redis (attempt=%d addr=%s)", attempt, redisAddr)
			return client, nil
		}
		_ = client.Close()
		lastErr = err

		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > 30*time.Second {
			sleep = 30 * time.Second
		}
		log.Printf("failed to connect redis (attempt=%d addr=%s): %v; retrying in %s", attempt, redisAddr, err, sleep)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
	return nil, lastErr
}
