package config

// Redis backs distributed rate limiting only; resource reads always hit
// the relational store.  A failed connection at startup yields a nil
// client and callers disable rate limiting instead of refusing to boot.

import (
	"context"
	"crypto/tls"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from the REDIS_* environment variables
// and pings it with a short timeout.  It returns nil when no server can
// be reached.
func NewRedisClient() *redis.Client {
	opts := &redis.Options{
		Addr:     redisAddr(),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB", 0),
	}
	if envBool("REDIS_TLS", false) {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// redisAddr resolves the server address.  An explicit REDIS_HOST and
// REDIS_PORT pair wins over the REDIS_ADDR shorthand.
func redisAddr() string {
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		return host + ":" + port
	}
	return envStr("REDIS_ADDR", "localhost:6379")
}
