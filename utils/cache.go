// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tutorhub/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces token-hash cache keys.
const AuthCachePrefix = "auth:"

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient holds short-lived one-time codes.
	OTPCacheClient *redis.Client
)

// InitRedis brings up every Redis client the service uses.
func InitRedis() {
	InitAuthCache()
	InitOTPCache()
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitOTPCache initializes the Redis client for OTP storage.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}

// CacheAuthToken stores a token hash for fast middleware checks.
func CacheAuthToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// DropAuthToken evicts a cached token hash, forcing re-authentication.
func DropAuthToken(ctx context.Context, userID string) error {
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}
