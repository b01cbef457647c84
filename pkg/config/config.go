package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort        string
	SessionCookieName string
	HTTPTimeout       time.Duration

	// Posts API
	APIBaseURL string

	// Auth provider
	AuthURL       string
	AuthAnonKey   string
	AuthJWTSecret string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Object storage (S3 compatible)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	StorageBucket      string
	StoragePublicURL   string

	// Like animation flags: "memory" or "redis"
	LikeAnimationStore string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "3000"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sb-access-token"),
		HTTPTimeout:       getDuration("HTTP_TIMEOUT", 10*time.Second),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),

		AuthURL:       getEnv("AUTH_URL", "http://localhost:54321"),
		AuthAnonKey:   getEnv("AUTH_ANON_KEY", ""),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		StorageBucket:      getEnv("STORAGE_BUCKET", "post-images"),
		StoragePublicURL:   getEnv("STORAGE_PUBLIC_URL", ""),

		LikeAnimationStore: getEnv("LIKE_ANIMATION_STORE", "memory"),
	}

	return config, nil
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
