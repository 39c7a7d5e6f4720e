package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver string
	DBDSN    string

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionBackend   string
	SessionTTL       time.Duration
	SessionSweepSpec string

	JWTSecret string

	MediaRoot      string
	MediaBaseURL   string
	MaxUploadBytes int64

	LoginRate string

	LogLevel string
	LogJSON  bool

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBDSN:            getEnv("DB_DSN", "user:password@tcp(localhost:3306)/floodwatch?charset=utf8mb4&parseTime=True&loc=UTC"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		SessionBackend:   strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		SessionTTL:       getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionSweepSpec: getEnv("SESSION_SWEEP_SPEC", "@every 10m"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		MediaRoot:        getEnv("MEDIA_ROOT", "./media"),
		MediaBaseURL:     strings.TrimRight(getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"), "/"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
		LoginRate:        getEnv("LOGIN_RATE", "20-M"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogJSON:          getEnvBool("LOG_JSON", false),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
