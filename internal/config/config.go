package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"mandir/internal/cache"
	"mandir/internal/database"
	"mandir/internal/mailer"
)

// Config holds the application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Per-process read cache freshness window
	CacheTTL time.Duration

	// Rate limit for the notification endpoint
	NotifyRPS   float64
	NotifyBurst int

	JWTSecret     string
	TokenTTLMin   int
	BcryptCost    int
	RedisEnabled  bool

	Database database.Config
	Redis    cache.RedisConfig
	Mail     mailer.Config
}

// Load reads configuration from the environment. A .env file is honored
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SEC", 30)) * time.Second,

		NotifyRPS:   float64(getEnvInt("NOTIFY_RATE_RPS", 2)),
		NotifyBurst: getEnvInt("NOTIFY_RATE_BURST", 5),

		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLMin:  getEnvInt("TOKEN_TTL_MIN", 60),
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
		RedisEnabled: getEnv("REDIS_ENABLED", "true") == "true",

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "mandir"),
			Password:           getEnv("DB_PASSWORD", "mandir123"),
			DBName:             getEnv("DB_NAME", "mandir"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Redis: cache.RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "mandir:resp"),
			TTL:      time.Duration(getEnvInt("REDIS_TTL_SEC", 60)) * time.Second,
		},

		Mail: mailer.Config{
			Provider:     getEnv("MAIL_PROVIDER", "resend"),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			ResendURL:    getEnv("RESEND_URL", "https://api.resend.com"),
			From:         getEnv("MAIL_FROM", "Temple Notifications <onboarding@resend.dev>"),
			SMTPHost:     getEnv("SMTP_HOST", "localhost"),
			SMTPPort:     getEnvInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			Timeout:      time.Duration(getEnvInt("MAIL_TIMEOUT_SEC", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
