package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vistaar/vistaar/internal/mail"
)

type Config struct {
	Port      string
	Env       string
	UploadDir string
	StaticDir string

	DatabaseURL string
	SQLitePath  string

	SMTP mail.SMTPConfig

	MaxUploadBytes int64

	LogLevel string
	LogFile  string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "production"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		StaticDir:   getEnv("STATIC_DIR", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "vistaar.db"),
		SMTP: mail.SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_USER", ""),
			To:       getEnv("ADMIN_EMAIL", ""),
		},
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}
}

// Debug reports whether error details may be shown to clients.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.Env, "development")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
