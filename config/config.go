package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	NameMatchInsensitive = "insensitive"
	NameMatchSensitive   = "sensitive"
)

// Config holds every runtime setting of the service.
type Config struct {
	DatabaseURL        string   `validate:"required"`
	ServerPort         int      `validate:"min=1,max=65535"`
	LogLevel           string   `validate:"oneof=debug info warn error"`
	AthleteNameMatch   string   `validate:"oneof=insensitive sensitive"`
	ConflictStatusCode int      `validate:"oneof=303 409"`
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
	JWTSecretKey       string
	R2                 R2Config
}

// R2Config is optional, but once one field is set all of them are required.
type R2Config struct {
	AccountID       string `validate:"required_with=AccessKeyID SecretAccessKey BucketName PublicBaseURL"`
	AccessKeyID     string `validate:"required_with=AccountID SecretAccessKey BucketName PublicBaseURL"`
	SecretAccessKey string `validate:"required_with=AccountID AccessKeyID BucketName PublicBaseURL"`
	BucketName      string `validate:"required_with=AccountID AccessKeyID SecretAccessKey PublicBaseURL"`
	PublicBaseURL   string `validate:"required_with=AccountID AccessKeyID SecretAccessKey BucketName"`
}

// Enabled reports whether athlete exports to object storage are configured.
func (c R2Config) Enabled() bool {
	return c.AccountID != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intFromEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	conflictStatus, err := intFromEnv("CONFLICT_STATUS_CODE", 303)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:        stringFromEnv("DATABASE_URL", "workout.db"),
		ServerPort:         port,
		LogLevel:           strings.ToLower(stringFromEnv("LOG_LEVEL", "info")),
		AthleteNameMatch:   strings.ToLower(stringFromEnv("ATHLETE_NAME_MATCH", NameMatchInsensitive)),
		ConflictStatusCode: conflictStatus,
		CORSAllowedOrigins: splitList(stringFromEnv("CORS_ALLOWED_ORIGINS", "*")),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CaseSensitiveNameMatch reports whether the nome filter compares case-sensitively.
func (c *Config) CaseSensitiveNameMatch() bool {
	return c.AthleteNameMatch == NameMatchSensitive
}

func stringFromEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
