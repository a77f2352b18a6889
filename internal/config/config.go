package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
)

// Config holds every runtime knob of the API. It is built once in main and
// passed down by value; nothing below the routes package reads the environment.
type Config struct {
	Port    int
	AppEnv  string
	BaseURL string

	StoreDriver string
	DatabaseURL string
	DBMaxOpen   int
	DBMaxIdle   int

	RedisAddr        string
	RedisPassword    string
	EstimateCacheTTL time.Duration

	GalleryBucket        string
	GalleryPublicBaseURL string
	StorageEmulatorHost  string
	UploadConcurrency    int
	MaxUploadBytes       int64

	JWTSecret     string
	SessionTTL    time.Duration
	CookieSecure  bool
	EncryptionKey string

	CORSAllowOrigins []string
	DisplayTimezone  string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Port:    getEnvInt("PORT", 8080),
		AppEnv:  getEnv("APP_ENV", "development"),
		BaseURL: strings.TrimRight(getEnv("BASE_URL", "http://localhost:3000"), "/"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverDynamoDB)),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBMaxOpen:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdle:   getEnvInt("DB_MAX_IDLE_CONNS", 5),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		EstimateCacheTTL: getEnvDuration("ESTIMATE_CACHE_TTL", 5*time.Minute),

		GalleryBucket:        getEnv("GALLERY_BUCKET", "estimate-gallery"),
		GalleryPublicBaseURL: getEnv("GALLERY_PUBLIC_BASE_URL", ""),
		StorageEmulatorHost:  getEnv("STORAGE_EMULATOR_HOST", ""),
		UploadConcurrency:    getEnvInt("UPLOAD_CONCURRENCY", 3),
		MaxUploadBytes:       int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		EncryptionKey: getEnv("SETTINGS_ENCRYPTION_KEY", ""),

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DisplayTimezone:  getEnv("DISPLAY_TIMEZONE", "Asia/Tokyo"),

		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverDynamoDB:
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("invalid config: DATABASE_URL is required for STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("invalid config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.JWTSecret == "" && c.IsProduction() {
		return fmt.Errorf("invalid config: JWT_SECRET must be set in production")
	}
	if c.EncryptionKey != "" && len(c.EncryptionKey) != 32 {
		return fmt.Errorf("invalid config: SETTINGS_ENCRYPTION_KEY must be 32 bytes")
	}
	if c.UploadConcurrency <= 0 {
		return fmt.Errorf("invalid config: UPLOAD_CONCURRENCY must be positive")
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid config: DISPLAY_TIMEZONE: %w", err)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

// Location returns the display timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
