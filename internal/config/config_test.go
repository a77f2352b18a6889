package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("UPLOAD_CONCURRENCY", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DISPLAY_TIMEZONE", "")
	t.Setenv("SETTINGS_ENCRYPTION_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverDynamoDB, cfg.StoreDriver)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, 3, cfg.UploadConcurrency)
	assert.Equal(t, 5*time.Minute, cfg.EstimateCacheTTL)
	assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://mitsumori.example.com/")
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://mitsumori.example.com", cfg.BaseURL)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestValidate(t *testing.T) {
	base := Config{StoreDriver: StoreDriverDynamoDB, UploadConcurrency: 1, DisplayTimezone: "UTC"}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "postgres without url", mutate: func(c *Config) { c.StoreDriver = StoreDriverPostgres }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "mongo" }, wantErr: true},
		{name: "production without jwt secret", mutate: func(c *Config) { c.AppEnv = "production" }, wantErr: true},
		{name: "short encryption key", mutate: func(c *Config) { c.EncryptionKey = "short" }, wantErr: true},
		{name: "zero concurrency", mutate: func(c *Config) { c.UploadConcurrency = 0 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.DisplayTimezone = "Mars/Base" }, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
