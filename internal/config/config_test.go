package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("WEBHOOK_URL", "https://example.org/")
	t.Setenv("WEBHOOK_SECRET", "s3cr3t")
	t.Setenv("DB_PASSWORD", "test_db_password")
	for _, key := range []string{"PORT", "ADMIN_USERNAMES", "BROADCAST_DELAY", "LOG_LEVEL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_SSLMODE", "DB_MAX_CONNECTIONS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
			SSLMode:  "disable",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestConfig_WebhookEndpoint(t *testing.T) {
	cfg := &Config{Webhook: WebhookConfig{URL: "https://example.org", Secret: "abc"}}

	assert.Equal(t, "/bot/abc", cfg.WebhookPath())
	assert.Equal(t, "https://example.org/bot/abc", cfg.WebhookEndpoint())
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "https://example.org", cfg.Webhook.URL)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.BroadcastDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AdminHandles)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wishlist", cfg.Database.Name)
	assert.Equal(t, "wishlist", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_USERNAMES", "@santa, elf ,")
	t.Setenv("BROADCAST_DELAY", "200ms")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"santa", "elf"}, cfg.AdminHandles)
	assert.Equal(t, 200*time.Millisecond, cfg.BroadcastDelay)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestLoad_YAMLFile(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("BOT_TOKEN")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "bot_token: yaml_token\nport: 9000\nadmin_usernames:\n  - grandfather\ndatabase:\n  name: gifts\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml_token", cfg.BotToken)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"grandfather"}, cfg.AdminHandles)
	assert.Equal(t, "gifts", cfg.Database.Name)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		message string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", message: "BOT_TOKEN"},
		{name: "missing webhook url", unset: "WEBHOOK_URL", message: "WEBHOOK_URL"},
		{name: "missing webhook secret", unset: "WEBHOOK_SECRET", message: "WEBHOOK_SECRET"},
		{name: "missing db password", unset: "DB_PASSWORD", message: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			os.Unsetenv(tt.unset)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNormalize_InvalidValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			BotToken: "t",
			Webhook:  WebhookConfig{URL: "https://x", Secret: "s"},
			Database: DatabaseConfig{Password: "p"},
		}
	}

	cfg := base()
	cfg.Port = -1
	assert.Error(t, Normalize(cfg))

	cfg = base()
	cfg.BroadcastDelay = -time.Second
	assert.Error(t, Normalize(cfg))

	assert.Error(t, Normalize(nil))
}
