package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 3000
	defaultBroadcastDelay = 50 * time.Millisecond
	defaultLogLevel       = "info"
)

// Config holds all application configuration
type Config struct {
	BotToken       string         `yaml:"bot_token" envconfig:"BOT_TOKEN"`
	Webhook        WebhookConfig  `yaml:"webhook"`
	Port           int            `yaml:"port" envconfig:"PORT"`
	AdminHandles   []string       `yaml:"admin_usernames" envconfig:"ADMIN_USERNAMES"`
	BroadcastDelay time.Duration  `yaml:"broadcast_delay" envconfig:"BROADCAST_DELAY"`
	LogLevel       string         `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Database       DatabaseConfig `yaml:"database"`
}

// WebhookConfig holds webhook registration settings
type WebhookConfig struct {
	URL         string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Secret      string `yaml:"secret" envconfig:"WEBHOOK_SECRET"`
	SecretToken string `yaml:"secret_token" envconfig:"WEBHOOK_SECRET_TOKEN"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// Load reads configuration from an optional .env file, an optional YAML
// file (CONFIG_PATH) and environment variables, in that order.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	envPath := os.Getenv("ENV_PATH")
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills defaults
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	// Validate required fields
	if strings.TrimSpace(cfg.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if strings.TrimSpace(cfg.Webhook.URL) == "" {
		return fmt.Errorf("WEBHOOK_URL is required")
	}
	if strings.TrimSpace(cfg.Webhook.Secret) == "" {
		return fmt.Errorf("WEBHOOK_SECRET is required")
	}
	if cfg.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	cfg.Webhook.URL = strings.TrimRight(strings.TrimSpace(cfg.Webhook.URL), "/")

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Port < 0 {
		return fmt.Errorf("PORT must be > 0")
	}
	if cfg.BroadcastDelay == 0 {
		cfg.BroadcastDelay = defaultBroadcastDelay
	}
	if cfg.BroadcastDelay < 0 {
		return fmt.Errorf("BROADCAST_DELAY must be >= 0")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	handles := cfg.AdminHandles[:0]
	for _, h := range cfg.AdminHandles {
		h = strings.TrimPrefix(strings.TrimSpace(h), "@")
		if h != "" {
			handles = append(handles, h)
		}
	}
	cfg.AdminHandles = handles

	db := &cfg.Database
	db.Host = orDefault(db.Host, "localhost")
	db.Port = orDefault(db.Port, "5432")
	db.Name = orDefault(db.Name, "wishlist")
	db.User = orDefault(db.User, "wishlist")
	db.SSLMode = orDefault(db.SSLMode, "disable")
	if db.MaxConnections <= 0 {
		db.MaxConnections = 25
	}

	return nil
}

// WebhookPath returns the local path the webhook is served on
func (c *Config) WebhookPath() string {
	return "/bot/" + c.Webhook.Secret
}

// WebhookEndpoint returns the public webhook URL registered with the platform
func (c *Config) WebhookEndpoint() string {
	return c.Webhook.URL + c.WebhookPath()
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func orDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
