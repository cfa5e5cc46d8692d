package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/config"
)

type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Storage    StorageConfig    `yaml:"storage"`
	Generation GenerationConfig `yaml:"generation"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type StorageConfig struct {
	// Path to the SQLite database file holding the journal.
	Path string `yaml:"path"`
}

type GenerationConfig struct {
	APIKey          string        `yaml:"api_key"`
	Model           string        `yaml:"model"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxOutputTokens int32         `yaml:"max_output_tokens"`
}

type SchedulerConfig struct {
	Enabled bool `yaml:"enabled"`
}

type SMTPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
	ToEmail   string `yaml:"to_email"`
	UseTLS    bool   `yaml:"use_tls"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	configPath := getEnv("CONFIG_PATH", "./config/base.yaml")

	provider, err := config.NewYAML(
		config.File(configPath),
		config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables if present
func (c *Config) overrideFromEnv() {
	if val := os.Getenv("SERVICE_NAME"); val != "" {
		c.Service.Name = val
	}
	if val := os.Getenv("SERVICE_ENVIRONMENT"); val != "" {
		c.Service.Environment = val
	}
	if val := os.Getenv("STORAGE_PATH"); val != "" {
		c.Storage.Path = val
	}
	if val := os.Getenv("GENAI_API_KEY"); val != "" {
		c.Generation.APIKey = val
	}
	if val := os.Getenv("GENAI_MODEL"); val != "" {
		c.Generation.Model = val
	}
	if val := os.Getenv("SCHEDULER_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Scheduler.Enabled = enabled
		}
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USERNAME"); val != "" {
		c.SMTP.Username = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM_EMAIL"); val != "" {
		c.SMTP.FromEmail = val
	}
	if val := os.Getenv("SMTP_TO_EMAIL"); val != "" {
		c.SMTP.ToEmail = val
	}
	if val := os.Getenv("SMTP_USE_TLS"); val != "" {
		if useTLS, err := strconv.ParseBool(val); err == nil {
			c.SMTP.UseTLS = useTLS
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}
}

func (c *Config) applyDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = "./data/journal.db"
	}
	if c.Generation.Model == "" {
		c.Generation.Model = "gemini-2.0-flash"
	}
	if c.Generation.Timeout == 0 {
		c.Generation.Timeout = 30 * time.Second
	}
	if c.Generation.MaxOutputTokens == 0 {
		c.Generation.MaxOutputTokens = 512
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
