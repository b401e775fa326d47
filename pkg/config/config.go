package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Dataset struct {
		Path            string `yaml:"path" json:"path" jsonschema:"default=fake_news_labeled_sample_small.csv,description=Path to the labeled dataset CSV"`
		TimestampColumn string `yaml:"timestamp_column" json:"timestamp_column" jsonschema:"default=tweetcreatedts,description=Name of the optional timestamp column"`
	} `yaml:"dataset" json:"dataset" jsonschema:"description=Input dataset configuration"`

	Analytics struct {
		SmoothingWindow int `yaml:"smoothing_window" json:"smoothing_window" jsonschema:"default=4,minimum=1,description=Trailing window in weeks for rolling averages"`
		PreviewRows     int `yaml:"preview_rows" json:"preview_rows" jsonschema:"default=20,minimum=1,description=Rows shown on the dataset preview panel"`
	} `yaml:"analytics" json:"analytics" jsonschema:"description=Trend analytics configuration"`

	Database struct {
		DSN          string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newspulse?mode=memory&cache=shared,description=SQLite connection string for the in-memory store"`
		MaxOpenConns int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	} `yaml:"database" json:"database" jsonschema:"description=Record store configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for dataset
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "fake_news_labeled_sample_small.csv"
	}
	if cfg.Dataset.TimestampColumn == "" {
		cfg.Dataset.TimestampColumn = "tweetcreatedts"
	}

	// set defaults for analytics
	if cfg.Analytics.SmoothingWindow == 0 {
		cfg.Analytics.SmoothingWindow = 4
	}
	if cfg.Analytics.PreviewRows == 0 {
		cfg.Analytics.PreviewRows = 20
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newspulse?mode=memory&cache=shared"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Analytics.SmoothingWindow < 1 {
		return fmt.Errorf("analytics.smoothing_window must be at least 1")
	}
	if cfg.Analytics.PreviewRows < 1 {
		return fmt.Errorf("analytics.preview_rows must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
