// Package config loads service settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"resume-builder/internal/export"
)

const (
	DefaultPort            = 3000
	DefaultEnhanceEndpoint = "http://ai-service:8000/api/enhance-text"
	DefaultEnhanceTimeout  = "60s"
	DefaultExportTimeout   = "60s"
	DefaultBodyLimitMB     = 5
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Enhance  EnhanceConfig  `yaml:"enhance"`
	Export   ExportConfig   `yaml:"export"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port" validate:"min=1,max=65535"`
	BodyLimitMB int `yaml:"body_limit_mb" validate:"min=1"`
}

// EnhanceConfig points at the text enhancement gateway.
type EnhanceConfig struct {
	Endpoint string `yaml:"endpoint" validate:"required,url"`
	Timeout  string `yaml:"timeout" validate:"required"`
}

// ExportConfig controls PDF rasterization.
type ExportConfig struct {
	ChromePath   string  `yaml:"chrome_path"`
	Timeout      string  `yaml:"timeout" validate:"required"`
	Scale        float64 `yaml:"scale" validate:"gt=0,lte=4"`
	Format       string  `yaml:"format" validate:"oneof=letter legal a4"`
	Landscape    bool    `yaml:"landscape"`
	MarginInches float64 `yaml:"margin_inches" validate:"gte=0,lte=3"`
}

// DatabaseConfig enables export history when URL is set.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	opts := export.DefaultOptions()
	return &Config{
		Server: ServerConfig{Port: DefaultPort, BodyLimitMB: DefaultBodyLimitMB},
		Enhance: EnhanceConfig{
			Endpoint: DefaultEnhanceEndpoint,
			Timeout:  DefaultEnhanceTimeout,
		},
		Export: ExportConfig{
			Timeout:      DefaultExportTimeout,
			Scale:        opts.Scale,
			Format:       opts.Format,
			Landscape:    opts.Landscape,
			MarginInches: opts.MarginInches,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads path (if non-empty and present), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ENHANCE_API_URL"); v != "" {
		c.Enhance.Endpoint = v
	}
	if v := os.Getenv("ENHANCE_TIMEOUT"); v != "" {
		// Bare numbers are seconds.
		if _, err := strconv.Atoi(v); err == nil {
			v += "s"
		}
		c.Enhance.Timeout = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.Export.ChromePath = v
	}
	if v := os.Getenv("EXPORTS_DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	return nil
}

// Validate checks field constraints and duration syntax.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := parsePositive(c.Enhance.Timeout); err != nil {
		return fmt.Errorf("invalid config: enhance.timeout: %w", err)
	}
	if _, err := parsePositive(c.Export.Timeout); err != nil {
		return fmt.Errorf("invalid config: export.timeout: %w", err)
	}
	return nil
}

// EnhanceTimeout is the HTTP client timeout for enhancement calls.
func (c *Config) EnhanceTimeout() time.Duration {
	d, _ := parsePositive(c.Enhance.Timeout)
	return d
}

func (c *Config) ExportTimeout() time.Duration {
	d, _ := parsePositive(c.Export.Timeout)
	return d
}

// ExportOptions converts the export section into rasterizer options.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Scale:        c.Export.Scale,
		Format:       c.Export.Format,
		Landscape:    c.Export.Landscape,
		MarginInches: c.Export.MarginInches,
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func parsePositive(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
