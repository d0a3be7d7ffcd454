package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port        string        `mapstructure:"port"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// DatasetConfig points at an optional dataset loaded at startup. When both
// are empty the bundled sample dataset is used.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url"`
}

// ReportConfig holds the report parameter defaults.
type ReportConfig struct {
	Top       int     `mapstructure:"top"`
	Bottom    int     `mapstructure:"bottom"`
	ROITarget float64 `mapstructure:"roi_target"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file and FESTROI_* environment
// overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FESTROI")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.http_timeout", 15*time.Second)
	v.SetDefault("report.top", 3)
	v.SetDefault("report.bottom", 0)
	v.SetDefault("report.roi_target", 0.2)
	v.SetDefault("logging.level", "info")
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Server.HTTPTimeout <= 0 {
		return fmt.Errorf("server.http_timeout must be positive")
	}
	if c.Report.Top < 0 || c.Report.Bottom < 0 {
		return fmt.Errorf("report.top and report.bottom must be non-negative")
	}
	return nil
}

// LogLevel maps the configured level string onto slog.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
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
