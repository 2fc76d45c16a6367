package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/holiday-calendar/internal/calendar"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultCacheDir       = "HolidayData"
	defaultServerAddr     = ":8080"
)

// Config represents application configuration
type Config struct {
	Sources SourcesConfig `mapstructure:"sources"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Notify  NotifyConfig  `mapstructure:"notify"`
}

// SourcesConfig represents the remote holiday feeds
type SourcesConfig struct {
	PrimaryURL     string `mapstructure:"primary_url"`
	BackupURL      string `mapstructure:"backup_url"` // {year} is substituted
	RequestTimeout string `mapstructure:"request_timeout"`
	MinYear        int    `mapstructure:"min_year"`
}

// CacheConfig represents the per-year flat file cache
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// NotifyConfig selects how an unavailable year is reported
type NotifyConfig struct {
	Mode string `mapstructure:"mode"` // "dialog" or "log"
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-calendar")
		v.AddConfigPath("/etc/holiday-calendar")
	}

	// Read environment variables, e.g. HOLIDAY_CACHE_DIR
	v.SetEnvPrefix("holiday")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sources.primary_url", calendar.DefaultPrimaryURL)
	v.SetDefault("sources.backup_url", calendar.DefaultBackupURL)
	v.SetDefault("sources.request_timeout", defaultRequestTimeout.String())
	v.SetDefault("sources.min_year", calendar.DefaultMinYear)
	v.SetDefault("cache.dir", defaultCacheDir)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", defaultServerAddr)
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("notify.mode", "dialog")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sources.PrimaryURL == "" {
		return fmt.Errorf("sources.primary_url is required")
	}
	if c.Sources.BackupURL == "" {
		return fmt.Errorf("sources.backup_url is required")
	}
	if !strings.Contains(c.Sources.BackupURL, "{year}") {
		return fmt.Errorf("sources.backup_url must contain a {year} placeholder")
	}
	if c.Sources.MinYear <= 0 {
		return fmt.Errorf("sources.min_year must be positive")
	}
	if c.Sources.RequestTimeout != "" {
		if _, err := time.ParseDuration(c.Sources.RequestTimeout); err != nil {
			return fmt.Errorf("sources.request_timeout: %w", err)
		}
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}

	switch c.Notify.Mode {
	case "dialog", "log":
	default:
		return fmt.Errorf("notify.mode must be 'dialog' or 'log', got '%s'", c.Notify.Mode)
	}

	return nil
}

// GetRequestTimeout returns the per-request timeout for each source
func (c *SourcesConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout == "" {
		return defaultRequestTimeout
	}
	duration, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || duration <= 0 {
		return defaultRequestTimeout
	}
	return duration
}

// GetShutdownTimeout returns the graceful shutdown timeout of the HTTP API
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 5 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Cache.Dir = os.ExpandEnv(c.Cache.Dir)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
