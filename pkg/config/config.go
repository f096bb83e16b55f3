// Package config loads the process settings and holds the process-wide
// registries shared by the HTTP handlers.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"hypnosis-landing/internal/theme"
)

// Defaults
const (
	DefaultAddr          = ":8080"
	DefaultConfigFile    = "landing.yaml"
	DefaultExportDir     = "dist"
	DefaultWatchInterval = 2 * time.Second
	EnvPrefix            = "LANDING"
)

// Config holds every setting the commands read
type Config struct {
	Addr          string        `mapstructure:"addr"`
	Theme         string        `mapstructure:"theme"`
	ContentFile   string        `mapstructure:"content_file"`
	Dev           bool          `mapstructure:"dev"`
	LogLevel      string        `mapstructure:"log_level"`
	ExportDir     string        `mapstructure:"export_dir"`
	SiteURL       string        `mapstructure:"site_url"`
	WatchInterval time.Duration `mapstructure:"watch_interval"`
}

// New returns a viper instance with defaults and environment bindings set.
// configFile is read when given; otherwise landing.yaml is read if it exists
// in the working directory.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("addr", DefaultAddr)
	// PORT, as set by most hosting platforms, only moves the default
	if port := os.Getenv("PORT"); port != "" {
		v.SetDefault("addr", ":"+port)
	}
	v.SetDefault("theme", theme.DefaultName)
	v.SetDefault("content_file", "")
	v.SetDefault("dev", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("site_url", "")
	v.SetDefault("watch_interval", DefaultWatchInterval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configFile = DefaultConfigFile
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		logrus.WithField("file", v.ConfigFileUsed()).Debug("Config file loaded")
	}
	return v, nil
}

// Load decodes and validates the settings held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for values the commands cannot use
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is empty")
	}
	if _, err := theme.Lookup(c.Theme); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be positive, got %s", c.WatchInterval)
	}
	if c.SiteURL != "" {
		u, err := url.Parse(c.SiteURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("site_url %q is not an absolute http(s) URL", c.SiteURL)
		}
	}
	return nil
}

// ConfigureLogging switches logrus to JSON output at the configured level
func (c *Config) ConfigureLogging() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
