// Package config holds the boxtree CLI configuration loaded through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grindlemire/go-boxtree"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BOXTREE_RENDER_SCALE.
const EnvPrefix = "BOXTREE"

// Config is the root configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// LoggerConfig configures internal/observability.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// RenderConfig controls `boxtree render`.
type RenderConfig struct {
	// Mode is "raster" for PNG output or "cells" for terminal text.
	Mode string `mapstructure:"mode" yaml:"mode"`
	// Background is the canvas color in ParseColor notation.
	Background string `mapstructure:"background" yaml:"background"`
	// Scale multiplies every nine-patch whose own scale is unset.
	Scale int `mapstructure:"scale" yaml:"scale"`
	// Border names the box-drawing set used in cells mode.
	Border string `mapstructure:"border" yaml:"border"`
	// Width and Height size the canvas; zero uses the root node's extent.
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// WatchConfig controls `boxtree watch`.
type WatchConfig struct {
	// Debounce coalesces bursts of file events.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "boxtree")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("render.mode", "raster")
	v.SetDefault("render.background", "white")
	v.SetDefault("render.scale", 1)
	v.SetDefault("render.border", "single")
	v.SetDefault("render.width", 0)
	v.SetDefault("render.height", 0)

	v.SetDefault("watch.debounce", "100ms")
}

// BindEnv makes v read BOXTREE_SECTION_KEY environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for values the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logger.format must be console or json, got %q", ErrInvalidConfig, c.Logger.Format)
	}
	switch c.Render.Mode {
	case "raster", "cells":
	default:
		return fmt.Errorf("%w: render.mode must be raster or cells, got %q", ErrInvalidConfig, c.Render.Mode)
	}
	if c.Render.Scale < 1 {
		return fmt.Errorf("%w: render.scale must be a positive integer", ErrInvalidConfig)
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("%w: render.width and render.height must not be negative", ErrInvalidConfig)
	}
	if _, err := boxtree.ParseColor(c.Render.Background); err != nil {
		return fmt.Errorf("%w: render.background: %w", ErrInvalidConfig, err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalidConfig)
	}
	return nil
}
