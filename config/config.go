// Package config loads the server configuration from defaults, an optional
// config file, and BLOGQL_ prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "BLOGQL"

// Config represents the application configuration
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// ServerConfig represents http server configuration
type ServerConfig struct {
	Address    string
	Playground bool
}

// StoreConfig represents entity store configuration
type StoreConfig struct {
	// Seed loads the demo users, posts, and comments on start.
	Seed bool
}

// LogConfig represents logger configuration
type LogConfig struct {
	Level  string
	Format string // json or console
}

// MetricsConfig represents prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool
}

// New returns a viper instance with defaults and environment bindings set.
//
// When file is not empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("server.address", "localhost:8080")
	v.SetDefault("server.playground", true)
	v.SetDefault("store.seed", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.enabled", true)

	// Environment variables take precedence over config file
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration from viper
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address:    v.GetString("server.address"),
			Playground: v.GetBool("server.playground"),
		},
		Store: StoreConfig{
			Seed: v.GetBool("store.seed"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
	}
	if cfg.Server.Address == "" {
		return nil, fmt.Errorf("server.address is required")
	}
	return cfg, nil
}

// NewLogger builds a zap logger from the log configuration.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	var zc zap.Config
	switch cfg.Format {
	case "json", "":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
