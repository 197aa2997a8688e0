// Package config provides configuration loading for the hll-rcon CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the CLI configuration. Values come from the config file,
// HLL_RCON_* environment variables, and command-line flags, in increasing
// order of precedence.
type Config struct {
	// Host is the hostname or IP address of the RCON server.
	Host string `mapstructure:"host" validate:"required"`
	// Port is the port the RCON server listens on.
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
	// Password is the RCON password.
	Password string `mapstructure:"password" validate:"required"`
	// Timeout is the budget for a single request/response exchange.
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
	// ReconnectAfterFailures is after how many consecutive network failures
	// the held connection is disposed. Zero disables the reset.
	ReconnectAfterFailures int `mapstructure:"reconnect_after_failures" validate:"min=0"`
	// MaxWorkers is the connection pool size. It is loaded and validated;
	// none of the CLI commands reads it.
	MaxWorkers int `mapstructure:"max_workers" validate:"min=1"`
	// MetricsAddr, when set, exposes Prometheus metrics on this address.
	MetricsAddr string `mapstructure:"metrics_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// InitViper initializes Viper with the configuration file and environment
// variables. If configFile is empty, hll-rcon.yaml/.yml is searched in the
// working directory, $HOME/.hll-rcon/, and /etc/hll-rcon/.
func InitViper(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if found := findConfigFile(); found != "" {
		viper.SetConfigFile(found)
	} else {
		viper.SetConfigName("hll-rcon")
		viper.SetConfigType("yaml")
	}

	// Environment variable support: HLL_RCON_PORT, HLL_RCON_MAX_WORKERS, ...
	viper.SetEnvPrefix("HLL_RCON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for _, key := range []string{
		"host", "port", "password", "timeout",
		"reconnect_after_failures", "max_workers", "metrics_addr", "log_level",
	} {
		_ = viper.BindEnv(key)
	}
}

// findConfigFile searches the standard locations for a config file with an
// explicit YAML extension.
func findConfigFile() string {
	home, _ := os.UserHomeDir()
	paths := []string{
		".",
		filepath.Join(home, ".hll-rcon"),
		"/etc/hll-rcon",
	}
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "hll-rcon"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Load reads the configuration file, applies environment overrides and
// defaults, and validates the result.
func Load() (*Config, error) {
	viper.SetDefault("timeout", 10*time.Second)
	viper.SetDefault("reconnect_after_failures", 3)
	viper.SetDefault("max_workers", 2)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and flags may carry everything.
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			return fmt.Errorf("invalid config: field %q fails %q", field, verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
