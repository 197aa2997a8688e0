// Package cmd provides the CLI commands for hll-rcon.
package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hlladmin/rcon"
	"github.com/hlladmin/rcon/internal/config"
	"github.com/hlladmin/rcon/internal/metrics"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hll-rcon",
	Short: "hll-rcon - Hell Let Loose RCON client",
	Long: `hll-rcon is a command-line client for the Hell Let Loose RCON v2
remote administration channel.

Quick start:
  1. Create a config file: hll-rcon.yaml (host, port, password)
  2. Run: hll-rcon status

Configuration:
  Config is loaded from hll-rcon.yaml in the current directory,
  $HOME/.hll-rcon/, or /etc/hll-rcon/.

  Environment variables can override config values with the HLL_RCON_ prefix.
  Example: HLL_RCON_PASSWORD=secret

Commands:
  exec        Execute a raw RCON command
  shell       Open an interactive RCON shell
  status      Show the server session and configuration
  version     Print version information`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: hll-rcon.yaml in ., $HOME/.hll-rcon/ or /etc/hll-rcon/)")
	rootCmd.PersistentFlags().String("host", "", "RCON server host")
	rootCmd.PersistentFlags().Int("port", 0, "RCON server port")
	rootCmd.PersistentFlags().String("password", "", "RCON password")
	rootCmd.PersistentFlags().String("metrics-addr", "", "expose Prometheus metrics on this address")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	for flag, key := range map[string]string{
		"host":         "host",
		"port":         "port",
		"password":     "password",
		"metrics-addr": "metrics_addr",
		"log-level":    "log_level",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

func initConfig() {
	config.InitViper(cfgFile)
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// newClient loads the configuration and builds the resilient client shared
// by all subcommands. When a metrics address is configured, a Prometheus
// endpoint is served in the background.
func newClient() (*rcon.Rcon, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	opts := []rcon.Option{
		rcon.WithTimeout(cfg.Timeout),
		rcon.WithReconnectAfterFailures(cfg.ReconnectAfterFailures),
		rcon.WithLogger(logger),
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m := metrics.New(reg)
		opts = append(opts, rcon.WithMetrics(m))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics endpoint failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	return rcon.New(cfg.Host, cfg.Port, cfg.Password, opts...), cfg, nil
}
