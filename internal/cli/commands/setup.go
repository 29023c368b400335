// Package commands implements the irlight subcommands.
package commands

import (
	"log/slog"

	"github.com/revlift-labs/irlight/internal/cli/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// Bind installs the loaded configuration and logger for the commands.
// The root command calls it after configuration loading.
func Bind(c *config.Config, l *slog.Logger) {
	cfg = c
	logger = l
}

func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{Output: "text"}
	}
	return cfg
}

func getLogger() *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
