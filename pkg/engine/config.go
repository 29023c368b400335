package engine

import "log/slog"

// Config holds optional engine dependencies.
type Config struct {
	// Logger receives unsupported-node and unsupported-operator
	// warnings, each carrying the offending identifier and the
	// current code location. Defaults to a discard logger.
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
