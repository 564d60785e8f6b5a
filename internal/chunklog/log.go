// Package chunklog builds the structured logger threaded through the
// orchestrator and CLI: per-file skip/error reasons at debug verbosity,
// production-shaped output otherwise. Worker lifecycle events are not
// logged.
package chunklog

import "go.uber.org/zap"

// New builds a *zap.Logger. When verbose is true it uses zap's
// development config (human-readable, debug level); otherwise it uses the
// production config (JSON, info level).
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	return cfg.Build()
}
