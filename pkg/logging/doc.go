// Package logging provides structured logging configuration for the spantext
// CLI and demos.
//
// This package wraps log/slog. Its one hard rule: diagnostics default to
// stderr, because stdout belongs to the span text stream and the two must not
// interleave.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("workload finished", "spans", 5)
//	logger.Error("export failed", "error", err)
//
// Components accept a *slog.Logger in their constructor. When logging is
// unwanted, pass logging.Nop().
package logging
