// Package logging provides structured logging configuration for the
// sherlock client and CLI.
//
// This package wraps log/slog to keep logging consistent across the
// client, the launcher, and the CLI. It supports configurable log levels
// and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "port", 9090)
//	logger.Error("failed to connect", "error", err)
//
// # Integration
//
// Components accept a *slog.Logger in their constructor or via an
// option. If no logger is provided, logging.Nop() discards everything.
package logging
