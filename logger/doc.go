// Package logger provides structured logging functionality for the
// hybrid search service.
//
// The logger package wraps Uber's Zap logger with a simplified
// interface: every logging method takes a message, an optional error,
// and optional maps of structured fields. It integrates with the fx
// dependency injection framework for easy incorporation into the
// application.
//
// Core Features:
//   - Structured JSON logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warn, Error, Fatal)
//   - Process ID and service name on every entry
//   - Caller information (file and line) included in log entries
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       "info",
//	    ServiceName: "hybrid-search",
//	})
//
//	log.Info("Server started", nil, map[string]interface{}{
//	    "address": ":8000",
//	})
//
//	log.Error("Query failed", err, map[string]interface{}{
//	    "user_id": 42,
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//	    logger.FXModule,
//	    // ... other modules
//	)
//	app.Run()
//
// Configuration:
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug    # Log level (debug, info, warning, error)
//	SERVICE_NAME=hybrid-search
//
// Thread Safety:
//
// All methods on Logger are safe for concurrent use by multiple
// goroutines.
package logger
