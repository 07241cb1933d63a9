// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework used
// by the report server.
//
// # Request Correlation
//
// The WithRequestID helper extracts the request ID from a Fiber context and
// attaches it to the log entry, ensuring that all logs related to a specific
// request can be correlated. Sync runs carry their own run_id field, stamped
// by the reconcile engine.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("sync started")
package logger
