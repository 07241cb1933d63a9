// Package server holds the configuration for the read-only report HTTP
// server started by the serve command. The Fiber application itself is
// assembled in cmd/serve.go.
package server
