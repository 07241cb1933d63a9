// Package config provides configuration management for booksync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: report HTTP server settings (port, API key)
//   - Library: library catalog database connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Sync: defaults for sync runs (source catalog, extension filter)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
