package config

import (
	"reflect"
	"strings"

	"booksync/core/database"
	"booksync/core/logger"
	"booksync/core/server"
	"booksync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the report HTTP server.
	Server server.Config `mapstructure:"server"`
	// Library holds configuration for the library catalog database.
	Library database.Config `mapstructure:"library"`
	// Storage holds configuration for the object storage catalog (S3/MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Sync holds defaults for sync runs.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds defaults for sync runs. Command-line flags override these.
type SyncConfig struct {
	// Source selects the file-management catalog ("shelf" or "bucket").
	Source string `mapstructure:"source" default:"shelf"`
	// ShelfRoot is the directory walked by the shelf catalog.
	ShelfRoot string `mapstructure:"shelf_root" default:"."`
	// BucketPrefix is the object key prefix listed by the bucket catalog.
	BucketPrefix string `mapstructure:"bucket_prefix" default:"books/"`
	// Extensions is a comma-separated extension filter (empty = all book formats).
	Extensions string `mapstructure:"extensions" default:""`
	// OneFile keeps only the best-format file per work.
	OneFile bool `mapstructure:"one_file" default:"false"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; ignore the error when it doesn't
	// (e.g. production).
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LIBRARY_HOST -> library.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
