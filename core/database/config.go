package database

// Config holds configuration for the library catalog database.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// Host is the database host. MySQL only.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port. MySQL only.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user. MySQL only.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password. MySQL only.
	Password string `mapstructure:"password" default:""`
	// Name is the database name for MySQL, or the database file path for
	// SQLite.
	Name string `mapstructure:"name" default:"library"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
