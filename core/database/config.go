package database

// Config holds configuration for the HR store connection.
type Config struct {
	// Driver is the database driver (mysql, postgres, sqlserver, sqlite).
	Driver string `mapstructure:"driver" default:"mysql" validate:"oneof=mysql postgres sqlserver sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306" validate:"min=0,max=65535"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"hris" validate:"required"`
	// Table is the employee table the extractor reads.
	Table string `mapstructure:"table" default:"employees" validate:"required"`
	// SSLMode is passed to postgres connections.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and socket reads.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"min=0"`
}
