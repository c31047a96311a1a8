package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	// Format is the output encoding (json, console).
	Format string `mapstructure:"format" default:"json" validate:"oneof=json console"`
}
