package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30" validate:"min=1"`
	// WriteTimeoutSeconds bounds writing a response. A full pass can take minutes.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"600" validate:"min=1"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// ReadTimeout returns the request read deadline.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the response write deadline.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}
