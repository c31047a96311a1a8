package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hris-sync/core/database"
	"hris-sync/core/directory"
	"hris-sync/core/logger"
	"hris-sync/core/reconcile"
	"hris-sync/core/server"
	"hris-sync/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP trigger.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the HR system-of-record.
	Database database.Config `mapstructure:"database"`
	// Directory holds configuration for the identity directory.
	Directory directory.Config `mapstructure:"directory"`
	// Storage holds configuration for report archival (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Sync holds the reconciliation tunables.
	Sync reconcile.Config `mapstructure:"sync"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// .env values override the process environment so a checked-out config wins locally
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DIRECTORY_BASE_DN -> directory.base_dn)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded values against the validate tags of every section.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("mapstructure"); name != "" {
			return name
		}
		return field.Name
	})

	if err := validate.Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
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
