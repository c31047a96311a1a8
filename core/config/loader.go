package config

// Loader produces a fresh, validated configuration.
// Callers load once per pass and never cache the result between passes.
type Loader interface {
	Load() (*Config, error)
}

// FileLoader reads .env from Path and the process environment.
type FileLoader struct {
	Path string
}

// Load implements Loader.
func (l FileLoader) Load() (*Config, error) {
	path := l.Path
	if path == "" {
		path = "."
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func() (*Config, error)

// Load implements Loader.
func (f LoaderFunc) Load() (*Config, error) {
	return f()
}

// Static returns a Loader that always yields cfg.
func Static(cfg *Config) Loader {
	return LoaderFunc(func() (*Config, error) { return cfg, nil })
}
