package reconcile

import "time"

// Config holds the tunables of a reconciliation pass.
type Config struct {
	// Workers bounds the number of records processed concurrently.
	Workers int `mapstructure:"workers" default:"8" validate:"min=1,max=64"`

	// FuzzyMaxDistance is the largest name distance accepted as a fuzzy match.
	FuzzyMaxDistance int `mapstructure:"fuzzy_max_distance" default:"2" validate:"min=0"`

	// CaseInsensitive compares department and title case-folded.
	CaseInsensitive bool `mapstructure:"case_insensitive" default:"false"`

	// CallTimeoutSeconds is the deadline applied to every external call.
	CallTimeoutSeconds int `mapstructure:"call_timeout_seconds" default:"30" validate:"min=1"`
}

// CallTimeout returns the per-call deadline, falling back to 30s.
func (c Config) CallTimeout() time.Duration {
	if c.CallTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 8
	}
	return c.Workers
}
