package directory

import (
	"fmt"
	"time"
)

// Authentication formats for the service bind credential.
const (
	AuthPrincipalName     = "principal-name"
	AuthDistinguishedName = "distinguished-name"
)

// PageSize is the number of entries requested per paged search round trip.
const PageSize = 200

// Config holds configuration for the directory service connection.
type Config struct {
	// Host is the directory server host name.
	Host string `mapstructure:"host" default:"localhost" validate:"required"`
	// Port is the directory server port. Zero selects 389, or 636 with TLS.
	Port int `mapstructure:"port" default:"0" validate:"min=0,max=65535"`
	// UseTLS wraps the connection in TLS (ldaps).
	UseTLS bool `mapstructure:"use_tls" default:"false"`
	// InsecureSkipVerify disables certificate verification for ldaps.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
	// BindUser is the service account name, or a full distinguished name.
	BindUser string `mapstructure:"bind_user" default:""`
	// BindPassword is the service account password.
	BindPassword string `mapstructure:"bind_password" default:""`
	// BaseDN is the root container for user entries and department OUs.
	BaseDN string `mapstructure:"base_dn" default:"" validate:"required"`
	// AuthFormat selects how BindUser is expanded (principal-name, distinguished-name).
	AuthFormat string `mapstructure:"auth_format" default:"principal-name" validate:"oneof=principal-name distinguished-name"`
	// Domain is the UPN suffix. Derived from the DC components of BaseDN when empty.
	Domain string `mapstructure:"domain" default:""`
	// BindContainer is the parent of the service account for distinguished-name binds.
	// Defaults to BaseDN.
	BindContainer string `mapstructure:"bind_container" default:""`
	// UserFilter selects person entries during a full search.
	UserFilter string `mapstructure:"user_filter" default:"(&(objectCategory=person)(objectClass=user))"`
	// GenderAttribute is the directory attribute that stores gender.
	GenderAttribute string `mapstructure:"gender_attribute" default:"gender"`
	// TimeoutSeconds bounds dialing and each protocol operation.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"min=0"`
}

// URL returns the ldap:// or ldaps:// address for the configured server.
func (c Config) URL() string {
	scheme := "ldap"
	port := c.Port
	if c.UseTLS {
		scheme = "ldaps"
		if port == 0 {
			port = 636
		}
	}
	if port == 0 {
		port = 389
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, port)
}

// Timeout returns the per-operation timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
