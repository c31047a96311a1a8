package directory

import (
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// BindName expands the configured service credential into the name sent on bind.
// A credential that already parses as a distinguished name is returned unchanged.
func BindName(cfg Config) string {
	user := strings.TrimSpace(cfg.BindUser)
	if user == "" || isDN(user) {
		return user
	}

	switch cfg.AuthFormat {
	case AuthDistinguishedName:
		container := cfg.BindContainer
		if container == "" {
			container = cfg.BaseDN
		}
		if container == "" {
			return "CN=" + ldap.EscapeDN(user)
		}
		return "CN=" + ldap.EscapeDN(user) + "," + container
	default:
		if strings.Contains(user, "@") {
			return user
		}
		domain := cfg.Domain
		if domain == "" {
			domain = DomainFromDN(cfg.BaseDN)
		}
		if domain == "" {
			return user
		}
		return user + "@" + domain
	}
}

// DomainFromDN joins the DC components of a distinguished name,
// e.g. "OU=Staff,DC=corp,DC=example" -> "corp.example".
func DomainFromDN(dn string) string {
	parsed, err := ldap.ParseDN(dn)
	if err != nil {
		return ""
	}
	var parts []string
	for _, rdn := range parsed.RDNs {
		for _, attr := range rdn.Attributes {
			if strings.EqualFold(attr.Type, "dc") {
				parts = append(parts, attr.Value)
			}
		}
	}
	return strings.Join(parts, ".")
}

func isDN(s string) bool {
	if !strings.Contains(s, "=") {
		return false
	}
	parsed, err := ldap.ParseDN(s)
	return err == nil && len(parsed.RDNs) > 0
}

// SplitRDN returns the first relative name of a DN and the remaining parent path.
// Escaped commas inside the first component are honoured.
func SplitRDN(dn string) (rdn, parent string) {
	escaped := false
	for i := 0; i < len(dn); i++ {
		switch {
		case escaped:
			escaped = false
		case dn[i] == '\\':
			escaped = true
		case dn[i] == ',':
			return strings.TrimSpace(dn[:i]), strings.TrimSpace(dn[i+1:])
		}
	}
	return strings.TrimSpace(dn), ""
}

// ChildDN returns the path of a child named attr=value under parent, escaping value.
func ChildDN(attr, value, parent string) string {
	rdn := attr + "=" + ldap.EscapeDN(value)
	if parent == "" {
		return rdn
	}
	return rdn + "," + parent
}
