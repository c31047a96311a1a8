package directory

import "github.com/go-ldap/ldap/v3"

// EscapeFilter encodes filter metacharacters ( ) \ * and NUL in a value before it
// is concatenated into a search filter.
func EscapeFilter(value string) string {
	return ldap.EscapeFilter(value)
}

// EqualityFilter builds (attr=value) with the value escaped.
func EqualityFilter(attr, value string) string {
	return "(" + attr + "=" + EscapeFilter(value) + ")"
}

// And combines filters with a logical AND. Empty parts are dropped.
func And(filters ...string) string {
	out := ""
	n := 0
	for _, f := range filters {
		if f == "" {
			continue
		}
		out += f
		n++
	}
	if n <= 1 {
		return out
	}
	return "(&" + out + ")"
}
