package directory

import (
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// DNKey is the Record key holding the entry's distinguished name.
const DNKey = "dn"

// Record is a flattened directory entry. Single-valued attributes hold a string,
// multi-valued attributes hold an ordered []string.
type Record map[string]any

// FlattenEntry converts a protocol entry into a Record.
func FlattenEntry(e *ldap.Entry) Record {
	rec := make(Record, len(e.Attributes)+1)
	rec[DNKey] = e.DN
	for _, attr := range e.Attributes {
		switch len(attr.Values) {
		case 0:
			continue
		case 1:
			rec[attr.Name] = attr.Values[0]
		default:
			values := make([]string, len(attr.Values))
			copy(values, attr.Values)
			rec[attr.Name] = values
		}
	}
	return rec
}

// DN returns the entry's distinguished name.
func (r Record) DN() string {
	return r.String(DNKey)
}

// String returns a single-valued attribute, or the first value of a multi-valued one.
// Attribute names are matched case-insensitively.
func (r Record) String(name string) string {
	v, ok := r.lookup(name)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Strings returns every value of an attribute.
func (r Record) Strings(name string) []string {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return val
	}
	return nil
}

func (r Record) lookup(name string) (any, bool) {
	if v, ok := r[name]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
