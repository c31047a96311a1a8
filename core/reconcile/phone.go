package reconcile

import (
	"regexp"
	"strings"
)

var employeeIDPattern = regexp.MustCompile(`^MTI\d{6}$`)

// ValidEmployeeID reports whether id is "MTI" followed by exactly six digits.
func ValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id)
}

// NormalizePhone returns the canonical "62"-prefixed form of an Indonesian number.
// ok is false when raw is not a valid number; such values never produce a diff.
func NormalizePhone(raw string) (canonical string, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}

	digits := strings.TrimPrefix(b.String(), "+")
	if strings.Contains(digits, "+") {
		return "", false
	}
	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}

	switch {
	case strings.HasPrefix(digits, "62"):
		digits = strings.TrimLeft(digits[2:], "0")
	case strings.HasPrefix(digits, "0"):
		digits = strings.TrimLeft(digits, "0")
	default:
		return "", false
	}
	if digits == "" {
		return "", false
	}

	return "62" + digits, true
}

// normalizeStoredMobile brings a directory mobile value into canonical form when possible
// so that formatting differences alone never produce a diff.
func normalizeStoredMobile(raw string) string {
	if canonical, ok := NormalizePhone(raw); ok {
		return canonical
	}
	return strings.TrimSpace(raw)
}
