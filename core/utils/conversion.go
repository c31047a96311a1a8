package utils

import (
	"fmt"
	"time"
)

// ToString converts a raw SQL column value to string.
// NULL becomes the empty string and driver byte slices are decoded as text.
// Values are otherwise returned as stored.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.DateOnly)
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		return fmt.Sprintf("%v", v)
	}
}
