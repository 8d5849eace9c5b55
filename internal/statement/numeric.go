package statement

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether value holds a number or a decimal string.
// Surrounding whitespace is ignored. nil, blank strings, non-numeric types
// and Go literal forms such as hex ("0x1p3") or underscores ("1_0") are not
// numeric.
func IsNumeric(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		v = strings.TrimSpace(v)
		if v == "" || strings.ContainsAny(v, "_xX") {
			return false
		}
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}
