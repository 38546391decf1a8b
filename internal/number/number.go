// Package number converts decoded-JSON numeric values between the kinds
// produced by the various decoders (json.Number, native ints, floats).
package number

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// IsNumber reports whether the value is any supported numeric kind.
func IsNumber(value any) bool {
	_, ok := ToFloat64(value)
	return ok
}

// ToFloat64 converts supported numeric values to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ToInt64 converts integer-valued numbers to int64. A json.Number keeps
// its wire form, so "4.0" is not an integer; a native float64 is
// accepted when it carries no fractional part, since the wire form is
// unrecoverable after decoding without UseNumber.
func ToInt64(value any) (int64, bool) {
	switch current := value.(type) {
	case int:
		return int64(current), true
	case int8:
		return int64(current), true
	case int16:
		return int64(current), true
	case int32:
		return int64(current), true
	case int64:
		return current, true
	case uint:
		return int64(current), true
	case uint8:
		return int64(current), true
	case uint16:
		return int64(current), true
	case uint32:
		return int64(current), true
	case uint64:
		if current > math.MaxInt64 {
			return 0, false
		}
		return int64(current), true
	case float32:
		return ToInt64(float64(current))
	case float64:
		if math.Trunc(current) != current || current < math.MinInt64 || current >= math.MaxInt64 {
			return 0, false
		}
		return int64(current), true
	case json.Number:
		parsed, err := strconv.ParseInt(current.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Format renders a numeric value the way it appeared on the wire where
// possible: a json.Number keeps its original token, other kinds use
// their shortest decimal form.
func Format(value any) string {
	if current, ok := value.(json.Number); ok {
		return current.String()
	}
	if parsed, ok := ToFloat64(value); ok {
		return strconv.FormatFloat(parsed, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}
