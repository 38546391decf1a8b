package jsonmatch

import (
	"strconv"

	"github.com/jacoelho/jsonmatch/internal/number"
)

// NullMatcher matches the JSON null value.
type NullMatcher struct{}

// Null matches only JSON null.
func Null() NullMatcher {
	return NullMatcher{}
}

func (NullMatcher) Match(value any) []Error {
	if value == nil {
		return nil
	}
	return []Error{AtRoot("Value is not null")}
}

// BooleanMatcher matches a JSON boolean, either a specific value or any.
type BooleanMatcher struct {
	any   bool
	value bool
}

// Boolean matches exactly the given boolean value.
func Boolean(value bool) BooleanMatcher {
	return BooleanMatcher{value: value}
}

// AnyBoolean matches either boolean value.
func AnyBoolean() BooleanMatcher {
	return BooleanMatcher{any: true}
}

func (m BooleanMatcher) Match(value any) []Error {
	actual, ok := value.(bool)
	if !ok {
		return []Error{AtRoot("Value is not a boolean")}
	}
	if m.any || actual == m.value {
		return nil
	}
	return []Error{AtRootf("Value is not %t", m.value)}
}

// AnyMatcher matches every value, optionally excluding null.
type AnyMatcher struct {
	notNull bool
}

// Any matches every JSON value, null included.
func Any() AnyMatcher {
	return AnyMatcher{}
}

// NotNull matches every JSON value except null.
func NotNull() AnyMatcher {
	return AnyMatcher{notNull: true}
}

func (m AnyMatcher) Match(value any) []Error {
	if m.notNull && value == nil {
		return []Error{AtRoot("Expected non-null value")}
	}
	return nil
}

// IntegerMatcher matches a JSON number holding an exact integer value.
type IntegerMatcher struct {
	value int64
}

// Integer matches exactly the given integer. A float-valued number is a
// distinct near-miss from a plain type mismatch.
func Integer(value int64) IntegerMatcher {
	return IntegerMatcher{value: value}
}

func (m IntegerMatcher) Match(value any) []Error {
	if !number.IsNumber(value) {
		return []Error{AtRoot("Value is not an integer")}
	}
	actual, ok := number.ToInt64(value)
	if !ok {
		return []Error{AtRootf("Expected integer %d but got float %s", m.value, number.Format(value))}
	}
	if actual != m.value {
		return []Error{AtRootf("Expected integer %d but got %d", m.value, actual)}
	}
	return nil
}

// FloatMatcher matches a JSON number holding an exact floating-point
// value. An integer-valued number equal to the expected float matches.
type FloatMatcher struct {
	value float64
}

// Float matches exactly the given floating-point value.
func Float(value float64) FloatMatcher {
	return FloatMatcher{value: value}
}

func (m FloatMatcher) Match(value any) []Error {
	actual, ok := number.ToFloat64(value)
	if !ok {
		return []Error{AtRoot("Value is not a float")}
	}
	if actual != m.value {
		return []Error{AtRootf("Expected float %s but got %s",
			strconv.FormatFloat(m.value, 'f', -1, 64),
			strconv.FormatFloat(actual, 'f', -1, 64))}
	}
	return nil
}

// StringMatcher matches an exact JSON string.
type StringMatcher struct {
	value string
}

// String matches exactly the given string.
func String(value string) StringMatcher {
	return StringMatcher{value: value}
}

func (m StringMatcher) Match(value any) []Error {
	actual, ok := value.(string)
	if !ok {
		return []Error{AtRoot("Value is not a string")}
	}
	if actual != m.value {
		return []Error{AtRootf("Expected string %q but got %q", m.value, actual)}
	}
	return nil
}
