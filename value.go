package jsonmatch

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/jacoelho/jsonmatch/internal/number"
)

// Literal turns a concrete JSON value into a matcher requiring exact
// structural equality: scalars compare directly, arrays match
// positionally, objects match by key with unexpected keys disallowed.
// Values that already implement Matcher pass through unchanged, so
// literal JSON can be nested anywhere a matcher is expected.
func Literal(value any) Matcher {
	return asMatcher(value)
}

func asMatcher(value any) Matcher {
	switch current := value.(type) {
	case Matcher:
		return current
	case nil:
		return Null()
	case bool:
		return Boolean(current)
	case string:
		return String(current)
	case []any:
		m := Array()
		for _, element := range current {
			m.Element(element)
		}
		return m
	case map[string]any:
		m := Object()
		for key, field := range current {
			m.Field(key, field)
		}
		return m
	default:
		if integer, ok := number.ToInt64(current); ok {
			return Integer(integer)
		}
		if float, ok := number.ToFloat64(current); ok {
			return Float(float)
		}
		return unsupportedMatcher{value: current}
	}
}

// unsupportedMatcher reports values outside the JSON model instead of
// panicking inside Match.
type unsupportedMatcher struct {
	value any
}

func (m unsupportedMatcher) Match(any) []Error {
	return []Error{AtRootf("Unsupported expected value of type %T", m.value)}
}

// Decode parses raw JSON into the candidate value model, preserving the
// integer/float distinction through json.Number.
func Decode(raw []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return value, nil
}
