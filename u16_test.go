package jsonmatch

import (
	"encoding/json"
	"testing"
)

func TestU16Matcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "zero", value: json.Number("0")},
		{name: "max", value: json.Number("65535")},
		{name: "mid", value: json.Number("32768")},
		{name: "negative", value: json.Number("-1"), want: []string{"$: Integer out of bounds for u16"}},
		{name: "above_max", value: json.Number("65536"), want: []string{"$: Integer out of bounds for u16"}},
		{name: "far_above_max", value: json.Number("100000"), want: []string{"$: Integer out of bounds for u16"}},
		{name: "float", value: json.Number("42.5"), want: []string{"$: Expected number fitting u16"}},
		{name: "string", value: "42", want: []string{"$: Expected number fitting u16"}},
		{name: "boolean", value: true, want: []string{"$: Expected number fitting u16"}},
		{name: "null", value: nil, want: []string{"$: Expected number fitting u16"}},
		{name: "array", value: []any{json.Number("42")}, want: []string{"$: Expected number fitting u16"}},
		{name: "object", value: map[string]any{}, want: []string{"$: Expected number fitting u16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMessages(t, U16().Match(tt.value), tt.want...)
		})
	}
}

func TestU16StringMatcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "plain", value: "42"},
		{name: "leading_zeros", value: "0042"},
		{name: "max", value: "65535"},
		{name: "above_max", value: "65536", want: []string{"$: Expected number fitting u16"}},
		{name: "negative", value: "-1", want: []string{"$: Expected number fitting u16"}},
		{name: "decimal", value: "42.5", want: []string{"$: Expected number fitting u16"}},
		{name: "whitespace", value: " 42 ", want: []string{"$: Expected number fitting u16"}},
		{name: "empty", value: "", want: []string{"$: Expected number fitting u16"}},
		{name: "not_a_string", value: json.Number("42"), want: []string{"$: Expected string fitting u16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMessages(t, U16String().Match(tt.value), tt.want...)
		})
	}
}
