package jsonmatch

import (
	"encoding/json"
	"testing"
)

func TestArrayMatcher(t *testing.T) {
	t.Parallel()

	matcher := func() *ArrayMatcher {
		return Array().
			Element(Array().Element(String("one")).Element(String("two"))).
			Element(String("three"))
	}

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{
			name:  "match",
			value: []any{[]any{"one", "two"}, "three"},
		},
		{
			name:  "not_an_array",
			value: "bloop",
			want:  []string{"$: Value is not an array"},
		},
		{
			name:  "mismatch_under_root",
			value: []any{[]any{"one", "two"}, "four"},
			want:  []string{`$.1: Expected string "three" but got "four"`},
		},
		{
			name:  "mismatch_in_nested_array",
			value: []any{[]any{"one", "four"}, "three"},
			want:  []string{`$.0.1: Expected string "two" but got "four"`},
		},
		{
			name:  "unexpected_index_in_root",
			value: []any{[]any{"one", "two"}, "three", "four"},
			want:  []string{"$: Array has unexpected index 2"},
		},
		{
			name:  "unexpected_index_in_nested_array",
			value: []any{[]any{"one", "two", "four"}, "three"},
			want:  []string{"$.0: Array has unexpected index 2"},
		},
		{
			name:  "missing_index",
			value: []any{[]any{"one", "two"}},
			want:  []string{"$: Array is missing index 1"},
		},
		{
			name:  "missing_index_range",
			value: []any{},
			want:  []string{"$: Array is missing indexes: 0..1"},
		},
		{
			name:  "unexpected_index_range",
			value: []any{[]any{"one", "two"}, "three", "x", "y", "z"},
			want:  []string{"$: Array has unexpected indexes: 2..4"},
		},
		{
			name:  "multiple_issues",
			value: []any{[]any{json.Number("2")}, "three", "four", "five"},
			want: []string{
				"$: Array has unexpected indexes: 2..3",
				"$.0: Array is missing index 1",
				"$.0.0: Value is not a string",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMessages(t, matcher().Match(tt.value), tt.want...)
		})
	}
}

func TestArrayOf(t *testing.T) {
	t.Parallel()

	matcher := ArrayOf(int64(1), int64(2))
	assertMessages(t, matcher.Match([]any{json.Number("1"), json.Number("2")}))
	assertMessages(t, matcher.Match([]any{json.Number("1"), json.Number("2"), json.Number("3")}),
		"$: Array has unexpected index 2")
}
