// Package jsonmatch matches decoded JSON values against declarative
// expectations built from exact values and flexible matchers, reporting
// every structural mismatch with the document path where it occurred.
//
// Candidates use the decoded-JSON value model: nil, bool, json.Number
// (native numeric kinds are also accepted), string, []any and
// map[string]any. Decode with UseNumber to keep the integer/float
// distinction of the wire form.
package jsonmatch

// Matcher is the composition contract: match a candidate value and
// return every mismatch found, path-qualified as if the matcher were
// the whole document. An empty result means the candidate satisfies
// the matcher. Match must not mutate the matcher; a built matcher tree
// is safe for concurrent use.
type Matcher interface {
	Match(value any) []Error
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(value any) []Error

func (f MatcherFunc) Match(value any) []Error {
	return f(value)
}
