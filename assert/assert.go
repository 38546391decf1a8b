// Package assert integrates jsonmatch with the testing package: run a
// matcher against an actual value and fail the test listing every
// mismatch alongside a pretty-printed rendering of the actual JSON.
package assert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/theory/jsonpath"

	"github.com/jacoelho/jsonmatch"
)

// Match asserts that actual satisfies the matcher. On mismatch it fails
// the test with every error found, not just the first.
func Match(tb testing.TB, actual any, matcher jsonmatch.Matcher) {
	tb.Helper()

	errs := matcher.Match(actual)
	if len(errs) == 0 {
		return
	}
	tb.Fatal(FailureMessage(errs, actual))
}

// MatchBytes decodes raw JSON (preserving the integer/float wire
// distinction) and asserts it satisfies the matcher.
func MatchBytes(tb testing.TB, raw []byte, matcher jsonmatch.Matcher) {
	tb.Helper()

	actual, err := jsonmatch.Decode(raw)
	if err != nil {
		tb.Fatalf("invalid JSON input: %v", err)
	}
	Match(tb, actual, matcher)
}

// MatchAt selects a subdocument with a JSONPath expression and asserts
// it satisfies the matcher. The first selected node is used; selecting
// nothing fails the test.
func MatchAt(tb testing.TB, document any, pathExpr string, matcher jsonmatch.Matcher) {
	tb.Helper()

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		tb.Fatalf("invalid JSONPath %s: %v", pathExpr, err)
	}

	results := path.Select(document)
	if len(results) == 0 {
		tb.Fatalf("no value at JSONPath %s", pathExpr)
	}
	Match(tb, results[0], matcher)
}

// FailureMessage renders the failure text: one bullet per error, then
// the actual value pretty-printed.
func FailureMessage(errs []jsonmatch.Error, actual any) string {
	bullets := make([]string, 0, len(errs))
	for _, err := range errs {
		bullets = append(bullets, "  - "+err.String())
	}

	return fmt.Sprintf("\nJson matcher failed:\n%s\n\nActual:\n%s",
		strings.Join(bullets, "\n"), renderActual(actual))
}

func renderActual(actual any) string {
	pretty, err := json.MarshalIndent(actual, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", actual)
	}
	return string(pretty)
}
