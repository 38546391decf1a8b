package assert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jacoelho/jsonmatch"
)

// recordingTB captures failures instead of stopping the test.
type recordingTB struct {
	testing.TB
	failed  bool
	message string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Fatal(args ...any) {
	r.failed = true
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			r.message = s
			return
		}
	}
	r.message = fmt.Sprint(args...)
}

func (r *recordingTB) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestMatchSuccessIsNoOp(t *testing.T) {
	t.Parallel()

	tb := &recordingTB{}
	Match(tb, map[string]any{"a": "x"}, jsonmatch.Object().Field("a", "x"))
	if tb.failed {
		t.Fatalf("Match failed unexpectedly: %s", tb.message)
	}
}

func TestMatchReportsEveryError(t *testing.T) {
	t.Parallel()

	tb := &recordingTB{}
	matcher := jsonmatch.Object().
		Field("name", "Bob").
		Field("age", int64(25)).
		Field("id", jsonmatch.UUID())

	Match(tb, map[string]any{
		"name": "Alice",
		"age":  int64(25),
		"id":   "not-a-uuid",
	}, matcher)

	if !tb.failed {
		t.Fatal("Match did not fail")
	}

	want := "\nJson matcher failed:\n" +
		"  - $.id: Expected valid UUID format\n" +
		"  - $.name: Expected string \"Bob\" but got \"Alice\"\n" +
		"\nActual:\n" +
		"{\n  \"age\": 25,\n  \"id\": \"not-a-uuid\",\n  \"name\": \"Alice\"\n}"
	if tb.message != want {
		t.Fatalf("failure message = %q, want %q", tb.message, want)
	}
}

func TestMatchBytes(t *testing.T) {
	t.Parallel()

	tb := &recordingTB{}
	MatchBytes(tb, []byte(`{"count": 42}`), jsonmatch.Object().Field("count", int64(42)))
	if tb.failed {
		t.Fatalf("MatchBytes failed unexpectedly: %s", tb.message)
	}

	tb = &recordingTB{}
	MatchBytes(tb, []byte(`{nope`), jsonmatch.Any())
	if !tb.failed || !strings.Contains(tb.message, "invalid JSON input") {
		t.Fatalf("MatchBytes on malformed input: failed=%v message=%q", tb.failed, tb.message)
	}
}

func TestMatchAt(t *testing.T) {
	t.Parallel()

	document := map[string]any{
		"users": []any{
			map[string]any{"name": "Alice"},
			map[string]any{"name": "Bob"},
		},
	}

	tb := &recordingTB{}
	MatchAt(tb, document, "$.users[1].name", jsonmatch.String("Bob"))
	if tb.failed {
		t.Fatalf("MatchAt failed unexpectedly: %s", tb.message)
	}

	tb = &recordingTB{}
	MatchAt(tb, document, "$.missing", jsonmatch.Any())
	if !tb.failed || !strings.Contains(tb.message, "no value at JSONPath") {
		t.Fatalf("MatchAt on absent path: failed=%v message=%q", tb.failed, tb.message)
	}

	tb = &recordingTB{}
	MatchAt(tb, document, "$[", jsonmatch.Any())
	if !tb.failed || !strings.Contains(tb.message, "invalid JSONPath") {
		t.Fatalf("MatchAt on bad expression: failed=%v message=%q", tb.failed, tb.message)
	}
}
