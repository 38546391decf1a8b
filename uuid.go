package jsonmatch

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDMatcher matches strings shaped like a UUID: 36 characters with
// exactly 4 hyphens. A syntactic approximation, not full RFC 4122
// validation.
type UUIDMatcher struct{}

// UUID matches any UUID-shaped string.
func UUID() UUIDMatcher {
	return UUIDMatcher{}
}

func (UUIDMatcher) Match(value any) []Error {
	s, ok := value.(string)
	if !ok {
		return []Error{AtRoot("Expected string for UUID")}
	}
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return []Error{AtRoot("Expected valid UUID format")}
	}
	return nil
}

// ExactUUIDMatcher matches a string parsing to one specific UUID.
type ExactUUIDMatcher struct {
	value uuid.UUID
}

// ExactUUID matches strings that parse to the given UUID, so case and
// representation differences do not matter.
func ExactUUID(value uuid.UUID) ExactUUIDMatcher {
	return ExactUUIDMatcher{value: value}
}

func (m ExactUUIDMatcher) Match(value any) []Error {
	s, ok := value.(string)
	if !ok {
		return []Error{AtRoot("Expected string for UUID")}
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return []Error{AtRoot("Expected valid UUID format")}
	}
	if parsed != m.value {
		return []Error{AtRootf("Expected UUID %q but got %q", m.value, parsed)}
	}
	return nil
}
