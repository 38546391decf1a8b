package jsonmatch

import (
	"strconv"

	"github.com/jacoelho/jsonmatch/internal/number"
)

// U16Matcher matches values representable as a 16-bit unsigned integer,
// either as a JSON number or, in string mode, as a base-10 encoded
// string.
type U16Matcher struct {
	allowStrings bool
}

// U16 matches JSON numbers in the range [0, 65535].
func U16() U16Matcher {
	return U16Matcher{}
}

// U16String matches strings encoding a base-10 integer in [0, 65535].
// Leading zeros parse fine; whitespace, signs, decimals and the empty
// string do not.
func U16String() U16Matcher {
	return U16Matcher{allowStrings: true}
}

func (m U16Matcher) Match(value any) []Error {
	if m.allowStrings {
		s, ok := value.(string)
		if !ok {
			return []Error{AtRoot("Expected string fitting u16")}
		}
		if _, err := strconv.ParseUint(s, 10, 16); err != nil {
			return []Error{AtRoot("Expected number fitting u16")}
		}
		return nil
	}

	actual, ok := number.ToInt64(value)
	if !ok {
		return []Error{AtRoot("Expected number fitting u16")}
	}
	if actual < 0 || actual > 65535 {
		return []Error{AtRoot("Integer out of bounds for u16")}
	}
	return nil
}
