package jsonmatch

// ArrayMatcher matches a JSON array positionally: the nth child matcher
// is applied to the nth element, and the lengths must agree.
type ArrayMatcher struct {
	elements []Matcher
}

// Array starts an empty array matcher. Attach elements before matching.
func Array() *ArrayMatcher {
	return &ArrayMatcher{}
}

// ArrayOf builds an array matcher from explicit elements. Raw JSON
// values are accepted alongside matchers and wrapped via Literal.
func ArrayOf(elements ...any) *ArrayMatcher {
	m := Array()
	for _, element := range elements {
		m.Element(element)
	}
	return m
}

// Element appends the next positional element and returns the matcher
// for chaining. Values that do not implement Matcher are wrapped as
// exact literals.
func (m *ArrayMatcher) Element(value any) *ArrayMatcher {
	m.elements = append(m.elements, asMatcher(value))
	return m
}

func (m *ArrayMatcher) Match(value any) []Error {
	array, ok := value.([]any)
	if !ok {
		return []Error{AtRoot("Value is not an array")}
	}

	var errs []Error
	actualLen, expectedLen := len(array), len(m.elements)

	if actualLen < expectedLen {
		if first, last := actualLen, expectedLen-1; first == last {
			errs = append(errs, AtRootf("Array is missing index %d", first))
		} else {
			errs = append(errs, AtRootf("Array is missing indexes: %d..%d", first, last))
		}
	}
	if actualLen > expectedLen {
		if first, last := expectedLen, actualLen-1; first == last {
			errs = append(errs, AtRootf("Array has unexpected index %d", first))
		} else {
			errs = append(errs, AtRootf("Array has unexpected indexes: %d..%d", first, last))
		}
	}

	shared := min(actualLen, expectedLen)
	for i := 0; i < shared; i++ {
		errs = append(errs, prefix(Index(i), m.elements[i].Match(array[i]))...)
	}
	return errs
}
