package jsonmatch

import (
	"slices"
	"strings"
)

// ObjectMatcher matches a JSON object by key: each expected field is
// matched against the candidate member of the same name, and the key
// sets are reconciled. Unexpected keys fail unless explicitly allowed.
type ObjectMatcher struct {
	allowUnexpectedKeys bool
	fields              map[string]Matcher
}

// Object starts an empty strict object matcher. Attach fields before
// matching.
func Object() *ObjectMatcher {
	return &ObjectMatcher{fields: make(map[string]Matcher)}
}

// Field sets the matcher for a key and returns the matcher for
// chaining. Values that do not implement Matcher are wrapped as exact
// literals.
func (m *ObjectMatcher) Field(key string, value any) *ObjectMatcher {
	m.fields[key] = asMatcher(value)
	return m
}

// AllowUnexpectedKeys makes the matcher tolerate candidate keys that
// have no expected field.
func (m *ObjectMatcher) AllowUnexpectedKeys() *ObjectMatcher {
	m.allowUnexpectedKeys = true
	return m
}

func (m *ObjectMatcher) Match(value any) []Error {
	object, ok := value.(map[string]any)
	if !ok {
		return []Error{AtRoot("Value is not an object")}
	}

	var errs []Error

	var missing []string
	for key := range m.fields {
		if _, present := object[key]; !present {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		errs = append(errs, AtRootf("Object is missing keys: %s", strings.Join(missing, ", ")))
	}

	if !m.allowUnexpectedKeys {
		var unexpected []string
		for key := range object {
			if _, expected := m.fields[key]; !expected {
				unexpected = append(unexpected, key)
			}
		}
		if len(unexpected) > 0 {
			slices.Sort(unexpected)
			errs = append(errs, AtRootf("Object has unexpected keys: %s", strings.Join(unexpected, ", ")))
		}
	}

	var shared []string
	for key := range m.fields {
		if _, present := object[key]; present {
			shared = append(shared, key)
		}
	}
	slices.Sort(shared)
	for _, key := range shared {
		errs = append(errs, prefix(Key(key), m.fields[key].Match(object[key]))...)
	}
	return errs
}
