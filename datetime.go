package jsonmatch

import (
	"fmt"
	"time"

	"github.com/jacoelho/jsonmatch/internal/clock"
)

// rfc3339NumericOffset renders UTC as "+00:00" rather than "Z".
const rfc3339NumericOffset = "2006-01-02T15:04:05-07:00"

// DateTimeMatcher matches RFC 3339 timestamp strings carrying a zero
// UTC offset, optionally bounded within a time window. Bounds compare
// at second precision.
type DateTimeMatcher struct {
	lowerBound     *time.Time
	lowerInclusive bool
	upperBound     *time.Time
	upperInclusive bool
}

// DateTimeUTC matches any RFC 3339 timestamp in UTC. A value without
// its own offset is assumed to be UTC.
func DateTimeUTC() *DateTimeMatcher {
	return &DateTimeMatcher{}
}

// RecentUTC matches UTC timestamps within the last 60 seconds through
// now, both bounds inclusive. The window is fixed at construction.
func RecentUTC() *DateTimeMatcher {
	now := clock.Now().UTC()
	return DateTimeUTC().NotBefore(now.Add(-time.Minute)).NotAfter(now)
}

// NotBefore sets an inclusive lower bound.
func (m *DateTimeMatcher) NotBefore(t time.Time) *DateTimeMatcher {
	m.lowerBound, m.lowerInclusive = &t, true
	return m
}

// After sets an exclusive lower bound.
func (m *DateTimeMatcher) After(t time.Time) *DateTimeMatcher {
	m.lowerBound, m.lowerInclusive = &t, false
	return m
}

// NotAfter sets an inclusive upper bound.
func (m *DateTimeMatcher) NotAfter(t time.Time) *DateTimeMatcher {
	m.upperBound, m.upperInclusive = &t, true
	return m
}

// Before sets an exclusive upper bound.
func (m *DateTimeMatcher) Before(t time.Time) *DateTimeMatcher {
	m.upperBound, m.upperInclusive = &t, false
	return m
}

func (m *DateTimeMatcher) Match(value any) []Error {
	s, ok := value.(string)
	if !ok {
		return []Error{AtRoot("Datetime value needs to be a string")}
	}

	parsed, err := parseDateTime(s)
	if err != nil {
		return []Error{AtRootf("Could not parse string as rfc3339 datetime: %v", err)}
	}

	if _, offset := parsed.Zone(); offset != 0 {
		return []Error{AtRoot("Datetime is not in UTC")}
	}

	if m.upperBound != nil {
		if m.upperInclusive {
			if parsed.Unix() > m.upperBound.Unix() {
				return []Error{AtRoot("Datetime is after upper bound")}
			}
		} else if parsed.Unix() >= m.upperBound.Unix() {
			return []Error{AtRoot("Datetime is after or equal to upper bound")}
		}
	}
	if m.lowerBound != nil {
		if m.lowerInclusive {
			if parsed.Unix() < m.lowerBound.Unix() {
				return []Error{AtRootf("Datetime is before lower bound of %s",
					m.lowerBound.UTC().Format(rfc3339NumericOffset))}
			}
		} else if parsed.Unix() <= m.lowerBound.Unix() {
			return []Error{AtRoot("Datetime is before or equal to lower bound")}
		}
	}
	return nil
}

// parseDateTime parses an RFC 3339 timestamp, retrying with an appended
// "Z" when the value omits its offset. The retry keeps the original
// parse error: the value, not the fallback, is what failed.
func parseDateTime(s string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return parsed, nil
	}
	if withZone, retryErr := time.Parse(time.RFC3339, s+"Z"); retryErr == nil {
		return withZone, nil
	}
	return time.Time{}, fmt.Errorf("Value cannot be parsed as an RFC 3339 timestamp: %v", err)
}
