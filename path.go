package jsonmatch

import (
	"strconv"
	"strings"
)

type segmentKind int

const (
	segmentRoot segmentKind = iota
	segmentIndex
	segmentKey
)

// Segment is one step in a document location: the root marker, an array
// index, or an object key.
type Segment struct {
	kind  segmentKind
	index int
	key   string
}

// Root returns the document root marker, rendered as "$".
func Root() Segment {
	return Segment{kind: segmentRoot}
}

// Index returns an array index segment.
func Index(i int) Segment {
	return Segment{kind: segmentIndex, index: i}
}

// Key returns an object key segment.
func Key(name string) Segment {
	return Segment{kind: segmentKey, key: name}
}

func (s Segment) String() string {
	switch s.kind {
	case segmentIndex:
		return strconv.Itoa(s.index)
	case segmentKey:
		return s.key
	default:
		return "$"
	}
}

// Path locates a value within a JSON document as an ordered sequence of
// segments starting at the root.
type Path []Segment

// RootPath returns the default path, consisting of the root marker alone.
func RootPath() Path {
	return Path{Root()}
}

// Extend appends child segments to p, dropping the child's own leading
// root marker so it never appears twice. The result shares no backing
// storage with either input.
func (p Path) Extend(child Path) Path {
	if len(child) > 0 && child[0].kind == segmentRoot {
		child = child[1:]
	}
	out := make(Path, 0, len(p)+len(child))
	out = append(out, p...)
	out = append(out, child...)
	return out
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, segment := range p {
		parts[i] = segment.String()
	}
	return strings.Join(parts, ".")
}
