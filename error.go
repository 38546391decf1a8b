package jsonmatch

import "fmt"

// Error is a single structural mismatch: the path into the document where
// it occurred and a human-readable reason.
type Error struct {
	Path    Path
	Message string
}

// AtRoot builds an error located at the document root.
func AtRoot(message string) Error {
	return Error{Path: RootPath(), Message: message}
}

// AtRootf builds a root error with a formatted message.
func AtRootf(format string, a ...any) Error {
	return AtRoot(fmt.Sprintf(format, a...))
}

func (e Error) String() string {
	return e.Path.String() + ": " + e.Message
}

// prefix re-roots child errors under the given segment relative to the
// parent's root.
func prefix(segment Segment, errs []Error) []Error {
	out := make([]Error, 0, len(errs))
	for _, child := range errs {
		out = append(out, Error{
			Path:    Path{Root(), segment}.Extend(child.Path),
			Message: child.Message,
		})
	}
	return out
}
