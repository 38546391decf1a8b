// Package formatter defines the output contract for check run reports.
package formatter

import "github.com/jacoelho/jsonmatch/internal/results"

// Formatter renders a run summary to its output destination.
type Formatter interface {
	Format(summary *results.Summary) error
}
