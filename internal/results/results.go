// Package results aggregates check run outcomes for reporting.
package results

import "time"

// Failure is one failed check with every mismatch it produced.
type Failure struct {
	Check    string
	Messages []string
}

// FileResult is the outcome of running a single check file.
type FileResult struct {
	Filename   string
	CheckCount int
	Failures   []Failure
	// Err is set when the file itself could not be processed (unreadable,
	// malformed YAML, bad expectation syntax).
	Err      error
	Duration time.Duration
}

// Failed reports whether the file produced any failure.
func (r FileResult) Failed() bool {
	return r.Err != nil || len(r.Failures) > 0
}

// Summary aggregates the outcome of a whole run.
type Summary struct {
	FileResults   []FileResult
	TotalDuration time.Duration
}

// Add appends a file result and folds it into the totals.
func (s *Summary) Add(result FileResult) {
	s.FileResults = append(s.FileResults, result)
	s.TotalDuration += result.Duration
}

// ExecutedFiles returns the number of files processed.
func (s *Summary) ExecutedFiles() int {
	return len(s.FileResults)
}

// ExecutedChecks returns the number of checks run across all files.
func (s *Summary) ExecutedChecks() int {
	total := 0
	for _, result := range s.FileResults {
		total += result.CheckCount
	}
	return total
}

// FailedFiles returns the number of files with at least one failure.
func (s *Summary) FailedFiles() int {
	failed := 0
	for _, result := range s.FileResults {
		if result.Failed() {
			failed++
		}
	}
	return failed
}

// FailedChecks returns the number of failing checks across all files.
func (s *Summary) FailedChecks() int {
	failed := 0
	for _, result := range s.FileResults {
		failed += len(result.Failures)
	}
	return failed
}

// Ok reports whether the whole run succeeded.
func (s *Summary) Ok() bool {
	return s.FailedFiles() == 0
}
