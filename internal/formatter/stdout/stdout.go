// Package stdout renders check run reports as plain text.
package stdout

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jsonmatch/internal/formatter"
	"github.com/jacoelho/jsonmatch/internal/results"
)

// Formatter implements stdout-based output formatting.
type Formatter struct {
	writer io.Writer
	quiet  bool
}

// New creates a formatter writing to stdout.
func New(quiet bool) formatter.Formatter {
	return NewWithWriter(os.Stdout, quiet)
}

// NewWithWriter creates a formatter with a custom writer, useful for
// testing or redirecting output to files.
func NewWithWriter(writer io.Writer, quiet bool) formatter.Formatter {
	return &Formatter{
		writer: writer,
		quiet:  quiet,
	}
}

// Format prints one status line per file, every mismatch of every
// failing check, and a closing summary block.
func (f *Formatter) Format(summary *results.Summary) error {
	if !f.quiet {
		for _, fileResult := range summary.FileResults {
			if err := f.formatFile(fileResult); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(f.writer, "--------------------------------------------------------------------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Executed files:  %d\n", summary.ExecutedFiles()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Executed checks: %d\n", summary.ExecutedChecks()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Failed files:    %d\n", summary.FailedFiles()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Failed checks:   %d\n", summary.FailedChecks()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Duration:        %d ms\n", summary.TotalDuration.Milliseconds()); err != nil {
		return err
	}
	return nil
}

func (f *Formatter) formatFile(fileResult results.FileResult) error {
	status := "Success"
	switch {
	case fileResult.Err != nil:
		status = fmt.Sprintf("Failed: %v", fileResult.Err)
	case len(fileResult.Failures) > 0:
		status = fmt.Sprintf("Failed: %d check(s)", len(fileResult.Failures))
	}

	_, err := fmt.Fprintf(f.writer, "%s: %s (%d check(s) in %d ms)\n",
		fileResult.Filename, status, fileResult.CheckCount, fileResult.Duration.Milliseconds())
	if err != nil {
		return err
	}

	for _, failure := range fileResult.Failures {
		if _, err := fmt.Fprintf(f.writer, "  %s:\n", failure.Check); err != nil {
			return err
		}
		for _, message := range failure.Messages {
			if _, err := fmt.Fprintf(f.writer, "    - %s\n", message); err != nil {
				return err
			}
		}
	}
	return nil
}
