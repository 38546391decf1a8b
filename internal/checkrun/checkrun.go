// Package checkrun executes check files against the matching engine and
// collects every mismatch.
package checkrun

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jsonmatch"
	"github.com/jacoelho/jsonmatch/internal/checkfile"
	"github.com/jacoelho/jsonmatch/internal/results"
	"github.com/jacoelho/jsonmatch/literal"
)

// Runner executes check files sequentially.
type Runner struct {
	files []string
}

// New creates a runner over the given check files.
func New(files []string) *Runner {
	return &Runner{files: files}
}

// Run executes every file and returns the aggregated summary.
func (r *Runner) Run() *results.Summary {
	summary := &results.Summary{}
	for _, filename := range r.files {
		summary.Add(r.runFile(filename))
	}
	return summary
}

func (r *Runner) runFile(filename string) results.FileResult {
	started := time.Now()
	result := results.FileResult{Filename: filename}

	file, err := os.Open(filename)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(started)
		return result
	}
	checks, err := checkfile.Parse(file)
	file.Close()
	if err != nil {
		result.Err = err
		result.Duration = time.Since(started)
		return result
	}

	result.CheckCount = len(checks)
	baseDir := filepath.Dir(filename)
	for i, check := range checks {
		messages := runCheck(baseDir, check)
		if len(messages) > 0 {
			result.Failures = append(result.Failures, results.Failure{
				Check:    checkName(check, i),
				Messages: messages,
			})
		}
	}

	result.Duration = time.Since(started)
	return result
}

func checkName(check checkfile.Check, index int) string {
	if check.Name != "" {
		return check.Name
	}
	return fmt.Sprintf("check %d", index+1)
}

// runCheck returns one message per mismatch; setup problems (unreadable
// document, malformed JSON, bad expectation) surface as a single
// message so the remaining checks still run.
func runCheck(baseDir string, check checkfile.Check) []string {
	document, err := loadDocument(baseDir, check)
	if err != nil {
		return []string{err.Error()}
	}

	if check.Path != "" {
		document, err = selectPath(document, check.Path)
		if err != nil {
			return []string{err.Error()}
		}
	}

	matcher, err := literal.Compile(check.Expect)
	if err != nil {
		return []string{fmt.Sprintf("bad expectation: %v", err)}
	}

	errs := matcher.Match(document)
	messages := make([]string, 0, len(errs))
	for _, matchErr := range errs {
		messages = append(messages, matchErr.String())
	}
	return messages
}

func loadDocument(baseDir string, check checkfile.Check) (any, error) {
	raw := []byte(check.JSON)
	if check.JSONFile != "" {
		filename := check.JSONFile
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(baseDir, filename)
		}
		payload, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		raw = payload
	}

	document, err := jsonmatch.Decode(raw)
	if err != nil {
		return nil, err
	}
	return document, nil
}

func selectPath(document any, pathExpr string) (any, error) {
	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %s: %w", pathExpr, err)
	}
	selected := path.Select(document)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no value at JSONPath %s", pathExpr)
	}
	return selected[0], nil
}
