// Package checkfile defines the YAML check file format for jmcheck and
// parses it into runtime checks.
//
// A check file is a sequence of checks:
//
//   - name: login response
//     json: '{"id": 1, "token": "..."}'
//     path: $.id
//     expect: u16
//   - name: full payload
//     json_file: payload.json
//     expect: |
//     {"id": u16, "token": uuid, ...}
package checkfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var ErrParse = errors.New("invalid check file")

// Check is one declarative expectation against a JSON document.
type Check struct {
	// Name identifies the check in reports.
	Name string `yaml:"name"`
	// JSON is the document to check, inline.
	JSON string `yaml:"json"`
	// JSONFile is the document to check, read from a file relative to
	// the check file. Mutually exclusive with JSON.
	JSONFile string `yaml:"json_file"`
	// Path optionally selects a subdocument by JSONPath before matching.
	Path string `yaml:"path"`
	// Expect is the expected shape in matcher literal syntax.
	Expect string `yaml:"expect"`
}

// Parse decodes a check file and validates every entry.
func Parse(r io.Reader) ([]Check, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var checks []Check
	if err := yaml.Unmarshal(payload, &checks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for i, check := range checks {
		if err := validate(check); err != nil {
			return nil, fmt.Errorf("%w: check %d (%s): %v", ErrParse, i+1, describe(check), err)
		}
	}
	return checks, nil
}

func validate(check Check) error {
	switch {
	case check.JSON == "" && check.JSONFile == "":
		return errors.New("one of json or json_file is required")
	case check.JSON != "" && check.JSONFile != "":
		return errors.New("json and json_file are mutually exclusive")
	case check.Expect == "":
		return errors.New("expect is required")
	}
	return nil
}

func describe(check Check) string {
	if check.Name != "" {
		return check.Name
	}
	return "unnamed"
}
