package checkfile

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	const payload = `
- name: login response
  json: '{"id": 1}'
  path: $.id
  expect: u16
- name: full payload
  json_file: payload.json
  expect: |
    {"id": u16, ...}
`

	checks, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("Parse() returned %d checks, want 2", len(checks))
	}

	if checks[0].Name != "login response" || checks[0].Path != "$.id" || checks[0].Expect != "u16" {
		t.Fatalf("first check = %+v", checks[0])
	}
	if checks[1].JSONFile != "payload.json" {
		t.Fatalf("second check json_file = %q, want %q", checks[1].JSONFile, "payload.json")
	}
}

func TestParseValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "missing_document",
			payload: "- name: x\n  expect: u16\n",
		},
		{
			name:    "both_document_forms",
			payload: "- json: '{}'\n  json_file: a.json\n  expect: u16\n",
		},
		{
			name:    "missing_expect",
			payload: "- json: '{}'\n",
		},
		{
			name:    "malformed_yaml",
			payload: "best: [of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.payload)); !errors.Is(err, ErrParse) {
				t.Fatalf("Parse() error = %v, want %v", err, ErrParse)
			}
		})
	}
}
