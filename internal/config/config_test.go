package config

import (
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"jmcheck", "-q", "a.yaml", "b.yaml"})
	if exitResult != nil {
		t.Fatalf("Parse() exit result = %+v", exitResult)
	}
	if !cfg.Quiet {
		t.Fatal("Quiet = false, want true")
	}
	if len(cfg.CheckFiles) != 2 || cfg.CheckFiles[0] != "a.yaml" {
		t.Fatalf("CheckFiles = %v", cfg.CheckFiles)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no_arguments", args: nil},
		{name: "no_check_files", args: []string{"jmcheck"}},
		{name: "unknown_flag", args: []string{"jmcheck", "-nope", "a.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, exitResult := Parse(tt.args)
			if exitResult == nil {
				t.Fatal("Parse() expected exit result")
			}
			if exitResult.ExitCode != 1 {
				t.Fatalf("ExitCode = %d, want 1", exitResult.ExitCode)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"jmcheck", "-h"})
	if exitResult == nil {
		t.Fatal("Parse() expected exit result for -h")
	}
	if exitResult.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", exitResult.ExitCode)
	}
}
