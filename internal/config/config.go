// Package config parses command line arguments for the jmcheck tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jacoelho/jsonmatch/internal/exit"
)

var ErrNoCheckFiles = errors.New("no check files specified")

// Config represents the complete configuration for the jmcheck tool.
type Config struct {
	// CheckFiles are the YAML files holding checks to run.
	CheckFiles []string
	// Quiet suppresses per-file lines and prints the summary only.
	Quiet bool
}

// Parse parses command line arguments into a Config. On usage errors it
// returns an exit result instead.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: no arguments provided\n")
	}

	cfg := &Config{}

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVar(&cfg.Quiet, "q", false, "print the summary only")
	flags.Usage = func() {}

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(usage(args[0]))
		}
		return nil, exit.Errorf("Error: %v\n\n%s", err, usage(args[0]))
	}

	cfg.CheckFiles = flags.Args()
	if len(cfg.CheckFiles) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoCheckFiles, usage(args[0]))
	}

	return cfg, nil
}

func usage(program string) string {
	return fmt.Sprintf(`Usage: %s [options] <check-file>...

Runs declarative JSON structure checks from YAML files.

Options:
  -q    print the summary only
`, program)
}
