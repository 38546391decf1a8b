package main

import (
	"os"

	"github.com/jacoelho/jsonmatch/internal/checkrun"
	"github.com/jacoelho/jsonmatch/internal/config"
	"github.com/jacoelho/jsonmatch/internal/formatter/stdout"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	summary := checkrun.New(cfg.CheckFiles).Run()

	if err := stdout.New(cfg.Quiet).Format(summary); err != nil {
		return 1
	}

	if summary.Ok() {
		return 0
	}
	return 1
}
