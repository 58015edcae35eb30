// Package main provides the CLI entry point for changejane.
package main

import (
	"os"

	"changejane/internal/config"
	"changejane/internal/orchestrator"
	"changejane/internal/output"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, output.DefaultConfig()))
}

// run executes one batch and returns the process exit code.
func run(args []string, getenv func(string) string, outCfg output.Config) int {
	cfg, err := config.FromEnv(getenv)
	if err != nil {
		output.New(outCfg).Fail(err)
		return 1
	}
	outCfg.Verbose = cfg.Verbose
	outCfg.ColorMode = cfg.ColorMode
	out := output.New(outCfg)

	if len(args) != 1 {
		out.Error("Usage: changejane <list-file>")
		return 1
	}

	summary, err := orchestrator.Run(args[0])
	if summary == nil {
		out.Fail(err)
		return 1
	}

	for _, result := range summary.Results {
		if result.Success {
			out.Verbose("renamed: %s -> %s", result.Pair.Old, result.Pair.New)
		}
	}
	out.Verbose("%s", summary.PrintSummary())

	if summary.HasErrors() {
		out.Fail(err)
		return 1
	}

	return 0
}
