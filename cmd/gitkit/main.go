package main

import (
	"os"

	"gitkit.dev/gitkit/internal/cli"
	"gitkit.dev/gitkit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		rep := output.NewReporter(os.Stderr, output.IsInteractive())
		rep.Errorf("%v", err)
		os.Exit(1)
	}
}
