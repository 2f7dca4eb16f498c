package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/chainedhashmap/internal/conf"
	"github.com/gostonefire/chainedhashmap/internal/logutil"
	"github.com/gostonefire/chainedhashmap/internal/scenario"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run - Parses arguments, loads the scenario and runs it. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("chaintab", flag.ContinueOnError)
	flags.SetOutput(stderr)
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error), overrides scenario and environment")
	logFormat := flags.String("log-format", "", "log format (console, json), overrides scenario and environment")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: chaintab [flags] scenario.toml\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	sc, err := conf.LoadScenario(flags.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	if *logLevel != "" {
		sc.Log.Level = *logLevel
	}
	if *logFormat != "" {
		sc.Log.Format = *logFormat
	}

	logger, err := logutil.NewLogger(sc.Log)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	err = scenario.NewRunner(sc, logger, stdout).Run()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}

	return 0
}
