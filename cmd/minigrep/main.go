// Command minigrep reports whether one line of standard input matches a
// pattern.
//
// Usage:
//
//	echo <input_text> | minigrep -E <pattern>
//
// The exit status is 0 when the line matches and 1 when it does not or when
// the invocation or pattern is invalid.
//
// Logging is configured from the environment:
//
//	MINIGREP_LOG_LEVEL   debug, info, warn (default) or error
//	MINIGREP_LOG_FORMAT  text (default), json or logfmt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitMatch   = 0
	exitFailure = 1

	usage = "usage: minigrep -E <pattern>"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

// run executes one invocation and returns its exit status.
func run(args []string, stdin io.Reader, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, usage)
		return exitFailure
	}
	if args[0] != "-E" {
		fmt.Fprintf(stderr, "minigrep: expected first argument to be '-E', got %q\n%s\n", args[0], usage)
		return exitFailure
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitFailure
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitFailure
	}

	cmd := newRootCommand(logger)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(io.Discard)
	cmd.SetErr(stderr)

	switch err := cmd.Execute(); {
	case err == nil:
		return exitMatch
	case errors.Is(err, errNoMatch):
		return exitFailure
	default:
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitFailure
	}
}
