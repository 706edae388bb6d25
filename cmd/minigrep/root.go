package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auvred/minire"
)

// errNoMatch is returned by the command when the line does not match. It
// maps to exit status 1 without a message.
var errNoMatch = errors.New("no match")

func newRootCommand(logger *slog.Logger) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:           "minigrep -E <pattern>",
		Short:         "Reports whether a line read from standard input matches a pattern.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return grep(logger, pattern, line)
		},
	}

	cmd.Flags().StringVarP(&pattern, "extended-regexp", "E", "", "the pattern to match")
	_ = cmd.MarkFlagRequired("extended-regexp")

	return cmd
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func grep(logger *slog.Logger, pattern, line string) error {
	logger.Debug("compiling pattern", "pattern", pattern)
	re, err := minire.Compile(pattern)
	if err != nil {
		return err
	}
	logger.Debug("compiled pattern", "tokens", minire.FormatTokens(re.Tokens()), "groups", re.NumGroups())

	matched := re.MatchString(line)
	logger.Debug("matched", "input_len", len(line), "match", matched)
	if !matched {
		return errNoMatch
	}
	return nil
}
