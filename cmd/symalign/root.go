// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/symalign"
	"github.com/matt-FFFFFF/symalign/internal/align"
	"github.com/matt-FFFFFF/symalign/internal/ctxlog"
	"github.com/matt-FFFFFF/symalign/internal/textio"
	"github.com/urfave/cli/v3"
)

const (
	outputFlag  = "output"
	checkFlag   = "check"
	statsFlag   = "stats"
	logJSONFlag = "log-json"
	stdinName   = "<stdin>"
)

var (
	// ErrTooManyArgs is returned when more than one input is given.
	ErrTooManyArgs = errors.New("at most one input may be given")
	// ErrNotAligned is returned in check mode when the trailing symbols do not share one column.
	ErrNotAligned = errors.New("input is not aligned")
	// ErrWriteStats is returned when the stats cannot be written.
	ErrWriteStats = errors.New("failed to write stats")
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "symalign",
		Usage: "align trailing braces, semicolons and commas to a common column",
		Description: `symalign pads every line that ends in '{', '}', ';' or ',' so that the
symbol sits on the column given by the longest line of the input.
Lines that end in anything else are left untouched.

The input is read from the file named by the only argument, or from stdin
when it is omitted or "-". Remote inputs use Hashicorp's go-getter syntax,
for example git::https://github.com/org/repo//src/main.rs?ref=v1.
See https://github.com/hashicorp/go-getter. A local file whose name looks
like such a URL is still read as a local file.

Logs go to stderr. Set SYMALIGN_LOG_LEVEL to DEBUG, INFO, WARN or ERROR
to change the level, the default is WARN.`,
		ArgsUsage: "[input]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      outputFlag,
				Aliases:   []string{"o"},
				Usage:     "Write the aligned text to this file instead of stdout",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.BoolFlag{
				Name:        checkFlag,
				Usage:       "Do not write anything, fail unless the trailing symbols already share one column",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        statsFlag,
				Usage:       "Write a YAML summary of the alignment to stderr",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        logJSONFlag,
				Usage:       "Log as JSON instead of pretty text",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action:          actionFunc,
		Reader:          os.Stdin,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Version:         fmt.Sprintf("%s (commit: %s)", symalign.Version, symalign.Commit),
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		HideHelpCommand: true,
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(logJSONFlag) {
		ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
	}

	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	if n := cmd.Args().Len(); n > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, n)
	}

	input := cmd.Args().First()

	text, err := textio.Read(ctx, input, cmd.Reader)
	if err != nil {
		return err
	}

	out, stats := align.Report(text)
	logger.Info("aligned input",
		"input", displayName(input),
		"lines", stats.Lines,
		"eligible", stats.Eligible,
		"column", stats.Column,
	)

	if cmd.Bool(statsFlag) {
		if err := writeStats(cmd.ErrWriter, stats); err != nil {
			return err
		}
	}

	if cmd.Bool(checkFlag) {
		if !align.IsAligned(text) {
			return fmt.Errorf("%w: %s", ErrNotAligned, displayName(input))
		}

		return nil
	}

	// Nothing has been written yet, so a cancelled run leaves the output untouched.
	if err := ctx.Err(); err != nil {
		return err
	}

	return textio.Write(ctx, cmd.String(outputFlag), cmd.Writer, out)
}

func writeStats(w io.Writer, stats align.Stats) error {
	b, err := yaml.Marshal(stats)
	if err != nil {
		return errors.Join(ErrWriteStats, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWriteStats, err)
	}

	return nil
}

func displayName(input string) string {
	if input == "" || input == textio.StdioPath {
		return stdinName
	}

	return input
}
