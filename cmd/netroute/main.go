package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/netroute/internal/cli"
	"github.com/katalvlaran/netroute/internal/ctxlog"
	"github.com/katalvlaran/netroute/internal/logging"
)

func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, wires logging and dispatches one command. Results go to
// outW; logs go to stderr or the configured log file.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, closer, err := logging.New(inv.Config.Log, os.Stderr)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger.With("command", inv.Command))

	switch inv.Command {
	case cli.CmdGenerate:
		return runGenerate(ctx, outW, inv)
	case cli.CmdCompare:
		return runCompare(ctx, outW, inv)
	case cli.CmdStats:
		return runStats(ctx, outW, inv)
	}

	return &cli.ExitError{Code: 2, Message: "unknown command " + inv.Command}
}
