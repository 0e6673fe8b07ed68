// Command pathrace races grid pathfinding algorithms against each other.
//
//	pathrace run   [flags]   run a session headless and print the result
//	pathrace serve           serve the HTTP API
//
// Defaults come from the environment (see internal/config); flags override.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/internal/config"
	"github.com/katalvlaran/pathrace/internal/logging"
)

const usage = `usage: pathrace <command> [flags]

commands:
  run     run a comparison session and print it
  serve   start the HTTP API
`

var errUsage = errors.New("pathrace: bad usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dispatch(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "pathrace: %v\n", err)
		}
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger, err := logging.New(&logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(zap.String("service", "pathrace"), zap.String("env", cfg.Environment))

	switch args[0] {
	case "run":
		return runCommand(ctx, cfg, logger, args[1:], stdout, stderr)
	case "serve":
		return serveCommand(ctx, cfg, logger)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}
}
