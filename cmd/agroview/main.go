// Package main is the entry point for the agroview culture dashboard CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.farmtech.dev/agroview/cmd/agroview/commands"
	"go.farmtech.dev/agroview/internal/adapters/config"
	"go.farmtech.dev/agroview/internal/adapters/logger"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*wiring.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(context.Context) (*wiring.Components, func(), error) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, nil, err
		}
		log := logger.New()
		cfg, err := config.NewLoader(log).Load(cwd)
		if err != nil {
			return nil, nil, err
		}
		c, err := wiring.New(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrValidationFailed) || errors.Is(err, domain.ErrInvalidIdentity) {
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
