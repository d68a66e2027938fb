// Package main is the entry point for the menuctl operator CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eatwithmaddie/menu-backend/cmd/menuctl/commands"
	"github.com/eatwithmaddie/menu-backend/internal/app"
	"github.com/eatwithmaddie/menu-backend/internal/config"
	"github.com/eatwithmaddie/menu-backend/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory := func(opts commands.AppOptions) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if opts.NoCache {
			cfg.Cache.Driver = config.CacheDriverMemory
		}
		// logs go to stderr so --json output stays clean
		return app.New(cfg, logger.NewWithWriter(os.Stderr, opts.LogLevel(cfg.LogLevel)), nil)
	}

	return commands.New(factory, os.Stdout).Execute(ctx)
}
