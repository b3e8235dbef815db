package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-assistant/config"
	"task-assistant/internal/bootstrap"
	"task-assistant/internal/task/delivery/cli"
	"task-assistant/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Log lines on stdout would interleave with the conversation.
	if cfg.Logger.FilePath == "" {
		cfg.Logger.FilePath = "logs/task-assistant.log"
	}
	logger := bootstrap.NewLogger(cfg.Logger)
	defer log.Sync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	taskUC, err := bootstrap.NewTaskUseCase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	shell := cli.New(logger, taskUC, os.Stdin, os.Stdout, cli.UI{
		Welcome: cfg.UI.Welcome,
		Goodbye: cfg.UI.Goodbye,
		Divider: cfg.UI.Divider,
	})
	return shell.Run(ctx)
}
