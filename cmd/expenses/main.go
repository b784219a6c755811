package main

import (
	"context"
	"os"

	"github.com/Duncan-Britt/Expenses/internal/cli"
	applog "github.com/Duncan-Britt/Expenses/internal/log"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx := context.Background()

	store := cli.InitStore(ctx, logger, cfg.DatabaseURL)
	defer store.Close()

	rootCmd := cli.NewRootCmd(store, os.Stdin, os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.WithComponent(applog.ComponentCLI).ErrorContext(ctx, "Command failed", "error", err)
		return err
	}
	return nil
}
