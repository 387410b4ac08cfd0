// Package main provides the CLI entrypoint for the domain intelligence service.
// It wires subcommands (serve, migrate, check, generate, quote), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"domainintel/internal/config"
	"domainintel/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads .env, then the YAML file at path (when it exists) and the
// environment, and sets up logging.
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("config file %s not found, using environment only", path)
		path = ""
	}

	log.Println("loading config ...")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	logger.Setup(cfg.Environment)

	return cfg, nil
}

// main sets up the root Cobra command and registers subcommands before
// executing the CLI. Subcommands share cfg, which is filled before any of
// them runs.
func main() {
	cfg := &config.Config{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "domainintel",
		Short:         "Domain intelligence lookups, history and monitoring",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		checkCommand(cfg),
		generateCommand(cfg),
		quoteCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
