package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katakuxiko/qa-service/internal/api"
	"github.com/katakuxiko/qa-service/internal/bootstrap"
	"github.com/katakuxiko/qa-service/internal/config"
	"github.com/katakuxiko/qa-service/internal/logging"
	"github.com/katakuxiko/qa-service/internal/service"
	"github.com/katakuxiko/qa-service/internal/store"
)

const shutdownTimeout = 30 * time.Second

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "qa-server",
		Short:         "Answers questions with an OpenAI model and records each QA pair",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (default ./config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("logging.New() > %w", err)
	}

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("store.Open() > %w", err)
	}
	qaStore, err := store.NewPgStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("store.NewPgStore() > %w", err)
	}

	llm := service.NewLLMClient(cfg.OpenAI, logger)
	qa := service.NewQAService(llm, qaStore, logger)

	app := api.NewApp(cfg.Server, logger)
	api.RegisterRoutes(app, api.NewHandler(qa, llm, logger))

	lifecycle := bootstrap.New(shutdownTimeout)
	lifecycle.AddShutdownHook(func(context.Context) error {
		return qaStore.Close()
	})
	lifecycle.AddShutdownHook(app.ShutdownWithContext)

	err = lifecycle.Run(ctx, func(ctx context.Context) error {
		logger.Info().
			Str("addr", cfg.Server.Addr).
			Str("model", cfg.OpenAI.Model).
			Msg("server started")
		return app.Listen(cfg.Server.Addr)
	})
	if err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
