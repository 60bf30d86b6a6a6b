package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campus-lost-found/config"
	"campus-lost-found/internal/item/claim"
	itemCLI "campus-lost-found/internal/item/delivery/cli"
	"campus-lost-found/internal/item/normalizer"
	"campus-lost-found/internal/item/recency"
	"campus-lost-found/internal/item/repository/backend"
	"campus-lost-found/internal/item/repository/snapshot"
	"campus-lost-found/internal/item/usecase"
	"campus-lost-found/pkg/imaging"
	"campus-lost-found/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		apiURL  string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "lostfound",
		Short:         "Campus lost & found operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", cfg.Backend.URL, "Backend base URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log backend calls")

	// The item commands need the flags parsed first, so the use case is built lazily.
	uc := &lazyUseCase{build: func() (*usecaseHandle, error) {
		level := "error"
		if verbose {
			level = "debug"
		}
		logger := log.Init(log.ZapConfig{
			Level:        level,
			Mode:         cfg.Logger.Mode,
			Encoding:     "console",
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
		return buildUseCase(ctx, cfg, apiURL, logger)
	}}
	defer func() { _ = uc.Close() }()

	root.AddCommand(itemCLI.NewItemsCommand(uc, os.Stdout))
	return root.ExecuteContext(ctx)
}

func buildUseCase(ctx context.Context, cfg *config.Config, apiURL string, logger log.Logger) (*usecaseHandle, error) {
	classifier, err := recency.NewClassifier(cfg.Recency.Timezone, cfg.Recency.ThresholdHours)
	if err != nil {
		return nil, fmt.Errorf("recency: %w", err)
	}

	client := backend.NewClient(backend.Config{
		BaseURL:       apiURL,
		Timeout:       cfg.Backend.Timeout,
		RetryAttempts: cfg.Backend.RetryAttempts,
		RetryDelay:    cfg.Backend.RetryDelay,
		Breaker: backend.BreakerConfig{
			MaxRequests:      cfg.Backend.Breaker.MaxRequests,
			Interval:         cfg.Backend.Breaker.Interval,
			Timeout:          cfg.Backend.Breaker.Timeout,
			FailureThreshold: cfg.Backend.Breaker.FailureThreshold,
		},
	}, logger)
	repo := backend.New(client, normalizer.New(apiURL, cfg.Image.Placeholder), logger)

	snapshots, closeFn, err := snapshot.New(ctx, snapshot.Config{
		Driver:        cfg.Snapshot.Driver,
		RedisAddr:     cfg.Snapshot.RedisAddr,
		RedisPassword: cfg.Snapshot.RedisPassword,
		RedisDB:       cfg.Snapshot.RedisDB,
		Key:           cfg.Snapshot.Key,
		TTL:           cfg.Snapshot.TTL,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	uc := usecase.New(
		logger,
		repo,
		snapshots,
		claim.NewRegistry(cfg.Claim.RegistrySize, cfg.Claim.RegistryTTL),
		classifier,
		imaging.New(cfg.Image.MaxDimension),
	)
	return &usecaseHandle{UseCase: uc, close: closeFn}, nil
}
