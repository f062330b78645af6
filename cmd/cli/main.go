package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"property-listings/config"
	"property-listings/internal/listing/repository/httpapi"
	"property-listings/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Listings API: %s", cfg.API.BaseURL)

	// 3. API client
	client, err := httpapi.New(logger, httpapi.Config{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout,
		RateLimitPerSec: cfg.API.RateLimitPerSec,
		RateBurst:       cfg.API.RateBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize API client: ", err)
		os.Exit(1)
	}

	// 4. Run
	a := newApp(client, logger, surveyPrompter{}, os.Stdout, cfg.Detail.RedirectDelay)
	if err := a.run(ctx); err != nil {
		logger.Error(ctx, "Listings browser stopped: ", err)
		os.Exit(1)
	}
}
