package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"botlist-backend/internal/bot"
	"botlist-backend/internal/common/config"
	"botlist-backend/internal/common/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("botlist-bot", cfg.Debug)
	logger.Info().Str("api_base_url", cfg.APIBaseURL).Msg("Starting BotList bot")

	client := bot.NewClient(cfg.APIBaseURL)
	b, err := bot.New(cfg, client)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("Bot stopped")
	}
	logger.Info().Msg("Bot shut down")
}
