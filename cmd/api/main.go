package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/pkg/logger"
)

func main() {
	// .env is for local development; production uses the real environment.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("development", "info")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		stop()
		os.Exit(1)
	}
}
