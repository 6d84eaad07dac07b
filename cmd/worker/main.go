// The worker consumes stock events enqueued by the asynq event sink. It is
// purely downstream of the engine: the service is correct without it, and a
// worker outage only delays event processing.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"inventory-service/internal/config"
	"inventory-service/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env, os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Redis.Addr == "" {
		log.Fatal().Msg("REDIS_ADDR is required for the worker")
	}

	srv := newServer(cfg)
	mux := newMux()

	go func() {
		log.Info().Str("redis", cfg.Redis.Addr).Msg("worker starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("worker failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	srv.Shutdown()
	log.Info().Msg("worker exited")
}
