package main

import (
	"context"

	"inventory-service/internal/config"
	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/job"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func newServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("task failed")
			}),
		},
	)
}

func newMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(events.TaskStockEvent, job.NewStockEventHandler())
	mux.Handle(events.TaskLowStock, job.NewLowStockHandler())
	return mux
}
