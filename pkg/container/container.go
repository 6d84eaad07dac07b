// Package container wires the application: config, database, cache, event
// sink, repositories, services and adapters. All three binaries (api, rpc,
// worker) build from the same graph.
package container

import (
	"context"
	"fmt"
	"time"

	"inventory-service/internal/config"
	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/handler"
	"inventory-service/internal/domains/inventory/repository"
	"inventory-service/internal/domains/inventory/service"
	infracache "inventory-service/internal/infrastructure/cache"
	"inventory-service/internal/infrastructure/database"
	"inventory-service/internal/rpc"
	"inventory-service/migrations"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	// Optional: nil when REDIS_ADDR is unset. The service is fully
	// functional without them; availability reads skip the cache and stock
	// events go to the log sink.
	Cache       *infracache.RedisClient
	AsynqClient *asynq.Client

	Repo      repository.Repository
	Publisher events.Publisher

	StockService *service.StockService
	QueryService *service.QueryService

	Handler   *handler.Handler
	RPCServer *rpc.Server
}

// NewContainer builds the dependency graph: connect, migrate, wire. Any
// failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbCfg)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(migrations.FS, c.DB.ConnectionString()); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c.Repo = repository.NewRepository(c.DB.Pool)

	if cfg.Redis.Addr != "" {
		c.Cache = infracache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		c.Publisher = events.NewAsynqPublisher(c.AsynqClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis wired: cache + queued event sink")
	} else {
		c.Publisher = events.NewLogPublisher()
		log.Info().Msg("no redis configured: log event sink, cache disabled")
	}

	c.StockService = service.NewStockService(c.Repo, c.Publisher, c.Cache)
	c.QueryService = service.NewQueryService(c.Repo, c.Cache)

	c.Handler = handler.NewHandler(c.StockService, c.QueryService)
	c.RPCServer = rpc.NewServer(c.StockService, c.QueryService)

	return c, nil
}

// Cleanup releases external connections. Safe to call once at shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close asynq client")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}
}
