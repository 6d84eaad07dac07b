// The rpc binary serves the typed intra-cluster surface. It shares the
// container (and therefore the engine, store and event sink) with cmd/api.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventorypb "inventory-service/api/proto/inventory/v1"
	"inventory-service/pkg/container"
	"inventory-service/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
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

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer appContainer.Cleanup()

	port := appContainer.Config.RPC.Port
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatal().Err(err).Str("port", port).Msg("failed to listen")
	}

	opts := []grpc.ServerOption{
		grpc.UnaryInterceptor(accessLog),
	}
	if workers := appContainer.Config.RPC.Workers; workers > 0 {
		opts = append(opts, grpc.NumStreamWorkers(uint32(workers)))
	}

	srv := grpc.NewServer(opts...)
	inventorypb.RegisterInventoryServiceServer(srv, appContainer.RPCServer)

	go func() {
		log.Info().
			Str("port", port).
			Str("environment", appContainer.Config.App.Environment).
			Msg("rpc server starting")

		if err := srv.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("rpc server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down rpc server")

	// GracefulStop waits for in-flight calls; fall back to a hard stop if
	// it takes too long.
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		srv.Stop()
	}

	log.Info().Msg("rpc server exited")
}

// accessLog logs one line per unary call.
func accessLog(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("rpc request")

	return resp, err
}
