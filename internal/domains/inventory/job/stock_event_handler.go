// Package job holds the asynq task handlers consumed by cmd/worker. They sit
// strictly downstream of the transition engine: a failing or retrying task
// never affects the stock change that produced it.
package job

import (
	"context"
	"encoding/json"
	"fmt"

	"inventory-service/internal/domains/inventory/events"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// StockEventHandler processes stock:event tasks. Today it records the event;
// routing to a message bus slots in here without touching the engine.
type StockEventHandler struct{}

// NewStockEventHandler creates a stock event handler
func NewStockEventHandler() *StockEventHandler {
	return &StockEventHandler{}
}

// ProcessTask implements asynq.Handler
func (h *StockEventHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var event events.Event
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		return fmt.Errorf("failed to decode stock event: %w: %w", err, asynq.SkipRetry)
	}

	log.Info().
		Str("sku", event.SKU).
		Str("location", event.Location).
		Str("movement_id", event.MovementID.String()).
		Str("movement_type", event.MovementType).
		Int64("quantity", event.Quantity).
		Msg("Processed stock event")

	return nil
}

// LowStockHandler processes stock:low_stock tasks emitted when available
// stock falls to the reorder point.
type LowStockHandler struct{}

// NewLowStockHandler creates a low stock alert handler
func NewLowStockHandler() *LowStockHandler {
	return &LowStockHandler{}
}

// ProcessTask implements asynq.Handler
func (h *LowStockHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var event events.Event
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		return fmt.Errorf("failed to decode low stock event: %w: %w", err, asynq.SkipRetry)
	}

	// Quantity carries the remaining available stock for low_stock events.
	log.Warn().
		Str("sku", event.SKU).
		Str("location", event.Location).
		Int64("available", event.Quantity).
		Msg("Low stock alert")

	return nil
}
