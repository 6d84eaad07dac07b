// Package events carries stock changes out of the transition engine. Sinks
// are pluggable; publishing happens after commit and its failure is logged,
// never surfaced to the caller.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Event types
const (
	TypeStockMovement = "stock_movement"
	TypeLowStock      = "low_stock"
)

// Asynq task types
const (
	TaskStockEvent = "stock:event"
	TaskLowStock   = "stock:low_stock"
)

// Event describes one committed stock change.
type Event struct {
	EventType    string    `json:"event_type"`
	SKU          string    `json:"sku"`
	Location     string    `json:"location"`
	MovementID   uuid.UUID `json:"movement_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
}

// Publisher is the event sink contract.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes events as structured log lines. It is the default sink
// when no queue is configured.
type LogPublisher struct{}

// NewLogPublisher creates a log-backed publisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish implements Publisher.Publish
func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	log.Info().
		Str("event_type", event.EventType).
		Str("sku", event.SKU).
		Str("location", event.Location).
		Str("movement_id", event.MovementID.String()).
		Str("movement_type", event.MovementType).
		Int64("quantity", event.Quantity).
		Msg("Stock event")
	return nil
}

// AsynqPublisher enqueues events as background tasks for the worker binary.
type AsynqPublisher struct {
	client *asynq.Client
}

// NewAsynqPublisher creates a queue-backed publisher
func NewAsynqPublisher(client *asynq.Client) *AsynqPublisher {
	return &AsynqPublisher{client: client}
}

// Publish implements Publisher.Publish
func (p *AsynqPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stock event: %w", err)
	}

	taskType := TaskStockEvent
	if event.EventType == TypeLowStock {
		taskType = TaskLowStock
	}

	task := asynq.NewTask(taskType, payload)
	if _, err := p.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue stock event: %w", err)
	}

	return nil
}
