package rpc

import (
	"context"
	"testing"

	inventorypb "inventory-service/api/proto/inventory/v1"
	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"
	"inventory-service/internal/domains/inventory/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *service.StockService) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	stock := service.NewStockService(repo, events.NewLogPublisher(), nil)
	query := service.NewQueryService(repo, nil)
	return NewServer(stock, query), stock
}

func seedStock(t *testing.T, stock *service.StockService, sku, location string, onHand int64, backorderable bool) {
	t.Helper()
	_, err := stock.CreateItem(context.Background(), model.CreateItemRequest{
		SKU:            sku,
		Location:       location,
		QuantityOnHand: onHand,
		Backorderable:  backorderable,
	})
	require.NoError(t, err)
}

func TestGetStock(t *testing.T) {
	srv, stock := newTestServer(t)
	seedStock(t, stock, "WIDGET-001", "", 10, false)
	ctx := context.Background()

	resp, err := srv.GetStock(ctx, &inventorypb.GetStockRequest{Sku: "WIDGET-001"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "default", resp.Location)
	assert.Equal(t, int64(10), resp.QuantityOnHand)
	assert.Equal(t, int64(10), resp.QuantityAvailable)
	assert.True(t, resp.InStock)

	// Business failure is encoded, never a transport error.
	resp, err = srv.GetStock(ctx, &inventorypb.GetStockRequest{Sku: "UNKNOWN"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "not_found", resp.Error)
}

func TestReserveReleaseCommitRPC(t *testing.T) {
	srv, stock := newTestServer(t)
	seedStock(t, stock, "WIDGET-001", "", 10, false)
	ctx := context.Background()

	resp, err := srv.ReserveStock(ctx, &inventorypb.ReserveStockRequest{Sku: "WIDGET-001", Quantity: 3})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Regexp(t, `^RES-`, resp.ReservationId)
	assert.Equal(t, int64(3), resp.QuantityReserved)
	assert.Equal(t, int64(7), resp.QuantityAvailable)

	resp, err = srv.CommitReservation(ctx, &inventorypb.CommitReservationRequest{Sku: "WIDGET-001", Quantity: 3})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.QuantityOnHand)
	assert.Equal(t, int64(0), resp.QuantityReserved)

	resp, err = srv.ReleaseReservation(ctx, &inventorypb.ReleaseReservationRequest{Sku: "WIDGET-001", Quantity: 1})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "insufficient_reservation", resp.Error)
}

func TestReserveInsufficientStockRPC(t *testing.T) {
	srv, stock := newTestServer(t)
	seedStock(t, stock, "GADGET-002", "", 2, false)

	resp, err := srv.ReserveStock(context.Background(), &inventorypb.ReserveStockRequest{Sku: "GADGET-002", Quantity: 3})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "insufficient_stock", resp.Error)
}

func TestAdjustStockRPC(t *testing.T) {
	srv, stock := newTestServer(t)
	seedStock(t, stock, "WIDGET-001", "", 10, false)

	resp, err := srv.AdjustStock(context.Background(), &inventorypb.AdjustStockRequest{
		Sku: "WIDGET-001", Quantity: -4, Reason: "damaged in transit",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(6), resp.QuantityOnHand)
}

func TestCheckAvailabilityRPC(t *testing.T) {
	srv, stock := newTestServer(t)
	seedStock(t, stock, "X", "east", 100, false)
	seedStock(t, stock, "X", "west", 20, false)
	ctx := context.Background()

	resp, err := srv.CheckAvailability(ctx, &inventorypb.CheckAvailabilityRequest{Sku: "X", Quantity: 110})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, int64(120), resp.TotalAvailable)
	assert.Len(t, resp.Locations, 2)

	bulk, err := srv.BulkCheckAvailability(ctx, &inventorypb.BulkCheckAvailabilityRequest{
		Items: []*inventorypb.CheckAvailabilityRequest{
			{Sku: "X", Quantity: 10},
			{Sku: "UNKNOWN", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, bulk.Success)
	require.Len(t, bulk.Results, 2)
	assert.True(t, bulk.Results[0].Success)
	assert.False(t, bulk.Results[1].Success)
	assert.Equal(t, "not_found", bulk.Results[1].Error)
}
