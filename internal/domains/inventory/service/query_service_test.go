package service

import (
	"context"
	"testing"

	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueryService(t *testing.T) (*QueryService, *StockService) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	stock := NewStockService(repo, &recordingPublisher{}, nil)
	return NewQueryService(repo, nil), stock
}

func seedLocations(t *testing.T, stock *StockService) {
	t.Helper()
	ctx := context.Background()
	for _, seed := range []struct {
		sku, location string
		onHand        int64
		backorder     bool
	}{
		{"X", "east", 100, false},
		{"X", "west", 20, false},
		{"Y", "east", 0, true},
		{"Z", "east", 0, false},
	} {
		_, err := stock.CreateItem(ctx, model.CreateItemRequest{
			SKU:            seed.sku,
			Location:       seed.location,
			QuantityOnHand: seed.onHand,
			Backorderable:  seed.backorder,
		})
		require.NoError(t, err)
	}
}

func TestCheckAvailability(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)
	ctx := context.Background()

	report, err := query.CheckAvailability(ctx, "X", 110, "")
	require.NoError(t, err)
	assert.Equal(t, int64(120), report.TotalAvailable)
	assert.True(t, report.IsAvailable)
	assert.False(t, report.Backorderable)
	assert.Len(t, report.Locations, 2)

	report, err = query.CheckAvailability(ctx, "X", 130, "")
	require.NoError(t, err)
	assert.False(t, report.IsAvailable)

	// Restricted to one location only that row counts.
	report, err = query.CheckAvailability(ctx, "X", 50, "west")
	require.NoError(t, err)
	assert.Equal(t, int64(20), report.TotalAvailable)
	assert.False(t, report.IsAvailable)
}

func TestCheckAvailabilityBackorderable(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)

	// Zero stock but backorderable: always available.
	report, err := query.CheckAvailability(context.Background(), "Y", 1000, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.TotalAvailable)
	assert.True(t, report.Backorderable)
	assert.True(t, report.IsAvailable)
}

func TestCheckAvailabilityErrors(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)
	ctx := context.Background()

	_, err := query.CheckAvailability(ctx, "X", 0, "")
	require.Error(t, err)
	assert.True(t, model.IsBadInputError(err))

	_, err = query.CheckAvailability(ctx, "UNKNOWN", 1, "")
	require.Error(t, err)
	assert.True(t, model.IsNotFoundError(err))

	_, err = query.CheckAvailability(ctx, "X", 1, "north")
	require.Error(t, err)
	assert.True(t, model.IsNotFoundError(err))
}

func TestBulkCheckAvailability(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)

	reports, err := query.BulkCheckAvailability(context.Background(), model.BulkAvailabilityRequest{
		Items: []model.AvailabilityQuery{
			{SKU: "X", Quantity: 10},
			{SKU: "Y", Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.True(t, reports[0].IsAvailable)
	assert.True(t, reports[1].IsAvailable)
}

func TestTotalAvailableForSKU(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)

	total, err := query.TotalAvailableForSKU(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)
}

func TestListFilters(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)
	ctx := context.Background()

	inStock := true
	items, total, err := query.List(ctx, model.ListItemsRequest{InStock: &inStock, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)

	outOfStock := true
	_, total, err = query.List(ctx, model.ListItemsRequest{OutOfStock: &outOfStock, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = query.List(ctx, model.ListItemsRequest{SKU: "X", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestLowStockList(t *testing.T) {
	query, stock := newTestQueryService(t)
	ctx := context.Background()

	point := int64(5)
	_, err := stock.CreateItem(ctx, model.CreateItemRequest{
		SKU: "LOW", QuantityOnHand: 3, ReorderPoint: &point,
	})
	require.NoError(t, err)
	_, err = stock.CreateItem(ctx, model.CreateItemRequest{
		SKU: "FULL", QuantityOnHand: 50, ReorderPoint: &point,
	})
	require.NoError(t, err)
	// Unset reorder_point never counts as low.
	_, err = stock.CreateItem(ctx, model.CreateItemRequest{SKU: "UNSET", QuantityOnHand: 0})
	require.NoError(t, err)

	items, total, err := query.LowStock(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "LOW", items[0].SKU)
}

func TestLocationsAndAggregates(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)
	ctx := context.Background()

	locations, err := query.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "west"}, locations)

	aggregates, err := query.AggregateBySKU(ctx)
	require.NoError(t, err)
	require.Len(t, aggregates, 3)
	assert.Equal(t, "X", aggregates[0].SKU)
	assert.Equal(t, 2, aggregates[0].LocationCount)
	assert.Equal(t, int64(120), aggregates[0].TotalOnHand)
}

func TestMovementsPaginationAndFilter(t *testing.T) {
	query, stock := newTestQueryService(t)
	seedLocations(t, stock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := stock.Receive(ctx, "X", model.AdjustmentRequest{Location: "east", Quantity: 1})
		require.NoError(t, err)
	}
	_, err := stock.Reserve(ctx, "X", model.QuantityRequest{Location: "east", Quantity: 1})
	require.NoError(t, err)

	movements, total, err := query.Movements(ctx, "X", "east", model.ListMovementsRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, movements, 2)

	movements, total, err = query.Movements(ctx, "X", "east", model.ListMovementsRequest{
		MovementType: model.MovementReservation, Page: 1, PerPage: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, movements, 1)

	m, err := query.GetMovement(ctx, movements[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.MovementReservation, m.MovementType)

	_, _, err = query.Movements(ctx, "UNKNOWN", "", model.ListMovementsRequest{Page: 1, PerPage: 10})
	require.Error(t, err)
	assert.True(t, model.IsNotFoundError(err))
}
