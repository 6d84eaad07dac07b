package service

import (
	"context"
	"sync"
	"testing"

	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) byType(eventType string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []events.Event{}
	for _, e := range p.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newTestStockService(t *testing.T) (*StockService, *repository.MemoryRepository, *recordingPublisher) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	pub := &recordingPublisher{}
	return NewStockService(repo, pub, nil), repo, pub
}

func seedItem(t *testing.T, svc *StockService, sku string, onHand int64, backorderable bool) *model.InventoryItem {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), model.CreateItemRequest{
		SKU:            sku,
		QuantityOnHand: onHand,
		Backorderable:  backorderable,
	})
	require.NoError(t, err)
	return item
}

func TestCreateItemDefaultsLocation(t *testing.T) {
	svc, _, _ := newTestStockService(t)

	item := seedItem(t, svc, "WIDGET-001", 10, false)

	assert.Equal(t, "default", item.Location)
	assert.Equal(t, int64(10), item.QuantityOnHand)
	assert.Equal(t, int64(0), item.QuantityReserved)
	assert.Equal(t, int64(1), item.LockVersion)
}

func TestCreateItemDuplicate(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	_, err := svc.CreateItem(context.Background(), model.CreateItemRequest{
		SKU: "WIDGET-001", QuantityOnHand: 1,
	})
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
}

func TestReceive(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	result, err := svc.Receive(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(15), result.Item.QuantityOnHand)
	require.NotNil(t, result.Movement)
	assert.Equal(t, model.MovementReceipt, result.Movement.MovementType)
	assert.Equal(t, int64(5), result.Movement.Quantity)
	assert.Equal(t, int64(10), result.Movement.QuantityBefore)
	assert.Equal(t, int64(15), result.Movement.QuantityAfter)
}

func TestReceiveRejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	for _, q := range []int64{0, -3} {
		_, err := svc.Receive(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: q})
		require.Error(t, err)
		assert.True(t, model.IsBadInputError(err))
	}
}

func TestAdjustZeroEmitsMovement(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	result, err := svc.Adjust(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: 0})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Item.QuantityOnHand)
	require.NotNil(t, result.Movement)
	assert.Equal(t, model.MovementAdjustment, result.Movement.MovementType)
	assert.Equal(t, int64(0), result.Movement.Quantity)
}

func TestAdjustCannotEatReservedStock(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	_, err := svc.Reserve(context.Background(), "WIDGET-001", model.QuantityRequest{Quantity: 4})
	require.NoError(t, err)

	// 10 on hand, 4 reserved: -7 would leave 3 < 4 reserved.
	_, err = svc.Adjust(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: -7})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientStockError(err))

	// -6 leaves exactly the reserved quantity.
	result, err := svc.Adjust(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: -6})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Item.QuantityOnHand)
	assert.Equal(t, int64(4), result.Item.QuantityReserved)
}

func TestReservationOpsRejectNonPositive(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	for _, q := range []int64{0, -1} {
		_, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: q})
		assert.True(t, model.IsBadInputError(err))

		_, err = svc.Release(ctx, "WIDGET-001", model.QuantityRequest{Quantity: q})
		assert.True(t, model.IsBadInputError(err))

		_, err = svc.Commit(ctx, "WIDGET-001", model.QuantityRequest{Quantity: q})
		assert.True(t, model.IsBadInputError(err))
	}
}

// Happy-path order: reserve then commit.
func TestReserveCommitFlow(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	reserved, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Regexp(t, `^RES-[0-9a-f]{16}$`, reserved.ReservationID)
	assert.Equal(t, int64(10), reserved.Item.QuantityOnHand)
	assert.Equal(t, int64(3), reserved.Item.QuantityReserved)
	assert.Equal(t, int64(7), reserved.Item.QuantityAvailable())
	require.NotNil(t, reserved.Movement)
	assert.Equal(t, int64(-3), reserved.Movement.Quantity)
	assert.Equal(t, reserved.ReservationID, reserved.Movement.Metadata["reservation_id"])

	committed, err := svc.Commit(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), committed.Item.QuantityOnHand)
	assert.Equal(t, int64(0), committed.Item.QuantityReserved)
	assert.Equal(t, int64(-3), committed.Movement.Quantity)

	movements, _, err := repo.Movements(ctx, repository.MovementFilter{SKU: "WIDGET-001", Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, movements, 2)
	// Newest first.
	assert.Equal(t, model.MovementCommit, movements[0].MovementType)
	assert.Equal(t, model.MovementReservation, movements[1].MovementType)
}

// Cancelled order: reserve then release restores the initial counters.
func TestReserveReleaseRoundTrip(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 5})
	require.NoError(t, err)

	released, err := svc.Release(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(10), released.Item.QuantityOnHand)
	assert.Equal(t, int64(0), released.Item.QuantityReserved)
	assert.Equal(t, int64(5), released.Movement.Quantity)
}

func TestOverReserveRejected(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "GADGET-002", 2, false)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "GADGET-002", model.QuantityRequest{Quantity: 3})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientStockError(err))

	// State unchanged, no movement written.
	item, err := repo.Get(ctx, "GADGET-002", "default")
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.QuantityOnHand)
	assert.Equal(t, int64(0), item.QuantityReserved)

	_, total, err := repo.Movements(ctx, repository.MovementFilter{SKU: "GADGET-002", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestBackorderablePermitsNegativeAvailable(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "BACKORDER-003", 0, true)
	ctx := context.Background()

	reserved, err := svc.Reserve(ctx, "BACKORDER-003", model.QuantityRequest{Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), reserved.Item.QuantityOnHand)
	assert.Equal(t, int64(10), reserved.Item.QuantityReserved)
	assert.Equal(t, int64(-10), reserved.Item.QuantityAvailable())

	committed, err := svc.Commit(ctx, "BACKORDER-003", model.QuantityRequest{Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(-10), committed.Item.QuantityOnHand)
	assert.Equal(t, int64(0), committed.Item.QuantityReserved)
}

func TestReleaseMoreThanReserved(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 2})
	require.NoError(t, err)

	_, err = svc.Release(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 3})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientReservationError(err))

	_, err = svc.Commit(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 3})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientReservationError(err))
}

func TestTransfer(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, model.CreateItemRequest{SKU: "X", Location: "east", QuantityOnHand: 100})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, model.CreateItemRequest{SKU: "X", Location: "west", QuantityOnHand: 0})
	require.NoError(t, err)

	result, err := svc.Transfer(ctx, model.TransferRequest{
		SKU:                 "X",
		SourceLocation:      "east",
		DestinationLocation: "west",
		Quantity:            40,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(60), result.Source.QuantityOnHand)
	assert.Equal(t, int64(40), result.Destination.QuantityOnHand)
	assert.NotEmpty(t, result.TransferID)

	require.Len(t, result.Movements, 2)
	out, in := result.Movements[0], result.Movements[1]
	assert.Equal(t, model.MovementTransferOut, out.MovementType)
	assert.Equal(t, int64(-40), out.Quantity)
	assert.Equal(t, model.MovementTransferIn, in.MovementType)
	assert.Equal(t, int64(40), in.Quantity)

	for _, m := range result.Movements {
		assert.Equal(t, result.TransferID, m.Metadata["transfer_id"])
		assert.Equal(t, "east", m.Metadata["source_location"])
		assert.Equal(t, "west", m.Metadata["destination_location"])
	}

	// Sum across locations is preserved.
	aggregates, err := repo.AggregateBySKU(ctx)
	require.NoError(t, err)
	require.Len(t, aggregates, 1)
	assert.Equal(t, int64(100), aggregates[0].TotalOnHand)
}

func TestTransferValidation(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, model.CreateItemRequest{SKU: "X", Location: "east", QuantityOnHand: 5})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, model.CreateItemRequest{SKU: "X", Location: "west"})
	require.NoError(t, err)

	_, err = svc.Transfer(ctx, model.TransferRequest{
		SKU: "X", SourceLocation: "east", DestinationLocation: "east", Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, model.IsBadInputError(err))

	_, err = svc.Transfer(ctx, model.TransferRequest{
		SKU: "X", SourceLocation: "east", DestinationLocation: "west", Quantity: 10,
	})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientStockError(err))

	_, err = svc.Transfer(ctx, model.TransferRequest{
		SKU: "X", SourceLocation: "east", DestinationLocation: "nowhere", Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, model.IsNotFoundError(err))
}

func TestCountAdjustment(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	actual := int64(7)
	result, err := svc.CountAdjustment(ctx, "WIDGET-001", model.CountRequest{ActualQuantity: &actual})
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Item.QuantityOnHand)
	require.NotNil(t, result.Movement)
	assert.Equal(t, model.MovementCountAdjustment, result.Movement.MovementType)
	assert.Equal(t, int64(-3), result.Movement.Quantity)
	assert.Equal(t, int64(10), result.Movement.Metadata["expected_quantity"])
	assert.Equal(t, int64(7), result.Movement.Metadata["actual_quantity"])
	assert.NotEmpty(t, result.Movement.Metadata["counted_at"])
}

func TestCountAdjustmentNoDiscrepancy(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	actual := int64(10)
	result, err := svc.CountAdjustment(ctx, "WIDGET-001", model.CountRequest{ActualQuantity: &actual})
	require.NoError(t, err)

	assert.Nil(t, result.Movement)
	_, total, err := repo.Movements(ctx, repository.MovementFilter{SKU: "WIDGET-001", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCountAdjustmentBelowReserved(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 5})
	require.NoError(t, err)

	actual := int64(3)
	_, err = svc.CountAdjustment(ctx, "WIDGET-001", model.CountRequest{ActualQuantity: &actual})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientStockError(err))
}

// Ledger continuity: consecutive movements chain quantity_after into the
// next quantity_before.
func TestLedgerContinuity(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	_, err := svc.Receive(ctx, "WIDGET-001", model.AdjustmentRequest{Quantity: 5})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 4})
	require.NoError(t, err)
	_, err = svc.Commit(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 4})
	require.NoError(t, err)
	_, err = svc.Adjust(ctx, "WIDGET-001", model.AdjustmentRequest{Quantity: -2})
	require.NoError(t, err)

	movements, _, err := repo.Movements(ctx, repository.MovementFilter{SKU: "WIDGET-001", Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, movements, 4)

	// Oldest to newest.
	for i := len(movements) - 1; i > 0; i-- {
		assert.Equal(t, movements[i].QuantityAfter, movements[i-1].QuantityBefore,
			"movement %s does not chain", movements[i-1].MovementType)
	}
}

// Concurrent reserves over a single unit: exactly one wins.
func TestConcurrentReserveRace(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 1, false)
	ctx := context.Background()

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, failed := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, model.IsInsufficientStockError(err))
			failed++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, failed)

	item, err := repo.Get(ctx, "WIDGET-001", "default")
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.QuantityOnHand)
	assert.Equal(t, int64(1), item.QuantityReserved)

	_, total, err := repo.Movements(ctx, repository.MovementFilter{
		SKU: "WIDGET-001", MovementType: model.MovementReservation, Page: 1, PerPage: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestMovementEventPublishedAfterTransition(t *testing.T) {
	svc, _, pub := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)

	result, err := svc.Receive(context.Background(), "WIDGET-001", model.AdjustmentRequest{Quantity: 5})
	require.NoError(t, err)

	published := pub.byType(events.TypeStockMovement)
	require.Len(t, published, 1)
	assert.Equal(t, "WIDGET-001", published[0].SKU)
	assert.Equal(t, result.Movement.ID, published[0].MovementID)
	assert.Equal(t, int64(5), published[0].Quantity)
}

func TestLowStockEventOnReorderPoint(t *testing.T) {
	svc, _, pub := newTestStockService(t)
	ctx := context.Background()

	point, qty := int64(5), int64(20)
	_, err := svc.CreateItem(ctx, model.CreateItemRequest{
		SKU:             "WIDGET-001",
		QuantityOnHand:  10,
		ReorderPoint:    &point,
		ReorderQuantity: &qty,
	})
	require.NoError(t, err)

	// Reserving does not change on-hand: no low-stock check even though
	// available drops to the point.
	_, err = svc.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Empty(t, pub.byType(events.TypeLowStock))

	// Committing drops on-hand to 5, available to 0: low stock.
	_, err = svc.Commit(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 5})
	require.NoError(t, err)

	lowStock := pub.byType(events.TypeLowStock)
	require.Len(t, lowStock, 1)
	assert.Equal(t, "WIDGET-001", lowStock[0].SKU)
	assert.Equal(t, int64(0), lowStock[0].Quantity)
}

func TestUpdateItemOptimisticLock(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	item := seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	backorderable := true
	updated, err := svc.UpdateItem(ctx, "WIDGET-001", "", model.UpdateItemRequest{
		Backorderable: &backorderable,
		LockVersion:   &item.LockVersion,
	})
	require.NoError(t, err)
	assert.True(t, updated.Backorderable)
	assert.Equal(t, item.LockVersion+1, updated.LockVersion)

	// Replaying the same stale version now conflicts.
	_, err = svc.UpdateItem(ctx, "WIDGET-001", "", model.UpdateItemRequest{
		Backorderable: &backorderable,
		LockVersion:   &item.LockVersion,
	})
	require.Error(t, err)
	assert.True(t, model.IsConflictError(err))
}

func TestDeleteItemCascadesMovements(t *testing.T) {
	svc, repo, _ := newTestStockService(t)
	seedItem(t, svc, "WIDGET-001", 10, false)
	ctx := context.Background()

	_, err := svc.Receive(ctx, "WIDGET-001", model.AdjustmentRequest{Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, "WIDGET-001", ""))

	_, err = repo.Get(ctx, "WIDGET-001", "default")
	assert.True(t, model.IsNotFoundError(err))

	_, total, err := repo.Movements(ctx, repository.MovementFilter{SKU: "WIDGET-001", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestBulkAdjust(t *testing.T) {
	svc, _, _ := newTestStockService(t)
	seedItem(t, svc, "A", 10, false)
	seedItem(t, svc, "B", 10, false)

	results := svc.BulkAdjust(context.Background(), model.BulkAdjustRequest{
		Adjustments: []model.BulkAdjustment{
			{SKU: "A", Quantity: 5},
			{SKU: "B", Quantity: -20},
			{SKU: "MISSING", Quantity: 1},
		},
	})

	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].Item)
	assert.Equal(t, int64(15), results[0].Item.QuantityOnHand)

	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Error)

	assert.False(t, results[2].Success)
	assert.NotEmpty(t, results[2].Error)
}
