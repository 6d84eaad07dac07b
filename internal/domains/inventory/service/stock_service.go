package service

import (
	"context"
	"time"

	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"
	"inventory-service/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StockService owns item lifecycle and the stock transition engine. Every
// transition runs in one transaction: lock the row, validate, apply the
// counter change, append the ledger entry. Events go out only after commit.
type StockService struct {
	repo      repository.Repository
	publisher events.Publisher
	cache     *cache.RedisClient // nil disables availability cache invalidation
}

// NewStockService creates a new stock service
func NewStockService(repo repository.Repository, publisher events.Publisher, redisCache *cache.RedisClient) *StockService {
	return &StockService{
		repo:      repo,
		publisher: publisher,
		cache:     redisCache,
	}
}

func normalizeLocation(location string) string {
	if location == "" {
		return model.DefaultLocation
	}
	return location
}

// =====================================================
// ITEM LIFECYCLE
// =====================================================

// CreateItem creates a new (sku, location) record. Initial stock arrives as
// quantity_on_hand without a ledger entry; later changes always leave one.
func (s *StockService) CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.InventoryItem, error) {
	now := time.Now()
	item := model.InventoryItem{
		ID:              uuid.New(),
		SKU:             req.SKU,
		Location:        normalizeLocation(req.Location),
		QuantityOnHand:  req.QuantityOnHand,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		Backorderable:   req.Backorderable,
		Metadata:        req.Metadata.Clone(),
		LockVersion:     1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, item.SKU)
	return &item, nil
}

// UpdateItem changes mutable configuration only. When the request carries a
// lock_version it is checked against the stored one; omitted means
// last-write-wins against the current version.
func (s *StockService) UpdateItem(ctx context.Context, sku, location string, req model.UpdateItemRequest) (*model.InventoryItem, error) {
	location = normalizeLocation(location)

	item, err := s.repo.Get(ctx, sku, location)
	if err != nil {
		return nil, err
	}

	if req.ReorderPoint != nil {
		item.ReorderPoint = req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		item.ReorderQuantity = req.ReorderQuantity
	}
	if req.Backorderable != nil {
		item.Backorderable = *req.Backorderable
	}
	if req.Metadata != nil {
		item.Metadata = req.Metadata.Clone()
	}
	if req.LockVersion != nil {
		item.LockVersion = *req.LockVersion
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, sku)
	return item, nil
}

// DeleteItem removes the record and its ledger.
func (s *StockService) DeleteItem(ctx context.Context, sku, location string) error {
	location = normalizeLocation(location)

	if err := s.repo.Delete(ctx, sku, location); err != nil {
		return err
	}

	s.invalidateAvailability(ctx, sku)
	return nil
}

// =====================================================
// STOCK TRANSITIONS
// =====================================================

// Receive adds inbound stock; quantity must be positive.
func (s *StockService) Receive(ctx context.Context, sku string, req model.AdjustmentRequest) (*model.TransitionResult, error) {
	if req.Quantity <= 0 {
		return nil, model.NewBadInputError("receive quantity must be positive")
	}

	return s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		before := item.QuantityOnHand
		item.QuantityOnHand += req.Quantity

		m := newMovement(item, model.MovementReceipt, req.Quantity, before, now)
		m.Reason = req.Reason
		m.ReferenceType = req.ReferenceType
		m.ReferenceID = req.ReferenceID
		m.Metadata = req.Metadata.Clone()
		return m, nil
	})
}

// Adjust applies a signed correction to on-hand stock. A zero quantity is
// legal and still leaves a ledger entry. Negative adjustments may not eat
// into reserved stock unless the item is backorderable.
func (s *StockService) Adjust(ctx context.Context, sku string, req model.AdjustmentRequest) (*model.TransitionResult, error) {
	return s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		if req.Quantity < 0 && !item.Backorderable {
			if item.QuantityOnHand+req.Quantity < item.QuantityReserved {
				return nil, model.NewInsufficientStockError(-req.Quantity, item.QuantityAvailable())
			}
		}

		before := item.QuantityOnHand
		item.QuantityOnHand += req.Quantity

		m := newMovement(item, model.MovementAdjustment, req.Quantity, before, now)
		m.Reason = req.Reason
		m.ReferenceType = req.ReferenceType
		m.ReferenceID = req.ReferenceID
		m.Metadata = req.Metadata.Clone()
		return m, nil
	})
}

// Reserve earmarks stock for later commit and returns a reservation id.
func (s *StockService) Reserve(ctx context.Context, sku string, req model.QuantityRequest) (*model.TransitionResult, error) {
	if req.Quantity <= 0 {
		return nil, model.NewBadInputError("reserve quantity must be positive")
	}

	reservationID := model.NewReservationID()

	result, err := s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		if !item.CanReserve(req.Quantity) {
			return nil, model.NewInsufficientStockError(req.Quantity, item.QuantityAvailable())
		}

		before := item.QuantityOnHand
		item.QuantityReserved += req.Quantity

		m := newMovement(item, model.MovementReservation, -req.Quantity, before, now)
		m.Reason = req.Reason
		m.ReferenceType = req.ReferenceType
		m.ReferenceID = req.ReferenceID
		m.Metadata = req.Metadata.Clone()
		m.Metadata["reservation_id"] = reservationID
		return m, nil
	})
	if err != nil {
		return nil, err
	}

	result.ReservationID = reservationID
	return result, nil
}

// Release hands reserved stock back to the available pool.
func (s *StockService) Release(ctx context.Context, sku string, req model.QuantityRequest) (*model.TransitionResult, error) {
	if req.Quantity <= 0 {
		return nil, model.NewBadInputError("release quantity must be positive")
	}

	return s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		if req.Quantity > item.QuantityReserved {
			return nil, model.NewInsufficientReservationError(req.Quantity, item.QuantityReserved)
		}

		before := item.QuantityOnHand
		item.QuantityReserved -= req.Quantity

		m := newMovement(item, model.MovementRelease, req.Quantity, before, now)
		m.Reason = req.Reason
		m.ReferenceType = req.ReferenceType
		m.ReferenceID = req.ReferenceID
		m.Metadata = req.Metadata.Clone()
		return m, nil
	})
}

// Commit consumes reserved stock: both on-hand and reserved drop.
func (s *StockService) Commit(ctx context.Context, sku string, req model.QuantityRequest) (*model.TransitionResult, error) {
	if req.Quantity <= 0 {
		return nil, model.NewBadInputError("commit quantity must be positive")
	}

	return s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		if req.Quantity > item.QuantityReserved {
			return nil, model.NewInsufficientReservationError(req.Quantity, item.QuantityReserved)
		}

		before := item.QuantityOnHand
		item.QuantityOnHand -= req.Quantity
		item.QuantityReserved -= req.Quantity

		m := newMovement(item, model.MovementCommit, -req.Quantity, before, now)
		m.Reason = req.Reason
		m.ReferenceType = req.ReferenceType
		m.ReferenceID = req.ReferenceID
		m.Metadata = req.Metadata.Clone()
		return m, nil
	})
}

// Transfer moves stock between two locations of the same sku in one
// transaction. Rows lock in ascending id order regardless of direction, so
// opposing transfers cannot deadlock.
func (s *StockService) Transfer(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error) {
	src := normalizeLocation(req.SourceLocation)
	dst := normalizeLocation(req.DestinationLocation)
	if src == dst {
		return nil, model.NewBadInputError("source and destination locations must differ")
	}
	if req.Quantity <= 0 {
		return nil, model.NewBadInputError("transfer quantity must be positive")
	}

	transferID := uuid.NewString()
	result := &model.TransferResult{TransferID: transferID}

	err := s.repo.Transact(ctx, func(tx repository.TxRepository) error {
		source, dest, err := tx.GetPairForUpdate(ctx, req.SKU, src, dst)
		if err != nil {
			return err
		}

		if !source.CanFulfill(req.Quantity) {
			return model.NewInsufficientStockError(req.Quantity, source.QuantityAvailable())
		}

		now := time.Now()

		srcBefore := source.QuantityOnHand
		source.QuantityOnHand -= req.Quantity
		dstBefore := dest.QuantityOnHand
		dest.QuantityOnHand += req.Quantity

		transferMeta := func() model.Metadata {
			meta := req.Metadata.Clone()
			meta["transfer_id"] = transferID
			meta["source_location"] = src
			meta["destination_location"] = dst
			return meta
		}

		out := newMovement(source, model.MovementTransferOut, -req.Quantity, srcBefore, now)
		out.Reason = req.Reason
		out.ReferenceType = req.ReferenceType
		out.ReferenceID = req.ReferenceID
		out.Metadata = transferMeta()

		in := newMovement(dest, model.MovementTransferIn, req.Quantity, dstBefore, now)
		in.Reason = req.Reason
		in.ReferenceType = req.ReferenceType
		in.ReferenceID = req.ReferenceID
		in.Metadata = transferMeta()

		if err := tx.UpdateQuantities(ctx, source); err != nil {
			return err
		}
		if err := tx.UpdateQuantities(ctx, dest); err != nil {
			return err
		}
		if err := tx.InsertMovement(ctx, out); err != nil {
			return err
		}
		if err := tx.InsertMovement(ctx, in); err != nil {
			return err
		}

		result.Source = source
		result.Destination = dest
		result.Movements = []model.StockMovement{*out, *in}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, req.SKU)
	for i := range result.Movements {
		s.publishMovement(ctx, &result.Movements[i])
	}
	s.checkReorder(ctx, result.Source, &result.Movements[0])
	s.checkReorder(ctx, result.Destination, &result.Movements[1])

	return result, nil
}

// CountAdjustment reconciles on-hand stock with a physical count. A count
// that matches the books writes nothing.
func (s *StockService) CountAdjustment(ctx context.Context, sku string, req model.CountRequest) (*model.TransitionResult, error) {
	if req.ActualQuantity == nil || *req.ActualQuantity < 0 {
		return nil, model.NewBadInputError("actual_quantity must be zero or positive")
	}
	actual := *req.ActualQuantity

	return s.transition(ctx, sku, req.Location, func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error) {
		if actual < item.QuantityReserved && !item.Backorderable {
			return nil, model.NewInsufficientStockError(item.QuantityReserved, actual)
		}

		delta := actual - item.QuantityOnHand
		if delta == 0 {
			return nil, nil
		}

		before := item.QuantityOnHand
		item.QuantityOnHand = actual

		m := newMovement(item, model.MovementCountAdjustment, delta, before, now)
		m.Reason = req.Reason
		m.Metadata = req.Metadata.Clone()
		m.Metadata["expected_quantity"] = before
		m.Metadata["actual_quantity"] = actual
		m.Metadata["counted_at"] = now.UTC().Format(time.RFC3339)
		return m, nil
	})
}

// BulkAdjust runs independent adjustments, reporting per-entry outcomes.
// Failures do not stop the batch.
func (s *StockService) BulkAdjust(ctx context.Context, req model.BulkAdjustRequest) []model.BulkAdjustResult {
	results := make([]model.BulkAdjustResult, 0, len(req.Adjustments))

	for _, adj := range req.Adjustments {
		result := model.BulkAdjustResult{
			SKU:      adj.SKU,
			Location: normalizeLocation(adj.Location),
		}

		if err := adj.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		res, err := s.Adjust(ctx, adj.SKU, model.AdjustmentRequest{
			Location: adj.Location,
			Quantity: adj.Quantity,
			Reason:   adj.Reason,
			Metadata: adj.Metadata,
		})
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Success = true
		itemResp := res.Item.ToResponse()
		result.Item = &itemResp
		if res.Movement != nil {
			movementResp := res.Movement.ToResponse()
			result.Movement = &movementResp
		}
		results = append(results, result)
	}

	return results
}

// =====================================================
// INTERNALS
// =====================================================

// transitionFn validates and applies one counter change on the locked item.
// Returning a nil movement means nothing changed and nothing is written.
type transitionFn func(item *model.InventoryItem, now time.Time) (*model.StockMovement, error)

func (s *StockService) transition(ctx context.Context, sku, location string, fn transitionFn) (*model.TransitionResult, error) {
	location = normalizeLocation(location)

	var (
		result        model.TransitionResult
		onHandChanged bool
	)

	err := s.repo.Transact(ctx, func(tx repository.TxRepository) error {
		item, err := tx.GetForUpdate(ctx, sku, location)
		if err != nil {
			return err
		}

		before := item.QuantityOnHand
		movement, err := fn(item, time.Now())
		if err != nil {
			return err
		}

		result.Item = item
		if movement == nil {
			return nil
		}

		if err := tx.UpdateQuantities(ctx, item); err != nil {
			return err
		}
		if err := tx.InsertMovement(ctx, movement); err != nil {
			return err
		}

		onHandChanged = item.QuantityOnHand != before
		result.Movement = movement
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Movement != nil {
		s.invalidateAvailability(ctx, sku)
		s.publishMovement(ctx, result.Movement)
	}
	if onHandChanged {
		s.checkReorder(ctx, result.Item, result.Movement)
	}

	return &result, nil
}

func newMovement(item *model.InventoryItem, movementType string, quantity, onHandBefore int64, now time.Time) *model.StockMovement {
	return &model.StockMovement{
		ID:              uuid.New(),
		InventoryItemID: item.ID,
		MovementType:    movementType,
		Quantity:        quantity,
		QuantityBefore:  onHandBefore,
		QuantityAfter:   item.QuantityOnHand,
		Metadata:        model.Metadata{},
		CreatedAt:       now,
		SKU:             item.SKU,
		Location:        item.Location,
	}
}

// publishMovement emits the post-commit event. Sink failures are logged and
// swallowed; the transition already succeeded.
func (s *StockService) publishMovement(ctx context.Context, m *model.StockMovement) {
	event := events.Event{
		EventType:    events.TypeStockMovement,
		SKU:          m.SKU,
		Location:     m.Location,
		MovementID:   m.ID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).
			Str("sku", m.SKU).
			Str("movement_id", m.ID.String()).
			Msg("Failed to publish stock event")
	}
}

// checkReorder emits a low_stock event when available stock has fallen to
// the reorder point and a replenishment size is configured.
func (s *StockService) checkReorder(ctx context.Context, item *model.InventoryItem, m *model.StockMovement) {
	if !item.NeedsReorder() {
		return
	}

	event := events.Event{
		EventType:    events.TypeLowStock,
		SKU:          item.SKU,
		Location:     item.Location,
		MovementID:   m.ID,
		MovementType: m.MovementType,
		Quantity:     item.QuantityAvailable(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).
			Str("sku", item.SKU).
			Str("location", item.Location).
			Msg("Failed to publish low stock event")
	}
}

func (s *StockService) invalidateAvailability(ctx context.Context, sku string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, availabilityCacheKey(sku)); err != nil {
		log.Warn().Err(err).Str("sku", sku).Msg("Failed to invalidate availability cache")
	}
}
