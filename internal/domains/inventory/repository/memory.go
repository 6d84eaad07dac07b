package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"inventory-service/internal/domains/inventory/model"

	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory Repository. It backs the
// test suites and doubles as a throwaway store for local experiments; the
// semantics mirror the PostgreSQL implementation, including the staged
// transaction behavior where nothing is visible until Transact returns nil.
type MemoryRepository struct {
	mu        sync.Mutex
	items     map[string]*model.InventoryItem
	movements []model.StockMovement
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]*model.InventoryItem),
	}
}

func itemKey(sku, location string) string {
	return sku + "\x00" + location
}

func cloneItem(item *model.InventoryItem) *model.InventoryItem {
	c := *item
	c.Metadata = item.Metadata.Clone()
	if item.ReorderPoint != nil {
		v := *item.ReorderPoint
		c.ReorderPoint = &v
	}
	if item.ReorderQuantity != nil {
		v := *item.ReorderQuantity
		c.ReorderQuantity = &v
	}
	return &c
}

// Transact implements Repository.Transact. fn runs against a staged copy of
// the store; the copy replaces the live state only when fn returns nil.
func (r *MemoryRepository) Transact(ctx context.Context, fn func(tx TxRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[string]*model.InventoryItem, len(r.items))
	for k, v := range r.items {
		staged[k] = cloneItem(v)
	}

	tx := &memoryTx{items: staged}
	if err := fn(tx); err != nil {
		return err
	}

	r.items = staged
	r.movements = append(r.movements, tx.movements...)
	return nil
}

// Create implements Repository.Create
func (r *MemoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := itemKey(item.SKU, item.Location)
	if _, exists := r.items[key]; exists {
		return model.ErrItemAlreadyExists
	}

	r.items[key] = cloneItem(item)
	return nil
}

// Get implements Repository.Get
func (r *MemoryRepository) Get(ctx context.Context, sku, location string) (*model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemKey(sku, location)]
	if !ok {
		return nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
	}
	return cloneItem(item), nil
}

func matchesFilter(item *model.InventoryItem, filter ItemFilter) bool {
	if filter.SKU != "" && item.SKU != filter.SKU {
		return false
	}
	if filter.Location != "" && item.Location != filter.Location {
		return false
	}
	if filter.InStock && item.QuantityAvailable() <= 0 {
		return false
	}
	if filter.OutOfStock && item.QuantityAvailable() > 0 {
		return false
	}
	if filter.LowStock && !item.IsLowStock() {
		return false
	}
	return true
}

// List implements Repository.List
func (r *MemoryRepository) List(ctx context.Context, filter ItemFilter) ([]model.InventoryItem, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]model.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		if matchesFilter(item, filter) {
			matched = append(matched, *cloneItem(item))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].SKU != matched[j].SKU {
			return matched[i].SKU < matched[j].SKU
		}
		return matched[i].Location < matched[j].Location
	})

	total := len(matched)
	start := (filter.Page - 1) * filter.PerPage
	if start > total {
		start = total
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

// BySKU implements Repository.BySKU
func (r *MemoryRepository) BySKU(ctx context.Context, sku string) ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]model.InventoryItem, 0, 4)
	for _, item := range r.items {
		if item.SKU == sku {
			items = append(items, *cloneItem(item))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Location < items[j].Location
	})

	return items, nil
}

// Update implements Repository.Update with the optimistic version check
func (r *MemoryRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := itemKey(item.SKU, item.Location)
	current, ok := r.items[key]
	if !ok {
		return fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, item.SKU, item.Location)
	}

	if current.LockVersion != item.LockVersion {
		return model.NewConflictError(item.LockVersion, current.LockVersion)
	}

	current.ReorderPoint = item.ReorderPoint
	current.ReorderQuantity = item.ReorderQuantity
	current.Backorderable = item.Backorderable
	current.Metadata = item.Metadata.Clone()
	current.LockVersion++
	current.UpdatedAt = time.Now()

	item.LockVersion = current.LockVersion
	item.UpdatedAt = current.UpdatedAt
	return nil
}

// Delete implements Repository.Delete; the item's movements go with it
func (r *MemoryRepository) Delete(ctx context.Context, sku, location string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := itemKey(sku, location)
	item, ok := r.items[key]
	if !ok {
		return fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
	}

	delete(r.items, key)

	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.InventoryItemID != item.ID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

// Locations implements Repository.Locations
func (r *MemoryRepository) Locations(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{})
	locations := make([]string, 0, 4)
	for _, item := range r.items {
		if _, ok := seen[item.Location]; !ok {
			seen[item.Location] = struct{}{}
			locations = append(locations, item.Location)
		}
	}

	sort.Strings(locations)
	return locations, nil
}

func matchesMovementFilter(m *model.StockMovement, filter MovementFilter) bool {
	if filter.ItemID != nil && m.InventoryItemID != *filter.ItemID {
		return false
	}
	if filter.SKU != "" && m.SKU != filter.SKU {
		return false
	}
	if filter.MovementType != "" && m.MovementType != filter.MovementType {
		return false
	}
	if filter.ReferenceType != "" && m.ReferenceType != filter.ReferenceType {
		return false
	}
	if filter.ReferenceID != "" && m.ReferenceID != filter.ReferenceID {
		return false
	}
	if filter.StartDate != nil && m.CreatedAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && m.CreatedAt.After(*filter.EndDate) {
		return false
	}
	return true
}

// Movements implements Repository.Movements, newest first
func (r *MemoryRepository) Movements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]model.StockMovement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		if matchesMovementFilter(&r.movements[i], filter) {
			matched = append(matched, r.movements[i])
		}
	}

	total := len(matched)
	start := (filter.Page - 1) * filter.PerPage
	if start > total {
		start = total
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

// GetMovement implements Repository.GetMovement
func (r *MemoryRepository) GetMovement(ctx context.Context, id uuid.UUID) (*model.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movements {
		if r.movements[i].ID == id {
			m := r.movements[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", model.ErrMovementNotFound, id)
}

// AggregateBySKU implements Repository.AggregateBySKU
func (r *MemoryRepository) AggregateBySKU(ctx context.Context) ([]model.SKUAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bySKU := make(map[string]*model.SKUAggregate)
	for _, item := range r.items {
		agg, ok := bySKU[item.SKU]
		if !ok {
			agg = &model.SKUAggregate{SKU: item.SKU}
			bySKU[item.SKU] = agg
		}
		agg.LocationCount++
		agg.TotalOnHand += item.QuantityOnHand
		agg.TotalReserved += item.QuantityReserved
		agg.TotalAvailable += item.QuantityAvailable()
	}

	aggregates := make([]model.SKUAggregate, 0, len(bySKU))
	for _, agg := range bySKU {
		aggregates = append(aggregates, *agg)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].SKU < aggregates[j].SKU
	})

	return aggregates, nil
}

// memoryTx implements TxRepository against the staged copy
type memoryTx struct {
	items     map[string]*model.InventoryItem
	movements []model.StockMovement
}

// GetForUpdate implements TxRepository.GetForUpdate
func (t *memoryTx) GetForUpdate(ctx context.Context, sku, location string) (*model.InventoryItem, error) {
	item, ok := t.items[itemKey(sku, location)]
	if !ok {
		return nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
	}
	return item, nil
}

// GetPairForUpdate implements TxRepository.GetPairForUpdate
func (t *memoryTx) GetPairForUpdate(ctx context.Context, sku, locationA, locationB string) (*model.InventoryItem, *model.InventoryItem, error) {
	a, err := t.GetForUpdate(ctx, sku, locationA)
	if err != nil {
		return nil, nil, err
	}
	b, err := t.GetForUpdate(ctx, sku, locationB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// UpdateQuantities implements TxRepository.UpdateQuantities
func (t *memoryTx) UpdateQuantities(ctx context.Context, item *model.InventoryItem) error {
	stored, ok := t.items[itemKey(item.SKU, item.Location)]
	if !ok {
		return fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, item.SKU, item.Location)
	}

	stored.QuantityOnHand = item.QuantityOnHand
	stored.QuantityReserved = item.QuantityReserved
	stored.LockVersion++
	stored.UpdatedAt = time.Now()

	item.LockVersion = stored.LockVersion
	item.UpdatedAt = stored.UpdatedAt
	return nil
}

// InsertMovement implements TxRepository.InsertMovement
func (t *memoryTx) InsertMovement(ctx context.Context, m *model.StockMovement) error {
	t.movements = append(t.movements, *m)
	return nil
}
