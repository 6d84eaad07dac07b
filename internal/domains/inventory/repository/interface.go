package repository

import (
	"context"
	"time"

	"inventory-service/internal/domains/inventory/model"

	"github.com/google/uuid"
)

// ItemFilter narrows List. Stock predicates compose with AND.
type ItemFilter struct {
	SKU        string
	Location   string
	InStock    bool // available > 0
	OutOfStock bool // available <= 0
	LowStock   bool // reorder_point set and available <= reorder_point
	Page       int
	PerPage    int
}

// MovementFilter narrows Movements. ItemID restricts to one item's ledger.
type MovementFilter struct {
	ItemID        *uuid.UUID
	SKU           string
	MovementType  string
	ReferenceType string
	ReferenceID   string
	StartDate     *time.Time
	EndDate       *time.Time
	Page          int
	PerPage       int
}

// TxRepository is the view of the store inside an open transaction. Rows
// fetched through it are locked until the transaction ends.
type TxRepository interface {
	// GetForUpdate locks and returns one item.
	// Returns ErrItemNotFound if not exists
	GetForUpdate(ctx context.Context, sku, location string) (*model.InventoryItem, error)

	// GetPairForUpdate locks two items of the same sku in ascending id
	// order, then returns them keyed by the requested locations.
	GetPairForUpdate(ctx context.Context, sku, locationA, locationB string) (a, b *model.InventoryItem, err error)

	// UpdateQuantities persists the counter columns, bumps lock_version and
	// refreshes updated_at on the passed item.
	UpdateQuantities(ctx context.Context, item *model.InventoryItem) error

	// InsertMovement appends one ledger entry.
	InsertMovement(ctx context.Context, movement *model.StockMovement) error
}

// Repository is the inventory data access contract.
type Repository interface {
	// Transact runs fn inside a single transaction; any error rolls back.
	Transact(ctx context.Context, fn func(tx TxRepository) error) error

	// Create inserts a new item.
	// Returns ErrItemAlreadyExists on duplicate (sku, location)
	Create(ctx context.Context, item *model.InventoryItem) error

	// Get retrieves one item by (sku, location).
	// Returns ErrItemNotFound if not exists
	Get(ctx context.Context, sku, location string) (*model.InventoryItem, error)

	// List retrieves filtered, paginated items plus the unpaginated count.
	List(ctx context.Context, filter ItemFilter) ([]model.InventoryItem, int, error)

	// BySKU retrieves every location row for a sku, ordered by location.
	BySKU(ctx context.Context, sku string) ([]model.InventoryItem, error)

	// Update persists mutable configuration with an optimistic version
	// check against item.LockVersion.
	// Returns ErrItemNotFound if not exists, ErrConflict on version mismatch
	Update(ctx context.Context, item *model.InventoryItem) error

	// Delete removes an item; its movements cascade.
	// Returns ErrItemNotFound if not exists
	Delete(ctx context.Context, sku, location string) error

	// Locations lists distinct location strings.
	Locations(ctx context.Context) ([]string, error)

	// Movements retrieves filtered, paginated ledger entries newest first,
	// plus the unpaginated count.
	Movements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, int, error)

	// GetMovement retrieves one ledger entry.
	// Returns ErrMovementNotFound if not exists
	GetMovement(ctx context.Context, id uuid.UUID) (*model.StockMovement, error)

	// AggregateBySKU sums counters per sku across locations.
	AggregateBySKU(ctx context.Context) ([]model.SKUAggregate, error)
}
