package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLocation is assumed whenever a caller omits the location.
const DefaultLocation = "default"

// Metadata is free-form side data persisted as JSONB. The service never
// inspects its interior shape.
type Metadata map[string]interface{}

// Clone returns a shallow copy, never nil.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m)+2)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Movement types. The set is closed; the database enforces it with a check
// constraint.
const (
	MovementReceipt         = "receipt"
	MovementSale            = "sale"
	MovementAdjustment      = "adjustment"
	MovementTransferIn      = "transfer_in"
	MovementTransferOut     = "transfer_out"
	MovementReservation     = "reservation"
	MovementRelease         = "release"
	MovementCommit          = "commit"
	MovementReturn          = "return"
	MovementDamage          = "damage"
	MovementLoss            = "loss"
	MovementFound           = "found"
	MovementCountAdjustment = "count_adjustment"
)

var movementTypes = map[string]struct{}{
	MovementReceipt:         {},
	MovementSale:            {},
	MovementAdjustment:      {},
	MovementTransferIn:      {},
	MovementTransferOut:     {},
	MovementReservation:     {},
	MovementRelease:         {},
	MovementCommit:          {},
	MovementReturn:          {},
	MovementDamage:          {},
	MovementLoss:            {},
	MovementFound:           {},
	MovementCountAdjustment: {},
}

func ValidMovementType(t string) bool {
	_, ok := movementTypes[t]
	return ok
}

// InventoryItem is the per-(sku, location) stock record.
type InventoryItem struct {
	ID               uuid.UUID
	SKU              string
	Location         string
	QuantityOnHand   int64
	QuantityReserved int64
	ReorderPoint     *int64
	ReorderQuantity  *int64
	Backorderable    bool
	Metadata         Metadata
	LockVersion      int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// QuantityAvailable is on-hand minus reserved. May go negative for
// backorderable items.
func (i *InventoryItem) QuantityAvailable() int64 {
	return i.QuantityOnHand - i.QuantityReserved
}

func (i *InventoryItem) InStock() bool {
	return i.QuantityAvailable() > 0
}

// CanReserve reports whether a reservation of q units may proceed.
func (i *InventoryItem) CanReserve(q int64) bool {
	return i.Backorderable || i.QuantityAvailable() >= q
}

// CanFulfill reports whether q units can be taken from on-hand stock, e.g.
// for a transfer out of this location.
func (i *InventoryItem) CanFulfill(q int64) bool {
	return i.Backorderable || i.QuantityAvailable() >= q
}

// IsLowStock is true when a reorder point is set and available stock has
// fallen to or below it.
func (i *InventoryItem) IsLowStock() bool {
	if i.ReorderPoint == nil {
		return false
	}
	return i.QuantityAvailable() <= *i.ReorderPoint
}

// NeedsReorder additionally requires a positive reorder quantity, so that
// the low-stock event carries an actionable replenishment size.
func (i *InventoryItem) NeedsReorder() bool {
	return i.IsLowStock() && i.ReorderQuantity != nil && *i.ReorderQuantity > 0
}

// StockMovement is one immutable ledger entry. quantity is the signed delta
// applied to available stock; quantity_before/after snapshot on-hand around
// the transaction that wrote the movement.
type StockMovement struct {
	ID              uuid.UUID
	InventoryItemID uuid.UUID
	MovementType    string
	Quantity        int64
	QuantityBefore  int64
	QuantityAfter   int64
	Reason          string
	ReferenceType   string
	ReferenceID     string
	Metadata        Metadata
	CreatedAt       time.Time

	// Denormalized from the owning item for responses and events; not
	// columns on stock_movements.
	SKU      string
	Location string
}

// NewReservationID generates the opaque audit handle returned by reserve.
func NewReservationID() string {
	id := uuid.New()
	return fmt.Sprintf("RES-%x", id[:8])
}
