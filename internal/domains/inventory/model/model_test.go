package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityAvailable(t *testing.T) {
	item := &InventoryItem{QuantityOnHand: 10, QuantityReserved: 3}
	assert.Equal(t, int64(7), item.QuantityAvailable())
	assert.True(t, item.InStock())

	item.QuantityReserved = 10
	assert.Equal(t, int64(0), item.QuantityAvailable())
	assert.False(t, item.InStock())

	// Backorderable items can go negative.
	item.QuantityReserved = 15
	assert.Equal(t, int64(-5), item.QuantityAvailable())
}

func TestCanReserve(t *testing.T) {
	item := &InventoryItem{QuantityOnHand: 5}
	assert.True(t, item.CanReserve(5))
	assert.False(t, item.CanReserve(6))

	item.Backorderable = true
	assert.True(t, item.CanReserve(1000))
}

func TestIsLowStock(t *testing.T) {
	item := &InventoryItem{QuantityOnHand: 3}
	assert.False(t, item.IsLowStock(), "unset reorder point is never low")

	point := int64(5)
	item.ReorderPoint = &point
	assert.True(t, item.IsLowStock())

	item.QuantityOnHand = 6
	assert.False(t, item.IsLowStock())

	// Reserved stock counts against availability.
	item.QuantityReserved = 2
	assert.True(t, item.IsLowStock())
}

func TestNeedsReorder(t *testing.T) {
	point := int64(5)
	item := &InventoryItem{QuantityOnHand: 3, ReorderPoint: &point}
	assert.False(t, item.NeedsReorder(), "no reorder quantity configured")

	zero := int64(0)
	item.ReorderQuantity = &zero
	assert.False(t, item.NeedsReorder())

	qty := int64(20)
	item.ReorderQuantity = &qty
	assert.True(t, item.NeedsReorder())
}

func TestNewReservationID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewReservationID()
		assert.Regexp(t, `^RES-[0-9a-f]{16}$`, id)
		_, dup := seen[id]
		require.False(t, dup, "reservation ids must not repeat")
		seen[id] = struct{}{}
	}
}

func TestValidMovementType(t *testing.T) {
	for _, valid := range []string{
		MovementReceipt, MovementSale, MovementAdjustment, MovementTransferIn,
		MovementTransferOut, MovementReservation, MovementRelease, MovementCommit,
		MovementReturn, MovementDamage, MovementLoss, MovementFound,
		MovementCountAdjustment,
	} {
		assert.True(t, ValidMovementType(valid), valid)
	}

	assert.False(t, ValidMovementType("teleport"))
	assert.False(t, ValidMovementType(""))
}

func TestMetadataClone(t *testing.T) {
	var m Metadata
	clone := m.Clone()
	require.NotNil(t, clone, "clone of nil metadata must be writable")
	clone["k"] = "v"

	orig := Metadata{"a": 1}
	clone = orig.Clone()
	clone["a"] = 2
	assert.Equal(t, 1, orig["a"])
}

func TestQuantityRequestValidate(t *testing.T) {
	// Quantity positivity is an engine-level precondition, not a schema
	// rule; the DTO only checks shape.
	assert.NoError(t, QuantityRequest{Quantity: 1}.Validate())
	assert.NoError(t, QuantityRequest{Quantity: 0}.Validate())
	assert.Error(t, QuantityRequest{Quantity: 1, Location: string(make([]byte, 300))}.Validate())
}

func TestCreateItemRequestValidate(t *testing.T) {
	assert.Error(t, CreateItemRequest{}.Validate(), "sku is required")

	neg := int64(-1)
	assert.Error(t, CreateItemRequest{SKU: "A", ReorderPoint: &neg}.Validate())

	ok := int64(5)
	assert.NoError(t, CreateItemRequest{SKU: "A", QuantityOnHand: 10, ReorderPoint: &ok}.Validate())
}

func TestListMovementsRequestValidate(t *testing.T) {
	req := &ListMovementsRequest{}
	require.NoError(t, req.Validate())
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.PerPage)

	req = &ListMovementsRequest{MovementType: "bogus"}
	assert.Error(t, req.Validate())
}
