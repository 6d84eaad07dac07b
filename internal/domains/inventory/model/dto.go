package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// ITEM REQUESTS
// =====================================================

type CreateItemRequest struct {
	SKU             string   `json:"sku"`
	Location        string   `json:"location"`
	QuantityOnHand  int64    `json:"quantity_on_hand"`
	ReorderPoint    *int64   `json:"reorder_point,omitempty"`
	ReorderQuantity *int64   `json:"reorder_quantity,omitempty"`
	Backorderable   bool     `json:"backorderable"`
	Metadata        Metadata `json:"metadata,omitempty"`
}

// Validate validates CreateItemRequest
func (req CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.SKU, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Location, validation.Length(0, 255)),
		validation.Field(&req.QuantityOnHand, validation.Min(int64(0))),
		validation.Field(&req.ReorderPoint, validation.Min(int64(0))),
		validation.Field(&req.ReorderQuantity, validation.Min(int64(0))),
	)
}

// UpdateItemRequest carries only mutable configuration; quantities move
// exclusively through stock transitions.
type UpdateItemRequest struct {
	ReorderPoint    *int64    `json:"reorder_point,omitempty"`
	ReorderQuantity *int64    `json:"reorder_quantity,omitempty"`
	Backorderable   *bool     `json:"backorderable,omitempty"`
	Metadata        *Metadata `json:"metadata,omitempty"`
	LockVersion     *int64    `json:"lock_version,omitempty"`
}

// Validate validates UpdateItemRequest
func (req UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ReorderPoint, validation.Min(int64(0))),
		validation.Field(&req.ReorderQuantity, validation.Min(int64(0))),
		validation.Field(&req.LockVersion, validation.Min(int64(1))),
	)
}

type ListItemsRequest struct {
	SKU        string `form:"sku"`
	Location   string `form:"location"`
	InStock    *bool  `form:"in_stock"`
	OutOfStock *bool  `form:"out_of_stock"`
	LowStock   *bool  `form:"low_stock"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// Validate normalizes pagination to sane defaults
func (req *ListItemsRequest) Validate() error {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	return nil
}

// =====================================================
// STOCK TRANSITION REQUESTS
// =====================================================

// AdjustmentRequest covers receive and adjust; receive additionally requires
// a positive quantity, enforced by the service.
type AdjustmentRequest struct {
	Location      string   `json:"location"`
	Quantity      int64    `json:"quantity"`
	Reason        string   `json:"reason"`
	ReferenceType string   `json:"reference_type,omitempty"`
	ReferenceID   string   `json:"reference_id,omitempty"`
	Metadata      Metadata `json:"metadata,omitempty"`
}

// Validate validates AdjustmentRequest
func (req AdjustmentRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Location, validation.Length(0, 255)),
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}

// QuantityRequest covers reserve, release and commit.
type QuantityRequest struct {
	Location      string   `json:"location"`
	Quantity      int64    `json:"quantity"`
	Reason        string   `json:"reason"`
	ReferenceType string   `json:"reference_type,omitempty"`
	ReferenceID   string   `json:"reference_id,omitempty"`
	Metadata      Metadata `json:"metadata,omitempty"`
}

// Validate validates QuantityRequest. Quantity positivity belongs to the
// engine, which reports it as bad input rather than a schema violation.
func (req QuantityRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Location, validation.Length(0, 255)),
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}

type TransferRequest struct {
	SKU                 string   `json:"sku"`
	SourceLocation      string   `json:"source_location"`
	DestinationLocation string   `json:"destination_location"`
	Quantity            int64    `json:"quantity"`
	Reason              string   `json:"reason"`
	ReferenceType       string   `json:"reference_type,omitempty"`
	ReferenceID         string   `json:"reference_id,omitempty"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

// Validate validates TransferRequest
func (req TransferRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.SKU, validation.Required),
		validation.Field(&req.SourceLocation, validation.Required),
		validation.Field(&req.DestinationLocation, validation.Required),
	)
}

type CountRequest struct {
	Location       string   `json:"location"`
	ActualQuantity *int64   `json:"actual_quantity"`
	Reason         string   `json:"reason"`
	Metadata       Metadata `json:"metadata,omitempty"`
}

// Validate validates CountRequest. The actual-quantity domain check lives in
// the engine.
func (req CountRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}

// =====================================================
// BULK ADJUSTMENT
// =====================================================

type BulkAdjustRequest struct {
	Adjustments []BulkAdjustment `json:"adjustments"`
}

type BulkAdjustment struct {
	SKU      string   `json:"sku"`
	Location string   `json:"location"`
	Quantity int64    `json:"quantity"`
	Reason   string   `json:"reason"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Validate validates BulkAdjustRequest
func (req BulkAdjustRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Adjustments, validation.Required, validation.Length(1, 100)),
	)
}

// Validate validates a single bulk entry
func (a BulkAdjustment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SKU, validation.Required),
	)
}

// BulkAdjustResult reports per-entry outcome; the bulk call itself succeeds
// even when individual adjustments fail.
type BulkAdjustResult struct {
	SKU      string            `json:"sku"`
	Location string            `json:"location"`
	Success  bool              `json:"success"`
	Error    string            `json:"error,omitempty"`
	Item     *ItemResponse     `json:"item,omitempty"`
	Movement *MovementResponse `json:"movement,omitempty"`
}

// =====================================================
// MOVEMENT QUERIES
// =====================================================

type ListMovementsRequest struct {
	MovementType  string     `form:"movement_type"`
	ReferenceType string     `form:"reference_type"`
	ReferenceID   string     `form:"reference_id"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02T15:04:05Z07:00"`
	Page          int        `form:"page"`
	PerPage       int        `form:"per_page"`
}

// Validate normalizes pagination and checks the movement type filter
func (req *ListMovementsRequest) Validate() error {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	if req.MovementType != "" && !ValidMovementType(req.MovementType) {
		return validation.Errors{
			"movement_type": validation.NewError("validation_in_invalid", "must be a valid movement type"),
		}
	}
	return nil
}

// =====================================================
// AVAILABILITY
// =====================================================

type AvailabilityReport struct {
	SKU            string                 `json:"sku"`
	Requested      int64                  `json:"requested_quantity"`
	TotalAvailable int64                  `json:"total_available"`
	IsAvailable    bool                   `json:"is_available"`
	Backorderable  bool                   `json:"backorderable"`
	Locations      []LocationAvailability `json:"locations"`
}

type LocationAvailability struct {
	Location      string `json:"location"`
	Available     int64  `json:"available"`
	OnHand        int64  `json:"quantity_on_hand"`
	Reserved      int64  `json:"quantity_reserved"`
	Backorderable bool   `json:"backorderable"`
}

type BulkAvailabilityRequest struct {
	Items []AvailabilityQuery `json:"items"`
}

type AvailabilityQuery struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
	Location string `json:"location,omitempty"`
}

// Validate validates BulkAvailabilityRequest
func (req BulkAvailabilityRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Items, validation.Required, validation.Length(1, 100)),
	)
}

// SKUAggregate sums one sku across locations.
type SKUAggregate struct {
	SKU            string `json:"sku"`
	LocationCount  int    `json:"location_count"`
	TotalOnHand    int64  `json:"total_on_hand"`
	TotalReserved  int64  `json:"total_reserved"`
	TotalAvailable int64  `json:"total_available"`
}

// =====================================================
// RESPONSES
// =====================================================

type ItemResponse struct {
	ID                uuid.UUID `json:"id"`
	SKU               string    `json:"sku"`
	Location          string    `json:"location"`
	QuantityOnHand    int64     `json:"quantity_on_hand"`
	QuantityReserved  int64     `json:"quantity_reserved"`
	QuantityAvailable int64     `json:"quantity_available"`
	ReorderPoint      *int64    `json:"reorder_point"`
	ReorderQuantity   *int64    `json:"reorder_quantity"`
	Backorderable     bool      `json:"backorderable"`
	Metadata          Metadata  `json:"metadata"`
	LockVersion       int64     `json:"lock_version"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type MovementResponse struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	SKU             string    `json:"sku"`
	Location        string    `json:"location"`
	MovementType    string    `json:"movement_type"`
	Quantity        int64     `json:"quantity"`
	QuantityBefore  int64     `json:"quantity_before"`
	QuantityAfter   int64     `json:"quantity_after"`
	Reason          string    `json:"reason,omitempty"`
	ReferenceType   string    `json:"reference_type,omitempty"`
	ReferenceID     string    `json:"reference_id,omitempty"`
	Metadata        Metadata  `json:"metadata"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToResponse converts InventoryItem to ItemResponse
func (i *InventoryItem) ToResponse() ItemResponse {
	return ItemResponse{
		ID:                i.ID,
		SKU:               i.SKU,
		Location:          i.Location,
		QuantityOnHand:    i.QuantityOnHand,
		QuantityReserved:  i.QuantityReserved,
		QuantityAvailable: i.QuantityAvailable(),
		ReorderPoint:      i.ReorderPoint,
		ReorderQuantity:   i.ReorderQuantity,
		Backorderable:     i.Backorderable,
		Metadata:          i.Metadata,
		LockVersion:       i.LockVersion,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// ToItemResponses converts a slice of items
func ToItemResponses(items []InventoryItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = items[i].ToResponse()
	}
	return responses
}

// ToResponse converts StockMovement to MovementResponse
func (m *StockMovement) ToResponse() MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		SKU:             m.SKU,
		Location:        m.Location,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		QuantityBefore:  m.QuantityBefore,
		QuantityAfter:   m.QuantityAfter,
		Reason:          m.Reason,
		ReferenceType:   m.ReferenceType,
		ReferenceID:     m.ReferenceID,
		Metadata:        m.Metadata,
		CreatedAt:       m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of movements
func ToMovementResponses(movements []StockMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = movements[i].ToResponse()
	}
	return responses
}

// =====================================================
// TRANSITION RESULTS
// =====================================================

// TransitionResult is what a single stock transition hands back: the updated
// item and the ledger entry it wrote. Movement is nil for a count that found
// no discrepancy. ReservationID is set only by reserve.
type TransitionResult struct {
	Item          *InventoryItem
	Movement      *StockMovement
	ReservationID string
}

// TransferResult carries both sides of a completed transfer.
type TransferResult struct {
	TransferID  string
	Source      *InventoryItem
	Destination *InventoryItem
	Movements   []StockMovement
}
