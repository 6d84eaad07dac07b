package handler

import (
	"net/http"

	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/service"
	"inventory-service/internal/shared/response"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler is the REST adapter: it decodes JSON into engine requests, runs
// them and shapes the envelope. All business rules live in the services.
type Handler struct {
	stock *service.StockService
	query *service.QueryService
}

// NewHandler creates a new inventory handler
func NewHandler(stock *service.StockService, query *service.QueryService) *Handler {
	return &Handler{
		stock: stock,
		query: query,
	}
}

func location(c *gin.Context) string {
	return c.Query("location")
}

// respondError maps a service error onto the REST taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case model.IsNotFoundError(err):
		response.Error(c, http.StatusNotFound, "not_found", err.Error())
	case model.IsBadInputError(err):
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
	case model.IsValidationError(err):
		response.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case model.IsInsufficientStockError(err):
		response.Error(c, http.StatusUnprocessableEntity, "insufficient_stock", err.Error())
	case model.IsInsufficientReservationError(err):
		response.Error(c, http.StatusUnprocessableEntity, "insufficient_reservation", err.Error())
	case model.IsConflictError(err):
		response.Error(c, http.StatusConflict, "conflict", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "internal_error", "Internal error")
	}
}

// respondValidation shapes an ozzo-validation failure with per-field details.
func respondValidation(c *gin.Context, err error) {
	if fields, ok := err.(validation.Errors); ok {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"validation_error", "request validation failed", fields)
		return
	}
	response.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
}

// =====================================================
// ITEM CRUD
// =====================================================

// ListItems handles GET /api/v1/inventory
func (h *Handler) ListItems(c *gin.Context) {
	var req model.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	req.Validate()

	items, total, err := h.query.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, http.StatusOK, model.ToItemResponses(items),
		response.NewMeta(total, req.Page, req.PerPage))
}

// GetItem handles GET /api/v1/inventory/:sku
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.query.Get(c.Request.Context(), c.Param("sku"), location(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, item.ToResponse())
}

// CreateItem handles POST /api/v1/inventory
func (h *Handler) CreateItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	item, err := h.stock.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, item.ToResponse())
}

// UpdateItem handles PATCH /api/v1/inventory/:sku. Only configuration moves
// here; quantities change exclusively through the transition endpoints.
func (h *Handler) UpdateItem(c *gin.Context) {
	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	item, err := h.stock.UpdateItem(c.Request.Context(), c.Param("sku"), location(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, item.ToResponse())
}

// DeleteItem handles DELETE /api/v1/inventory/:sku
func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.stock.DeleteItem(c.Request.Context(), c.Param("sku"), location(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// =====================================================
// STOCK TRANSITIONS
// =====================================================

func (h *Handler) writeTransition(c *gin.Context, result *model.TransitionResult) {
	env := response.Envelope{
		Data:          result.Item.ToResponse(),
		ReservationID: result.ReservationID,
	}
	if result.Movement != nil {
		m := result.Movement.ToResponse()
		env.Movement = m
	}
	response.Write(c, http.StatusOK, env)
}

// Receive handles POST /api/v1/inventory/:sku/receive
func (h *Handler) Receive(c *gin.Context) {
	var req model.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Receive(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Adjust handles POST /api/v1/inventory/:sku/adjust
func (h *Handler) Adjust(c *gin.Context) {
	var req model.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Adjust(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Reserve handles POST /api/v1/inventory/:sku/reserve
func (h *Handler) Reserve(c *gin.Context) {
	var req model.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Reserve(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Release handles POST /api/v1/inventory/:sku/release
func (h *Handler) Release(c *gin.Context) {
	var req model.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Release(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Commit handles POST /api/v1/inventory/:sku/commit
func (h *Handler) Commit(c *gin.Context) {
	var req model.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Commit(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Count handles POST /api/v1/inventory/:sku/count
func (h *Handler) Count(c *gin.Context) {
	var req model.CountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.CountAdjustment(c.Request.Context(), c.Param("sku"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeTransition(c, result)
}

// Transfer handles POST /api/v1/inventory/transfer
func (h *Handler) Transfer(c *gin.Context) {
	var req model.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.stock.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Write(c, http.StatusOK, response.Envelope{
		Data: gin.H{
			"source":      result.Source.ToResponse(),
			"destination": result.Destination.ToResponse(),
		},
		Movements:  model.ToMovementResponses(result.Movements),
		TransferID: result.TransferID,
	})
}

// BulkAdjust handles POST /api/v1/inventory/bulk_adjust. The batch itself
// always answers 200; per-entry outcomes are in the payload.
func (h *Handler) BulkAdjust(c *gin.Context) {
	var req model.BulkAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	results := h.stock.BulkAdjust(c.Request.Context(), req)
	response.Data(c, http.StatusOK, results)
}

// =====================================================
// QUERIES
// =====================================================

// LowStock handles GET /api/v1/inventory/low_stock
func (h *Handler) LowStock(c *gin.Context) {
	var req model.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	req.Validate()

	items, total, err := h.query.LowStock(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, http.StatusOK, model.ToItemResponses(items),
		response.NewMeta(total, req.Page, req.PerPage))
}

// Locations handles GET /api/v1/inventory/locations
func (h *Handler) Locations(c *gin.Context) {
	locations, err := h.query.Locations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, locations)
}

// AggregateBySKU handles GET /api/v1/inventory/aggregate
func (h *Handler) AggregateBySKU(c *gin.Context) {
	aggregates, err := h.query.AggregateBySKU(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, aggregates)
}

// Availability handles GET /api/v1/inventory/:sku/availability
func (h *Handler) Availability(c *gin.Context) {
	var req struct {
		Quantity int64  `form:"quantity"`
		Location string `form:"location"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	report, err := h.query.CheckAvailability(c.Request.Context(), c.Param("sku"), req.Quantity, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, report)
}

// ItemMovements handles GET /api/v1/inventory/:sku/movements
func (h *Handler) ItemMovements(c *gin.Context) {
	var req model.ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	// "type" is the documented filter name; movement_type also accepted.
	if t := c.Query("type"); t != "" {
		req.MovementType = t
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	movements, total, err := h.query.Movements(c.Request.Context(), c.Param("sku"), location(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, http.StatusOK, model.ToMovementResponses(movements),
		response.NewMeta(total, req.Page, req.PerPage))
}

// ListMovements handles GET /api/v1/stock_movements
func (h *Handler) ListMovements(c *gin.Context) {
	var req model.ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", err.Error())
		return
	}
	if t := c.Query("type"); t != "" {
		req.MovementType = t
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	movements, total, err := h.query.AllMovements(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, http.StatusOK, model.ToMovementResponses(movements),
		response.NewMeta(total, req.Page, req.PerPage))
}

// GetMovement handles GET /api/v1/stock_movements/:id
func (h *Handler) GetMovement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "bad_input", "invalid movement id")
		return
	}

	movement, err := h.query.GetMovement(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Data(c, http.StatusOK, movement.ToResponse())
}
