package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-service/internal/domains/inventory/events"
	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"
	"inventory-service/internal/domains/inventory/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.StockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	stock := service.NewStockService(repo, events.NewLogPublisher(), nil)
	query := service.NewQueryService(repo, nil)
	h := NewHandler(stock, query)

	router := gin.New()
	v1 := router.Group("/api/v1")
	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.ListItems)
		inventory.POST("", h.CreateItem)
		inventory.GET("/low_stock", h.LowStock)
		inventory.GET("/locations", h.Locations)
		inventory.GET("/aggregate", h.AggregateBySKU)
		inventory.POST("/transfer", h.Transfer)
		inventory.POST("/bulk_adjust", h.BulkAdjust)
		inventory.GET("/:sku", h.GetItem)
		inventory.PATCH("/:sku", h.UpdateItem)
		inventory.DELETE("/:sku", h.DeleteItem)
		inventory.POST("/:sku/receive", h.Receive)
		inventory.POST("/:sku/adjust", h.Adjust)
		inventory.POST("/:sku/reserve", h.Reserve)
		inventory.POST("/:sku/release", h.Release)
		inventory.POST("/:sku/commit", h.Commit)
		inventory.POST("/:sku/count", h.Count)
		inventory.GET("/:sku/movements", h.ItemMovements)
		inventory.GET("/:sku/availability", h.Availability)
	}
	movements := v1.Group("/stock_movements")
	{
		movements.GET("", h.ListMovements)
		movements.GET("/:id", h.GetMovement)
	}

	return router, stock
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seed(t *testing.T, stock *service.StockService, sku, location string, onHand int64, backorderable bool) {
	t.Helper()
	_, err := stock.CreateItem(context.Background(), model.CreateItemRequest{
		SKU:            sku,
		Location:       location,
		QuantityOnHand: onHand,
		Backorderable:  backorderable,
	})
	require.NoError(t, err)
}

func TestCreateAndGetItem(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory", gin.H{
		"sku":              "WIDGET-001",
		"quantity_on_hand": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "WIDGET-001", data["sku"])
	assert.Equal(t, "default", data["location"])
	assert.Equal(t, float64(10), data["quantity_on_hand"])
	assert.Equal(t, float64(10), data["quantity_available"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/inventory/WIDGET-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/inventory/UNKNOWN", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode(t, w)["error"])
}

func TestCreateItemValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory", gin.H{"quantity_on_hand": 10})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_error", decode(t, w)["error"])
}

func TestCreateItemDuplicateConflictsAsValidation(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory", gin.H{"sku": "WIDGET-001"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReserveCommitOverHTTP(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/WIDGET-001/reserve", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Regexp(t, `^RES-`, body["reservation_id"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["quantity_on_hand"])
	assert.Equal(t, float64(3), data["quantity_reserved"])
	assert.Equal(t, float64(7), data["quantity_available"])

	movement := body["movement"].(map[string]interface{})
	assert.Equal(t, "reservation", movement["movement_type"])
	assert.Equal(t, float64(-3), movement["quantity"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/inventory/WIDGET-001/commit", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	data = decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["quantity_on_hand"])
	assert.Equal(t, float64(0), data["quantity_reserved"])
}

func TestOverReserveReturns422(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "GADGET-002", "", 2, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/GADGET-002/reserve", gin.H{"quantity": 3})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "insufficient_stock", decode(t, w)["error"])
}

func TestReleaseMoreThanReservedReturns422(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/WIDGET-001/release", gin.H{"quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "insufficient_reservation", decode(t, w)["error"])
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/WIDGET-001/reserve", gin.H{"quantity": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_input", decode(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/inventory/WIDGET-001/reserve", gin.H{"quantity": -2})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchRejectsQuantities(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	// Quantity fields are simply not part of the update contract; sending
	// them changes nothing.
	w := doJSON(t, router, http.MethodPatch, "/api/v1/inventory/WIDGET-001", gin.H{
		"quantity_on_hand": 9999,
		"backorderable":    true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["quantity_on_hand"])
	assert.Equal(t, true, data["backorderable"])
}

func TestPatchStaleLockVersionConflicts(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodPatch, "/api/v1/inventory/WIDGET-001", gin.H{
		"backorderable": true,
		"lock_version":  1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/inventory/WIDGET-001", gin.H{
		"backorderable": false,
		"lock_version":  1,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decode(t, w)["error"])
}

func TestDeleteItem(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/inventory/WIDGET-001", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/inventory/WIDGET-001", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPaginationHeaders(t *testing.T) {
	router, stock := newTestRouter(t)
	for _, sku := range []string{"A", "B", "C"} {
		seed(t, stock, sku, "", 5, false)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory?page=1&per_page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "1", w.Header().Get("X-Page"))
	assert.Equal(t, "2", w.Header().Get("X-Per-Page"))

	body := decode(t, w)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total_count"])
	assert.Equal(t, float64(2), meta["total_pages"])
	assert.Len(t, body["data"], 2)
}

func TestTransferEndpoint(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "X", "east", 100, false)
	seed(t, stock, "X", "west", 0, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/transfer", gin.H{
		"sku":                  "X",
		"source_location":      "east",
		"destination_location": "west",
		"quantity":             40,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["transfer_id"])

	data := body["data"].(map[string]interface{})
	source := data["source"].(map[string]interface{})
	destination := data["destination"].(map[string]interface{})
	assert.Equal(t, float64(60), source["quantity_on_hand"])
	assert.Equal(t, float64(40), destination["quantity_on_hand"])

	movements := body["movements"].([]interface{})
	require.Len(t, movements, 2)
}

func TestBulkAdjustEndpoint(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "A", "", 10, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/bulk_adjust", gin.H{
		"adjustments": []gin.H{
			{"sku": "A", "quantity": 5},
			{"sku": "MISSING", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	results := decode(t, w)["data"].([]interface{})
	require.Len(t, results, 2)
	first := results[0].(map[string]interface{})
	second := results[1].(map[string]interface{})
	assert.Equal(t, true, first["success"])
	assert.Equal(t, false, second["success"])
}

func TestMovementEndpoints(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "WIDGET-001", "", 10, false)
	ctx := context.Background()

	_, err := stock.Receive(ctx, "WIDGET-001", model.AdjustmentRequest{Quantity: 5})
	require.NoError(t, err)
	reserved, err := stock.Reserve(ctx, "WIDGET-001", model.QuantityRequest{Quantity: 2})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory/WIDGET-001/movements?type=reservation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 1)

	w = doJSON(t, router, http.MethodGet, "/api/v1/stock_movements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 2)

	w = doJSON(t, router, http.MethodGet, "/api/v1/stock_movements/"+reserved.Movement.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/stock_movements/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "X", "east", 100, false)
	seed(t, stock, "X", "west", 20, false)

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory/X/availability?quantity=110", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(120), data["total_available"])
	assert.Equal(t, true, data["is_available"])

	locations := data["locations"].([]interface{})
	assert.Len(t, locations, 2)
}

func TestLowStockEndpoint(t *testing.T) {
	router, stock := newTestRouter(t)
	ctx := context.Background()

	point := int64(5)
	_, err := stock.CreateItem(ctx, model.CreateItemRequest{
		SKU: "LOW", QuantityOnHand: 2, ReorderPoint: &point,
	})
	require.NoError(t, err)
	seed(t, stock, "FULL", "", 50, false)

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory/low_stock", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Len(t, body["data"], 1)
	item := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "LOW", item["sku"])
}

func TestLocationsEndpoint(t *testing.T) {
	router, stock := newTestRouter(t)
	seed(t, stock, "X", "east", 1, false)
	seed(t, stock, "Y", "west", 1, false)

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"east", "west"}, body.Data)
}
