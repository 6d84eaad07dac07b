// Package rpc adapts the stock engine and query layer onto the gRPC surface.
// Business failures are encoded in the response (success=false plus an error
// code); only transport problems surface as gRPC status errors.
package rpc

import (
	"context"

	inventorypb "inventory-service/api/proto/inventory/v1"
	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/service"

	"github.com/rs/zerolog/log"
)

// Error codes carried in StockResponse.error. Internal failures are masked.
const (
	errNotFound                = "not_found"
	errBadInput                = "bad_input"
	errValidation              = "validation_error"
	errInsufficientStock       = "insufficient_stock"
	errInsufficientReservation = "insufficient_reservation"
	errConflict                = "conflict"
	errInternal                = "Internal error"
)

// Server implements inventory.v1.InventoryService.
type Server struct {
	inventorypb.UnimplementedInventoryServiceServer

	stock *service.StockService
	query *service.QueryService
}

// NewServer creates a new RPC server
func NewServer(stock *service.StockService, query *service.QueryService) *Server {
	return &Server{
		stock: stock,
		query: query,
	}
}

// errorCode collapses a service error onto the wire taxonomy.
func errorCode(err error) string {
	switch {
	case model.IsNotFoundError(err):
		return errNotFound
	case model.IsBadInputError(err):
		return errBadInput
	case model.IsValidationError(err):
		return errValidation
	case model.IsInsufficientStockError(err):
		return errInsufficientStock
	case model.IsInsufficientReservationError(err):
		return errInsufficientReservation
	case model.IsConflictError(err):
		return errConflict
	default:
		log.Error().Err(err).Msg("unexpected error on rpc surface")
		return errInternal
	}
}

func stockOK(item *model.InventoryItem) *inventorypb.StockResponse {
	return &inventorypb.StockResponse{
		Sku:               item.SKU,
		Location:          item.Location,
		QuantityOnHand:    item.QuantityOnHand,
		QuantityReserved:  item.QuantityReserved,
		QuantityAvailable: item.QuantityAvailable(),
		InStock:           item.InStock(),
		Backorderable:     item.Backorderable,
		Success:           true,
	}
}

func stockFail(sku, location string, err error) *inventorypb.StockResponse {
	return &inventorypb.StockResponse{
		Sku:      sku,
		Location: location,
		Success:  false,
		Error:    errorCode(err),
	}
}

// GetStock returns the current counters for one (sku, location).
func (s *Server) GetStock(ctx context.Context, req *inventorypb.GetStockRequest) (*inventorypb.StockResponse, error) {
	item, err := s.query.Get(ctx, req.Sku, req.Location)
	if err != nil {
		return stockFail(req.Sku, req.Location, err), nil
	}
	return stockOK(item), nil
}

// AdjustStock applies a signed delta to on-hand stock.
func (s *Server) AdjustStock(ctx context.Context, req *inventorypb.AdjustStockRequest) (*inventorypb.StockResponse, error) {
	result, err := s.stock.Adjust(ctx, req.Sku, model.AdjustmentRequest{
		Location:      req.Location,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceId,
	})
	if err != nil {
		return stockFail(req.Sku, req.Location, err), nil
	}
	return stockOK(result.Item), nil
}

// ReserveStock earmarks stock and returns the reservation handle.
func (s *Server) ReserveStock(ctx context.Context, req *inventorypb.ReserveStockRequest) (*inventorypb.StockResponse, error) {
	result, err := s.stock.Reserve(ctx, req.Sku, model.QuantityRequest{
		Location:      req.Location,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceId,
	})
	if err != nil {
		return stockFail(req.Sku, req.Location, err), nil
	}

	resp := stockOK(result.Item)
	resp.ReservationId = result.ReservationID
	return resp, nil
}

// ReleaseReservation returns reserved stock to the available pool.
func (s *Server) ReleaseReservation(ctx context.Context, req *inventorypb.ReleaseReservationRequest) (*inventorypb.StockResponse, error) {
	result, err := s.stock.Release(ctx, req.Sku, model.QuantityRequest{
		Location:      req.Location,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceId,
	})
	if err != nil {
		return stockFail(req.Sku, req.Location, err), nil
	}
	return stockOK(result.Item), nil
}

// CommitReservation consumes reserved stock.
func (s *Server) CommitReservation(ctx context.Context, req *inventorypb.CommitReservationRequest) (*inventorypb.StockResponse, error) {
	result, err := s.stock.Commit(ctx, req.Sku, model.QuantityRequest{
		Location:      req.Location,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceId,
	})
	if err != nil {
		return stockFail(req.Sku, req.Location, err), nil
	}
	return stockOK(result.Item), nil
}

// CheckAvailability answers whether quantity units of a sku can be had.
func (s *Server) CheckAvailability(ctx context.Context, req *inventorypb.CheckAvailabilityRequest) (*inventorypb.CheckAvailabilityResponse, error) {
	return s.checkOne(ctx, req), nil
}

// BulkCheckAvailability answers many availability questions in one round
// trip. Per-item failures are embedded; the bulk call itself succeeds.
func (s *Server) BulkCheckAvailability(ctx context.Context, req *inventorypb.BulkCheckAvailabilityRequest) (*inventorypb.BulkCheckAvailabilityResponse, error) {
	results := make([]*inventorypb.CheckAvailabilityResponse, 0, len(req.Items))
	for _, item := range req.Items {
		results = append(results, s.checkOne(ctx, item))
	}
	return &inventorypb.BulkCheckAvailabilityResponse{
		Results: results,
		Success: true,
	}, nil
}

func (s *Server) checkOne(ctx context.Context, req *inventorypb.CheckAvailabilityRequest) *inventorypb.CheckAvailabilityResponse {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	report, err := s.query.CheckAvailability(ctx, req.Sku, quantity, req.Location)
	if err != nil {
		return &inventorypb.CheckAvailabilityResponse{
			Sku:       req.Sku,
			Requested: quantity,
			Success:   false,
			Error:     errorCode(err),
		}
	}

	locations := make([]*inventorypb.LocationStock, 0, len(report.Locations))
	for _, row := range report.Locations {
		locations = append(locations, &inventorypb.LocationStock{
			Location:          row.Location,
			QuantityOnHand:    row.OnHand,
			QuantityReserved:  row.Reserved,
			QuantityAvailable: row.Available,
			Backorderable:     row.Backorderable,
		})
	}

	return &inventorypb.CheckAvailabilityResponse{
		Sku:            report.SKU,
		Requested:      report.Requested,
		TotalAvailable: report.TotalAvailable,
		IsAvailable:    report.IsAvailable,
		Backorderable:  report.Backorderable,
		Locations:      locations,
		Success:        true,
	}
}
