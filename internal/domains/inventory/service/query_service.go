package service

import (
	"context"
	"time"

	"inventory-service/internal/domains/inventory/model"
	"inventory-service/internal/domains/inventory/repository"
	"inventory-service/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const availabilityCacheTTL = 5 * time.Second

func availabilityCacheKey(sku string) string {
	return "inventory:availability:" + sku
}

// QueryService serves the read side. Availability checks go through a short
// lived Redis cache; every other query hits the store directly.
type QueryService struct {
	repo  repository.Repository
	cache *cache.RedisClient // nil disables caching
}

// NewQueryService creates a new query service
func NewQueryService(repo repository.Repository, redisCache *cache.RedisClient) *QueryService {
	return &QueryService{
		repo:  repo,
		cache: redisCache,
	}
}

// Get retrieves one item by (sku, location)
func (s *QueryService) Get(ctx context.Context, sku, location string) (*model.InventoryItem, error) {
	return s.repo.Get(ctx, sku, normalizeLocation(location))
}

// List retrieves filtered, paginated items plus the total count
func (s *QueryService) List(ctx context.Context, req model.ListItemsRequest) ([]model.InventoryItem, int, error) {
	filter := repository.ItemFilter{
		SKU:      req.SKU,
		Location: req.Location,
		Page:     req.Page,
		PerPage:  req.PerPage,
	}
	if req.InStock != nil && *req.InStock {
		filter.InStock = true
	}
	if req.OutOfStock != nil && *req.OutOfStock {
		filter.OutOfStock = true
	}
	if req.LowStock != nil && *req.LowStock {
		filter.LowStock = true
	}

	return s.repo.List(ctx, filter)
}

// BySKU retrieves all location rows for a sku
func (s *QueryService) BySKU(ctx context.Context, sku string) ([]model.InventoryItem, error) {
	return s.repo.BySKU(ctx, sku)
}

// LowStock retrieves items at or below their reorder point
func (s *QueryService) LowStock(ctx context.Context, page, perPage int) ([]model.InventoryItem, int, error) {
	return s.repo.List(ctx, repository.ItemFilter{
		LowStock: true,
		Page:     page,
		PerPage:  perPage,
	})
}

// Locations lists distinct location strings
func (s *QueryService) Locations(ctx context.Context) ([]string, error) {
	return s.repo.Locations(ctx)
}

// Movements retrieves the ledger for one item, newest first
func (s *QueryService) Movements(ctx context.Context, sku, location string, req model.ListMovementsRequest) ([]model.StockMovement, int, error) {
	item, err := s.repo.Get(ctx, sku, normalizeLocation(location))
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Movements(ctx, repository.MovementFilter{
		ItemID:        &item.ID,
		MovementType:  req.MovementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Page:          req.Page,
		PerPage:       req.PerPage,
	})
}

// AllMovements browses the ledger across all items
func (s *QueryService) AllMovements(ctx context.Context, req model.ListMovementsRequest) ([]model.StockMovement, int, error) {
	return s.repo.Movements(ctx, repository.MovementFilter{
		MovementType:  req.MovementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Page:          req.Page,
		PerPage:       req.PerPage,
	})
}

// GetMovement retrieves one ledger entry by id
func (s *QueryService) GetMovement(ctx context.Context, id uuid.UUID) (*model.StockMovement, error) {
	return s.repo.GetMovement(ctx, id)
}

// AggregateBySKU sums counters per sku across locations
func (s *QueryService) AggregateBySKU(ctx context.Context) ([]model.SKUAggregate, error) {
	return s.repo.AggregateBySKU(ctx)
}

// TotalAvailableForSKU sums available stock across all locations of a sku
func (s *QueryService) TotalAvailableForSKU(ctx context.Context, sku string) (int64, error) {
	rows, err := s.availabilityRows(ctx, sku)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, row := range rows {
		total += row.Available
	}
	return total, nil
}

// CheckAvailability reports whether quantity units of a sku can be had,
// optionally restricted to one location. A request is satisfiable when total
// availability covers it or any matching location backorders.
func (s *QueryService) CheckAvailability(ctx context.Context, sku string, quantity int64, location string) (*model.AvailabilityReport, error) {
	if quantity <= 0 {
		return nil, model.NewBadInputError("quantity must be positive")
	}

	rows, err := s.availabilityRows(ctx, sku)
	if err != nil {
		return nil, err
	}

	if location != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Location == location {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if len(rows) == 0 {
		return nil, model.ErrItemNotFound
	}

	report := &model.AvailabilityReport{
		SKU:       sku,
		Requested: quantity,
		Locations: rows,
	}
	for _, row := range rows {
		report.TotalAvailable += row.Available
		if row.Backorderable {
			report.Backorderable = true
		}
	}
	report.IsAvailable = report.TotalAvailable >= quantity || report.Backorderable

	return report, nil
}

// BulkCheckAvailability answers many availability questions in one call
func (s *QueryService) BulkCheckAvailability(ctx context.Context, req model.BulkAvailabilityRequest) ([]model.AvailabilityReport, error) {
	reports := make([]model.AvailabilityReport, 0, len(req.Items))
	for _, query := range req.Items {
		report, err := s.CheckAvailability(ctx, query.SKU, query.Quantity, query.Location)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// availabilityRows returns per-location availability for a sku, cached for a
// few seconds. Cache errors fall through to the store.
func (s *QueryService) availabilityRows(ctx context.Context, sku string) ([]model.LocationAvailability, error) {
	key := availabilityCacheKey(sku)

	if s.cache != nil {
		var cached []model.LocationAvailability
		found, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("sku", sku).Msg("Availability cache read failed")
		} else if found {
			return cached, nil
		}
	}

	items, err := s.repo.BySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	rows := make([]model.LocationAvailability, 0, len(items))
	for i := range items {
		rows = append(rows, model.LocationAvailability{
			Location:      items[i].Location,
			Available:     items[i].QuantityAvailable(),
			OnHand:        items[i].QuantityOnHand,
			Reserved:      items[i].QuantityReserved,
			Backorderable: items[i].Backorderable,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, rows, availabilityCacheTTL); err != nil {
			log.Warn().Err(err).Str("sku", sku).Msg("Availability cache write failed")
		}
	}

	return rows, nil
}
