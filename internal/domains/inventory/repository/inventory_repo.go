package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/domains/inventory/model"
	"inventory-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `
	id, sku, location, quantity_on_hand, quantity_reserved,
	reorder_point, reorder_quantity, backorderable,
	COALESCE(metadata, '{}'), lock_version, created_at, updated_at`

const movementColumns = `
	m.id, m.inventory_item_id, i.sku, i.location, m.movement_type,
	m.quantity, m.quantity_before, m.quantity_after,
	COALESCE(m.reason, ''), COALESCE(m.reference_type, ''), COALESCE(m.reference_id, ''),
	COALESCE(m.metadata, '{}'), m.created_at`

// postgresRepository implements Repository on a pgx pool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{
		pool: pool,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *model.InventoryItem) error {
	return row.Scan(
		&item.ID,
		&item.SKU,
		&item.Location,
		&item.QuantityOnHand,
		&item.QuantityReserved,
		&item.ReorderPoint,
		&item.ReorderQuantity,
		&item.Backorderable,
		&item.Metadata,
		&item.LockVersion,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func scanMovement(row rowScanner, m *model.StockMovement) error {
	return row.Scan(
		&m.ID,
		&m.InventoryItemID,
		&m.SKU,
		&m.Location,
		&m.MovementType,
		&m.Quantity,
		&m.QuantityBefore,
		&m.QuantityAfter,
		&m.Reason,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Metadata,
		&m.CreatedAt,
	)
}

// Transact implements Repository.Transact
func (r *postgresRepository) Transact(ctx context.Context, fn func(tx TxRepository) error) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&txRepository{tx: tx})
	})
}

// Create implements Repository.Create
func (r *postgresRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (
			id, sku, location, quantity_on_hand, quantity_reserved,
			reorder_point, reorder_quantity, backorderable,
			metadata, lock_version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.SKU,
		item.Location,
		item.QuantityOnHand,
		item.QuantityReserved,
		item.ReorderPoint,
		item.ReorderQuantity,
		item.Backorderable,
		item.Metadata,
		item.LockVersion,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrItemAlreadyExists
		}
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}

	return nil
}

// Get implements Repository.Get
func (r *postgresRepository) Get(ctx context.Context, sku, location string) (*model.InventoryItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE sku = $1 AND location = $2
	`

	var item model.InventoryItem
	err := scanItem(r.pool.QueryRow(ctx, query, sku, location), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return &item, nil
}

// List implements Repository.List
func (r *postgresRepository) List(ctx context.Context, filter ItemFilter) ([]model.InventoryItem, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argCount := 1

	if filter.SKU != "" {
		where += fmt.Sprintf(" AND sku = $%d", argCount)
		args = append(args, filter.SKU)
		argCount++
	}

	if filter.Location != "" {
		where += fmt.Sprintf(" AND location = $%d", argCount)
		args = append(args, filter.Location)
		argCount++
	}

	if filter.InStock {
		where += " AND (quantity_on_hand - quantity_reserved) > 0"
	}

	if filter.OutOfStock {
		where += " AND (quantity_on_hand - quantity_reserved) <= 0"
	}

	if filter.LowStock {
		where += " AND reorder_point IS NOT NULL AND (quantity_on_hand - quantity_reserved) <= reorder_point"
	}

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM inventory_items" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	query := "SELECT " + itemColumns + " FROM inventory_items" + where
	query += " ORDER BY sku ASC, location ASC"
	offset := (filter.Page - 1) * filter.PerPage
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, filter.PerPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0, filter.PerPage)
	for rows.Next() {
		var item model.InventoryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, 0, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating inventory item rows: %w", err)
	}

	return items, totalCount, nil
}

// BySKU implements Repository.BySKU
func (r *postgresRepository) BySKU(ctx context.Context, sku string) ([]model.InventoryItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE sku = $1
		ORDER BY location ASC
	`

	rows, err := r.pool.Query(ctx, query, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items by sku: %w", err)
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0, 4)
	for rows.Next() {
		var item model.InventoryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}

	return items, nil
}

// Update implements Repository.Update with optimistic locking. Only the
// mutable configuration columns are written; quantity counters change
// exclusively through transactions on TxRepository.
func (r *postgresRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET
			reorder_point = $2,
			reorder_quantity = $3,
			backorderable = $4,
			metadata = $5,
			lock_version = lock_version + 1,
			updated_at = NOW()
		WHERE id = $1 AND lock_version = $6
		RETURNING lock_version, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.ReorderPoint,
		item.ReorderQuantity,
		item.Backorderable,
		item.Metadata,
		item.LockVersion,
	).Scan(&item.LockVersion, &item.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record is gone or the version moved under us.
			var actualVersion int64
			checkQuery := "SELECT lock_version FROM inventory_items WHERE id = $1"
			checkErr := r.pool.QueryRow(ctx, checkQuery, item.ID).Scan(&actualVersion)

			if errors.Is(checkErr, pgx.ErrNoRows) {
				return fmt.Errorf("%w: id=%s", model.ErrItemNotFound, item.ID)
			}
			if checkErr != nil {
				return fmt.Errorf("failed to check inventory item existence: %w", checkErr)
			}

			return model.NewConflictError(item.LockVersion, actualVersion)
		}
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	return nil
}

// Delete implements Repository.Delete; movements cascade via FK
func (r *postgresRepository) Delete(ctx context.Context, sku, location string) error {
	query := "DELETE FROM inventory_items WHERE sku = $1 AND location = $2"

	result, err := r.pool.Exec(ctx, query, sku, location)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
	}

	return nil
}

// Locations implements Repository.Locations
func (r *postgresRepository) Locations(ctx context.Context) ([]string, error) {
	query := "SELECT DISTINCT location FROM inventory_items ORDER BY location ASC"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := make([]string, 0, 4)
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}

	return locations, nil
}

// Movements implements Repository.Movements
func (r *postgresRepository) Movements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, int, error) {
	from := " FROM stock_movements m JOIN inventory_items i ON i.id = m.inventory_item_id"
	where := " WHERE 1=1"
	args := []interface{}{}
	argCount := 1

	if filter.ItemID != nil {
		where += fmt.Sprintf(" AND m.inventory_item_id = $%d", argCount)
		args = append(args, *filter.ItemID)
		argCount++
	}

	if filter.SKU != "" {
		where += fmt.Sprintf(" AND i.sku = $%d", argCount)
		args = append(args, filter.SKU)
		argCount++
	}

	if filter.MovementType != "" {
		where += fmt.Sprintf(" AND m.movement_type = $%d", argCount)
		args = append(args, filter.MovementType)
		argCount++
	}

	if filter.ReferenceType != "" {
		where += fmt.Sprintf(" AND m.reference_type = $%d", argCount)
		args = append(args, filter.ReferenceType)
		argCount++
	}

	if filter.ReferenceID != "" {
		where += fmt.Sprintf(" AND m.reference_id = $%d", argCount)
		args = append(args, filter.ReferenceID)
		argCount++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND m.created_at >= $%d", argCount)
		args = append(args, *filter.StartDate)
		argCount++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND m.created_at <= $%d", argCount)
		args = append(args, *filter.EndDate)
		argCount++
	}

	var totalCount int
	countQuery := "SELECT COUNT(*)" + from + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	query := "SELECT " + movementColumns + from + where
	query += " ORDER BY m.created_at DESC, m.id DESC"
	offset := (filter.Page - 1) * filter.PerPage
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, filter.PerPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0, filter.PerPage)
	for rows.Next() {
		var m model.StockMovement
		if err := scanMovement(rows, &m); err != nil {
			return nil, 0, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating stock movement rows: %w", err)
	}

	return movements, totalCount, nil
}

// GetMovement implements Repository.GetMovement
func (r *postgresRepository) GetMovement(ctx context.Context, id uuid.UUID) (*model.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements m
		JOIN inventory_items i ON i.id = m.inventory_item_id
		WHERE m.id = $1
	`

	var m model.StockMovement
	err := scanMovement(r.pool.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%s", model.ErrMovementNotFound, id)
		}
		return nil, fmt.Errorf("failed to get stock movement: %w", err)
	}

	return &m, nil
}

// AggregateBySKU implements Repository.AggregateBySKU
func (r *postgresRepository) AggregateBySKU(ctx context.Context) ([]model.SKUAggregate, error) {
	query := `
		SELECT
			sku,
			COUNT(*),
			COALESCE(SUM(quantity_on_hand), 0),
			COALESCE(SUM(quantity_reserved), 0),
			COALESCE(SUM(quantity_on_hand - quantity_reserved), 0)
		FROM inventory_items
		GROUP BY sku
		ORDER BY sku ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by sku: %w", err)
	}
	defer rows.Close()

	aggregates := make([]model.SKUAggregate, 0, 16)
	for rows.Next() {
		var agg model.SKUAggregate
		err := rows.Scan(
			&agg.SKU,
			&agg.LocationCount,
			&agg.TotalOnHand,
			&agg.TotalReserved,
			&agg.TotalAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aggregate rows: %w", err)
	}

	return aggregates, nil
}

// txRepository implements TxRepository on an open pgx transaction
type txRepository struct {
	tx pgx.Tx
}

// GetForUpdate implements TxRepository.GetForUpdate
func (r *txRepository) GetForUpdate(ctx context.Context, sku, location string) (*model.InventoryItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE sku = $1 AND location = $2
		FOR UPDATE
	`

	var item model.InventoryItem
	err := scanItem(r.tx.QueryRow(ctx, query, sku, location), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, location)
		}
		return nil, fmt.Errorf("failed to lock inventory item: %w", err)
	}

	return &item, nil
}

// GetPairForUpdate implements TxRepository.GetPairForUpdate. Rows are locked
// in ascending id order so concurrent transfers over the same pair cannot
// deadlock.
func (r *txRepository) GetPairForUpdate(ctx context.Context, sku, locationA, locationB string) (*model.InventoryItem, *model.InventoryItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE sku = $1 AND location IN ($2, $3)
		ORDER BY id ASC
		FOR UPDATE
	`

	rows, err := r.tx.Query(ctx, query, sku, locationA, locationB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock inventory item pair: %w", err)
	}
	defer rows.Close()

	byLocation := make(map[string]*model.InventoryItem, 2)
	for rows.Next() {
		var item model.InventoryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		byLocation[item.Location] = &item
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}

	a, ok := byLocation[locationA]
	if !ok {
		return nil, nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, locationA)
	}
	b, ok := byLocation[locationB]
	if !ok {
		return nil, nil, fmt.Errorf("%w: sku=%s, location=%s", model.ErrItemNotFound, sku, locationB)
	}

	return a, b, nil
}

// UpdateQuantities implements TxRepository.UpdateQuantities
func (r *txRepository) UpdateQuantities(ctx context.Context, item *model.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET
			quantity_on_hand = $2,
			quantity_reserved = $3,
			lock_version = lock_version + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING lock_version, updated_at
	`

	err := r.tx.QueryRow(ctx, query,
		item.ID,
		item.QuantityOnHand,
		item.QuantityReserved,
	).Scan(&item.LockVersion, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update inventory quantities: %w", err)
	}

	return nil
}

// InsertMovement implements TxRepository.InsertMovement
func (r *txRepository) InsertMovement(ctx context.Context, m *model.StockMovement) error {
	query := `
		INSERT INTO stock_movements (
			id, inventory_item_id, movement_type, quantity,
			quantity_before, quantity_after,
			reason, reference_type, reference_id,
			metadata, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.tx.Exec(ctx, query,
		m.ID,
		m.InventoryItemID,
		m.MovementType,
		m.Quantity,
		m.QuantityBefore,
		m.QuantityAfter,
		m.Reason,
		m.ReferenceType,
		m.ReferenceID,
		m.Metadata,
		m.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}

	return nil
}
