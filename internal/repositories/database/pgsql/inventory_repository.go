package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/hotelio/hotel_management_app/internal/models"
	"github.com/hotelio/hotel_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryFacade
var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func toModelItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:            d.ItemID,
		Name:              d.Name,
		Reference:         d.Reference,
		CategoryID:        d.CategoryID,
		Description:       d.Description,
		TotalQuantity:     d.TotalQuantity,
		AvailableQuantity: d.AvailableQuantity,
		AlertThreshold:    d.AlertThreshold,
		Condition:         string(d.Condition),
		Location:          d.Location,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            m.ItemID,
		Name:              m.Name,
		Reference:         m.Reference,
		CategoryID:        m.CategoryID,
		Description:       m.Description,
		TotalQuantity:     m.TotalQuantity,
		AvailableQuantity: m.AvailableQuantity,
		AlertThreshold:    m.AlertThreshold,
		Condition:         domain.ItemCondition(m.Condition),
		Location:          m.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const itemColumns = `item_id, name, reference, category_id, description, total_quantity, available_quantity, alert_threshold, condition, location, created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.Reference,
		&m.CategoryID,
		&m.Description,
		&m.TotalQuantity,
		&m.AvailableQuantity,
		&m.AlertThreshold,
		&m.Condition,
		&m.Location,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInventoryRepository) SaveCategory(ctx context.Context, category domain.InventoryCategory) error {
	query := `
		INSERT INTO inventory_categories (category_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Description,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: category %s already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) ListCategories(ctx context.Context) ([]domain.InventoryCategory, error) {
	query := `SELECT category_id, name, description, created_at, created_by, last_updated_at, last_updated_by FROM inventory_categories ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.InventoryCategory{}
	for rows.Next() {
		var c domain.InventoryCategory
		err := rows.Scan(
			&c.CategoryID,
			&c.Name,
			&c.Description,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := toModelItem(item)
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Reference,
		m.CategoryID,
		m.Description,
		m.TotalQuantity,
		m.AvailableQuantity,
		m.AlertThreshold,
		m.Condition,
		m.Location,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: item with reference %s already exists", apperrors.ErrDuplicate, m.Reference)
		}
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}
	item := toDomainItem(m)
	return &item, nil
}

func (r *PgxInventoryRepository) FindItemByReference(ctx context.Context, reference string) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE reference = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by reference %s: %w", reference, err)
	}
	item := toDomainItem(m)
	return &item, nil
}

// ListItems retrieves a paginated list of items using token-based pagination.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.InventoryItem, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, item_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, item_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	modelItems := []models.InventoryItem{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		modelItems = append(modelItems, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating item rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelItems) > limit {
		last := modelItems[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ItemID)
		nextTokenVal = &token
		modelItems = modelItems[:limit]
	}

	items := make([]domain.InventoryItem, len(modelItems))
	for i, m := range modelItems {
		items[i] = toDomainItem(m)
	}
	return items, nextTokenVal, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := toModelItem(item)
	query := `
		UPDATE inventory_items
		SET name = $1, reference = $2, category_id = $3, description = $4, total_quantity = $5,
			available_quantity = $6, alert_threshold = $7, condition = $8, location = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE item_id = $12;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Reference,
		m.CategoryID,
		m.Description,
		m.TotalQuantity,
		m.AvailableQuantity,
		m.AlertThreshold,
		m.Condition,
		m.Location,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update item query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInventoryRepository) ListMovementsByItem(ctx context.Context, itemID string) ([]domain.InventoryMovement, error) {
	query := `
		SELECT movement_id, item_id, type, quantity, room_id, employee_id, notes, performed_by, occurred_at
		FROM inventory_movements
		WHERE item_id = $1
		ORDER BY occurred_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for item %s: %w", itemID, err)
	}
	defer rows.Close()

	movements := []domain.InventoryMovement{}
	for rows.Next() {
		var m models.InventoryMovement
		err := rows.Scan(
			&m.MovementID,
			&m.ItemID,
			&m.Type,
			&m.Quantity,
			&m.RoomID,
			&m.EmployeeID,
			&m.Notes,
			&m.PerformedBy,
			&m.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, domain.InventoryMovement{
			MovementID:  m.MovementID,
			ItemID:      m.ItemID,
			Type:        domain.MovementType(m.Type),
			Quantity:    m.Quantity,
			RoomID:      m.RoomID,
			EmployeeID:  m.EmployeeID,
			Notes:       m.Notes,
			PerformedBy: m.PerformedBy,
			OccurredAt:  m.OccurredAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", rows.Err())
	}
	return movements, nil
}

// ApplyMovement inserts the movement and adjusts the item quantities in
// one transaction. The item row is locked first, so concurrent movements
// against the same item serialize instead of losing updates.
func (r *PgxInventoryRepository) ApplyMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryItem, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1 FOR UPDATE;`
	m, err := scanItem(tx.QueryRow(ctx, lockQuery, movement.ItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock item %s: %w", movement.ItemID, err)
	}

	switch {
	case movement.Type.AddsStock():
		m.TotalQuantity += movement.Quantity
		m.AvailableQuantity += movement.Quantity
	case movement.Type.RemovesAvailability():
		if movement.Quantity > m.AvailableQuantity {
			return nil, fmt.Errorf("%w: %d requested, %d available", apperrors.ErrConflict, movement.Quantity, m.AvailableQuantity)
		}
		m.AvailableQuantity -= movement.Quantity
	case movement.Type == domain.MovementAdjustment:
		if movement.Quantity > m.TotalQuantity {
			return nil, fmt.Errorf("%w: cannot adjust away %d of %d total", apperrors.ErrValidation, movement.Quantity, m.TotalQuantity)
		}
		m.TotalQuantity -= movement.Quantity
		if m.AvailableQuantity > m.TotalQuantity {
			m.AvailableQuantity = m.TotalQuantity
		}
	default:
		return nil, fmt.Errorf("%w: unknown movement type %s", apperrors.ErrValidation, movement.Type)
	}

	movementQuery := `
		INSERT INTO inventory_movements (movement_id, item_id, type, quantity, room_id, employee_id, notes, performed_by, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, movementQuery,
		movement.MovementID,
		movement.ItemID,
		string(movement.Type),
		movement.Quantity,
		movement.RoomID,
		movement.EmployeeID,
		movement.Notes,
		movement.PerformedBy,
		movement.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movement: %w", err)
	}

	updateQuery := `
		UPDATE inventory_items
		SET total_quantity = $1, available_quantity = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $5;
	`
	_, err = tx.Exec(ctx, updateQuery,
		m.TotalQuantity,
		m.AvailableQuantity,
		movement.OccurredAt,
		movement.PerformedBy,
		movement.ItemID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item quantities: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.LastUpdatedAt = movement.OccurredAt
	m.LastUpdatedBy = movement.PerformedBy
	item := toDomainItem(m)
	return &item, nil
}
