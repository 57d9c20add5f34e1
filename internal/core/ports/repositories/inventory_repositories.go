package repositories

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// FindItemByID retrieves a specific inventory item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// FindItemByReference retrieves an item by its unique reference code.
	FindItemByReference(ctx context.Context, reference string) (*domain.InventoryItem, error)

	// ListItems retrieves a paginated list of items using token pagination.
	ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.InventoryItem, *string, error)

	// ListCategories retrieves all inventory categories.
	ListCategories(ctx context.Context) ([]domain.InventoryCategory, error)

	// ListMovementsByItem retrieves the movement history of one item.
	ListMovementsByItem(ctx context.Context, itemID string) ([]domain.InventoryMovement, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.InventoryCategory) error

	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItem updates an existing item.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// ApplyMovement inserts the movement and adjusts the item quantities in
	// one transaction, returning the item as updated.
	ApplyMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryItem, error)
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
