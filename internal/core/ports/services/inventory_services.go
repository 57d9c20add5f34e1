package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// InventoryReaderSvc defines read operations for inventory data
type InventoryReaderSvc interface {
	// GetItemByID retrieves a specific item by its ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves all inventory items.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ListCategories retrieves all inventory categories.
	ListCategories(ctx context.Context) ([]domain.InventoryCategory, error)

	// ListMovementsByItem retrieves the movement history of an item.
	ListMovementsByItem(ctx context.Context, itemID string) ([]domain.InventoryMovement, error)
}

// InventoryWriterSvc defines write operations for inventory data
type InventoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.InventoryCategory, error)

	// CreateItem registers a new item. Intake also books a placeholder
	// INVENTORY charge; charge failures never fail the registration.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error)

	// UpdateItem updates item details other than quantities.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.InventoryItem, error)

	// RecordMovement applies a stock mutation. Falling to or below the
	// alert threshold raises a stock alert, deduplicated per item per day.
	RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, requestingUserID string) (*domain.InventoryMovement, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
