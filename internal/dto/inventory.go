package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateItemRequest defines the data needed to register an inventory item.
type CreateItemRequest struct {
	Name           string               `json:"name" binding:"required"`
	Reference      string               `json:"reference" binding:"required"`
	CategoryID     string               `json:"categoryID" binding:"required"`
	Description    string               `json:"description"`
	TotalQuantity  int                  `json:"totalQuantity" binding:"required,gte=0"`
	AlertThreshold int                  `json:"alertThreshold" binding:"gte=0"`
	Condition      domain.ItemCondition `json:"condition" binding:"omitempty,oneof=NEW GOOD WORN OUT_OF_ORDER"`
	Location       string               `json:"location"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// Quantities are mutated through movements, not through this request.
type UpdateItemRequest struct {
	Name           *string               `json:"name"`
	Description    *string               `json:"description"`
	AlertThreshold *int                  `json:"alertThreshold" binding:"omitempty,gte=0"`
	Condition      *domain.ItemCondition `json:"condition" binding:"omitempty,oneof=NEW GOOD WORN OUT_OF_ORDER"`
	Location       *string               `json:"location"`
}

// RecordMovementRequest applies a stock mutation to an item.
type RecordMovementRequest struct {
	Type       domain.MovementType `json:"type" binding:"required,oneof=IN OUT ASSIGNMENT RETURN LOSS BREAKAGE ADJUSTMENT"`
	Quantity   int                 `json:"quantity" binding:"required"`
	RoomID     *string             `json:"roomID"`
	EmployeeID *string             `json:"employeeID"`
	Notes      string              `json:"notes"`
}

// ItemResponse defines the data returned for an inventory item.
type ItemResponse struct {
	ItemID            string               `json:"itemID"`
	Name              string               `json:"name"`
	Reference         string               `json:"reference"`
	CategoryID        string               `json:"categoryID"`
	Description       string               `json:"description"`
	TotalQuantity     int                  `json:"totalQuantity"`
	AvailableQuantity int                  `json:"availableQuantity"`
	AlertThreshold    int                  `json:"alertThreshold"`
	Condition         domain.ItemCondition `json:"condition"`
	Location          string               `json:"location"`
	StockState        domain.StockState    `json:"stockState"`
}

// MovementResponse defines the data returned for an inventory movement.
type MovementResponse struct {
	MovementID  string              `json:"movementID"`
	ItemID      string              `json:"itemID"`
	Type        domain.MovementType `json:"type"`
	Quantity    int                 `json:"quantity"`
	RoomID      *string             `json:"roomID,omitempty"`
	EmployeeID  *string             `json:"employeeID,omitempty"`
	Notes       string              `json:"notes"`
	PerformedBy string              `json:"performedBy"`
	OccurredAt  time.Time           `json:"occurredAt"`
}

// ToCategoryResponse converts a domain.InventoryCategory to its DTO.
func ToCategoryResponse(c *domain.InventoryCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToItemResponse converts a domain.InventoryItem to ItemResponse DTO.
func ToItemResponse(i *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:            i.ItemID,
		Name:              i.Name,
		Reference:         i.Reference,
		CategoryID:        i.CategoryID,
		Description:       i.Description,
		TotalQuantity:     i.TotalQuantity,
		AvailableQuantity: i.AvailableQuantity,
		AlertThreshold:    i.AlertThreshold,
		Condition:         i.Condition,
		Location:          i.Location,
		StockState:        i.StockState(),
	}
}

// ToListItemsResponse converts a slice of items to response DTOs.
func ToListItemsResponse(items []domain.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ToItemResponse(&item)
	}
	return out
}

// ToMovementResponse converts a domain.InventoryMovement to its DTO.
func ToMovementResponse(m *domain.InventoryMovement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		ItemID:      m.ItemID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		RoomID:      m.RoomID,
		EmployeeID:  m.EmployeeID,
		Notes:       m.Notes,
		PerformedBy: m.PerformedBy,
		OccurredAt:  m.OccurredAt,
	}
}

// ToListMovementsResponse converts a slice of movements to response DTOs.
func ToListMovementsResponse(movements []domain.InventoryMovement) []MovementResponse {
	out := make([]MovementResponse, len(movements))
	for i, m := range movements {
		out[i] = ToMovementResponse(&m)
	}
	return out
}
