package models

import "time"

// InventoryCategory represents a row of the inventory_categories table.
type InventoryCategory struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// InventoryItem represents a row of the inventory_items table.
type InventoryItem struct {
	ItemID            string `db:"item_id"`
	Name              string `db:"name"`
	Reference         string `db:"reference"`
	CategoryID        string `db:"category_id"`
	Description       string `db:"description"`
	TotalQuantity     int    `db:"total_quantity"`
	AvailableQuantity int    `db:"available_quantity"`
	AlertThreshold    int    `db:"alert_threshold"`
	Condition         string `db:"condition"`
	Location          string `db:"location"`
	AuditFields
}

// InventoryMovement represents a row of the inventory_movements table.
type InventoryMovement struct {
	MovementID  string    `db:"movement_id"`
	ItemID      string    `db:"item_id"`
	Type        string    `db:"type"`
	Quantity    int       `db:"quantity"`
	RoomID      *string   `db:"room_id"`
	EmployeeID  *string   `db:"employee_id"`
	Notes       string    `db:"notes"`
	PerformedBy string    `db:"performed_by"`
	OccurredAt  time.Time `db:"occurred_at"`
}
