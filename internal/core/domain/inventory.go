package domain

import "time"

// InventoryCategory groups inventory items.
type InventoryCategory struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// ItemCondition describes the physical state of an item.
type ItemCondition string

const (
	ConditionNew        ItemCondition = "NEW"
	ConditionGood       ItemCondition = "GOOD"
	ConditionWorn       ItemCondition = "WORN"
	ConditionOutOfOrder ItemCondition = "OUT_OF_ORDER"
)

// StockState is derived from available quantity vs the alert threshold.
type StockState string

const (
	StockNormal   StockState = "NORMAL"
	StockAlert    StockState = "ALERT"
	StockDepleted StockState = "DEPLETED"
)

// InventoryItem tracks stock of a hotel supply or piece of equipment.
// Purchase price is not modeled on the item; the charge recorder creates
// a zero-amount placeholder charge at intake because of that gap.
type InventoryItem struct {
	ItemID            string        `json:"itemID"`
	Name              string        `json:"name"`
	Reference         string        `json:"reference"`
	CategoryID        string        `json:"categoryID"`
	Description       string        `json:"description"`
	TotalQuantity     int           `json:"totalQuantity"`
	AvailableQuantity int           `json:"availableQuantity"`
	AlertThreshold    int           `json:"alertThreshold"`
	Condition         ItemCondition `json:"condition"`
	Location          string        `json:"location"`
	AuditFields
}

// StockState classifies the current stock level.
func (i InventoryItem) StockState() StockState {
	switch {
	case i.AvailableQuantity == 0:
		return StockDepleted
	case i.AvailableQuantity <= i.AlertThreshold:
		return StockAlert
	default:
		return StockNormal
	}
}

// MovementType is the kind of inventory movement.
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAssignment MovementType = "ASSIGNMENT"
	MovementReturn     MovementType = "RETURN"
	MovementLoss       MovementType = "LOSS"
	MovementBreakage   MovementType = "BREAKAGE"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// AddsStock reports whether the movement increases total stock.
func (t MovementType) AddsStock() bool {
	return t == MovementIn || t == MovementReturn
}

// RemovesAvailability reports whether the movement consumes available
// stock without changing the total.
func (t MovementType) RemovesAvailability() bool {
	return t == MovementOut || t == MovementLoss || t == MovementBreakage || t == MovementAssignment
}

// InventoryMovement is a stock mutation applied to an item.
type InventoryMovement struct {
	MovementID  string       `json:"movementID"`
	ItemID      string       `json:"itemID"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	RoomID      *string      `json:"roomID,omitempty"`
	EmployeeID  *string      `json:"employeeID,omitempty"`
	Notes       string       `json:"notes"`
	PerformedBy string       `json:"performedBy"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
