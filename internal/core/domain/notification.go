package domain

import "time"

// NotificationType identifies the triggering event family.
type NotificationType string

const (
	NotifyNewReservation    NotificationType = "NEW_RESERVATION"
	NotifyClientMessage     NotificationType = "CLIENT_MESSAGE"
	NotifyUrgentMaintenance NotificationType = "URGENT_MAINTENANCE"
	NotifyStockAlert        NotificationType = "STOCK_ALERT"
	NotifyUnpaidInvoice     NotificationType = "UNPAID_INVOICE"
	NotifySystem            NotificationType = "SYSTEM"
)

// Notification is an informational record fanned out to administrator
// accounts on significant events. At most one of the entity references is
// set, matching the triggering event.
type Notification struct {
	NotificationID  string           `json:"notificationID"`
	Type            NotificationType `json:"type"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Priority        Priority         `json:"priority"`
	ReservationID   *string          `json:"reservationID,omitempty"`
	ContactID       *string          `json:"contactID,omitempty"`
	MaintenanceID   *string          `json:"maintenanceID,omitempty"`
	InventoryItemID *string          `json:"inventoryItemID,omitempty"`
	Read            bool             `json:"read"`
	Processed       bool             `json:"processed"`
	ReadAt          *time.Time       `json:"readAt,omitempty"`
	ProcessedAt     *time.Time       `json:"processedAt,omitempty"`
	Recipients      []string         `json:"recipients"` // UserIDs
	CreatedAt       time.Time        `json:"createdAt"`
}
