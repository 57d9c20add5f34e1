package models

import "time"

// Notification represents a row of the notifications table. Recipients
// live in the notification_recipients join table.
type Notification struct {
	NotificationID  string     `db:"notification_id"`
	Type            string     `db:"type"`
	Title           string     `db:"title"`
	Message         string     `db:"message"`
	Priority        string     `db:"priority"`
	ReservationID   *string    `db:"reservation_id"`
	ContactID       *string    `db:"contact_id"`
	MaintenanceID   *string    `db:"maintenance_id"`
	InventoryItemID *string    `db:"inventory_item_id"`
	Read            bool       `db:"read"`
	Processed       bool       `db:"processed"`
	ReadAt          *time.Time `db:"read_at"`
	ProcessedAt     *time.Time `db:"processed_at"`
	CreatedAt       time.Time  `db:"created_at"`
}
