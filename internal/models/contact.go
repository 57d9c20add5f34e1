package models

import "time"

// ContactMessage represents a row of the contact_messages table.
type ContactMessage struct {
	MessageID string     `db:"message_id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	ClientID  *string    `db:"client_id"`
	Subject   string     `db:"subject"`
	Body      string     `db:"body"`
	Urgency   string     `db:"urgency"`
	Status    string     `db:"status"`
	Reply     string     `db:"reply"`
	RepliedAt *time.Time `db:"replied_at"`
	HandledBy *string    `db:"handled_by"`
	AuditFields
}
