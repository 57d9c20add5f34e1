package domain

import "time"

// ContactUrgency is the caller-declared urgency of a contact message.
type ContactUrgency string

const (
	UrgencyNormal   ContactUrgency = "NORMAL"
	UrgencyUrgent   ContactUrgency = "URGENT"
	UrgencyCritical ContactUrgency = "CRITICAL"
)

// ContactStatus tracks the handling of a contact message.
type ContactStatus string

const (
	ContactNew        ContactStatus = "NEW"
	ContactInProgress ContactStatus = "IN_PROGRESS"
	ContactAnswered   ContactStatus = "ANSWERED"
	ContactResolved   ContactStatus = "RESOLVED"
	ContactArchived   ContactStatus = "ARCHIVED"
)

// ContactMessage is an incoming message from a guest or visitor.
type ContactMessage struct {
	MessageID string         `json:"messageID"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	ClientID  *string        `json:"clientID,omitempty"`
	Subject   string         `json:"subject"`
	Body      string         `json:"body"`
	Urgency   ContactUrgency `json:"urgency"`
	Status    ContactStatus  `json:"status"`
	Reply     string         `json:"reply"`
	RepliedAt *time.Time     `json:"repliedAt,omitempty"`
	HandledBy *string        `json:"handledBy,omitempty"`
	AuditFields
}
