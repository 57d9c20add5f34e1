package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// CreateContactRequest defines the data for an incoming contact message.
// This endpoint is public, so no authenticated user is required.
type CreateContactRequest struct {
	Name    string                `json:"name" binding:"required"`
	Email   string                `json:"email" binding:"required,email"`
	Phone   string                `json:"phone"`
	Subject string                `json:"subject" binding:"required"`
	Body    string                `json:"body" binding:"required"`
	Urgency domain.ContactUrgency `json:"urgency" binding:"omitempty,oneof=NORMAL URGENT CRITICAL"`
}

// ReplyContactRequest records a staff reply on a message.
type ReplyContactRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// UpdateContactStatusRequest transitions the handling state.
type UpdateContactStatusRequest struct {
	Status domain.ContactStatus `json:"status" binding:"required,oneof=NEW IN_PROGRESS ANSWERED RESOLVED ARCHIVED"`
}

// ListContactsParams defines query parameters for listing messages.
type ListContactsParams struct {
	Status    *domain.ContactStatus `form:"status" binding:"omitempty,oneof=NEW IN_PROGRESS ANSWERED RESOLVED ARCHIVED"`
	Limit     int                   `form:"limit,default=20"`
	NextToken *string               `form:"nextToken"`
}

// ContactResponse defines the data returned for a contact message.
type ContactResponse struct {
	MessageID string                `json:"messageID"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Phone     string                `json:"phone"`
	ClientID  *string               `json:"clientID,omitempty"`
	Subject   string                `json:"subject"`
	Body      string                `json:"body"`
	Urgency   domain.ContactUrgency `json:"urgency"`
	Status    domain.ContactStatus  `json:"status"`
	Reply     string                `json:"reply,omitempty"`
	RepliedAt *time.Time            `json:"repliedAt,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ListContactsResponse wraps a page of contact messages.
type ListContactsResponse struct {
	Messages  []ContactResponse `json:"messages"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToContactResponse converts a domain.ContactMessage to its DTO.
func ToContactResponse(m *domain.ContactMessage) ContactResponse {
	return ContactResponse{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		ClientID:  m.ClientID,
		Subject:   m.Subject,
		Body:      m.Body,
		Urgency:   m.Urgency,
		Status:    m.Status,
		Reply:     m.Reply,
		RepliedAt: m.RepliedAt,
		CreatedAt: m.CreatedAt,
	}
}

// ToListContactsResponse converts a page of messages to the list DTO.
func ToListContactsResponse(messages []domain.ContactMessage, nextToken *string) ListContactsResponse {
	out := make([]ContactResponse, len(messages))
	for i, m := range messages {
		out[i] = ToContactResponse(&m)
	}
	return ListContactsResponse{Messages: out, NextToken: nextToken}
}
