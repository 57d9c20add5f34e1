package repositories

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// ContactReader defines read operations for contact message data
type ContactReader interface {
	// FindMessageByID retrieves a specific contact message by its unique identifier.
	FindMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// ListMessages retrieves a paginated list of messages using token pagination.
	ListMessages(ctx context.Context, limit int, nextToken *string) ([]domain.ContactMessage, *string, error)
}

// ContactWriter defines write operations for contact message data
type ContactWriter interface {
	// SaveMessage persists a new contact message.
	SaveMessage(ctx context.Context, message domain.ContactMessage) error

	// UpdateMessage updates an existing contact message.
	UpdateMessage(ctx context.Context, message domain.ContactMessage) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
