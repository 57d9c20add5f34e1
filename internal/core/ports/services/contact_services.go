package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// ContactReaderSvc defines read operations for contact messages
type ContactReaderSvc interface {
	// GetMessageByID retrieves a specific message by its ID.
	GetMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// ListMessages retrieves a paginated list of messages.
	ListMessages(ctx context.Context, params dto.ListContactsParams) (*dto.ListContactsResponse, error)
}

// ContactWriterSvc defines write operations for contact messages
type ContactWriterSvc interface {
	// SubmitMessage records an incoming message from the public contact
	// form and notifies administrators.
	SubmitMessage(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, error)

	// ReplyToMessage records a staff reply and marks the message answered.
	ReplyToMessage(ctx context.Context, messageID string, req dto.ReplyContactRequest, requestingUserID string) (*domain.ContactMessage, error)

	// UpdateMessageStatus transitions the handling state.
	UpdateMessageStatus(ctx context.Context, messageID string, req dto.UpdateContactStatusRequest, requestingUserID string) (*domain.ContactMessage, error)
}

// ContactSvcFacade combines all contact-related service interfaces
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}
