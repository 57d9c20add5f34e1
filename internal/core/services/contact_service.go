package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// contactService handles the public contact form and the staff side of
// message handling. Incoming messages notify administrators; urgent ones
// are flagged high priority.
type contactService struct {
	contactRepo     portsrepo.ContactRepositoryFacade
	notificationSvc portssvc.NotificationDispatcherSvc
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, notificationSvc portssvc.NotificationDispatcherSvc) portssvc.ContactSvcFacade {
	return &contactService{
		contactRepo:     contactRepo,
		notificationSvc: notificationSvc,
	}
}

// Ensure contactService implements the facade interface
var _ portssvc.ContactSvcFacade = (*contactService)(nil)

// GetMessageByID retrieves a specific message by its ID.
func (s *contactService) GetMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	return s.contactRepo.FindMessageByID(ctx, messageID)
}

// ListMessages retrieves a paginated list of messages.
func (s *contactService) ListMessages(ctx context.Context, params dto.ListContactsParams) (*dto.ListContactsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	messages, nextToken, err := s.contactRepo.ListMessages(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if params.Status != nil {
		filtered := messages[:0]
		for _, m := range messages {
			if m.Status == *params.Status {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}
	resp := dto.ToListContactsResponse(messages, nextToken)
	return &resp, nil
}

// SubmitMessage records an incoming message from the public contact form
// and notifies administrators, best-effort.
func (s *contactService) SubmitMessage(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	urgency := req.Urgency
	if urgency == "" {
		urgency = domain.UrgencyNormal
	}

	now := time.Now().UTC()
	message := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Body:      req.Body,
		Urgency:   urgency,
		Status:    domain.ContactNew,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.contactRepo.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	priority := domain.PriorityMedium
	if urgency == domain.UrgencyUrgent {
		priority = domain.PriorityHigh
	} else if urgency == domain.UrgencyCritical {
		priority = domain.PriorityCritical
	}

	messageID := message.MessageID
	notifyErr := s.notificationSvc.NotifyAdmins(ctx, domain.Notification{
		Type:      domain.NotifyClientMessage,
		Title:     fmt.Sprintf("New message from %s", message.Name),
		Message:   message.Subject,
		Priority:  priority,
		ContactID: &messageID,
		CreatedAt: now,
	})
	if notifyErr != nil {
		logger.Warn("Failed to notify admins of contact message", slog.String("message_id", message.MessageID), slog.String("error", notifyErr.Error()))
	}

	return &message, nil
}

// ReplyToMessage records a staff reply and marks the message answered.
func (s *contactService) ReplyToMessage(ctx context.Context, messageID string, req dto.ReplyContactRequest, requestingUserID string) (*domain.ContactMessage, error) {
	message, err := s.contactRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	message.Reply = req.Reply
	message.RepliedAt = &now
	message.HandledBy = &requestingUserID
	message.Status = domain.ContactAnswered
	message.LastUpdatedAt = now
	message.LastUpdatedBy = requestingUserID

	if err := s.contactRepo.UpdateMessage(ctx, *message); err != nil {
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}
	return message, nil
}

// UpdateMessageStatus transitions the handling state.
func (s *contactService) UpdateMessageStatus(ctx context.Context, messageID string, req dto.UpdateContactStatusRequest, requestingUserID string) (*domain.ContactMessage, error) {
	message, err := s.contactRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	message.Status = req.Status
	message.LastUpdatedAt = time.Now().UTC()
	message.LastUpdatedBy = requestingUserID

	if err := s.contactRepo.UpdateMessage(ctx, *message); err != nil {
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}
	return message, nil
}
