package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

var ErrTicketClosed = errors.New("ticket is already completed or cancelled")

// maintenanceService manages the ticket lifecycle. Completing a ticket
// with a known actual cost feeds the charge recorder; high priority
// tickets notify administrators on creation.
type maintenanceService struct {
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
	chargeSvc       portssvc.ChargeRecorderSvc
	notificationSvc portssvc.NotificationDispatcherSvc
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(maintenanceRepo portsrepo.MaintenanceRepositoryFacade, chargeSvc portssvc.ChargeRecorderSvc, notificationSvc portssvc.NotificationDispatcherSvc) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		chargeSvc:       chargeSvc,
		notificationSvc: notificationSvc,
	}
}

// Ensure maintenanceService implements the facade interface
var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

// GetTicketByID retrieves a specific ticket by its ID.
func (s *maintenanceService) GetTicketByID(ctx context.Context, ticketID string) (*domain.MaintenanceTicket, error) {
	return s.maintenanceRepo.FindTicketByID(ctx, ticketID)
}

// ListTickets retrieves a paginated list of tickets.
func (s *maintenanceService) ListTickets(ctx context.Context, params dto.ListTicketsParams) (*dto.ListTicketsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	tickets, nextToken, err := s.maintenanceRepo.ListTickets(ctx, params.Status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	resp := dto.ToListTicketsResponse(tickets, nextToken)
	return &resp, nil
}

// CreateTicket opens a new ticket. High and critical priority tickets
// raise an URGENT_MAINTENANCE notification, best-effort.
func (s *maintenanceService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest, creatorUserID string) (*domain.MaintenanceTicket, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	ticket := domain.MaintenanceTicket{
		TicketID:      uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		Priority:      req.Priority,
		RoomID:        req.RoomID,
		Equipment:     req.Equipment,
		ScheduledAt:   req.ScheduledAt,
		AssignedTo:    req.AssignedTo,
		Status:        domain.MaintenancePending,
		EstimatedCost: req.EstimatedCost,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.maintenanceRepo.SaveTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	if ticket.Priority == domain.PriorityHigh || ticket.Priority == domain.PriorityCritical {
		ticketID := ticket.TicketID
		notifyErr := s.notificationSvc.NotifyAdmins(ctx, domain.Notification{
			Type:          domain.NotifyUrgentMaintenance,
			Title:         fmt.Sprintf("Urgent maintenance: %s", ticket.Title),
			Message:       ticket.Description,
			Priority:      ticket.Priority,
			MaintenanceID: &ticketID,
			CreatedAt:     now,
		})
		if notifyErr != nil {
			logger.Warn("Failed to notify admins of urgent ticket", slog.String("ticket_id", ticket.TicketID), slog.String("error", notifyErr.Error()))
		}
	}

	return &ticket, nil
}

// UpdateTicket updates ticket details and non-terminal status moves.
func (s *maintenanceService) UpdateTicket(ctx context.Context, ticketID string, req dto.UpdateTicketRequest, requestingUserID string) (*domain.MaintenanceTicket, error) {
	ticket, err := s.maintenanceRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.MaintenanceCompleted || ticket.Status == domain.MaintenanceCancelled {
		return nil, fmt.Errorf("%w: ticket %s", ErrTicketClosed, ticketID)
	}

	now := time.Now().UTC()
	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.ScheduledAt != nil {
		ticket.ScheduledAt = req.ScheduledAt
	}
	if req.AssignedTo != nil {
		ticket.AssignedTo = req.AssignedTo
	}
	if req.EstimatedCost != nil {
		ticket.EstimatedCost = req.EstimatedCost
	}
	if req.Notes != nil {
		ticket.Notes = *req.Notes
	}
	if req.Status != nil {
		if *req.Status == domain.MaintenanceInProgress && ticket.StartedAt == nil {
			ticket.StartedAt = &now
		}
		ticket.Status = *req.Status
	}
	ticket.LastUpdatedAt = now
	ticket.LastUpdatedBy = requestingUserID

	if err := s.maintenanceRepo.UpdateTicket(ctx, *ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return ticket, nil
}

// CompleteTicket closes a ticket. A known actual cost is booked as a
// MAINTENANCE charge due on the 15th of the completion month; the charge
// write is best-effort and never fails the completion.
func (s *maintenanceService) CompleteTicket(ctx context.Context, ticketID string, req dto.CompleteTicketRequest, requestingUserID string) (*domain.MaintenanceTicket, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ticket, err := s.maintenanceRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.MaintenanceCompleted || ticket.Status == domain.MaintenanceCancelled {
		return nil, fmt.Errorf("%w: ticket %s", ErrTicketClosed, ticketID)
	}
	if req.ActualCost != nil && req.ActualCost.IsNegative() {
		return nil, fmt.Errorf("%w: actual cost must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	ticket.Status = domain.MaintenanceCompleted
	ticket.CompletedAt = &now
	ticket.ActualCost = req.ActualCost
	if req.Notes != "" {
		ticket.Notes = req.Notes
	}
	ticket.LastUpdatedAt = now
	ticket.LastUpdatedBy = requestingUserID

	if err := s.maintenanceRepo.UpdateTicket(ctx, *ticket); err != nil {
		return nil, fmt.Errorf("failed to complete ticket: %w", err)
	}

	if req.ActualCost != nil && req.ActualCost.IsPositive() {
		if _, chargeErr := s.chargeSvc.RecordMaintenanceCharge(ctx, *ticket, *req.ActualCost, requestingUserID); chargeErr != nil {
			logger.Error("Failed to record maintenance charge", slog.String("ticket_id", ticketID), slog.String("error", chargeErr.Error()))
		}
	}

	return ticket, nil
}
