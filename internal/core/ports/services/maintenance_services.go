package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// MaintenanceReaderSvc defines read operations for maintenance tickets
type MaintenanceReaderSvc interface {
	// GetTicketByID retrieves a specific ticket by its ID.
	GetTicketByID(ctx context.Context, ticketID string) (*domain.MaintenanceTicket, error)

	// ListTickets retrieves a paginated list of tickets.
	ListTickets(ctx context.Context, params dto.ListTicketsParams) (*dto.ListTicketsResponse, error)
}

// MaintenanceWriterSvc defines write operations for maintenance tickets
type MaintenanceWriterSvc interface {
	// CreateTicket opens a new ticket. High and critical priority tickets
	// notify administrators.
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest, creatorUserID string) (*domain.MaintenanceTicket, error)

	// UpdateTicket updates ticket details and non-terminal status moves.
	UpdateTicket(ctx context.Context, ticketID string, req dto.UpdateTicketRequest, requestingUserID string) (*domain.MaintenanceTicket, error)

	// CompleteTicket closes a ticket. A known actual cost is booked as a
	// MAINTENANCE charge; charge failures never fail the completion.
	CompleteTicket(ctx context.Context, ticketID string, req dto.CompleteTicketRequest, requestingUserID string) (*domain.MaintenanceTicket, error)
}

// MaintenanceSvcFacade combines all maintenance-related service interfaces
type MaintenanceSvcFacade interface {
	MaintenanceReaderSvc
	MaintenanceWriterSvc
}
