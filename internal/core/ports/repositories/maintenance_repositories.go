package repositories

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// MaintenanceReader defines read operations for maintenance ticket data
type MaintenanceReader interface {
	// FindTicketByID retrieves a specific ticket by its unique identifier.
	FindTicketByID(ctx context.Context, ticketID string) (*domain.MaintenanceTicket, error)

	// ListTickets retrieves a paginated list of tickets using token
	// pagination, optionally filtered by status.
	ListTickets(ctx context.Context, status *domain.MaintenanceStatus, limit int, nextToken *string) ([]domain.MaintenanceTicket, *string, error)
}

// MaintenanceWriter defines write operations for maintenance ticket data
type MaintenanceWriter interface {
	// SaveTicket persists a new ticket.
	SaveTicket(ctx context.Context, ticket domain.MaintenanceTicket) error

	// UpdateTicket updates an existing ticket.
	UpdateTicket(ctx context.Context, ticket domain.MaintenanceTicket) error
}

// MaintenanceRepositoryFacade combines all maintenance-related repository interfaces
type MaintenanceRepositoryFacade interface {
	MaintenanceReader
	MaintenanceWriter
}
