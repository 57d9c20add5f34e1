package repositories

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation data
type ReservationReader interface {
	// FindReservationByID retrieves a specific reservation by its unique identifier.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations retrieves a paginated list of reservations using token pagination.
	ListReservations(ctx context.Context, limit int, nextToken *string) ([]domain.Reservation, *string, error)

	// ListReservationsByClient retrieves all reservations for one client.
	ListReservationsByClient(ctx context.Context, clientID string) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservation data.
// The confirmed-save and cancel variants are transactional units: the
// reservation row and its derived billing writes commit or roll back
// together.
type ReservationWriter interface {
	// SaveReservation persists a new reservation with no billing side effects.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation updates an existing reservation with no billing side effects.
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error

	// SaveReservationConfirmed persists the reservation (insert when created
	// is true, update otherwise) together with its derived invoice and the
	// admin notification, all inside one database transaction.
	SaveReservationConfirmed(ctx context.Context, reservation domain.Reservation, created bool, invoice domain.Invoice, notification domain.Notification) error

	// CancelReservation sets the reservation status to CANCELLED and, in the
	// same transaction, cancels its invoice unless that invoice is PAID.
	CancelReservation(ctx context.Context, reservation domain.Reservation) error
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
