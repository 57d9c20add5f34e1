package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// ReservationReaderSvc defines read operations for reservation data
type ReservationReaderSvc interface {
	// GetReservationByID retrieves a specific reservation by its ID.
	GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations retrieves a paginated list of reservations.
	ListReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error)

	// ListReservationsByClient retrieves the reservation history of a client.
	ListReservationsByClient(ctx context.Context, clientID string) ([]domain.Reservation, error)
}

// ReservationWriterSvc defines write operations for reservation data.
// Creating or confirming a reservation issues its invoice and notifies
// administrators inside the same unit of work.
type ReservationWriterSvc interface {
	// CreateReservation books a room for a client. When the requested
	// status is CONFIRMED the invoice is issued immediately.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error)

	// UpdateReservationStatus transitions the reservation lifecycle.
	// PENDING to CONFIRMED issues the invoice; a transition to CANCELLED
	// also cancels the linked invoice unless it was already paid.
	UpdateReservationStatus(ctx context.Context, reservationID string, req dto.UpdateReservationStatusRequest, requestingUserID string) (*domain.Reservation, error)
}

// ReservationSvcFacade combines all reservation-related service interfaces
type ReservationSvcFacade interface {
	ReservationReaderSvc
	ReservationWriterSvc
}
