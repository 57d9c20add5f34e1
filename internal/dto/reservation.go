package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReservationRequest defines the data needed to book a room.
// Status is optional so staff can create directly confirmed reservations;
// it defaults to PENDING.
type CreateReservationRequest struct {
	ClientID  string                    `json:"clientID" binding:"required"`
	RoomID    string                    `json:"roomID" binding:"required"`
	CheckIn   time.Time                 `json:"checkIn" binding:"required"`
	CheckOut  time.Time                 `json:"checkOut" binding:"required"`
	Occupants int                       `json:"occupants" binding:"required,gt=0"`
	Status    *domain.ReservationStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED"`
	Notes     string                    `json:"notes"`
}

// UpdateReservationStatusRequest transitions a reservation's lifecycle.
type UpdateReservationStatusRequest struct {
	Status domain.ReservationStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}

// ListReservationsParams defines query parameters for listing reservations.
type ListReservationsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID string                   `json:"reservationID"`
	ClientID      string                   `json:"clientID"`
	RoomID        string                   `json:"roomID"`
	CheckIn       time.Time                `json:"checkIn"`
	CheckOut      time.Time                `json:"checkOut"`
	Nights        int                      `json:"nights"`
	TotalPrice    decimal.Decimal          `json:"totalPrice"`
	Status        domain.ReservationStatus `json:"status"`
	Occupants     int                      `json:"occupants"`
	Notes         string                   `json:"notes"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListReservationsResponse wraps a page of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToReservationResponse converts a domain.Reservation to its DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		ClientID:      r.ClientID,
		RoomID:        r.RoomID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Nights:        r.Nights,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		Occupants:     r.Occupants,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListReservationsResponse converts a page of reservations to the list DTO.
func ToListReservationsResponse(reservations []domain.Reservation, nextToken *string) ListReservationsResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = ToReservationResponse(&r)
	}
	return ListReservationsResponse{Reservations: out, NextToken: nextToken}
}
