package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationInProgress ReservationStatus = "IN_PROGRESS"
	ReservationCompleted  ReservationStatus = "COMPLETED"
	ReservationCancelled  ReservationStatus = "CANCELLED"
)

// Reservation links a client to a room for a date range. Nights and
// TotalPrice are derived at creation time (nights x nightly rate) and
// stored, never recomputed from mutable room pricing afterwards.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	ClientID      string            `json:"clientID"`
	RoomID        string            `json:"roomID"`
	CheckIn       time.Time         `json:"checkIn"`
	CheckOut      time.Time         `json:"checkOut"`
	Nights        int               `json:"nights"`
	TotalPrice    decimal.Decimal   `json:"totalPrice"`
	Status        ReservationStatus `json:"status"`
	Occupants     int               `json:"occupants"`
	Notes         string            `json:"notes"`
	AuditFields
}

// IsActive reports whether the reservation currently blocks the room.
func (r Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationInProgress
}

// CanBeCancelled reports whether a transition to CANCELLED is allowed.
func (r Reservation) CanBeCancelled() bool {
	return r.Status != ReservationCompleted && r.Status != ReservationCancelled
}
