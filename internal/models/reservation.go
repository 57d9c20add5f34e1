package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation represents a row of the reservations table.
type Reservation struct {
	ReservationID string          `db:"reservation_id"`
	ClientID      string          `db:"client_id"`
	RoomID        string          `db:"room_id"`
	CheckIn       time.Time       `db:"check_in"`
	CheckOut      time.Time       `db:"check_out"`
	Nights        int             `db:"nights"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	Status        string          `db:"status"`
	Occupants     int             `db:"occupants"`
	Notes         string          `db:"notes"`
	AuditFields
}
