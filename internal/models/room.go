package models

import "github.com/shopspring/decimal"

// Room represents a row of the rooms table.
type Room struct {
	RoomID        string          `db:"room_id"`
	Number        string          `db:"number"`
	Type          string          `db:"type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Capacity      int             `db:"capacity"`
	Status        string          `db:"status"`
	Description   string          `db:"description"`
	HasAC         bool            `db:"has_ac"`
	HasWifi       bool            `db:"has_wifi"`
	HasTV         bool            `db:"has_tv"`
	HasMinibar    bool            `db:"has_minibar"`
	AuditFields
}
