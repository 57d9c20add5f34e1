package domain

import "github.com/shopspring/decimal"

// RoomType categorizes a room for pricing and capacity purposes.
type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomSuite  RoomType = "SUITE"
)

// RoomStatus is the operational state of a room.
type RoomStatus string

const (
	RoomFree        RoomStatus = "FREE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Room is a bookable hotel room.
type Room struct {
	RoomID        string          `json:"roomID"`
	Number        string          `json:"number"`
	Type          RoomType        `json:"type"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Capacity      int             `json:"capacity"`
	Status        RoomStatus      `json:"status"`
	Description   string          `json:"description"`
	HasAC         bool            `json:"hasAC"`
	HasWifi       bool            `json:"hasWifi"`
	HasTV         bool            `json:"hasTV"`
	HasMinibar    bool            `json:"hasMinibar"`
	AuditFields
}

// IsAvailable reports whether the room can currently be booked.
func (r Room) IsAvailable() bool {
	return r.Status == RoomFree
}
