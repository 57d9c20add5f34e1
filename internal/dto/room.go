package dto

import (
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest defines the data needed to create a room.
type CreateRoomRequest struct {
	Number        string          `json:"number" binding:"required"`
	Type          domain.RoomType `json:"type" binding:"required,oneof=SINGLE DOUBLE SUITE"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
	Capacity      int             `json:"capacity" binding:"required,gt=0"`
	Description   string          `json:"description"`
	HasAC         bool            `json:"hasAC"`
	HasWifi       bool            `json:"hasWifi"`
	HasTV         bool            `json:"hasTV"`
	HasMinibar    bool            `json:"hasMinibar"`
}

// UpdateRoomRequest defines the data allowed for updating a room.
type UpdateRoomRequest struct {
	PricePerNight *decimal.Decimal `json:"pricePerNight"`
	Capacity      *int             `json:"capacity" binding:"omitempty,gt=0"`
	Description   *string          `json:"description"`
	HasAC         *bool            `json:"hasAC"`
	HasWifi       *bool            `json:"hasWifi"`
	HasTV         *bool            `json:"hasTV"`
	HasMinibar    *bool            `json:"hasMinibar"`
}

// UpdateRoomStatusRequest changes only the operational status.
type UpdateRoomStatusRequest struct {
	Status domain.RoomStatus `json:"status" binding:"required,oneof=FREE OCCUPIED MAINTENANCE"`
}

// ListRoomsParams defines query parameters for listing rooms.
type ListRoomsParams struct {
	Status *domain.RoomStatus `form:"status" binding:"omitempty,oneof=FREE OCCUPIED MAINTENANCE"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID        string            `json:"roomID"`
	Number        string            `json:"number"`
	Type          domain.RoomType   `json:"type"`
	PricePerNight decimal.Decimal   `json:"pricePerNight"`
	Capacity      int               `json:"capacity"`
	Status        domain.RoomStatus `json:"status"`
	Description   string            `json:"description"`
	HasAC         bool              `json:"hasAC"`
	HasWifi       bool              `json:"hasWifi"`
	HasTV         bool              `json:"hasTV"`
	HasMinibar    bool              `json:"hasMinibar"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:        r.RoomID,
		Number:        r.Number,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Status:        r.Status,
		Description:   r.Description,
		HasAC:         r.HasAC,
		HasWifi:       r.HasWifi,
		HasTV:         r.HasTV,
		HasMinibar:    r.HasMinibar,
	}
}

// ToListRoomsResponse converts a slice of domain.Room to response DTOs.
func ToListRoomsResponse(rooms []domain.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = ToRoomResponse(&r)
	}
	return out
}
