package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// RoomReaderSvc defines read operations for room data
type RoomReaderSvc interface {
	// GetRoomByID retrieves a specific room by its ID.
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves rooms, optionally filtered by status.
	ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error)
}

// RoomWriterSvc defines write operations for room data
type RoomWriterSvc interface {
	// CreateRoom persists a new room.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// UpdateRoom updates room details.
	UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error)

	// UpdateRoomStatus sets the operational status of a room.
	UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest, requestingUserID string) (*domain.Room, error)
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
}
