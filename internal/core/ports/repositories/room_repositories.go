package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its unique identifier.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// FindRoomByNumber retrieves a room by its door number.
	FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error)

	// ListRooms retrieves all rooms, optionally filtered by status.
	ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room. A duplicate room number surfaces as
	// apperrors.ErrDuplicate.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// UpdateRoomStatus sets only the operational status of a room.
	UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus, updatedBy string, now time.Time) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
