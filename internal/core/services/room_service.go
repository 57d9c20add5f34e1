package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/utils/money"
)

// roomService manages the room catalog.
type roomService struct {
	roomRepo portsrepo.RoomRepositoryFacade
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{roomRepo: roomRepo}
}

// Ensure roomService implements the facade interface
var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// GetRoomByID retrieves a specific room by its ID.
func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.roomRepo.FindRoomByID(ctx, roomID)
}

// ListRooms retrieves rooms, optionally filtered by status.
func (s *roomService) ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error) {
	return s.roomRepo.ListRooms(ctx, params.Status)
}

// CreateRoom persists a new room.
func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	if req.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: nightly rate must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	room := domain.Room{
		RoomID:        uuid.NewString(),
		Number:        req.Number,
		Type:          req.Type,
		PricePerNight: money.Round2(req.PricePerNight),
		Capacity:      req.Capacity,
		Status:        domain.RoomFree,
		Description:   req.Description,
		HasAC:         req.HasAC,
		HasWifi:       req.HasWifi,
		HasTV:         req.HasTV,
		HasMinibar:    req.HasMinibar,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}
	return &room, nil
}

// UpdateRoom updates room details.
func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.PricePerNight != nil {
		if req.PricePerNight.IsNegative() {
			return nil, fmt.Errorf("%w: nightly rate must not be negative", apperrors.ErrValidation)
		}
		room.PricePerNight = money.Round2(*req.PricePerNight)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.HasAC != nil {
		room.HasAC = *req.HasAC
	}
	if req.HasWifi != nil {
		room.HasWifi = *req.HasWifi
	}
	if req.HasTV != nil {
		room.HasTV = *req.HasTV
	}
	if req.HasMinibar != nil {
		room.HasMinibar = *req.HasMinibar
	}
	room.LastUpdatedAt = time.Now().UTC()
	room.LastUpdatedBy = requestingUserID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// UpdateRoomStatus sets the operational status of a room.
func (s *roomService) UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest, requestingUserID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.roomRepo.UpdateRoomStatus(ctx, roomID, req.Status, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}

	room.Status = req.Status
	room.LastUpdatedAt = now
	room.LastUpdatedBy = requestingUserID
	return room, nil
}
