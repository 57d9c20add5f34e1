package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

var (
	ErrMovementQuantity  = errors.New("movement quantity must be positive")
	ErrInsufficientStock = errors.New("movement exceeds available stock")
)

// inventoryService tracks stock levels. Intake books a placeholder
// charge; movements crossing the alert threshold raise stock alerts.
type inventoryService struct {
	inventoryRepo   portsrepo.InventoryRepositoryFacade
	chargeSvc       portssvc.ChargeRecorderSvc
	notificationSvc portssvc.NotificationDispatcherSvc
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, chargeSvc portssvc.ChargeRecorderSvc, notificationSvc portssvc.NotificationDispatcherSvc) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo:   inventoryRepo,
		chargeSvc:       chargeSvc,
		notificationSvc: notificationSvc,
	}
}

// Ensure inventoryService implements the facade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// GetItemByID retrieves a specific item by its ID.
func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindItemByID(ctx, itemID)
}

// ListItems retrieves all inventory items.
func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, _, err := s.inventoryRepo.ListItems(ctx, 1000, nil)
	return items, err
}

// ListCategories retrieves all inventory categories.
func (s *inventoryService) ListCategories(ctx context.Context) ([]domain.InventoryCategory, error) {
	return s.inventoryRepo.ListCategories(ctx)
}

// ListMovementsByItem retrieves the movement history of an item.
func (s *inventoryService) ListMovementsByItem(ctx context.Context, itemID string) ([]domain.InventoryMovement, error) {
	if _, err := s.inventoryRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.inventoryRepo.ListMovementsByItem(ctx, itemID)
}

// CreateCategory persists a new category.
func (s *inventoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.InventoryCategory, error) {
	now := time.Now().UTC()
	category := domain.InventoryCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.inventoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

// CreateItem registers a new item. Intake also books a zero-amount
// INVENTORY placeholder charge, best-effort.
func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	condition := req.Condition
	if condition == "" {
		condition = domain.ConditionNew
	}

	now := time.Now().UTC()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              req.Name,
		Reference:         req.Reference,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.TotalQuantity,
		AlertThreshold:    req.AlertThreshold,
		Condition:         condition,
		Location:          req.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	if _, chargeErr := s.chargeSvc.RecordInventoryCharge(ctx, item, creatorUserID); chargeErr != nil {
		logger.Error("Failed to record inventory intake charge", slog.String("item_id", item.ItemID), slog.String("error", chargeErr.Error()))
	}

	return &item, nil
}

// UpdateItem updates item details other than quantities.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.AlertThreshold != nil {
		item.AlertThreshold = *req.AlertThreshold
	}
	if req.Condition != nil {
		item.Condition = *req.Condition
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = requestingUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// RecordMovement applies a stock mutation. Outgoing movements are
// bounded by available stock; dropping to or below the alert threshold
// raises a stock alert, best-effort.
func (s *inventoryService) RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, requestingUserID string) (*domain.InventoryMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMovementQuantity, req.Quantity)
	}

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if req.Type.RemovesAvailability() && req.Quantity > item.AvailableQuantity {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, req.Quantity, item.AvailableQuantity)
	}
	if req.Type == domain.MovementAdjustment && req.Quantity > item.TotalQuantity {
		return nil, fmt.Errorf("%w: cannot adjust away %d of %d total", apperrors.ErrValidation, req.Quantity, item.TotalQuantity)
	}

	movement := domain.InventoryMovement{
		MovementID:  uuid.NewString(),
		ItemID:      itemID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		RoomID:      req.RoomID,
		EmployeeID:  req.EmployeeID,
		Notes:       req.Notes,
		PerformedBy: requestingUserID,
		OccurredAt:  time.Now().UTC(),
	}

	updated, err := s.inventoryRepo.ApplyMovement(ctx, movement)
	if err != nil {
		return nil, fmt.Errorf("failed to apply movement: %w", err)
	}

	if updated.StockState() != domain.StockNormal {
		if alertErr := s.notificationSvc.NotifyStockAlert(ctx, *updated); alertErr != nil {
			logger.Warn("Failed to raise stock alert", slog.String("item_id", itemID), slog.String("error", alertErr.Error()))
		}
	}

	return &movement, nil
}
