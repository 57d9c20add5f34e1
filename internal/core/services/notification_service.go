package services

import (
	"context"
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

// stockAlertDedupWindow suppresses repeat STOCK_ALERT notifications for
// the same item within this window.
const stockAlertDedupWindow = 24 * time.Hour

// notificationService fans events out to administrator accounts and
// serves each user's notification feed.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, userRepo portsrepo.UserReader) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Ensure notificationService implements the facade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// NotifyAdmins persists one notification addressed to every active
// administrator. An empty admin set is logged, not treated as an error.
func (s *notificationService) NotifyAdmins(ctx context.Context, notification domain.Notification) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	adminIDs, err := s.userRepo.ListAdminUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve admin recipients: %w", err)
	}
	if len(adminIDs) == 0 {
		logger.Warn("No active administrators to notify", slog.String("type", string(notification.Type)))
		return nil
	}

	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	if notification.Priority == "" {
		notification.Priority = domain.PriorityMedium
	}
	notification.Recipients = adminIDs

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// NotifyStockAlert raises a STOCK_ALERT for the item unless one was
// already raised inside the dedup window.
func (s *notificationService) NotifyStockAlert(ctx context.Context, item domain.InventoryItem) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	recent, err := s.notificationRepo.HasRecentStockAlert(ctx, item.ItemID, now.Add(-stockAlertDedupWindow))
	if err != nil {
		return fmt.Errorf("failed to check recent stock alerts: %w", err)
	}
	if recent {
		logger.Info("Stock alert already raised recently, skipping", slog.String("item_id", item.ItemID))
		return nil
	}

	priority := domain.PriorityHigh
	title := fmt.Sprintf("Low stock: %s", item.Name)
	message := fmt.Sprintf("Item %s (%s) is down to %d available units (threshold %d)",
		item.Name, item.Reference, item.AvailableQuantity, item.AlertThreshold)
	if item.StockState() == domain.StockDepleted {
		priority = domain.PriorityCritical
		title = fmt.Sprintf("Stock depleted: %s", item.Name)
	}

	itemID := item.ItemID
	return s.NotifyAdmins(ctx, domain.Notification{
		Type:            domain.NotifyStockAlert,
		Title:           title,
		Message:         message,
		Priority:        priority,
		InventoryItemID: &itemID,
		CreatedAt:       now,
	})
}

// ListNotifications retrieves the feed of the requesting user.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	notifications, nextToken, err := s.notificationRepo.ListNotificationsForUser(ctx, userID, limit, params.NextToken, params.UnreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	resp := dto.ToListNotificationsResponse(notifications, nextToken)
	return &resp, nil
}

// MarkRead flags a notification as read by one of its recipients.
func (s *notificationService) MarkRead(ctx context.Context, notificationID string, userID string) error {
	if err := s.authorizeRecipient(ctx, notificationID, userID); err != nil {
		return err
	}
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID, time.Now().UTC())
}

// MarkProcessed flags a notification as handled.
func (s *notificationService) MarkProcessed(ctx context.Context, notificationID string, userID string) error {
	if err := s.authorizeRecipient(ctx, notificationID, userID); err != nil {
		return err
	}
	return s.notificationRepo.MarkNotificationProcessed(ctx, notificationID, time.Now().UTC())
}

func (s *notificationService) authorizeRecipient(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	for _, recipient := range notification.Recipients {
		if recipient == userID {
			return nil
		}
	}
	return fmt.Errorf("%w: user %s is not a recipient of notification %s", apperrors.ErrForbidden, userID, notificationID)
}
