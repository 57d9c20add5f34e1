package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// NotificationReaderSvc defines read operations for notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves the feed of the requesting user.
	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)
}

// NotificationWriterSvc defines write operations for notifications
type NotificationWriterSvc interface {
	// MarkRead flags a notification as read by its recipient.
	MarkRead(ctx context.Context, notificationID string, userID string) error

	// MarkProcessed flags a notification as handled.
	MarkProcessed(ctx context.Context, notificationID string, userID string) error
}

// NotificationDispatcherSvc fans events out to administrator accounts.
// Dispatch is best-effort from the caller's point of view; callers log
// and swallow errors so business writes never fail on notification.
type NotificationDispatcherSvc interface {
	// NotifyAdmins persists one notification addressed to every active
	// administrator. An empty recipient set is not an error.
	NotifyAdmins(ctx context.Context, notification domain.Notification) error

	// NotifyStockAlert raises a STOCK_ALERT for an item unless one was
	// already raised for it within the dedup window.
	NotifyStockAlert(ctx context.Context, item domain.InventoryItem) error
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
	NotificationDispatcherSvc
}
