package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// FindNotificationByID retrieves a specific notification by its unique identifier.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// ListNotificationsForUser retrieves a paginated list of notifications
	// addressed to the given user, newest first.
	ListNotificationsForUser(ctx context.Context, userID string, limit int, nextToken *string, unreadOnly bool) ([]domain.Notification, *string, error)

	// HasRecentStockAlert reports whether a STOCK_ALERT notification for the
	// item was created at or after the given instant.
	HasRecentStockAlert(ctx context.Context, itemID string, since time.Time) (bool, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists the notification and its recipient links in
	// one transaction.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead flags the notification as read.
	MarkNotificationRead(ctx context.Context, notificationID string, now time.Time) error

	// MarkNotificationProcessed flags the notification as processed.
	MarkNotificationProcessed(ctx context.Context, notificationID string, now time.Time) error
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
