package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// ListNotificationsParams defines query parameters for a user's feed.
type ListNotificationsParams struct {
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
	UnreadOnly bool    `form:"unreadOnly"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID  string                  `json:"notificationID"`
	Type            domain.NotificationType `json:"type"`
	Title           string                  `json:"title"`
	Message         string                  `json:"message"`
	Priority        domain.Priority         `json:"priority"`
	ReservationID   *string                 `json:"reservationID,omitempty"`
	ContactID       *string                 `json:"contactID,omitempty"`
	MaintenanceID   *string                 `json:"maintenanceID,omitempty"`
	InventoryItemID *string                 `json:"inventoryItemID,omitempty"`
	Read            bool                    `json:"read"`
	Processed       bool                    `json:"processed"`
	ReadAt          *time.Time              `json:"readAt,omitempty"`
	ProcessedAt     *time.Time              `json:"processedAt,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ListNotificationsResponse wraps a page of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID:  n.NotificationID,
		Type:            n.Type,
		Title:           n.Title,
		Message:         n.Message,
		Priority:        n.Priority,
		ReservationID:   n.ReservationID,
		ContactID:       n.ContactID,
		MaintenanceID:   n.MaintenanceID,
		InventoryItemID: n.InventoryItemID,
		Read:            n.Read,
		Processed:       n.Processed,
		ReadAt:          n.ReadAt,
		ProcessedAt:     n.ProcessedAt,
		CreatedAt:       n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a page of notifications to the list DTO.
func ToListNotificationsResponse(notifications []domain.Notification, nextToken *string) ListNotificationsResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: out, NextToken: nextToken}
}
