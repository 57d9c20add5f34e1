package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/hotelio/hotel_management_app/internal/models"
	"github.com/hotelio/hotel_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:  d.NotificationID,
		Type:            string(d.Type),
		Title:           d.Title,
		Message:         d.Message,
		Priority:        string(d.Priority),
		ReservationID:   d.ReservationID,
		ContactID:       d.ContactID,
		MaintenanceID:   d.MaintenanceID,
		InventoryItemID: d.InventoryItemID,
		Read:            d.Read,
		Processed:       d.Processed,
		ReadAt:          d.ReadAt,
		ProcessedAt:     d.ProcessedAt,
		CreatedAt:       d.CreatedAt,
	}
}

func toDomainNotification(m models.Notification, recipients []string) domain.Notification {
	return domain.Notification{
		NotificationID:  m.NotificationID,
		Type:            domain.NotificationType(m.Type),
		Title:           m.Title,
		Message:         m.Message,
		Priority:        domain.Priority(m.Priority),
		ReservationID:   m.ReservationID,
		ContactID:       m.ContactID,
		MaintenanceID:   m.MaintenanceID,
		InventoryItemID: m.InventoryItemID,
		Read:            m.Read,
		Processed:       m.Processed,
		ReadAt:          m.ReadAt,
		ProcessedAt:     m.ProcessedAt,
		Recipients:      recipients,
		CreatedAt:       m.CreatedAt,
	}
}

const notificationColumns = `notification_id, type, title, message, priority, reservation_id, contact_id, maintenance_id, inventory_item_id, read, processed, read_at, processed_at, created_at`

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.Type,
		&m.Title,
		&m.Message,
		&m.Priority,
		&m.ReservationID,
		&m.ContactID,
		&m.MaintenanceID,
		&m.InventoryItemID,
		&m.Read,
		&m.Processed,
		&m.ReadAt,
		&m.ProcessedAt,
		&m.CreatedAt,
	)
	return m, err
}

// insertNotification writes the notification row and its recipient links
// through the given executor so confirmation flows can include it in
// their own transaction.
func insertNotification(ctx context.Context, exec pgxExecutor, notification domain.Notification) error {
	m := toModelNotification(notification)
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := exec.Exec(ctx, query,
		m.NotificationID,
		m.Type,
		m.Title,
		m.Message,
		m.Priority,
		m.ReservationID,
		m.ContactID,
		m.MaintenanceID,
		m.InventoryItemID,
		m.Read,
		m.Processed,
		m.ReadAt,
		m.ProcessedAt,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	recipientQuery := `INSERT INTO notification_recipients (notification_id, user_id) VALUES ($1, $2);`
	for _, userID := range notification.Recipients {
		if _, err := exec.Exec(ctx, recipientQuery, m.NotificationID, userID); err != nil {
			return fmt.Errorf("failed to insert notification recipient %s: %w", userID, err)
		}
	}
	return nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertNotification(ctx, tx, notification); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	m, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by ID %s: %w", notificationID, err)
	}

	recipients, err := r.loadRecipients(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	notification := toDomainNotification(m, recipients)
	return &notification, nil
}

func (r *PgxNotificationRepository) loadRecipients(ctx context.Context, notificationID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT user_id FROM notification_recipients WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification recipients: %w", err)
	}
	defer rows.Close()

	recipients := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan recipient row: %w", err)
		}
		recipients = append(recipients, userID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recipient rows: %w", rows.Err())
	}
	return recipients, nil
}

// ListNotificationsForUser retrieves notifications addressed to the user,
// newest first, using token-based pagination.
func (r *PgxNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, limit int, nextToken *string, unreadOnly bool) ([]domain.Notification, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT n.notification_id, n.type, n.title, n.message, n.priority,
			n.reservation_id, n.contact_id, n.maintenance_id, n.inventory_item_id,
			n.read, n.processed, n.read_at, n.processed_at, n.created_at
		FROM notifications n
		JOIN notification_recipients nr ON nr.notification_id = n.notification_id
		WHERE nr.user_id = $1
	`
	args := []interface{}{userID}

	if unreadOnly {
		query += ` AND NOT n.read`
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(` AND (n.created_at, n.notification_id) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY n.created_at DESC, n.notification_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	modelNotifications := []models.Notification{}
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		modelNotifications = append(modelNotifications, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelNotifications) > limit {
		last := modelNotifications[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.NotificationID)
		nextTokenVal = &token
		modelNotifications = modelNotifications[:limit]
	}

	notifications := make([]domain.Notification, len(modelNotifications))
	for i, m := range modelNotifications {
		recipients, err := r.loadRecipients(ctx, m.NotificationID)
		if err != nil {
			return nil, nil, err
		}
		notifications[i] = toDomainNotification(m, recipients)
	}
	return notifications, nextTokenVal, nil
}

// HasRecentStockAlert reports whether a stock alert for the item exists
// at or after the given instant. The dedup window for repeated alerts
// rests on this query.
func (r *PgxNotificationRepository) HasRecentStockAlert(ctx context.Context, itemID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE type = $1 AND inventory_item_id = $2 AND created_at >= $3
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, string(domain.NotifyStockAlert), itemID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent stock alerts for item %s: %w", itemID, err)
	}
	return exists, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, now time.Time) error {
	query := `UPDATE notifications SET read = TRUE, read_at = $1 WHERE notification_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, now, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationProcessed(ctx context.Context, notificationID string, now time.Time) error {
	query := `UPDATE notifications SET processed = TRUE, processed_at = $1 WHERE notification_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, now, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification processed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
