package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/hotelio/hotel_management_app/internal/models"
	"github.com/hotelio/hotel_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContactRepository struct {
	db *pgxpool.Pool
}

// newPgxContactRepository creates a new repository for contact message data.
func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{db: db}
}

// Ensure PgxContactRepository implements portsrepo.ContactRepositoryFacade
var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

func toModelContactMessage(d domain.ContactMessage) models.ContactMessage {
	return models.ContactMessage{
		MessageID: d.MessageID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		ClientID:  d.ClientID,
		Subject:   d.Subject,
		Body:      d.Body,
		Urgency:   string(d.Urgency),
		Status:    string(d.Status),
		Reply:     d.Reply,
		RepliedAt: d.RepliedAt,
		HandledBy: d.HandledBy,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainContactMessage(m models.ContactMessage) domain.ContactMessage {
	return domain.ContactMessage{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		ClientID:  m.ClientID,
		Subject:   m.Subject,
		Body:      m.Body,
		Urgency:   domain.ContactUrgency(m.Urgency),
		Status:    domain.ContactStatus(m.Status),
		Reply:     m.Reply,
		RepliedAt: m.RepliedAt,
		HandledBy: m.HandledBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const contactColumns = `message_id, name, email, phone, client_id, subject, body, urgency, status, reply, replied_at, handled_by, created_at, created_by, last_updated_at, last_updated_by`

func scanContactMessage(row pgx.Row) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.MessageID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.ClientID,
		&m.Subject,
		&m.Body,
		&m.Urgency,
		&m.Status,
		&m.Reply,
		&m.RepliedAt,
		&m.HandledBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxContactRepository) SaveMessage(ctx context.Context, message domain.ContactMessage) error {
	m := toModelContactMessage(message)
	query := `
		INSERT INTO contact_messages (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db.Exec(ctx, query,
		m.MessageID,
		m.Name,
		m.Email,
		m.Phone,
		m.ClientID,
		m.Subject,
		m.Body,
		m.Urgency,
		m.Status,
		m.Reply,
		m.RepliedAt,
		m.HandledBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) FindMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE message_id = $1;`
	m, err := scanContactMessage(r.db.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact message by ID %s: %w", messageID, err)
	}
	message := toDomainContactMessage(m)
	return &message, nil
}

// ListMessages retrieves a paginated list of messages using token-based pagination.
func (r *PgxContactRepository) ListMessages(ctx context.Context, limit int, nextToken *string) ([]domain.ContactMessage, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + contactColumns + ` FROM contact_messages`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, message_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, message_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	modelMessages := []models.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		modelMessages = append(modelMessages, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating contact message rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelMessages) > limit {
		last := modelMessages[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.MessageID)
		nextTokenVal = &token
		modelMessages = modelMessages[:limit]
	}

	messages := make([]domain.ContactMessage, len(modelMessages))
	for i, m := range modelMessages {
		messages[i] = toDomainContactMessage(m)
	}
	return messages, nextTokenVal, nil
}

func (r *PgxContactRepository) UpdateMessage(ctx context.Context, message domain.ContactMessage) error {
	m := toModelContactMessage(message)
	query := `
		UPDATE contact_messages
		SET name = $1, email = $2, phone = $3, client_id = $4, subject = $5, body = $6,
			urgency = $7, status = $8, reply = $9, replied_at = $10, handled_by = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE message_id = $14;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Email,
		m.Phone,
		m.ClientID,
		m.Subject,
		m.Body,
		m.Urgency,
		m.Status,
		m.Reply,
		m.RepliedAt,
		m.HandledBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.MessageID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update contact message query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact message not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
