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

type PgxMaintenanceRepository struct {
	db *pgxpool.Pool
}

// newPgxMaintenanceRepository creates a new repository for maintenance ticket data.
func newPgxMaintenanceRepository(db *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{db: db}
}

// Ensure PgxMaintenanceRepository implements portsrepo.MaintenanceRepositoryFacade
var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func toModelTicket(d domain.MaintenanceTicket) models.MaintenanceTicket {
	return models.MaintenanceTicket{
		TicketID:      d.TicketID,
		Title:         d.Title,
		Description:   d.Description,
		Type:          string(d.Type),
		Priority:      string(d.Priority),
		RoomID:        d.RoomID,
		Equipment:     d.Equipment,
		ScheduledAt:   d.ScheduledAt,
		StartedAt:     d.StartedAt,
		CompletedAt:   d.CompletedAt,
		AssignedTo:    d.AssignedTo,
		Status:        string(d.Status),
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTicket(m models.MaintenanceTicket) domain.MaintenanceTicket {
	return domain.MaintenanceTicket{
		TicketID:      m.TicketID,
		Title:         m.Title,
		Description:   m.Description,
		Type:          domain.MaintenanceType(m.Type),
		Priority:      domain.Priority(m.Priority),
		RoomID:        m.RoomID,
		Equipment:     m.Equipment,
		ScheduledAt:   m.ScheduledAt,
		StartedAt:     m.StartedAt,
		CompletedAt:   m.CompletedAt,
		AssignedTo:    m.AssignedTo,
		Status:        domain.MaintenanceStatus(m.Status),
		EstimatedCost: m.EstimatedCost,
		ActualCost:    m.ActualCost,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const ticketColumns = `ticket_id, title, description, type, priority, room_id, equipment, scheduled_at, started_at, completed_at, assigned_to, status, estimated_cost, actual_cost, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTicket(row pgx.Row) (models.MaintenanceTicket, error) {
	var m models.MaintenanceTicket
	err := row.Scan(
		&m.TicketID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.Priority,
		&m.RoomID,
		&m.Equipment,
		&m.ScheduledAt,
		&m.StartedAt,
		&m.CompletedAt,
		&m.AssignedTo,
		&m.Status,
		&m.EstimatedCost,
		&m.ActualCost,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMaintenanceRepository) SaveTicket(ctx context.Context, ticket domain.MaintenanceTicket) error {
	m := toModelTicket(ticket)
	query := `
		INSERT INTO maintenance_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.db.Exec(ctx, query,
		m.TicketID,
		m.Title,
		m.Description,
		m.Type,
		m.Priority,
		m.RoomID,
		m.Equipment,
		m.ScheduledAt,
		m.StartedAt,
		m.CompletedAt,
		m.AssignedTo,
		m.Status,
		m.EstimatedCost,
		m.ActualCost,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance ticket: %w", err)
	}
	return nil
}

func (r *PgxMaintenanceRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.MaintenanceTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM maintenance_tickets WHERE ticket_id = $1;`
	m, err := scanTicket(r.db.QueryRow(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance ticket by ID %s: %w", ticketID, err)
	}
	ticket := toDomainTicket(m)
	return &ticket, nil
}

// ListTickets retrieves a paginated list of tickets using token-based
// pagination, optionally filtered by status.
func (r *PgxMaintenanceRepository) ListTickets(ctx context.Context, status *domain.MaintenanceStatus, limit int, nextToken *string) ([]domain.MaintenanceTicket, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + ticketColumns + ` FROM maintenance_tickets WHERE TRUE`
	args := []interface{}{}

	if status != nil {
		query += fmt.Sprintf(` AND status = $%d`, len(args)+1)
		args = append(args, string(*status))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(` AND (created_at, ticket_id) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, ticket_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query maintenance tickets: %w", err)
	}
	defer rows.Close()

	modelTickets := []models.MaintenanceTicket{}
	for rows.Next() {
		m, err := scanTicket(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan maintenance ticket row: %w", err)
		}
		modelTickets = append(modelTickets, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating maintenance ticket rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelTickets) > limit {
		last := modelTickets[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TicketID)
		nextTokenVal = &token
		modelTickets = modelTickets[:limit]
	}

	tickets := make([]domain.MaintenanceTicket, len(modelTickets))
	for i, m := range modelTickets {
		tickets[i] = toDomainTicket(m)
	}
	return tickets, nextTokenVal, nil
}

func (r *PgxMaintenanceRepository) UpdateTicket(ctx context.Context, ticket domain.MaintenanceTicket) error {
	m := toModelTicket(ticket)
	query := `
		UPDATE maintenance_tickets
		SET title = $1, description = $2, type = $3, priority = $4, room_id = $5, equipment = $6,
			scheduled_at = $7, started_at = $8, completed_at = $9, assigned_to = $10, status = $11,
			estimated_cost = $12, actual_cost = $13, notes = $14, last_updated_at = $15, last_updated_by = $16
		WHERE ticket_id = $17;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title,
		m.Description,
		m.Type,
		m.Priority,
		m.RoomID,
		m.Equipment,
		m.ScheduledAt,
		m.StartedAt,
		m.CompletedAt,
		m.AssignedTo,
		m.Status,
		m.EstimatedCost,
		m.ActualCost,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TicketID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update maintenance ticket query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("maintenance ticket not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
