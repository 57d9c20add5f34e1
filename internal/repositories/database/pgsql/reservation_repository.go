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

type PgxReservationRepository struct {
	BaseRepository
}

// newPgxReservationRepository creates a new repository for reservation data.
func newPgxReservationRepository(db *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

func toModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		ClientID:      d.ClientID,
		RoomID:        d.RoomID,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Nights:        d.Nights,
		TotalPrice:    d.TotalPrice,
		Status:        string(d.Status),
		Occupants:     d.Occupants,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		ClientID:      m.ClientID,
		RoomID:        m.RoomID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Nights:        m.Nights,
		TotalPrice:    m.TotalPrice,
		Status:        domain.ReservationStatus(m.Status),
		Occupants:     m.Occupants,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const reservationColumns = `reservation_id, client_id, room_id, check_in, check_out, nights, total_price, status, occupants, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanReservation(row pgx.Row) (models.Reservation, error) {
	var m models.Reservation
	err := row.Scan(
		&m.ReservationID,
		&m.ClientID,
		&m.RoomID,
		&m.CheckIn,
		&m.CheckOut,
		&m.Nights,
		&m.TotalPrice,
		&m.Status,
		&m.Occupants,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertReservation(ctx context.Context, exec pgxExecutor, reservation domain.Reservation) error {
	m := toModelReservation(reservation)
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := exec.Exec(ctx, query,
		m.ReservationID,
		m.ClientID,
		m.RoomID,
		m.CheckIn,
		m.CheckOut,
		m.Nights,
		m.TotalPrice,
		m.Status,
		m.Occupants,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func updateReservation(ctx context.Context, exec pgxExecutor, reservation domain.Reservation) error {
	m := toModelReservation(reservation)
	query := `
		UPDATE reservations
		SET client_id = $1, room_id = $2, check_in = $3, check_out = $4, nights = $5,
			total_price = $6, status = $7, occupants = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE reservation_id = $12;
	`
	cmdTag, err := exec.Exec(ctx, query,
		m.ClientID,
		m.RoomID,
		m.CheckIn,
		m.CheckOut,
		m.Nights,
		m.TotalPrice,
		m.Status,
		m.Occupants,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ReservationID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update reservation query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("reservation not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	return insertReservation(ctx, r.Pool, reservation)
}

func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	return updateReservation(ctx, r.Pool, reservation)
}

// SaveReservationConfirmed writes the reservation, its derived invoice
// and the admin notification in one transaction, so confirmation never
// leaves a confirmed reservation without its billing documents.
func (r *PgxReservationRepository) SaveReservationConfirmed(ctx context.Context, reservation domain.Reservation, created bool, invoice domain.Invoice, notification domain.Notification) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if created {
		if err := insertReservation(ctx, tx, reservation); err != nil {
			return err
		}
	} else {
		if err := updateReservation(ctx, tx, reservation); err != nil {
			return err
		}
	}

	if err := insertInvoice(ctx, tx, invoice); err != nil {
		return err
	}
	if err := insertNotification(ctx, tx, notification); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CancelReservation sets the reservation to CANCELLED and cancels its
// invoice in the same transaction, unless that invoice is already PAID.
func (r *PgxReservationRepository) CancelReservation(ctx context.Context, reservation domain.Reservation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateReservation(ctx, tx, reservation); err != nil {
		return err
	}

	invoiceQuery := `
		UPDATE invoices
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE reservation_id = $4 AND status <> $5;
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		string(domain.InvoiceCancelled),
		reservation.LastUpdatedAt,
		reservation.LastUpdatedBy,
		reservation.ReservationID,
		string(domain.InvoicePaid),
	)
	if err != nil {
		return fmt.Errorf("failed to cancel invoice for reservation %s: %w", reservation.ReservationID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1;`
	m, err := scanReservation(r.Pool.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation by ID %s: %w", reservationID, err)
	}
	reservation := toDomainReservation(m)
	return &reservation, nil
}

// ListReservations retrieves a paginated list of reservations using token-based pagination.
func (r *PgxReservationRepository) ListReservations(ctx context.Context, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, reservation_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, reservation_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	modelReservations := []models.Reservation{}
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		modelReservations = append(modelReservations, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating reservation rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelReservations) > limit {
		last := modelReservations[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ReservationID)
		nextTokenVal = &token
		modelReservations = modelReservations[:limit]
	}

	reservations := make([]domain.Reservation, len(modelReservations))
	for i, m := range modelReservations {
		reservations[i] = toDomainReservation(m)
	}
	return reservations, nextTokenVal, nil
}

func (r *PgxReservationRepository) ListReservationsByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE client_id = $1 ORDER BY check_in DESC;`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for client %s: %w", clientID, err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, toDomainReservation(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", rows.Err())
	}
	return reservations, nil
}
