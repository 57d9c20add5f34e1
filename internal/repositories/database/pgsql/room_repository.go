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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomRepository struct {
	db *pgxpool.Pool
}

// newPgxRoomRepository creates a new repository for room data.
func newPgxRoomRepository(db *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{db: db}
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

func toModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:        d.RoomID,
		Number:        d.Number,
		Type:          string(d.Type),
		PricePerNight: d.PricePerNight,
		Capacity:      d.Capacity,
		Status:        string(d.Status),
		Description:   d.Description,
		HasAC:         d.HasAC,
		HasWifi:       d.HasWifi,
		HasTV:         d.HasTV,
		HasMinibar:    d.HasMinibar,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:        m.RoomID,
		Number:        m.Number,
		Type:          domain.RoomType(m.Type),
		PricePerNight: m.PricePerNight,
		Capacity:      m.Capacity,
		Status:        domain.RoomStatus(m.Status),
		Description:   m.Description,
		HasAC:         m.HasAC,
		HasWifi:       m.HasWifi,
		HasTV:         m.HasTV,
		HasMinibar:    m.HasMinibar,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const roomColumns = `room_id, number, type, price_per_night, capacity, status, description, has_ac, has_wifi, has_tv, has_minibar, created_at, created_by, last_updated_at, last_updated_by`

func scanRoom(row pgx.Row) (models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.Number,
		&m.Type,
		&m.PricePerNight,
		&m.Capacity,
		&m.Status,
		&m.Description,
		&m.HasAC,
		&m.HasWifi,
		&m.HasTV,
		&m.HasMinibar,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := toModelRoom(room)
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.RoomID,
		m.Number,
		m.Type,
		m.PricePerNight,
		m.Capacity,
		m.Status,
		m.Description,
		m.HasAC,
		m.HasWifi,
		m.HasTV,
		m.HasMinibar,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: room with number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1;`
	m, err := scanRoom(r.db.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by ID %s: %w", roomID, err)
	}
	room := toDomainRoom(m)
	return &room, nil
}

func (r *PgxRoomRepository) FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1;`
	m, err := scanRoom(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by number %s: %w", number, err)
	}
	room := toDomainRoom(m)
	return &room, nil
}

func (r *PgxRoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY number;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, toDomainRoom(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", rows.Err())
	}
	return rooms, nil
}

func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	m := toModelRoom(room)
	query := `
		UPDATE rooms
		SET number = $1, type = $2, price_per_night = $3, capacity = $4, status = $5,
			description = $6, has_ac = $7, has_wifi = $8, has_tv = $9, has_minibar = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE room_id = $13;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Number,
		m.Type,
		m.PricePerNight,
		m.Capacity,
		m.Status,
		m.Description,
		m.HasAC,
		m.HasWifi,
		m.HasTV,
		m.HasMinibar,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RoomID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: room with number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to execute update room query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("room not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRoomRepository) UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE rooms
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE room_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(status), now, updatedBy, roomID)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("room not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
