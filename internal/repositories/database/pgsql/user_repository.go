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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user and employee profile data.
func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		ClientID:     d.ClientID,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		ClientID:     m.ClientID,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const userColumns = `user_id, name, email, password_hash, role, client_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.ClientID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.ClientID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, role *domain.UserRole) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	if role != nil {
		query += ` WHERE role = $1`
		args = append(args, string(*role))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) ListAdminUserIDs(ctx context.Context) ([]string, error) {
	query := `SELECT user_id FROM users WHERE role = $1 AND is_active;`
	rows, err := r.db.Query(ctx, query, string(domain.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("failed to query admin users: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan admin user ID: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating admin user rows: %w", rows.Err())
	}
	return ids, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4, client_id = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.ClientID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE users
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND is_active;
	`
	cmdTag, err := r.db.Exec(ctx, query, now, updatedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

// Helper to convert domain.EmployeeProfile to models.EmployeeProfile
func toModelEmployeeProfile(d domain.EmployeeProfile) models.EmployeeProfile {
	return models.EmployeeProfile{
		UserID:      d.UserID,
		Position:    d.Position,
		GrossSalary: d.GrossSalary,
		HiredAt:     d.HiredAt,
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.EmployeeProfile to domain.EmployeeProfile
func toDomainEmployeeProfile(m models.EmployeeProfile) domain.EmployeeProfile {
	return domain.EmployeeProfile{
		UserID:      m.UserID,
		Position:    m.Position,
		GrossSalary: m.GrossSalary,
		HiredAt:     m.HiredAt,
		Status:      domain.EmployeeStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const employeeProfileColumns = `user_id, position, gross_salary, hired_at, status, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeProfile(row pgx.Row) (models.EmployeeProfile, error) {
	var m models.EmployeeProfile
	err := row.Scan(
		&m.UserID,
		&m.Position,
		&m.GrossSalary,
		&m.HiredAt,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) FindEmployeeProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles WHERE user_id = $1;`
	m, err := scanEmployeeProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee profile for user %s: %w", userID, err)
	}
	profile := toDomainEmployeeProfile(m)
	return &profile, nil
}

func (r *PgxUserRepository) ListActiveEmployeeProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles WHERE status = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, string(domain.EmployeeActive))
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.EmployeeProfile{}
	for rows.Next() {
		m, err := scanEmployeeProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee profile row: %w", err)
		}
		profiles = append(profiles, toDomainEmployeeProfile(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee profile rows: %w", rows.Err())
	}
	return profiles, nil
}

func (r *PgxUserRepository) SaveEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	m := toModelEmployeeProfile(profile)
	query := `
		INSERT INTO employee_profiles (` + employeeProfileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Position,
		m.GrossSalary,
		m.HiredAt,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: employee profile for user %s already exists", apperrors.ErrDuplicate, m.UserID)
		}
		return fmt.Errorf("failed to save employee profile: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	m := toModelEmployeeProfile(profile)
	query := `
		UPDATE employee_profiles
		SET position = $1, gross_salary = $2, hired_at = $3, status = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Position,
		m.GrossSalary,
		m.HiredAt,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update employee profile query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee profile not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
