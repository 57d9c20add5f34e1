package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, for authentication.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves users, optionally filtered by role.
	ListUsers(ctx context.Context, role *domain.UserRole) ([]domain.User, error)

	// ListAdminUserIDs returns the user IDs of all active administrators.
	ListAdminUserIDs(ctx context.Context) ([]string, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email surfaces as
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeactivateUser marks a user as inactive.
	DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error
}

// EmployeeProfileReader defines read operations for employee profiles
type EmployeeProfileReader interface {
	// FindEmployeeProfile retrieves the profile of the given user.
	FindEmployeeProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error)

	// ListActiveEmployeeProfiles retrieves profiles of all employees whose
	// status is ACTIVE.
	ListActiveEmployeeProfiles(ctx context.Context) ([]domain.EmployeeProfile, error)
}

// EmployeeProfileWriter defines write operations for employee profiles
type EmployeeProfileWriter interface {
	// SaveEmployeeProfile persists a new employee profile.
	SaveEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error

	// UpdateEmployeeProfile updates an existing employee profile.
	UpdateEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	EmployeeProfileReader
	EmployeeProfileWriter
}
