package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users, optionally filtered by role.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates an account with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates user details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// DeactivateUser marks a user as inactive.
	DeactivateUser(ctx context.Context, userID string, requestingUserID string) error
}

// EmployeeProfileSvc manages payroll-relevant employee data. Creating a
// profile triggers the initial payslip, best-effort.
type EmployeeProfileSvc interface {
	// GetEmployeeProfile retrieves the profile of a user.
	GetEmployeeProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error)

	// CreateEmployeeProfile attaches a profile to an employee user.
	CreateEmployeeProfile(ctx context.Context, userID string, req dto.CreateEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error)

	// UpdateEmployeeProfile updates position, salary or status.
	UpdateEmployeeProfile(ctx context.Context, userID string, req dto.UpdateEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	EmployeeProfileSvc
}
