package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/utils"
)

var ErrNotEmployee = errors.New("user is not an employee")

// userService manages accounts and employee profiles. Creating a profile
// triggers the initial payslip through the payroll service, best-effort.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	payrollSvc portssvc.PayrollWriterSvc
}

// NewUserService creates a new UserService. payrollSvc may be nil in
// contexts that never create employee profiles.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, payrollSvc portssvc.PayrollWriterSvc) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		payrollSvc: payrollSvc,
	}
}

// Ensure userService implements the facade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a specific user by its ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves users, optionally filtered by role.
func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx, params.Role)
}

// CreateUser creates an account with a hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		ClientID:     req.ClientID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

// UpdateUser updates user details.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeactivateUser marks a user as inactive.
func (s *userService) DeactivateUser(ctx context.Context, userID string, requestingUserID string) error {
	return s.userRepo.DeactivateUser(ctx, userID, requestingUserID, time.Now().UTC())
}

// GetEmployeeProfile retrieves the profile of a user.
func (s *userService) GetEmployeeProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	return s.userRepo.FindEmployeeProfile(ctx, userID)
}

// CreateEmployeeProfile attaches a profile to an employee user. The
// first payslip of the current month is generated right away,
// best-effort: a payroll failure never fails profile creation.
func (s *userService) CreateEmployeeProfile(ctx context.Context, userID string, req dto.CreateEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleEmployee && user.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: user %s has role %s", ErrNotEmployee, userID, user.Role)
	}
	if req.GrossSalary.IsNegative() {
		return nil, fmt.Errorf("%w: gross salary must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	profile := domain.EmployeeProfile{
		UserID:      userID,
		Position:    req.Position,
		GrossSalary: req.GrossSalary,
		HiredAt:     req.HiredAt,
		Status:      domain.EmployeeActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.userRepo.SaveEmployeeProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save employee profile: %w", err)
	}

	if s.payrollSvc != nil {
		s.payrollSvc.GenerateInitialPayslip(ctx, userID, requestingUserID)
	}

	return &profile, nil
}

// UpdateEmployeeProfile updates position, salary or status.
func (s *userService) UpdateEmployeeProfile(ctx context.Context, userID string, req dto.UpdateEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error) {
	profile, err := s.userRepo.FindEmployeeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		profile.Position = *req.Position
	}
	if req.GrossSalary != nil {
		if req.GrossSalary.IsNegative() {
			return nil, fmt.Errorf("%w: gross salary must not be negative", apperrors.ErrValidation)
		}
		profile.GrossSalary = *req.GrossSalary
	}
	if req.Status != nil {
		profile.Status = *req.Status
	}
	profile.LastUpdatedAt = time.Now().UTC()
	profile.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateEmployeeProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update employee profile: %w", err)
	}
	return profile, nil
}
