package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the data needed to create an account.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN EMPLOYEE CLIENT"`
	ClientID *string         `json:"clientID"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role *domain.UserRole `form:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE CLIENT"`
}

// UserResponse defines the data returned for a user account.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	ClientID *string         `json:"clientID,omitempty"`
	IsActive bool            `json:"isActive"`
}

// CreateEmployeeProfileRequest attaches payroll data to an employee user.
type CreateEmployeeProfileRequest struct {
	Position    string          `json:"position" binding:"required"`
	GrossSalary decimal.Decimal `json:"grossSalary" binding:"required"`
	HiredAt     *time.Time      `json:"hiredAt"`
}

// UpdateEmployeeProfileRequest defines the data allowed for profile updates.
type UpdateEmployeeProfileRequest struct {
	Position    *string                `json:"position"`
	GrossSalary *decimal.Decimal       `json:"grossSalary"`
	Status      *domain.EmployeeStatus `json:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE DISMISSED"`
}

// EmployeeProfileResponse defines the data returned for an employee profile.
type EmployeeProfileResponse struct {
	UserID      string                `json:"userID"`
	Position    string                `json:"position"`
	GrossSalary decimal.Decimal       `json:"grossSalary"`
	HiredAt     *time.Time            `json:"hiredAt,omitempty"`
	Status      domain.EmployeeStatus `json:"status"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		ClientID: u.ClientID,
		IsActive: u.IsActive,
	}
}

// ToListUsersResponse converts a slice of domain.User to response DTOs.
func ToListUsersResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(&u)
	}
	return out
}

// ToEmployeeProfileResponse converts a domain.EmployeeProfile to its DTO.
func ToEmployeeProfileResponse(p *domain.EmployeeProfile) EmployeeProfileResponse {
	return EmployeeProfileResponse{
		UserID:      p.UserID,
		Position:    p.Position,
		GrossSalary: p.GrossSalary,
		HiredAt:     p.HiredAt,
		Status:      p.Status,
	}
}
