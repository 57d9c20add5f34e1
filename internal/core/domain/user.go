package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole distinguishes the three dashboard roles.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
	RoleClient   UserRole = "CLIENT"
)

// EmployeeStatus is the employment state carried on an employee profile.
type EmployeeStatus string

const (
	EmployeeActive    EmployeeStatus = "ACTIVE"
	EmployeeOnLeave   EmployeeStatus = "ON_LEAVE"
	EmployeeDismissed EmployeeStatus = "DISMISSED"
)

// User is an application account. Clients additionally reference a Client
// record; employees carry an EmployeeProfile.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	ClientID     *string  `json:"clientID,omitempty"` // set for client accounts
	IsActive     bool     `json:"isActive"`
	AuditFields
}

// EmployeeProfile extends a User with payroll-relevant data.
type EmployeeProfile struct {
	UserID      string          `json:"userID"`
	Position    string          `json:"position"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
	HiredAt     *time.Time      `json:"hiredAt,omitempty"`
	Status      EmployeeStatus  `json:"status"`
	AuditFields
}

// YearsEmployed returns full years between the hire date and now,
// zero when the hire date is unset.
func (p EmployeeProfile) YearsEmployed(now time.Time) int {
	if p.HiredAt == nil {
		return 0
	}
	return int(now.Sub(*p.HiredAt).Hours() / 24 / 365)
}
