package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a row of the users table.
type User struct {
	UserID       string  `db:"user_id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Role         string  `db:"role"`
	ClientID     *string `db:"client_id"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}

// EmployeeProfile represents a row of the employee_profiles table.
type EmployeeProfile struct {
	UserID      string          `db:"user_id"`
	Position    string          `db:"position"`
	GrossSalary decimal.Decimal `db:"gross_salary"`
	HiredAt     *time.Time      `db:"hired_at"`
	Status      string          `db:"status"`
	AuditFields
}
