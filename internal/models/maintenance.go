package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceTicket represents a row of the maintenance_tickets table.
type MaintenanceTicket struct {
	TicketID      string           `db:"ticket_id"`
	Title         string           `db:"title"`
	Description   string           `db:"description"`
	Type          string           `db:"type"`
	Priority      string           `db:"priority"`
	RoomID        *string          `db:"room_id"`
	Equipment     string           `db:"equipment"`
	ScheduledAt   *time.Time       `db:"scheduled_at"`
	StartedAt     *time.Time       `db:"started_at"`
	CompletedAt   *time.Time       `db:"completed_at"`
	AssignedTo    *string          `db:"assigned_to"`
	Status        string           `db:"status"`
	EstimatedCost *decimal.Decimal `db:"estimated_cost"`
	ActualCost    *decimal.Decimal `db:"actual_cost"`
	Notes         string           `db:"notes"`
	AuditFields
}
