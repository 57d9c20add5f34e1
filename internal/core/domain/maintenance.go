package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType distinguishes scheduled work from emergencies.
type MaintenanceType string

const (
	MaintenanceCorrective MaintenanceType = "CORRECTIVE"
	MaintenancePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceEmergency  MaintenanceType = "EMERGENCY"
)

// Priority is shared between maintenance tickets and notifications.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// MaintenanceStatus is the lifecycle state of a ticket.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDING"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// MaintenanceTicket is a unit of maintenance work, optionally tied to a
// room. Completing a ticket with a known actual cost feeds the charge
// recorder.
type MaintenanceTicket struct {
	TicketID      string            `json:"ticketID"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Type          MaintenanceType   `json:"type"`
	Priority      Priority          `json:"priority"`
	RoomID        *string           `json:"roomID,omitempty"`
	Equipment     string            `json:"equipment"`
	ScheduledAt   *time.Time        `json:"scheduledAt,omitempty"`
	StartedAt     *time.Time        `json:"startedAt,omitempty"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	AssignedTo    *string           `json:"assignedTo,omitempty"`
	Status        MaintenanceStatus `json:"status"`
	EstimatedCost *decimal.Decimal  `json:"estimatedCost,omitempty"`
	ActualCost    *decimal.Decimal  `json:"actualCost,omitempty"`
	Notes         string            `json:"notes"`
	AuditFields
}
