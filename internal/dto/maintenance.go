package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTicketRequest defines the data needed to open a maintenance ticket.
type CreateTicketRequest struct {
	Title         string                 `json:"title" binding:"required"`
	Description   string                 `json:"description"`
	Type          domain.MaintenanceType `json:"type" binding:"required,oneof=CORRECTIVE PREVENTIVE EMERGENCY"`
	Priority      domain.Priority        `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	RoomID        *string                `json:"roomID"`
	Equipment     string                 `json:"equipment"`
	ScheduledAt   *time.Time             `json:"scheduledAt"`
	AssignedTo    *string                `json:"assignedTo"`
	EstimatedCost *decimal.Decimal       `json:"estimatedCost"`
	Notes         string                 `json:"notes"`
}

// UpdateTicketRequest defines the data allowed for updating a ticket.
type UpdateTicketRequest struct {
	Title         *string                   `json:"title"`
	Description   *string                   `json:"description"`
	Priority      *domain.Priority          `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	ScheduledAt   *time.Time                `json:"scheduledAt"`
	AssignedTo    *string                   `json:"assignedTo"`
	Status        *domain.MaintenanceStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS CANCELLED"`
	EstimatedCost *decimal.Decimal          `json:"estimatedCost"`
	Notes         *string                   `json:"notes"`
}

// CompleteTicketRequest closes a ticket. A non-nil actual cost feeds the
// charge recorder.
type CompleteTicketRequest struct {
	ActualCost *decimal.Decimal `json:"actualCost"`
	Notes      string           `json:"notes"`
}

// ListTicketsParams defines query parameters for listing tickets.
type ListTicketsParams struct {
	Status    *domain.MaintenanceStatus `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Limit     int                       `form:"limit,default=20"`
	NextToken *string                   `form:"nextToken"`
}

// TicketResponse defines the data returned for a maintenance ticket.
type TicketResponse struct {
	TicketID      string                   `json:"ticketID"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Type          domain.MaintenanceType   `json:"type"`
	Priority      domain.Priority          `json:"priority"`
	RoomID        *string                  `json:"roomID,omitempty"`
	Equipment     string                   `json:"equipment"`
	ScheduledAt   *time.Time               `json:"scheduledAt,omitempty"`
	StartedAt     *time.Time               `json:"startedAt,omitempty"`
	CompletedAt   *time.Time               `json:"completedAt,omitempty"`
	AssignedTo    *string                  `json:"assignedTo,omitempty"`
	Status        domain.MaintenanceStatus `json:"status"`
	EstimatedCost *decimal.Decimal         `json:"estimatedCost,omitempty"`
	ActualCost    *decimal.Decimal         `json:"actualCost,omitempty"`
	Notes         string                   `json:"notes"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListTicketsResponse wraps a page of tickets.
type ListTicketsResponse struct {
	Tickets   []TicketResponse `json:"tickets"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToTicketResponse converts a domain.MaintenanceTicket to its DTO.
func ToTicketResponse(t *domain.MaintenanceTicket) TicketResponse {
	return TicketResponse{
		TicketID:      t.TicketID,
		Title:         t.Title,
		Description:   t.Description,
		Type:          t.Type,
		Priority:      t.Priority,
		RoomID:        t.RoomID,
		Equipment:     t.Equipment,
		ScheduledAt:   t.ScheduledAt,
		StartedAt:     t.StartedAt,
		CompletedAt:   t.CompletedAt,
		AssignedTo:    t.AssignedTo,
		Status:        t.Status,
		EstimatedCost: t.EstimatedCost,
		ActualCost:    t.ActualCost,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTicketsResponse converts a page of tickets to the list DTO.
func ToListTicketsResponse(tickets []domain.MaintenanceTicket, nextToken *string) ListTicketsResponse {
	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = ToTicketResponse(&t)
	}
	return ListTicketsResponse{Tickets: out, NextToken: nextToken}
}
