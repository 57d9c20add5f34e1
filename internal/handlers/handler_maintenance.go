package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// maintenanceHandler handles HTTP requests related to maintenance tickets.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

// newMaintenanceHandler creates a new maintenanceHandler.
func newMaintenanceHandler(ms portssvc.MaintenanceSvcFacade) *maintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: ms,
	}
}

// registerMaintenanceRoutes registers all maintenance-related routes.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := newMaintenanceHandler(maintenanceService)

	tickets := rg.Group("/maintenance/tickets", middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee))
	{
		tickets.POST("", h.createTicket)
		tickets.GET("", h.listTickets)
		tickets.GET("/:id", h.getTicket)
		tickets.PUT("/:id", h.updateTicket)
		tickets.POST("/:id/complete", h.completeTicket)
	}
}

// createTicket godoc
// @Summary Open a maintenance ticket
// @Description High and critical priority tickets notify administrators
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   ticket body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /maintenance/tickets [post]
func (h *maintenanceHandler) createTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ticket, err := h.maintenanceService.CreateTicket(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create ticket")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

// listTickets godoc
// @Summary List maintenance tickets
// @Tags maintenance
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTicketsResponse
// @Security BearerAuth
// @Router /maintenance/tickets [get]
func (h *maintenanceHandler) listTickets(c *gin.Context) {
	var params dto.ListTicketsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.maintenanceService.ListTickets(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTicket godoc
// @Summary Get a maintenance ticket by ID
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} map[string]string "Ticket not found"
// @Security BearerAuth
// @Router /maintenance/tickets/{id} [get]
func (h *maintenanceHandler) getTicket(c *gin.Context) {
	ticket, err := h.maintenanceService.GetTicketByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve ticket")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// updateTicket godoc
// @Summary Update a maintenance ticket
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Ticket ID"
// @Param   ticket body dto.UpdateTicketRequest true "Fields to update"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} map[string]string "Ticket not found"
// @Failure 409 {object} map[string]string "Ticket already closed"
// @Security BearerAuth
// @Router /maintenance/tickets/{id} [put]
func (h *maintenanceHandler) updateTicket(c *gin.Context) {
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ticket, err := h.maintenanceService.UpdateTicket(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		if errors.Is(err, services.ErrTicketClosed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err, "Failed to update ticket")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// completeTicket godoc
// @Summary Complete a maintenance ticket
// @Description A known actual cost is booked as a maintenance charge
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Ticket ID"
// @Param   completion body dto.CompleteTicketRequest true "Completion details"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} map[string]string "Ticket not found"
// @Failure 409 {object} map[string]string "Ticket already closed"
// @Security BearerAuth
// @Router /maintenance/tickets/{id}/complete [post]
func (h *maintenanceHandler) completeTicket(c *gin.Context) {
	var req dto.CompleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ticket, err := h.maintenanceService.CompleteTicket(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		if errors.Is(err, services.ErrTicketClosed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err, "Failed to complete ticket")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}
