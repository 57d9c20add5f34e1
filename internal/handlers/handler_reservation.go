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

// reservationHandler handles HTTP requests related to reservations and
// the invoices their confirmations issue.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
	invoiceService     portssvc.InvoiceSvcFacade
}

// newReservationHandler creates a new reservationHandler.
func newReservationHandler(rs portssvc.ReservationSvcFacade, is portssvc.InvoiceSvcFacade) *reservationHandler {
	return &reservationHandler{
		reservationService: rs,
		invoiceService:     is,
	}
}

// registerReservationRoutes registers all reservation-related routes.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := newReservationHandler(reservationService, invoiceService)

	reservations := rg.Group("/reservations", middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee))
	{
		reservations.POST("", h.createReservation)
		reservations.GET("", h.listReservations)
		reservations.GET("/:id", h.getReservation)
		reservations.PATCH("/:id/status", h.updateReservationStatus)
		reservations.GET("/:id/invoice", h.getReservationInvoice)
	}
}

// mapReservationError translates reservation business errors before
// falling back to the shared mapping.
func mapReservationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrCheckOutBeforeCheckIn),
		errors.Is(err, services.ErrRoomOverCapacity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		respondServiceError(c, err, fallback)
	}
}

// createReservation godoc
// @Summary Book a room for a client
// @Description Creates a reservation; a CONFIRMED status issues the invoice and notifies administrators in the same unit of work
// @Tags reservations
// @Accept  json
// @Produce  json
// @Param   reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Room unavailable"
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		mapReservationError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listReservations godoc
// @Summary List reservations
// @Tags reservations
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListReservationsResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reservationService.ListReservations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getReservation godoc
// @Summary Get a reservation by ID
// @Tags reservations
// @Produce  json
// @Param   id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} map[string]string "Reservation not found"
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// updateReservationStatus godoc
// @Summary Transition the reservation lifecycle
// @Description PENDING to CONFIRMED issues the invoice; CANCELLED also cancels an unpaid invoice
// @Tags reservations
// @Accept  json
// @Produce  json
// @Param   id path string true "Reservation ID"
// @Param   status body dto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} map[string]string "Reservation not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /reservations/{id}/status [patch]
func (h *reservationHandler) updateReservationStatus(c *gin.Context) {
	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.UpdateReservationStatus(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		mapReservationError(c, err, "Failed to update reservation status")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// getReservationInvoice godoc
// @Summary Get the invoice issued for a reservation
// @Tags reservations
// @Produce  json
// @Param   id path string true "Reservation ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "No invoice for this reservation"
// @Security BearerAuth
// @Router /reservations/{id}/invoice [get]
func (h *reservationHandler) getReservationInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
