package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// chargeHandler handles HTTP requests related to accounting charges.
type chargeHandler struct {
	chargeService portssvc.ChargeSvcFacade
}

// newChargeHandler creates a new chargeHandler.
func newChargeHandler(cs portssvc.ChargeSvcFacade) *chargeHandler {
	return &chargeHandler{
		chargeService: cs,
	}
}

// registerChargeRoutes registers all charge-related routes. Operating
// expenses are an administrator concern.
func registerChargeRoutes(rg *gin.RouterGroup, chargeService portssvc.ChargeSvcFacade) {
	h := newChargeHandler(chargeService)

	charges := rg.Group("/charges", middleware.RequireRole(domain.RoleAdmin))
	{
		charges.POST("", h.createCharge)
		charges.GET("", h.listCharges)
		charges.GET("/:id", h.getCharge)
		charges.PUT("/:id", h.updateCharge)
		charges.POST("/:id/pay", h.payCharge)
	}
}

// createCharge godoc
// @Summary Record an operating charge
// @Description Derives VAT from the pre-tax amount; the rate defaults to the configured VAT rate
// @Tags charges
// @Accept  json
// @Produce  json
// @Param   charge body dto.CreateChargeRequest true "Charge details"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /charges [post]
func (h *chargeHandler) createCharge(c *gin.Context) {
	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	charge, err := h.chargeService.CreateCharge(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create charge")
		return
	}
	c.JSON(http.StatusCreated, dto.ToChargeResponse(charge))
}

// listCharges godoc
// @Summary List accounting charges
// @Tags charges
// @Produce  json
// @Param   type query string false "Type filter"
// @Param   status query string false "Status filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListChargesResponse
// @Security BearerAuth
// @Router /charges [get]
func (h *chargeHandler) listCharges(c *gin.Context) {
	var params dto.ListChargesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.chargeService.ListCharges(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list charges")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getCharge godoc
// @Summary Get a charge by ID
// @Tags charges
// @Produce  json
// @Param   id path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 404 {object} map[string]string "Charge not found"
// @Security BearerAuth
// @Router /charges/{id} [get]
func (h *chargeHandler) getCharge(c *gin.Context) {
	charge, err := h.chargeService.GetChargeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// updateCharge godoc
// @Summary Update a pending charge
// @Description Recomputes tax amounts when the base amount or rate changes
// @Tags charges
// @Accept  json
// @Produce  json
// @Param   id path string true "Charge ID"
// @Param   charge body dto.UpdateChargeRequest true "Fields to update"
// @Success 200 {object} dto.ChargeResponse
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 409 {object} map[string]string "Charge not pending"
// @Security BearerAuth
// @Router /charges/{id} [put]
func (h *chargeHandler) updateCharge(c *gin.Context) {
	var req dto.UpdateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	charge, err := h.chargeService.UpdateCharge(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// payCharge godoc
// @Summary Mark a pending charge as paid
// @Tags charges
// @Accept  json
// @Produce  json
// @Param   id path string true "Charge ID"
// @Param   payment body dto.PayChargeRequest true "Payment details"
// @Success 200 {object} dto.ChargeResponse
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 409 {object} map[string]string "Charge not pending"
// @Security BearerAuth
// @Router /charges/{id}/pay [post]
func (h *chargeHandler) payCharge(c *gin.Context) {
	var req dto.PayChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	charge, err := h.chargeService.PayCharge(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to pay charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}
