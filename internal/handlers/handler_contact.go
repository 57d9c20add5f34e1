package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// contactHandler handles the public contact form and its staff-side inbox.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// newContactHandler creates a new contactHandler.
func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{
		contactService: cs,
	}
}

// registerPublicContactRoutes registers the unauthenticated contact form
// endpoint on the root router.
func registerPublicContactRoutes(r *gin.Engine, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)
	r.POST("/contact", h.submitMessage)
}

// registerContactRoutes registers the staff-side contact inbox routes.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	messages := rg.Group("/contact-messages", middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee))
	{
		messages.GET("", h.listMessages)
		messages.GET("/:id", h.getMessage)
		messages.POST("/:id/reply", h.replyToMessage)
		messages.PATCH("/:id/status", h.updateMessageStatus)
	}
}

// submitMessage godoc
// @Summary Submit a message through the public contact form
// @Description Records the message and notifies administrators
// @Tags contact
// @Accept  json
// @Produce  json
// @Param   message body dto.CreateContactRequest true "Message details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	message, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to submit message")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(message))
}

// listMessages godoc
// @Summary List contact messages
// @Tags contact
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListContactsResponse
// @Security BearerAuth
// @Router /contact-messages [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.contactService.ListMessages(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getMessage godoc
// @Summary Get a contact message by ID
// @Tags contact
// @Produce  json
// @Param   id path string true "Message ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Message not found"
// @Security BearerAuth
// @Router /contact-messages/{id} [get]
func (h *contactHandler) getMessage(c *gin.Context) {
	message, err := h.contactService.GetMessageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve message")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(message))
}

// replyToMessage godoc
// @Summary Reply to a contact message
// @Tags contact
// @Accept  json
// @Produce  json
// @Param   id path string true "Message ID"
// @Param   reply body dto.ReplyContactRequest true "Reply body"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Message not found"
// @Security BearerAuth
// @Router /contact-messages/{id}/reply [post]
func (h *contactHandler) replyToMessage(c *gin.Context) {
	var req dto.ReplyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	message, err := h.contactService.ReplyToMessage(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to reply to message")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(message))
}

// updateMessageStatus godoc
// @Summary Transition the handling state of a contact message
// @Tags contact
// @Accept  json
// @Produce  json
// @Param   id path string true "Message ID"
// @Param   status body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Message not found"
// @Security BearerAuth
// @Router /contact-messages/{id}/status [patch]
func (h *contactHandler) updateMessageStatus(c *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	message, err := h.contactService.UpdateMessageStatus(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update message status")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(message))
}
