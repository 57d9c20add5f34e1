package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// roomHandler handles HTTP requests related to rooms.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{
		roomService: rs,
	}
}

// registerRoomRoutes registers all room-related routes. Reads are open
// to every authenticated user; writes are a staff concern.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.GET("/:id", h.getRoom)

		staff := rooms.Group("", middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee))
		{
			staff.POST("", h.createRoom)
			staff.PUT("/:id", h.updateRoom)
			staff.PATCH("/:id/status", h.updateRoomStatus)
		}
	}
}

// createRoom godoc
// @Summary Create a new room
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Room number already exists"
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce  json
// @Param   status query string false "Status filter (FREE, OCCUPIED, MAINTENANCE)"
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	var params dto.ListRoomsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoomsResponse(rooms))
}

// getRoom godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce  json
// @Param   id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	room, err := h.roomService.GetRoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path string true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoomStatus godoc
// @Summary Set the operational status of a room
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path string true "Room ID"
// @Param   status body dto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Security BearerAuth
// @Router /rooms/{id}/status [patch]
func (h *roomHandler) updateRoomStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.UpdateRoomStatus(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update room status")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}
