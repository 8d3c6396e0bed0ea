package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type postMessageRequest struct {
	Content  string `json:"content" binding:"required"`
	SenderID *uint  `json:"senderId" binding:"required"`
}

// OpenOffer POST /chat/offer/:hotelPlaceId
func (h *Handler) OpenOffer(c *gin.Context) {
	room, err := h.Chat.OpenOrGetOffer(c.Request.Context(), c.Param("hotelPlaceId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChatRoomResponse(room))
}

// ListMyRooms GET /chat
func (h *Handler) ListMyRooms(c *gin.Context) {
	rooms, err := h.Chat.ListRoomsForUser(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChatRoomList(rooms))
}

// ListAllRooms GET /chat/all
func (h *Handler) ListAllRooms(c *gin.Context) {
	rooms, err := h.Chat.ListAllRooms(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChatRoomList(rooms))
}

// GetRoom GET /chat/:roomId
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.Chat.GetRoom(c.Request.Context(), currentUser(c), c.Param("roomId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChatRoomResponse(room))
}

// PostMessage POST /chat/:roomId/message
func (h *Handler) PostMessage(c *gin.Context) {
	var req postMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.Chat.PostMessage(c.Request.Context(), currentUser(c), c.Param("roomId"), *req.SenderID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// CloseRoom DELETE /chat/:roomId
func (h *Handler) CloseRoom(c *gin.Context) {
	if err := h.Chat.CloseRoom(c.Request.Context(), currentUser(c), c.Param("roomId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat room closed"})
}
