package handler

import (
	"hotelchat/backend/internal/auth"
	"hotelchat/backend/internal/chat"
	"hotelchat/backend/internal/hotel"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	Chat   *chat.Service
	Auth   *auth.Service
	Hotels *hotel.Service
}

func NewHandler(chatSvc *chat.Service, authSvc *auth.Service, hotelSvc *hotel.Service) *Handler {
	return &Handler{Chat: chatSvc, Auth: authSvc, Hotels: hotelSvc}
}
