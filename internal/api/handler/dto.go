package handler

import (
	"hotelchat/backend/internal/models"
	"time"
)

type hotelSummary struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
}

type participantResponse struct {
	ID          uint           `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	AvatarImage *string        `json:"avatarImage"`
	Profile     models.Profile `json:"profile"`
	Role        string         `json:"role"`
}

type senderResponse struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	AvatarImage *string `json:"avatarImage"`
	Role        string  `json:"role"`
}

type messageResponse struct {
	ID         string               `json:"id"`
	ChatRoomID string               `json:"chatRoomId"`
	SenderID   uint                 `json:"senderId"`
	Content    string               `json:"content"`
	Status     models.MessageStatus `json:"status"`
	Timestamp  time.Time            `json:"timestamp"`
	Sender     *senderResponse      `json:"sender,omitempty"`
}

type chatRoomResponse struct {
	ID           string                `json:"id"`
	HotelID      uint                  `json:"hotelId"`
	Hotel        hotelSummary          `json:"hotel"`
	Participants []participantResponse `json:"participants"`
	Messages     []messageResponse     `json:"messages"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func newMessageResponse(m *models.Message) messageResponse {
	resp := messageResponse{
		ID:         m.ID,
		ChatRoomID: m.ChatRoomID,
		SenderID:   m.SenderID,
		Content:    m.Content,
		Status:     m.Status,
		Timestamp:  m.Timestamp,
	}
	if m.Sender.ID != 0 {
		resp.Sender = &senderResponse{
			ID:          m.Sender.ID,
			Email:       m.Sender.Email,
			Username:    m.Sender.Username,
			AvatarImage: m.Sender.AvatarImage,
			Role:        m.Sender.Role,
		}
	}
	return resp
}

func newChatRoomResponse(r *models.ChatRoom) chatRoomResponse {
	resp := chatRoomResponse{
		ID:      r.ID,
		HotelID: r.HotelID,
		Hotel: hotelSummary{
			PlaceID:          r.Hotel.PlaceID,
			Name:             r.Hotel.Name,
			FormattedAddress: r.Hotel.FormattedAddress,
		},
		Participants: make([]participantResponse, 0, len(r.Participants)),
		Messages:     make([]messageResponse, 0, len(r.Messages)),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, p := range r.Participants {
		resp.Participants = append(resp.Participants, participantResponse{
			ID:          p.ID,
			Username:    p.Username,
			Email:       p.Email,
			AvatarImage: p.AvatarImage,
			Profile:     p.Profile.Data(),
			Role:        p.Role,
		})
	}
	for i := range r.Messages {
		resp.Messages = append(resp.Messages, newMessageResponse(&r.Messages[i]))
	}
	return resp
}

func newChatRoomList(rooms []models.ChatRoom) []chatRoomResponse {
	out := make([]chatRoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, newChatRoomResponse(&rooms[i]))
	}
	return out
}

func newSessionResponse(token string, u *models.User) sessionResponse {
	return sessionResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role},
	}
}
