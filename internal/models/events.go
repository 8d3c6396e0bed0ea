package models

import "time"

// RoomEventType names what happened in a chat room.
type RoomEventType string

const (
	EventOfferOpened   RoomEventType = "offer_opened"
	EventMessagePosted RoomEventType = "message_posted"
	EventRoomClosed    RoomEventType = "room_closed"
)

// RoomEvent is published to Redis after a chat room changes so that other
// backend processes (notification workers, analytics) can react.
type RoomEvent struct {
	Type      RoomEventType `json:"type"`
	RoomID    string        `json:"roomId"`
	HotelID   uint          `json:"hotelId,omitempty"`
	MessageID string        `json:"messageId,omitempty"`
	SenderID  uint          `json:"senderId,omitempty"`
	At        time.Time     `json:"at"`
}
