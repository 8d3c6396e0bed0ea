package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageStatus is the delivery state of a message. Only MessageSent is assigned
// today; the other values are reserved for receipts.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// Message is one immutable entry of a chat room's log.
type Message struct {
	// ID is "msg_" followed by a UUIDv7, which sorts by creation time.
	ID         string        `gorm:"primaryKey"`
	ChatRoomID string        `gorm:"not null;index:idx_room_created,priority:1"`
	SenderID   uint          `gorm:"not null;index"`
	Sender     User          `gorm:"foreignKey:SenderID"`
	Content    string        `gorm:"type:text;not null"`
	Status     MessageStatus `gorm:"not null;default:sent"`
	Timestamp  time.Time     `gorm:"not null"`
	CreatedAt  time.Time     `gorm:"index:idx_room_created,priority:2"`
	UpdatedAt  time.Time
}

// NewMessageID returns a fresh collision-resistant, time-ordered message id.
func NewMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "msg_" + id.String()
}

// BeforeCreate fills the id, status and timestamp when the caller left them empty.
func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = NewMessageID()
	}
	if m.Status == "" {
		m.Status = MessageSent
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return
}
