package models

import "time"

// Participant is the join row between a chat room and a user allowed to read and
// write it. The composite primary key makes repeated enrollment a no-op.
type Participant struct {
	ChatRoomID string    `gorm:"primaryKey"`
	UserID     uint      `gorm:"primaryKey"`
	JoinedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName pins the join table name shared with ChatRoom.Participants.
func (Participant) TableName() string {
	return "chat_participants"
}
