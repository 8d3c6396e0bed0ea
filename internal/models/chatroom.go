package models

import "time"

// ChatRoom is a negotiation between one requesting user and the staff about one hotel.
// Its ID is derived from the hotel place id and the requester email, so the
// primary key alone guarantees a single room per (hotel, user) pair.
type ChatRoom struct {
	// ID has the form chat_<place_id>_<email>.
	ID      string `gorm:"primaryKey"`
	HotelID uint   `gorm:"not null;index"`
	Hotel   Hotel  `gorm:"constraint:OnDelete:CASCADE"`

	// Participants is populated through the chat_participants join table.
	Participants []User `gorm:"many2many:chat_participants;joinForeignKey:ChatRoomID;joinReferences:UserID"`
	// Messages are ordered oldest first when preloaded by the storage layer.
	Messages []Message `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	// UpdatedAt is touched on every appended message and drives inbox ordering.
	UpdatedAt time.Time `gorm:"index"`
}
