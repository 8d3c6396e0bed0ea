package config

const (
	// Room identity
	RoomIDPrefix = "chat_"

	// Messages
	MaxMessageLength = 4000
	OfferMessageTmpl = "I am interested in making an offer for %s."

	// Redis channels
	EventsChannel     = "chat:events"
	RoomChannelPrefix = "chat:room:"
)
