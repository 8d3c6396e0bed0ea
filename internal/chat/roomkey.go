package chat

import "hotelchat/backend/internal/config"

// RoomKey derives the chat room id for a requester's offer on a hotel. Both the
// create and the lookup path go through it, so the key alone identifies the
// (hotel, requester) pair.
func RoomKey(placeID, email string) string {
	return config.RoomIDPrefix + placeID + "_" + email
}
