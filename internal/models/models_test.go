package models_test

import (
	"encoding/json"
	"hotelchat/backend/internal/models"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUserIsOperator(t *testing.T) {
	var nilUser *models.User

	assert.False(t, nilUser.IsOperator())
	assert.False(t, (&models.User{Role: models.RoleUser}).IsOperator())
	assert.True(t, (&models.User{Role: models.RoleOperator}).IsOperator())
}

// TestUserJSON_HidesPassword verifies the hash never reaches API responses.
func TestUserJSON_HidesPassword(t *testing.T) {
	user := models.User{
		ID:       1,
		Email:    "a@x.com",
		Password: "$2a$10$secret",
		Profile:  datatypes.NewJSONType(models.Profile{FirstName: "Ann", LastName: "Lee"}),
	}

	raw, err := json.Marshal(user)

	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"profile":{"firstName":"Ann","lastName":"Lee"}`)
}

func TestNewMessageID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := models.NewMessageID()

		require.True(t, strings.HasPrefix(id, "msg_"), id)
		parsed, err := uuid.Parse(strings.TrimPrefix(id, "msg_"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

// TestMessageBeforeCreate_Defaults verifies the hook fills id, status and timestamp.
func TestMessageBeforeCreate_Defaults(t *testing.T) {
	// Arrange
	msg := &models.Message{ChatRoomID: "chat_H1_a@x.com", SenderID: 1, Content: "hi"}

	// Act
	err := msg.BeforeCreate(nil)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg.ID, "msg_"))
	assert.Equal(t, models.MessageSent, msg.Status)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestMessageBeforeCreate_PreservesExisting(t *testing.T) {
	msg := &models.Message{ID: "msg_fixed", Status: models.MessageRead}

	require.NoError(t, msg.BeforeCreate(nil))

	assert.Equal(t, "msg_fixed", msg.ID)
	assert.Equal(t, models.MessageRead, msg.Status)
}

// TestStructTags catches accidental removal of the constraints the chat core relies on.
func TestStructTags(t *testing.T) {
	roomType := reflect.TypeOf(models.ChatRoom{})
	id, _ := roomType.FieldByName("ID")
	assert.Contains(t, id.Tag.Get("gorm"), "primaryKey")
	participants, _ := roomType.FieldByName("Participants")
	assert.Contains(t, participants.Tag.Get("gorm"), "many2many:chat_participants")

	pType := reflect.TypeOf(models.Participant{})
	roomID, _ := pType.FieldByName("ChatRoomID")
	userID, _ := pType.FieldByName("UserID")
	assert.Contains(t, roomID.Tag.Get("gorm"), "primaryKey")
	assert.Contains(t, userID.Tag.Get("gorm"), "primaryKey")
	assert.Equal(t, "chat_participants", models.Participant{}.TableName())

	hotelType := reflect.TypeOf(models.Hotel{})
	placeID, _ := hotelType.FieldByName("PlaceID")
	assert.Contains(t, placeID.Tag.Get("gorm"), "uniqueIndex")

	userType := reflect.TypeOf(models.User{})
	email, _ := userType.FieldByName("Email")
	assert.Contains(t, email.Tag.Get("gorm"), "uniqueIndex")
}

func BenchmarkNewMessageID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = models.NewMessageID()
	}
}
