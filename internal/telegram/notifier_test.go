package telegram_test

import (
	"context"
	"errors"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/telegram"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return tgbotapi.Message{}, args.Error(0)
}

func offerFixture() (*models.ChatRoom, *models.User) {
	room := &models.ChatRoom{
		ID:    "chat_H1_a_b@x.com",
		Hotel: models.Hotel{Name: "Grand *Budapest*", FormattedAddress: "1 Main St"},
	}
	user := &models.User{Username: "alice_w", Email: "a_b@x.com"}
	return room, user
}

func TestFormatOfferOpened(t *testing.T) {
	room, user := offerFixture()

	text := telegram.FormatOfferOpened(room, user)

	assert.Contains(t, text, "*New offer*")
	assert.Contains(t, text, `Hotel: Grand \*Budapest\*`)
	assert.Contains(t, text, "Address: 1 Main St")
	assert.Contains(t, text, `From: alice\_w (a\_b@x.com)`)
	assert.Contains(t, text, "Room: `chat_H1_a_b@x.com`")
}

func TestNotifier_OfferOpened(t *testing.T) {
	// Arrange
	sender := new(MockSender)
	sender.On("Send", mock.Anything).Return(nil).Once()
	n := telegram.NewNotifier(sender, -100123)
	room, user := offerFixture()

	// Act
	err := n.OfferOpened(context.Background(), room, user)

	// Assert
	require.NoError(t, err)
	sender.AssertExpectations(t)
	sent := sender.Calls[0].Arguments.Get(0).(tgbotapi.MessageConfig)
	assert.Equal(t, tgbotapi.ModeMarkdown, sent.ParseMode)
	assert.Equal(t, telegram.FormatOfferOpened(room, user), sent.Text)
}

func TestNotifier_SendError(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything).Return(errors.New("Bad Request: chat not found"))
	n := telegram.NewNotifier(sender, 1)
	room, user := offerFixture()

	err := n.OfferOpened(context.Background(), room, user)

	assert.ErrorContains(t, err, "chat not found")
}

func TestNotifier_CanceledContext(t *testing.T) {
	sender := new(MockSender)
	n := telegram.NewNotifier(sender, 1)
	room, user := offerFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.OfferOpened(ctx, room, user)

	assert.ErrorIs(t, err, context.Canceled)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}
