package chat_test

import (
	"context"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

// Transaction runs fn against the mock itself unless an error is configured.
func (m *MockStorage) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockStorage) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockStorage) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockStorage) ListUserIDsByRole(ctx context.Context, role string) ([]uint, error) {
	args := m.Called(ctx, role)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *MockStorage) UpdateUserRole(ctx context.Context, id uint, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockStorage) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockStorage) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *MockStorage) GetHotelByPlaceID(ctx context.Context, placeID string) (*models.Hotel, error) {
	args := m.Called(ctx, placeID)
	hotel, _ := args.Get(0).(*models.Hotel)
	return hotel, args.Error(1)
}

func (m *MockStorage) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	args := m.Called(ctx)
	hotels, _ := args.Get(0).([]models.Hotel)
	return hotels, args.Error(1)
}

func (m *MockStorage) SearchHotels(ctx context.Context, name string) ([]models.Hotel, error) {
	args := m.Called(ctx, name)
	hotels, _ := args.Get(0).([]models.Hotel)
	return hotels, args.Error(1)
}

func (m *MockStorage) CreateRoom(ctx context.Context, room *models.ChatRoom) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockStorage) GetRoom(ctx context.Context, roomID string) (*models.ChatRoom, error) {
	args := m.Called(ctx, roomID)
	room, _ := args.Get(0).(*models.ChatRoom)
	return room, args.Error(1)
}

func (m *MockStorage) RoomExists(ctx context.Context, roomID string) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ListRooms(ctx context.Context) ([]models.ChatRoom, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]models.ChatRoom)
	return rooms, args.Error(1)
}

func (m *MockStorage) ListRoomsForUser(ctx context.Context, userID uint) ([]models.ChatRoom, error) {
	args := m.Called(ctx, userID)
	rooms, _ := args.Get(0).([]models.ChatRoom)
	return rooms, args.Error(1)
}

func (m *MockStorage) TouchRoom(ctx context.Context, roomID string, at time.Time) error {
	return m.Called(ctx, roomID, at).Error(0)
}

func (m *MockStorage) DeleteRoomCascade(ctx context.Context, roomID string) error {
	return m.Called(ctx, roomID).Error(0)
}

func (m *MockStorage) AddParticipants(ctx context.Context, roomID string, userIDs []uint) error {
	return m.Called(ctx, roomID, userIDs).Error(0)
}

func (m *MockStorage) IsParticipant(ctx context.Context, roomID string, userID uint) (bool, error) {
	args := m.Called(ctx, roomID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CreateMessage(ctx context.Context, msg *models.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockStorage) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *MockStorage) PublishRoomEvent(ctx context.Context, event models.RoomEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OfferOpened(ctx context.Context, room *models.ChatRoom, requester *models.User) error {
	return m.Called(ctx, room, requester).Error(0)
}
