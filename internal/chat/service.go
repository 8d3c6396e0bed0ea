// Package chat implements hotel negotiation rooms: one room per (hotel,
// requesting user), staff enrolled automatically, and an append-only message
// log per room.
package chat

import (
	"context"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"log/slog"
	"time"
)

// Notifier alerts staff when a new offer room is opened.
type Notifier interface {
	OfferOpened(ctx context.Context, room *models.ChatRoom, requester *models.User) error
}

type Service struct {
	store    storage.Storage
	notifier Notifier
	now      func() time.Time
}

// NewService creates the chat service. notifier may be nil.
func NewService(store storage.Storage, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// publish emits a room event. Failures are logged and otherwise ignored.
func (s *Service) publish(ctx context.Context, event models.RoomEvent) {
	event.At = s.now()
	if err := s.store.PublishRoomEvent(ctx, event); err != nil {
		slog.Warn("failed to publish room event",
			slog.String("type", string(event.Type)),
			slog.String("room_id", event.RoomID),
			slog.Any("err", err))
	}
}
