package storage

import (
	"context"
	"encoding/json"
	"errors"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/models"
	"log/slog"
)

// PublishRoomEvent fans the event out on the global events channel and on the
// room's own channel. It is a no-op when Redis is not configured.
func (s *Service) PublishRoomEvent(ctx context.Context, event models.RoomEvent) error {
	if s.Redis == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	errEvents := s.Redis.Publish(ctx, config.EventsChannel, payload).Err()
	errRoom := s.Redis.Publish(ctx, config.RoomChannelPrefix+event.RoomID, payload).Err()
	return errors.Join(errEvents, errRoom)
}

// ErrEventsDisabled is returned by SubscribeRoomEvents when Redis is not configured.
var ErrEventsDisabled = errors.New("room events disabled: redis not configured")

// SubscribeRoomEvents listens on the global events channel and calls handle for
// every decodable event until ctx is cancelled. Malformed payloads are logged and skipped.
func (s *Service) SubscribeRoomEvents(ctx context.Context, handle func(models.RoomEvent)) error {
	if s.Redis == nil {
		return ErrEventsDisabled
	}

	pubsub := s.Redis.Subscribe(ctx, config.EventsChannel)
	defer pubsub.Close()

	// Receive blocks until the subscription is confirmed or fails.
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			event, err := DecodeRoomEvent(msg.Payload)
			if err != nil {
				slog.Warn("skipping malformed room event", slog.String("channel", msg.Channel), slog.Any("err", err))
				continue
			}
			handle(event)
		}
	}
}

// DecodeRoomEvent parses a payload written by PublishRoomEvent.
func DecodeRoomEvent(payload string) (models.RoomEvent, error) {
	var event models.RoomEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return event, err
	}
	if event.Type == "" || event.RoomID == "" {
		return event, errors.New("room event without type or room id")
	}
	return event, nil
}
