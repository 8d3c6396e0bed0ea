package chat

import (
	"context"
	"errors"
	"fmt"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"log/slog"
)

// OpenOrGetOffer returns the requester's room for the hotel, creating it on
// first use together with its participants and the opening message.
func (s *Service) OpenOrGetOffer(ctx context.Context, placeID string, requester *models.User) (*models.ChatRoom, error) {
	if err := Authorize(requester, OpOpenOffer); err != nil {
		return nil, err
	}

	hotel, err := s.store.GetHotelByPlaceID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	roomID := RoomKey(hotel.PlaceID, requester.Email)
	room, err := s.store.GetRoom(ctx, roomID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx storage.Storage) error {
		if err := tx.CreateRoom(ctx, &models.ChatRoom{ID: roomID, HotelID: hotel.ID}); err != nil {
			return err
		}
		if err := s.Seed(ctx, tx, roomID, requester.ID); err != nil {
			return err
		}
		_, err := s.appendTo(ctx, tx, roomID, requester.ID, fmt.Sprintf(config.OfferMessageTmpl, hotel.Name))
		return err
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// another request created the room between our read and insert
		slog.Info("offer room created concurrently, returning existing", slog.String("room_id", roomID))
		return s.store.GetRoom(ctx, roomID)
	}
	if err != nil {
		return nil, err
	}

	room, err = s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	slog.Info("offer room opened",
		slog.String("room_id", roomID),
		slog.Uint64("user_id", uint64(requester.ID)),
		slog.Int("participants", len(room.Participants)))

	s.publish(ctx, models.RoomEvent{Type: models.EventOfferOpened, RoomID: roomID, HotelID: hotel.ID, SenderID: requester.ID})
	if s.notifier != nil {
		if err := s.notifier.OfferOpened(ctx, room, requester); err != nil {
			slog.Warn("failed to notify staff", slog.String("room_id", roomID), slog.Any("err", err))
		}
	}
	return room, nil
}

// ListAllRooms is the staff inbox: every room with only its latest message,
// most recently active first.
func (s *Service) ListAllRooms(ctx context.Context, caller *models.User) ([]models.ChatRoom, error) {
	if err := Authorize(caller, OpListAllRooms); err != nil {
		return nil, err
	}
	return s.store.ListRooms(ctx)
}

// ListRoomsForUser is ListAllRooms restricted to the rooms user participates in.
func (s *Service) ListRoomsForUser(ctx context.Context, user *models.User) ([]models.ChatRoom, error) {
	if err := Authorize(user, OpListOwnRooms); err != nil {
		return nil, err
	}
	return s.store.ListRoomsForUser(ctx, user.ID)
}

// GetRoom returns the fully hydrated room. Users who are neither participants
// nor operators get ErrNotFound, whether or not the room exists.
func (s *Service) GetRoom(ctx context.Context, caller *models.User, roomID string) (*models.ChatRoom, error) {
	if err := Authorize(caller, OpViewRoom); err != nil {
		return nil, err
	}

	if !caller.IsOperator() {
		ok, err := s.store.IsParticipant(ctx, roomID, caller.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("chat room %s: %w", roomID, errs.ErrNotFound)
		}
	}
	return s.store.GetRoom(ctx, roomID)
}

// CloseRoom deletes the room with its participants and messages.
func (s *Service) CloseRoom(ctx context.Context, caller *models.User, roomID string) error {
	if err := Authorize(caller, OpCloseRoom); err != nil {
		return err
	}
	if err := s.store.DeleteRoomCascade(ctx, roomID); err != nil {
		return err
	}

	slog.Info("chat room closed", slog.String("room_id", roomID), slog.Uint64("operator_id", uint64(caller.ID)))
	s.publish(ctx, models.RoomEvent{Type: models.EventRoomClosed, RoomID: roomID, SenderID: caller.ID})
	return nil
}
