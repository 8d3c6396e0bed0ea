package storage

import (
	"context"
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRoom inserts only the room row. A second room with the same key
// yields ErrDuplicate.
func (s *Service) CreateRoom(ctx context.Context, room *models.ChatRoom) error {
	err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(room).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("room %s: %w", room.ID, ErrDuplicate)
	}
	if err != nil {
		slog.Error("failed to create room", slog.String("room_id", room.ID), slog.Any("err", err))
		return err
	}
	return nil
}

// GetRoom loads a room with its hotel, participants and every message
// (oldest first, each with its sender).
func (s *Service) GetRoom(ctx context.Context, roomID string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Participants", orderUsers).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Messages.Sender").
		Where("id = ?", roomID).
		First(&room).Error
	if err != nil {
		return nil, notFound(err, "chat room "+roomID)
	}
	return &room, nil
}

func (s *Service) RoomExists(ctx context.Context, roomID string) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.ChatRoom{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListRooms returns every room, most recently active first, each carrying
// only its latest message.
func (s *Service) ListRooms(ctx context.Context) ([]models.ChatRoom, error) {
	return s.listRooms(ctx, s.DB.WithContext(ctx))
}

// ListRoomsForUser is ListRooms restricted to rooms the user participates in.
func (s *Service) ListRoomsForUser(ctx context.Context, userID uint) ([]models.ChatRoom, error) {
	q := s.DB.WithContext(ctx).
		Joins("JOIN chat_participants cp ON cp.chat_room_id = chat_rooms.id AND cp.user_id = ?", userID)
	return s.listRooms(ctx, q)
}

func (s *Service) listRooms(ctx context.Context, q *gorm.DB) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	err := q.Preload("Hotel").
		Preload("Participants", orderUsers).
		Order("chat_rooms.updated_at DESC, chat_rooms.id ASC").
		Find(&rooms).Error
	if err != nil {
		slog.Error("failed to list rooms", slog.Any("err", err))
		return nil, err
	}

	for i := range rooms {
		var latest []models.Message
		err := s.DB.WithContext(ctx).
			Preload("Sender").
			Where("chat_room_id = ?", rooms[i].ID).
			Order("created_at DESC, id DESC").
			Limit(1).
			Find(&latest).Error
		if err != nil {
			slog.Error("failed to load latest message", slog.String("room_id", rooms[i].ID), slog.Any("err", err))
			return nil, err
		}
		rooms[i].Messages = latest
	}
	return rooms, nil
}

func (s *Service) TouchRoom(ctx context.Context, roomID string, at time.Time) error {
	res := s.DB.WithContext(ctx).Model(&models.ChatRoom{}).
		Where("id = ?", roomID).
		UpdateColumn("updated_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("chat room %s: %w", roomID, errs.ErrNotFound)
	}
	return nil
}

// DeleteRoomCascade removes the room's messages, its participants and the room
// itself in one transaction.
func (s *Service) DeleteRoomCascade(ctx context.Context, roomID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_room_id = ?", roomID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_room_id = ?", roomID).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", roomID).Delete(&models.ChatRoom{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("chat room %s: %w", roomID, errs.ErrNotFound)
		}
		return nil
	})
}

// AddParticipants enrolls the users in one batch. Users already enrolled are
// skipped silently.
func (s *Service) AddParticipants(ctx context.Context, roomID string, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]models.Participant, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, models.Participant{ChatRoomID: roomID, UserID: id})
	}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		slog.Error("failed to add participants", slog.String("room_id", roomID), slog.Any("err", err))
		return err
	}
	return nil
}

func (s *Service) IsParticipant(ctx context.Context, roomID string, userID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Participant{}).
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) CreateMessage(ctx context.Context, msg *models.Message) error {
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(msg).Error; err != nil {
		slog.Error("failed to save message", slog.String("room_id", msg.ChatRoomID), slog.Any("err", err))
		return err
	}
	return nil
}

// GetMessage returns the message with its sender loaded.
func (s *Service) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	var msg models.Message
	if err := s.DB.WithContext(ctx).Preload("Sender").Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, notFound(err, "message "+id)
	}
	return &msg, nil
}

func orderUsers(db *gorm.DB) *gorm.DB {
	return db.Order("users.id ASC")
}
