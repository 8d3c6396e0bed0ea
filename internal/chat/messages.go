package chat

import (
	"context"
	"fmt"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"unicode/utf8"
)

// PostMessage appends content to the room on behalf of caller. senderID is the
// id the client claims to send as and must match the caller.
func (s *Service) PostMessage(ctx context.Context, caller *models.User, roomID string, senderID uint, content string) (*models.Message, error) {
	if err := Authorize(caller, OpPostMessage); err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	if senderID != caller.ID {
		return nil, fmt.Errorf("sender id does not match the authenticated user: %w", errs.ErrForbidden)
	}

	ok, err := s.EnsureParticipant(ctx, roomID, caller.ID, caller.Role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("not a participant of chat room %s: %w", roomID, errs.ErrForbidden)
	}

	return s.Append(ctx, roomID, caller.ID, content)
}

// ValidateContent checks the message body bounds. Any non-empty body is
// accepted, whitespace included.
func ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("content must not be empty: %w", errs.ErrValidation)
	}
	if utf8.RuneCountInString(content) > config.MaxMessageLength {
		return fmt.Errorf("content must be at most %d characters: %w", config.MaxMessageLength, errs.ErrValidation)
	}
	return nil
}

// Append stores the message, bumps the room's activity time and returns the
// message with its sender loaded. Callers are expected to have checked access.
func (s *Service) Append(ctx context.Context, roomID string, senderID uint, content string) (*models.Message, error) {
	var msgID string
	err := s.store.Transaction(ctx, func(tx storage.Storage) error {
		msg, err := s.appendTo(ctx, tx, roomID, senderID, content)
		if err != nil {
			return err
		}
		msgID = msg.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	msg, err := s.store.GetMessage(ctx, msgID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, models.RoomEvent{Type: models.EventMessagePosted, RoomID: roomID, MessageID: msg.ID, SenderID: senderID})
	return msg, nil
}

func (s *Service) appendTo(ctx context.Context, tx storage.Storage, roomID string, senderID uint, content string) (*models.Message, error) {
	now := s.now()
	msg := &models.Message{
		ID:         models.NewMessageID(),
		ChatRoomID: roomID,
		SenderID:   senderID,
		Content:    content,
		Status:     models.MessageSent,
		Timestamp:  now,
		CreatedAt:  now,
	}
	if err := tx.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := tx.TouchRoom(ctx, roomID, now); err != nil {
		return nil, err
	}
	return msg, nil
}
