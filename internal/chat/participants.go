package chat

import (
	"context"
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
)

// Seed enrolls the requester and every current operator in the room. The
// operator list is read from tx on each call.
func (s *Service) Seed(ctx context.Context, tx storage.Storage, roomID string, requesterID uint) error {
	operatorIDs, err := tx.ListUserIDsByRole(ctx, models.RoleOperator)
	if err != nil {
		return err
	}
	return tx.AddParticipants(ctx, roomID, dedupe(append([]uint{requesterID}, operatorIDs...)))
}

// EnsureParticipant reports whether the user may write to the room, enrolling
// operators that are not participants yet. Regular users are never enrolled.
func (s *Service) EnsureParticipant(ctx context.Context, roomID string, userID uint, role string) (bool, error) {
	ok, err := s.store.IsParticipant(ctx, roomID, userID)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	if role != models.RoleOperator {
		return false, nil
	}

	exists, err := s.store.RoomExists(ctx, roomID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("chat room %s: %w", roomID, errs.ErrNotFound)
	}
	if err := s.store.AddParticipants(ctx, roomID, []uint{userID}); err != nil {
		return false, err
	}
	return true, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
