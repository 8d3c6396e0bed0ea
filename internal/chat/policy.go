package chat

import (
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
)

// Operation names a chat action subject to the access policy.
type Operation string

const (
	OpOpenOffer    Operation = "open_offer"
	OpListOwnRooms Operation = "list_own_rooms"
	OpListAllRooms Operation = "list_all_rooms"
	OpViewRoom     Operation = "view_room"
	OpPostMessage  Operation = "post_message"
	OpCloseRoom    Operation = "close_room"
)

var operatorOnly = map[Operation]bool{
	OpListAllRooms: true,
	OpCloseRoom:    true,
}

// Authorize decides whether user may perform op at all. Room membership is
// checked separately by the operations that need it.
func Authorize(user *models.User, op Operation) error {
	if user == nil || user.ID == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrUnauthenticated)
	}
	if operatorOnly[op] && !user.IsOperator() {
		return fmt.Errorf("%s requires the operator role: %w", op, errs.ErrForbidden)
	}
	return nil
}
