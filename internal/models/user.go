package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role values stored on User.Role.
const (
	RoleUser     = "user"
	RoleOperator = "operator"
)

// Profile holds the personal details captured at registration.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// User is an account of the platform. Regular users open offers on hotels,
// operators (staff) answer them from any chat room.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"not null" json:"username"`
	Firstname string `gorm:"not null" json:"firstname"`
	Lastname  string `gorm:"not null" json:"lastname"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	// Password is the bcrypt hash; it never leaves the server.
	Password    string                      `gorm:"not null" json:"-"`
	AvatarImage *string                     `json:"avatarImage"`
	Profile     datatypes.JSONType[Profile] `json:"profile"`
	IsEmployee  bool                        `gorm:"not null;default:false" json:"isEmployee"`
	Role        string                      `gorm:"not null;default:user;index" json:"role"`
	LastLoginAt *time.Time                  `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// IsOperator reports whether the user belongs to the staff pool.
func (u *User) IsOperator() bool {
	return u != nil && u.Role == RoleOperator
}
