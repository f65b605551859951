package models

import "time"

// UserRole defines allowed roles in the system. The zero value is a
// regular user; "admin" is the only elevated role.
type UserRole string

const (
	RoleNone  UserRole = ""
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      UserRole  `json:"role"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
