package model

import "time"

type Role string

const (
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

func (r Role) IsValid() bool {
	return r == RoleTutor || r == RoleStudent
}

type User struct {
	ID         int64     `json:"id"`
	TelegramID *int64    `json:"telegram_id,omitempty"` // nil if the user has no linked chat
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	APIToken   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// DisplayName returns "First Last", falling back to the username.
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		name = u.Username
	}
	return name
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Username   string `json:"username" validate:"required,max=64"`
	FirstName  string `json:"first_name" validate:"max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Role       Role   `json:"role" validate:"required,oneof=tutor student"`
	TelegramID *int64 `json:"telegram_id"`
}
