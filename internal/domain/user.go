package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	IsVerified     bool      `json:"is_verified"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserSummary is the profile slice resolved into rosters.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

type SignupInput struct {
	Name           string
	Email          string
	Password       string
	TelegramChatID *int64
}

// UpdateUserInput carries profile edits. Role and IsVerified are applied
// only when the caller is an admin.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Role       *Role
	IsVerified *bool
}

// Profile is the user together with the events they organize and attend.
type Profile struct {
	User       User     `json:"user"`
	Organized  []*Event `json:"organized_events"`
	Registered []*Event `json:"registered_events"`
}
