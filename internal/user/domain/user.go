package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a user does not exist
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already exists")
)

// User is the placeholder identity favorites are recorded against
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never exposed
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}
