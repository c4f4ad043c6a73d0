package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyExists      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("username may contain only letters, digits and @/./+/-/_")
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+\-]+$`)

// ValidUsername reports whether s is usable as a username and as a single
// path segment of the profile URLs.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	FirstName string    `gorm:"size:150"`
	LastName  string    `gorm:"size:150"`
	Username  string    `gorm:"size:150;uniqueIndex;not null"`
	Email     *string   `gorm:"size:254;uniqueIndex"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

// FullName falls back to the username when no name was given.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}
