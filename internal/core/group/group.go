package group

import (
	"errors"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("group not found")
	ErrAlreadyExists = errors.New("group slug already taken")
	ErrInvalid       = errors.New("group title and slug are required")
)

type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
