package comment

import (
	"errors"
	"time"

	"blogfeed/internal/core/post"
	"blogfeed/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrEmptyText = errors.New("comment text is required")

type Comment struct {
	ID       uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Post     post.Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uuid.UUID `gorm:"type:char(36);not null;index"`
	Author   user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"not null"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
