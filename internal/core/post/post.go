package post

import (
	"errors"
	"time"

	"blogfeed/internal/core/group"
	"blogfeed/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("only the author may change a post")
	ErrEmptyText = errors.New("post text is required")
)

type Post struct {
	ID        uuid.UUID    `gorm:"primary_key;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	PubDate   time.Time    `gorm:"not null;index"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image     string       `gorm:"size:255"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

// Filter narrows a post listing. Zero value lists every post.
type Filter struct {
	GroupID  *uuid.UUID
	AuthorID *uuid.UUID
	// AuthorIDs restricts to a set of authors when non-nil; an empty non-nil set
	// matches nothing.
	AuthorIDs []uuid.UUID
}
