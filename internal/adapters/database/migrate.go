package database

import (
	"blogfeed/internal/core/comment"
	"blogfeed/internal/core/follower"
	"blogfeed/internal/core/group"
	"blogfeed/internal/core/post"
	"blogfeed/internal/core/user"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema. Order matters: referenced tables first.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follower{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
