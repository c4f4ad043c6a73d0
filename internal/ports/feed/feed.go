package feed

import (
	"blogfeed/internal/core/feed"
	"blogfeed/internal/core/paginator"
	groupPort "blogfeed/internal/ports/group"
	postPort "blogfeed/internal/ports/post"
	userPort "blogfeed/internal/ports/user"
)

// FeedDTO is one page of a listing view.
type FeedDTO struct {
	Kind  feed.Kind           `json:"kind"`
	Posts []*postPort.PostDTO `json:"posts"`
	Page  paginator.Page      `json:"page"`
}

type GroupFeedDTO struct {
	FeedDTO
	Group *groupPort.GroupDTO `json:"group"`
}

type ProfileFeedDTO struct {
	FeedDTO
	Author    *userPort.UserDTO `json:"author"`
	Followers int64             `json:"followers"`
	Following int64             `json:"following"`
	// IsFollowing reports whether the viewer follows Author.
	IsFollowing bool `json:"is_following"`
	// CanFollow is false for anonymous viewers and for the author themself.
	CanFollow bool `json:"can_follow"`
}

// PostCount is the author's total number of posts.
func (p *ProfileFeedDTO) PostCount() int {
	return p.Page.Count
}
