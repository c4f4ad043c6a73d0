package httpapi

import (
	"context"
	"net/http"

	"blogfeed/internal/adapters/httpapi/middleware"
	followerEntity "blogfeed/internal/core/follower"
	userEntity "blogfeed/internal/core/user"
	userPort "blogfeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type userLookup interface {
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type FollowerController struct {
	fc    FollowerUseCase
	users userLookup
}

func NewFollowerController(fc FollowerUseCase, users userLookup) *FollowerController {
	return &FollowerController{fc: fc, users: users}
}

func (ctl *FollowerController) FollowUser(c *gin.Context) {
	ctl.toggle(c, ctl.fc.FollowUser)
}

func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	ctl.toggle(c, ctl.fc.UnfollowUser)
}

// toggle resolves the author by username, applies op and returns to their
// profile. Following yourself changes nothing.
func (ctl *FollowerController) toggle(c *gin.Context, op func(ctx context.Context, userID, authorID string) error) {
	username := c.Param("username")
	author, err := ctl.users.GetByUsername(c.Request.Context(), username)
	if errors.Is(err, userEntity.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		fail(c, "Load author failed", err)
		return
	}

	err = op(c.Request.Context(), middleware.UserID(c), author.ID)
	if err != nil && !errors.Is(err, followerEntity.ErrSelfFollow) {
		fail(c, "Follow change failed", err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}
