package httpapi

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"blogfeed/internal/adapters/httpapi/middleware"
	groupEntity "blogfeed/internal/core/group"
	userEntity "blogfeed/internal/core/user"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type FeedController struct {
	feeds    FeedUseCase
	cache    PageCache
	renderer *Renderer
}

func NewFeedController(feeds FeedUseCase, cache PageCache, renderer *Renderer) *FeedController {
	return &FeedController{feeds: feeds, cache: cache, renderer: renderer}
}

// Index serves the newest posts. The feed fragment is cached per resolved page
// number and shared by every viewer, so out-of-range pages reuse the last
// page's entry.
func (ctl *FeedController) Index(c *gin.Context) {
	number, err := ctl.feeds.IndexPageNumber(c.Request.Context(), c.Query("page"))
	if err != nil {
		fail(c, "Index feed failed", err)
		return
	}
	variant := strconv.Itoa(number)
	body, err := ctl.cache.Fetch(c.Request.Context(), variant, func(ctx context.Context) ([]byte, error) {
		feed, err := ctl.feeds.Index(ctx, variant)
		if err != nil {
			return nil, err
		}
		return ctl.renderer.Fragment("feed", feed)
	})
	if err != nil {
		fail(c, "Index feed failed", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", view(c, gin.H{"FeedHTML": template.HTML(body)}))
}

func (ctl *FeedController) Group(c *gin.Context) {
	feed, err := ctl.feeds.Group(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if errors.Is(err, groupEntity.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		fail(c, "Group feed failed", err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", view(c, gin.H{"Feed": feed}))
}

func (ctl *FeedController) Profile(c *gin.Context) {
	feed, err := ctl.feeds.Profile(c.Request.Context(), c.Param("username"), middleware.UserID(c), c.Query("page"))
	if errors.Is(err, userEntity.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		fail(c, "Profile feed failed", err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", view(c, gin.H{"Feed": feed}))
}

func (ctl *FeedController) Follow(c *gin.Context) {
	feed, err := ctl.feeds.Follow(c.Request.Context(), middleware.UserID(c), c.Query("page"))
	if err != nil {
		fail(c, "Follow feed failed", err)
		return
	}
	c.HTML(http.StatusOK, "follow.html", view(c, gin.H{"Feed": feed}))
}
