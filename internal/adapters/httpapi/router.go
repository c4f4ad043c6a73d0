package httpapi

import (
	"context"
	"net/http"

	"blogfeed/internal/adapters/httpapi/middleware"
	"blogfeed/internal/config"
	commentPort "blogfeed/internal/ports/comment"
	feedPort "blogfeed/internal/ports/feed"
	groupPort "blogfeed/internal/ports/group"
	postPort "blogfeed/internal/ports/post"
	userPort "blogfeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Inbound ports consumed by the controllers.

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error)
	ParseToken(token string) (*userPort.Identity, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, text, groupSlug string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, id string) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, id, editorID, text, groupSlug string) (*postPort.PostDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
	ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, userID, authorID string) error
	UnfollowUser(ctx context.Context, userID, authorID string) error
}

type FeedUseCase interface {
	Index(ctx context.Context, rawPage string) (*feedPort.FeedDTO, error)
	IndexPageNumber(ctx context.Context, rawPage string) (int, error)
	Group(ctx context.Context, slug, rawPage string) (*feedPort.GroupFeedDTO, error)
	Profile(ctx context.Context, username, viewerID, rawPage string) (*feedPort.ProfileFeedDTO, error)
	Follow(ctx context.Context, userID, rawPage string) (*feedPort.FeedDTO, error)
}

// PageCache serves the rendered index feed.
type PageCache interface {
	Fetch(ctx context.Context, variant string, render func(ctx context.Context) ([]byte, error)) ([]byte, error)
}

type UseCases struct {
	Users     UserUseCase
	Posts     PostUseCase
	Comments  CommentUseCase
	Groups    GroupUseCase
	Followers FollowerUseCase
	Feeds     FeedUseCase
	IndexPage PageCache
}

func SetupRoutes(uc UseCases, renderer *Renderer) *gin.Engine {
	r := gin.New()
	r.HTMLRender = renderer
	r.RedirectTrailingSlash = true
	r.Use(middleware.AccessLog())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		config.Logger.Error("Panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		serverError(c)
	}))
	r.Use(middleware.Authenticate(uc.Users))

	fc := NewFeedController(uc.Feeds, uc.IndexPage, renderer)
	pc := NewPostController(uc.Posts, uc.Comments, uc.Groups)
	flc := NewFollowerController(uc.Followers, uc.Users)
	ac := NewUserController(uc.Users)

	r.GET("/", fc.Index)
	r.GET("/group/:slug/", fc.Group)
	r.GET("/profile/:username/", fc.Profile)
	r.GET("/posts/:post_id/", pc.Detail)

	auth := r.Group("/", middleware.LoginRequired())
	auth.GET("/create/", pc.CreateForm)
	auth.POST("/create/", pc.Create)
	auth.GET("/posts/:post_id/edit/", pc.EditForm)
	auth.POST("/posts/:post_id/edit/", pc.Edit)
	auth.POST("/posts/:post_id/comment/", pc.AddComment)
	auth.GET("/follow/", fc.Follow)
	// Follow and unfollow are plain GET links from the profile page. Both are
	// idempotent and require a logged-in viewer.
	auth.GET("/profile/:username/follow/", flc.FollowUser)
	auth.GET("/profile/:username/unfollow/", flc.UnfollowUser)

	r.GET("/auth/signup/", ac.SignupForm)
	r.POST("/auth/signup/", ac.Signup)
	r.GET("/auth/login/", ac.LoginForm)
	r.POST("/auth/login/", ac.Login)
	r.GET("/auth/logout/", ac.Logout)

	r.NoRoute(notFound)
	return r
}

// view adds the viewer to template data.
func view(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Viewer"] = middleware.Username(c)
	return data
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", view(c, gin.H{"Path": c.Request.URL.Path}))
}

func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", view(c, nil))
	c.Abort()
}

// fail logs err and renders the 500 page.
func fail(c *gin.Context, msg string, err error) {
	config.Logger.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	serverError(c)
}
