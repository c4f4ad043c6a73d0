package httpapi

import (
	"net/http"
	"net/url"

	"blogfeed/internal/adapters/httpapi/middleware"
	commentEntity "blogfeed/internal/core/comment"
	groupEntity "blogfeed/internal/core/group"
	postEntity "blogfeed/internal/core/post"
	postPort "blogfeed/internal/ports/post"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type PostController struct {
	posts    PostUseCase
	comments CommentUseCase
	groups   GroupUseCase
}

func NewPostController(posts PostUseCase, comments CommentUseCase, groups GroupUseCase) *PostController {
	return &PostController{posts: posts, comments: comments, groups: groups}
}

func (ctl *PostController) Detail(c *gin.Context) {
	p, err := ctl.posts.GetPost(c.Request.Context(), c.Param("post_id"))
	if errors.Is(err, postEntity.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		fail(c, "Load post failed", err)
		return
	}
	comments, err := ctl.comments.ListByPost(c.Request.Context(), p.ID)
	if err != nil {
		fail(c, "Load comments failed", err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", view(c, gin.H{
		"Post":     p,
		"Comments": comments,
		"IsAuthor": p.AuthorID == middleware.UserID(c),
	}))
}

func (ctl *PostController) CreateForm(c *gin.Context) {
	ctl.renderForm(c, http.StatusOK, postForm{}, fieldErrors{}, false)
}

func (ctl *PostController) Create(c *gin.Context) {
	var form postForm
	if errs := bindForm(c, &form); len(errs) > 0 {
		ctl.renderForm(c, http.StatusBadRequest, form, errs, false)
		return
	}
	_, err := ctl.posts.CreatePost(c.Request.Context(), middleware.UserID(c), form.Text, form.Group)
	if errs := formErrorsFor(err); errs != nil {
		ctl.renderForm(c, http.StatusBadRequest, form, errs, false)
		return
	}
	if err != nil {
		fail(c, "Create post failed", err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(middleware.Username(c)))
}

func (ctl *PostController) EditForm(c *gin.Context) {
	p, ok := ctl.ownPost(c)
	if !ok {
		return
	}
	form := postForm{Text: p.Text}
	if p.Group != nil {
		form.Group = p.Group.Slug
	}
	ctl.renderForm(c, http.StatusOK, form, fieldErrors{}, true)
}

func (ctl *PostController) Edit(c *gin.Context) {
	id := c.Param("post_id")
	if _, ok := ctl.ownPost(c); !ok {
		return
	}
	var form postForm
	if errs := bindForm(c, &form); len(errs) > 0 {
		ctl.renderForm(c, http.StatusBadRequest, form, errs, true)
		return
	}
	_, err := ctl.posts.EditPost(c.Request.Context(), id, middleware.UserID(c), form.Text, form.Group)
	if errors.Is(err, postEntity.ErrForbidden) {
		c.Redirect(http.StatusFound, detailURL(id))
		return
	}
	if errs := formErrorsFor(err); errs != nil {
		ctl.renderForm(c, http.StatusBadRequest, form, errs, true)
		return
	}
	if err != nil {
		fail(c, "Edit post failed", err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(id))
}

// AddComment posts a comment; an empty comment is dropped silently.
func (ctl *PostController) AddComment(c *gin.Context) {
	id := c.Param("post_id")
	var form commentForm
	if errs := bindForm(c, &form); len(errs) > 0 {
		c.Redirect(http.StatusFound, detailURL(id))
		return
	}
	_, err := ctl.comments.AddComment(c.Request.Context(), id, middleware.UserID(c), form.Text)
	switch {
	case errors.Is(err, postEntity.ErrNotFound):
		notFound(c)
	case errors.Is(err, commentEntity.ErrEmptyText):
		c.Redirect(http.StatusFound, detailURL(id))
	case err != nil:
		fail(c, "Add comment failed", err)
	default:
		c.Redirect(http.StatusFound, detailURL(id))
	}
}

// ownPost loads the post and checks the viewer wrote it. It writes the
// response itself when it returns false.
func (ctl *PostController) ownPost(c *gin.Context) (*postPort.PostDTO, bool) {
	id := c.Param("post_id")
	p, err := ctl.posts.GetPost(c.Request.Context(), id)
	if errors.Is(err, postEntity.ErrNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		fail(c, "Load post failed", err)
		return nil, false
	}
	if p.AuthorID != middleware.UserID(c) {
		c.Redirect(http.StatusFound, detailURL(id))
		return nil, false
	}
	return p, true
}

func (ctl *PostController) renderForm(c *gin.Context, status int, form postForm, errs fieldErrors, isEdit bool) {
	groups, err := ctl.groups.ListGroups(c.Request.Context())
	if err != nil {
		fail(c, "List groups failed", err)
		return
	}
	c.HTML(status, "create_post.html", view(c, gin.H{
		"Form":   form,
		"Errors": errs,
		"Groups": groups,
		"IsEdit": isEdit,
	}))
}

// formErrorsFor maps service validation errors onto form fields.
func formErrorsFor(err error) fieldErrors {
	switch {
	case errors.Is(err, postEntity.ErrEmptyText):
		return fieldErrors{"text": "This field is required."}
	case errors.Is(err, groupEntity.ErrNotFound):
		return fieldErrors{"group": "Select a valid choice."}
	}
	return nil
}

func detailURL(id string) string {
	return "/posts/" + id + "/"
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}
