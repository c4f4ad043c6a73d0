package httpapi

import (
	"net/http"
	"strings"
	"time"

	"blogfeed/internal/adapters/httpapi/middleware"
	userEntity "blogfeed/internal/core/user"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", view(c, gin.H{
		"Form":   loginForm{},
		"Errors": fieldErrors{},
		"Next":   safeNext(c.Query("next")),
	}))
}

func (ctl *UserController) Login(c *gin.Context) {
	var form loginForm
	errs := bindForm(c, &form)
	next := safeNext(form.Next)
	if len(errs) > 0 {
		ctl.renderLogin(c, form, errs, next)
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, userEntity.ErrInvalidCredentials) {
		ctl.renderLogin(c, form, fieldErrors{"form": "Please enter a correct username and password."}, next)
		return
	}
	if err != nil {
		fail(c, "Login failed", err)
		return
	}

	maxAge := int(time.Until(time.Unix(res.ExpiresAt, 0)).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, res.Token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, next)
}

func (ctl *UserController) renderLogin(c *gin.Context, form loginForm, errs fieldErrors, next string) {
	form.Password = ""
	c.HTML(http.StatusBadRequest, "login.html", view(c, gin.H{
		"Form":   form,
		"Errors": errs,
		"Next":   next,
	}))
}

func (ctl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ctl *UserController) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", view(c, gin.H{
		"Form":   signupForm{},
		"Errors": fieldErrors{},
	}))
}

func (ctl *UserController) Signup(c *gin.Context) {
	var form signupForm
	if errs := bindForm(c, &form); len(errs) > 0 {
		ctl.renderSignup(c, form, errs)
		return
	}
	_, err := ctl.uc.RegisterUser(c.Request.Context(), form.FirstName, form.LastName, form.Username, form.Email, form.Password1)
	if errors.Is(err, userEntity.ErrAlreadyExists) {
		ctl.renderSignup(c, form, fieldErrors{"username": "A user with that username or email already exists."})
		return
	}
	if errors.Is(err, userEntity.ErrInvalidUsername) {
		ctl.renderSignup(c, form, fieldErrors{"username": "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."})
		return
	}
	if err != nil {
		fail(c, "Signup failed", err)
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (ctl *UserController) renderSignup(c *gin.Context, form signupForm, errs fieldErrors) {
	form.Password1, form.Password2 = "", ""
	c.HTML(http.StatusBadRequest, "signup.html", view(c, gin.H{
		"Form":   form,
		"Errors": errs,
	}))
}

// safeNext only allows local absolute paths as a post-login target.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
