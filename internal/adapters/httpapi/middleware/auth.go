package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"blogfeed/internal/config"
	userPort "blogfeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CookieName = "access_token"
	LoginPath  = "/auth/login/"

	ctxUserID   = "userID"
	ctxUsername = "username"
)

type TokenParser interface {
	ParseToken(token string) (*userPort.Identity, error)
}

// Authenticate resolves the bearer from the access_token cookie or an
// Authorization header. Requests without a valid token continue anonymously.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}
		id, err := parser.ParseToken(token)
		if err != nil {
			config.Logger.Debug("Rejected access token", zap.Error(err))
			c.Next()
			return
		}
		c.Set(ctxUserID, id.UserID)
		c.Set(ctxUsername, id.Username)
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page, keeping the
// requested path in next.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID is the authenticated user's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func Username(c *gin.Context) string {
	return c.GetString(ctxUsername)
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
