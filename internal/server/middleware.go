package server

import (
	"strings"
	"time"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-ID"
	usernameHeader  = "X-Username"
	usernameCookie  = "username"
)

// RequestIDMiddleware tags each request with an ID, reusing a valid incoming one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if !utils.ValidID(id) {
		id = utils.GenerateID()
	}
	c.Set(utils.RequestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(utils.RequestIDKey),
		"viewer":     helpers.ViewerFrom(c).Username,
	})
}

// ViewerMiddleware resolves who is calling. The username comes from the
// session cookie, falling back to the X-Username header; the bearer token is
// attached to the request context for the upstream client.
//
// The token is opaque here and the username is taken on trust: clients must
// send the name the token was issued to. Only the derived view flags (can_bid,
// can_message, can_delete) rely on it. Every write goes upstream with the
// token, and the backend authorizes it against the token's own subject.
func ViewerMiddleware(c *gin.Context) {
	viewer := model.Viewer{}

	if name, err := c.Cookie(usernameCookie); err == nil {
		viewer.Username = strings.TrimSpace(name)
	}
	if viewer.Username == "" {
		viewer.Username = strings.TrimSpace(c.GetHeader(usernameHeader))
	}

	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		viewer.Token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if viewer.Token != "" {
		c.Request = c.Request.WithContext(repository.WithToken(c.Request.Context(), viewer.Token))
	}

	c.Set(helpers.ViewerKey, viewer)
	c.Next()
}
