package handlers

import (
	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/config"
	"travel-planner-api/internal/planner"
	"travel-planner-api/internal/session"
	"travel-planner-api/internal/store"
)

// Handlers carries the injected dependencies for every route handler.
type Handlers struct {
	Config   *config.Config
	Users    *store.UserStore
	Plans    *store.PlanStore
	Sessions *session.Manager
	Planner  *planner.Planner
}

// setSessionCookie issues a browser-session cookie holding the opaque token.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(session.CookieName, token, 0, "/", "", false, true)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}

// currentUserID reads the user id placed on the context by the auth
// middleware. The bool is false only if the middleware did not run.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
