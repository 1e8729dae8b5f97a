package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/model"
	"voice-task-manager/pkg/response"
)

const (
	// UserIDHeader names the task owner. Authentication happens upstream.
	UserIDHeader   = "X-User-ID"
	UsernameHeader = "X-Username"

	scopeKey = "scope"
)

// Scope requires an owner id header and stores the caller scope on the context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(UserIDHeader)),
			Username: strings.TrimSpace(c.GetHeader(UsernameHeader)),
		}
		if !sc.Valid() {
			m.l.Warnf(c.Request.Context(), "middleware.Scope: missing %s header on %s", UserIDHeader, c.FullPath())
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
