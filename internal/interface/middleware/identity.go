package middleware

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/blogr/internal/domain/entity"
)

// SessionUserKey is the session field holding the logged-in user's id.
const SessionUserKey = "user_id"

// identityKey is the Gin context key carrying the resolved identity for the
// duration of one request.
const identityKey = "identity"

// UserResolver resolves a stored user id back to its record.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}

// CurrentUser resolves the request's session into an identity before any
// handler runs. No session, no user id, or an id that no longer resolves all
// mean the request proceeds as anonymous; only a successful lookup attaches
// the full user record to the request context.
func CurrentUser(users UserResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		v := session.Get(SessionUserKey)
		if v == nil {
			c.Next()
			return
		}
		id, ok := v.(int64)
		if !ok {
			c.Next()
			return
		}
		u, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			// Stale session: treat as anonymous rather than failing the request.
			if logger != nil {
				logger.WithField("user_id", id).Debug("session user no longer resolves")
			}
			c.Next()
			return
		}
		c.Set(identityKey, u)
		c.Next()
	}
}

// IdentityFrom returns the identity resolved for this request, or false when
// the request is anonymous. Handlers read identity only through this
// accessor; nothing outlives the request.
func IdentityFrom(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
