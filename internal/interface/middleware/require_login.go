package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireLogin guards routes that need a resolved identity. Anonymous
// requests are redirected to the login page and the wrapped handlers never
// run. Every mutating post route goes through this.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			c.Redirect(http.StatusSeeOther, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
