package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/blogr/internal/interface/middleware"
	"github.com/yourusername/blogr/pkg/helpers"
)

// render draws an HTML page, injecting the per-request identity and any
// pending flash messages so every template can show the navbar state and
// queued notices.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		if u, logged := middleware.IdentityFrom(c); logged {
			data["User"] = u
		}
	}
	data["Flashes"] = helpers.Flashes(c)
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context, msg string) {
	render(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": msg,
	})
}

func renderForbidden(c *gin.Context) {
	render(c, http.StatusForbidden, "error.html", gin.H{
		"Status":  http.StatusForbidden,
		"Message": "You are not allowed to modify this post.",
	})
}
