package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yourusername/blogr/internal/interface/http"
	"github.com/yourusername/blogr/internal/interface/middleware"
)

// BlogModule wires the feed and the post lifecycle.
// Public: GET /, GET /:id. Everything mutating goes through RequireLogin.
type BlogModule struct {
	Handler *handlers.BlogHandler
}

func NewBlogModule(h *handlers.BlogHandler) *BlogModule {
	return &BlogModule{Handler: h}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Index)

	protected := rg.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/create", m.Handler.CreateForm)
		protected.POST("/create", m.Handler.Create)
		protected.GET("/:id/update", m.Handler.UpdateForm)
		protected.POST("/:id/update", m.Handler.Update)
		protected.POST("/:id/delete", m.Handler.Delete)
	}

	// Registered after the static routes so gin resolves /create before :id.
	rg.GET("/:id", m.Handler.Show)
}
