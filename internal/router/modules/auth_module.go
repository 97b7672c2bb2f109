package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yourusername/blogr/internal/interface/http"
)

// AuthModule wires the registration, login and logout routes.
// All of them are reachable anonymously; login is what creates identity.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.GET("/register", m.Handler.RegisterForm)
		auth.POST("/register", m.Handler.Register)
		auth.GET("/login", m.Handler.LoginForm)
		auth.POST("/login", m.Handler.Login)
		auth.GET("/logout", m.Handler.Logout)
	}
}
