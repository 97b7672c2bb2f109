package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/blogr/internal/application"
	"github.com/yourusername/blogr/internal/interface/middleware"
	"github.com/yourusername/blogr/pkg/helpers"
	"github.com/yourusername/blogr/pkg/validation"
)

// AuthHandler serves registration, login and logout. Login establishes the
// session identity; logout clears it unconditionally.
type AuthHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(users *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

type credentialsForm struct {
	Username string `form:"username" binding:"max=64"`
	Password string `form:"password" binding:"max=128"`
}

// RegisterForm GET /auth/register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Username": ""})
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		flashDetails(c, validation.ToDetails(err))
		render(c, http.StatusOK, "register.html", gin.H{"Username": form.Username})
		return
	}

	_, err := h.Users.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		helpers.Flash(c, registerMessage(err, form.Username))
		render(c, http.StatusOK, "register.html", gin.H{"Username": form.Username})
		return
	}

	c.Redirect(http.StatusSeeOther, "/auth/login")
}

// LoginForm GET /auth/login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Username": ""})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		flashDetails(c, validation.ToDetails(err))
		render(c, http.StatusOK, "login.html", gin.H{"Username": form.Username})
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithFields(logrus.Fields{
				"username":   form.Username,
				"ip":         middleware.ClientIP(c),
				"request_id": c.GetString("request_id"),
			}).Info("login failed")
		}
		helpers.Flash(c, loginMessage(err))
		render(c, http.StatusOK, "login.html", gin.H{"Username": form.Username})
		return
	}

	// One identity per session: drop whatever was there before binding the new one.
	session := sessions.Default(c)
	session.Clear()
	session.Set(middleware.SessionUserKey, u.ID)
	if err := session.Save(); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Could not save your session.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Logout GET /auth/logout — idempotent, safe with no active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func registerMessage(err error, username string) string {
	switch {
	case errors.Is(err, application.ErrUsernameRequired):
		return "Username is required."
	case errors.Is(err, application.ErrPasswordRequired):
		return "Password is required."
	case errors.Is(err, application.ErrUsernameTaken):
		return fmt.Sprintf("User %s is already registered.", username)
	default:
		return "Registration failed."
	}
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, application.ErrIncorrectUsername):
		return "Incorrect username."
	case errors.Is(err, application.ErrIncorrectPassword):
		return "Incorrect password."
	default:
		return "Login failed."
	}
}

func flashDetails(c *gin.Context, details map[string]string) {
	for field, msg := range details {
		helpers.Flash(c, fmt.Sprintf("Field %s %s.", field, msg))
	}
}
