package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/blogr/internal/application"
	"github.com/yourusername/blogr/internal/domain/entity"
	"github.com/yourusername/blogr/internal/interface/middleware"
	"github.com/yourusername/blogr/pkg/helpers"
	"github.com/yourusername/blogr/pkg/validation"
)

// BlogHandler serves the feed and the post lifecycle. Mutating routes sit
// behind the login guard; ownership is checked per post on top of that.
type BlogHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewBlogHandler(posts *application.PostService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Posts: posts, Logger: logger}
}

type postForm struct {
	Title string `form:"title" binding:"max=255"`
	Body  string `form:"body" binding:"max=10000"`
}

// Index GET / — the reverse-chronological feed, readable anonymously.
func (h *BlogHandler) Index(c *gin.Context) {
	posts, err := h.Posts.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("listing posts failed")
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Could not load posts.",
		})
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

// Show GET /:id — a single post, readable anonymously. The ownership check
// runs with enforcement off: reading never requires authorship.
func (h *BlogHandler) Show(c *gin.Context) {
	post, ok := h.fetch(c)
	if !ok {
		return
	}
	identity, _ := middleware.IdentityFrom(c)
	if err := h.Posts.Authorize(post, identity, false); err != nil {
		renderForbidden(c)
		return
	}
	render(c, http.StatusOK, "post.html", gin.H{"Post": post})
}

// CreateForm GET /create
func (h *BlogHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "create.html", gin.H{"Title": "", "Body": ""})
}

// Create POST /create
func (h *BlogHandler) Create(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		flashDetails(c, validation.ToDetails(err))
		render(c, http.StatusOK, "create.html", gin.H{"Title": form.Title, "Body": form.Body})
		return
	}

	if _, err := h.Posts.Create(c.Request.Context(), form.Title, form.Body, identity.ID); err != nil {
		helpers.Flash(c, postMessage(err))
		render(c, http.StatusOK, "create.html", gin.H{"Title": form.Title, "Body": form.Body})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateForm GET /:id/update
func (h *BlogHandler) UpdateForm(c *gin.Context) {
	post, ok := h.fetchOwned(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "update.html", gin.H{"Post": post})
}

// Update POST /:id/update
func (h *BlogHandler) Update(c *gin.Context) {
	post, ok := h.fetchOwned(c)
	if !ok {
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		flashDetails(c, validation.ToDetails(err))
		render(c, http.StatusOK, "update.html", gin.H{"Post": post})
		return
	}

	if err := h.Posts.Update(c.Request.Context(), post.ID, form.Title, form.Body); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			renderNotFound(c, "Post doesn't exist.")
			return
		}
		helpers.Flash(c, postMessage(err))
		render(c, http.StatusOK, "update.html", gin.H{"Post": post})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Delete POST /:id/delete
func (h *BlogHandler) Delete(c *gin.Context) {
	post, ok := h.fetchOwned(c)
	if !ok {
		return
	}
	if err := h.Posts.Delete(c.Request.Context(), post.ID); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			renderNotFound(c, "Post doesn't exist.")
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Could not delete the post.",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// fetch loads the post named by the :id route parameter, answering 404 when
// the id is malformed or unknown.
func (h *BlogHandler) fetch(c *gin.Context) (*entity.Post, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c, "Post doesn't exist.")
		return nil, false
	}
	post, err := h.Posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			renderNotFound(c, "Post doesn't exist.")
		} else {
			render(c, http.StatusInternalServerError, "error.html", gin.H{
				"Status":  http.StatusInternalServerError,
				"Message": "Could not load the post.",
			})
		}
		return nil, false
	}
	return post, true
}

// fetchOwned is fetch plus the ownership check: 404 before 403, and the
// guard upstream already excluded anonymous callers.
func (h *BlogHandler) fetchOwned(c *gin.Context) (*entity.Post, bool) {
	post, ok := h.fetch(c)
	if !ok {
		return nil, false
	}
	identity, _ := middleware.IdentityFrom(c)
	if err := h.Posts.Authorize(post, identity, true); err != nil {
		renderForbidden(c)
		return nil, false
	}
	return post, true
}

func postMessage(err error) string {
	if errors.Is(err, application.ErrTitleRequired) {
		return "Title is required."
	}
	return "Could not save the post."
}
