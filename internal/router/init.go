package router

import (
	"github.com/yourusername/blogr/internal/application"
	"github.com/yourusername/blogr/internal/container"
	pginfra "github.com/yourusername/blogr/internal/infrastructure/postgres"
	handlers "github.com/yourusername/blogr/internal/interface/http"
	"github.com/yourusername/blogr/internal/router/modules"
)

// InitModules builds the repositories, services and handlers from the
// container singletons and registers every feature module with the registry.
// Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := application.NewUserService(pginfra.NewUserRepository(pool), logger)
	posts := application.NewPostService(pginfra.NewPostRepository(pool))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(users, logger)))
	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(posts, logger)))
}

// Users rebuilds the user service for callers outside the registry, such as
// the session resolver middleware installed ahead of routing.
func Users() *application.UserService {
	return application.NewUserService(pginfra.NewUserRepository(container.GetPGPool()), container.GetLogger())
}
