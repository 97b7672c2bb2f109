package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourusername/blogr/config"
	"github.com/yourusername/blogr/internal/application"
	pginfra "github.com/yourusername/blogr/internal/infrastructure/postgres"
	"github.com/yourusername/blogr/pkg/helpers"
)

// seed inserts a demo account and a welcome post for local development.
// Running it twice is harmless; the existing account is reused.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := application.NewUserService(pginfra.NewUserRepository(pool), logger)
	posts := application.NewPostService(pginfra.NewPostRepository(pool))

	authorID, err := users.Register(ctx, "demo", "demo")
	if err != nil {
		if !errors.Is(err, application.ErrUsernameTaken) {
			log.Fatalf("seeding user failed: %v", err)
		}
		u, err := users.Authenticate(ctx, "demo", "demo")
		if err != nil {
			log.Fatalf("demo user exists with a different password: %v", err)
		}
		authorID = u.ID
	}

	if _, err := posts.Create(ctx, "Welcome to blogr", "This post was created by the seed command.", authorID); err != nil {
		log.Fatalf("seeding post failed: %v", err)
	}

	logger.WithField("user_id", authorID).Info("seed data in place")
}
