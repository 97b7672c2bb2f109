package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/blogr/internal/domain/entity"
	repo "github.com/yourusername/blogr/internal/domain/repository"
	"github.com/yourusername/blogr/pkg/helpers"
)

// UserService is the credential store: it owns registration and password
// verification. Plaintext passwords never leave this layer.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// Register validates the input, hashes the password and inserts the user.
// Uniqueness is enforced by the insert itself, so two concurrent
// registrations of the same name cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" {
		return 0, ErrUsernameRequired
	}
	if password == "" {
		return 0, ErrPasswordRequired
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return 0, err
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u.ID, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. The two failure cases are reported separately on purpose; the
// original application distinguishes them in its login messages.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrIncorrectUsername
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}

// GetByID resolves a stored user id back to its record. The session resolver
// calls this once per request carrying a session.
func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
