package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/blogr/internal/domain/entity"
	"github.com/yourusername/blogr/internal/domain/repository"
)

// openTestPool connects to the database named by TEST_POSTGRES_DSN and makes
// sure the schema is current. Without the variable the integration tests are
// skipped, so the rest of the suite runs anywhere.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping Postgres integration tests")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../db/migrations", "postgres", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrations: %v", err)
	}

	pool, err := NewPool(context.Background(), dsn, 4, 1, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// seedUser inserts a user with a unique name and schedules cleanup of the
// user and everything they authored.
func seedUser(t *testing.T, pool *pgxpool.Pool) *entity.User {
	t.Helper()

	users := NewUserRepository(pool)
	u := &entity.User{
		Username:     fmt.Sprintf("itest_%d", time.Now().UnixNano()),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, users.Create(context.Background(), u))
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM posts WHERE author_id = $1", u.ID)
		_, _ = pool.Exec(context.Background(), "DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

func TestUserRepository(t *testing.T) {
	pool := openTestPool(t)
	users := NewUserRepository(pool)
	ctx := context.Background()

	u := seedUser(t, pool)
	require.NotZero(t, u.ID)

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := &entity.User{Username: u.Username, PasswordHash: "other"}
		err := users.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("lookup by id and username", func(t *testing.T) {
		byID, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Username, byID.Username)

		byName, err := users.GetByUsername(ctx, u.Username)
		require.NoError(t, err)
		assert.Equal(t, u.ID, byName.ID)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := users.GetByID(ctx, -1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = users.GetByUsername(ctx, "itest_no_such_user")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPostRepositoryCRUD(t *testing.T) {
	pool := openTestPool(t)
	posts := NewPostRepository(pool)
	ctx := context.Background()

	author := seedUser(t, pool)

	p := &entity.Post{Title: "integration title", Body: "integration body", AuthorID: author.ID}
	require.NoError(t, posts.Create(ctx, p))
	require.NotZero(t, p.ID)
	require.False(t, p.Created.IsZero(), "insert must return the assigned timestamp")

	t.Run("get joins author name", func(t *testing.T) {
		got, err := posts.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "integration title", got.Title)
		assert.Equal(t, author.Username, got.AuthorName)
	})

	t.Run("update rewrites title and body", func(t *testing.T) {
		require.NoError(t, posts.Update(ctx, p.ID, "edited", "edited body"))
		got, err := posts.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Title)
		assert.Equal(t, "edited body", got.Body)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := posts.GetByID(ctx, -1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, posts.Update(ctx, -1, "x", "y"), repository.ErrNotFound)
		assert.ErrorIs(t, posts.Delete(ctx, -1), repository.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, posts.Delete(ctx, p.ID))
		_, err := posts.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPostRepositoryListOrdering(t *testing.T) {
	pool := openTestPool(t)
	posts := NewPostRepository(pool)
	ctx := context.Background()

	author := seedUser(t, pool)

	// Three posts: one older, two sharing the newest timestamp. The shared
	// pair must come back in insertion order.
	base := time.Now().UTC().Truncate(time.Second)
	for _, tc := range []struct {
		title   string
		created time.Time
	}{
		{"older", base.Add(-time.Hour)},
		{"tied-a", base},
		{"tied-b", base},
	} {
		p := &entity.Post{Title: tc.title, Body: "", AuthorID: author.ID}
		require.NoError(t, posts.Create(ctx, p))
		_, err := pool.Exec(ctx, "UPDATE posts SET created = $1 WHERE id = $2", tc.created, p.ID)
		require.NoError(t, err)
	}

	all, err := posts.List(ctx)
	require.NoError(t, err)

	// The table may hold rows from other tests; compare only ours.
	mine := make([]string, 0, 3)
	for _, p := range all {
		if p.AuthorID == author.ID {
			mine = append(mine, p.Title)
			assert.Equal(t, author.Username, p.AuthorName)
		}
	}
	assert.Equal(t, []string{"tied-a", "tied-b", "older"}, mine)
}
