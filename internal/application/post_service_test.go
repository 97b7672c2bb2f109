package application

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/blogr/internal/domain/entity"
	repo "github.com/yourusername/blogr/internal/domain/repository"
)

// fakePostRepo mimics the real store: serial ids, server-assigned creation
// times (overridable per test), newest-first listing with insertion-order ties.
type fakePostRepo struct {
	posts  []entity.Post
	nextID int64
	now    func() time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{now: time.Now}
}

func (f *fakePostRepo) Create(ctx context.Context, p *entity.Post) error {
	f.nextID++
	p.ID = f.nextID
	p.Created = f.now()
	f.posts = append(f.posts, *p)
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakePostRepo) List(ctx context.Context) ([]entity.Post, error) {
	out := append([]entity.Post(nil), f.posts...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.After(out[j].Created)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id int64, title, body string) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].Title = title
			f.posts[i].Body = body
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func TestCreateRequiresTitle(t *testing.T) {
	store := newFakePostRepo()
	svc := NewPostService(store)

	_, err := svc.Create(context.Background(), "", "some body", 1)
	require.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, store.posts, "post count must be unchanged")
}

func TestCreateAllowsEmptyBody(t *testing.T) {
	store := newFakePostRepo()
	svc := NewPostService(store)

	id, err := svc.Create(context.Background(), "title only", "", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(7), store.posts[0].AuthorID)
}

func TestGetUnknownPost(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdate(t *testing.T) {
	store := newFakePostRepo()
	svc := NewPostService(store)

	id, err := svc.Create(context.Background(), "before", "body", 1)
	require.NoError(t, err)

	t.Run("empty title rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.Update(context.Background(), id, "", "body"), ErrTitleRequired)
	})

	t.Run("missing id", func(t *testing.T) {
		require.ErrorIs(t, svc.Update(context.Background(), id+1, "after", "body"), ErrPostNotFound)
	})

	t.Run("author's edit lands", func(t *testing.T) {
		require.NoError(t, svc.Update(context.Background(), id, "after", "new body"))
		p, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "after", p.Title)
		assert.Equal(t, "new body", p.Body)
	})
}

func TestDelete(t *testing.T) {
	store := newFakePostRepo()
	svc := NewPostService(store)

	id, err := svc.Create(context.Background(), "doomed", "", 1)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), id+1), ErrPostNotFound)
	require.NoError(t, svc.Delete(context.Background(), id))
	_, err = svc.Get(context.Background(), id)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestAuthorize(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	post := &entity.Post{ID: 1, AuthorID: 1}
	author := &entity.User{ID: 1, Username: "alice"}
	other := &entity.User{ID: 2, Username: "bob"}

	t.Run("author may mutate", func(t *testing.T) {
		require.NoError(t, svc.Authorize(post, author, true))
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		require.ErrorIs(t, svc.Authorize(post, other, true), ErrForbidden)
	})

	t.Run("read-only path skips ownership", func(t *testing.T) {
		require.NoError(t, svc.Authorize(post, other, false))
		require.NoError(t, svc.Authorize(post, nil, false))
	})
}

func TestListOrdering(t *testing.T) {
	store := newFakePostRepo()
	svc := NewPostService(store)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// Insertion order with created = 1, 2, 2, 3.
	stamps := []time.Duration{1, 2, 2, 3}
	titles := []string{"one", "two-a", "two-b", "three"}
	for i := range stamps {
		stamp := base.Add(stamps[i] * time.Second)
		store.now = func() time.Time { return stamp }
		_, err := svc.Create(context.Background(), titles[i], "", 1)
		require.NoError(t, err)
	}

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 4)

	var got []string
	for _, p := range posts {
		got = append(got, p.Title)
	}
	// Newest first; the two equal timestamps keep insertion order.
	assert.Equal(t, []string{"three", "two-a", "two-b", "one"}, got)
}
