package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SessionRepo {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSessionRepo(db)
}

func TestSessionRepo_GetWithoutSession(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionRepo_PutGetClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := &Session{
		Token: "tok-abc",
		User: domain.UserProfile{
			ID:       7,
			Name:     "Meera",
			Email:    "meera@example.com",
			Age:      54,
			Gender:   "female",
			Diseases: []string{"diabetes"},
		},
	}
	require.NoError(t, repo.Put(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User, got.User)
	assert.False(t, got.SavedAt.IsZero())

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionRepo_PutReplacesPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &Session{Token: "old", User: domain.UserProfile{ID: 1}}))
	require.NoError(t, repo.Put(ctx, &Session{Token: "new", User: domain.UserProfile{ID: 2}}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, int64(2), got.User.ID)
}

func TestSessionRepo_ClearIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "vitalog.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
}
