package storage

import (
	"context"
	"testing"

	"github.com/cristianoliveira/contactbook/internal/config"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryCopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	input := []domain.Contact{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}}

	require.NoError(t, repo.Replace(ctx, input))
	input[0].Name = "changed"

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Leanne Graham", "Ervin Howell"}, domain.Names(all))

	all[1].Name = "changed"
	again, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ervin Howell", again[1].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, repo.Close())
}

func TestMemoryRepositoryNilReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Replace(ctx, nil))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemoryRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryRepository()

	assert.ErrorIs(t, repo.Replace(ctx, nil), context.Canceled)
	_, err := repo.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewForBackend(t *testing.T) {
	repo, err := NewForBackend("", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepository{}, repo)

	repo, err = NewForBackend("SQLite", "file:contactbook_factory?mode=memory&cache=shared")
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Repository{}, repo)
	assert.NoError(t, repo.Close())

	_, err = NewForBackend("redis", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewFromConfigSelectsBackend(t *testing.T) {
	t.Setenv("CONTACTBOOK_CONFIG_PATH", "/nonexistent/config.toml")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CONTACTBOOK_STORAGE_BACKEND", "sqlite")
	t.Setenv("CONTACTBOOK_SQLITE_DSN", "file:contactbook_config?mode=memory&cache=shared")
	config.Load()

	repo, err := NewFromConfig()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	assert.IsType(t, &sqlite.Repository{}, repo)

	require.NoError(t, repo.Replace(context.Background(), []domain.Contact{{ID: 1, Name: "Leanne Graham"}}))
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
