package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payledger/internal/models"
)

func newTestRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.txt")
	return NewFileRepository(path), path
}

func TestAppendLoadAll_RoundTrip(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()

	acc := &models.UserAccount{ID: "boss", Password: "s3cret", Role: models.RoleAdmin}
	require.NoError(t, r.Append(ctx, acc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "boss|s3cret|Admin\n", string(data))

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *acc, got[0])
}

func TestLoadAll_SkipsShortLines(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()

	content := "boss|s3cret|Admin\n" +
		"broken|line\n" +
		"\n" +
		"viewer|pw|User|extra\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "boss", got[0].ID)
	assert.Equal(t, "viewer", got[1].ID)
	assert.Equal(t, models.RoleUser, got[1].Role)
}

func TestLoadIDs(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &models.UserAccount{ID: "a", Password: "x", Role: models.RoleUser}))
	require.NoError(t, r.Append(ctx, &models.UserAccount{ID: "b", Password: "y", Role: models.RoleAdmin}))

	ids, err := r.LoadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, ids)
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	ids, err := r.LoadIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
