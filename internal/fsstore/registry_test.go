package fsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adventboard/adventboard/internal/domain/registry"
	"github.com/adventboard/adventboard/internal/fsstore"
	"github.com/adventboard/adventboard/internal/repository"
	"github.com/stretchr/testify/require"
)

const testToken = "AAAAbbbbCCCC1234"

func record() *registry.PublicLeaderboard {
	return &registry.PublicLeaderboard{Token: testToken, GroupID: "1234", Session: "s1"}
}

func TestRegistryPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := fsstore.NewRegistryStore(t.TempDir())

	require.NoError(t, store.Put(ctx, record()))

	got, err := store.Get(ctx, testToken)
	require.NoError(t, err)
	require.Equal(t, record(), got)
}

func TestRegistryGetMissing(t *testing.T) {
	store := fsstore.NewRegistryStore(t.TempDir())
	_, err := store.Get(context.Background(), "ZZZZyyyyXXXX0000")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistryGetRejectsMalformedToken(t *testing.T) {
	store := fsstore.NewRegistryStore(t.TempDir())
	for _, token := range []string{"", "short", "../../etc/passwd", "AAAAbbbbCCCC12345"} {
		_, err := store.Get(context.Background(), token)
		require.ErrorIs(t, err, repository.ErrNotFound, "token %q", token)
	}
}

func TestRegistryFindByGroup(t *testing.T) {
	ctx := context.Background()
	store := fsstore.NewRegistryStore(t.TempDir())

	require.NoError(t, store.Put(ctx, record()))
	require.NoError(t, store.Put(ctx, &registry.PublicLeaderboard{
		Token: "DDDDeeeeFFFF5678", GroupID: "5678", Session: "s2",
	}))

	got, err := store.FindByGroup(ctx, "5678")
	require.NoError(t, err)
	require.Equal(t, "DDDDeeeeFFFF5678", got.Token)

	_, err = store.FindByGroup(ctx, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistryFindByGroupEmptyRegistry(t *testing.T) {
	store := fsstore.NewRegistryStore(t.TempDir())
	_, err := store.FindByGroup(context.Background(), "1234")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistryFindByGroupSkipsStrayFiles(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := fsstore.NewRegistryStore(root)

	require.NoError(t, store.Put(ctx, record()))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pub", "stray.json"), []byte("not json"), 0o644))

	got, err := store.FindByGroup(ctx, "1234")
	require.NoError(t, err)
	require.Equal(t, testToken, got.Token)
}

func TestRegistryExists(t *testing.T) {
	ctx := context.Background()
	store := fsstore.NewRegistryStore(t.TempDir())

	ok, err := store.Exists(ctx, testToken)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Put(ctx, record()))

	ok, err = store.Exists(ctx, testToken)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegistryPutOverwritesSession(t *testing.T) {
	ctx := context.Background()
	store := fsstore.NewRegistryStore(t.TempDir())

	require.NoError(t, store.Put(ctx, record()))

	renewed := record()
	renewed.Session = "s2"
	require.NoError(t, store.Put(ctx, renewed))

	got, err := store.Get(ctx, testToken)
	require.NoError(t, err)
	require.Equal(t, "s2", got.Session)
}

func TestRegistryWithLock(t *testing.T) {
	store := fsstore.NewRegistryStore(t.TempDir())

	ran := false
	require.NoError(t, store.WithLock(context.Background(), func() error {
		ran = true
		return nil
	}))
	require.True(t, ran)
}
