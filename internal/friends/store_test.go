package friends

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker is a scriptable ExistenceChecker.
type fakeChecker struct {
	known map[string]bool
	err   error
}

func (f *fakeChecker) Exists(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.known[username], nil
}

// setupStore creates a store backed by a miniredis instance.
func setupStore(t *testing.T, checker *fakeChecker) (*Store, *RedisKV) {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	kv, err := NewRedisKV(&redis.Options{Addr: mr.Addr()}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return NewStore(kv, checker, "friends"), kv
}

func TestNewRedisKV(t *testing.T) {
	t.Run("rejects empty namespace", func(t *testing.T) {
		_, err := NewRedisKV(&redis.Options{Addr: "localhost:6379"}, "")
		assert.Error(t, err)
	})

	t.Run("namespaces keys", func(t *testing.T) {
		kv, err := NewRedisKV(&redis.Options{Addr: "localhost:6379"}, "work")
		require.NoError(t, err)
		defer kv.Close()
		assert.Equal(t, "lcfriends:work:friends", kv.Key("friends"))
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing key yields empty list", func(t *testing.T) {
		store, _ := setupStore(t, &fakeChecker{})
		list, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	t.Run("corrupt value yields ErrPersistenceFailed", func(t *testing.T) {
		store, kv := setupStore(t, &fakeChecker{})
		require.NoError(t, kv.Set(context.Background(), "friends", "not-json"))

		_, err := store.Load(context.Background())
		assert.ErrorIs(t, err, ErrPersistenceFailed)
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("verified user is appended and persisted", func(t *testing.T) {
		store, _ := setupStore(t, &fakeChecker{known: map[string]bool{"alice": true}})

		list, err := store.Add(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, list)

		// Survives a reload from persistence.
		reloaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, reloaded)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		checker := &fakeChecker{known: map[string]bool{"alice": true, "bob": true, "carol": true}}
		store, _ := setupStore(t, checker)

		for _, name := range []string{"carol", "alice", "bob"} {
			_, err := store.Add(ctx, name)
			require.NoError(t, err)
		}

		list, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"carol", "alice", "bob"}, list)
	})

	t.Run("second add is rejected without changing the list", func(t *testing.T) {
		store, _ := setupStore(t, &fakeChecker{known: map[string]bool{"alice": true}})

		_, err := store.Add(ctx, "alice")
		require.NoError(t, err)

		_, err = store.Add(ctx, "alice")
		assert.ErrorIs(t, err, ErrAlreadyTracked)

		list, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, list)
	})

	t.Run("unknown user yields ErrNotFound and no persistence", func(t *testing.T) {
		store, _ := setupStore(t, &fakeChecker{known: map[string]bool{}})

		_, err := store.Add(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("failed check yields ErrRemoteUnavailable", func(t *testing.T) {
		store, _ := setupStore(t, &fakeChecker{err: errors.New("connection refused")})

		_, err := store.Add(ctx, "alice")
		assert.ErrorIs(t, err, ErrRemoteUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("already-tracked check runs before the remote check", func(t *testing.T) {
		// A duplicate must be rejected locally even when the remote side
		// is down.
		store, _ := setupStore(t, &fakeChecker{known: map[string]bool{"alice": true}})
		_, err := store.Add(ctx, "alice")
		require.NoError(t, err)

		broken := &fakeChecker{err: errors.New("down")}
		rebound := NewStore(store.kv, broken, store.key)
		_, err = rebound.Add(ctx, "alice")
		assert.ErrorIs(t, err, ErrAlreadyTracked)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	checker := &fakeChecker{known: map[string]bool{"alice": true, "bob": true, "carol": true}}

	t.Run("removes exactly the matching entry, order preserved", func(t *testing.T) {
		store, _ := setupStore(t, checker)
		for _, name := range []string{"alice", "bob", "carol"} {
			_, err := store.Add(ctx, name)
			require.NoError(t, err)
		}

		list, err := store.Remove(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "carol"}, list)

		reloaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "carol"}, reloaded)
	})

	t.Run("removing an absent entry is a no-op", func(t *testing.T) {
		store, _ := setupStore(t, checker)
		_, err := store.Add(ctx, "alice")
		require.NoError(t, err)

		list, err := store.Remove(ctx, "ghost")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, list)
	})

	t.Run("removing from an empty list is a no-op", func(t *testing.T) {
		store, _ := setupStore(t, checker)
		list, err := store.Remove(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
