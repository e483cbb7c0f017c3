// Package friends owns the persisted, ordered, duplicate-free list of tracked
// usernames. The list lives under a single key in an injected key-value
// collaborator; every mutation is read-modify-persist.
package friends

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Error taxonomy for store operations. Callers branch on these with
// errors.Is() to pick the right user-facing message.
var (
	// ErrAlreadyTracked means the username is already on the list.
	ErrAlreadyTracked = errors.New("friend already tracked")

	// ErrNotFound means the platform reported no such user.
	ErrNotFound = errors.New("user does not exist on the platform")

	// ErrRemoteUnavailable means the existence check itself failed, so the
	// user could not be verified either way.
	ErrRemoteUnavailable = errors.New("existence check unavailable")

	// ErrPersistenceFailed means the backing key-value store rejected a
	// read or write.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// KV is the persistence collaborator: an asynchronous key-value store.
// Get reports (value, found, error); a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ExistenceChecker confirms a username is registered on the remote platform.
// *leetcode.Client satisfies this.
type ExistenceChecker interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Store manages the friend list. It is not safe for concurrent mutation:
// two overlapping Add/Remove calls read-modify-write the same key and the
// later write wins.
type Store struct {
	kv      KV
	checker ExistenceChecker
	key     string
}

// NewStore creates a store persisting under the given key.
func NewStore(kv KV, checker ExistenceChecker, key string) *Store {
	return &Store{kv: kv, checker: checker, key: key}
}

// Load returns the current friend list in insertion order.
// A missing key means the list was never written and yields an empty list.
func (s *Store) Load(ctx context.Context) ([]string, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrPersistenceFailed, s.key, err)
	}
	if !found {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: corrupt friend list under %q: %v", ErrPersistenceFailed, s.key, err)
	}
	return list, nil
}

// Add appends username to the list after a successful existence check and
// persists the result. Returns the updated list.
//
// Fails with ErrAlreadyTracked, ErrNotFound, ErrRemoteUnavailable, or
// ErrPersistenceFailed; on any failure the persisted list is unchanged.
func (s *Store) Add(ctx context.Context, username string) ([]string, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range list {
		if existing == username {
			return nil, fmt.Errorf("%q: %w", username, ErrAlreadyTracked)
		}
	}

	exists, err := s.checker.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %v", username, ErrRemoteUnavailable, err)
	}
	if !exists {
		return nil, fmt.Errorf("%q: %w", username, ErrNotFound)
	}

	updated := append(list, username)
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes username from the list if present and persists the result.
// Removing an absent username is a no-op that still returns the current list.
func (s *Store) Remove(ctx context.Context, username string) ([]string, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != username {
			updated = append(updated, existing)
		}
	}
	if len(updated) == len(list) {
		return list, nil
	}

	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) persist(ctx context.Context, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encoding friend list: %v", ErrPersistenceFailed, err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrPersistenceFailed, s.key, err)
	}
	return nil
}
