// Package dashboard sequences user actions over the friend list and drives
// the detail panel. The controller owns the selection state machine and is
// the only place that talks to the store, the aggregator, the render target,
// and the notifier together.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lcfriends/lcfriends/internal/aggregate"
	"github.com/lcfriends/lcfriends/internal/friends"
	"github.com/lcfriends/lcfriends/internal/notify"
	"github.com/lcfriends/lcfriends/internal/view"
)

// State is the detail-panel selection state.
type State string

const (
	StateNoneSelected State = "none_selected"
	StateLoading      State = "loading"
	StateLoaded       State = "loaded"
	StateErrored      State = "errored"
)

// RenderTarget is the display surface the controller draws into. The CLI
// provides a terminal implementation; tests provide a recorder.
type RenderTarget interface {
	RenderFriendList(usernames []string, active string)
	RenderLoading(username string)
	RenderDetail(vm *view.FriendDetail)
	RenderDetailError(username, message string)
	HideDetail()
}

// Store is the slice of the friend store the controller uses.
// *friends.Store satisfies this.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, username string) ([]string, error)
	Remove(ctx context.Context, username string) ([]string, error)
}

// DetailFetcher aggregates the remote data for one friend.
// *aggregate.Aggregator satisfies this.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, username string) (*aggregate.Detail, error)
}

// Notifier emits transient user messages. *notify.Service satisfies this.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// Controller holds the active selection and the rendered friend list.
// Public methods are safe to call concurrently; overlapping Select calls
// are resolved by a generation token so only the most recent selection can
// reach the screen.
type Controller struct {
	store    Store
	fetcher  DetailFetcher
	renderer RenderTarget
	notifier Notifier
	confirm  ConfirmFunc
	now      func() time.Time

	mu         sync.Mutex
	friendList []string
	state      State
	selected   string
	generation uint64
}

// New creates a controller. confirm may be nil, in which case removals
// proceed without confirmation.
func New(store Store, fetcher DetailFetcher, renderer RenderTarget, notifier Notifier, confirm ConfirmFunc) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		store:    store,
		fetcher:  fetcher,
		renderer: renderer,
		notifier: notifier,
		confirm:  confirm,
		now:      time.Now,
		state:    StateNoneSelected,
	}
}

// Start loads the persisted friend list and renders it. Call once before
// any user action.
func (c *Controller) Start(ctx context.Context) error {
	list, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load friend list: %w", err)
	}
	c.mu.Lock()
	c.friendList = list
	active := c.selected
	c.mu.Unlock()
	c.renderer.RenderFriendList(list, active)
	return nil
}

// State returns the current selection state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the username of the active selection, or "" when no
// friend is selected.
func (c *Controller) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Friends returns the last loaded friend list.
func (c *Controller) Friends() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.friendList...)
}

// Select makes username the active selection and loads its detail panel.
// The panel shows a loading state while the four remote fetches are in
// flight. A Select that is superseded by a newer one before its fetch
// settles is discarded silently and leaves no trace on screen.
//
// On fetch failure the panel shows an inline error and the state becomes
// Errored; the error is also returned for callers that want an exit code.
func (c *Controller) Select(ctx context.Context, username string) error {
	c.mu.Lock()
	c.generation++
	token := c.generation
	c.state = StateLoading
	c.selected = username
	list := c.friendList
	c.mu.Unlock()

	c.renderer.RenderFriendList(list, username)
	c.renderer.RenderLoading(username)

	detail, err := c.fetcher.FetchDetail(ctx, username)

	c.mu.Lock()
	if token != c.generation {
		// A newer selection (or a removal) superseded this fetch.
		c.mu.Unlock()
		log.Printf("[Dashboard] Discarding stale result for %q", username)
		return nil
	}
	if err != nil {
		c.state = StateErrored
		c.mu.Unlock()
		c.renderer.RenderDetailError(username, "Failed to load friend details. Please try again.")
		return err
	}
	c.state = StateLoaded
	c.mu.Unlock()

	c.renderer.RenderDetail(view.Build(detail, c.now()))
	return nil
}

// AddFriend verifies and appends username. The selection state never
// changes; the outcome is reported as a notification and, on success, a
// re-rendered friend list.
func (c *Controller) AddFriend(ctx context.Context, username string) {
	list, err := c.store.Add(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, friends.ErrAlreadyTracked):
			c.notifier.Notify("Friend already added!", notify.SeverityWarning)
		case errors.Is(err, friends.ErrNotFound):
			c.notifier.Notify(fmt.Sprintf("User %q does not exist on LeetCode.", username), notify.SeverityError)
		default:
			log.Printf("[Dashboard] Add %q failed: %v", username, err)
			c.notifier.Notify("An error occurred. Please try again.", notify.SeverityError)
		}
		return
	}

	c.mu.Lock()
	c.friendList = list
	active := c.selected
	c.mu.Unlock()

	c.renderer.RenderFriendList(list, active)
	c.notifier.Notify(fmt.Sprintf("%s added to your friends list!", username), notify.SeveritySuccess)
}

// RemoveFriend removes username after confirmation. If username is the
// active selection (in any of its states), the detail panel is hidden and
// the state returns to NoneSelected. Declining the confirmation leaves
// everything untouched.
func (c *Controller) RemoveFriend(ctx context.Context, username string) {
	prompt := fmt.Sprintf("Are you sure you want to remove %s from your friends list?", username)
	if !c.confirm(prompt) {
		return
	}

	list, err := c.store.Remove(ctx, username)
	if err != nil {
		log.Printf("[Dashboard] Remove %q failed: %v", username, err)
		c.notifier.Notify("An error occurred while trying to remove the friend. Please try again.", notify.SeverityError)
		return
	}

	c.mu.Lock()
	c.friendList = list
	wasSelected := c.selected == username
	if wasSelected {
		c.state = StateNoneSelected
		c.selected = ""
		// Invalidate any in-flight fetch for the removed friend.
		c.generation++
	}
	active := c.selected
	c.mu.Unlock()

	c.renderer.RenderFriendList(list, active)
	if wasSelected {
		c.renderer.HideDetail()
	}
	c.notifier.Notify(fmt.Sprintf("%s has been removed from your friends list.", username), notify.SeveritySuccess)
}

// Close dismisses the detail panel and clears the selection.
func (c *Controller) Close() {
	c.mu.Lock()
	c.state = StateNoneSelected
	c.selected = ""
	c.generation++
	c.mu.Unlock()
	c.renderer.HideDetail()
}

// SetClock overrides the time source used for relative-time labels.
// Intended for tests.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}
