// Package notify implements transient, replace-on-new user messages.
// At most one notification is visible at any instant: a new one immediately
// displaces the current one, and an unreplaced notification expires on its
// own after a fixed visible duration, passing through a brief fade state
// before removal.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Default timing, matching the 3s visible / 300ms fade of the dashboard UI.
const (
	DefaultVisibleFor = 3 * time.Second
	DefaultFadeFor    = 300 * time.Millisecond
)

// Notification is one transient message. ID is unique per Notify call and
// guards the expiry timers against acting on a displaced notification.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
}

// Sink receives display transitions. Implementations must be fast; calls
// happen under the service lock and from timer goroutines.
type Sink interface {
	Show(n Notification)
	Fade(n Notification)
	Clear(n Notification)
}

// Service is the single-slot notification holder.
type Service struct {
	mu         sync.Mutex
	sink       Sink
	visibleFor time.Duration
	fadeFor    time.Duration
	current    *Notification
	timer      *time.Timer
}

// New creates a service with the default timings.
func New(sink Sink) *Service {
	return NewWithTimings(sink, DefaultVisibleFor, DefaultFadeFor)
}

// NewWithTimings creates a service with explicit timings. Tests use short
// durations here instead of faking the clock.
func NewWithTimings(sink Sink, visibleFor, fadeFor time.Duration) *Service {
	return &Service{sink: sink, visibleFor: visibleFor, fadeFor: fadeFor}
}

// Notify displays a new notification, discarding any currently displayed
// one and cancelling its pending expiry. There is no queue.
func (s *Service) Notify(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.current != nil {
		s.sink.Clear(*s.current)
	}

	n := Notification{ID: uuid.New().String(), Message: message, Severity: severity}
	s.current = &n
	s.sink.Show(n)

	s.timer = time.AfterFunc(s.visibleFor, func() { s.expire(n.ID) })
}

// Current returns the currently displayed notification, or nil.
func (s *Service) Current() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	n := *s.current
	return &n
}

// expire moves the notification into its fade state and schedules removal.
// A notification that was displaced in the meantime is left alone.
func (s *Service) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return
	}
	s.sink.Fade(*s.current)
	s.timer = time.AfterFunc(s.fadeFor, func() { s.remove(id) })
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return
	}
	s.sink.Clear(*s.current)
	s.current = nil
	s.timer = nil
}
