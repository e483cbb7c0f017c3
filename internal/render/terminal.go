// Package render draws the friend list and detail panel onto a terminal.
// It implements the render-target surface the dashboard controller draws
// into, and a notification sink that prints transient messages.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/lcfriends/lcfriends/internal/notify"
	"github.com/lcfriends/lcfriends/internal/printer"
	"github.com/lcfriends/lcfriends/internal/view"
)

// Terminal renders dashboard regions as plain text blocks on a writer.
// A terminal has no mutable panels, so every render call appends a fresh
// block; "hiding" the detail panel prints the empty placeholder.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal creates a terminal render target writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// RenderFriendList prints the tracked friends in insertion order, marking
// the active selection.
func (t *Terminal) RenderFriendList(usernames []string, active string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(usernames) == 0 {
		fmt.Fprintf(t.out, "%s\n", view.NoFriendsMessage)
		return
	}

	fmt.Fprintf(t.out, "Friends:\n")
	for _, username := range usernames {
		marker := " "
		if username == active {
			marker = ">"
		}
		fmt.Fprintf(t.out, "%s %s\n", marker, username)
	}
}

// RenderLoading prints the loading placeholder for a selection in flight.
func (t *Terminal) RenderLoading(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "Loading %s's data...\n", username)
}

// RenderDetail prints the full detail panel for one friend.
func (t *Terminal) RenderDetail(vm *view.FriendDetail) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "\n%s (%s)\n", vm.DisplayName, vm.ProfileURL)
	if vm.AvatarURL != "" {
		fmt.Fprintf(t.out, "Avatar: %s\n", vm.AvatarURL)
	}
	fmt.Fprintf(t.out, "%s\n", vm.RatingText)
	fmt.Fprintf(t.out, "Easy: %d  Medium: %d  Hard: %d\n", vm.EasySolved, vm.MediumSolved, vm.HardSolved)

	fmt.Fprintf(t.out, "\nRecent Activity:\n")
	if len(vm.Activity) == 0 {
		fmt.Fprintf(t.out, "  %s\n", view.NoActivityMessage)
	}
	for _, row := range vm.Activity {
		fmt.Fprintf(t.out, "  %-40s %s\n", row.Title, row.When)
		fmt.Fprintf(t.out, "    %s\n", row.URL)
	}

	fmt.Fprintf(t.out, "\nPast Contests:\n")
	if len(vm.Contests) == 0 {
		fmt.Fprintf(t.out, "  %s\n", view.NoContestsMessage)
	}
	for _, row := range vm.Contests {
		fmt.Fprintf(t.out, "  %-40s %s\n", row.Title, row.Result)
	}
}

// RenderDetailError replaces the detail panel with a single inline error.
func (t *Terminal) RenderDetailError(username, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s\n", message)
}

// HideDetail prints the empty placeholder shown when nothing is selected.
func (t *Terminal) HideDetail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "No friend selected.\n")
}

// PrinterSink routes notifications through the CLI printer, colored by
// severity. Fade and Clear are no-ops: printed lines cannot be taken back.
type PrinterSink struct{}

func (PrinterSink) Show(n notify.Notification) {
	switch n.Severity {
	case notify.SeveritySuccess:
		printer.Success("%s\n", n.Message)
	case notify.SeverityWarning:
		printer.Warning("%s\n", n.Message)
	case notify.SeverityError:
		printer.Printf("✗ %s\n", n.Message)
	default:
		printer.Info("%s\n", n.Message)
	}
}

func (PrinterSink) Fade(n notify.Notification)  {}
func (PrinterSink) Clear(n notify.Notification) {}
