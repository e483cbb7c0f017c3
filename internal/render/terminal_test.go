package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lcfriends/lcfriends/internal/view"
)

func TestRenderFriendList(t *testing.T) {
	t.Run("marks the active selection", func(t *testing.T) {
		var buf bytes.Buffer
		NewTerminal(&buf).RenderFriendList([]string{"alice", "bob"}, "bob")

		assert.Equal(t, "Friends:\n  alice\n> bob\n", buf.String())
	})

	t.Run("empty list prints the empty state", func(t *testing.T) {
		var buf bytes.Buffer
		NewTerminal(&buf).RenderFriendList(nil, "")

		assert.Equal(t, view.NoFriendsMessage+"\n", buf.String())
	})
}

func TestRenderDetail(t *testing.T) {
	vm := &view.FriendDetail{
		Username:    "alice",
		DisplayName: "Alice Liddell",
		ProfileURL:  "https://leetcode.com/u/alice",
		AvatarURL:   "https://img.example/alice.png",
		RatingText:  "Rating: 1500 (Top 10%) • Guardian",
		EasySolved:  120,
		HardSolved:  7,
		Activity: []view.ActivityRow{
			{Title: "Two Sum", URL: "https://leetcode.com/submissions/detail/42", When: "3 minutes ago"},
		},
	}

	var buf bytes.Buffer
	NewTerminal(&buf).RenderDetail(vm)
	out := buf.String()

	assert.Contains(t, out, "Alice Liddell (https://leetcode.com/u/alice)")
	assert.Contains(t, out, "Rating: 1500 (Top 10%) • Guardian")
	assert.Contains(t, out, "Easy: 120  Medium: 0  Hard: 7")
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "3 minutes ago")
	assert.Contains(t, out, view.NoContestsMessage, "empty contest section shows its empty state")
}

func TestRenderDetailError(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).RenderDetailError("alice", "Failed to load friend details. Please try again.")
	assert.Equal(t, "Failed to load friend details. Please try again.\n", buf.String())
}

func TestHideDetail(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).HideDetail()
	assert.Equal(t, "No friend selected.\n", buf.String())
}
