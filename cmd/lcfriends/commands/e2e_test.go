package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeetCode answers all five GraphQL operations for a fixed set of
// registered users.
func fakeLeetCode(t *testing.T, registered map[string]bool) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		username, _ := req.Variables["username"].(string)

		var data map[string]any
		switch {
		case strings.Contains(req.Query, "recentAcSubmissions"):
			data = map[string]any{"recentAcSubmissionList": []map[string]any{
				{"id": "1", "title": "Two Sum", "titleSlug": "two-sum", "timestamp": "1700000000"},
			}}
		case strings.Contains(req.Query, "userContestRankingInfo"):
			data = map[string]any{
				"userContestRanking": map[string]any{
					"attendedContestsCount": 12,
					"rating":                1500.4,
					"topPercentage":         10.0,
					"badge":                 map[string]any{"name": "Guardian"},
				},
				"userContestRankingHistory": []map[string]any{},
			}
		case strings.Contains(req.Query, "userProblemsSolved"):
			data = map[string]any{"matchedUser": map[string]any{
				"submitStatsGlobal": map[string]any{"acSubmissionNum": []map[string]any{
					{"difficulty": "Easy", "count": 10},
				}},
			}}
		default: // userPublicProfile, with or without the profile block
			if !registered[username] {
				data = map[string]any{"matchedUser": nil}
				break
			}
			data = map[string]any{"matchedUser": map[string]any{
				"username": username,
				"profile":  map[string]any{"userAvatar": "https://img.example/a.png", "realName": ""},
			}}
		}

		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))
	t.Cleanup(server.Close)
	return server
}

// setupCLI points the command environment at a miniredis and a fake
// GraphQL server via the documented env overrides.
func setupCLI(t *testing.T, registered map[string]bool) {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	server := fakeLeetCode(t, registered)
	t.Setenv("LCFRIENDS_REDIS_ADDR", mr.Addr())
	t.Setenv("LCFRIENDS_ENDPOINT", server.URL)
	configPath = "/nonexistent/.lcfriends.yml"
}

func TestAddListRemoveFlow(t *testing.T) {
	setupCLI(t, map[string]bool{"alice": true})
	ctx := context.Background()

	env, cleanup, err := setupEnv(ctx)
	require.NoError(t, err)
	defer cleanup()

	// add through the command path
	require.NoError(t, runAdd(addCmd, []string{"alice"}))

	list, err := env.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, list)

	// duplicate add warns but succeeds
	require.NoError(t, runAdd(addCmd, []string{"alice"}))
	list, err = env.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, list, "duplicate add never grows the list")

	// unknown user fails
	err = runAdd(addCmd, []string{"ghost"})
	require.Error(t, err)

	// show renders without error
	require.NoError(t, runShow(showCmd, []string{"alice"}))

	// remove with --yes
	removeYes = true
	defer func() { removeYes = false }()
	require.NoError(t, runRemove(removeCmd, []string{"alice"}))

	list, err = env.store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListCommand(t *testing.T) {
	setupCLI(t, map[string]bool{"alice": true, "bob": true})

	require.NoError(t, runAdd(addCmd, []string{"alice"}))
	require.NoError(t, runAdd(addCmd, []string{"bob"}))
	require.NoError(t, runList(listCmd, nil))

	listJSON = true
	defer func() { listJSON = false }()
	require.NoError(t, runList(listCmd, nil))
}
