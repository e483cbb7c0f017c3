package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultEndpoint is the production LeetCode GraphQL endpoint.
const DefaultEndpoint = "https://leetcode.com/graphql/"

// DefaultSubmissionLimit is how many recent submissions to request when the
// caller does not specify a limit.
const DefaultSubmissionLimit = 5

// ErrUserNotFound is returned when the endpoint has no matched user for the
// requested username. Use errors.Is() to check for it.
var ErrUserNotFound = errors.New("user not found")

// Client performs GraphQL queries against a single LeetCode-compatible
// endpoint. The zero value is not usable; construct with NewClient.
// The client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a client for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
	}
}

const profileQuery = `
query userPublicProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      userAvatar
      realName
    }
  }
}`

const solvedStatsQuery = `
query userProblemsSolved($username: String!) {
  matchedUser(username: $username) {
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

const recentSubmissionsQuery = `
query recentAcSubmissions($username: String!, $limit: Int!) {
  recentAcSubmissionList(username: $username, limit: $limit) {
    id
    title
    titleSlug
    timestamp
  }
}`

const contestInfoQuery = `
query userContestRankingInfo($username: String!) {
  userContestRanking(username: $username) {
    attendedContestsCount
    rating
    topPercentage
    badge {
      name
    }
  }
  userContestRankingHistory(username: $username) {
    attended
    problemsSolved
    totalProblems
    ranking
    contest {
      title
      startTime
    }
  }
}`

const existsQuery = `
query userPublicProfile($username: String!) {
  matchedUser(username: $username) {
    username
  }
}`

// graphqlRequest is the wire format of every query.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// post executes one GraphQL query and unmarshals the "data" object into out.
func (c *Client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the error is actionable in logs.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("query returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("query failed: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("response contained no data")
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// Profile fetches the public profile for username.
// Returns ErrUserNotFound if the endpoint has no matching user.
func (c *Client) Profile(ctx context.Context, username string) (*Profile, error) {
	var data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				UserAvatar string `json:"userAvatar"`
				RealName   string `json:"realName"`
			} `json:"profile"`
		} `json:"matchedUser"`
	}
	if err := c.post(ctx, profileQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, fmt.Errorf("profile lookup for %q: %w", username, err)
	}
	if data.MatchedUser == nil {
		return nil, fmt.Errorf("profile lookup for %q: %w", username, ErrUserNotFound)
	}
	return &Profile{
		Username:  data.MatchedUser.Username,
		AvatarURL: data.MatchedUser.Profile.UserAvatar,
		RealName:  data.MatchedUser.Profile.RealName,
	}, nil
}

// SolvedStats fetches accepted-submission counts per difficulty tier.
// Returns ErrUserNotFound if the endpoint has no matching user. Tiers the
// endpoint omits are simply absent from the result.
func (c *Client) SolvedStats(ctx context.Context, username string) ([]SolvedCount, error) {
	var data struct {
		MatchedUser *struct {
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	}
	if err := c.post(ctx, solvedStatsQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, fmt.Errorf("solved stats for %q: %w", username, err)
	}
	if data.MatchedUser == nil {
		return nil, fmt.Errorf("solved stats for %q: %w", username, ErrUserNotFound)
	}

	counts := make([]SolvedCount, 0, len(data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum))
	for _, item := range data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum {
		counts = append(counts, SolvedCount{
			Difficulty: Difficulty(item.Difficulty),
			Count:      item.Count,
		})
	}
	return counts, nil
}

// RecentSubmissions fetches up to limit recently accepted submissions,
// newest first. A limit <= 0 selects DefaultSubmissionLimit. The endpoint
// delivers timestamps as stringified epoch seconds; rows with an unparseable
// timestamp are rejected rather than silently mis-ordered.
func (c *Client) RecentSubmissions(ctx context.Context, username string, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = DefaultSubmissionLimit
	}
	var data struct {
		RecentACSubmissionList []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			TitleSlug string `json:"titleSlug"`
			Timestamp string `json:"timestamp"`
		} `json:"recentAcSubmissionList"`
	}
	vars := map[string]any{"username": username, "limit": limit}
	if err := c.post(ctx, recentSubmissionsQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("recent submissions for %q: %w", username, err)
	}

	submissions := make([]Submission, 0, len(data.RecentACSubmissionList))
	for _, item := range data.RecentACSubmissionList {
		ts, err := strconv.ParseInt(item.Timestamp, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("recent submissions for %q: bad timestamp %q: %w", username, item.Timestamp, err)
		}
		submissions = append(submissions, Submission{
			ID:        item.ID,
			Title:     item.Title,
			TitleSlug: item.TitleSlug,
			Timestamp: ts,
		})
	}
	return submissions, nil
}

// ContestInfo fetches the contest ranking summary and participation history.
// A user who never attended any contest yields nil ranking fields and is not
// an error.
func (c *Client) ContestInfo(ctx context.Context, username string) (*ContestInfo, error) {
	var data struct {
		UserContestRanking *struct {
			AttendedContestsCount int     `json:"attendedContestsCount"`
			Rating                float64 `json:"rating"`
			TopPercentage         float64 `json:"topPercentage"`
			Badge                 *struct {
				Name string `json:"name"`
			} `json:"badge"`
		} `json:"userContestRanking"`
		UserContestRankingHistory []struct {
			Attended       bool `json:"attended"`
			ProblemsSolved int  `json:"problemsSolved"`
			TotalProblems  int  `json:"totalProblems"`
			Ranking        int  `json:"ranking"`
			Contest        *struct {
				Title     string `json:"title"`
				StartTime int64  `json:"startTime"`
			} `json:"contest"`
		} `json:"userContestRankingHistory"`
	}
	if err := c.post(ctx, contestInfoQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, fmt.Errorf("contest info for %q: %w", username, err)
	}

	info := &ContestInfo{}
	if ranking := data.UserContestRanking; ranking != nil {
		rating := ranking.Rating
		top := ranking.TopPercentage
		attended := ranking.AttendedContestsCount
		info.Rating = &rating
		info.TopPercentage = &top
		info.AttendedCount = &attended
		if ranking.Badge != nil {
			info.Badge = ranking.Badge.Name
		}
	}
	for _, item := range data.UserContestRankingHistory {
		entry := ContestEntry{
			Attended:       item.Attended,
			ProblemsSolved: item.ProblemsSolved,
			TotalProblems:  item.TotalProblems,
			Ranking:        item.Ranking,
		}
		if item.Contest != nil {
			entry.Title = item.Contest.Title
			entry.StartTime = item.Contest.StartTime
		}
		info.History = append(info.History, entry)
	}
	return info, nil
}

// Exists reports whether username is registered on the platform.
// A transport or endpoint failure is returned as an error, distinct from a
// clean "no such user" answer.
func (c *Client) Exists(ctx context.Context, username string) (bool, error) {
	var data struct {
		MatchedUser *struct {
			Username string `json:"username"`
		} `json:"matchedUser"`
	}
	if err := c.post(ctx, existsQuery, map[string]any{"username": username}, &data); err != nil {
		return false, fmt.Errorf("existence check for %q: %w", username, err)
	}
	return data.MatchedUser != nil, nil
}
