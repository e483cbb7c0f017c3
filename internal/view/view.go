// Package view transforms a raw aggregated detail bundle into a
// display-ready view model. Everything here is a pure function of its
// inputs; the current time is always passed in.
package view

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/lcfriends/lcfriends/internal/aggregate"
	"github.com/lcfriends/lcfriends/pkg/leetcode"
)

// Empty-state messages rendered when a section has no data.
const (
	NoActivityMessage = "No recent submissions available"
	NoContestsMessage = "No contest history available"
	NoFriendsMessage  = "No friends added yet."
)

// maxContestRows is how many past contests the detail panel shows.
const maxContestRows = 5

// FriendDetail is the ephemeral, render-ready model for one friend. It is
// built fresh on every selection and never persisted.
type FriendDetail struct {
	Username    string
	DisplayName string // real name when known, else the username
	AvatarURL   string
	ProfileURL  string
	RatingText  string

	EasySolved   int
	MediumSolved int
	HardSolved   int

	Activity []ActivityRow
	Contests []ContestRow
}

// ActivityRow is one recent accepted submission.
type ActivityRow struct {
	Title string
	URL   string
	When  string // relative-time label, e.g. "3 minutes ago"
}

// ContestRow is one past contest.
type ContestRow struct {
	Title  string
	Result string // "Rank: 512 • Solved: 3/4" or "Not participated"
}

// Build derives the view model from a raw detail bundle. now anchors all
// relative-time labels.
func Build(detail *aggregate.Detail, now time.Time) *FriendDetail {
	vm := &FriendDetail{
		Username:    detail.Username,
		DisplayName: detail.Username,
		ProfileURL:  fmt.Sprintf("https://leetcode.com/u/%s", detail.Username),
		RatingText:  ratingText(detail.Contest),
	}
	if detail.Profile != nil {
		vm.AvatarURL = detail.Profile.AvatarURL
		if detail.Profile.RealName != "" {
			vm.DisplayName = detail.Profile.RealName
		}
	}

	vm.EasySolved = solvedCount(detail.Solved, leetcode.DifficultyEasy)
	vm.MediumSolved = solvedCount(detail.Solved, leetcode.DifficultyMedium)
	vm.HardSolved = solvedCount(detail.Solved, leetcode.DifficultyHard)

	for _, sub := range detail.Recent {
		vm.Activity = append(vm.Activity, ActivityRow{
			Title: sub.Title,
			URL:   fmt.Sprintf("https://leetcode.com/submissions/detail/%s", sub.ID),
			When:  RelativeTime(time.Unix(sub.Timestamp, 0), now),
		})
	}

	if detail.Contest != nil {
		vm.Contests = contestRows(detail.Contest.History)
	}
	return vm
}

// solvedCount looks a tier up in the stats; a missing tier counts as zero.
func solvedCount(counts []leetcode.SolvedCount, tier leetcode.Difficulty) int {
	for _, c := range counts {
		if c.Difficulty == tier {
			return c.Count
		}
	}
	return 0
}

// ratingText renders the contest rating line. Rating is rounded to the
// nearest integer; topPercentage keeps whatever precision the remote side
// reported.
func ratingText(contest *leetcode.ContestInfo) string {
	if contest == nil || contest.Rating == nil {
		return "Rating: Not participated"
	}
	top := ""
	if contest.TopPercentage != nil {
		top = strconv.FormatFloat(*contest.TopPercentage, 'f', -1, 64)
	}
	text := fmt.Sprintf("Rating: %d (Top %s%%)", int(math.Round(*contest.Rating)), top)
	if contest.Badge != "" {
		text += fmt.Sprintf(" • %s", contest.Badge)
	}
	return text
}

// contestRows filters out history entries without contest metadata, orders
// the rest newest first, and keeps at most maxContestRows.
func contestRows(history []leetcode.ContestEntry) []ContestRow {
	titled := make([]leetcode.ContestEntry, 0, len(history))
	for _, entry := range history {
		if entry.Title != "" {
			titled = append(titled, entry)
		}
	}
	sort.SliceStable(titled, func(i, j int) bool {
		return titled[i].StartTime > titled[j].StartTime
	})
	if len(titled) > maxContestRows {
		titled = titled[:maxContestRows]
	}

	rows := make([]ContestRow, 0, len(titled))
	for _, entry := range titled {
		result := "Not participated"
		if entry.Attended {
			result = fmt.Sprintf("Rank: %d • Solved: %d/%d",
				entry.Ranking, entry.ProblemsSolved, entry.TotalProblems)
		}
		rows = append(rows, ContestRow{Title: entry.Title, Result: result})
	}
	return rows
}

// RelativeTime renders how long ago t was relative to now, flooring to the
// largest whole unit: seconds under a minute, then minutes, hours, days.
func RelativeTime(t, now time.Time) string {
	delta := now.Unix() - t.Unix()
	if delta < 0 {
		delta = 0
	}

	switch {
	case delta < 60:
		return agoLabel(delta, "second")
	case delta < 3600:
		return agoLabel(delta/60, "minute")
	case delta < 86400:
		return agoLabel(delta/3600, "hour")
	default:
		return agoLabel(delta/86400, "day")
	}
}

func agoLabel(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
