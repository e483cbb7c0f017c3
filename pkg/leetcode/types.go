package leetcode

// Difficulty identifies a LeetCode problem tier as reported by the
// solved-stats operation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Profile is the public profile of a single user.
type Profile struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	RealName  string `json:"realName,omitempty"` // optional display name
}

// SolvedCount is the number of accepted problems in one difficulty tier.
// The remote side may omit tiers entirely; consumers treat a missing tier
// as zero.
type SolvedCount struct {
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

// Submission is one recently accepted submission. Timestamp is epoch
// seconds; the wire format delivers it as a string and the client parses it.
type Submission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp int64  `json:"timestamp"`
}

// ContestInfo is a user's contest ranking summary plus their full
// participation history. The ranking fields are pointers because a user who
// never attended a contest has no ranking data at all - that is a valid
// response, not an error.
type ContestInfo struct {
	Rating        *float64       `json:"rating,omitempty"`
	TopPercentage *float64       `json:"topPercentage,omitempty"`
	AttendedCount *int           `json:"attendedCount,omitempty"`
	Badge         string         `json:"badge,omitempty"`
	History       []ContestEntry `json:"history"`
}

// ContestEntry is one contest in a user's participation history.
// Title may be empty when the remote side returns a history row without
// contest metadata; consumers filter those out before display.
type ContestEntry struct {
	Attended       bool   `json:"attended"`
	ProblemsSolved int    `json:"problemsSolved"`
	TotalProblems  int    `json:"totalProblems"`
	Ranking        int    `json:"ranking"`
	Title          string `json:"title,omitempty"`
	StartTime      int64  `json:"startTime"`
}
