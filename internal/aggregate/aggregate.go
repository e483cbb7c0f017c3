// Package aggregate joins the four per-friend remote fetches into a single
// raw detail bundle.
package aggregate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lcfriends/lcfriends/pkg/leetcode"
)

// ErrAggregationFailed is returned when any of the four joined fetches
// fails. The wrapped error carries the first underlying cause.
var ErrAggregationFailed = errors.New("failed to aggregate friend detail")

// Fetcher is the slice of the remote query surface the aggregator consumes.
// *leetcode.Client satisfies this.
type Fetcher interface {
	Profile(ctx context.Context, username string) (*leetcode.Profile, error)
	SolvedStats(ctx context.Context, username string) ([]leetcode.SolvedCount, error)
	RecentSubmissions(ctx context.Context, username string, limit int) ([]leetcode.Submission, error)
	ContestInfo(ctx context.Context, username string) (*leetcode.ContestInfo, error)
}

// Detail is the raw aggregated bundle for one friend, before any display
// transformation.
type Detail struct {
	Username string
	Profile  *leetcode.Profile
	Solved   []leetcode.SolvedCount
	Recent   []leetcode.Submission
	Contest  *leetcode.ContestInfo
}

// Aggregator fans one username out to the four profile-related remote
// operations and joins the results.
type Aggregator struct {
	fetcher         Fetcher
	submissionLimit int
}

// New creates an aggregator. A submissionLimit <= 0 selects the client's
// default.
func New(fetcher Fetcher, submissionLimit int) *Aggregator {
	return &Aggregator{fetcher: fetcher, submissionLimit: submissionLimit}
}

// FetchDetail runs the four fetches concurrently and returns the combined
// bundle once all have settled.
//
// The join is all-or-nothing: if any fetch fails, FetchDetail returns
// ErrAggregationFailed wrapping the first cause and every resolved partial
// is discarded. Branches are not cancelled on first failure; each runs to
// completion under the transport's own limits.
func (a *Aggregator) FetchDetail(ctx context.Context, username string) (*Detail, error) {
	detail := &Detail{Username: username}

	var group errgroup.Group
	group.Go(func() error {
		profile, err := a.fetcher.Profile(ctx, username)
		if err != nil {
			return err
		}
		detail.Profile = profile
		return nil
	})
	group.Go(func() error {
		solved, err := a.fetcher.SolvedStats(ctx, username)
		if err != nil {
			return err
		}
		detail.Solved = solved
		return nil
	})
	group.Go(func() error {
		recent, err := a.fetcher.RecentSubmissions(ctx, username, a.submissionLimit)
		if err != nil {
			return err
		}
		detail.Recent = recent
		return nil
	})
	group.Go(func() error {
		contest, err := a.fetcher.ContestInfo(ctx, username)
		if err != nil {
			return err
		}
		detail.Contest = contest
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAggregationFailed, username, err)
	}
	return detail, nil
}
