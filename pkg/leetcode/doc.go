// Package leetcode provides a typed client for the public LeetCode GraphQL
// endpoint. It exposes the five read-only operations the tracker consumes:
// profile lookup, solved-problem stats, recent accepted submissions, contest
// ranking info, and a lightweight existence check.
//
// All operations go through a single POST endpoint with a JSON
// {query, variables} body. The client adds no retries, caching, or rate
// limiting; callers own those policies.
package leetcode
