// Package cache memoizes search responses for the life of the process.
//
// # Overview
//
// Keys are normalized queries (see package slug), so "Octocat" and
// "  octocat " share an entry. Values are the *github.SearchResponse
// returned by the search client, stored by pointer and never copied.
//
// # Semantics
//
//   - Get on a key never written reports false, never an error
//   - Put replaces an existing entry
//   - No TTL, no capacity bound, no invalidation
//
// Responses are treated as immutable once stored. Callers that need a
// differently tagged view use SearchResponse.WithQuery, which leaves the
// cached value untouched.
//
// # Concurrency Model
//
// The UI reads and writes the cache only from its update loop, so there is
// no contention in practice. A sync.RWMutex still guards the map so the
// cache stays safe if a caller touches it from a command goroutine.
package cache
