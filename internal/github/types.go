package github

import (
	"encoding/json"
	"time"
)

// legacyTimestampLayout is the layout of the "created" and "pushed" fields.
const legacyTimestampLayout = "2006/01/02 15:04:05 -0700"

// SearchResponse is the result of one successful search. Repositories keep
// the order the endpoint returned them in; a record's index is its identity.
type SearchResponse struct {
	Query        string          `json:"query"`
	Repositories []Repository    `json:"repositories"`
	Meta         json.RawMessage `json:"meta,omitempty"`
}

// Len returns the number of records in the response.
func (r *SearchResponse) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Repositories)
}

// At returns the record at index i.
func (r *SearchResponse) At(i int) (Repository, bool) {
	if r == nil || i < 0 || i >= len(r.Repositories) {
		return Repository{}, false
	}
	return r.Repositories[i], true
}

// WithQuery returns a shallow copy tagged with query. The record slice is
// shared, never copied, so positional lookups stay aligned with the source.
func (r *SearchResponse) WithQuery(query string) *SearchResponse {
	if r == nil {
		return nil
	}
	dup := *r
	dup.Query = query
	return &dup
}

// searchEnvelope mirrors the body of the legacy repository search endpoint.
type searchEnvelope struct {
	Meta json.RawMessage `json:"meta"`
	Data struct {
		Repositories []Repository `json:"repositories"`
	} `json:"data"`
}

// Repository describes one repository as returned by the search endpoint.
type Repository struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Username    string `json:"username"`
	Language    string `json:"language"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Followers   int    `json:"followers"`
	Watchers    int    `json:"watchers"`
	Forks       int    `json:"forks"`
	Size        int    `json:"size"`
	Fork        bool   `json:"fork"`
	Private     bool   `json:"private"`
	Created     string `json:"created"`
	CreatedAt   string `json:"created_at"`
	Pushed      string `json:"pushed"`
	PushedAt    string `json:"pushed_at"`
}

// FullName returns owner/name, or just the name when the owner is unknown.
func (r Repository) FullName() string {
	if r.Owner == "" {
		return r.Name
	}
	return r.Owner + "/" + r.Name
}

// ParsedCreatedAt returns the creation time, preferring created_at.
func (r Repository) ParsedCreatedAt() time.Time {
	if t := parseTime(r.CreatedAt); !t.IsZero() {
		return t
	}
	return parseTime(r.Created)
}

// ParsedPushedAt returns the last push time, preferring pushed_at.
func (r Repository) ParsedPushedAt() time.Time {
	if t := parseTime(r.PushedAt); !t.IsZero() {
		return t
	}
	return parseTime(r.Pushed)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, legacyTimestampLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
