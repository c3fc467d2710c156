// Package controller implements the search session: query submission, cache
// lookup, result rendering and the detail overlay.
package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/reposearch/internal/cache"
	"github.com/five82/reposearch/internal/github"
	"github.com/five82/reposearch/internal/render"
	"github.com/five82/reposearch/internal/slug"
)

// Handler is the set of events the UI feeds into a session.
type Handler interface {
	// SubmitQuery starts a search. It reports true when the result is not
	// cached and the caller must run Fetch and report the outcome.
	SubmitQuery(query string) bool
	// SelectRecord opens the overlay for record index of the displayed list.
	SelectRecord(index int) bool
	// DismissOverlay closes the overlay and unlocks scrolling.
	DismissOverlay()
	// OnSearchComplete stores and renders a successful search.
	OnSearchComplete(query string, resp *github.SearchResponse)
	// OnSearchFailed reports a failed search.
	OnSearchFailed(query string, err error)
}

// Ensure Controller implements Handler at compile time.
var _ Handler = (*Controller)(nil)

// Phase is the list-side state of the session. Overlay visibility is
// tracked separately because the overlay sits above whatever the list shows.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseListShown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseListShown:
		return "list"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the transient UI state of a session.
type State struct {
	Query       string
	Phase       Phase
	OverlayOpen bool
	Selected    int // record index in the overlay, -1 when closed
	Current     *github.SearchResponse
	LastErr     error
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Searcher github.Searcher
	Cache    *cache.Cache
	Renderer render.Renderer
	Surface  Surface
	Logger   zerolog.Logger
}

// Controller owns one search session. Every method except Fetch must be
// called from the UI's event loop.
type Controller struct {
	searcher github.Searcher
	cache    *cache.Cache
	renderer render.Renderer
	surface  Surface
	log      zerolog.Logger
	state    State
}

// New builds a Controller. A nil cache gets a fresh one.
func New(d Deps) (*Controller, error) {
	if d.Searcher == nil {
		return nil, fmt.Errorf("controller requires a searcher")
	}
	if d.Renderer == nil {
		return nil, fmt.Errorf("controller requires a renderer")
	}
	if d.Surface == nil {
		return nil, fmt.Errorf("controller requires a surface")
	}
	if d.Cache == nil {
		d.Cache = cache.New()
	}
	return &Controller{
		searcher: d.Searcher,
		cache:    d.Cache,
		renderer: d.Renderer,
		surface:  d.Surface,
		log:      d.Logger,
		state:    State{Phase: PhaseIdle, Selected: -1},
	}, nil
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	return c.state
}

// SubmitQuery shows the loader, hides the current list and either renders a
// cached result immediately or asks the caller to fetch.
func (c *Controller) SubmitQuery(query string) bool {
	c.state.Query = query
	c.state.Phase = PhaseLoading
	c.state.LastErr = nil
	c.surface.ShowLoader()
	c.surface.HideResults()

	key := slug.Normalize(query)
	if cached, ok := c.cache.Get(key); ok {
		c.log.Debug().Str("query", query).Str("key", key).Int("cached", c.cache.Len()).Msg("cache hit")
		c.showList(cached.WithQuery(query))
		return false
	}
	c.log.Debug().Str("query", query).Str("key", key).Msg("cache miss")
	return true
}

// Fetch runs the search for query. It does not touch session state and is
// safe to call off the event loop.
func (c *Controller) Fetch(ctx context.Context, query string) (*github.SearchResponse, error) {
	return c.searcher.Search(ctx, query)
}

// OnSearchComplete caches resp under the normalized query and renders it.
// Completions are applied in arrival order; a late completion replaces
// whatever an earlier one stored or displayed.
func (c *Controller) OnSearchComplete(query string, resp *github.SearchResponse) {
	if resp == nil {
		resp = &github.SearchResponse{Repositories: []github.Repository{}}
	}
	if resp.Query != query {
		resp = resp.WithQuery(query)
	}
	c.cache.Put(slug.Normalize(query), resp)
	c.showList(resp)
}

// OnSearchFailed hides the loader and drops the query. Nothing is rendered
// or cached; the error is only logged and kept in State.LastErr.
func (c *Controller) OnSearchFailed(query string, err error) {
	c.surface.HideLoader()
	c.state.Phase = PhaseIdle
	c.state.LastErr = err
	c.log.Warn().Err(err).Str("query", query).Msg("search failed")
}

// SelectRecord renders record index of the displayed response into the
// overlay. An index outside the current list is ignored.
func (c *Controller) SelectRecord(index int) bool {
	repo, ok := c.state.Current.At(index)
	if !ok {
		return false
	}
	c.log.Debug().Int("index", index).Str("repo", repo.FullName()).Msg("record selected")
	c.surface.ShowOverlay(c.renderer.Detail(repo))
	c.surface.LockScroll()
	c.state.OverlayOpen = true
	c.state.Selected = index
	return true
}

// DismissOverlay closes the overlay regardless of which record it showed.
func (c *Controller) DismissOverlay() {
	c.surface.HideOverlay()
	c.surface.UnlockScroll()
	c.state.OverlayOpen = false
	c.state.Selected = -1
}

// Refresh re-renders whatever is visible, e.g. after a palette change.
func (c *Controller) Refresh() {
	if c.state.Phase == PhaseListShown && c.state.Current != nil {
		c.surface.ShowResults(c.renderer.List(c.state.Current))
	}
	if c.state.OverlayOpen {
		if repo, ok := c.state.Current.At(c.state.Selected); ok {
			c.surface.ShowOverlay(c.renderer.Detail(repo))
		}
	}
}

func (c *Controller) showList(resp *github.SearchResponse) {
	c.surface.HideLoader()
	c.state.Current = resp
	c.state.Phase = PhaseListShown
	c.surface.ShowResults(c.renderer.List(resp))
}
