package controller

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/reposearch/internal/cache"
	"github.com/five82/reposearch/internal/github"
	"github.com/five82/reposearch/internal/render"
)

type fakeSearcher struct {
	calls atomic.Int32
	resp  *github.SearchResponse
	err   error
}

func (f *fakeSearcher) Search(_ context.Context, query string) (*github.SearchResponse, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp.WithQuery(query), nil
}

func threeRepos() *github.SearchResponse {
	return &github.SearchResponse{
		Repositories: []github.Repository{
			{Name: "Hello-World", Owner: "octocat", Language: "C", Followers: 10, Description: "My first repo", URL: "https://github.com/octocat/Hello-World"},
			{Name: "Spoon-Knife", Owner: "octocat", Language: "HTML", Followers: 2, URL: "https://github.com/octocat/Spoon-Knife"},
			{Name: "linguist", Owner: "github", Language: "Ruby", Followers: 900, URL: "https://github.com/github/linguist"},
		},
	}
}

func newTestController(t *testing.T, s github.Searcher) (*Controller, *Recorder, *cache.Cache) {
	t.Helper()
	rec := &Recorder{}
	c := cache.New()
	ctrl, err := New(Deps{
		Searcher: s,
		Cache:    c,
		Renderer: render.NewTerminal(render.Palette{}),
		Surface:  rec,
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return ctrl, rec, c
}

// submit drives one query the way the UI does: submit, fetch on a miss,
// then report the outcome.
func submit(t *testing.T, ctrl *Controller, query string) {
	t.Helper()
	if !ctrl.SubmitQuery(query) {
		return
	}
	resp, err := ctrl.Fetch(context.Background(), query)
	if err != nil {
		ctrl.OnSearchFailed(query, err)
		return
	}
	ctrl.OnSearchComplete(query, resp)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	if _, err := New(Deps{Renderer: render.HTML{}, Surface: &Recorder{}}); err == nil {
		t.Fatalf("New without searcher returned nil error")
	}
	if _, err := New(Deps{Searcher: &fakeSearcher{}, Surface: &Recorder{}}); err == nil {
		t.Fatalf("New without renderer returned nil error")
	}
	if _, err := New(Deps{Searcher: &fakeSearcher{}, Renderer: render.HTML{}}); err == nil {
		t.Fatalf("New without surface returned nil error")
	}
	ctrl, err := New(Deps{Searcher: &fakeSearcher{}, Renderer: render.HTML{}, Surface: &Recorder{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if ctrl.cache == nil || ctrl.cache.Len() != 0 {
		t.Fatalf("nil cache was not replaced with an empty one")
	}
	if st := ctrl.State(); st.Phase != PhaseIdle || st.Selected != -1 {
		t.Fatalf("initial state = %+v", st)
	}
}

func TestSubmitQuery_MissShowsLoaderAndHidesResults(t *testing.T) {
	fs := &fakeSearcher{resp: threeRepos()}
	ctrl, rec, _ := newTestController(t, fs)
	rec.ResultsVisible = true

	if pending := ctrl.SubmitQuery("octocat"); !pending {
		t.Fatalf("SubmitQuery on empty cache returned pending=false")
	}
	if !rec.LoaderVisible || rec.ResultsVisible {
		t.Fatalf("surface after submit = %+v, want loader shown and results hidden", rec)
	}
	if got := ctrl.State().Phase; got != PhaseLoading {
		t.Fatalf("Phase = %v, want loading", got)
	}
	if fs.calls.Load() != 0 {
		t.Fatalf("SubmitQuery called the searcher directly")
	}
}

func TestCompletion_RendersAndCaches(t *testing.T) {
	fs := &fakeSearcher{resp: threeRepos()}
	ctrl, rec, c := newTestController(t, fs)

	submit(t, ctrl, "octocat")

	if rec.LoaderVisible || !rec.ResultsVisible {
		t.Fatalf("surface after completion = %+v", rec)
	}
	if !strings.Contains(rec.Results, "Search Results for octocat") {
		t.Fatalf("Results = %q", rec.Results)
	}
	if _, ok := c.Get("octocat"); !ok {
		t.Fatalf("completion was not cached under the normalized key")
	}
	if st := ctrl.State(); st.Phase != PhaseListShown || st.Current.Len() != 3 {
		t.Fatalf("state after completion = %+v", st)
	}
}

func TestEquivalentQueries_UseCache(t *testing.T) {
	fs := &fakeSearcher{resp: threeRepos()}
	ctrl, rec, c := newTestController(t, fs)

	submit(t, ctrl, "octocat")
	if pending := ctrl.SubmitQuery("  Octocat  "); pending {
		t.Fatalf("equivalent query was not served from cache")
	}

	if got := fs.calls.Load(); got != 1 {
		t.Fatalf("searcher calls = %d, want 1", got)
	}
	if c.Len() != 1 {
		t.Fatalf("cache entries = %d, want 1", c.Len())
	}
	if rec.LoaderVisible || !rec.ResultsVisible {
		t.Fatalf("surface after cache hit = %+v", rec)
	}
	if !strings.Contains(rec.Results, "Search Results for   Octocat  ") {
		t.Fatalf("cache hit heading = %q, want the new query", rec.Results)
	}
	cached, _ := c.Get("octocat")
	if cached.Query != "octocat" {
		t.Fatalf("cache hit mutated the stored entry: Query = %q", cached.Query)
	}
}

func TestSelectRecord_RendersChosenRecord(t *testing.T) {
	ctrl, rec, _ := newTestController(t, &fakeSearcher{resp: threeRepos()})
	submit(t, ctrl, "octocat")

	if !ctrl.SelectRecord(1) {
		t.Fatalf("SelectRecord(1) returned false")
	}
	if !rec.OverlayActive || !rec.ScrollLocked {
		t.Fatalf("surface after select = %+v", rec)
	}
	if !strings.Contains(rec.Overlay, "Repository Details for Spoon-Knife") {
		t.Fatalf("Overlay = %q, want record 1", rec.Overlay)
	}
	if st := ctrl.State(); !st.OverlayOpen || st.Selected != 1 {
		t.Fatalf("state after select = %+v", st)
	}
}

func TestSelectRecord_OutOfRangeIgnored(t *testing.T) {
	ctrl, rec, _ := newTestController(t, &fakeSearcher{resp: threeRepos()})

	if ctrl.SelectRecord(0) {
		t.Fatalf("SelectRecord with no list returned true")
	}
	submit(t, ctrl, "octocat")
	for _, idx := range []int{-1, 3, 99} {
		if ctrl.SelectRecord(idx) {
			t.Fatalf("SelectRecord(%d) returned true", idx)
		}
	}
	if rec.OverlayActive || rec.OverlayRenders != 0 {
		t.Fatalf("out-of-range select touched the overlay: %+v", rec)
	}
}

func TestSelectRecord_EmptyDescription(t *testing.T) {
	ctrl, rec, _ := newTestController(t, &fakeSearcher{resp: threeRepos()})
	submit(t, ctrl, "octocat")
	ctrl.SelectRecord(1)

	for _, line := range strings.Split(rec.Overlay, "\n") {
		if strings.HasPrefix(line, "Description:") {
			if strings.TrimSpace(line) != "Description:" {
				t.Fatalf("description line = %q, want empty value", line)
			}
			return
		}
	}
	t.Fatalf("overlay has no description line:\n%s", rec.Overlay)
}

func TestDismissOverlay_UnlocksScroll(t *testing.T) {
	ctrl, rec, _ := newTestController(t, &fakeSearcher{resp: threeRepos()})
	submit(t, ctrl, "octocat")
	ctrl.SelectRecord(2)

	ctrl.DismissOverlay()
	if rec.OverlayActive || rec.ScrollLocked {
		t.Fatalf("surface after dismiss = %+v", rec)
	}
	if st := ctrl.State(); st.OverlayOpen || st.Selected != -1 {
		t.Fatalf("state after dismiss = %+v", st)
	}

	// Dismissing again is harmless.
	ctrl.DismissOverlay()
	if rec.OverlayActive || rec.ScrollLocked {
		t.Fatalf("second dismiss changed surface: %+v", rec)
	}
}

func TestFailure_HidesLoaderAndCachesNothing(t *testing.T) {
	failure := &github.NetworkError{Query: "octocat", StatusCode: 403, Err: errors.New("forbidden")}
	fs := &fakeSearcher{err: failure}
	ctrl, rec, c := newTestController(t, fs)

	submit(t, ctrl, "octocat")

	if rec.LoaderVisible {
		t.Fatalf("loader still visible after failure")
	}
	if rec.ResultsVisible || rec.ResultRenders != 0 {
		t.Fatalf("failure rendered results: %+v", rec)
	}
	if c.Len() != 0 {
		t.Fatalf("failure was cached")
	}
	st := ctrl.State()
	if st.Phase != PhaseIdle || !errors.Is(st.LastErr, failure) {
		t.Fatalf("state after failure = %+v", st)
	}

	// A retry goes back to the network.
	submit(t, ctrl, "octocat")
	if got := fs.calls.Load(); got != 2 {
		t.Fatalf("searcher calls = %d, want 2", got)
	}
}

func TestFailure_AfterListKeepsNothingVisible(t *testing.T) {
	fs := &fakeSearcher{resp: threeRepos()}
	ctrl, rec, _ := newTestController(t, fs)
	submit(t, ctrl, "octocat")

	fs.err = errors.New("offline")
	submit(t, ctrl, "hubot")
	if rec.ResultsVisible {
		t.Fatalf("old results shown after failed search")
	}
	if rec.ResultRenders != 1 {
		t.Fatalf("ResultRenders = %d, want 1", rec.ResultRenders)
	}
}

func TestLateCompletion_LastWins(t *testing.T) {
	ctrl, rec, c := newTestController(t, &fakeSearcher{resp: threeRepos()})

	ctrl.SubmitQuery("first")
	ctrl.SubmitQuery("second")
	ctrl.OnSearchComplete("second", &github.SearchResponse{Query: "second", Repositories: []github.Repository{{Name: "b"}}})
	ctrl.OnSearchComplete("first", &github.SearchResponse{Query: "first", Repositories: []github.Repository{{Name: "a"}}})

	if !strings.Contains(rec.Results, "Search Results for first") {
		t.Fatalf("Results = %q, want the last completion", rec.Results)
	}
	if c.Len() != 2 {
		t.Fatalf("cache entries = %d, want 2", c.Len())
	}
}

func TestOnSearchComplete_NilResponse(t *testing.T) {
	ctrl, rec, c := newTestController(t, &fakeSearcher{resp: threeRepos()})
	ctrl.SubmitQuery("nothing")
	ctrl.OnSearchComplete("nothing", nil)

	if !rec.ResultsVisible {
		t.Fatalf("nil response did not render")
	}
	cached, ok := c.Get("nothing")
	if !ok || cached.Len() != 0 || cached.Query != "nothing" {
		t.Fatalf("cached = %+v, ok = %v", cached, ok)
	}
}

func TestRefresh_RerendersVisibleContent(t *testing.T) {
	ctrl, rec, _ := newTestController(t, &fakeSearcher{resp: threeRepos()})

	ctrl.Refresh()
	if rec.ResultRenders != 0 || rec.OverlayRenders != 0 {
		t.Fatalf("Refresh on idle session rendered: %+v", rec)
	}

	submit(t, ctrl, "octocat")
	ctrl.SelectRecord(0)
	ctrl.Refresh()
	if rec.ResultRenders != 2 || rec.OverlayRenders != 2 {
		t.Fatalf("renders after Refresh = %d/%d, want 2/2", rec.ResultRenders, rec.OverlayRenders)
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{PhaseIdle: "idle", PhaseLoading: "loading", PhaseListShown: "list", Phase(9): "phase(9)"}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
