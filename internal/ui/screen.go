package ui

import "github.com/five82/reposearch/internal/controller"

// screen is the display state the controller drives. The model reads it in
// View; only the controller writes it.
type screen struct {
	loading       bool
	resultsShown  bool
	results       string
	overlayActive bool
	overlay       string
	scrollLocked  bool
}

var _ controller.Surface = (*screen)(nil)

func (s *screen) ShowLoader()  { s.loading = true }
func (s *screen) HideLoader()  { s.loading = false }
func (s *screen) HideResults() { s.resultsShown = false }

func (s *screen) ShowResults(content string) {
	s.results = content
	s.resultsShown = true
}

func (s *screen) ShowOverlay(content string) {
	s.overlay = content
	s.overlayActive = true
}

func (s *screen) HideOverlay()  { s.overlayActive = false }
func (s *screen) LockScroll()   { s.scrollLocked = true }
func (s *screen) UnlockScroll() { s.scrollLocked = false }
