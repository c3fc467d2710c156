package controller

// Surface is the display the controller drives: a loading indicator, a
// results container, an overlay container and a background that can be
// locked against scrolling. Implementations only show what they are told;
// all decisions stay in the controller.
type Surface interface {
	ShowLoader()
	HideLoader()
	// HideResults hides the results container without clearing it.
	HideResults()
	// ShowResults replaces the results content and makes it visible.
	ShowResults(content string)
	// ShowOverlay replaces the overlay content and marks it active.
	ShowOverlay(content string)
	HideOverlay()
	LockScroll()
	UnlockScroll()
}

// Recorder is an in-memory Surface. It backs the non-interactive commands
// and doubles as a test fake.
type Recorder struct {
	LoaderVisible  bool
	ResultsVisible bool
	OverlayActive  bool
	ScrollLocked   bool
	Results        string
	Overlay        string

	// ResultRenders counts ShowResults calls.
	ResultRenders int
	// OverlayRenders counts ShowOverlay calls.
	OverlayRenders int
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) ShowLoader()  { r.LoaderVisible = true }
func (r *Recorder) HideLoader()  { r.LoaderVisible = false }
func (r *Recorder) HideResults() { r.ResultsVisible = false }

func (r *Recorder) ShowResults(content string) {
	r.Results = content
	r.ResultsVisible = true
	r.ResultRenders++
}

func (r *Recorder) ShowOverlay(content string) {
	r.Overlay = content
	r.OverlayActive = true
	r.OverlayRenders++
}

func (r *Recorder) HideOverlay()  { r.OverlayActive = false }
func (r *Recorder) LockScroll()   { r.ScrollLocked = true }
func (r *Recorder) UnlockScroll() { r.ScrollLocked = false }
