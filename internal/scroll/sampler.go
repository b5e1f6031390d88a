package scroll

import "sync"

// DefaultVisibilityThreshold is the visible fraction at which a section
// counts as on screen. Static policy, not configuration.
const DefaultVisibilityThreshold = 0.1

// Sampler observes one target section of a document through two independent
// subscriptions: a visibility observer that fires when the section's visible
// fraction crosses the threshold in either direction, and a scroll listener
// that reports every global offset change. Both are installed by Attach and
// removed by Detach.
type Sampler struct {
	mu        sync.Mutex
	doc       *Document
	target    string
	threshold float64

	visible       bool
	cancelScroll  func()
	cancelVisible func()
}

// NewSampler creates a sampler for the given section ID using the default
// visibility threshold.
func NewSampler(doc *Document, target string) *Sampler {
	return &Sampler{
		doc:       doc,
		target:    target,
		threshold: DefaultVisibilityThreshold,
	}
}

// Attach installs both subscriptions. onScroll receives every offset change;
// onVisible fires on threshold crossings, and once immediately to establish
// the starting visibility. Either callback may be nil.
//
// When the target section does not exist in the document the sampler stays
// inactive: nothing is observed and nothing fires. That is not an error,
// the section simply is not attached yet.
func (s *Sampler) Attach(onScroll func(offset int), onVisible func(visible bool)) {
	s.mu.Lock()
	if s.cancelScroll != nil || s.cancelVisible != nil {
		s.mu.Unlock()
		return // already attached
	}
	if _, ok := s.doc.Rect(s.target); !ok {
		s.mu.Unlock()
		return
	}

	if onScroll != nil {
		s.cancelScroll = s.doc.OnScroll(onScroll)
	}

	s.visible = s.visibleFractionLocked() >= s.threshold
	initial := s.visible
	s.cancelVisible = s.doc.OnScroll(func(int) {
		s.mu.Lock()
		now := s.visibleFractionLocked() >= s.threshold
		crossed := now != s.visible
		s.visible = now
		s.mu.Unlock()
		if crossed && onVisible != nil {
			onVisible(now)
		}
	})
	s.mu.Unlock()

	if onVisible != nil {
		onVisible(initial)
	}
}

// Detach removes both subscriptions. It never fails: detaching a sampler
// that was never attached, or detaching twice, is a no-op.
func (s *Sampler) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelScroll != nil {
		s.cancelScroll()
		s.cancelScroll = nil
	}
	if s.cancelVisible != nil {
		s.cancelVisible()
		s.cancelVisible = nil
	}
}

// Visible reports whether the target was at or above the visibility
// threshold at the last scroll sample.
func (s *Sampler) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// VisibleFraction returns the fraction of the target section currently
// inside the viewport, in [0,1]. A missing target reads as 0.
func (s *Sampler) VisibleFraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleFractionLocked()
}

func (s *Sampler) visibleFractionLocked() float64 {
	rect, ok := s.doc.Rect(s.target)
	if !ok || rect.Height <= 0 {
		return 0
	}
	top := rect.Top
	if top < 0 {
		top = 0
	}
	bottom := rect.Bottom()
	if vh := s.doc.ViewportHeight(); bottom > vh {
		bottom = vh
	}
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(rect.Height)
}
