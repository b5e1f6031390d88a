// Package scroll models the showcase page as a scrollable column of
// sections and provides the sampler that reports section visibility and
// scroll offset to subscribers. It is the terminal counterpart of a scroll
// listener plus an intersection observer: subscribers are passive, they are
// told about scroll samples and can never consume or cancel them.
package scroll

import "sync"

// Section is one vertical band of the page, measured in rows.
type Section struct {
	ID     string
	Height int
}

// Rect is a section's bounding box relative to the top of the visible
// viewport, in rows.
type Rect struct {
	Top    int
	Height int
}

// Bottom returns the section's bottom edge relative to the viewport top.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Document holds the section layout, the current scroll offset and the
// viewport height, and fans scroll samples out to registered listeners.
type Document struct {
	mu             sync.Mutex
	sections       []Section
	tops           map[string]int
	height         int
	offset         int
	viewportHeight int
	listeners      map[int]func(offset int)
	nextListener   int
}

// NewDocument lays out the sections top to bottom for the given viewport
// height.
func NewDocument(viewportHeight int, sections ...Section) *Document {
	d := &Document{
		viewportHeight: viewportHeight,
		listeners:      make(map[int]func(int)),
	}
	d.SetSections(sections...)
	return d
}

// SetSections replaces the page layout, keeping the current offset clamped
// to the new page height. Used on terminal resize, where section heights are
// recomputed from the new viewport.
func (d *Document) SetSections(sections ...Section) {
	d.mu.Lock()
	d.sections = append([]Section(nil), sections...)
	d.tops = make(map[string]int, len(sections))
	top := 0
	for _, s := range sections {
		d.tops[s.ID] = top
		top += s.Height
	}
	d.height = top
	d.offset = d.clampOffset(d.offset)
	d.mu.Unlock()
}

// SetViewportHeight records a new viewport height and re-clamps the offset.
func (d *Document) SetViewportHeight(h int) {
	d.mu.Lock()
	d.viewportHeight = h
	d.offset = d.clampOffset(d.offset)
	d.mu.Unlock()
}

// ViewportHeight returns the current viewport height in rows.
func (d *Document) ViewportHeight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewportHeight
}

// Height returns the total page height in rows.
func (d *Document) Height() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.height
}

// Offset returns the current scroll offset from the page top.
func (d *Document) Offset() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.offset
}

// MaxOffset returns the largest reachable scroll offset.
func (d *Document) MaxOffset() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.maxOffset()
}

// Rect returns the bounding box of the section with the given ID relative
// to the viewport top, or false when no such section exists.
func (d *Document) Rect(id string) (Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	top, ok := d.tops[id]
	if !ok {
		return Rect{}, false
	}
	for _, s := range d.sections {
		if s.ID == id {
			return Rect{Top: top - d.offset, Height: s.Height}, true
		}
	}
	return Rect{}, false
}

// ScrollTo moves to the given offset, clamped to the page bounds, and
// notifies scroll listeners when the offset actually changed.
func (d *Document) ScrollTo(offset int) {
	d.mu.Lock()
	clamped := d.clampOffset(offset)
	if clamped == d.offset {
		d.mu.Unlock()
		return
	}
	d.offset = clamped
	fns := make([]func(int), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(clamped)
	}
}

// ScrollBy moves by delta rows, clamped to the page bounds.
func (d *Document) ScrollBy(delta int) {
	d.ScrollTo(d.Offset() + delta)
}

// OnScroll registers a passive scroll listener and returns its removal
// func. Removal is unconditional and idempotent; removing after the
// document has been rebuilt is still safe.
func (d *Document) OnScroll(fn func(offset int)) (cancel func()) {
	d.mu.Lock()
	id := d.nextListener
	d.nextListener++
	d.listeners[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

func (d *Document) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if max := d.maxOffset(); offset > max {
		return max
	}
	return offset
}

func (d *Document) maxOffset() int {
	max := d.height - d.viewportHeight
	if max < 0 {
		return 0
	}
	return max
}
