package page

import (
	"aurora/cmd/aurora/ui"
	"aurora/internal/scene"
	"aurora/internal/scroll"
)

// sectionsFor lays the page out for one viewport height. The hero and
// closing sections are each one viewport; the showcase carries one extra
// viewport of scroll travel per scene, which is what gives every scene an
// equal slice of the progress range.
func sectionsFor(viewportHeight int) []scroll.Section {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	return []scroll.Section{
		{ID: sectionHero, Height: ui.HeroViewports * viewportHeight},
		{ID: sectionShowcase, Height: ui.ShowcaseViewports(scene.Count()) * viewportHeight},
		{ID: sectionClosing, Height: ui.ClosingViewports * viewportHeight},
	}
}

// showcaseRect returns the showcase section's bounding box in the mapper's
// coordinate space.
func (m Model) showcaseRect() (scene.Rect, bool) {
	r, ok := m.doc.Rect(sectionShowcase)
	if !ok {
		return scene.Rect{}, false
	}
	return scene.Rect{Top: float64(r.Top), Height: float64(r.Height)}, true
}

// sampleShowcase recomputes scene state from current geometry. Called once
// when the page first gets a size, and on every scroll sample after that.
func (m Model) sampleShowcase() {
	rect, ok := m.showcaseRect()
	if !ok {
		return
	}
	m.mapper.Sample(rect, float64(m.doc.ViewportHeight()))
}
