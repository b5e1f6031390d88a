package scene

import (
	"math"

	"go.uber.org/zap"

	"aurora/internal/store"
)

// Rect is a tracked section's bounding box relative to the viewport top,
// measured in rows. Top is negative once the section's top edge has scrolled
// past the top of the screen.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the section's bottom edge relative to the viewport top.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Mapping is the derived triple pushed into the store per scroll sample.
type Mapping struct {
	Scene    int
	Progress float64
	Features []string
}

// Mapper converts section geometry into scene state. It is the only writer
// of the store's animation state. Each sample is a complete recomputation
// from current geometry; nothing is accumulated between calls, so coalesced
// or reordered scroll events cannot corrupt the result.
type Mapper struct {
	store  *store.Store
	logger *zap.Logger
	last   Mapping
}

// NewMapper wires a mapper to its store. A nil logger is replaced with a nop.
func NewMapper(st *store.Store, logger *zap.Logger) *Mapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mapper{store: st, logger: logger}
}

// Sample maps one scroll observation onto the catalog and dispatches the
// derived scene index, progress and feature list as a single store update.
//
// The section is inside the mapped interaction window only while it spans
// the whole viewport: top edge at or above the screen top and bottom edge at
// or below the screen bottom. Outside that window nothing is dispatched and
// the store keeps its last value; scene and progress freeze at the entry and
// exit boundaries instead of resetting. Sections shorter than the viewport
// therefore never produce an update. That mirrors the interaction policy of
// the page this showcase animates and is intentional.
func (m *Mapper) Sample(rect Rect, viewportHeight float64) (Mapping, bool) {
	if !InWindow(rect, viewportHeight) {
		return Mapping{}, false
	}

	p := Progress(rect, viewportHeight)
	idx := IndexFor(p, Count())
	mapping := Mapping{
		Scene:    idx,
		Progress: p,
		Features: FeaturesAt(idx),
	}

	m.store.Apply(
		store.SetCurrentScene{Index: mapping.Scene},
		store.SetScrollProgress{Fraction: mapping.Progress},
		store.SetActiveFeatures{Features: mapping.Features},
	)

	if mapping.Scene != m.last.Scene {
		m.logger.Debug("scene changed",
			zap.Int("from", m.last.Scene),
			zap.Int("to", mapping.Scene),
			zap.Float64("progress", mapping.Progress),
		)
	}
	m.last = mapping

	return mapping, true
}

// InWindow reports whether the section currently spans the full viewport,
// the only range in which scene and progress updates are computed. Display
// surfaces use the same predicate to decide when the showcase panel pins.
func InWindow(rect Rect, viewportHeight float64) bool {
	return rect.Top <= 0 && rect.Bottom() >= viewportHeight
}

// Progress returns the clamped fraction of the section's extra scrollable
// height (beyond one viewport) already scrolled past. The division guards:
// a section no taller than the viewport, floating-point overshoot at the
// boundaries, and a zero denominator all land inside [0,1].
func Progress(rect Rect, viewportHeight float64) float64 {
	denom := rect.Height - viewportHeight
	if denom <= 0 {
		return 0
	}
	p := math.Abs(rect.Top) / denom
	return clamp01(p)
}

// IndexFor maps a clamped progress fraction onto a scene index. Progress of
// exactly 1.0 resolves to the last scene, never one past the end.
func IndexFor(progress float64, count int) int {
	if count < 1 {
		return 0
	}
	idx := int(math.Floor(clamp01(progress) * float64(count)))
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
