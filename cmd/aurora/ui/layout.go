// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for the page chrome and section sizing.
const (
	HeaderHeight = 1
	FooterHeight = 1

	ContentHorizontalPadding = 4

	// Section heights, in viewports. The showcase carries one extra
	// viewport of scrollable height per scene so each scene owns an equal
	// slice of the scroll range.
	HeroViewports    = 1
	ClosingViewports = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 50
	MinimumTerminalHeight = 16
	CompactModeWidth      = 80

	// Panel sizing
	PanelBorderWidth = 2
	PanelPaddingH    = 3
	MinPanelWidth    = 36
	MaxPanelWidth    = 72
)

// LayoutConfig provides computed dimensions for a terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the usable row width between the side paddings.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - ContentHorizontalPadding
	if w < 0 {
		return 0
	}
	return w
}

// ContentHeight returns the page viewport height: everything between the
// header and the footer.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// ShowcaseViewports returns the showcase section height in viewports for a
// scene count: one viewport on screen plus one of scroll travel per scene.
func ShowcaseViewports(sceneCount int) int {
	if sceneCount < 1 {
		return 1
	}
	return sceneCount + 1
}

// PanelWidth returns the showcase panel width for a content width.
func PanelWidth(contentWidth int) int {
	w := contentWidth - 2*PanelBorderWidth
	if w > MaxPanelWidth {
		return MaxPanelWidth
	}
	if w < MinPanelWidth {
		return MinPanelWidth
	}
	return w
}
