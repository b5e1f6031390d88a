// Package ui provides the visual styling for the Aurora showcase.
// Colors follow the Aurora brand palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aurora/internal/store"
)

// Aurora brand palette.
var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f7f8fa")
	LightForeground = lipgloss.Color("#101528")
	LightPrimary    = lipgloss.Color("#5B3DF5") // Aurora violet
	LightAccent     = lipgloss.Color("#00B894") // Aurora teal
	LightMuted      = lipgloss.Color("#8a8fa3")
	LightBorder     = lipgloss.Color("#d9dce5")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#0e1220")
	DarkForeground = lipgloss.Color("#eceef4")
	DarkPrimary    = lipgloss.Color("#9b87ff") // violet, lifted for contrast
	DarkAccent     = lipgloss.Color("#16dbb1")
	DarkMuted      = lipgloss.Color("#5a6078")
	DarkBorder     = lipgloss.Color("#2a3050")
	DarkCard       = lipgloss.Color("#171c30")

	// Semantic colors, identical in both modes
	Success = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#FFC107")
	Danger  = lipgloss.Color("#e53935")
	Info    = lipgloss.Color("#2196F3")
)

// Theme holds one color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor returns the theme for a store theme mode.
func ThemeFor(mode store.ThemeMode) Theme {
	if mode == store.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// DetectTheme picks a starting theme from the terminal environment.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes are the
	// classic dark terminal palettes.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("AURORA_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds every styled component used by the page.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Showcase surfaces
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style
	FeatureActive lipgloss.Style
	FeatureDim    lipgloss.Style
	SceneDotOn    lipgloss.Style
	SceneDotOff   lipgloss.Style

	// Status / notifications
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Badge   lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		PanelActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Background(theme.Card).
			Padding(1, 3),

		PanelInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Muted).
			Padding(0, 3),

		FeatureActive: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FeatureDim: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Faint(true),

		SceneDotOn: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		SceneDotOff: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// AccentText returns a bold style in an arbitrary scene accent color.
func (s Styles) AccentText(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
