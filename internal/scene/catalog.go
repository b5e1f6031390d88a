// Package scene holds the static showcase catalog and the scroll-to-scene
// mapping engine. The catalog is compile-time data shared by the mapper and
// every display surface; nothing mutates it at runtime.
package scene

import "github.com/charmbracelet/lipgloss"

// Scene is one step of the scroll narrative.
type Scene struct {
	Title    string
	Subtitle string
	Features []string
	Icon     string
	Accent   lipgloss.Color
}

// catalog is the fixed scene table for the Aurora showcase.
var catalog = []Scene{
	{
		Title:    "Instant Everywhere",
		Subtitle: "Pages load before you finish the thought.",
		Features: []string{
			"Cold start in under 200 ms",
			"Tab hibernation reclaims memory you forgot you spent",
			"Speculative loading warms the next link",
			"GPU-accelerated compositing on every platform",
		},
		Icon:   "⚡",
		Accent: lipgloss.Color("#FFC107"),
	},
	{
		Title:    "Private by Design",
		Subtitle: "Tracking ends at your address bar.",
		Features: []string{
			"Tracker blocking on by default",
			"Fingerprint randomization per site",
			"Zero-knowledge encrypted sync",
			"One key purges cookies for the current site",
		},
		Icon:   "🛡",
		Accent: lipgloss.Color("#8BC34A"),
	},
	{
		Title:    "Your Workspace",
		Subtitle: "A browser that organizes itself around your work.",
		Features: []string{
			"Vertical tab stacks with drag grouping",
			"Profiles per project, switched instantly",
			"Split-screen browsing without extensions",
			"Command palette for everything",
		},
		Icon:   "🗂",
		Accent: lipgloss.Color("#2196F3"),
	},
	{
		Title:    "Built to Extend",
		Subtitle: "Yours to reshape, top to bottom.",
		Features: []string{
			"WebExtension compatible out of the box",
			"Userscripts and CSS themes, no store required",
			"Every keybinding is scriptable",
			"Open core with telemetry stripped, not hidden",
		},
		Icon:   "🧩",
		Accent: lipgloss.Color("#9C27B0"),
	},
}

// Catalog returns the scene table. Callers must treat it as read-only.
func Catalog() []Scene {
	return catalog
}

// Count returns the number of scenes.
func Count() int {
	return len(catalog)
}

// At returns the scene at index i, or false when i is out of range.
func At(i int) (Scene, bool) {
	if i < 0 || i >= len(catalog) {
		return Scene{}, false
	}
	return catalog[i], true
}

// FeaturesAt returns the feature list at index i, or an empty list when the
// lookup fails. Surfaces rely on this never returning an error.
func FeaturesAt(i int) []string {
	sc, ok := At(i)
	if !ok {
		return []string{}
	}
	return sc.Features
}
