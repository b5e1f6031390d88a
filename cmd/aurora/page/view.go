package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"aurora/cmd/aurora/ui"
	"aurora/internal/scene"
	"aurora/internal/store"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.layout.TerminalWidth < ui.MinimumTerminalWidth ||
		m.layout.TerminalHeight < ui.MinimumTerminalHeight {
		return m.styles.Muted.Render("Terminal too small — Aurora needs at least " +
			fmt.Sprintf("%dx%d.", ui.MinimumTerminalWidth, ui.MinimumTerminalHeight))
	}

	st := m.store.State()
	if st.UI.Loading && !m.cfg.UI.ReducedMotion {
		return m.renderSplash()
	}

	body := m.renderBody(st)
	if st.UI.MobileMenuOpen {
		body = m.renderMenu(st)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(st),
		body,
		m.renderFooter(st),
	)
}

// =============================================================================
// HEADER INDICATOR
// =============================================================================

// renderHeader is the scene/progress indicator: brand badge, one dot per
// scene, a progress bar bound to the normalized scroll progress. In compact
// terminals everything but the badge collapses behind the menu toggle.
func (m Model) renderHeader(st store.State) string {
	brand := m.styles.Header.Render(" Aurora ")

	if m.layout.IsCompact {
		hint := m.styles.Muted.Render(" m ≡")
		if st.UI.MobileMenuOpen {
			hint = m.styles.Muted.Render(" m ✕")
		}
		return m.headerLine(brand + hint)
	}

	title := ""
	if sc, ok := scene.At(st.Animation.CurrentScene); ok {
		title = m.styles.Subtitle.Render(sc.Title)
	}

	parts := []string{
		brand,
		" ",
		m.sceneDots(st.Animation.CurrentScene),
		" ",
		m.progress.ViewAs(st.Animation.ScrollProgress),
		m.styles.Muted.Render(fmt.Sprintf(" %3.0f%% ", st.Animation.ScrollProgress*100)),
		title,
	}
	return m.headerLine(strings.Join(parts, ""))
}

func (m Model) headerLine(content string) string {
	return lipgloss.NewStyle().
		Width(m.layout.TerminalWidth).
		MaxHeight(ui.HeaderHeight).
		Render(content)
}

func (m Model) sceneDots(current int) string {
	var sb strings.Builder
	for i := 0; i < scene.Count(); i++ {
		if i == current {
			sb.WriteString(m.styles.SceneDotOn.Render("●"))
		} else {
			sb.WriteString(m.styles.SceneDotOff.Render("○"))
		}
	}
	return sb.String()
}

// =============================================================================
// PAGE BODY
// =============================================================================

// renderBody shows either the pinned showcase (while the showcase section
// spans the viewport) or a plain window onto the page column. The pinning
// predicate is the mapper's window check, so the panel pins exactly while
// scene updates are computed.
func (m Model) renderBody(st store.State) string {
	vh := m.layout.ContentHeight()

	if rect, ok := m.showcaseRect(); ok && scene.InWindow(rect, float64(vh)) {
		return m.renderShowcase(st)
	}

	lines := m.pageLines(st)
	off := m.doc.Offset()
	if off > len(lines) {
		off = len(lines)
	}
	end := off + vh
	if end > len(lines) {
		end = len(lines)
	}
	window := append([]string(nil), lines[off:end]...)
	for len(window) < vh {
		window = append(window, "")
	}
	return strings.Join(window, "\n")
}

// pageLines renders the full page column once per (size, theme) and returns
// it as rows. Scroll only changes which rows are shown.
func (m Model) pageLines(st store.State) []string {
	var lines []string
	lines = append(lines, m.heroLines()...)
	lines = append(lines, m.showcaseBandLines()...)
	lines = append(lines, m.closingLines(st)...)
	return lines
}

func (m Model) heroLines() []string {
	vh := m.layout.ContentHeight()
	key := ui.Key("hero", m.layout.TerminalWidth, vh, m.styles.Theme.IsDark)
	block, ok := m.cache.Get(key)
	if !ok {
		hero := m.renderer.Hero()
		scrollHint := m.styles.Muted.Render("▼ scroll")
		block = lipgloss.Place(m.layout.TerminalWidth, ui.HeroViewports*vh,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, hero, scrollHint))
		m.cache.Set(key, block)
	}
	return splitToHeight(block, ui.HeroViewports*vh)
}

// showcaseBandLines fills the showcase section's scroll run with dimmed
// scene markers. These rows are only ever visible at the fringes, while the
// section is entering or leaving the viewport; in between, the pinned panel
// covers the window.
func (m Model) showcaseBandLines() []string {
	vh := m.layout.ContentHeight()
	total := ui.ShowcaseViewports(scene.Count()) * vh

	key := ui.Key("bands", m.layout.TerminalWidth, total, m.styles.Theme.IsDark)
	block, ok := m.cache.Get(key)
	if !ok {
		count := scene.Count()
		bandRows := total / count
		var bands []string
		for i, sc := range scene.Catalog() {
			rows := bandRows
			if i == count-1 {
				rows = total - bandRows*(count-1)
			}
			marker := lipgloss.JoinVertical(lipgloss.Center,
				m.styles.FeatureDim.Render(sc.Icon+"  "+sc.Title),
				m.styles.FeatureDim.Render(sc.Subtitle),
			)
			bands = append(bands, lipgloss.Place(m.layout.TerminalWidth, rows,
				lipgloss.Center, lipgloss.Center, marker))
		}
		block = strings.Join(bands, "\n")
		m.cache.Set(key, block)
	}
	return splitToHeight(block, total)
}

// closingLines renders the summary panel and final CTA. The summary is
// visibility-gated: until the closing section crosses the sampler's
// threshold it stays blank, entering only when actually reached.
func (m Model) closingLines(st store.State) []string {
	vh := m.layout.ContentHeight()
	visible := m.closing.Visible()

	key := ui.Key("closing", m.layout.TerminalWidth, vh, m.styles.Theme.IsDark, visible)
	block, ok := m.cache.Get(key)
	if !ok {
		inner := ""
		if visible {
			var summary []string
			summary = append(summary, m.styles.Title.Render("Everything you just scrolled past"))
			for _, sc := range scene.Catalog() {
				summary = append(summary, fmt.Sprintf("%s %s — %s",
					sc.Icon,
					m.styles.AccentText(sc.Accent).Render(sc.Title),
					m.styles.Muted.Render(sc.Subtitle)))
			}
			summary = append(summary, "", m.renderer.Closing(),
				m.styles.Badge.Render(" ⏎ Get Aurora "))
			inner = lipgloss.JoinVertical(lipgloss.Center, summary...)
		}
		block = lipgloss.Place(m.layout.TerminalWidth, ui.ClosingViewports*vh,
			lipgloss.Center, lipgloss.Center, inner)
		m.cache.Set(key, block)
	}
	return splitToHeight(block, ui.ClosingViewports*vh)
}

// =============================================================================
// PINNED SHOWCASE
// =============================================================================

// renderShowcase is the pinned panel set. Each scene owns a panel; the panel
// whose index equals the current scene renders expanded with its feature
// list, every other panel collapses to a single line. The styling derives
// only from that index equality, never from the continuous progress value.
func (m Model) renderShowcase(st store.State) string {
	current := st.Animation.CurrentScene
	width := ui.PanelWidth(m.layout.ContentWidth())

	var panels []string
	for i, sc := range scene.Catalog() {
		if i == current {
			panels = append(panels, m.renderActivePanel(sc, st, width))
			continue
		}
		if m.layout.IsCompact {
			continue // collapsed panels don't fit small terminals
		}
		panels = append(panels, m.styles.PanelInactive.Width(width).Render(
			fmt.Sprintf("%s  %s", sc.Icon, sc.Title)))
	}

	stack := lipgloss.JoinVertical(lipgloss.Left, panels...)
	return lipgloss.Place(m.layout.TerminalWidth, m.layout.ContentHeight(),
		lipgloss.Center, lipgloss.Center, stack)
}

func (m Model) renderActivePanel(sc scene.Scene, st store.State, width int) string {
	var sb strings.Builder
	sb.WriteString(m.styles.AccentText(sc.Accent).Render(sc.Icon + "  " + sc.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(sc.Subtitle))
	sb.WriteString("\n\n")
	for _, feature := range st.Animation.ActiveFeatures {
		sb.WriteString(m.styles.AccentText(sc.Accent).Render("▸ "))
		sb.WriteString(m.styles.FeatureActive.Render(feature))
		sb.WriteString("\n")
	}
	return m.styles.PanelActive.BorderForeground(sc.Accent).Width(width).
		Render(strings.TrimRight(sb.String(), "\n"))
}

// =============================================================================
// MENU, FOOTER, SPLASH
// =============================================================================

// renderMenu is the mobile-menu overlay: section links, no scrolling.
func (m Model) renderMenu(st store.State) string {
	var rows []string
	rows = append(rows, m.styles.Title.Render("Menu"), "")
	for i, sc := range scene.Catalog() {
		label := m.styles.Body.Render(sc.Title)
		if i == st.Animation.CurrentScene {
			label = m.styles.Bold.Render("› " + sc.Title)
		}
		rows = append(rows, label)
	}
	rows = append(rows, "", m.styles.Muted.Render("m closes the menu"))

	return lipgloss.Place(m.layout.TerminalWidth, m.layout.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderFooter(st store.State) string {
	help := m.styles.Footer.Render("↑↓ scroll · m menu · t theme · ⏎ get aurora · q quit")

	right := ""
	if n := st.UI.Notifications; len(n) > 0 {
		latest := n[len(n)-1]
		style := m.styles.Info
		switch latest.Level {
		case store.LevelSuccess:
			style = m.styles.Success
		case store.LevelWarning:
			style = m.styles.Warning
		}
		right = style.Render("● ") + m.styles.Body.Render(latest.Text) +
			m.styles.Muted.Render("  x dismiss")
	}

	if right == "" {
		return help
	}
	// When both don't fit, the notification wins over the key help.
	gap := m.layout.TerminalWidth - lipgloss.Width(help) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return help + strings.Repeat(" ", gap) + right
}

func (m Model) renderSplash() string {
	mark := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("✦ Aurora"),
		m.styles.Muted.Render("warming up..."),
	)
	return lipgloss.Place(m.layout.TerminalWidth, m.layout.TerminalHeight,
		lipgloss.Center, lipgloss.Center, mark)
}

// progressFor builds the header progress bar with the theme's gradient,
// keeping the given width across theme rebuilds.
func progressFor(theme ui.Theme, width int) progress.Model {
	p := progress.New(progress.WithScaledGradient(string(theme.Primary), string(theme.Accent)))
	p.Width = width
	return p
}

// progressWidth sizes the header progress bar for a terminal width.
func progressWidth(layout ui.LayoutConfig) int {
	w := layout.TerminalWidth / 4
	if w < 10 {
		return 10
	}
	if w > 30 {
		return 30
	}
	return w
}

// splitToHeight splits a rendered block into exactly height rows.
func splitToHeight(block string, height int) []string {
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
