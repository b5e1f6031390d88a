package page

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"aurora/cmd/aurora/ui"
	"aurora/internal/config"
	"aurora/internal/content"
	"aurora/internal/scene"
	"aurora/internal/store"
)

// splashDuration is how long the startup splash holds before the page body
// appears. Skipped entirely under reduced motion.
const splashDuration = 400 * time.Millisecond

// splashDoneMsg ends the startup splash.
type splashDoneMsg struct{}

// configReloadedMsg carries a successfully reloaded config from the watcher.
type configReloadedMsg struct {
	cfg config.Config
}

// awaitConfigReload blocks on the watcher channel as a tea command.
func (m Model) awaitConfigReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		cfg, ok := <-events
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		next, cmd := m.handleResize(msg)
		return next, cmd

	case splashDoneMsg:
		m.store.Dispatch(store.SetLoading{Loading: false})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case configReloadedMsg:
		return m.handleConfigReload(msg.cfg), m.awaitConfigReload()
	}

	return m, nil
}

// handleResize relays new geometry into the document and takes the mount
// sample. Scroll position is preserved proportionally by the document's
// clamping; the samplers attach here because sections only exist once a
// size is known.
func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.layout = ui.NewLayoutConfig(msg.Width, msg.Height)
	vh := m.layout.ContentHeight()

	m.doc.SetViewportHeight(vh)
	m.doc.SetSections(sectionsFor(vh)...)

	// First size: install the scroll and visibility subscriptions.
	doc := m.doc
	mapper := m.mapper
	logger := m.logger
	vhf := func() float64 { return float64(doc.ViewportHeight()) }
	m.showcase.Attach(
		func(int) {
			if r, ok := doc.Rect(sectionShowcase); ok {
				mapper.Sample(scene.Rect{Top: float64(r.Top), Height: float64(r.Height)}, vhf())
			}
		},
		func(visible bool) {
			logger.Debug("showcase visibility changed", zap.Bool("visible", visible))
		},
	)
	m.closing.Attach(nil, func(visible bool) {
		logger.Debug("closing visibility changed", zap.Bool("visible", visible))
	})

	m.progress.Width = progressWidth(m.layout)
	m.renderer = content.NewRenderer(m.store.State().UI.Theme, m.layout.ContentWidth())

	// Cache keys carry size and theme, so entries for the old geometry can
	// never be served again; reclaiming them waits out the resize storm.
	m.resizeDebounce.Debounce(m.cache.Invalidate)

	// Establish the starting scene state before any scroll happens.
	m.sampleShowcase()

	var cmd tea.Cmd
	if !m.ready {
		m.logger.Info("page ready",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
		)
		if m.cfg.UI.ReducedMotion {
			m.store.Dispatch(store.SetLoading{Loading: false})
		} else {
			cmd = tea.Tick(splashDuration, func(time.Time) tea.Msg { return splashDoneMsg{} })
		}
	}
	m.ready = true
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.State()

	switch {
	case key.Matches(msg, keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, keys.Menu):
		m.store.Dispatch(store.ToggleMobileMenu{})
		return m, nil

	case key.Matches(msg, keys.Theme):
		return m.toggleTheme(), nil

	case key.Matches(msg, keys.Dismiss):
		if n := st.UI.Notifications; len(n) > 0 {
			m.store.Dispatch(store.DismissNotification{ID: n[len(n)-1].ID})
		}
		return m, nil

	case key.Matches(msg, keys.Select):
		// The CTA is presentational: no download actually starts.
		m.store.Dispatch(store.NewNotification(store.LevelSuccess,
			"Download queued — check your usual browser. Old habits."))
		return m, nil
	}

	// Menu capture: while the menu is open, navigation keys close it
	// instead of scrolling underneath.
	if st.UI.MobileMenuOpen {
		if key.Matches(msg, keys.Up) || key.Matches(msg, keys.Down) {
			m.store.Dispatch(store.ToggleMobileMenu{})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.doc.ScrollBy(-lineScrollStep)
	case key.Matches(msg, keys.Down):
		m.doc.ScrollBy(lineScrollStep)
	case key.Matches(msg, keys.PageUp):
		m.doc.ScrollBy(-m.layout.ContentHeight())
	case key.Matches(msg, keys.PageDown):
		m.doc.ScrollBy(m.layout.ContentHeight())
	case key.Matches(msg, keys.Top):
		m.doc.ScrollTo(0)
	case key.Matches(msg, keys.Bottom):
		m.doc.ScrollTo(m.doc.MaxOffset())
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !m.cfg.UI.Mouse {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.doc.ScrollBy(-lineScrollStep)
	case tea.MouseButtonWheelDown:
		m.doc.ScrollBy(lineScrollStep)
	}
	return m
}

// handleConfigReload applies a live config edit. Only the theme is hot;
// everything else needs a restart.
func (m Model) handleConfigReload(cfg config.Config) Model {
	m.cfg = cfg
	mode := store.ThemeLight
	if cfg.UI.DarkMode {
		mode = store.ThemeDark
	}
	return m.applyTheme(mode)
}

func (m Model) toggleTheme() Model {
	mode := store.ThemeDark
	if m.store.State().UI.Theme == store.ThemeDark {
		mode = store.ThemeLight
	}
	return m.applyTheme(mode)
}

func (m Model) applyTheme(mode store.ThemeMode) Model {
	if m.store.State().UI.Theme == mode {
		return m
	}
	theme := ui.ThemeFor(mode)
	m.store.Dispatch(store.SetTheme{Mode: mode})
	m.styles = ui.NewStyles(theme)
	m.progress = progressFor(theme, m.progress.Width)
	m.renderer = content.NewRenderer(mode, m.layout.ContentWidth())
	m.cache.Invalidate()
	m.logger.Info("theme changed", zap.String("mode", string(mode)))
	return m
}
