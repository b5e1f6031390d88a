// Package page implements the interactive Aurora showcase: one scrollable
// page with a hero, a scroll-driven feature showcase and a closing
// call-to-action. The page is split across files:
//   - model.go: types, construction, Init
//   - sections.go: section layout per viewport size
//   - update.go: message handling
//   - view.go: rendering
package page

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"aurora/cmd/aurora/ui"
	"aurora/internal/config"
	"aurora/internal/content"
	"aurora/internal/scene"
	"aurora/internal/scroll"
	"aurora/internal/store"
)

// Section IDs in document order.
const (
	sectionHero     = "hero"
	sectionShowcase = "showcase"
	sectionClosing  = "closing"
)

// lineScrollStep is how many rows one arrow key or wheel tick moves.
const lineScrollStep = 2

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Menu     key.Binding
	Theme    key.Binding
	Dismiss  key.Binding
	Select   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn/space", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Dismiss:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "get aurora")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// Model is the root bubbletea model for the showcase page.
type Model struct {
	cfg    config.Config
	logger *zap.Logger

	store    *store.Store
	doc      *scroll.Document
	mapper   *scene.Mapper
	showcase *scroll.Sampler
	closing  *scroll.Sampler
	watcher  *config.Watcher

	styles         ui.Styles
	layout         ui.LayoutConfig
	progress       progress.Model
	renderer       *content.Renderer
	cache          *ui.RenderCache
	resizeDebounce *ui.Debouncer

	ready bool
}

// New wires the page together: one store, one document, one mapper, two
// samplers. The samplers attach once the first window size arrives, since
// section geometry depends on the viewport. watcher may be nil.
func New(cfg config.Config, logger *zap.Logger, watcher *config.Watcher) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	st := store.New(scene.Count())
	doc := scroll.NewDocument(0)
	m := Model{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		doc:      doc,
		mapper:   scene.NewMapper(st, logger),
		showcase: scroll.NewSampler(doc, sectionShowcase),
		closing:  scroll.NewSampler(doc, sectionClosing),
		watcher:  watcher,
		cache:    ui.NewRenderCache(64),

		resizeDebounce: ui.NewDebouncer(ui.DefaultResizeDuration),
	}

	theme := ui.DetectTheme()
	if cfg.UI.DarkMode {
		theme = ui.DarkTheme()
	}
	mode := store.ThemeLight
	if theme.IsDark {
		mode = store.ThemeDark
	}
	// Seed the starting state: the feature invariant (ActiveFeatures ==
	// catalog features at CurrentScene) holds before any scroll happens.
	st.Apply(
		store.SetTheme{Mode: mode},
		store.SetActiveFeatures{Features: scene.FeaturesAt(0)},
	)
	m.styles = ui.NewStyles(theme)
	m.progress = progressFor(theme, 0)

	return m
}

// Init starts the config watcher subscription; everything else waits for the
// first WindowSizeMsg.
func (m Model) Init() tea.Cmd {
	return m.awaitConfigReload()
}

// Store exposes the page's state store, used by tests and by the shutdown
// path in main.
func (m Model) Store() *store.Store {
	return m.store
}

// shutdown releases the scroll subscriptions. Unconditional: detaching
// samplers that never attached is a no-op.
func (m Model) shutdown() {
	m.showcase.Detach()
	m.closing.Detach()
	m.resizeDebounce.Cancel()
	m.logger.Info("page closed",
		zap.Int("final_offset", m.doc.Offset()),
		zap.Int("final_scene", m.store.State().Animation.CurrentScene),
	)
}
