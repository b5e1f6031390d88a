package page

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora/internal/config"
	"aurora/internal/scene"
	"aurora/internal/store"
)

// configDefaultForTest pins theme detection so the host terminal can't flip
// tests to dark, then returns the default config.
func configDefaultForTest(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("COLORFGBG", "")
	t.Setenv("AURORA_DARK_MODE", "")
	return config.Default()
}

// sized returns a model that has received its first window size (100 columns
// by 42 rows, i.e. a 40-row content viewport) and finished the splash.
func sized(t *testing.T) Model {
	t.Helper()
	m := New(*configDefaultForTest(t), nil, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 42})
	updated, _ = updated.(Model).Update(splashDoneMsg{})
	return updated.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFirstResizeReadiesThePage(t *testing.T) {
	m := New(*configDefaultForTest(t), nil, nil)
	assert.Equal(t, "Initializing...", m.View())

	// The first size shows the splash for one beat before the page body.
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 42})
	m = updated.(Model)
	require.NotNil(t, cmd, "first resize schedules the splash tick")
	assert.True(t, m.Store().State().UI.Loading)
	assert.Contains(t, m.View(), "warming up")

	updated, _ = m.Update(splashDoneMsg{})
	m = updated.(Model)
	st := m.Store().State()
	assert.False(t, st.UI.Loading)
	assert.Equal(t, 0, st.Animation.CurrentScene)
	assert.Equal(t, 0.0, st.Animation.ScrollProgress)
}

func TestReducedMotionSkipsSplash(t *testing.T) {
	cfg := configDefaultForTest(t)
	cfg.UI.ReducedMotion = true
	m := New(*cfg, nil, nil)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 42})
	m = updated.(Model)
	assert.Nil(t, cmd, "reduced motion must not schedule a splash tick")
	assert.False(t, m.Store().State().UI.Loading)
	assert.NotContains(t, m.View(), "warming up")
}

func TestScrollKeysMoveTheDocument(t *testing.T) {
	m := sized(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, lineScrollStep, m.doc.Offset())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.doc.Offset())

	updated, _ = m.Update(keyPress('G'))
	m = updated.(Model)
	assert.Equal(t, m.doc.MaxOffset(), m.doc.Offset())

	updated, _ = m.Update(keyPress('g'))
	m = updated.(Model)
	assert.Equal(t, 0, m.doc.Offset())
}

func TestScrollingThroughShowcaseDrivesTheStore(t *testing.T) {
	m := sized(t)

	// 100x42 terminal: hero 0-40, showcase 40-240, closing 240-280.
	// Offset 140 puts the showcase top at -100 of a 160-row scroll run:
	// progress 0.625, scene 2.
	m.doc.ScrollTo(140)

	st := m.Store().State()
	assert.Equal(t, 2, st.Animation.CurrentScene)
	assert.InDelta(t, 0.625, st.Animation.ScrollProgress, 1e-9)
	assert.Equal(t, scene.FeaturesAt(2), st.Animation.ActiveFeatures)
}

func TestStateFreezesPastTheShowcase(t *testing.T) {
	m := sized(t)

	m.doc.ScrollTo(140)
	frozen := m.Store().State().Animation

	// Jumping past the showcase leaves the mapped window; nothing resets.
	m.doc.ScrollTo(m.doc.MaxOffset())
	got := m.Store().State().Animation
	assert.Equal(t, frozen.CurrentScene, got.CurrentScene)
	assert.Equal(t, frozen.ScrollProgress, got.ScrollProgress)
}

func TestMouseWheelScrolls(t *testing.T) {
	m := sized(t)

	updated, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = updated.(Model)
	assert.Equal(t, lineScrollStep, m.doc.Offset())

	// Wheel is dead when the mouse is disabled.
	m.cfg.UI.Mouse = false
	updated, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = updated.(Model)
	assert.Equal(t, lineScrollStep, m.doc.Offset())
}

func TestMenuToggle(t *testing.T) {
	m := sized(t)

	updated, _ := m.Update(keyPress('m'))
	m = updated.(Model)
	assert.True(t, m.Store().State().UI.MobileMenuOpen)

	// Scroll keys close the menu instead of scrolling underneath.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.False(t, m.Store().State().UI.MobileMenuOpen)
	assert.Equal(t, 0, m.doc.Offset())
}

func TestThemeToggleRoundTrips(t *testing.T) {
	m := sized(t)
	orig := m.Store().State().UI.Theme

	updated, _ := m.Update(keyPress('t'))
	m = updated.(Model)
	assert.NotEqual(t, orig, m.Store().State().UI.Theme)

	updated, _ = m.Update(keyPress('t'))
	m = updated.(Model)
	assert.Equal(t, orig, m.Store().State().UI.Theme)
}

func TestCTAPushesNotificationAndDismiss(t *testing.T) {
	m := sized(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Len(t, m.Store().State().UI.Notifications, 1)

	updated, _ = m.Update(keyPress('x'))
	m = updated.(Model)
	assert.Empty(t, m.Store().State().UI.Notifications)
}

func TestConfigReloadSwitchesTheme(t *testing.T) {
	m := sized(t)
	require.Equal(t, store.ThemeLight, m.Store().State().UI.Theme)

	cfg := *config.Default()
	cfg.UI.DarkMode = true
	updated, _ := m.Update(configReloadedMsg{cfg: cfg})
	m = updated.(Model)
	assert.Equal(t, store.ThemeDark, m.Store().State().UI.Theme)
}

func TestQuitDetachesAndQuits(t *testing.T) {
	m := sized(t)

	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	// Detached samplers stop driving the store.
	before := m.Store().State().Animation
	m.doc.ScrollTo(140)
	assert.Equal(t, before, m.Store().State().Animation)
}

func TestThemeToggleRestylesProgressBar(t *testing.T) {
	m := sized(t)
	m.progress.Width = 24
	before := m.progress

	updated, _ := m.Update(keyPress('t'))
	m = updated.(Model)

	assert.NotEqual(t, before, m.progress, "gradient must follow the theme")
	assert.Equal(t, 24, m.progress.Width, "width survives the rebuild")
	assert.NotEmpty(t, m.View())
}

func TestResizeReclaimsCacheOnlyAfterSettling(t *testing.T) {
	m := sized(t)
	m.View()
	require.Positive(t, m.cache.Len())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 40})
	m = updated.(Model)
	m.View()
	assert.Positive(t, m.cache.Len(), "mid-storm the cache keeps serving")

	assert.Eventually(t, func() bool { return m.cache.Len() == 0 },
		time.Second, 10*time.Millisecond,
		"a settled resize reclaims the stale-size entries")
}

func TestResizeKeepsOffsetInBounds(t *testing.T) {
	m := sized(t)
	m.doc.ScrollTo(m.doc.MaxOffset())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	assert.LessOrEqual(t, m.doc.Offset(), m.doc.MaxOffset())
}
