package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bogusAction is not part of the recognized action set.
type bogusAction struct{}

func (bogusAction) isAction() {}

func TestDispatchSceneProgressFeatures(t *testing.T) {
	s := New(4)

	s.Apply(
		SetCurrentScene{Index: 2},
		SetScrollProgress{Fraction: 0.5},
		SetActiveFeatures{Features: []string{"a", "b"}},
	)

	st := s.State()
	assert.Equal(t, 2, st.Animation.CurrentScene)
	assert.Equal(t, 0.5, st.Animation.ScrollProgress)
	assert.Equal(t, []string{"a", "b"}, st.Animation.ActiveFeatures)
}

func TestDispatchClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		check    func(t *testing.T, st State)
	}{
		{
			name:   "negative scene",
			action: SetCurrentScene{Index: -3},
			check: func(t *testing.T, st State) {
				assert.Equal(t, 0, st.Animation.CurrentScene)
			},
		},
		{
			name:   "scene past end",
			action: SetCurrentScene{Index: 99},
			check: func(t *testing.T, st State) {
				assert.Equal(t, 3, st.Animation.CurrentScene)
			},
		},
		{
			name:   "progress overshoot",
			action: SetScrollProgress{Fraction: 1.3},
			check: func(t *testing.T, st State) {
				assert.Equal(t, 1.0, st.Animation.ScrollProgress)
			},
		},
		{
			name:   "negative progress",
			action: SetScrollProgress{Fraction: -0.2},
			check: func(t *testing.T, st State) {
				assert.Equal(t, 0.0, st.Animation.ScrollProgress)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(4)
			s.Dispatch(tt.action)
			tt.check(t, s.State())
		})
	}
}

func TestDispatchNaNProgressStaysInRange(t *testing.T) {
	s := New(4)
	s.Dispatch(SetScrollProgress{Fraction: nan()})
	p := s.State().Animation.ScrollProgress
	assert.True(t, p >= 0 && p <= 1, "progress %v escaped [0,1]", p)
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func TestUnrecognizedActionIsNoOp(t *testing.T) {
	s := New(4)
	s.Dispatch(SetCurrentScene{Index: 1})
	before := s.State()

	notified := false
	cancel := s.Subscribe(func(State) { notified = true })
	defer cancel()

	s.Dispatch(bogusAction{})

	assert.Empty(t, cmp.Diff(before, s.State()))
	assert.False(t, notified, "no-op dispatch must not notify subscribers")
}

func TestToggleMobileMenuTwiceRoundTrips(t *testing.T) {
	s := New(4)
	orig := s.State().UI.MobileMenuOpen

	s.Dispatch(ToggleMobileMenu{})
	assert.Equal(t, !orig, s.State().UI.MobileMenuOpen)

	s.Dispatch(ToggleMobileMenu{})
	assert.Equal(t, orig, s.State().UI.MobileMenuOpen)
}

func TestDispatchIsIdempotentForSameTriple(t *testing.T) {
	s := New(4)
	triple := []Action{
		SetCurrentScene{Index: 2},
		SetScrollProgress{Fraction: 0.5},
		SetActiveFeatures{Features: []string{"x"}},
	}

	s.Apply(triple...)
	once := s.State()
	s.Apply(triple...)
	twice := s.State()

	assert.Empty(t, cmp.Diff(once, twice))
}

func TestSnapshotIsolation(t *testing.T) {
	s := New(4)
	s.Dispatch(SetActiveFeatures{Features: []string{"a", "b"}})

	st := s.State()
	st.Animation.ActiveFeatures[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, s.State().Animation.ActiveFeatures)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := New(4)

	var got []State
	cancel := s.Subscribe(func(st State) { got = append(got, st) })

	s.Apply(SetCurrentScene{Index: 1}, SetScrollProgress{Fraction: 0.25})
	require.Len(t, got, 1, "batched apply must notify exactly once")
	assert.Equal(t, 1, got[0].Animation.CurrentScene)
	assert.Equal(t, 0.25, got[0].Animation.ScrollProgress)

	cancel()
	cancel() // second cancel is harmless
	s.Dispatch(SetCurrentScene{Index: 2})
	assert.Len(t, got, 1, "unsubscribed listener must not be called")
}

func TestThemeAndLoading(t *testing.T) {
	s := New(4)
	require.True(t, s.State().UI.Loading)

	s.Dispatch(SetLoading{Loading: false})
	assert.False(t, s.State().UI.Loading)

	s.Dispatch(SetTheme{Mode: ThemeDark})
	assert.Equal(t, ThemeDark, s.State().UI.Theme)
}

func TestNotificationsPushAndDismiss(t *testing.T) {
	s := New(4)

	first := NewNotification(LevelInfo, "download queued")
	second := NewNotification(LevelSuccess, "done")
	require.NotEqual(t, first.ID, second.ID)

	s.Dispatch(first)
	s.Dispatch(second)

	ns := s.State().UI.Notifications
	require.Len(t, ns, 2)
	assert.Equal(t, "download queued", ns[0].Text)
	assert.Equal(t, "done", ns[1].Text)

	s.Dispatch(DismissNotification{ID: first.ID})
	ns = s.State().UI.Notifications
	require.Len(t, ns, 1)
	assert.Equal(t, second.ID, ns[0].ID)

	// Dismissing an unknown ID changes nothing.
	s.Dispatch(DismissNotification{ID: "nope"})
	assert.Len(t, s.State().UI.Notifications, 1)
}
