// Package store owns the shared page state for the Aurora showcase.
// All mutation flows through Dispatch with a closed set of action types;
// every dispatch produces a fresh immutable snapshot so subscribers can
// compare states without worrying about aliasing.
package store

import (
	"math"
	"sync"
)

// ThemeMode selects the active color scheme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// NotificationLevel classifies a transient notification.
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelSuccess NotificationLevel = "success"
	LevelWarning NotificationLevel = "warning"
)

// Notification is a transient footer message.
type Notification struct {
	ID    string
	Level NotificationLevel
	Text  string
}

// AnimationState is the scroll-derived portion of the page state.
// Invariants: CurrentScene is a valid catalog index, ScrollProgress is in
// [0,1], and ActiveFeatures equals the feature list of the current scene.
type AnimationState struct {
	CurrentScene   int
	ScrollProgress float64
	ActiveFeatures []string
}

// UIState is the portion of the page state driven by discrete UI events
// rather than by scroll position.
type UIState struct {
	MobileMenuOpen bool
	Theme          ThemeMode
	Loading        bool
	Notifications  []Notification
}

// State is one immutable snapshot of the whole page state.
type State struct {
	Animation AnimationState
	UI        UIState
}

// Subscriber receives every new snapshot after a state-changing dispatch.
type Subscriber func(State)

// Store is the single owner of page state. It is created once at program
// start and handed by pointer to every component that reads or (for the
// scene mapper alone) writes state.
type Store struct {
	mu         sync.RWMutex
	state      State
	sceneCount int
	subs       map[int]Subscriber
	nextSub    int
}

// New creates a store whose scene index is always clamped to
// [0, sceneCount-1]. The initial snapshot is scene 0, progress 0, light
// theme, loading until the first frame arrives.
func New(sceneCount int) *Store {
	if sceneCount < 1 {
		sceneCount = 1
	}
	return &Store{
		state: State{
			UI: UIState{Theme: ThemeLight, Loading: true},
		},
		sceneCount: sceneCount,
		subs:       make(map[int]Subscriber),
	}
}

// State returns the current snapshot. Slices are cloned so the caller can
// hold or mutate the result freely.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Subscribe registers fn for future snapshots and returns its unsubscribe
// func. Unsubscribing twice is harmless.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Dispatch applies a single action and notifies subscribers.
func (s *Store) Dispatch(a Action) {
	s.Apply(a)
}

// Apply applies a batch of actions as one logical update: subscribers see
// a single snapshot containing every change. The scene mapper uses this to
// push scene, progress and features together per scroll sample.
func (s *Store) Apply(actions ...Action) {
	s.mu.Lock()
	next := cloneState(s.state)
	changed := false
	for _, a := range actions {
		if reduce(&next, a, s.sceneCount) {
			changed = true
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.state = next
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	snapshot := cloneState(next)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// reduce applies one action to the snapshot under construction. Unrecognized
// action types are a silent no-op, never an error.
func reduce(st *State, a Action, sceneCount int) bool {
	switch a := a.(type) {
	case SetCurrentScene:
		st.Animation.CurrentScene = clampIndex(a.Index, sceneCount)
	case SetScrollProgress:
		st.Animation.ScrollProgress = clampFraction(a.Fraction)
	case SetActiveFeatures:
		st.Animation.ActiveFeatures = cloneStrings(a.Features)
	case ToggleMobileMenu:
		st.UI.MobileMenuOpen = !st.UI.MobileMenuOpen
	case SetTheme:
		st.UI.Theme = a.Mode
	case SetLoading:
		st.UI.Loading = a.Loading
	case PushNotification:
		st.UI.Notifications = append(st.UI.Notifications, Notification{
			ID:    a.ID,
			Level: a.Level,
			Text:  a.Text,
		})
	case DismissNotification:
		kept := st.UI.Notifications[:0:0]
		for _, n := range st.UI.Notifications {
			if n.ID != a.ID {
				kept = append(kept, n)
			}
		}
		st.UI.Notifications = kept
	default:
		return false
	}
	return true
}

// clampIndex keeps scene indexes inside the catalog.
func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// clampFraction coerces any progress value, including NaN and the
// infinities, into [0,1].
func clampFraction(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func cloneState(st State) State {
	out := st
	out.Animation.ActiveFeatures = cloneStrings(st.Animation.ActiveFeatures)
	if st.UI.Notifications != nil {
		out.UI.Notifications = append([]Notification(nil), st.UI.Notifications...)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
