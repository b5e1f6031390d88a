package store

import "github.com/google/uuid"

// Action is a named state mutation. The concrete types below form the closed
// action set; Dispatch silently ignores anything else.
type Action interface {
	isAction()
}

// SetCurrentScene replaces the current scene index (clamped to the catalog).
type SetCurrentScene struct {
	Index int
}

// SetScrollProgress replaces the normalized scroll progress (clamped to [0,1]).
type SetScrollProgress struct {
	Fraction float64
}

// SetActiveFeatures replaces the active feature list.
type SetActiveFeatures struct {
	Features []string
}

// ToggleMobileMenu inverts the mobile menu flag.
type ToggleMobileMenu struct{}

// SetTheme replaces the active theme mode.
type SetTheme struct {
	Mode ThemeMode
}

// SetLoading replaces the loading flag.
type SetLoading struct {
	Loading bool
}

// PushNotification appends a footer notification.
type PushNotification struct {
	ID    string
	Level NotificationLevel
	Text  string
}

// DismissNotification removes the notification with the given ID.
type DismissNotification struct {
	ID string
}

func (SetCurrentScene) isAction()     {}
func (SetScrollProgress) isAction()   {}
func (SetActiveFeatures) isAction()   {}
func (ToggleMobileMenu) isAction()    {}
func (SetTheme) isAction()            {}
func (SetLoading) isAction()          {}
func (PushNotification) isAction()    {}
func (DismissNotification) isAction() {}

// NewNotification builds a PushNotification with a fresh ID.
func NewNotification(level NotificationLevel, text string) PushNotification {
	return PushNotification{
		ID:    uuid.NewString(),
		Level: level,
		Text:  text,
	}
}
