package ui

import (
	"testing"

	"aurora/internal/store"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("AURORA_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme when AURORA_DARK_MODE=1")
	}

	t.Setenv("AURORA_DARK_MODE", "")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme when AURORA_DARK_MODE is unset")
	}
}

func TestDetectThemeFromColorFgBg(t *testing.T) {
	t.Setenv("AURORA_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("background index 0 should read as dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("background index 15 should read as light")
	}
}

func TestThemeFor(t *testing.T) {
	if !ThemeFor(store.ThemeDark).IsDark {
		t.Fatalf("ThemeFor(dark) must be dark")
	}
	if ThemeFor(store.ThemeLight).IsDark {
		t.Fatalf("ThemeFor(light) must be light")
	}
}

func TestNewStylesCarriesTheme(t *testing.T) {
	s := NewStyles(DarkTheme())
	if !s.Theme.IsDark {
		t.Fatalf("styles must carry their theme")
	}
}
