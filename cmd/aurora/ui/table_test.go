package ui

import (
	"strings"
	"testing"
)

func TestSceneTableEmptyRendersNothing(t *testing.T) {
	tbl := NewSceneTable("Scenes", "#", "Title")
	if out := tbl.View(DefaultStyles()); out != "" {
		t.Fatalf("empty table rendered %q", out)
	}
}

func TestSceneTableView(t *testing.T) {
	tbl := NewSceneTable("Scenes", "#", "Title")
	tbl.AddRow("1", "Instant Everywhere")
	tbl.AddRow("2", "Private by Design")

	out := tbl.View(DefaultStyles())
	for _, want := range []string{"Scenes", "Title", "Instant Everywhere", "Private by Design"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSceneTableColumnAlignment(t *testing.T) {
	tbl := NewSceneTable("", "A", "B")
	tbl.AddRow("long-cell-value", "x")

	out := tbl.View(DefaultStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, divider and row, got %d lines", len(lines))
	}
}
