package ui

import (
	"strings"
	"testing"

	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

func TestEditorEditing(t *testing.T) {
	e := NewEditor("Title", "S01E01")

	if e.Dirty() {
		t.Error("fresh editor must not be dirty")
	}

	e.Insert('x')
	if got := e.Value(); got != "S01E01x" {
		t.Errorf("value = %q, want %q", got, "S01E01x")
	}
	if !e.Dirty() {
		t.Error("editor should be dirty after an insert")
	}

	e.Backspace()
	if e.Dirty() {
		t.Error("editor back at the original value must not be dirty")
	}

	e.MoveLeft()
	e.MoveLeft()
	e.Insert('-')
	if got := e.Value(); got != "S01E-01" {
		t.Errorf("mid-string insert: value = %q, want %q", got, "S01E-01")
	}

	e.Revert()
	if e.Value() != "S01E01" || e.Dirty() {
		t.Error("Revert should restore the original value")
	}
}

func TestEditorBackspaceAtStart(t *testing.T) {
	e := NewEditor("Title", "ab")
	e.MoveLeft()
	e.MoveLeft()
	e.Backspace()
	if got := e.Value(); got != "ab" {
		t.Errorf("backspace at column 0 must be a no-op, value = %q", got)
	}
}

func TestEditorCursorColumn(t *testing.T) {
	e := NewEditor("Title", "abc")

	// "Title: " is 7 columns; the cursor starts after the value.
	if got := e.CursorColumn(); got != 10 {
		t.Errorf("cursor column = %d, want 10", got)
	}
	e.MoveLeft()
	if got := e.CursorColumn(); got != 9 {
		t.Errorf("cursor column = %d, want 9", got)
	}
}

func TestEditorCursorColumnWideRunes(t *testing.T) {
	e := NewEditor("Title", "世界")

	// Two wide runes occupy four columns.
	if got := e.CursorColumn(); got != 7+4 {
		t.Errorf("cursor column = %d, want %d", got, 7+4)
	}
}

func TestEditorRenderDirtyStyle(t *testing.T) {
	th := theme.Default()
	e := NewEditor("Title", "abc")

	grid := e.Render(30, 1, th, false)
	row := grid[0]
	if got := rowText(row); got != "Title: abc" {
		t.Errorf("row text = %q, want %q", got, "Title: abc")
	}
	if row[7].Style.Foreground.Equals(th.DirtyFg) {
		t.Error("clean value must not take the dirty color")
	}

	e.Insert('!')
	row = e.Render(30, 1, th, false)[0]
	if !row[7].Style.Foreground.Equals(th.DirtyFg) {
		t.Error("dirty value should take the dirty color")
	}
	// The label keeps the default style either way.
	if !row[0].Style.Equals(core.DefaultStyle()) {
		t.Errorf("label style = %+v, want default", row[0].Style)
	}
}

func TestEditorRenderTruncates(t *testing.T) {
	th := theme.Default()
	e := NewEditor("Title", strings.Repeat("x", 50))

	grid := e.Render(20, 1, th, false)
	if len(grid[0]) != 20 {
		t.Fatalf("row has %d cells, want 20", len(grid[0]))
	}
}
