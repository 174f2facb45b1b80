package ui

import (
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Editor is a single-field text editor: a label, an editable value, and
// a cursor column. The value takes the theme's dirty-field colors once
// it diverges from the original it was opened with.
type Editor struct {
	Label string

	original string
	value    []rune
	cursor   int
}

// NewEditor creates an editor over the given original value.
func NewEditor(label, value string) *Editor {
	return &Editor{
		Label:    label,
		original: value,
		value:    []rune(value),
		cursor:   len([]rune(value)),
	}
}

// Value returns the current value.
func (e *Editor) Value() string {
	return string(e.value)
}

// Dirty returns true once the value differs from the original.
func (e *Editor) Dirty() bool {
	return string(e.value) != e.original
}

// Insert inserts a rune at the cursor.
func (e *Editor) Insert(r rune) {
	e.value = append(e.value[:e.cursor], append([]rune{r}, e.value[e.cursor:]...)...)
	e.cursor++
}

// Backspace deletes the rune before the cursor.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.value = append(e.value[:e.cursor-1], e.value[e.cursor:]...)
	e.cursor--
}

// MoveLeft moves the cursor left.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor right.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.value) {
		e.cursor++
	}
}

// Revert restores the original value.
func (e *Editor) Revert() {
	e.value = []rune(e.original)
	e.cursor = len(e.value)
}

// CursorColumn returns the display column of the cursor relative to the
// component's left edge, for hardware cursor placement by the caller.
func (e *Editor) CursorColumn() int {
	col := core.StringWidth(e.Label) + 2
	for i := 0; i < e.cursor && i < len(e.value); i++ {
		col += core.RuneWidth(e.value[i])
	}
	return col
}

// Render implements Component. Any positive height yields exactly one
// row.
func (e *Editor) Render(width, height int, th *theme.Theme, selected bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	valueStyle := core.DefaultStyle()
	if e.Dirty() {
		valueStyle = th.DirtyStyle()
	}
	if selected {
		valueStyle = th.SelectionStyle()
	}

	line := renderLine(width, core.DefaultStyle(), func(w *render.BufferWriter) {
		w.SetStyle(core.DefaultStyle())
		w.WriteString(e.Label + ": ")
		w.SetStyle(valueStyle)
		w.WriteString(string(e.value))
	})
	return [][]core.Cell{line}
}
