// Package ui implements the browser's visual components. Every
// component is a stateless-render unit: given a width, a height, a
// theme, and a selection flag it produces a rectangular cell grid, never
// wider or taller than asked. Components borrow a BufferWriter only for
// the duration of their own render and hold no buffer ownership.
package ui

import (
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Component renders a rectangular cell grid.
//
// The grid is sized exactly height rows by width columns, except that
// variable-height components may return fewer rows (never more) when
// content is absent. Single-row components accept and ignore height.
// selected=true overrides all state-derived coloring with the theme's
// current-selection colors. Zero width or height yields an empty grid.
type Component interface {
	Render(width, height int, th *theme.Theme, selected bool) [][]core.Cell
}

// renderLine renders one row of the given width: the row is filled with
// blanks in the fill style, then draw writes into it through a
// BufferWriter. Content past the width truncates by display columns.
func renderLine(width int, fill core.Style, draw func(w *render.BufferWriter)) []core.Cell {
	buf := render.NewScreenBuffer(width, 1)
	blank := core.NewStyledCell(' ', fill)
	for x := 0; x < width; x++ {
		buf.SetCell(x, 0, blank)
	}

	w := render.NewBufferWriter(buf)
	w.SetStyle(fill)
	draw(w)

	row := make([]core.Cell, width)
	for x := 0; x < width; x++ {
		row[x] = buf.GetCell(x, 0)
	}
	return row
}
