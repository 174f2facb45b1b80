package ui

import (
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Dialog is a bordered modal with a title and a column of selectable
// options, used for business-action and selection menus. The grid
// shrinks to its content: at most len(Options)+2 rows.
type Dialog struct {
	Title    string
	Options  []string
	Selected int
}

// CursorUp moves the option selection up.
func (d *Dialog) CursorUp() {
	if d.Selected > 0 {
		d.Selected--
	}
}

// CursorDown moves the option selection down.
func (d *Dialog) CursorDown() {
	if d.Selected < len(d.Options)-1 {
		d.Selected++
	}
}

// SelectedOption returns the selected option, if any.
func (d *Dialog) SelectedOption() (string, bool) {
	if d.Selected < 0 || d.Selected >= len(d.Options) {
		return "", false
	}
	return d.Options[d.Selected], true
}

// Render implements Component. selected marks the dialog as focused;
// only then does the highlighted option take the selection colors.
func (d *Dialog) Render(width, height int, th *theme.Theme, selected bool) [][]core.Cell {
	if width < 2 || height < 2 {
		return nil
	}

	rows := len(d.Options) + 2
	if rows > height {
		rows = height
	}
	border := core.NewStyle(th.BorderColor)

	grid := make([][]core.Cell, 0, rows)

	grid = append(grid, renderLine(width, border, func(w *render.BufferWriter) {
		w.WriteRune('┌')
		for x := 1; x < width-1; x++ {
			w.WriteRune('─')
		}
		w.WriteRune('┐')
		if d.Title != "" && core.StringWidth(d.Title)+4 <= width {
			w.MoveTo(2, 0)
			w.WriteString(" " + d.Title + " ")
		}
	}))

	for i := 0; i < rows-2; i++ {
		option := d.Options[i]
		fill := core.DefaultStyle()
		if selected && i == d.Selected {
			fill = th.SelectionStyle()
		}
		grid = append(grid, renderLine(width, fill, func(w *render.BufferWriter) {
			w.SetStyle(border)
			w.WriteRune('│')
			w.SetStyle(fill)
			w.WriteString(" " + option)
			w.MoveTo(width-1, 0)
			w.SetStyle(border)
			w.WriteRune('│')
		}))
	}

	grid = append(grid, renderLine(width, border, func(w *render.BufferWriter) {
		w.WriteRune('└')
		for x := 1; x < width-1; x++ {
			w.WriteRune('─')
		}
		w.WriteRune('┘')
	}))

	return grid
}
