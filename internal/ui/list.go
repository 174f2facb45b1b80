package ui

import (
	"github.com/mkrell/showdeck/internal/library"
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// List is the scrolling browse container: a window of entry rows with a
// proportional scrollbar along the right edge when the content does not
// fit. Selection and scroll state live here; the entries themselves are
// read-only input.
type List struct {
	Entries []library.Entry

	// Selected is the index of the selected entry.
	Selected int

	// First is the index of the first visible entry.
	First int
}

// NewList creates a list over the given entries.
func NewList(entries []library.Entry) *List {
	return &List{Entries: entries}
}

// CursorUp moves the selection up one entry.
func (l *List) CursorUp(visible int) {
	l.Selected--
	l.clamp(visible)
}

// CursorDown moves the selection down one entry.
func (l *List) CursorDown(visible int) {
	l.Selected++
	l.clamp(visible)
}

// PageUp moves the selection up one viewport.
func (l *List) PageUp(visible int) {
	l.Selected -= visible
	l.clamp(visible)
}

// PageDown moves the selection down one viewport.
func (l *List) PageDown(visible int) {
	l.Selected += visible
	l.clamp(visible)
}

// Home moves the selection to the first entry.
func (l *List) Home(visible int) {
	l.Selected = 0
	l.clamp(visible)
}

// End moves the selection to the last entry.
func (l *List) End(visible int) {
	l.Selected = len(l.Entries) - 1
	l.clamp(visible)
}

// SelectedEntry returns the selected entry, if any.
func (l *List) SelectedEntry() (library.Entry, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Entries) {
		return library.Entry{}, false
	}
	return l.Entries[l.Selected], true
}

// clamp bounds the selection and scrolls the window so the selection
// stays visible.
func (l *List) clamp(visible int) {
	if l.Selected < 0 {
		l.Selected = 0
	}
	if l.Selected >= len(l.Entries) {
		l.Selected = len(l.Entries) - 1
		if l.Selected < 0 {
			l.Selected = 0
		}
	}
	if visible <= 0 {
		return
	}
	if l.Selected < l.First {
		l.First = l.Selected
	}
	if l.Selected >= l.First+visible {
		l.First = l.Selected - visible + 1
	}
	maxFirst := len(l.Entries) - visible
	if maxFirst < 0 {
		maxFirst = 0
	}
	if l.First > maxFirst {
		l.First = maxFirst
	}
	if l.First < 0 {
		l.First = 0
	}
}

// Render implements Component. The grid is at most height rows; fewer
// when the remaining entries do not fill the viewport. selected marks
// the list as the focused component; only then does the selected row
// take the selection colors.
func (l *List) Render(width, height int, th *theme.Theme, selected bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	// A First set past the clamped maximum would detach the indicator
	// from the rendered rows; rendering bounds it the same way clamp does.
	first := l.First
	if maxFirst := len(l.Entries) - height; first > maxFirst {
		first = maxFirst
	}
	if first < 0 {
		first = 0
	}

	span := render.ComputeScrollbar(len(l.Entries), height, first, height)
	rowWidth := width
	if span.Visible {
		rowWidth = width - 1
	}

	rows := len(l.Entries) - first
	if rows > height {
		rows = height
	}

	grid := make([][]core.Cell, 0, rows)
	for y := 0; y < rows; y++ {
		idx := first + y
		row := Row{Entry: l.Entries[idx]}.
			Render(rowWidth, 1, th, selected && idx == l.Selected)[0]

		if span.Visible {
			glyph, color := th.TrackGlyph, th.TrackColor
			if span.Covers(y) {
				glyph, color = th.IndicatorGlyph, th.IndicatorColor
			}
			row = append(row, core.NewStyledCell(glyph, core.NewStyle(color)))
		}
		grid = append(grid, row)
	}
	return grid
}
