package ui

import (
	"github.com/mkrell/showdeck/internal/library"
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Row renders one library entry on a single line: the watched indicator
// column, a separator space, and the title colored by entry state.
// Any positive height yields exactly one row of the requested width.
type Row struct {
	Entry library.Entry
}

// Render implements Component.
func (r Row) Render(width, height int, th *theme.Theme, selected bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	glyph := th.UnwatchedGlyph
	glyphColor := th.UnwatchedColor
	if r.Entry.Watched {
		glyph = th.WatchedGlyph
		glyphColor = th.WatchedColor
	}

	titleColor := th.EntryColor(
		r.Entry.Kind == library.KindSeries,
		r.Entry.Kind == library.KindSeason,
		r.Entry.New,
		r.Entry.Invalid,
	)

	fill := core.DefaultStyle()
	if selected {
		// Selection wins over every state-derived color.
		fill = th.SelectionStyle()
		glyphColor = th.SelectionFg
		titleColor = th.SelectionFg
	}

	line := renderLine(width, fill, func(w *render.BufferWriter) {
		w.SetStyle(fill.WithForeground(glyphColor))
		w.WriteRune(glyph)
		w.SetStyle(fill.WithForeground(titleColor))
		w.WriteRune(' ')
		w.WriteString(r.Entry.Title)
	})
	return [][]core.Cell{line}
}
