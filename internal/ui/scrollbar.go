package ui

import (
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Scrollbar is a standalone vertical position indicator: one column of
// track glyphs with a proportional indicator. List embeds the same
// geometry; this component exists for layouts that place the bar apart
// from the content it tracks.
type Scrollbar struct {
	Total   int
	Visible int
	First   int
}

// Render implements Component. The grid is one cell wide regardless of
// the requested width; an invisible bar yields an empty grid.
func (s Scrollbar) Render(width, height int, th *theme.Theme, _ bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	span := render.ComputeScrollbar(s.Total, s.Visible, s.First, height)
	if !span.Visible {
		return nil
	}

	grid := make([][]core.Cell, height)
	for y := 0; y < height; y++ {
		glyph, color := th.TrackGlyph, th.TrackColor
		if span.Covers(y) {
			glyph, color = th.IndicatorGlyph, th.IndicatorColor
		}
		grid[y] = []core.Cell{core.NewStyledCell(glyph, core.NewStyle(color))}
	}
	return grid
}
