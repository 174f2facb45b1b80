package core

import "github.com/mattn/go-runewidth"

// RuneWidth returns the display width of a rune in terminal columns.
// Returns 0 for control characters, 1 for normal characters, and 2 for
// wide (CJK) characters. Indicator glyphs and box-drawing characters are
// multi-byte but single-width; measurement is always in columns, never bytes.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CellsFromString creates cells from a string with the given style.
// Wide runes are followed by a continuation cell.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		width := RuneWidth(r)
		if width == 0 {
			continue
		}
		cells = append(cells, Cell{
			Rune:  r,
			Width: width,
			Style: style,
		})
		if width == 2 {
			cells = append(cells, ContinuationCell(style))
		}
	}
	return cells
}

// StringFromCells converts cells back to a string.
// Skips continuation cells.
func StringFromCells(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if !c.IsContinuation() && c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}
