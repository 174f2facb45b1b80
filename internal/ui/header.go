package ui

import (
	"fmt"

	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// Header is the single-row library header: title, entry count, and
// right-aligned help text, each in its own theme role.
type Header struct {
	Title string
	Count int
	Help  string
}

// Render implements Component. Any positive height yields exactly one row.
func (h Header) Render(width, height int, th *theme.Theme, _ bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	line := renderLine(width, core.DefaultStyle(), func(w *render.BufferWriter) {
		w.SetStyle(th.HeaderStyle)
		w.WriteString(h.Title)

		w.SetStyle(th.CountStyle)
		w.WriteString(fmt.Sprintf(" (%d)", h.Count))

		if h.Help == "" {
			return
		}
		helpWidth := core.StringWidth(h.Help)
		start := width - helpWidth
		usedX, _ := w.Position()
		if start <= usedX+1 {
			return
		}
		w.MoveTo(start, 0)
		w.SetStyle(th.HelpStyle)
		w.WriteString(h.Help)
	})
	return [][]core.Cell{line}
}
