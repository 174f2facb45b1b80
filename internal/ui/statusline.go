package ui

import (
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/theme"
)

// StatusLine is the single-row bar at the bottom of the screen: left
// text, right-aligned text, status colors. A transient message replaces
// the left text until cleared.
type StatusLine struct {
	Left  string
	Right string

	message string
}

// SetMessage displays a transient notice in place of the left text.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage removes the transient notice.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Render implements Component. Any positive height yields exactly one
// row. The right text is dropped when it would collide with the left.
func (s *StatusLine) Render(width, height int, th *theme.Theme, _ bool) [][]core.Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	style := th.StatusStyle()
	left := s.Left
	if s.message != "" {
		left = s.message
	}

	line := renderLine(width, style, func(w *render.BufferWriter) {
		w.WriteString(" " + left)

		if s.Right == "" {
			return
		}
		rightWidth := core.StringWidth(s.Right)
		start := width - rightWidth - 1
		usedX, _ := w.Position()
		if start <= usedX {
			return
		}
		w.MoveTo(start, 0)
		w.WriteString(s.Right)
	})
	return [][]core.Cell{line}
}
