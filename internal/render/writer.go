package render

import "github.com/mkrell/showdeck/internal/render/core"

// BufferWriter is a cursor-based adapter over one ScreenBuffer. Rendering
// code writes characters and strings at a moving position with a current
// color/style, analogous to direct terminal output but buffered. Writes
// that would exceed the buffer truncate rather than wrap or error.
type BufferWriter struct {
	buf   *ScreenBuffer
	x, y  int
	style core.Style
}

// NewBufferWriter creates a writer positioned at (0, 0) with the default
// style. The writer borrows the buffer only for the duration of a render
// pass; it holds no ownership.
func NewBufferWriter(buf *ScreenBuffer) *BufferWriter {
	return &BufferWriter{buf: buf, style: core.DefaultStyle()}
}

// MoveTo repositions the cursor without writing.
func (w *BufferWriter) MoveTo(x, y int) {
	w.x = x
	w.y = y
}

// Position returns the current cursor position.
func (w *BufferWriter) Position() (x, y int) {
	return w.x, w.y
}

// SetForeground changes the foreground color applied to subsequent writes.
func (w *BufferWriter) SetForeground(c core.Color) {
	w.style.Foreground = c
}

// SetBackground changes the background color applied to subsequent writes.
func (w *BufferWriter) SetBackground(c core.Color) {
	w.style.Background = c
}

// SetAttributes changes the attribute set applied to subsequent writes.
func (w *BufferWriter) SetAttributes(attrs core.Attribute) {
	w.style.Attributes = attrs
}

// SetStyle replaces the full style applied to subsequent writes.
func (w *BufferWriter) SetStyle(style core.Style) {
	w.style = style
}

// Style returns the current write style.
func (w *BufferWriter) Style() core.Style {
	return w.style
}

// WriteRune writes one rune at the cursor and advances the cursor by the
// rune's display width. Wide runes emit a continuation cell. Zero-width
// runes are dropped. Writes past the buffer edge are no-ops.
func (w *BufferWriter) WriteRune(r rune) {
	width := core.RuneWidth(r)
	if width == 0 {
		return
	}
	bw, _ := w.buf.Size()
	if w.x+width > bw {
		// A wide rune that would straddle the right edge is truncated.
		w.x += width
		return
	}
	w.buf.SetCell(w.x, w.y, core.NewStyledCell(r, w.style))
	if width == 2 {
		w.buf.SetCell(w.x+1, w.y, core.ContinuationCell(w.style))
	}
	w.x += width
}

// WriteString writes a string starting at the cursor, advancing the
// cursor by display columns. Content past the right edge is truncated.
func (w *BufferWriter) WriteString(s string) {
	for _, r := range s {
		w.WriteRune(r)
	}
}

// DrawGrid blits a component's cell grid with its top-left corner at
// (x, y). Rows wider than the buffer are clipped by SetCell's bounds
// checks; the cursor and style state are unaffected.
func (w *BufferWriter) DrawGrid(x, y int, grid [][]core.Cell) {
	for dy, row := range grid {
		for dx, cell := range row {
			w.buf.SetCell(x+dx, y+dy, cell)
		}
	}
}
