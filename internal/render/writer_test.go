package render

import (
	"testing"

	"github.com/mkrell/showdeck/internal/render/core"
)

func TestBufferWriterWriteString(t *testing.T) {
	buf := NewScreenBuffer(20, 3)
	w := NewBufferWriter(buf)

	w.MoveTo(2, 1)
	w.WriteString("hello")

	for i, r := range "hello" {
		if got := buf.GetCell(2+i, 1).Rune; got != r {
			t.Errorf("cell (%d, 1) = %q, want %q", 2+i, got, r)
		}
	}
	x, y := w.Position()
	if x != 7 || y != 1 {
		t.Errorf("cursor = (%d, %d), want (7, 1)", x, y)
	}
}

func TestBufferWriterTruncatesAtRightEdge(t *testing.T) {
	buf := NewScreenBuffer(5, 1)
	w := NewBufferWriter(buf)

	w.WriteString("abcdefgh")

	if got := StringFromRow(buf, 0); got != "abcde" {
		t.Errorf("row = %q, want %q", got, "abcde")
	}
}

func TestBufferWriterWideRunes(t *testing.T) {
	buf := NewScreenBuffer(10, 1)
	w := NewBufferWriter(buf)

	w.WriteString("a世b")

	if got := buf.GetCell(0, 0).Rune; got != 'a' {
		t.Errorf("cell 0 = %q, want 'a'", got)
	}
	if got := buf.GetCell(1, 0); got.Rune != '世' || got.Width != 2 {
		t.Errorf("cell 1 = %+v, want wide '世'", got)
	}
	if !buf.GetCell(2, 0).IsContinuation() {
		t.Error("cell 2 should be a continuation cell")
	}
	if got := buf.GetCell(3, 0).Rune; got != 'b' {
		t.Errorf("cell 3 = %q, want 'b'", got)
	}
	if x, _ := w.Position(); x != 4 {
		t.Errorf("cursor x = %d, want 4", x)
	}
}

func TestBufferWriterWideRuneAtEdge(t *testing.T) {
	// A wide rune whose continuation would fall past the right edge is
	// dropped entirely, never half-written.
	buf := NewScreenBuffer(4, 1)
	w := NewBufferWriter(buf)

	w.MoveTo(3, 0)
	w.WriteRune('世')

	if !buf.GetCell(3, 0).Equals(core.EmptyCell()) {
		t.Error("edge cell must stay blank when a wide rune cannot fit")
	}
}

func TestBufferWriterStyleState(t *testing.T) {
	buf := NewScreenBuffer(10, 1)
	w := NewBufferWriter(buf)

	w.SetForeground(core.ColorRed)
	w.SetAttributes(core.AttrBold)
	w.WriteRune('A')
	w.SetStyle(core.DefaultStyle())
	w.WriteRune('B')

	a := buf.GetCell(0, 0)
	if !a.Style.Foreground.Equals(core.ColorRed) || !a.Style.Attributes.Has(core.AttrBold) {
		t.Errorf("cell A style = %+v, want bold red", a.Style)
	}
	b := buf.GetCell(1, 0)
	if !b.Style.IsDefault() {
		t.Errorf("cell B style = %+v, want default", b.Style)
	}
}

func TestBufferWriterZeroWidthRunesDropped(t *testing.T) {
	buf := NewScreenBuffer(10, 1)
	w := NewBufferWriter(buf)

	w.WriteString("a\tb\x07c")

	if got := StringFromRow(buf, 0); got != "abc" {
		t.Errorf("row = %q, want %q", got, "abc")
	}
}

func TestBufferWriterDrawGrid(t *testing.T) {
	buf := NewScreenBuffer(10, 4)
	w := NewBufferWriter(buf)

	grid := [][]core.Cell{
		{core.NewCell('x'), core.NewCell('y')},
		{core.NewCell('z')},
	}
	w.DrawGrid(3, 1, grid)

	if buf.GetCell(3, 1).Rune != 'x' || buf.GetCell(4, 1).Rune != 'y' {
		t.Error("first grid row misplaced")
	}
	if buf.GetCell(3, 2).Rune != 'z' {
		t.Error("second grid row misplaced")
	}
	// Blitting does not move the cursor.
	if x, y := w.Position(); x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", x, y)
	}
}

// StringFromRow extracts a row's visible text, trimming trailing blanks.
func StringFromRow(buf *ScreenBuffer, y int) string {
	w, _ := buf.Size()
	cells := make([]core.Cell, 0, w)
	for x := 0; x < w; x++ {
		cells = append(cells, buf.GetCell(x, y))
	}
	s := core.StringFromCells(cells)
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
