package render

import (
	"fmt"
	"strings"

	"github.com/mkrell/showdeck/internal/render/core"
	"github.com/mkrell/showdeck/internal/render/term"
)

// sentinelCell fills the current buffer on a forced redraw. Width -1
// cannot arise from real rendering (real cells are width 0, 1, or 2),
// so every coordinate of the next diff is guaranteed to differ.
func sentinelCell() core.Cell {
	return core.Cell{Rune: 0, Width: -1}
}

// CellDiff records one cell that must be rewritten on the terminal.
type CellDiff struct {
	X, Y int
	Cell core.Cell
}

// BufferManager owns the current and desired screen buffers and runs the
// per-frame protocol: clear desired, let components render into it, diff
// against current, flush only the differing cells, then advance current.
// Nothing else holds a mutable reference to either buffer outside a
// render pass.
type BufferManager struct {
	current *ScreenBuffer
	desired *ScreenBuffer
	width   int
	height  int
}

// NewBufferManager creates a manager with both buffers blank at the
// given dimensions. The first frame therefore diffs against blank and
// repaints everything non-blank.
func NewBufferManager(width, height int) *BufferManager {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &BufferManager{
		current: NewScreenBuffer(width, height),
		desired: NewScreenBuffer(width, height),
		width:   width,
		height:  height,
	}
}

// Size returns the managed dimensions.
func (m *BufferManager) Size() (width, height int) {
	return m.width, m.height
}

// ClearDesired blanks the desired buffer. Mandatory before any component
// writes, so stale content from a differently-sized previous frame never
// bleeds through.
func (m *BufferManager) ClearDesired() {
	m.desired.Clear()
}

// Current returns a read-only view of the last flushed state.
func (m *BufferManager) Current() *ScreenBuffer {
	return m.current
}

// CompareBuffers walks every coordinate and records the cells where
// desired differs from current, in row-major order.
func (m *BufferManager) CompareBuffers() []CellDiff {
	var diffs []CellDiff
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.desired.DiffersAt(m.current, x, y) {
				diffs = append(diffs, CellDiff{X: x, Y: y, Cell: m.desired.GetCell(x, y)})
			}
		}
	}
	return diffs
}

// RenderToTerminal flushes the current diff to the terminal, batched into
// maximal contiguous same-row, same-style runs: one cursor-positioning
// operation plus one styled write per run. On success, current becomes
// equal to desired. On any I/O failure the flush is aborted and current
// is left untouched, so the next frame's diff naturally retries exactly
// the cells that were never confirmed written.
func (m *BufferManager) RenderToTerminal(f term.Flusher) error {
	diffs := m.CompareBuffers()
	if len(diffs) == 0 {
		return nil
	}

	for _, run := range coalesceRuns(m.desired, diffs) {
		if err := f.WriteRun(run.X, run.Y, run.Style, run.Text); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	m.current.CopyFrom(m.desired)
	return nil
}

// Frame runs one complete render pass: clear desired, let draw write
// into it, then diff and flush. This is the only way components touch
// the desired buffer.
func (m *BufferManager) Frame(f term.Flusher, draw func(w *BufferWriter)) error {
	m.ClearDesired()
	draw(NewBufferWriter(m.desired))
	return m.RenderToTerminal(f)
}

// Resize destroys and recreates both buffers at the new dimensions.
// Both start blank, so the first post-resize diff treats every non-blank
// cell as changed.
func (m *BufferManager) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.current = NewScreenBuffer(width, height)
	m.desired = NewScreenBuffer(width, height)
}

// ForceFullRedraw invalidates current without changing dimensions: every
// cell is overwritten with a sentinel no real render can produce, so the
// very next diff reports every cell as different. Called on mode
// transitions to guarantee no visual residue from a differently-shaped
// previous screen.
func (m *BufferManager) ForceFullRedraw() {
	m.current.Fill(sentinelCell())
}

// coalesceRuns groups row-major diffs into maximal runs that share a row,
// a style, and contiguous columns. Continuation cells of wide characters
// are carried by their head cell: a run's column position advances by
// each cell's display width.
func coalesceRuns(desired *ScreenBuffer, diffs []CellDiff) []term.Run {
	var runs []term.Run

	var (
		active bool
		y      int
		startX int
		nextX  int
		style  core.Style
		text   strings.Builder
	)

	flush := func() {
		if active {
			runs = append(runs, term.Run{X: startX, Y: y, Style: style, Text: text.String()})
			text.Reset()
			active = false
		}
	}

	for _, d := range diffs {
		cell := d.Cell

		if cell.IsContinuation() {
			// The second half of a wide character. If the head is part
			// of the active run it is already covered; otherwise rewrite
			// the head so the terminal never shows half a glyph.
			if active && d.Y == y && d.X < nextX {
				continue
			}
			head := desired.GetCell(d.X-1, d.Y)
			if head.IsContinuation() || head.Width < 1 {
				continue
			}
			flush()
			active = true
			y = d.Y
			startX = d.X - 1
			nextX = startX + head.Width
			style = head.Style
			text.WriteRune(head.Rune)
			continue
		}

		if active && d.Y == y && d.X == nextX && cell.Style.Equals(style) {
			text.WriteRune(cell.Rune)
			nextX += cell.Width
			continue
		}

		flush()
		active = true
		y = d.Y
		startX = d.X
		nextX = d.X + cell.Width
		style = cell.Style
		text.WriteRune(cell.Rune)
	}
	flush()

	return runs
}
