// Package term provides the terminal boundary for the renderer.
// The only thing the rendering core asks of a terminal is to place a
// styled run of text at a coordinate and to flush; everything else
// (events, cursor visibility, raw mode) belongs to the surrounding
// application.
package term

import (
	"errors"
	"fmt"

	"github.com/mkrell/showdeck/internal/render/core"
)

// ErrWriteFailed is returned when a simulated or real terminal write
// cannot complete.
var ErrWriteFailed = errors.New("terminal write failed")

// Flusher receives diffed screen content. Implementations translate each
// run into one cursor-positioning operation, one style operation, and one
// text write. WriteRun and Flush report I/O failures so the caller can
// leave its buffers un-advanced and retry on the next frame.
type Flusher interface {
	// Size returns the terminal dimensions in columns and rows.
	Size() (width, height int)

	// WriteRun writes text at column x, row y with the given style.
	// The text is a horizontal run that never spans rows.
	WriteRun(x, y int, style core.Style, text string) error

	// Flush pushes any buffered output to the terminal.
	Flush() error
}

// Run records one contiguous styled write, for test inspection.
type Run struct {
	X, Y  int
	Style core.Style
	Text  string
}

// Recorder is an in-memory Flusher for tests. It applies runs to a cell
// grid and can be scripted to fail partway through a flush.
type Recorder struct {
	width, height int
	cells         [][]core.Cell

	// Runs holds every successful WriteRun since the last Reset.
	Runs []Run
	// Flushes counts successful Flush calls.
	Flushes int

	// FailAfter makes the nth following WriteRun fail (1-based).
	// Zero disables failure injection.
	FailAfter int
	// FailFlush makes Flush fail.
	FailFlush bool

	writes int
}

// NewRecorder creates a recorder with the given dimensions, blank.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{width: width, height: height}
	r.cells = make([][]core.Cell, height)
	for y := 0; y < height; y++ {
		r.cells[y] = make([]core.Cell, width)
		for x := 0; x < width; x++ {
			r.cells[y][x] = core.EmptyCell()
		}
	}
	return r
}

// Size returns the recorder dimensions.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// WriteRun applies the run to the cell grid and records it.
func (r *Recorder) WriteRun(x, y int, style core.Style, text string) error {
	r.writes++
	if r.FailAfter > 0 && r.writes >= r.FailAfter {
		return fmt.Errorf("write run at (%d,%d): %w", x, y, ErrWriteFailed)
	}
	col := x
	for _, ch := range text {
		width := core.RuneWidth(ch)
		if col >= 0 && col < r.width && y >= 0 && y < r.height {
			r.cells[y][col] = core.Cell{Rune: ch, Width: width, Style: style}
			if width == 2 && col+1 < r.width {
				r.cells[y][col+1] = core.ContinuationCell(style)
			}
		}
		if width == 0 {
			continue
		}
		col += width
	}
	r.Runs = append(r.Runs, Run{X: x, Y: y, Style: style, Text: text})
	return nil
}

// Flush counts the flush or fails when scripted to.
func (r *Recorder) Flush() error {
	if r.FailFlush {
		return fmt.Errorf("flush: %w", ErrWriteFailed)
	}
	r.Flushes++
	return nil
}

// Cell returns the cell last written at (x, y).
func (r *Recorder) Cell(x, y int) core.Cell {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return core.EmptyCell()
	}
	return r.cells[y][x]
}

// Reset clears recorded runs and counters without touching the grid.
func (r *Recorder) Reset() {
	r.Runs = nil
	r.Flushes = 0
	r.writes = 0
	r.FailAfter = 0
	r.FailFlush = false
}

// Line returns the text content of a row with trailing blanks trimmed.
func (r *Recorder) Line(y int) string {
	if y < 0 || y >= r.height {
		return ""
	}
	runes := make([]rune, 0, r.width)
	for x := 0; x < r.width; x++ {
		c := r.cells[y][x]
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	for len(runes) > 0 && runes[len(runes)-1] == ' ' {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
