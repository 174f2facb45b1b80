package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/mkrell/showdeck/internal/render/core"
)

// ANSIWriter is a Flusher that emits escape sequences to an io.Writer.
// Output is buffered; errors from the underlying writer stick and are
// reported from WriteRun and Flush so a failed frame never advances the
// caller's buffers.
type ANSIWriter struct {
	ew     *errWriter
	buf    *bufio.Writer
	out    *termenv.Output
	width  int
	height int
}

// NewANSIWriter creates an ANSI flusher with fixed dimensions.
// The caller owns raw-mode setup and teardown of the target terminal.
func NewANSIWriter(w io.Writer, width, height int) *ANSIWriter {
	ew := &errWriter{w: w}
	buf := bufio.NewWriter(ew)
	return &ANSIWriter{
		ew:     ew,
		buf:    buf,
		out:    termenv.NewOutput(buf, termenv.WithProfile(termenv.TrueColor)),
		width:  width,
		height: height,
	}
}

// Size returns the configured dimensions.
func (a *ANSIWriter) Size() (int, int) {
	return a.width, a.height
}

// Resize updates the dimensions after a terminal size change.
func (a *ANSIWriter) Resize(width, height int) {
	a.width = width
	a.height = height
}

// WriteRun emits one cursor move plus one styled text write.
func (a *ANSIWriter) WriteRun(x, y int, style core.Style, text string) error {
	// Terminal rows and columns are 1-based.
	a.out.MoveCursor(y+1, x+1)

	s := a.out.String(text)
	if !style.Foreground.IsDefault() {
		s = s.Foreground(a.out.Color(colorSpec(style.Foreground)))
	}
	if !style.Background.IsDefault() {
		s = s.Background(a.out.Color(colorSpec(style.Background)))
	}
	if style.Attributes.Has(core.AttrBold) {
		s = s.Bold()
	}
	if style.Attributes.Has(core.AttrDim) {
		s = s.Faint()
	}
	if style.Attributes.Has(core.AttrItalic) {
		s = s.Italic()
	}
	if style.Attributes.Has(core.AttrUnderline) {
		s = s.Underline()
	}
	if style.Attributes.Has(core.AttrStrikethrough) {
		s = s.CrossOut()
	}

	if _, err := a.buf.WriteString(s.String()); err != nil {
		return fmt.Errorf("write run at (%d,%d): %w", x, y, err)
	}
	return a.ew.err
}

// Flush drains buffered output to the terminal.
func (a *ANSIWriter) Flush() error {
	if err := a.buf.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return a.ew.err
}

// colorSpec renders a non-default color in the form termenv parses:
// a palette index or a hex triplet.
func colorSpec(c core.Color) string {
	if c.Indexed {
		return strconv.Itoa(int(c.R))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// errWriter remembers the first error from the underlying writer.
// termenv writes cursor sequences without checking errors; this keeps
// them observable.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
