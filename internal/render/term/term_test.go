package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mkrell/showdeck/internal/render/core"
)

func TestRecorderAppliesRuns(t *testing.T) {
	r := NewRecorder(20, 5)

	if err := r.WriteRun(2, 1, core.DefaultStyle(), "abc"); err != nil {
		t.Fatal(err)
	}
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := r.Line(1); got != "  abc" {
		t.Errorf("line 1 = %q, want %q", got, "  abc")
	}
	if r.Flushes != 1 {
		t.Errorf("flushes = %d, want 1", r.Flushes)
	}
	if len(r.Runs) != 1 || r.Runs[0].Text != "abc" {
		t.Errorf("runs = %+v", r.Runs)
	}
}

func TestRecorderWideRunes(t *testing.T) {
	r := NewRecorder(10, 1)

	if err := r.WriteRun(0, 0, core.DefaultStyle(), "世x"); err != nil {
		t.Fatal(err)
	}
	if !r.Cell(1, 0).IsContinuation() {
		t.Error("cell after a wide rune should be a continuation")
	}
	if got := r.Cell(2, 0).Rune; got != 'x' {
		t.Errorf("cell 2 = %q, want 'x'", got)
	}
}

func TestRecorderFailureInjection(t *testing.T) {
	r := NewRecorder(10, 2)
	r.FailAfter = 2

	if err := r.WriteRun(0, 0, core.DefaultStyle(), "ok"); err != nil {
		t.Fatalf("first write should succeed: %v", err)
	}
	err := r.WriteRun(0, 1, core.DefaultStyle(), "boom")
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("second write should fail, got %v", err)
	}
	if len(r.Runs) != 1 {
		t.Errorf("failed writes must not be recorded, runs = %d", len(r.Runs))
	}

	r.FailFlush = true
	if err := r.Flush(); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("scripted flush failure missing, got %v", err)
	}
}

func TestANSIWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewANSIWriter(&buf, 80, 24)

	style := core.NewStyle(core.ColorFromRGB(0x5f, 0xaf, 0xd7)).Bold()
	if err := w.WriteRun(4, 2, style, "hi"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("output should stay buffered until Flush")
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	// Cursor move to row 3, column 5 (1-based), then bold truecolor text.
	if !strings.Contains(out, "\x1b[3;5H") {
		t.Errorf("missing cursor move, output = %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("missing text, output = %q", out)
	}
	// termenv folds bold into one combined SGR, e.g.
	// "\x1b[38;2;95;175;215;1m": the bold parameter may open the
	// sequence, follow the color, or stand alone.
	if !strings.Contains(out, ";1m") && !strings.Contains(out, "[1m") && !strings.Contains(out, "[1;") {
		t.Errorf("missing bold sequence, output = %q", out)
	}
}

func TestANSIWriterDefaultStyleAddsNoColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewANSIWriter(&buf, 80, 24)

	if err := w.WriteRun(0, 0, core.DefaultStyle(), "plain"); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); strings.Contains(out, "38;2") || strings.Contains(out, "48;2") {
		t.Errorf("default style must not emit color sequences, output = %q", out)
	}
}

func TestANSIWriterStickyError(t *testing.T) {
	fail := &failingWriter{}
	w := NewANSIWriter(fail, 80, 24)

	if err := w.WriteRun(0, 0, core.DefaultStyle(), "x"); err != nil {
		// Buffered; the failure may only surface at Flush.
		t.Logf("early error: %v", err)
	}
	if err := w.Flush(); !errors.Is(err, errSink) {
		t.Fatalf("flush should surface the write error, got %v", err)
	}
	// The error sticks: later writes keep reporting it.
	w.WriteRun(0, 0, core.DefaultStyle(), "y")
	if err := w.Flush(); !errors.Is(err, errSink) {
		t.Errorf("error should stick across flushes, got %v", err)
	}
}

func TestANSIWriterResize(t *testing.T) {
	w := NewANSIWriter(&bytes.Buffer{}, 80, 24)
	w.Resize(120, 40)
	if width, height := w.Size(); width != 120 || height != 40 {
		t.Errorf("size = (%d, %d), want (120, 40)", width, height)
	}
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, errSink
}
