package ui

import (
	"strings"
	"testing"

	"github.com/mkrell/showdeck/internal/theme"
)

func TestStatusLineRender(t *testing.T) {
	th := theme.Default()
	s := &StatusLine{Left: "Pilot | episode | watched", Right: "3/25"}

	grid := s.Render(60, 1, th, false)
	if len(grid) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid))
	}
	row := grid[0]

	text := rowText(row)
	if !strings.HasPrefix(text, " Pilot | episode | watched") {
		t.Errorf("left text missing: %q", text)
	}
	if !strings.HasSuffix(text, "3/25 ") && !strings.Contains(text, "3/25") {
		t.Errorf("right text missing: %q", text)
	}

	// The right text ends one column short of the right edge.
	if row[58].Rune != '5' {
		t.Errorf("cell 58 = %q, want '5'", row[58].Rune)
	}

	// Every cell carries the status colors, including the fill between
	// the two texts.
	for x, cell := range row {
		if !cell.Style.Background.Equals(th.StatusBg) {
			t.Fatalf("cell %d background = %v, want status bg", x, cell.Style.Background)
		}
	}
}

func TestStatusLineDropsCollidingRight(t *testing.T) {
	th := theme.Default()
	s := &StatusLine{Left: "a long left message", Right: "99/99"}

	row := s.Render(20, 1, th, false)[0]
	if strings.Contains(rowText(row), "99/99") {
		t.Error("right text should be dropped when it would collide")
	}
}

func TestStatusLineMessageOverridesLeft(t *testing.T) {
	th := theme.Default()
	s := &StatusLine{Left: "selection info"}

	s.SetMessage("renamed")
	text := rowText(s.Render(40, 1, th, false)[0])
	if !strings.Contains(text, "renamed") || strings.Contains(text, "selection info") {
		t.Errorf("message should replace the left text, got %q", text)
	}

	s.ClearMessage()
	text = rowText(s.Render(40, 1, th, false)[0])
	if !strings.Contains(text, "selection info") {
		t.Errorf("left text should return after ClearMessage, got %q", text)
	}
}

func TestHeaderRender(t *testing.T) {
	th := theme.Default()
	h := Header{Title: "showdeck", Count: 25, Help: "q quit"}

	row := h.Render(60, 1, th, false)[0]
	text := rowText(row)
	if !strings.HasPrefix(text, "showdeck (25)") {
		t.Errorf("header text = %q", text)
	}
	if !strings.HasSuffix(text, "q quit") {
		t.Errorf("help text should be right-aligned, got %q", text)
	}

	if !row[0].Style.Attributes.Has(theme.Default().HeaderStyle.Attributes) {
		t.Error("title should carry the header style attributes")
	}
	if !row[9].Style.Foreground.Equals(th.CountStyle.Foreground) {
		t.Errorf("count color = %v, want %v", row[9].Style.Foreground, th.CountStyle.Foreground)
	}
}

func TestHeaderDropsCollidingHelp(t *testing.T) {
	th := theme.Default()
	h := Header{Title: "a rather long header title", Count: 9999, Help: "j/k move  q quit"}

	text := rowText(h.Render(30, 1, th, false)[0])
	if strings.Contains(text, "quit") {
		t.Errorf("help should be dropped when it would collide, got %q", text)
	}
}
