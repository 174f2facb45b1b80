package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mkrell/showdeck/internal/render/core"
)

// Screen is a tcell-backed Flusher for interactive use. It also carries
// the pieces of terminal lifecycle the surrounding event loop needs:
// init/fini, event polling, and cursor visibility. The rendering core
// itself only ever sees the Flusher methods.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates a tcell screen. Init must be called before use.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// Init initializes the terminal and hides the cursor.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal state.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// WriteRun places a styled run of text. tcell batches cell updates
// internally; nothing reaches the terminal until Flush.
func (s *Screen) WriteRun(x, y int, style core.Style, text string) error {
	ts := toTcellStyle(style)
	col := x
	for _, ch := range text {
		width := core.RuneWidth(ch)
		if width == 0 {
			continue
		}
		s.screen.SetContent(col, y, ch, nil, ts)
		col += width
	}
	return nil
}

// Flush pushes pending cell updates to the terminal.
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// PollEvent blocks for the next terminal event and maps it to an Event.
func (s *Screen) PollEvent() Event {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return keyEvent(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}
		case nil:
			return QuitEvent{}
		}
		// Mouse, paste, and focus events are not part of this browser.
	}
}

// ShowCursor positions and shows the cursor, for field editing.
func (s *Screen) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

// HideCursor hides the cursor, for list navigation.
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// toTcellStyle converts a core style to tcell's representation.
func toTcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(toTcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(toTcellColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

// toTcellColor converts a non-default core color to tcell's representation.
func toTcellColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
