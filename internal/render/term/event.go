package term

import "github.com/gdamore/tcell/v2"

// Event is a terminal event delivered to the application's event loop.
type Event interface{ isEvent() }

// Key identifies a special (non-printable) key.
type Key int

// Special keys the browser reacts to.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use KeyEvent.Rune)
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// ResizeEvent carries new terminal dimensions.
type ResizeEvent struct {
	Width, Height int
}

// QuitEvent signals that the terminal is gone.
type QuitEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (QuitEvent) isEvent()   {}

// keyEvent maps a tcell key event to a KeyEvent.
func keyEvent(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}
	case tcell.KeyPgUp:
		return KeyEvent{Key: KeyPageUp}
	case tcell.KeyPgDn:
		return KeyEvent{Key: KeyPageDown}
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome}
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd}
	default:
		return KeyEvent{Key: KeyNone}
	}
}
