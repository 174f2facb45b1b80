// Package app wires the browser together: one BufferManager, the
// component tree, and a single-threaded event loop. Exactly one render
// pass runs to completion per user-driven redraw; no rendering overlaps
// event handling.
package app

import (
	"fmt"

	"github.com/mkrell/showdeck/internal/library"
	"github.com/mkrell/showdeck/internal/log"
	"github.com/mkrell/showdeck/internal/render"
	"github.com/mkrell/showdeck/internal/render/term"
	"github.com/mkrell/showdeck/internal/theme"
	"github.com/mkrell/showdeck/internal/ui"
)

// Mode identifies which screen layout is active. Every transition
// forces a full redraw so no residue from the previous layout survives.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeDialog
	ModeEdit
)

// App is the showdeck browser.
type App struct {
	screen *term.Screen
	mgr    *render.BufferManager
	th     *theme.Theme

	mode   Mode
	list   *ui.List
	status *ui.StatusLine
	dialog *ui.Dialog
	editor *ui.Editor
}

// New creates the browser over the given library entries.
func New(th *theme.Theme, entries []library.Entry) *App {
	return &App{
		th:     th,
		list:   ui.NewList(entries),
		status: &ui.StatusLine{},
	}
}

// Run drives the event loop until the user quits. The screen must be
// initialized; the caller owns its lifecycle.
func (a *App) Run(screen *term.Screen) error {
	a.screen = screen
	w, h := screen.Size()
	a.mgr = render.NewBufferManager(w, h)

	for {
		if err := a.draw(); err != nil {
			// A failed flush leaves the current buffer un-advanced;
			// the next frame re-sends whatever never made it out.
			log.Warn("frame flush failed: %v", err)
		}

		switch ev := screen.PollEvent().(type) {
		case term.ResizeEvent:
			log.Debug("resize to %dx%d", ev.Width, ev.Height)
			a.mgr.Resize(ev.Width, ev.Height)
		case term.KeyEvent:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case term.QuitEvent:
			return nil
		}
	}
}

// viewportHeight returns the list viewport height: everything between
// the header row and the status row.
func (a *App) viewportHeight() int {
	_, h := a.mgr.Size()
	vh := h - 2
	if vh < 0 {
		vh = 0
	}
	return vh
}

// draw renders one complete frame.
func (a *App) draw() error {
	w, h := a.mgr.Size()
	vh := a.viewportHeight()

	err := a.mgr.Frame(a.screen, func(bw *render.BufferWriter) {
		header := ui.Header{
			Title: "showdeck",
			Count: len(a.list.Entries),
			Help:  "j/k move  w watched  e rename  enter actions  q quit",
		}
		bw.DrawGrid(0, 0, header.Render(w, 1, a.th, false))

		bw.DrawGrid(0, 1, a.list.Render(w, vh, a.th, a.mode == ModeBrowse))

		a.status.Left = a.statusText()
		a.status.Right = fmt.Sprintf("%d/%d", a.list.Selected+1, len(a.list.Entries))
		bw.DrawGrid(0, h-1, a.status.Render(w, 1, a.th, false))

		switch a.mode {
		case ModeDialog:
			dw, dh := w/2, len(a.dialog.Options)+2
			dx, dy := (w-dw)/2, (h-dh)/2
			bw.DrawGrid(dx, dy, a.dialog.Render(dw, dh, a.th, true))
		case ModeEdit:
			bw.DrawGrid(0, h-1, a.editor.Render(w, 1, a.th, false))
		}
	})
	if err != nil {
		return err
	}

	// Cursor visibility is an application concern, not part of the
	// diff protocol: hidden while navigating, placed while editing.
	if a.mode == ModeEdit {
		a.screen.ShowCursor(a.editor.CursorColumn(), h-1)
	} else {
		a.screen.HideCursor()
	}
	return nil
}

// statusText summarizes the selected entry.
func (a *App) statusText() string {
	entry, ok := a.list.SelectedEntry()
	if !ok {
		return "empty library"
	}
	state := "unwatched"
	if entry.Watched {
		state = "watched"
	}
	switch {
	case entry.Invalid:
		state = "invalid"
	case entry.New:
		state = "new"
	}
	return fmt.Sprintf("%s | %s | %s", entry.Title, entry.Kind, state)
}

// setMode transitions between screen layouts.
func (a *App) setMode(m Mode) {
	if a.mode == m {
		return
	}
	a.mode = m
	a.mgr.ForceFullRedraw()
}

// handleKey dispatches a key event for the active mode.
// Returns true when the application should exit.
func (a *App) handleKey(ev term.KeyEvent) bool {
	switch a.mode {
	case ModeDialog:
		a.handleDialogKey(ev)
	case ModeEdit:
		a.handleEditKey(ev)
	default:
		return a.handleBrowseKey(ev)
	}
	return false
}

func (a *App) handleBrowseKey(ev term.KeyEvent) bool {
	vh := a.viewportHeight()
	switch ev.Key {
	case term.KeyUp:
		a.list.CursorUp(vh)
	case term.KeyDown:
		a.list.CursorDown(vh)
	case term.KeyPageUp:
		a.list.PageUp(vh)
	case term.KeyPageDown:
		a.list.PageDown(vh)
	case term.KeyHome:
		a.list.Home(vh)
	case term.KeyEnd:
		a.list.End(vh)
	case term.KeyEnter:
		a.openDialog()
	case term.KeyEscape:
		return true
	case term.KeyRune:
		switch ev.Rune {
		case 'q':
			return true
		case 'j':
			a.list.CursorDown(vh)
		case 'k':
			a.list.CursorUp(vh)
		case 'w':
			a.toggleWatched()
		case 'e':
			a.openEditor()
		}
	}
	return false
}

func (a *App) handleDialogKey(ev term.KeyEvent) {
	switch ev.Key {
	case term.KeyUp:
		a.dialog.CursorUp()
	case term.KeyDown:
		a.dialog.CursorDown()
	case term.KeyEscape:
		a.setMode(ModeBrowse)
	case term.KeyEnter:
		a.applyDialog()
	case term.KeyRune:
		switch ev.Rune {
		case 'j':
			a.dialog.CursorDown()
		case 'k':
			a.dialog.CursorUp()
		}
	}
}

func (a *App) handleEditKey(ev term.KeyEvent) {
	switch ev.Key {
	case term.KeyEscape:
		a.setMode(ModeBrowse)
	case term.KeyEnter:
		if a.editor.Dirty() {
			a.list.Entries[a.list.Selected].Title = a.editor.Value()
			a.status.SetMessage("renamed")
		}
		a.setMode(ModeBrowse)
	case term.KeyBackspace:
		a.editor.Backspace()
	case term.KeyLeft:
		a.editor.MoveLeft()
	case term.KeyRight:
		a.editor.MoveRight()
	case term.KeyRune:
		a.editor.Insert(ev.Rune)
	}
}

func (a *App) toggleWatched() {
	if _, ok := a.list.SelectedEntry(); !ok {
		return
	}
	e := &a.list.Entries[a.list.Selected]
	e.Watched = !e.Watched
}

func (a *App) openDialog() {
	if _, ok := a.list.SelectedEntry(); !ok {
		return
	}
	a.dialog = &ui.Dialog{
		Title:   "Actions",
		Options: []string{"Mark watched", "Mark unwatched", "Rename", "Cancel"},
	}
	a.setMode(ModeDialog)
}

func (a *App) applyDialog() {
	option, _ := a.dialog.SelectedOption()
	switch option {
	case "Mark watched":
		a.list.Entries[a.list.Selected].Watched = true
		a.setMode(ModeBrowse)
	case "Mark unwatched":
		a.list.Entries[a.list.Selected].Watched = false
		a.setMode(ModeBrowse)
	case "Rename":
		a.setMode(ModeBrowse)
		a.openEditor()
	default:
		a.setMode(ModeBrowse)
	}
}

func (a *App) openEditor() {
	entry, ok := a.list.SelectedEntry()
	if !ok {
		return
	}
	a.editor = ui.NewEditor("Title", entry.Title)
	a.setMode(ModeEdit)
}
