// Package render provides the differential rendering engine for the
// showdeck browser.
//
// Each user-driven redraw runs one synchronous pass:
//
//	┌─────────────────────────────────────────┐
//	│          BufferManager.Frame            │
//	├─────────────────────────────────────────┤
//	│ clear desired │ components write via    │
//	│               │ BufferWriter            │
//	├─────────────────────────────────────────┤
//	│ diff current vs desired, cell by cell   │
//	├─────────────────────────────────────────┤
//	│ flush row-runs through term.Flusher     │
//	│ on success: current <- desired          │
//	└─────────────────────────────────────────┘
//
// A failed flush leaves the current buffer untouched; the next frame's
// diff re-sends the unconfirmed cells. Out-of-bounds buffer writes are
// dropped silently, and degenerate geometry always resolves to "nothing
// to render". The only error that reaches callers is a flush I/O error.
package render
