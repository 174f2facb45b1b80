// Package library defines the entry model the browser components render.
// Scanning, metadata storage, and path handling live outside this
// repository; components only ever see these value types.
package library

import "strconv"

// Kind classifies a library entry.
type Kind int

const (
	KindSeries Kind = iota
	KindSeason
	KindEpisode
)

// String returns the kind name for status displays.
func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindSeason:
		return "season"
	case KindEpisode:
		return "episode"
	default:
		return "unknown"
	}
}

// Entry is one row of the browse list.
type Entry struct {
	// Title is the display name.
	Title string

	// Kind selects the base color role for the title.
	Kind Kind

	// Watched drives the watched/unwatched indicator glyph.
	Watched bool

	// New marks entries discovered since the last scan.
	New bool

	// Invalid marks entries whose metadata failed validation.
	// Invalid wins over New for coloring.
	Invalid bool
}

// Demo returns a fixture library for the demo binary and tests.
func Demo() []Entry {
	entries := []Entry{
		{Title: "Halt and Catch Fire", Kind: KindSeries, Watched: true},
		{Title: "Season 1", Kind: KindSeason, Watched: true},
	}
	for i := 1; i <= 10; i++ {
		entries = append(entries, Entry{
			Title:   "Episode " + strconv.Itoa(i),
			Kind:    KindEpisode,
			Watched: i <= 7,
		})
	}
	entries = append(entries,
		Entry{Title: "Season 2", Kind: KindSeason},
	)
	for i := 1; i <= 10; i++ {
		e := Entry{Title: "Episode " + strconv.Itoa(i), Kind: KindEpisode}
		if i == 9 {
			e.New = true
		}
		if i == 10 {
			e.Invalid = true
		}
		entries = append(entries, e)
	}
	entries = append(entries,
		Entry{Title: "The Expanse", Kind: KindSeries, New: true},
		Entry{Title: "Deadwood", Kind: KindSeries},
	)
	return entries
}
