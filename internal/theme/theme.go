// Package theme defines the color and glyph configuration consumed by
// every component render call. Themes are loaded once by the
// configuration layer and treated as read-only afterwards.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mkrell/showdeck/internal/render/core"
)

// Theme maps semantic roles to color tokens and glyphs. Components never
// hard-code colors; everything visual routes through a role.
type Theme struct {
	Name string

	// Current-selection colors override all state-derived coloring.
	SelectionFg core.Color
	SelectionBg core.Color

	// Dirty-field colors mark an editor value that diverged from its
	// original.
	DirtyFg core.Color
	DirtyBg core.Color

	// Watched/unwatched indicator column.
	WatchedGlyph   rune
	WatchedColor   core.Color
	UnwatchedGlyph rune
	UnwatchedColor core.Color

	// Entry state colors. Invalid wins over New; New wins over the
	// kind color.
	NewColor     core.Color
	InvalidColor core.Color
	SeriesColor  core.Color
	SeasonColor  core.Color
	EpisodeColor core.Color

	// Status line.
	StatusFg core.Color
	StatusBg core.Color

	// Scrollbar track and indicator.
	TrackGlyph     rune
	TrackColor     core.Color
	IndicatorGlyph rune
	IndicatorColor core.Color

	// Header, count, and help text.
	HeaderStyle core.Style
	CountStyle  core.Style
	HelpStyle   core.Style

	// Dialog border.
	BorderColor core.Color
}

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		Name:        "midnight",
		SelectionFg: core.ColorFromRGB(28, 28, 28),
		SelectionBg: core.ColorFromRGB(135, 215, 255),

		DirtyFg: core.ColorFromRGB(255, 215, 135),
		DirtyBg: core.ColorDefault,

		WatchedGlyph:   '✓',
		WatchedColor:   core.ColorFromRGB(95, 175, 95),
		UnwatchedGlyph: '·',
		UnwatchedColor: core.ColorFromRGB(108, 108, 108),

		NewColor:     core.ColorFromRGB(135, 215, 135),
		InvalidColor: core.ColorFromRGB(215, 95, 95),
		SeriesColor:  core.ColorFromRGB(215, 215, 255),
		SeasonColor:  core.ColorFromRGB(175, 175, 215),
		EpisodeColor: core.ColorFromRGB(188, 188, 188),

		StatusFg: core.ColorFromRGB(220, 220, 220),
		StatusBg: core.ColorFromRGB(48, 48, 48),

		TrackGlyph:     '│',
		TrackColor:     core.ColorFromRGB(68, 68, 68),
		IndicatorGlyph: '█',
		IndicatorColor: core.ColorFromRGB(135, 175, 215),

		HeaderStyle: core.NewStyle(core.ColorFromRGB(255, 255, 255)).Bold(),
		CountStyle:  core.NewStyle(core.ColorFromRGB(148, 148, 148)),
		HelpStyle:   core.NewStyle(core.ColorFromRGB(128, 128, 128)).Dim(),

		BorderColor: core.ColorFromRGB(98, 98, 138),
	}
}

// SelectionStyle returns the full style for the selected row.
func (t *Theme) SelectionStyle() core.Style {
	return core.Style{Foreground: t.SelectionFg, Background: t.SelectionBg}
}

// StatusStyle returns the full status-line style.
func (t *Theme) StatusStyle() core.Style {
	return core.Style{Foreground: t.StatusFg, Background: t.StatusBg}
}

// DirtyStyle returns the full dirty-field style.
func (t *Theme) DirtyStyle() core.Style {
	return core.Style{Foreground: t.DirtyFg, Background: t.DirtyBg}
}

// EntryColor resolves the state-derived color for an entry with the
// given kind and flags, independent of selection.
func (t *Theme) EntryColor(series, season bool, isNew, invalid bool) core.Color {
	switch {
	case invalid:
		return t.InvalidColor
	case isNew:
		return t.NewColor
	case series:
		return t.SeriesColor
	case season:
		return t.SeasonColor
	default:
		return t.EpisodeColor
	}
}

// deriveStatusBg produces a status background from the selection
// background when a theme file does not set one: same hue, most of the
// lightness removed.
func deriveStatusBg(selection core.Color) core.Color {
	if selection.IsDefault() || selection.Indexed {
		return core.ColorDefault
	}
	c := colorful.Color{
		R: float64(selection.R) / 255,
		G: float64(selection.G) / 255,
		B: float64(selection.B) / 255,
	}
	h, s, l := c.Hsl()
	dark := colorful.Hsl(h, s*0.4, l*0.25)
	r, g, b := dark.Clamped().RGB255()
	return core.ColorFromRGB(r, g, b)
}
