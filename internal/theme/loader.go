package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/mkrell/showdeck/internal/render/core"
)

// Load reads a theme file, applying it over the built-in defaults.
// TOML and JSON are supported, selected by extension. An empty path or a
// missing file yields the default theme; a malformed file is an error.
func Load(path string) (*Theme, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(data)
	case ".toml", "":
		return LoadTOML(data)
	default:
		return nil, fmt.Errorf("unsupported theme format: %s", path)
	}
}

// fileTheme mirrors the on-disk theme structure. Every field is
// optional; unset roles keep their defaults.
type fileTheme struct {
	Name      string         `toml:"name"`
	Selection roleColors     `toml:"selection"`
	Dirty     roleColors     `toml:"dirty"`
	Watched   glyphRole      `toml:"watched"`
	Unwatched glyphRole      `toml:"unwatched"`
	Entries   entryColors    `toml:"entries"`
	Status    roleColors     `toml:"status"`
	Scrollbar scrollbarRoles `toml:"scrollbar"`
	Header    textRole       `toml:"header"`
	Count     textRole       `toml:"count"`
	Help      textRole       `toml:"help"`
	Border    string         `toml:"border"`
}

type roleColors struct {
	Fg string `toml:"fg"`
	Bg string `toml:"bg"`
}

type glyphRole struct {
	Glyph string `toml:"glyph"`
	Color string `toml:"color"`
}

type entryColors struct {
	New     string `toml:"new"`
	Invalid string `toml:"invalid"`
	Series  string `toml:"series"`
	Season  string `toml:"season"`
	Episode string `toml:"episode"`
}

type scrollbarRoles struct {
	Track     glyphRole `toml:"track"`
	Indicator glyphRole `toml:"indicator"`
}

type textRole struct {
	Color string   `toml:"color"`
	Style []string `toml:"style"`
}

// LoadTOML parses a TOML theme over the defaults.
func LoadTOML(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	return apply(&ft)
}

// LoadJSON parses a JSON theme over the defaults.
func LoadJSON(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing theme: invalid JSON")
	}
	root := gjson.ParseBytes(data)

	strs := func(path string) []string {
		var out []string
		for _, v := range root.Get(path).Array() {
			out = append(out, v.String())
		}
		return out
	}

	ft := fileTheme{
		Name: root.Get("name").String(),
		Selection: roleColors{
			Fg: root.Get("selection.fg").String(),
			Bg: root.Get("selection.bg").String(),
		},
		Dirty: roleColors{
			Fg: root.Get("dirty.fg").String(),
			Bg: root.Get("dirty.bg").String(),
		},
		Watched: glyphRole{
			Glyph: root.Get("watched.glyph").String(),
			Color: root.Get("watched.color").String(),
		},
		Unwatched: glyphRole{
			Glyph: root.Get("unwatched.glyph").String(),
			Color: root.Get("unwatched.color").String(),
		},
		Entries: entryColors{
			New:     root.Get("entries.new").String(),
			Invalid: root.Get("entries.invalid").String(),
			Series:  root.Get("entries.series").String(),
			Season:  root.Get("entries.season").String(),
			Episode: root.Get("entries.episode").String(),
		},
		Status: roleColors{
			Fg: root.Get("status.fg").String(),
			Bg: root.Get("status.bg").String(),
		},
		Scrollbar: scrollbarRoles{
			Track: glyphRole{
				Glyph: root.Get("scrollbar.track.glyph").String(),
				Color: root.Get("scrollbar.track.color").String(),
			},
			Indicator: glyphRole{
				Glyph: root.Get("scrollbar.indicator.glyph").String(),
				Color: root.Get("scrollbar.indicator.color").String(),
			},
		},
		Header: textRole{Color: root.Get("header.color").String(), Style: strs("header.style")},
		Count:  textRole{Color: root.Get("count.color").String(), Style: strs("count.style")},
		Help:   textRole{Color: root.Get("help.color").String(), Style: strs("help.style")},
		Border: root.Get("border").String(),
	}
	return apply(&ft)
}

// apply overlays parsed roles onto the default theme.
func apply(ft *fileTheme) (*Theme, error) {
	t := Default()
	if ft.Name != "" {
		t.Name = ft.Name
	}

	var err error
	set := func(dst *core.Color, s string) {
		if s == "" || err != nil {
			return
		}
		var c core.Color
		c, err = ParseColor(s)
		if err == nil {
			*dst = c
		}
	}
	setGlyph := func(dst *rune, s string) {
		for _, r := range s {
			*dst = r
			return
		}
	}

	set(&t.SelectionFg, ft.Selection.Fg)
	set(&t.SelectionBg, ft.Selection.Bg)
	set(&t.DirtyFg, ft.Dirty.Fg)
	set(&t.DirtyBg, ft.Dirty.Bg)

	setGlyph(&t.WatchedGlyph, ft.Watched.Glyph)
	set(&t.WatchedColor, ft.Watched.Color)
	setGlyph(&t.UnwatchedGlyph, ft.Unwatched.Glyph)
	set(&t.UnwatchedColor, ft.Unwatched.Color)

	set(&t.NewColor, ft.Entries.New)
	set(&t.InvalidColor, ft.Entries.Invalid)
	set(&t.SeriesColor, ft.Entries.Series)
	set(&t.SeasonColor, ft.Entries.Season)
	set(&t.EpisodeColor, ft.Entries.Episode)

	set(&t.StatusFg, ft.Status.Fg)
	set(&t.StatusBg, ft.Status.Bg)

	setGlyph(&t.TrackGlyph, ft.Scrollbar.Track.Glyph)
	set(&t.TrackColor, ft.Scrollbar.Track.Color)
	setGlyph(&t.IndicatorGlyph, ft.Scrollbar.Indicator.Glyph)
	set(&t.IndicatorColor, ft.Scrollbar.Indicator.Color)

	set(&t.HeaderStyle.Foreground, ft.Header.Color)
	set(&t.CountStyle.Foreground, ft.Count.Color)
	set(&t.HelpStyle.Foreground, ft.Help.Color)
	set(&t.BorderColor, ft.Border)
	if err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	for _, role := range []struct {
		attrs *core.Attribute
		names []string
	}{
		{&t.HeaderStyle.Attributes, ft.Header.Style},
		{&t.CountStyle.Attributes, ft.Count.Style},
		{&t.HelpStyle.Attributes, ft.Help.Style},
	} {
		if len(role.names) == 0 {
			continue
		}
		attrs, aerr := parseAttributes(role.names)
		if aerr != nil {
			return nil, fmt.Errorf("parsing theme: %w", aerr)
		}
		*role.attrs = attrs
	}

	// A theme that restyles the selection but leaves the status line
	// alone gets a matching status background derived from it.
	if ft.Selection.Bg != "" && ft.Status.Bg == "" {
		t.StatusBg = deriveStatusBg(t.SelectionBg)
	}

	return t, nil
}

// ParseColor parses a color token: "default", a palette index such as
// "75", or a hex triplet such as "#5fafd7".
func ParseColor(s string) (core.Color, error) {
	s = strings.TrimSpace(s)
	if s == "default" {
		return core.ColorDefault, nil
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if idx < 0 || idx > 255 {
			return core.Color{}, fmt.Errorf("palette index out of range: %d", idx)
		}
		return core.ColorFromIndex(uint8(idx)), nil
	}
	return core.ColorFromHex(s)
}

// parseAttributes parses style flag names.
func parseAttributes(names []string) (core.Attribute, error) {
	attrs := core.AttrNone
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "bold":
			attrs = attrs.With(core.AttrBold)
		case "dim":
			attrs = attrs.With(core.AttrDim)
		case "italic":
			attrs = attrs.With(core.AttrItalic)
		case "underline":
			attrs = attrs.With(core.AttrUnderline)
		case "strikethrough":
			attrs = attrs.With(core.AttrStrikethrough)
		default:
			return 0, fmt.Errorf("unknown style attribute: %q", name)
		}
	}
	return attrs, nil
}
