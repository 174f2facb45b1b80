package render

// ScrollbarSpan is the computed geometry of a vertical scrollbar
// indicator on a track. Recomputed each frame from the owning list's
// scroll state; never persisted.
type ScrollbarSpan struct {
	// Visible is false when the content fits the viewport and the
	// scrollbar should be hidden entirely.
	Visible bool

	// IndicatorStart is the first track row covered by the indicator.
	IndicatorStart int

	// IndicatorLength is the indicator extent in track rows, never
	// less than 1 when visible.
	IndicatorLength int
}

// Covers returns true if the given track row falls inside the indicator.
func (s ScrollbarSpan) Covers(row int) bool {
	return s.Visible &&
		row >= s.IndicatorStart &&
		row < s.IndicatorStart+s.IndicatorLength
}

// ComputeScrollbar maps list scroll state to indicator geometry.
//
// The indicator length is proportional to the visible share of the
// content, floor-rounded and clamped to a minimum of 1 so it stays
// visible for arbitrarily long lists. The indicator position maps the
// first visible index across the remaining track travel, clamped so the
// indicator never extends past the track end.
func ComputeScrollbar(total, visible, first, track int) ScrollbarSpan {
	if total <= 0 || track <= 0 || total <= visible {
		return ScrollbarSpan{}
	}

	length := visible * track / total
	if length < 1 {
		length = 1
	}

	scrollable := total - visible // > 0 here
	travel := track - length
	if first < 0 {
		first = 0
	}
	start := first * travel / scrollable

	if start+length > track {
		start = track - length
	}
	if start < 0 {
		start = 0
	}

	return ScrollbarSpan{
		Visible:         true,
		IndicatorStart:  start,
		IndicatorLength: length,
	}
}
