package render

import "testing"

func TestComputeScrollbar(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		visible int
		first   int
		track   int
		want    ScrollbarSpan
	}{
		{
			name:  "content fits exactly",
			total: 10, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{},
		},
		{
			name:  "content shorter than viewport",
			total: 3, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{},
		},
		{
			name:  "empty content",
			total: 0, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{},
		},
		{
			name:  "zero track",
			total: 100, visible: 10, first: 0, track: 0,
			want: ScrollbarSpan{},
		},
		{
			name:  "top of a long list",
			total: 100, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 0, IndicatorLength: 1},
		},
		{
			name:  "bottom of a long list",
			total: 100, visible: 10, first: 90, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 9, IndicatorLength: 1},
		},
		{
			name:  "middle of a long list",
			total: 100, visible: 10, first: 45, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 4, IndicatorLength: 1},
		},
		{
			name:  "half visible",
			total: 20, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 0, IndicatorLength: 5},
		},
		{
			name:  "half visible scrolled to end",
			total: 20, visible: 10, first: 10, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 5, IndicatorLength: 5},
		},
		{
			name:  "minimum length of one",
			total: 10000, visible: 5, first: 0, track: 8,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 0, IndicatorLength: 1},
		},
		{
			name:  "length floors",
			total: 30, visible: 10, first: 0, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 0, IndicatorLength: 3},
		},
		{
			name:  "negative first clamps to top",
			total: 100, visible: 10, first: -5, track: 10,
			want: ScrollbarSpan{Visible: true, IndicatorStart: 0, IndicatorLength: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScrollbar(tt.total, tt.visible, tt.first, tt.track)
			if got != tt.want {
				t.Errorf("ComputeScrollbar(%d, %d, %d, %d) = %+v, want %+v",
					tt.total, tt.visible, tt.first, tt.track, got, tt.want)
			}
		})
	}
}

func TestScrollbarEndFlush(t *testing.T) {
	// Scrolled fully down, the indicator end must coincide with the track
	// end for any geometry.
	for _, tc := range []struct{ total, visible, track int }{
		{100, 10, 10},
		{25, 10, 10},
		{11, 10, 10},
		{1000, 3, 7},
		{50, 49, 20},
	} {
		first := tc.total - tc.visible
		got := ComputeScrollbar(tc.total, tc.visible, first, tc.track)
		if !got.Visible {
			t.Errorf("(%d, %d, %d): scrollbar should be visible", tc.total, tc.visible, tc.track)
			continue
		}
		if end := got.IndicatorStart + got.IndicatorLength; end != tc.track {
			t.Errorf("(%d, %d, first=%d, %d): indicator ends at %d, want %d",
				tc.total, tc.visible, first, tc.track, end, tc.track)
		}
	}
}

func TestScrollbarNeverExceedsTrack(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for visible := 1; visible <= 15; visible++ {
			for track := 1; track <= 15; track++ {
				for first := 0; first <= total-visible; first++ {
					got := ComputeScrollbar(total, visible, first, track)
					if !got.Visible {
						continue
					}
					if got.IndicatorStart < 0 || got.IndicatorStart+got.IndicatorLength > track {
						t.Fatalf("ComputeScrollbar(%d, %d, %d, %d) = %+v escapes the track",
							total, visible, first, track, got)
					}
					if got.IndicatorLength < 1 {
						t.Fatalf("ComputeScrollbar(%d, %d, %d, %d) indicator length %d < 1",
							total, visible, first, track, got.IndicatorLength)
					}
				}
			}
		}
	}
}

func TestScrollbarSpanCovers(t *testing.T) {
	s := ScrollbarSpan{Visible: true, IndicatorStart: 3, IndicatorLength: 2}
	for row, want := range map[int]bool{2: false, 3: true, 4: true, 5: false} {
		if got := s.Covers(row); got != want {
			t.Errorf("Covers(%d) = %v, want %v", row, got, want)
		}
	}
	hidden := ScrollbarSpan{}
	if hidden.Covers(0) {
		t.Error("hidden scrollbar covers nothing")
	}
}
