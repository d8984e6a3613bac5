package vlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestComputeScrollBarMetrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		trackCells  int
		contentLen  int
		viewportLen int
		offset      int
		want        scrollBarMetrics
	}{
		{
			name:       "top of a long list",
			trackCells: 10, contentLen: 100, viewportLen: 10, offset: 0,
			want: scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 0},
		},
		{
			name:       "bottom of a long list",
			trackCells: 10, contentLen: 100, viewportLen: 10, offset: 90,
			want: scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72},
		},
		{
			name:       "thumb is proportional to the viewport share",
			trackCells: 10, contentLen: 160, viewportLen: 80, offset: 40,
			want: scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 40, thumbStart: 20},
		},
		{
			name:       "content fits entirely",
			trackCells: 10, contentLen: 5, viewportLen: 10, offset: 0,
			want: scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 80, thumbStart: 0},
		},
		{
			name:       "offset past the end is clamped",
			trackCells: 10, contentLen: 100, viewportLen: 10, offset: 5000,
			want: scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72},
		},
		{
			name:       "no track",
			trackCells: 0, contentLen: 100, viewportLen: 10, offset: 0,
			want: scrollBarMetrics{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := computeScrollBarMetrics(tt.trackCells, tt.contentLen, tt.viewportLen, tt.offset)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(scrollBarMetrics{})); diff != "" {
				t.Errorf("metrics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScrollBarGlyphs(t *testing.T) {
	t.Parallel()

	m := scrollBarMetrics{trackCells: 10, trackLen: 80, thumbLen: 12, thumbStart: 4}

	// Cell 0 holds the last 4 subcells of the thumb, cell 1 the first 8,
	// cell 2 none.
	start, fill := scrollBarCellFill(m, 0)
	glyph, thumb := scrollBarGlyph(start, fill)
	assert.True(t, thumb)
	assert.Equal(t, thumbLowerGlyphs[3], glyph)

	start, fill = scrollBarCellFill(m, 1)
	glyph, thumb = scrollBarGlyph(start, fill)
	assert.True(t, thumb)
	assert.Equal(t, '█', glyph)

	_, fill = scrollBarCellFill(m, 2)
	glyph, thumb = scrollBarGlyph(0, fill)
	assert.False(t, thumb)
	assert.Equal(t, '│', glyph)
}
