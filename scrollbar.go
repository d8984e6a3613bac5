package vlist

// Scroll bar geometry is computed in 1/8-cell units so the thumb can move
// in sub-cell steps while staying proportional to viewport/content size.
const subcell = 8

var (
	thumbLowerGlyphs = [subcell]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	thumbUpperGlyphs = [subcell]rune{'▔', '🮂', '🮃', '▀', '🮄', '🮅', '🮆', '█'}
)

type scrollBarMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func computeScrollBarMetrics(trackCells, contentLen, viewportLen, offset int) scrollBarMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollBarMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollBarMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollBarMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// scrollBarCellFill converts absolute subcell thumb coverage into the
// cell-local [start, len] used by fractional glyph selection.
func scrollBarCellFill(m scrollBarMetrics, cellIndex int) (start, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

// scrollBarGlyph picks the glyph for one track cell. thumb reports whether
// the cell is (partially) covered by the thumb.
func scrollBarGlyph(start, fillLen int) (glyph rune, thumb bool) {
	if fillLen <= 0 {
		return '│', false
	}
	if fillLen >= subcell {
		return thumbLowerGlyphs[subcell-1], true
	}
	if start == 0 {
		return thumbUpperGlyphs[fillLen-1], true
	}
	return thumbLowerGlyphs[fillLen-1], true
}
