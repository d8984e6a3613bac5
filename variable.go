package vlist

// DefaultEstimatedItemSize is assumed for items that have not been measured
// yet when computing the total extent of a [VariableLayout].
const DefaultEstimatedItemSize = 50

type itemMetric struct {
	offset float64
	size   float64
}

// VariableLayout lays out heterogeneous items whose sizes come from a
// callback. Measured offsets and sizes are memoized up to a watermark so
// repeated queries stay cheap; the extent of unmeasured items is estimated
// and refines as more items are materialized.
type VariableLayout struct {
	size      func(index int) float64
	estimated float64

	// metrics holds measured geometry for indices [0, lastMeasured].
	metrics      []itemMetric
	lastMeasured int
}

// NewVariableLayout returns a layout whose item sizes are supplied by the
// given callback. The callback must be stable for a given index until
// [VariableLayout.ResetAfter] is called for it.
func NewVariableLayout(size func(index int) float64) *VariableLayout {
	return &VariableLayout{
		size:         size,
		estimated:    DefaultEstimatedItemSize,
		lastMeasured: -1,
	}
}

// SetEstimatedItemSize sets the extent assumed for unmeasured items.
func (v *VariableLayout) SetEstimatedItemSize(size float64) *VariableLayout {
	if size > 0 {
		v.estimated = size
	}
	return v
}

// ResetAfter discards memoized geometry for the given index and everything
// after it. Call it when the size callback's answers change from that index
// on; earlier items keep their measurements.
func (v *VariableLayout) ResetAfter(index int) *VariableLayout {
	if index < 0 {
		index = 0
	}
	if index-1 < v.lastMeasured {
		v.lastMeasured = index - 1
		v.metrics = v.metrics[:index]
	}
	return v
}

// Reset discards all memoized geometry.
func (v *VariableLayout) Reset() *VariableLayout {
	return v.ResetAfter(0)
}

// metric measures items up to index if necessary and returns its geometry.
func (v *VariableLayout) metric(index int) itemMetric {
	if index > v.lastMeasured {
		offset := 0.0
		if v.lastMeasured >= 0 {
			last := v.metrics[v.lastMeasured]
			offset = last.offset + last.size
		}
		for i := v.lastMeasured + 1; i <= index; i++ {
			size := v.size(i)
			v.metrics = append(v.metrics, itemMetric{offset: offset, size: size})
			offset += size
		}
		v.lastMeasured = index
	}
	return v.metrics[index]
}

// ItemOffset returns the leading-edge position of the item.
func (v *VariableLayout) ItemOffset(cfg *Config, index int) float64 {
	return v.metric(index).offset
}

// ItemSize returns the measured extent of the item.
func (v *VariableLayout) ItemSize(cfg *Config, index int) float64 {
	return v.metric(index).size
}

// EstimatedTotalExtent returns the measured extent plus an estimate for the
// unmeasured tail. The result only grows more precise as items are
// materialized; it is recomputed on every call so sizes measured during the
// current pass are reflected.
func (v *VariableLayout) EstimatedTotalExtent(cfg *Config) float64 {
	// The item count may have shrunk below the watermark.
	if v.lastMeasured >= cfg.ItemCount {
		v.lastMeasured = cfg.ItemCount - 1
		v.metrics = v.metrics[:cfg.ItemCount]
	}
	measured := 0.0
	if v.lastMeasured >= 0 {
		last := v.metrics[v.lastMeasured]
		measured = last.offset + last.size
	}
	unmeasured := float64(cfg.ItemCount-1-v.lastMeasured) * v.estimated
	return measured + unmeasured
}

// StartIndexForOffset returns the first index whose extent includes or
// follows the given offset.
func (v *VariableLayout) StartIndexForOffset(cfg *Config, offset float64) int {
	if v.lastMeasured >= 0 && v.metrics[v.lastMeasured].offset >= offset {
		return v.searchMeasured(v.lastMeasured, 0, offset)
	}
	return v.searchBeyondMeasured(cfg, max(v.lastMeasured, 0), offset)
}

// searchMeasured binary-searches already-measured metrics for the item
// containing offset.
func (v *VariableLayout) searchMeasured(high, low int, offset float64) int {
	for low <= high {
		mid := low + (high-low)/2
		current := v.metric(mid).offset
		switch {
		case current == offset:
			return mid
		case current < offset:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	if low > 0 {
		return low - 1
	}
	return 0
}

// searchBeyondMeasured grows the measured region exponentially until it
// covers offset, then narrows with a binary search. Measuring is what makes
// the layout's estimates refine, so overshooting a little is fine.
func (v *VariableLayout) searchBeyondMeasured(cfg *Config, index int, offset float64) int {
	interval := 1
	for index < cfg.ItemCount && v.metric(index).offset < offset {
		index += interval
		interval *= 2
	}
	return v.searchMeasured(min(index, cfg.ItemCount-1), index/2, offset)
}

// StopIndexForStartIndex returns the last index visible in the viewport.
func (v *VariableLayout) StopIndexForStartIndex(cfg *Config, startIndex int, offset float64) int {
	maxOffset := offset + cfg.Viewport
	m := v.metric(startIndex)
	edge := m.offset + m.size
	stop := startIndex
	for stop < cfg.ItemCount-1 && edge < maxOffset {
		stop++
		edge += v.metric(stop).size
	}
	return stop
}

// OffsetForIndexAndAlignment returns the scroll offset that brings the item
// into view under the given alignment.
func (v *VariableLayout) OffsetForIndexAndAlignment(cfg *Config, index int, align Align, offset float64) float64 {
	m := v.metric(index)
	lastItemOffset := max(0, v.EstimatedTotalExtent(cfg)-cfg.Viewport)
	maxOffset := min(lastItemOffset, m.offset)
	minOffset := max(0, m.offset-cfg.Viewport+m.size)

	return resolveAlignment(align, offset, minOffset, maxOffset, lastItemOffset, cfg.Viewport)
}

var _ Layout = (*VariableLayout)(nil)
