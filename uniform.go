package vlist

import "math"

// UniformLayout lays out items of a single fixed size. Every operation is
// closed-form; there is no per-instance state to maintain.
type UniformLayout struct {
	itemSize float64
}

// NewUniformLayout returns a layout where every item has the given extent
// along the scroll axis.
func NewUniformLayout(itemSize float64) *UniformLayout {
	return &UniformLayout{itemSize: itemSize}
}

// ItemOffset returns the leading-edge position of the item.
func (u *UniformLayout) ItemOffset(cfg *Config, index int) float64 {
	return float64(index) * u.itemSize
}

// ItemSize returns the fixed item extent.
func (u *UniformLayout) ItemSize(cfg *Config, index int) float64 {
	return u.itemSize
}

// EstimatedTotalExtent returns the exact total extent.
func (u *UniformLayout) EstimatedTotalExtent(cfg *Config) float64 {
	return u.itemSize * float64(cfg.ItemCount)
}

// StartIndexForOffset returns the first index whose extent includes or
// follows the given offset.
func (u *UniformLayout) StartIndexForOffset(cfg *Config, offset float64) int {
	if u.itemSize <= 0 {
		return 0
	}
	index := int(math.Floor(offset / u.itemSize))
	return min(max(index, 0), cfg.ItemCount-1)
}

// StopIndexForStartIndex returns the last index visible in the viewport.
func (u *UniformLayout) StopIndexForStartIndex(cfg *Config, startIndex int, offset float64) int {
	if u.itemSize <= 0 {
		return startIndex
	}
	startOffset := float64(startIndex) * u.itemSize
	visible := int(math.Ceil((offset + cfg.Viewport - startOffset) / u.itemSize))
	// The start item counts as one of the visible items.
	return min(cfg.ItemCount-1, max(startIndex, startIndex+visible-1))
}

// OffsetForIndexAndAlignment returns the scroll offset that brings the item
// into view under the given alignment.
func (u *UniformLayout) OffsetForIndexAndAlignment(cfg *Config, index int, align Align, offset float64) float64 {
	lastItemOffset := max(0, u.itemSize*float64(cfg.ItemCount)-cfg.Viewport)
	maxOffset := min(lastItemOffset, float64(index)*u.itemSize)
	minOffset := max(0, float64(index)*u.itemSize-cfg.Viewport+u.itemSize)

	return resolveAlignment(align, offset, minOffset, maxOffset, lastItemOffset, cfg.Viewport)
}

// resolveAlignment maps an alignment to a concrete target offset given the
// window [minOffset, maxOffset] of offsets at which the item is fully
// visible. Shared by all layouts.
func resolveAlignment(align Align, offset, minOffset, maxOffset, lastItemOffset, viewport float64) float64 {
	if align == AlignSmart {
		if offset >= minOffset-viewport && offset <= maxOffset+viewport {
			align = AlignAuto
		} else {
			align = AlignCenter
		}
	}

	switch align {
	case AlignStart:
		return maxOffset
	case AlignEnd:
		return minOffset
	case AlignCenter:
		middle := minOffset + (maxOffset-minOffset)/2
		// Avoid overscrolling past either edge of the scrollable extent.
		if middle < viewport/2 {
			return 0
		}
		if middle > lastItemOffset+viewport/2 {
			return lastItemOffset
		}
		return middle
	default: // AlignAuto
		if offset >= minOffset && offset <= maxOffset {
			return offset
		}
		if offset < minOffset {
			return minOffset
		}
		return maxOffset
	}
}

var _ Layout = (*UniformLayout)(nil)
