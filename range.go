package vlist

// Range is the window of items to materialize for one render pass. All
// indices are inclusive; the visible range is contained in the overscan
// range. An empty collection yields a range whose stops are below its
// starts, so iterating OverscanStart..OverscanStop naturally produces
// nothing.
type Range struct {
	OverscanStart int
	OverscanStop  int
	VisibleStart  int
	VisibleStop   int
}

// Empty reports whether the range contains no items.
func (r Range) Empty() bool {
	return r.OverscanStop < r.OverscanStart
}

// computeRange resolves the visible index range at the working offset and
// pads it with overscan. Padding is direction-biased: the direction of
// travel gets max(cfg.Overscan, 1) extra items so upcoming items are ready
// before they scroll in, while the opposite side keeps exactly one so focus
// traversal just past the visible edge never lands outside the window.
func computeRange(layout Layout, cfg *Config, offset float64, direction Direction) Range {
	if cfg.ItemCount == 0 {
		return Range{OverscanStart: 0, OverscanStop: -1, VisibleStart: 0, VisibleStop: -1}
	}

	start := layout.StartIndexForOffset(cfg, offset)
	stop := layout.StopIndexForStartIndex(cfg, start, offset)

	overscanBackward := 1
	overscanForward := 1
	if direction == DirectionForward {
		overscanForward = max(cfg.Overscan, 1)
	} else {
		overscanBackward = max(cfg.Overscan, 1)
	}

	return Range{
		OverscanStart: max(0, start-overscanBackward),
		OverscanStop:  min(cfg.ItemCount-1, max(0, stop+overscanForward)),
		VisibleStart:  start,
		VisibleStop:   stop,
	}
}
