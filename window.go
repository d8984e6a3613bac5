package vlist

import (
	"strconv"
	"time"
)

const (
	// DebounceInterval is how long the scroll position must stay still
	// before the window declares scrolling finished.
	DebounceInterval = 150 * time.Millisecond

	// driftReference approximates one display refresh. Measured offsets
	// lag the rendering surface by up to this much during fast scrolling;
	// drift compensation interpolates across it. Treated as a tunable
	// constant rather than derived from the host's actual refresh rate.
	driftReference = 16 * time.Millisecond
)

// KeyFunc maps an item index to a stable identity, used by rendering
// surfaces to key their per-item caches.
type KeyFunc func(index int) string

// Window is the windowing engine: a scroll state machine over a [Layout].
// It owns the scroll offset, the direction of travel, the transient
// scrolling flag with its debounce timer, and the placement cache.
//
// A window is not safe for concurrent use. Its three entry points — raw
// scroll measurements, programmatic scrolls, and the debounce callback —
// must be serialized by the host's event loop; see [Clock].
type Window struct {
	layout Layout
	cfg    Config

	keyFunc       func(index int) string
	adjustOffsets bool
	reportScroll  bool

	clock Clock
	timer Timer

	scrollOffset float64
	direction    Direction
	isScrolling  bool
	// requested is true only for the update immediately following a
	// programmatic scroll.
	requested   bool
	offsetDelta float64
	captureTime time.Time

	placements placementCache
	notify     notifier

	itemsRendered ItemsRenderedFunc
	scrolled      ScrollFunc

	stopped bool
}

// NewWindow returns a window over the given layout with default
// configuration: vertical axis, overscan 2, identity item keys, drift
// compensation off, system clock.
func NewWindow(layout Layout) *Window {
	return &Window{
		layout: layout,
		cfg: Config{
			Axis:     AxisVertical,
			Overscan: 2,
		},
		keyFunc: strconv.Itoa,
		clock:   SystemClock(),
	}
}

// SetItemCount sets the total number of items.
func (w *Window) SetItemCount(count int) *Window {
	w.cfg.ItemCount = count
	return w
}

// SetAxis sets the scroll axis.
func (w *Window) SetAxis(axis Axis) *Window {
	w.cfg.Axis = axis
	return w
}

// SetOverscan sets the number of extra items materialized beyond the
// visible range in the direction of travel.
func (w *Window) SetOverscan(count int) *Window {
	w.cfg.Overscan = count
	return w
}

// SetViewportExtent sets the container extent along the scroll axis.
func (w *Window) SetViewportExtent(extent float64) *Window {
	w.cfg.Viewport = extent
	return w
}

// SetItemKeyFunc sets the function mapping an index to a stable identity.
func (w *Window) SetItemKeyFunc(f KeyFunc) *Window {
	if f == nil {
		f = strconv.Itoa
	}
	w.keyFunc = f
	return w
}

// SetAdjustedOffsets toggles drift compensation: when enabled, range
// computation extrapolates the measured scroll offset by the time elapsed
// since it was captured, hiding measurement-to-render lag during fast
// scrolling.
func (w *Window) SetAdjustedOffsets(enabled bool) *Window {
	w.adjustOffsets = enabled
	return w
}

// SetReportScrollState toggles whether [Window.IsScrolling] exposes the
// transient scrolling flag. When disabled the flag is tracked internally
// (the debounce still drives cache invalidation) but consumers always see
// false, so they never re-render on its account.
func (w *Window) SetReportScrollState(enabled bool) *Window {
	w.reportScroll = enabled
	return w
}

// SetInitialOffset sets the scroll offset the window starts out at. Only
// meaningful before the first scroll event.
func (w *Window) SetInitialOffset(offset float64) *Window {
	w.scrollOffset = max(offset, 0)
	return w
}

// SetClock replaces the window's clock. Must be called before any scroll
// activity.
func (w *Window) SetClock(clock Clock) *Window {
	if clock != nil {
		w.clock = clock
	}
	return w
}

// SetItemsRenderedFunc registers the callback notified when the
// materialized range changes. Redundant notifications are suppressed, and
// the callback never fires while the collection is empty.
func (w *Window) SetItemsRenderedFunc(f ItemsRenderedFunc) *Window {
	w.itemsRendered = f
	return w
}

// SetScrollFunc registers the callback notified when the scroll position
// changes. Redundant notifications are suppressed.
func (w *Window) SetScrollFunc(f ScrollFunc) *Window {
	w.scrolled = f
	return w
}

// ItemKey returns the stable identity of the item at index.
func (w *Window) ItemKey(index int) string {
	return w.keyFunc(index)
}

// ItemCount returns the configured total number of items.
func (w *Window) ItemCount() int {
	return w.cfg.ItemCount
}

// ScrollOffset returns the last committed scroll offset.
func (w *Window) ScrollOffset() float64 {
	return w.scrollOffset
}

// ScrollDirection returns the direction of the most recent scroll.
func (w *Window) ScrollDirection() Direction {
	return w.direction
}

// IsScrolling reports whether a scroll is in progress. Always false unless
// enabled with [Window.SetReportScrollState].
func (w *Window) IsScrolling() bool {
	return w.reportScroll && w.isScrolling
}

// HandleScroll feeds a raw scroll-position measurement into the state
// machine. An unchanged offset is a no-op, so a committed programmatic
// scroll echoing back from the surface does not disturb state. Any other
// offset marks the window as scrolling and (re)arms the debounce timer.
func (w *Window) HandleScroll(offset float64, now time.Time) {
	validateConfig(&w.cfg)
	if w.stopped || offset == w.scrollOffset {
		return
	}

	if offset > w.scrollOffset {
		w.direction = DirectionForward
	} else {
		w.direction = DirectionBackward
	}
	w.offsetDelta = offset - w.scrollOffset
	w.scrollOffset = offset
	w.requested = false
	w.isScrolling = true
	w.captureTime = now

	w.armDebounce()
	w.commit()
}

// ScrollTo scrolls to the given offset programmatically. Unlike a raw
// measurement it does not mark the window as scrolling, but it arms the
// debounce timer so any scrolling state decays on the same schedule.
func (w *Window) ScrollTo(offset float64) {
	validateConfig(&w.cfg)
	offset = max(offset, 0)
	if w.stopped || offset == w.scrollOffset {
		return
	}

	if offset > w.scrollOffset {
		w.direction = DirectionForward
	} else {
		w.direction = DirectionBackward
	}
	w.scrollOffset = offset
	w.offsetDelta = 0
	w.requested = true

	w.armDebounce()
	w.commit()
}

// ScrollToItem scrolls so the item at index is positioned according to
// align. The index is clamped to the collection.
func (w *Window) ScrollToItem(index int, align Align) {
	validateConfig(&w.cfg)
	if w.cfg.ItemCount == 0 {
		return
	}
	index = min(max(index, 0), w.cfg.ItemCount-1)
	w.ScrollTo(w.layout.OffsetForIndexAndAlignment(&w.cfg, index, align, w.scrollOffset))
}

// RenderRange returns the items to materialize for the current render
// pass: the visible range plus direction-biased overscan.
func (w *Window) RenderRange() Range {
	validateConfig(&w.cfg)
	return computeRange(w.layout, &w.cfg, w.workingOffset(w.clock.Now()), w.direction)
}

// PlacementOf returns the visual rectangle of the item at index. Repeated
// calls return the same *Placement until the cache is invalidated, which
// happens only when scrolling ends.
func (w *Window) PlacementOf(index int) *Placement {
	return w.placements.of(w.layout, &w.cfg, index)
}

// EstimatedTotalExtent returns the layout's best-known total scrollable
// extent. Query it after materializing the current range so this pass's
// measurements are reflected.
func (w *Window) EstimatedTotalExtent() float64 {
	return w.layout.EstimatedTotalExtent(&w.cfg)
}

// WorkingOffset returns the offset the current render pass should position
// items against: the raw offset, or its drift-compensated adjustment when
// enabled.
func (w *Window) WorkingOffset() float64 {
	return w.workingOffset(w.clock.Now())
}

// Stop releases the window's pending debounce timer, if any. After Stop
// the window ignores further scroll events; a timer callback already in
// flight becomes a no-op.
func (w *Window) Stop() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.stopped = true
}

func (w *Window) workingOffset(now time.Time) float64 {
	if !w.adjustOffsets || w.offsetDelta == 0 {
		return w.scrollOffset
	}
	frac := float64(now.Sub(w.captureTime)) / float64(driftReference)
	frac = min(max(frac, 0), 1)
	return w.scrollOffset + w.offsetDelta*frac
}

// armDebounce cancels any pending timer and schedules a new expiry, so at
// most one timer is ever outstanding.
func (w *Window) armDebounce() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = w.clock.AfterFunc(DebounceInterval, w.debounceExpired)
}

func (w *Window) debounceExpired() {
	w.timer = nil
	if w.stopped {
		return
	}
	w.isScrolling = false
	w.offsetDelta = 0
	w.commit()
	// Cleared only after the idle transition is committed, so consumers
	// that never read the scrolling flag see no change from the clear.
	w.placements.clear()
}

// commit publishes the current state to the registered callbacks.
func (w *Window) commit() {
	if w.cfg.ItemCount > 0 {
		w.notify.notifyRange(w.itemsRendered, w.RenderRange())
	}
	w.notify.notifyScroll(w.scrolled, scrollNotification{
		direction: w.direction,
		offset:    w.scrollOffset,
		requested: w.requested,
	})
}
