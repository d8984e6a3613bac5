package vlist

// ItemsRenderedFunc is notified when the set of materialized items changes.
type ItemsRenderedFunc func(r Range)

// ScrollFunc is notified when the scroll position changes. requested is
// true only for the update immediately following a programmatic scroll.
type ScrollFunc func(direction Direction, offset float64, requested bool)

type scrollNotification struct {
	direction Direction
	offset    float64
	requested bool
}

// notifier suppresses redundant external callbacks by remembering the last
// dispatched arguments per channel and re-invoking only on change.
type notifier struct {
	lastRange  Range
	haveRange  bool
	lastScroll scrollNotification
	haveScroll bool
}

func (n *notifier) notifyRange(cb ItemsRenderedFunc, r Range) {
	if cb == nil {
		return
	}
	if n.haveRange && n.lastRange == r {
		return
	}
	n.lastRange = r
	n.haveRange = true
	cb(r)
}

func (n *notifier) notifyScroll(cb ScrollFunc, s scrollNotification) {
	if cb == nil {
		return
	}
	if n.haveScroll && n.lastScroll == s {
		return
	}
	n.lastScroll = s
	n.haveScroll = true
	cb(s.direction, s.offset, s.requested)
}
