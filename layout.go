// Package vlist implements a windowing engine for large scrollable
// collections. Given a total item count, a viewport extent, and a layout
// strategy, a [Window] determines which items must be materialized at the
// current scroll position, where each one is placed, and when a transient
// scrolling state begins and ends so expensive rendering can be deferred.
// Only a small, bounded render window is ever materialized, regardless of
// how many items the collection holds.
//
// The engine is surface-agnostic; [List] provides a ready-made tcell
// rendering surface on top of it.
package vlist

// Axis selects the scroll axis of a window.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Align controls where an item is positioned by [Window.ScrollToItem].
type Align int

const (
	// AlignAuto scrolls as little as possible to make the item fully
	// visible, and not at all if it already is.
	AlignAuto Align = iota
	// AlignStart aligns the item's leading edge with the viewport start.
	AlignStart
	// AlignCenter centers the item within the viewport.
	AlignCenter
	// AlignEnd aligns the item's trailing edge with the viewport end.
	AlignEnd
	// AlignSmart behaves like AlignAuto when the item is within one
	// viewport of the current position and like AlignCenter otherwise.
	AlignSmart
)

// Direction is the direction of travel of the most recent scroll.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// Config is the engine configuration snapshot passed to every layout call.
// It is owned by the window; layouts must treat it as read-only.
type Config struct {
	// ItemCount is the total number of items in the collection.
	ItemCount int
	// Axis is the scroll axis.
	Axis Axis
	// Overscan is the number of extra items rendered beyond the visible
	// range in the direction of travel.
	Overscan int
	// Viewport is the container extent along the scroll axis.
	Viewport float64
}

// Layout computes item geometry for a window. Implementations own whatever
// instance state they need (measured sizes, estimates); the window treats a
// layout as opaque and never switches it after construction.
//
// All indices handed to a layout are within [0, cfg.ItemCount); out-of-range
// indices are the caller's responsibility.
type Layout interface {
	// ItemOffset returns the leading-edge position of the item.
	ItemOffset(cfg *Config, index int) float64

	// ItemSize returns the extent of the item along the scroll axis.
	ItemSize(cfg *Config, index int) float64

	// EstimatedTotalExtent returns the best-known total scrollable extent.
	// It reflects all sizes measured so far and only ever refines as more
	// items are materialized.
	EstimatedTotalExtent(cfg *Config) float64

	// StartIndexForOffset returns the first index whose extent includes or
	// follows the given offset.
	StartIndexForOffset(cfg *Config, offset float64) int

	// StopIndexForStartIndex returns the last index visible in the
	// viewport when scrolled to offset with startIndex at the top.
	StopIndexForStartIndex(cfg *Config, startIndex int, offset float64) int

	// OffsetForIndexAndAlignment returns the scroll offset that brings the
	// item into view under the given alignment, starting from offset.
	OffsetForIndexAndAlignment(cfg *Config, index int, align Align, offset float64) float64
}

// ConfigError reports malformed window configuration. It is raised as a
// panic by configuration validation, which runs only in builds without the
// "vlistprod" tag; production builds skip validation entirely.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "vlist: " + e.msg
}

func validateConfig(cfg *Config) {
	if !checkEnabled {
		return
	}
	if cfg.Axis != AxisVertical && cfg.Axis != AxisHorizontal {
		panic(&ConfigError{msg: "invalid axis"})
	}
	if cfg.ItemCount < 0 {
		panic(&ConfigError{msg: "negative item count"})
	}
	if cfg.Overscan < 0 {
		panic(&ConfigError{msg: "negative overscan"})
	}
	if cfg.Viewport < 0 {
		panic(&ConfigError{msg: "missing viewport extent for the scroll axis"})
	}
}
