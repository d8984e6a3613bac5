package vlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cyclingSizes yields sizes 10, 20, 30, 10, 20, 30, ... and counts how
// often each index is measured.
func cyclingSizes() (func(index int) float64, map[int]int) {
	calls := make(map[int]int)
	return func(index int) float64 {
		calls[index]++
		return float64(10 + index%3*10)
	}, calls
}

func TestVariableLayoutGeometry(t *testing.T) {
	t.Parallel()

	size, calls := cyclingSizes()
	v := NewVariableLayout(size)
	cfg := &Config{ItemCount: 10, Viewport: 50}

	// Items 0..3 occupy [0,10) [10,30) [30,60) [60,70).
	assert.Equal(t, 0.0, v.ItemOffset(cfg, 0))
	assert.Equal(t, 30.0, v.ItemOffset(cfg, 2))
	assert.Equal(t, 60.0, v.ItemOffset(cfg, 3))
	assert.Equal(t, 30.0, v.ItemSize(cfg, 2))

	assert.Equal(t, 1, calls[2], "sizes are measured once and memoized")
	v.ItemOffset(cfg, 2)
	assert.Equal(t, 1, calls[2])
}

func TestVariableLayoutEstimatedTotalExtent(t *testing.T) {
	t.Parallel()

	t.Run("estimates the unmeasured tail", func(t *testing.T) {
		t.Parallel()
		size, _ := cyclingSizes()
		v := NewVariableLayout(size)
		cfg := &Config{ItemCount: 10, Viewport: 50}

		assert.Equal(t, 500.0, v.EstimatedTotalExtent(cfg), "nothing measured yet")

		// Measuring items 0..2 (extent 60) leaves seven items estimated.
		v.ItemOffset(cfg, 2)
		assert.Equal(t, 60.0+7*DefaultEstimatedItemSize, v.EstimatedTotalExtent(cfg))
	})

	t.Run("refines to the exact extent once fully measured", func(t *testing.T) {
		t.Parallel()
		size, _ := cyclingSizes()
		v := NewVariableLayout(size)
		cfg := &Config{ItemCount: 10, Viewport: 50}

		v.ItemOffset(cfg, 9)
		// 10+20+30 per triple, three triples, then one final 10.
		assert.Equal(t, 190.0, v.EstimatedTotalExtent(cfg))
	})

	t.Run("honors a custom estimate", func(t *testing.T) {
		t.Parallel()
		size, _ := cyclingSizes()
		v := NewVariableLayout(size).SetEstimatedItemSize(5)
		cfg := &Config{ItemCount: 10, Viewport: 50}
		assert.Equal(t, 50.0, v.EstimatedTotalExtent(cfg))
	})

	t.Run("survives the item count shrinking", func(t *testing.T) {
		t.Parallel()
		size, _ := cyclingSizes()
		v := NewVariableLayout(size)
		cfg := &Config{ItemCount: 10, Viewport: 50}
		v.ItemOffset(cfg, 9)

		cfg.ItemCount = 4
		assert.Equal(t, 70.0, v.EstimatedTotalExtent(cfg))
	})
}

func TestVariableLayoutStartStop(t *testing.T) {
	t.Parallel()

	size, _ := cyclingSizes()
	v := NewVariableLayout(size)
	cfg := &Config{ItemCount: 100, Viewport: 50}

	t.Run("start index within measured items", func(t *testing.T) {
		v.ItemOffset(cfg, 5) // measure [0,110)
		assert.Equal(t, 0, v.StartIndexForOffset(cfg, 0))
		assert.Equal(t, 1, v.StartIndexForOffset(cfg, 10))
		assert.Equal(t, 2, v.StartIndexForOffset(cfg, 45))
	})

	t.Run("start index beyond measured items", func(t *testing.T) {
		// Each triple of items spans 60 units, so offset 600 opens
		// exactly at item 30; the search has to measure its way there.
		assert.Equal(t, 30, v.StartIndexForOffset(cfg, 600))
	})

	t.Run("stop index fills the viewport", func(t *testing.T) {
		// From item 0 at offset 0 the viewport [0,50) needs items
		// 0 [0,10), 1 [10,30), 2 [30,60).
		assert.Equal(t, 2, v.StopIndexForStartIndex(cfg, 0, 0))
		// From item 1 at offset 10 the viewport [10,60) ends in item 2.
		assert.Equal(t, 2, v.StopIndexForStartIndex(cfg, 1, 10))
		// [45,95) runs into item 4 [70,90) and item 5 [90,120).
		assert.Equal(t, 5, v.StopIndexForStartIndex(cfg, 2, 45))
	})
}

func TestVariableLayoutResetAfter(t *testing.T) {
	t.Parallel()

	current := map[int]float64{}
	v := NewVariableLayout(func(index int) float64 {
		if s, ok := current[index]; ok {
			return s
		}
		return 10
	})
	cfg := &Config{ItemCount: 10, Viewport: 50}

	require.Equal(t, 40.0, v.ItemOffset(cfg, 4))

	// The size callback now answers differently for item 2 on; stale
	// geometry survives until the layout is told.
	current[2] = 30
	assert.Equal(t, 40.0, v.ItemOffset(cfg, 4))

	v.ResetAfter(2)
	assert.Equal(t, 10.0, v.ItemOffset(cfg, 1), "earlier items keep their measurements")
	assert.Equal(t, 30.0, v.ItemSize(cfg, 2))
	assert.Equal(t, 60.0, v.ItemOffset(cfg, 4))

	v.Reset()
	current[0] = 5
	assert.Equal(t, 5.0, v.ItemSize(cfg, 0))
}

func TestVariableLayoutAlignment(t *testing.T) {
	t.Parallel()

	size, _ := cyclingSizes()
	v := NewVariableLayout(size)
	cfg := &Config{ItemCount: 10, Viewport: 50}
	v.ItemOffset(cfg, 9) // fully measured: extent 190

	// Item 5 spans [90, 120).
	assert.Equal(t, 90.0, v.OffsetForIndexAndAlignment(cfg, 5, AlignStart, 0))
	assert.Equal(t, 70.0, v.OffsetForIndexAndAlignment(cfg, 5, AlignEnd, 0))
	assert.Equal(t, 80.0, v.OffsetForIndexAndAlignment(cfg, 5, AlignCenter, 0))
	assert.Equal(t, 80.0, v.OffsetForIndexAndAlignment(cfg, 5, AlignAuto, 80),
		"already visible at offset 80")
}
