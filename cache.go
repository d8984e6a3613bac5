package vlist

// Fill marks a placement dimension that spans the full cross-axis extent of
// the container; the rendering surface substitutes its actual size.
const Fill float64 = -1

// Placement is the visual rectangle assigned to an item index. Along the
// scroll axis it carries the item's leading-edge offset and extent; the
// cross-axis dimension is [Fill].
type Placement struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// placementCache memoizes placements by index. Entries are derived from the
// layout and never mutated; the whole map is the unit of invalidation.
// Returning the same *Placement for repeated lookups lets consumers that
// memoize on rectangle identity skip re-rendering unchanged items.
type placementCache struct {
	items map[int]*Placement
}

func (c *placementCache) of(layout Layout, cfg *Config, index int) *Placement {
	if p, ok := c.items[index]; ok {
		return p
	}

	offset := layout.ItemOffset(cfg, index)
	size := layout.ItemSize(cfg, index)

	p := &Placement{}
	if cfg.Axis == AxisHorizontal {
		p.Left = offset
		p.Width = size
		p.Height = Fill
	} else {
		p.Top = offset
		p.Height = size
		p.Width = Fill
	}

	if c.items == nil {
		c.items = make(map[int]*Placement)
	}
	c.items[index] = p
	return p
}

func (c *placementCache) clear() {
	c.items = nil
}
