package vlist

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ListBuilder returns the display text for the item at index. Newlines
// split the text across the rows of a multi-row item; surplus lines are
// clipped to the item's extent.
type ListBuilder func(index int) string

// List is a tcell rendering surface over a [Window]: a vertical list that
// materializes only the items the window asks for, one terminal row per
// layout unit. It feeds wheel input back into the window as raw scroll
// measurements and renders a proportional sub-cell scroll bar from the
// window's estimated total extent.
type List struct {
	x, y, width, height int

	win     *Window
	builder ListBuilder

	// placeholder, when set, is rendered instead of builder output while
	// a scroll is in progress, deferring expensive item rendering.
	placeholder ListBuilder

	cursor  int
	changed func(index int)

	// rendered caches built item lines by item key so unchanged items are
	// not rebuilt on every draw.
	rendered map[string][]string

	style       tcell.Style
	cursorStyle tcell.Style
	trackStyle  tcell.Style
	thumbStyle  tcell.Style

	showBar    bool
	scrollStep int

	clock Clock
}

// NewList returns a new list over the given layout.
func NewList(layout Layout) *List {
	return &List{
		win:         NewWindow(layout).SetAxis(AxisVertical),
		cursor:      -1,
		style:       tcell.StyleDefault,
		cursorStyle: tcell.StyleDefault.Reverse(true),
		trackStyle:  tcell.StyleDefault.Dim(true),
		thumbStyle:  tcell.StyleDefault,
		showBar:     true,
		scrollStep:  3,
		clock:       SystemClock(),
	}
}

// Window returns the list's windowing engine, for callback registration
// and engine-level configuration.
func (l *List) Window() *Window {
	return l.win
}

// SetBuilder sets the function producing item content on demand and drops
// any cached item lines.
func (l *List) SetBuilder(builder ListBuilder) *List {
	l.builder = builder
	l.rendered = nil
	return l
}

// SetPlaceholderBuilder sets the cheap stand-in rendered while scrolling.
// Enables scroll-state reporting on the underlying window.
func (l *List) SetPlaceholderBuilder(builder ListBuilder) *List {
	l.placeholder = builder
	l.win.SetReportScrollState(builder != nil)
	return l
}

// SetItemCount sets the total number of items.
func (l *List) SetItemCount(count int) *List {
	l.win.SetItemCount(count)
	if l.cursor >= count {
		l.cursor = count - 1
	}
	return l
}

// SetMainTextStyle sets the style for item text.
func (l *List) SetMainTextStyle(style tcell.Style) *List {
	l.style = style
	return l
}

// SetCursorStyle sets the style for the item under the cursor.
func (l *List) SetCursorStyle(style tcell.Style) *List {
	l.cursorStyle = style
	return l
}

// SetScrollBarVisible toggles the scroll bar column.
func (l *List) SetScrollBarVisible(visible bool) *List {
	l.showBar = visible
	return l
}

// SetScrollStep sets the number of rows one wheel notch scrolls.
func (l *List) SetScrollStep(step int) *List {
	if step < 1 {
		step = 1
	}
	l.scrollStep = step
	return l
}

// SetClock replaces the clock used to timestamp raw scroll input and run
// the window's debounce timer. Must be called before any scroll activity.
func (l *List) SetClock(clock Clock) *List {
	if clock != nil {
		l.clock = clock
		l.win.SetClock(clock)
	}
	return l
}

// SetChangedFunc sets a handler that is called when the cursor changes.
func (l *List) SetChangedFunc(handler func(index int)) *List {
	l.changed = handler
	return l
}

// Refresh drops all cached item lines so the next draw rebuilds them.
func (l *List) Refresh() *List {
	l.rendered = nil
	return l
}

// SetRect sets the position and size of the list.
func (l *List) SetRect(x, y, width, height int) {
	l.x, l.y, l.width, l.height = x, y, width, height
}

// GetRect returns the current position of the list.
func (l *List) GetRect() (int, int, int, int) {
	return l.x, l.y, l.width, l.height
}

// SetCursor sets the currently selected item index, clamped to the
// collection, and scrolls just enough to make it visible.
func (l *List) SetCursor(index int) *List {
	count := l.win.ItemCount()
	if count == 0 {
		return l
	}
	index = min(max(index, 0), count-1)
	if l.cursor != index {
		l.cursor = index
		l.win.ScrollToItem(index, AlignAuto)
		if l.changed != nil {
			l.changed(l.cursor)
		}
	}
	return l
}

// Cursor returns the current cursor index.
func (l *List) Cursor() int {
	return l.cursor
}

// NextItem moves the cursor to the next item, if any.
func (l *List) NextItem() bool {
	if l.cursor+1 >= l.win.ItemCount() {
		return false
	}
	l.SetCursor(l.cursor + 1)
	return true
}

// PrevItem moves the cursor to the previous item, if any.
func (l *List) PrevItem() bool {
	if l.cursor <= 0 {
		return false
	}
	l.SetCursor(l.cursor - 1)
	return true
}

// Draw draws the list onto the screen.
func (l *List) Draw(screen tcell.Screen) {
	if checkEnabled && l.builder == nil {
		panic(&ConfigError{msg: "list has no builder"})
	}
	if l.width <= 0 || l.height <= 0 {
		return
	}

	textWidth := l.width
	if l.showBar {
		textWidth--
	}
	if textWidth <= 0 {
		return
	}

	l.win.SetViewportExtent(float64(l.height))

	r := l.win.RenderRange()
	offset := l.win.WorkingOffset()
	scrolling := l.win.IsScrolling()

	for row := 0; row < l.height; row++ {
		l.clearRow(screen, l.y+row, textWidth)
	}

	for i := r.OverscanStart; i <= r.OverscanStop; i++ {
		p := l.win.PlacementOf(i)
		top := int(math.Round(p.Top - offset))
		size := int(math.Round(p.Height))
		if top+size <= 0 || top >= l.height {
			continue
		}

		style := l.style
		if i == l.cursor {
			style = l.cursorStyle
		}

		lines := l.itemLines(i, scrolling)
		for row := 0; row < size; row++ {
			y := l.y + top + row
			if y < l.y || y >= l.y+l.height {
				continue
			}
			text := ""
			if row < len(lines) {
				text = lines[row]
			}
			l.putLine(screen, l.x, y, textWidth, text, style)
		}
	}

	if l.showBar {
		l.drawScrollBar(screen)
	}
}

// HandleKey processes a key event and reports whether it was consumed.
func (l *List) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyDown:
		l.NextItem()
	case tcell.KeyUp:
		l.PrevItem()
	case tcell.KeyPgDn:
		l.win.ScrollTo(l.win.ScrollOffset() + float64(l.height))
	case tcell.KeyPgUp:
		l.win.ScrollTo(l.win.ScrollOffset() - float64(l.height))
	case tcell.KeyHome:
		l.SetCursor(0)
		l.win.ScrollToItem(0, AlignStart)
	case tcell.KeyEnd:
		l.SetCursor(l.win.ItemCount() - 1)
		l.win.ScrollToItem(l.win.ItemCount()-1, AlignEnd)
	default:
		return false
	}
	return true
}

// HandleMouse processes a mouse event and reports whether it was consumed.
// Wheel input is fed to the window as a raw scroll measurement; a click
// moves the cursor to the item under the pointer.
func (l *List) HandleMouse(event *tcell.EventMouse) bool {
	x, y := event.Position()
	if x < l.x || x >= l.x+l.width || y < l.y || y >= l.y+l.height {
		return false
	}

	switch {
	case event.Buttons()&tcell.WheelUp != 0:
		l.scrollBy(-l.scrollStep)
		return true
	case event.Buttons()&tcell.WheelDown != 0:
		l.scrollBy(l.scrollStep)
		return true
	case event.Buttons()&tcell.Button1 != 0:
		if index := l.indexAtRow(y - l.y); index >= 0 {
			l.SetCursor(index)
		}
		return true
	}
	return false
}

func (l *List) scrollBy(rows int) {
	maxOffset := max(l.win.EstimatedTotalExtent()-float64(l.height), 0)
	target := min(max(l.win.ScrollOffset()+float64(rows), 0), maxOffset)
	l.win.HandleScroll(target, l.clock.Now())
}

// indexAtRow returns the index of the materialized item covering the given
// viewport row, or -1.
func (l *List) indexAtRow(row int) int {
	r := l.win.RenderRange()
	offset := l.win.WorkingOffset()
	for i := r.OverscanStart; i <= r.OverscanStop; i++ {
		p := l.win.PlacementOf(i)
		top := int(math.Round(p.Top - offset))
		size := int(math.Round(p.Height))
		if row >= top && row < top+size {
			return i
		}
	}
	return -1
}

func (l *List) itemLines(index int, scrolling bool) []string {
	if scrolling && l.placeholder != nil {
		return strings.Split(l.placeholder(index), "\n")
	}
	key := l.win.ItemKey(index)
	if lines, ok := l.rendered[key]; ok {
		return lines
	}
	lines := strings.Split(l.builder(index), "\n")
	if l.rendered == nil {
		l.rendered = make(map[string][]string)
	}
	l.rendered[key] = lines
	return lines
}

func (l *List) clearRow(screen tcell.Screen, y, width int) {
	for x := l.x; x < l.x+width; x++ {
		screen.SetContent(x, y, ' ', nil, l.style)
	}
}

// putLine draws text grapheme by grapheme, clipped to maxWidth cells.
func (l *List) putLine(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	right := x + maxWidth
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Runes()
		width := max(uniseg.StringWidth(gr.Str()), 1)
		if x+width > right {
			return
		}
		screen.SetContent(x, y, cluster[0], cluster[1:], style)
		x += width
	}
}

func (l *List) drawScrollBar(screen tcell.Screen) {
	x := l.x + l.width - 1
	content := int(math.Round(l.win.EstimatedTotalExtent()))
	if content <= l.height {
		// Nothing to scroll; blank the column instead of leaving stale cells.
		for row := 0; row < l.height; row++ {
			screen.SetContent(x, l.y+row, ' ', nil, l.trackStyle)
		}
		return
	}
	offset := int(math.Round(l.win.WorkingOffset()))
	m := computeScrollBarMetrics(l.height, content, l.height, offset)

	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := scrollBarCellFill(m, cell)
		glyph, thumb := scrollBarGlyph(start, fillLen)
		style := l.trackStyle
		if thumb {
			style = l.thumbStyle
		}
		screen.SetContent(x, l.y+cell, glyph, nil, style)
	}
}
