// Command vlistdemo scrolls a generated collection in the terminal. It
// exists to exercise the windowing engine against a real rendering surface:
// arrow keys and the mouse wheel scroll, Home/End jump, q or Escape quits.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ayn2op/vlist"
	"github.com/gdamore/tcell/v2"
	flag "github.com/spf13/pflag"
)

var (
	count       = flag.Int("count", 100000, "number of items")
	overscan    = flag.Int("overscan", 2, "items rendered beyond the visible range")
	variable    = flag.Bool("variable", false, "variable item heights (1-3 rows)")
	drift       = flag.Bool("drift", false, "drift-compensated scroll offsets")
	placeholder = flag.Bool("placeholder", false, "render placeholders while scrolling")
)

// screenClock runs the window's debounce callback through the tcell event
// queue, so every state transition happens on the goroutine that owns the
// window.
type screenClock struct {
	screen tcell.Screen
}

func (c screenClock) Now() time.Time {
	return time.Now()
}

func (c screenClock) AfterFunc(d time.Duration, f func()) vlist.Timer {
	return time.AfterFunc(d, func() {
		_ = c.screen.PostEvent(tcell.NewEventInterrupt(f))
	})
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	var layout vlist.Layout
	if *variable {
		layout = vlist.NewVariableLayout(func(index int) float64 {
			return float64(1 + index%3)
		}).SetEstimatedItemSize(2)
	} else {
		layout = vlist.NewUniformLayout(1)
	}

	list := vlist.NewList(layout).
		SetItemCount(*count).
		SetBuilder(buildItem).
		SetClock(screenClock{screen: screen})
	if *placeholder {
		list.SetPlaceholderBuilder(func(index int) string {
			return fmt.Sprintf("… %d", index)
		})
	}

	win := list.Window()
	win.SetOverscan(*overscan).SetAdjustedOffsets(*drift)
	defer win.Stop()

	for {
		width, height := screen.Size()
		list.SetRect(0, 0, width, height)
		list.Draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if f, ok := ev.Data().(func()); ok {
				f()
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return nil
			}
			list.HandleKey(ev)
		case *tcell.EventMouse:
			list.HandleMouse(ev)
		}
	}
}

func buildItem(index int) string {
	if !*variable {
		return fmt.Sprintf("item %d", index)
	}
	rows := 1 + index%3
	lines := make([]string, rows)
	lines[0] = fmt.Sprintf("item %d (%d rows)", index, rows)
	for i := 1; i < rows; i++ {
		lines[i] = "  │"
	}
	return strings.Join(lines, "\n")
}
