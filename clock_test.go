package vlist

import "time"

// testClock drives window time deterministically: Advance moves the clock
// and fires due timers in order, on the caller's goroutine.
type testClock struct {
	now    time.Time
	timers []*testTimer
}

type testTimer struct {
	when time.Time
	f    func()
	done bool
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &testTimer{when: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *testClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		var next *testTimer
		for _, t := range c.timers {
			if t.done || t.when.After(target) {
				continue
			}
			if next == nil || t.when.Before(next.when) {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.when
		next.done = true
		next.f()
	}
	c.now = target
}

func (c *testClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (t *testTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}
