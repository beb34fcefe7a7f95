// internal/tween/frameclock.go

package tween

import (
	"sync/atomic"
	"time"
)

// FrameClock emits measured frame deltas and counts frames atomically.
// Each value on Ch is the elapsed seconds since the previous frame,
// suitable for passing straight to Scheduler.Tick.
type FrameClock struct {
	Ch    chan float64
	count atomic.Int64
	stop  chan struct{}
}

// NewFrameClock creates a clock but does not start it.
func NewFrameClock(buffer int) *FrameClock {
	return &FrameClock{
		Ch:   make(chan float64, buffer),
		stop: make(chan struct{}),
	}
}

// Start begins emitting frame deltas at the given interval.
func (c *FrameClock) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case now := <-ticker.C:
				c.count.Add(1)
				select {
				case c.Ch <- now.Sub(last).Seconds():
				case <-c.stop:
					close(c.Ch)
					return
				}
				last = now
			case <-c.stop:
				close(c.Ch)
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting frames.
func (c *FrameClock) Stop() {
	close(c.stop)
}

// Count returns the current frame count atomically.
func (c *FrameClock) Count() int64 {
	return c.count.Load()
}
