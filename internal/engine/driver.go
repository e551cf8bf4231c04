package engine

import (
	"time"

	"github.com/vovakirdan/tripgames/internal/core"
)

// RefTick is the frame length that dt=1 corresponds to.
const RefTick = time.Second / 60

// MaxDelta caps dt so a stalled host does not teleport bodies.
const MaxDelta = 3.0

// Clock converts wall-clock frame times to dt in reference ticks.
type Clock struct {
	last    time.Time
	started bool
}

// Delta returns the time since the previous call in reference ticks,
// clamped to [0, MaxDelta]. The first call returns 1.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}
	dt := float64(now.Sub(c.last)) / float64(RefTick)
	c.last = now
	return core.ClampF(dt, 0, MaxDelta)
}

// Reset makes the next Delta call a first frame.
func (c *Clock) Reset() {
	c.started = false
}

// Handle identifies one armed run of the frame loop.
type Handle uint64

// Driver is the game clock: it owns the loop handle and runs
// update-then-render for each frame of the current handle.
type Driver struct {
	session *Session
	clock   Clock
	handle  Handle
	armed   bool
}

// NewDriver creates a driver for a session.
func NewDriver(s *Session) *Driver {
	return &Driver{session: s}
}

// Arm starts a new loop run and invalidates any earlier handle.
func (d *Driver) Arm() Handle {
	d.handle++
	d.armed = true
	d.clock.Reset()
	return d.handle
}

// Cancel stops the loop. Calling it again is a no-op.
func (d *Driver) Cancel() {
	d.armed = false
}

// Active reports whether a loop is armed.
func (d *Driver) Active() bool {
	return d.armed
}

// Current returns the latest handle.
func (d *Driver) Current() Handle {
	return d.handle
}

// Frame runs one frame for handle h. It returns false, without stepping,
// for a stale handle or a cancelled loop. After stepping it renders into
// dst (skipped when dst is nil) and cancels the loop once the session has
// left the active states. The return value says whether another frame
// should be scheduled.
func (d *Driver) Frame(h Handle, now time.Time, in core.InputFrame, dst *core.Screen) bool {
	if !d.armed || h != d.handle {
		return false
	}
	d.session.Step(in, d.clock.Delta(now))
	if dst != nil {
		d.session.Render(dst)
	}
	if !d.session.State().Active() {
		d.Cancel()
		return false
	}
	return true
}
