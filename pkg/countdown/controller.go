// Package countdown holds the redirect countdown state machine.
package countdown

import (
	"net/url"

	"tableflip.dev/detour/pkg/redirect"
)

// Status describes where a Controller is in its lifecycle.
type Status int

const (
	// Counting is the initial state; the countdown is still running.
	Counting Status = iota
	// Redirecting is terminal; the redirect has been committed.
	Redirecting
)

func (s Status) String() string {
	if s == Redirecting {
		return "redirecting"
	}
	return "counting"
}

// Controller owns the countdown. It keeps no timers of its own; the UI
// drives it with Tick and Commit and acts on the results, so tests can
// run it without waiting on a clock.
type Controller struct {
	cfg       redirect.Config
	query     url.Values
	remaining int
	status    Status
	committed bool
}

// New creates a controller counting down from cfg.DelaySeconds.
func New(query url.Values, cfg redirect.Config) *Controller {
	delay := cfg.DelaySeconds
	if delay < 0 {
		delay = 0
	}
	return &Controller{cfg: cfg, query: query, remaining: delay}
}

// Remaining reports the seconds left on the countdown.
func (c *Controller) Remaining() int { return c.remaining }

// Status reports the current lifecycle state.
func (c *Controller) Status() Status { return c.status }

// Tick advances the countdown by one second and reports whether it has
// expired. Ticks arriving after the redirect committed are no-ops.
func (c *Controller) Tick() bool {
	if c.status != Counting {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining == 0
}

// Commit latches the redirect. The first call resolves the target URL and
// moves the controller to Redirecting; every later call reports ok false,
// so the timer expiry and a manual trigger can race and exactly one wins.
func (c *Controller) Commit() (target string, ok bool) {
	if c.committed {
		return "", false
	}
	c.committed = true
	c.status = Redirecting
	return redirect.Resolve(c.query, c.cfg), true
}
