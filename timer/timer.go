// Package timer operates the pomodoro session: it decides, given button
// presses and timer expirations, which phase the session is in and how much
// time remains, and drives the display and haptic collaborators accordingly
package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomade/internal/logger"
	"github.com/ayoisaiah/pomade/internal/session"
)

const defaultTickInterval = time.Second

// TimerService schedules single-shot delayed callbacks. Cancellation is
// advisory: a callback that is already in flight may still be delivered
// after Cancel returns.
type TimerService interface {
	Schedule(delay time.Duration, cookie session.Cookie) session.Handle
	Cancel(h session.Handle)
}

// Haptics is the fire-and-forget vibration and backlight service.
type Haptics interface {
	PulseLong()
	Illuminate()
}

// Display renders a snapshot of the session.
type Display interface {
	Render(snap session.Snapshot)
}

// Durations maps each interval kind to its configured length.
type Durations map[session.Kind]time.Duration

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transitions and discarded callbacks.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithClock overrides the wall clock used to stamp interval start times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithTickInterval overrides the delay between countdown ticks.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithLongBreakInterval sets how many work intervals precede a long break.
// Zero disables long breaks.
func WithLongBreakInterval(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.longBreakInterval = n
		}
	}
}

// WithCompletionHook registers a function that is called each time an
// interval runs out.
func WithCompletionHook(fn func(session.Snapshot)) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// Controller owns the pomodoro state machine. It is driven by a single
// host event loop and is not safe for concurrent use.
type Controller struct {
	timers            TimerService
	haptics           Haptics
	display           Display
	log               *slog.Logger
	now               func() time.Time
	onComplete        func(session.Snapshot)
	durations         Durations
	sess              session.Session
	tick              time.Duration
	longBreakInterval int
	lastCookie        session.Cookie
	closed            bool
}

// New creates a controller in the Idle phase and renders the idle prompt.
func New(
	timers TimerService,
	haptics Haptics,
	display Display,
	durations Durations,
	opts ...Option,
) *Controller {
	c := &Controller{
		timers:            timers,
		haptics:           haptics,
		display:           display,
		durations:         durations,
		log:               logger.Discard(),
		now:               time.Now,
		tick:              defaultTickInterval,
		longBreakInterval: 4,
		sess: session.Session{
			Phase: session.Idle,
			Kind:  session.Work,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.render()

	return c
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() session.Snapshot {
	return c.sess.Snapshot(c.longBreakInterval)
}

// Close cancels any pending timer. Events received afterwards are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}

	c.disarm()
	c.closed = true

	c.log.Info("session controller closed")
}

// seconds returns the configured length of an interval in whole seconds.
func (c *Controller) seconds(kind session.Kind) int {
	return int(c.durations[kind] / time.Second)
}

// newCookie returns a token that no earlier timer has carried.
func (c *Controller) newCookie() session.Cookie {
	c.lastCookie++

	return c.lastCookie
}

// arm schedules the next countdown tick. Any outstanding timer is cancelled
// first so that at most one is ever armed.
func (c *Controller) arm() {
	c.disarm()

	c.sess.Cookie = c.newCookie()
	c.sess.Pending = c.timers.Schedule(c.tick, c.sess.Cookie)
	c.sess.Armed = true
}

// disarm cancels the outstanding timer, if any, and retires the current
// cookie so that a callback already queued for it is recognised as stale.
func (c *Controller) disarm() {
	if c.sess.Armed {
		c.timers.Cancel(c.sess.Pending)
	}

	c.sess.Armed = false
	c.sess.Pending = 0
	c.sess.Cookie = c.newCookie()
}

func (c *Controller) render() {
	c.display.Render(c.Snapshot())
}

// nextKind returns the interval that follows the given one.
func (c *Controller) nextKind(current session.Kind) session.Kind {
	if current.IsBreak() {
		return session.Work
	}

	if c.longBreakInterval > 0 && c.sess.WorkCycle >= c.longBreakInterval {
		return session.LongBreak
	}

	return session.ShortBreak
}

// advanceCycle increments or resets the work cycle before a new work
// interval begins.
func (c *Controller) advanceCycle() {
	if c.longBreakInterval > 0 && c.sess.WorkCycle >= c.longBreakInterval {
		c.sess.WorkCycle = 1
		return
	}

	c.sess.WorkCycle++
}

// begin starts counting down an interval of the given kind from its full
// configured length.
func (c *Controller) begin(kind session.Kind) {
	c.sess.Kind = kind
	c.sess.Phase = kind.Phase()
	c.sess.Duration = c.seconds(kind)
	c.sess.Remaining = c.sess.Duration
	c.sess.StartTime = c.now()

	c.log.Info(
		"interval started",
		slog.String("kind", string(kind)),
		slog.Int("seconds", c.sess.Duration),
		slog.Int("work_cycle", c.sess.WorkCycle),
	)

	if c.sess.Remaining <= 0 {
		c.alert()
		return
	}

	c.arm()
	c.render()
}

// alert ends the current interval and waits for acknowledgement.
func (c *Controller) alert() {
	c.disarm()

	c.sess.Remaining = 0
	c.sess.Phase = session.Alerting

	c.log.Info("interval finished", slog.String("kind", string(c.sess.Kind)))

	c.haptics.PulseLong()
	c.render()

	if c.onComplete != nil {
		c.onComplete(c.Snapshot())
	}
}

// idle returns the session to its initial state.
func (c *Controller) idle() {
	c.disarm()

	c.sess.Phase = session.Idle
	c.sess.Kind = session.Work
	c.sess.Remaining = 0
	c.sess.Duration = 0
	c.sess.WorkCycle = 0
	c.sess.StartTime = time.Time{}

	c.render()
}
