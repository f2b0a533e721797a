package timer

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomade/internal/session"
)

// Start begins a work interval. It has no effect unless the session is idle.
func (c *Controller) Start() {
	if c.closed || c.sess.Phase != session.Idle {
		return
	}

	c.sess.WorkCycle = 0
	c.advanceCycle()

	c.haptics.Illuminate()
	c.begin(session.Work)
}

// OnTimerTick handles the expiry of a scheduled tick. Callbacks that do not
// carry the current cookie belong to a timer that has since been cancelled
// and are discarded.
func (c *Controller) OnTimerTick(h session.Handle, cookie session.Cookie) {
	if c.closed || !c.sess.Armed || cookie != c.sess.Cookie {
		if c.log.Enabled(context.Background(), slog.LevelDebug) {
			c.log.Debug(
				"discarding stale timer callback",
				slog.Any("handle", h),
				slog.Any("cookie", cookie),
				slog.String("session", spew.Sdump(c.sess)),
			)
		}

		return
	}

	c.sess.Armed = false
	c.sess.Pending = 0

	if !c.sess.Phase.CountingDown() {
		return
	}

	c.sess.Remaining--

	if c.sess.Remaining <= 0 {
		c.alert()
		return
	}

	c.arm()
	c.render()
}

// OnPrimaryButton handles the select button. It starts a work interval when
// idle and the complementary interval when an alert is pending. While
// counting down it only turns on the light.
func (c *Controller) OnPrimaryButton() {
	if c.closed {
		return
	}

	switch c.sess.Phase {
	case session.Idle:
		c.Start()
	case session.Alerting:
		next := c.nextKind(c.sess.Kind)
		if next == session.Work {
			c.advanceCycle()
		}

		c.begin(next)
	case session.Working, session.OnBreak:
		c.haptics.Illuminate()
	}
}

// OnRestartButton restarts the current interval from its full length.
func (c *Controller) OnRestartButton() {
	if c.closed || c.sess.Phase == session.Idle {
		return
	}

	c.log.Info("interval restarted", slog.String("kind", string(c.sess.Kind)))

	c.disarm()
	c.begin(c.sess.Kind)
}

// OnAbortButton abandons the session and returns to idle.
func (c *Controller) OnAbortButton() {
	if c.closed || c.sess.Phase == session.Idle {
		return
	}

	c.log.Info(
		"session aborted",
		slog.String("phase", c.sess.Phase.String()),
		slog.Int("remaining", c.sess.Remaining),
	)

	c.idle()
	c.haptics.PulseLong()
}

// HandleButton dispatches a button press from the input source.
func (c *Controller) HandleButton(b session.Button) {
	switch b {
	case session.ButtonPrimary:
		c.OnPrimaryButton()
	case session.ButtonUp:
		c.OnRestartButton()
	case session.ButtonDown:
		c.OnAbortButton()
	}
}
