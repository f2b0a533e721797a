package timer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomade/internal/session"
)

type scheduled struct {
	handle session.Handle
	delay  time.Duration
	cookie session.Cookie
}

type fakeTimers struct {
	active    map[session.Handle]scheduled
	scheduled []scheduled
	cancelled []session.Handle
	next      session.Handle
}

func (f *fakeTimers) Schedule(
	delay time.Duration,
	cookie session.Cookie,
) session.Handle {
	f.next++

	s := scheduled{handle: f.next, delay: delay, cookie: cookie}

	f.scheduled = append(f.scheduled, s)
	f.active[s.handle] = s

	return s.handle
}

func (f *fakeTimers) Cancel(h session.Handle) {
	f.cancelled = append(f.cancelled, h)
	delete(f.active, h)
}

func (f *fakeTimers) last(t *testing.T) scheduled {
	t.Helper()

	require.NotEmpty(t, f.scheduled, "no timer was ever scheduled")

	return f.scheduled[len(f.scheduled)-1]
}

// fire delivers the most recently scheduled callback as the host would.
func (f *fakeTimers) fire(t *testing.T, c *Controller) {
	t.Helper()

	s := f.last(t)
	delete(f.active, s.handle)

	c.OnTimerTick(s.handle, s.cookie)
}

type fakeHaptics struct {
	pulses int
	lights int
}

func (f *fakeHaptics) PulseLong() {
	f.pulses++
}

func (f *fakeHaptics) Illuminate() {
	f.lights++
}

type fakeDisplay struct {
	frames []session.Snapshot
}

func (f *fakeDisplay) Render(snap session.Snapshot) {
	f.frames = append(f.frames, snap)
}

func (f *fakeDisplay) last() session.Snapshot {
	return f.frames[len(f.frames)-1]
}

type fixture struct {
	ctrl    *Controller
	timers  *fakeTimers
	haptics *fakeHaptics
	display *fakeDisplay
}

var defaultDurations = Durations{
	session.Work:       25 * time.Minute,
	session.ShortBreak: 5 * time.Minute,
	session.LongBreak:  15 * time.Minute,
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newFixture(durations Durations, opts ...Option) *fixture {
	f := &fixture{
		timers:  &fakeTimers{active: make(map[session.Handle]scheduled)},
		haptics: &fakeHaptics{},
		display: &fakeDisplay{},
	}

	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)

	f.ctrl = New(f.timers, f.haptics, f.display, durations, opts...)

	return f
}

// finish runs the current interval down to zero.
func (f *fixture) finish(t *testing.T) {
	t.Helper()

	for f.ctrl.Snapshot().Phase.CountingDown() {
		f.timers.fire(t, f.ctrl)
	}
}

func TestNewRendersIdle(t *testing.T) {
	f := newFixture(defaultDurations)

	require.Len(t, f.display.frames, 1)
	assert.Equal(t, session.Idle, f.display.last().Phase)
	assert.Empty(t, f.timers.scheduled)
}

func TestStartFromIdle(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	want := session.Snapshot{
		StartTime:         fixedNow,
		Phase:             session.Working,
		Kind:              session.Work,
		Remaining:         1500,
		Duration:          1500,
		WorkCycle:         1,
		LongBreakInterval: 4,
	}

	if diff := cmp.Diff(want, f.ctrl.Snapshot()); diff != "" {
		t.Fatalf("unexpected snapshot after start (-want +got):\n%s", diff)
	}

	assert.Len(t, f.timers.active, 1)
	assert.Equal(t, time.Second, f.timers.last(t).delay)
	assert.Equal(t, 1, f.haptics.lights)
	assert.Equal(t, want, f.display.last())
}

func TestStartOnlyFromIdle(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()
	f.timers.fire(t, f.ctrl)

	f.ctrl.Start()

	assert.Equal(t, 1499, f.ctrl.Snapshot().Remaining)
	assert.Len(t, f.timers.scheduled, 2)
	assert.Len(t, f.timers.active, 1)
}

func TestWorkIntervalRunsToAlertThenBreak(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()
	require.Equal(t, session.Working, f.ctrl.Snapshot().Phase)
	require.Equal(t, 1500, f.ctrl.Snapshot().Remaining)

	for i := 1; i <= 1500; i++ {
		f.timers.fire(t, f.ctrl)

		snap := f.ctrl.Snapshot()

		if i < 1500 {
			require.Equal(t, session.Working, snap.Phase, "tick %d", i)
			require.Equal(t, 1500-i, snap.Remaining, "tick %d", i)
			require.Len(t, f.timers.active, 1, "tick %d", i)
		}
	}

	snap := f.ctrl.Snapshot()
	assert.Equal(t, session.Alerting, snap.Phase)
	assert.Equal(t, 0, snap.Remaining)
	assert.Empty(t, f.timers.active)
	assert.Equal(t, 1, f.haptics.pulses)

	f.ctrl.OnPrimaryButton()

	snap = f.ctrl.Snapshot()
	assert.Equal(t, session.OnBreak, snap.Phase)
	assert.Equal(t, session.ShortBreak, snap.Kind)
	assert.Equal(t, 300, snap.Remaining)
	assert.Len(t, f.timers.active, 1)
}

func TestRemainingNeverNegative(t *testing.T) {
	f := newFixture(Durations{
		session.Work:       3 * time.Second,
		session.ShortBreak: time.Second,
	})

	f.ctrl.Start()
	f.finish(t)

	for _, frame := range f.display.frames {
		assert.GreaterOrEqual(t, frame.Remaining, 0)
	}

	// a tick that arrives once the alert is up is stale
	last := f.timers.last(t)
	f.ctrl.OnTimerTick(last.handle, last.cookie)

	assert.Equal(t, session.Alerting, f.ctrl.Snapshot().Phase)
	assert.Equal(t, 0, f.ctrl.Snapshot().Remaining)
}

func TestStaleCookieIsIgnored(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	first := f.timers.last(t)
	f.timers.fire(t, f.ctrl)

	before := f.ctrl.Snapshot()
	frames := len(f.display.frames)

	// duplicate delivery of the callback that was just honoured
	f.ctrl.OnTimerTick(first.handle, first.cookie)
	// a cookie no timer ever carried
	f.ctrl.OnTimerTick(first.handle, first.cookie+1000)

	assert.Equal(t, before, f.ctrl.Snapshot())
	assert.Len(t, f.display.frames, frames)
	assert.Equal(t, 1499, f.ctrl.Snapshot().Remaining)
}

func TestQueuedTickAfterAbortIsIgnored(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	queued := f.timers.last(t)

	f.ctrl.OnAbortButton()

	assert.Contains(t, f.timers.cancelled, queued.handle)

	f.ctrl.OnTimerTick(queued.handle, queued.cookie)

	snap := f.ctrl.Snapshot()
	assert.Equal(t, session.Idle, snap.Phase)
	assert.Empty(t, f.timers.active)
	assert.Len(t, f.timers.scheduled, 1)
}

func TestAbortFromEveryActivePhase(t *testing.T) {
	durations := Durations{
		session.Work:       2 * time.Second,
		session.ShortBreak: 2 * time.Second,
	}

	setups := map[string]func(t *testing.T, f *fixture){
		"working": func(t *testing.T, f *fixture) {
			f.ctrl.Start()
		},
		"on break": func(t *testing.T, f *fixture) {
			f.ctrl.Start()
			f.finish(t)
			f.ctrl.OnPrimaryButton()
		},
		"alerting": func(t *testing.T, f *fixture) {
			f.ctrl.Start()
			f.finish(t)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			f := newFixture(durations)

			setup(t, f)

			pulses := f.haptics.pulses

			f.ctrl.OnAbortButton()

			assert.Equal(t, session.Idle, f.ctrl.Snapshot().Phase)
			assert.Empty(t, f.timers.active)
			assert.Equal(t, pulses+1, f.haptics.pulses)
			assert.Equal(t, session.Idle, f.display.last().Phase)
		})
	}
}

func TestRestartDuringWork(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	for i := 0; i < 900; i++ {
		f.timers.fire(t, f.ctrl)
	}

	require.Equal(t, 600, f.ctrl.Snapshot().Remaining)

	stale := f.timers.last(t)

	f.ctrl.OnRestartButton()

	snap := f.ctrl.Snapshot()
	assert.Equal(t, session.Working, snap.Phase)
	assert.Equal(t, 1500, snap.Remaining)
	assert.Equal(t, 1, snap.WorkCycle)
	assert.Len(t, f.timers.active, 1)
	assert.Contains(t, f.timers.cancelled, stale.handle)

	f.ctrl.OnTimerTick(stale.handle, stale.cookie)
	assert.Equal(t, 1500, f.ctrl.Snapshot().Remaining)
}

func TestRestartWhileAlertingRepeatsInterval(t *testing.T) {
	f := newFixture(Durations{
		session.Work:       2 * time.Second,
		session.ShortBreak: time.Second,
	})

	f.ctrl.Start()
	f.finish(t)
	require.Equal(t, session.Alerting, f.ctrl.Snapshot().Phase)

	f.ctrl.OnRestartButton()

	snap := f.ctrl.Snapshot()
	assert.Equal(t, session.Working, snap.Phase)
	assert.Equal(t, session.Work, snap.Kind)
	assert.Equal(t, 2, snap.Remaining)
	assert.Equal(t, 1, snap.WorkCycle)
}

func TestIdleIgnoresRestartAndAbort(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.OnRestartButton()
	f.ctrl.OnAbortButton()

	assert.Equal(t, session.Idle, f.ctrl.Snapshot().Phase)
	assert.Empty(t, f.timers.scheduled)
	assert.Zero(t, f.haptics.pulses)
	assert.Len(t, f.display.frames, 1)
}

func TestPrimaryWhileCountingOnlyIlluminates(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	before := f.ctrl.Snapshot()

	f.ctrl.OnPrimaryButton()

	assert.Equal(t, before, f.ctrl.Snapshot())
	assert.Equal(t, 2, f.haptics.lights)
	assert.Len(t, f.timers.scheduled, 1)
}

func TestBreakAlertReturnsToWork(t *testing.T) {
	f := newFixture(Durations{
		session.Work:       2 * time.Second,
		session.ShortBreak: time.Second,
	})

	f.ctrl.Start()
	f.finish(t)
	f.ctrl.OnPrimaryButton()
	f.finish(t)

	require.Equal(t, session.Alerting, f.ctrl.Snapshot().Phase)
	require.Equal(t, session.ShortBreak, f.ctrl.Snapshot().Kind)

	f.ctrl.OnPrimaryButton()

	snap := f.ctrl.Snapshot()
	assert.Equal(t, session.Working, snap.Phase)
	assert.Equal(t, 2, snap.Remaining)
	assert.Equal(t, 2, snap.WorkCycle)
}

func TestLongBreakAfterInterval(t *testing.T) {
	f := newFixture(Durations{
		session.Work:       time.Second,
		session.ShortBreak: time.Second,
		session.LongBreak:  3 * time.Second,
	}, WithLongBreakInterval(2))

	var kinds []session.Kind

	f.ctrl.Start()

	for i := 0; i < 6; i++ {
		kinds = append(kinds, f.ctrl.Snapshot().Kind)
		f.finish(t)
		f.ctrl.OnPrimaryButton()
	}

	want := []session.Kind{
		session.Work,
		session.ShortBreak,
		session.Work,
		session.LongBreak,
		session.Work,
		session.ShortBreak,
	}

	assert.Equal(t, want, kinds)
	assert.Equal(t, 2, f.ctrl.Snapshot().WorkCycle)
}

func TestLongBreaksDisabled(t *testing.T) {
	f := newFixture(Durations{
		session.Work:       time.Second,
		session.ShortBreak: time.Second,
	}, WithLongBreakInterval(0))

	f.ctrl.Start()

	for i := 0; i < 10; i++ {
		f.finish(t)
		f.ctrl.OnPrimaryButton()
		assert.NotEqual(t, session.LongBreak, f.ctrl.Snapshot().Kind)
	}
}

func TestCompletionHook(t *testing.T) {
	var completed []session.Snapshot

	f := newFixture(Durations{
		session.Work:       2 * time.Second,
		session.ShortBreak: time.Second,
	}, WithCompletionHook(func(s session.Snapshot) {
		completed = append(completed, s)
	}))

	f.ctrl.Start()
	f.finish(t)

	require.Len(t, completed, 1)
	assert.Equal(t, session.Alerting, completed[0].Phase)
	assert.Equal(t, session.Work, completed[0].Kind)
}

func TestZeroLengthIntervalAlertsImmediately(t *testing.T) {
	f := newFixture(Durations{session.Work: 0})

	f.ctrl.Start()

	assert.Equal(t, session.Alerting, f.ctrl.Snapshot().Phase)
	assert.Empty(t, f.timers.active)
	assert.Equal(t, 1, f.haptics.pulses)
}

func TestTickInterval(t *testing.T) {
	f := newFixture(defaultDurations, WithTickInterval(250*time.Millisecond))

	f.ctrl.Start()

	assert.Equal(t, 250*time.Millisecond, f.timers.last(t).delay)
}

func TestEveryScheduleUsesFreshCookie(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	for i := 0; i < 5; i++ {
		f.timers.fire(t, f.ctrl)
	}

	f.ctrl.OnRestartButton()

	seen := make(map[session.Cookie]bool)

	for _, s := range f.timers.scheduled {
		assert.False(t, seen[s.cookie], "cookie %d reused", s.cookie)
		seen[s.cookie] = true
	}
}

func TestHandleButton(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.HandleButton(session.ButtonPrimary)
	assert.Equal(t, session.Working, f.ctrl.Snapshot().Phase)

	f.timers.fire(t, f.ctrl)
	f.ctrl.HandleButton(session.ButtonUp)
	assert.Equal(t, 1500, f.ctrl.Snapshot().Remaining)

	f.ctrl.HandleButton(session.ButtonDown)
	assert.Equal(t, session.Idle, f.ctrl.Snapshot().Phase)
}

func TestClose(t *testing.T) {
	f := newFixture(defaultDurations)

	f.ctrl.Start()

	pending := f.timers.last(t)

	f.ctrl.Close()

	assert.Empty(t, f.timers.active)

	f.ctrl.OnTimerTick(pending.handle, pending.cookie)
	f.ctrl.OnPrimaryButton()
	f.ctrl.OnRestartButton()

	assert.Equal(t, 1500, f.ctrl.Snapshot().Remaining)
	assert.Len(t, f.timers.scheduled, 1)

	// closing twice is harmless
	f.ctrl.Close()
}
