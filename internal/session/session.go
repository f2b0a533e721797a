// Package session defines the pomodoro session and the values exchanged
// between the controller, the countdown display and the host
package session

import "time"

// Phase is the state of the pomodoro session.
type Phase int

const (
	Idle Phase = iota
	Working
	OnBreak
	Alerting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Working:
		return "Working"
	case OnBreak:
		return "OnBreak"
	case Alerting:
		return "Alerting"
	}

	return "Unknown"
}

// CountingDown reports whether the remaining time is meaningful in this
// phase.
func (p Phase) CountingDown() bool {
	return p == Working || p == OnBreak
}

// Kind identifies the interval being timed.
type Kind string

const (
	Work       Kind = "Work session"
	ShortBreak Kind = "Short break"
	LongBreak  Kind = "Long break"
)

// IsBreak reports whether the interval is a break.
func (k Kind) IsBreak() bool {
	return k == ShortBreak || k == LongBreak
}

// Phase returns the phase in which an interval of this kind counts down.
func (k Kind) Phase() Phase {
	if k.IsBreak() {
		return OnBreak
	}

	return Working
}

// Cookie distinguishes one scheduled timer from every other.
type Cookie uint32

// Handle is the opaque identifier the timer service returns for a
// scheduled callback.
type Handle uint32

// Button is a discrete button press delivered by the input source.
type Button int

const (
	ButtonPrimary Button = iota // select
	ButtonUp                    // restart
	ButtonDown                  // abort
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	}

	return "unknown"
}

// Session is the sole stateful entity. It is owned by the controller and
// never handed out directly; renderers receive a Snapshot.
type Session struct {
	StartTime time.Time
	Phase     Phase
	Kind      Kind
	// Remaining is the number of seconds left. Only meaningful while the
	// phase is counting down.
	Remaining int
	// Duration is the configured length of the current interval in seconds.
	Duration  int
	WorkCycle int
	Pending   Handle
	Armed     bool
	Cookie    Cookie
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	StartTime         time.Time
	Phase             Phase
	Kind              Kind
	Remaining         int
	Duration          int
	WorkCycle         int
	LongBreakInterval int
}

// Snapshot copies the renderable fields of the session.
func (s *Session) Snapshot(longBreakInterval int) Snapshot {
	return Snapshot{
		StartTime:         s.StartTime,
		Phase:             s.Phase,
		Kind:              s.Kind,
		Remaining:         s.Remaining,
		Duration:          s.Duration,
		WorkCycle:         s.WorkCycle,
		LongBreakInterval: longBreakInterval,
	}
}

// EndTime is the wall clock time at which the current interval would end
// if it ran uninterrupted.
func (s Snapshot) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.Duration) * time.Second)
}

// Elapsed returns the fraction of the current interval that has passed.
func (s Snapshot) Elapsed() float64 {
	if !s.Phase.CountingDown() {
		if s.Phase == Alerting {
			return 1
		}

		return 0
	}

	if s.Duration <= 0 {
		return 1
	}

	return float64(s.Duration-s.Remaining) / float64(s.Duration)
}
