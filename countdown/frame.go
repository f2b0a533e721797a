package countdown

import "github.com/ayoisaiah/pomade/internal/session"

// Region is an area of the display surface that holds text.
type Region int

const (
	RegionCountdown Region = iota
	RegionPrompt
)

// Slot is a position on the action bar, one per hardware button.
type Slot int

const (
	SlotUp Slot = iota
	SlotSelect
	SlotDown
)

// Slots lists the action bar slots from top to bottom.
var Slots = []Slot{SlotUp, SlotSelect, SlotDown}

func (s Slot) String() string {
	switch s {
	case SlotUp:
		return "up"
	case SlotSelect:
		return "select"
	case SlotDown:
		return "down"
	}

	return "unknown"
}

// IconID selects one of the action bar icons. The zero value means the slot
// is empty.
type IconID string

const (
	IconNone    IconID = ""
	IconStart   IconID = "start"
	IconRestart IconID = "restart"
	IconAbort   IconID = "abort"
)

// IconIDs lists every icon the view needs while attached.
var IconIDs = []IconID{IconStart, IconRestart, IconAbort}

// ActionBar holds the icon shown next to each button.
type ActionBar struct {
	Up     IconID
	Select IconID
	Down   IconID
}

// Icon returns the icon assigned to a slot.
func (a ActionBar) Icon(slot Slot) IconID {
	switch slot {
	case SlotUp:
		return a.Up
	case SlotSelect:
		return a.Select
	case SlotDown:
		return a.Down
	}

	return IconNone
}

// Frame is everything the display shows for one snapshot.
type Frame struct {
	Countdown string
	Prompt    string
	Bar       ActionBar
}

// Prompts holds the descriptive text shown under the countdown.
type Prompts struct {
	// Running is shown while an interval of the given kind counts down.
	Running map[session.Kind]string
	// Finished is shown once an interval of the given kind has run out.
	Finished map[session.Kind]string
	Idle     string
}

// DefaultPrompts returns the built-in prompt text.
func DefaultPrompts() Prompts {
	return Prompts{
		Idle: "Ready to focus?",
		Running: map[session.Kind]string{
			session.Work:       "Focus on your task",
			session.ShortBreak: "Take a breather",
			session.LongBreak:  "Take a long break",
		},
		Finished: map[session.Kind]string{
			session.Work:       "Time's up! Ready for a break?",
			session.ShortBreak: "Break's over! Back to work?",
			session.LongBreak:  "Break's over! Back to work?",
		},
	}
}

// Project computes the frame for a snapshot. The remaining time is only
// read while the phase is counting down.
func Project(snap session.Snapshot, p Prompts) Frame {
	switch snap.Phase {
	case session.Working, session.OnBreak:
		return Frame{
			Countdown: Format(snap.Remaining),
			Prompt:    p.Running[snap.Kind],
			Bar: ActionBar{
				Up:   IconRestart,
				Down: IconAbort,
			},
		}
	case session.Alerting:
		return Frame{
			Countdown: Format(0),
			Prompt:    p.Finished[snap.Kind],
			Bar: ActionBar{
				Up:     IconRestart,
				Select: IconStart,
				Down:   IconAbort,
			},
		}
	default:
		return Frame{
			Prompt: p.Idle,
			Bar: ActionBar{
				Select: IconStart,
			},
		}
	}
}
