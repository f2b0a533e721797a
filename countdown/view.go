// Package countdown renders the remaining time, a descriptive prompt and the
// action bar icons for a pomodoro session snapshot
package countdown

import (
	"github.com/ayoisaiah/pomade/internal/apperr"
	"github.com/ayoisaiah/pomade/internal/session"
)

var (
	errAlreadyAttached = &apperr.Error{
		Message: "countdown view is already attached",
	}

	errLoadIcon = &apperr.Error{
		Message: "unable to load %s icon",
	}
)

// Icon is a loaded action bar image.
type Icon struct {
	ID  IconID
	Art string
}

// IconLoader acquires and releases icon resources.
type IconLoader interface {
	Load(id IconID) (Icon, error)
	Release(icon Icon)
}

// Surface is the display the view draws on.
type Surface interface {
	Render(text string, region Region)
	SetActionIcon(slot Slot, icon Icon)
}

// View projects snapshots onto a surface. Icons are held only while the
// view is attached.
type View struct {
	loader   IconLoader
	surface  Surface
	icons    map[IconID]Icon
	prompts  Prompts
	last     Frame
	teardown []func()
	drawn    bool
	attached bool
}

// NewView creates a detached view.
func NewView(loader IconLoader, prompts Prompts) *View {
	return &View{
		loader:  loader,
		prompts: prompts,
	}
}

// Attach loads the icons and binds the view to a surface. If any icon fails
// to load, everything acquired so far is released before returning.
func (v *View) Attach(s Surface) (err error) {
	if v.attached {
		return errAlreadyAttached
	}

	v.surface = s
	v.icons = make(map[IconID]Icon, len(IconIDs))
	v.OnDetach(func() {
		v.surface = nil
		v.icons = nil
	})

	defer func() {
		if err != nil {
			v.runTeardown()
		}
	}()

	for _, id := range IconIDs {
		icon, loadErr := v.loader.Load(id)
		if loadErr != nil {
			return errLoadIcon.Fmt(id).Wrap(loadErr)
		}

		v.icons[id] = icon
		v.OnDetach(func() {
			v.loader.Release(icon)
		})
	}

	v.OnDetach(v.clearActionBar)

	v.attached = true
	v.drawn = false

	return nil
}

// OnDetach registers fn to run when the view is detached. Teardowns run in
// the reverse order of registration.
func (v *View) OnDetach(fn func()) {
	v.teardown = append(v.teardown, fn)
}

// Attached reports whether the view is bound to a surface.
func (v *View) Attached() bool {
	return v.attached
}

// Detach runs the registered teardowns. Calling it on a detached view does
// nothing.
func (v *View) Detach() {
	if !v.attached {
		return
	}

	v.attached = false

	v.runTeardown()
}

func (v *View) runTeardown() {
	fns := v.teardown
	v.teardown = nil

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

func (v *View) clearActionBar() {
	for _, slot := range Slots {
		v.surface.SetActionIcon(slot, Icon{})
	}
}

// Render draws the snapshot. Only the parts of the frame that changed since
// the previous render are pushed to the surface.
func (v *View) Render(snap session.Snapshot) {
	if !v.attached {
		return
	}

	frame := Project(snap, v.prompts)

	if !v.drawn || frame.Countdown != v.last.Countdown {
		v.surface.Render(frame.Countdown, RegionCountdown)
	}

	if !v.drawn || frame.Prompt != v.last.Prompt {
		v.surface.Render(frame.Prompt, RegionPrompt)
	}

	for _, slot := range Slots {
		id := frame.Bar.Icon(slot)
		if v.drawn && id == v.last.Bar.Icon(slot) {
			continue
		}

		v.surface.SetActionIcon(slot, v.icons[id])
	}

	v.last = frame
	v.drawn = true
}
