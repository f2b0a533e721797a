package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomade/countdown"
	"github.com/ayoisaiah/pomade/internal/session"
	"github.com/ayoisaiah/pomade/internal/sound"
)

type alertDoneMsg struct {
	err error
}

// alerter tells the user an interval has ended through channels outside
// the terminal: a desktop notification, an alert sound and a user command.
type alerter struct {
	notifyFn   func(title, msg, icon string) error
	playFn     func(ctx context.Context, path string) error
	runFn      func(ctx context.Context, cmd string) error
	log        *slog.Logger
	sounds     map[session.Kind]string
	prompts    countdown.Prompts
	sessionCmd string
	icon       string
	notify     bool
}

func newAlerter(opts Options) *alerter {
	return &alerter{
		notifyFn:   beeep.Notify,
		playFn:     sound.Play,
		runFn:      runSessionCmd,
		log:        opts.Log,
		sounds:     opts.Sounds,
		prompts:    opts.Prompts,
		sessionCmd: opts.SessionCmd,
		icon:       opts.NotificationIcon,
		notify:     opts.Notify,
	}
}

// alert returns a command that performs the alert off the event loop.
func (a *alerter) alert(ctx context.Context, snap session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return alertDoneMsg{err: a.run(ctx, snap)}
	}
}

func (a *alerter) run(ctx context.Context, snap session.Snapshot) error {
	var errs []error

	if a.notify {
		title := fmt.Sprintf("%s is finished", snap.Kind)

		err := a.notifyFn(title, a.prompts.Finished[snap.Kind], a.icon)
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}
	}

	if path := a.sounds[snap.Kind]; path != "" {
		if err := a.playFn(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("unable to play sound: %w", err))
		}
	}

	if err := a.runFn(ctx, a.sessionCmd); err != nil {
		errs = append(errs, fmt.Errorf("session command failed: %w", err))
	}

	return errors.Join(errs...)
}

// runSessionCmd executes the specified command.
func runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)

	return cmd.Run()
}
