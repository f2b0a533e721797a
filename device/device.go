// Package device hosts the pomodoro controller in the terminal. It supplies
// the timer, haptics, display and button collaborators with bubbletea and
// runs the event loop that delivers their messages one at a time
package device

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomade/countdown"
	"github.com/ayoisaiah/pomade/internal/apperr"
	"github.com/ayoisaiah/pomade/internal/logger"
	"github.com/ayoisaiah/pomade/internal/session"
	"github.com/ayoisaiah/pomade/timer"
)

const (
	padding  = 2
	maxWidth = 80
)

var errAttachView = &apperr.Error{
	Message: "unable to attach the countdown display",
}

// Options configures the terminal host.
type Options struct {
	Icons             countdown.IconLoader
	Bell              io.Writer
	Log               *slog.Logger
	Clock             func() time.Time
	Durations         map[session.Kind]time.Duration
	Colors            map[session.Kind]string
	Sounds            map[session.Kind]string
	Prompts           countdown.Prompts
	SessionCmd        string
	NotificationIcon  string
	LongBreakInterval int
	Backlight         time.Duration
	TickInterval      time.Duration
	TwentyFourHour    bool
	Notify            bool
	DarkTheme         bool
}

// Model is the bubbletea model that owns the controller and its
// collaborators.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	ctrl     *timer.Controller
	view     *countdown.View
	screen   *screen
	ticker   *ticker
	haptics  *haptics
	alerter  *alerter
	log      *slog.Logger
	styles   styles
	snap     session.Snapshot
	help     help.Model
	progress progress.Model
	opts     Options
	queued   []tea.Cmd
	closed   bool
}

// New builds the host, attaches the countdown display and creates an idle
// controller.
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}

	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
		log:    opts.Log,
		screen: newScreen(),
		ticker: newTicker(),
		haptics: &haptics{
			bell:      opts.Bell,
			log:       opts.Log,
			backlight: opts.Backlight,
		},
		alerter:  newAlerter(opts),
		styles:   newStyles(opts.Colors, opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		view:     countdown.NewView(opts.Icons, opts.Prompts),
	}

	if err := m.view.Attach(m.screen); err != nil {
		cancel()
		return nil, errAttachView.Wrap(err)
	}

	ctrlOpts := []timer.Option{
		timer.WithLogger(opts.Log),
		timer.WithLongBreakInterval(opts.LongBreakInterval),
		timer.WithCompletionHook(m.intervalFinished),
	}

	if opts.Clock != nil {
		ctrlOpts = append(ctrlOpts, timer.WithClock(opts.Clock))
	}

	if opts.TickInterval > 0 {
		ctrlOpts = append(ctrlOpts, timer.WithTickInterval(opts.TickInterval))
	}

	m.ctrl = timer.New(m.ticker, m.haptics, m, opts.Durations, ctrlOpts...)

	return m, nil
}

// Render implements timer.Display.
func (m *Model) Render(snap session.Snapshot) {
	m.snap = snap
	m.view.Render(snap)
}

func (m *Model) intervalFinished(snap session.Snapshot) {
	m.queued = append(m.queued, m.alerter.alert(m.ctx, snap))
}

// Close stops the controller and releases the display. It is safe to call
// more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}

	m.closed = true

	m.ctrl.Close()
	m.view.Detach()
	m.cancel()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			m.Close()
			return m, tea.Quit
		}

		m.handleKey(msg)

	case TickMsg:
		if m.ticker.delivered(msg.Handle) {
			m.log.Debug(
				"cancelled tick delivered",
				slog.Any("handle", msg.Handle),
			)
		}

		m.ctrl.OnTimerTick(msg.Handle, msg.Cookie)

	case lightOffMsg:
		m.haptics.lightOff(msg)

	case alertDoneMsg:
		if msg.err != nil {
			m.log.Warn("interval alert failed", slog.Any("error", msg.err))
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width
	}

	return m, m.drain()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, defaultKeymap.sel):
		m.ctrl.HandleButton(session.ButtonPrimary)
	case key.Matches(msg, defaultKeymap.restart):
		m.ctrl.HandleButton(session.ButtonUp)
	case key.Matches(msg, defaultKeymap.abort):
		m.ctrl.HandleButton(session.ButtonDown)
	}
}

// drain collects the commands queued by the collaborators while handling
// the last message.
func (m *Model) drain() tea.Cmd {
	cmds := m.queued
	m.queued = nil

	cmds = append(cmds, m.ticker.drain()...)
	cmds = append(cmds, m.haptics.drain()...)

	return tea.Batch(cmds...)
}

// Snapshot returns the last snapshot rendered by the controller.
func (m *Model) Snapshot() session.Snapshot {
	return m.snap
}

// Run starts the controller in the terminal and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m, err := New(ctx, opts)
	if err != nil {
		return err
	}

	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()

	return err
}
