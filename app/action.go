package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomade/countdown"
	"github.com/ayoisaiah/pomade/device"
	"github.com/ayoisaiah/pomade/internal/config"
	"github.com/ayoisaiah/pomade/internal/logger"
	"github.com/ayoisaiah/pomade/internal/osutil"
	"github.com/ayoisaiah/pomade/internal/pathutil"
	"github.com/ayoisaiah/pomade/internal/session"
	"github.com/ayoisaiah/pomade/internal/sound"
	"github.com/ayoisaiah/pomade/internal/static"
	"github.com/ayoisaiah/pomade/internal/ui"
)

const (
	envNoColor       = "NO_COLOR"
	envPomadeNoColor = "POMADE_NO_COLOR"
)

var sessionKinds = []session.Kind{
	session.Work,
	session.ShortBreak,
	session.LongBreak,
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// systemPaths returns the locations of the application's files.
func systemPaths() (config.SystemConfig, error) {
	if err := pathutil.Initialize(); err != nil {
		return config.SystemConfig{}, err
	}

	sys := config.SystemConfig{
		ConfigPath: pathutil.ConfigFilePath(),
		LogPath:    pathutil.LogFilePath(),
		SoundDir:   pathutil.SoundDir(),
		IconDir:    pathutil.IconDir(),
	}

	for _, dir := range []string{sys.SoundDir, sys.IconDir} {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return sys, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return sys, nil
}

// loadConfig builds the configuration from the config file and command-line
// flags, prompting for the basics on the first run.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	sys, err := systemPaths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithSystemPaths(sys),
		config.WithPromptConfig(sys.ConfigPath),
		config.WithViperConfig(sys.ConfigPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// deviceOptions translates the configuration into terminal host options.
func deviceOptions(
	cfg *config.Config,
	log *slog.Logger,
	notificationIcon string,
) device.Options {
	prompts := countdown.DefaultPrompts()
	prompts.Running = cfg.Messages()

	colors := make(map[session.Kind]string, len(sessionKinds))
	sounds := make(map[session.Kind]string, len(sessionKinds))

	for _, kind := range sessionKinds {
		sc := cfg.Session(kind)

		colors[kind] = sc.Color

		if sc.Sound != "" {
			sounds[kind] = cfg.SoundPath(sc.Sound)
		}
	}

	return device.Options{
		Icons:             static.NewIconLoader(cfg.System.IconDir),
		Bell:              os.Stderr,
		Log:               log,
		Durations:         cfg.Durations(),
		Colors:            colors,
		Sounds:            sounds,
		Prompts:           prompts,
		SessionCmd:        cfg.Settings.Cmd,
		NotificationIcon:  notificationIcon,
		LongBreakInterval: cfg.Settings.LongBreakInterval,
		Backlight:         cfg.Display.Backlight,
		TwentyFourHour:    cfg.Settings.TwentyFourHour,
		Notify:            cfg.Notifications.Enabled,
		DarkTheme:         cfg.Display.DarkTheme,
	}
}

// defaultAction runs the timer until the user quits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.Display.NoColor {
		disableStyling()
	}

	ui.Configure(cfg.Display.DarkTheme, cfg.Display.NoColor)

	log, closer := logger.New(logger.Config{
		Level: cfg.Log.Level,
		File:  cfg.System.LogPath,
	})

	defer closer.Close()

	log.InfoContext(ctx.Context, "starting pomade", slog.String("version", config.Version))

	// empty if the file does not exist
	notificationIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "icon.png"),
	)

	err = device.Run(ctx.Context, deviceOptions(cfg, log, notificationIcon))

	log.InfoContext(ctx.Context, "exiting pomade")

	return err
}

// editConfigAction handles the edit-config command which opens the pomade
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	sys, err := systemPaths()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, sys.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// soundsAction prints the alert sounds available in the data directory.
func soundsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.Configure(cfg.Display.DarkTheme, cfg.Display.NoColor)

	names, err := sound.List(cfg.System.SoundDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if len(names) == 0 {
		pterm.Info.Printfln(
			"No sounds found. Copy mp3, ogg, flac or wav files into %s",
			cfg.System.SoundDir,
		)

		return nil
	}

	return ui.PrintTable(soundRows(names, cfg), ctx.App.Writer)
}

// soundRows lays out the sounds table in natural order and marks the
// intervals each sound is configured for.
func soundRows(names []string, cfg *config.Config) [][]string {
	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})

	rows := [][]string{{"#", "NAME", "USED BY"}}

	for i, name := range names {
		var usedBy []string

		for _, kind := range sessionKinds {
			s := cfg.Session(kind).Sound
			if s == name || pathutil.StripExtension(filepath.Base(s)) == name {
				usedBy = append(usedBy, string(kind))
			}
		}

		label := name
		if len(usedBy) > 0 {
			label = ui.Green(name)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			label,
			strings.Join(usedBy, ", "),
		})
	}

	return rows
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMADE_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomadeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
