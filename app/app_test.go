package app

import (
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomade/internal/config"
	"github.com/ayoisaiah/pomade/internal/logger"
	"github.com/ayoisaiah/pomade/internal/session"
)

func testConfig() *config.Config {
	return &config.Config{
		Work: config.SessionConfig{
			Message:  "Write the report",
			Color:    "#B0DB43",
			Sound:    "bell2",
			Duration: 50 * time.Minute,
		},
		ShortBreak: config.SessionConfig{
			Message:  "Stretch",
			Color:    "#12EAEA",
			Sound:    "/usr/share/sounds/chime.ogg",
			Duration: 10 * time.Minute,
		},
		LongBreak: config.SessionConfig{
			Message:  "Go for a walk",
			Color:    "#C492B1",
			Duration: 30 * time.Minute,
		},
		Settings: config.SettingsConfig{
			Cmd:               "echo done",
			LongBreakInterval: 3,
			TwentyFourHour:    true,
		},
		Notifications: config.NotificationConfig{Enabled: true},
		Display: config.DisplayConfig{
			DarkTheme: true,
			Backlight: 2 * time.Second,
		},
		System: config.SystemConfig{
			SoundDir: "/data/sounds",
			IconDir:  "/data/icons",
		},
	}
}

func TestSoundRows(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	rows := soundRows([]string{"chime", "bell10", "bell2"}, testConfig())

	assert.Equal(t, [][]string{
		{"#", "NAME", "USED BY"},
		{"1", "bell2", "Work session"},
		{"2", "bell10", ""},
		{"3", "chime", "Short break"},
	}, rows)
}

func TestDeviceOptions(t *testing.T) {
	cfg := testConfig()

	opts := deviceOptions(cfg, logger.Discard(), "/data/icon.png")

	assert.Equal(t, cfg.Durations(), opts.Durations)
	assert.Equal(t, "Stretch", opts.Prompts.Running[session.ShortBreak])
	assert.NotEmpty(t, opts.Prompts.Finished[session.Work])
	assert.Equal(t, map[session.Kind]string{
		session.Work:       "/data/sounds/bell2.ogg",
		session.ShortBreak: "/usr/share/sounds/chime.ogg",
	}, opts.Sounds)
	assert.Equal(t, "#C492B1", opts.Colors[session.LongBreak])
	assert.Equal(t, 3, opts.LongBreakInterval)
	assert.Equal(t, 2*time.Second, opts.Backlight)
	assert.Equal(t, "echo done", opts.SessionCmd)
	assert.Equal(t, "/data/icon.png", opts.NotificationIcon)
	assert.True(t, opts.Notify)
	assert.True(t, opts.TwentyFourHour)
	assert.NotNil(t, opts.Icons)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}
