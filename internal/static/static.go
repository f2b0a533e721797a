// Package static embeds the action bar icons into the binary and lets the
// user override them from the data directory
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/pomade/countdown"
)

const iconsDir = "files/icons"

//go:embed files/icons/*
var embeddedFiles embed.FS

// IconLoader reads icon art from an override directory, falling back to the
// embedded copies. It counts outstanding icons so leaks can be detected.
type IconLoader struct {
	held        map[countdown.IconID]int
	overrideDir string
}

// NewIconLoader returns a loader that prefers files in overrideDir. An empty
// overrideDir disables overrides.
func NewIconLoader(overrideDir string) *IconLoader {
	return &IconLoader{
		overrideDir: overrideDir,
		held:        make(map[countdown.IconID]int),
	}
}

// Load returns the art for the given icon.
func (l *IconLoader) Load(id countdown.IconID) (countdown.Icon, error) {
	name := string(id) + ".txt"

	b, err := l.readOverride(name)
	if err != nil {
		return countdown.Icon{}, err
	}

	if b == nil {
		b, err = embeddedFiles.ReadFile(path.Join(iconsDir, name))
		if err != nil {
			return countdown.Icon{}, err
		}
	}

	l.held[id]++

	return countdown.Icon{
		ID:  id,
		Art: strings.TrimRight(string(b), "\r\n"),
	}, nil
}

// Release returns an icon obtained from Load.
func (l *IconLoader) Release(icon countdown.Icon) {
	if l.held[icon.ID] > 0 {
		l.held[icon.ID]--
	}
}

// Held reports how many icons are loaded and not yet released.
func (l *IconLoader) Held() int {
	var n int

	for _, v := range l.held {
		n += v
	}

	return n
}

func (l *IconLoader) readOverride(name string) ([]byte, error) {
	if l.overrideDir == "" {
		return nil, nil
	}

	b, err := os.ReadFile(filepath.Join(l.overrideDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return b, err
}
