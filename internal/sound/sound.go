// Package sound locates and plays alert sounds
package sound

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomade/internal/apperr"
	"github.com/ayoisaiah/pomade/internal/pathutil"
)

const defaultExt = ".ogg"

// Extensions lists the supported audio formats.
var Extensions = []string{".mp3", ".ogg", ".flac", ".wav"}

var (
	ErrInvalidFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound %s",
	}

	errSpeaker = &apperr.Error{
		Message: "unable to initialise the speaker",
	}
)

// the speaker is process-wide so only one sound plays at a time.
var mu sync.Mutex

// Resolve returns the file path for a sound. A bare name refers to an ogg
// file in dir. Anything with an extension is used as given.
func Resolve(name, dir string) string {
	if filepath.Ext(name) == "" {
		return filepath.Join(dir, name+defaultExt)
	}

	return name
}

// CheckFormat reports an error if path does not have a supported extension.
func CheckFormat(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Extensions, ext) {
		return ErrInvalidFormat.Fmt(path)
	}

	return nil
}

// List returns the names of the sounds available in dir.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || CheckFormat(e.Name()) != nil {
			continue
		}

		names = append(names, pathutil.StripExtension(e.Name()))
	}

	return names, nil
}

// Decode opens and decodes the audio file at path. Closing the returned
// stream closes the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	if err := CheckFormat(path); err != nil {
		return nil, beep.Format{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errOpenSound.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errDecodeSound.Fmt(path).Wrap(err)
	}

	return stream, format, nil
}

// Play plays the sound at path and blocks until it finishes or ctx is
// cancelled.
func Play(ctx context.Context, path string) error {
	stream, format, err := Decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	mu.Lock()
	defer mu.Unlock()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return errSpeaker.Wrap(err)
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}

	return nil
}
