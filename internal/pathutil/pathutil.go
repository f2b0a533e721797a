// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "POMADE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configDir:      "pomade",
			configFileName: "config.yml",
			logFileName:    "pomade.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// SoundDir is where user supplied alert sounds live.
func SoundDir() string {
	return filepath.Join(Must().dataDir, "sounds")
}

// IconDir is where user supplied action bar icons override the built-in ones.
func IconDir() string {
	return filepath.Join(Must().dataDir, "icons")
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("pomade_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	p.dataDir = filepath.Join(xdg.DataHome, p.configDir)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
