// Package config loads and resolves chime's configuration and filesystem
// paths.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig
		Notifications NotificationConfig
		Timers        TimerConfig
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Color          string
		DarkTheme      bool
		TwentyFourHour bool
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// TimerConfig holds countdown-related settings.
	TimerConfig struct {
		// Sound is the completion sound: a path to an audio file, a
		// bare name resolved in the sounds directory, or "" for off.
		Sound string
		// Message is the body of the completion notification.
		Message string
		// LabelPrefix generates placeholder labels for unnamed timers.
		LabelPrefix string
		// Cmd is an optional command executed after each completion.
		Cmd string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "chime"
	configFileName = "config.yml"
	dbFileName     = "chime.db"
	logFileName    = "chime.log"
	soundsDirName  = "sounds"

	configFilePath string
	dbFilePath     string
	logFilePath    string
	soundsDirPath  string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func SoundsDirPath() string {
	return soundsDirPath
}

// InitializePaths resolves all file paths through xdg. CHIME_ENV suffixes
// the file names so tests and development never touch real data.
func InitializePaths() {
	chimeEnv := strings.TrimSpace(os.Getenv("CHIME_ENV"))
	if chimeEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", chimeEnv)
		dbFileName = fmt.Sprintf("chime_%s.db", chimeEnv)
		logFileName = fmt.Sprintf("chime_%s.log", chimeEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	soundsDirPath = filepath.Join(dataDir, soundsDirName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
