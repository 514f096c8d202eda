package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDisplayColor   = "display.color"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"

	keyNotifyEnabled = "notifications.enabled"

	keyTimerSound       = "timers.sound"
	keyTimerMessage     = "timers.message"
	keyTimerLabelPrefix = "timers.label_prefix"
	keyTimerCmd         = "timers.cmd"
)

// defaultColor styles the clock and progress bars unless the datastore holds
// a saved preference.
const defaultColor = "#43B0DB"

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			loadViperConfig(v, c)
			return nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		loadViperConfig(v, c)

		return nil
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyDisplayColor, defaultColor)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyTimerSound, "")
	v.SetDefault(keyTimerMessage, "Countdown complete")
	v.SetDefault(keyTimerLabelPrefix, "Timer")
	v.SetDefault(keyTimerCmd, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) {
	c.Display = DisplayConfig{
		Color:          v.GetString(keyDisplayColor),
		DarkTheme:      v.GetBool(keyDarkTheme),
		TwentyFourHour: v.GetBool(keyTwentyFourHour),
	}

	c.Notifications = NotificationConfig{
		Enabled: v.GetBool(keyNotifyEnabled),
	}

	c.Timers = TimerConfig{
		Sound:       v.GetString(keyTimerSound),
		Message:     v.GetString(keyTimerMessage),
		LabelPrefix: v.GetString(keyTimerLabelPrefix),
		Cmd:         v.GetString(keyTimerCmd),
	}
}
