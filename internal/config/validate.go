package config

import (
	"fmt"
	"regexp"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether s is a six-digit hex color code. Colors read
// back from the datastore go through the same check as the config file.
func ValidColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Validate checks the loaded configuration for values that would break
// rendering later.
func (c *Config) Validate() error {
	if !ValidColor(c.Display.Color) {
		return errInvalidColor.Wrap(fmt.Errorf("got %q", c.Display.Color))
	}

	if c.Timers.LabelPrefix == "" {
		return errEmptyLabelPrefix
	}

	return nil
}
