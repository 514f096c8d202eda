package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SoundOff disables the completion sound when used as a sound value.
const SoundOff = "off"

// SoundOpts lists the completion sounds available in the sounds directory in
// natural order, preceded by "off". A missing directory yields just "off".
func SoundOpts() []string {
	opts := []string{SoundOff}

	entries, err := os.ReadDir(soundsDirPath)
	if err != nil {
		return opts
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		names = append(names, strings.TrimSuffix(name, filepath.Ext(name)))
	}

	sort.Sort(natural.StringSlice(names))

	return append(opts, names...)
}
