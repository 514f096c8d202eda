package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chime-cli/chime/internal/config"
)

func TestDefaultsWrittenOnFirstRun(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "#43B0DB", cfg.Display.Color)
	assert.True(t, cfg.Display.DarkTheme)
	assert.True(t, cfg.Display.TwentyFourHour)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "Countdown complete", cfg.Timers.Message)
	assert.Equal(t, "Timer", cfg.Timers.LabelPrefix)
	assert.Empty(t, cfg.Timers.Sound)
	assert.Empty(t, cfg.Timers.Cmd)

	_, err = os.Stat(configPath)
	assert.NoError(t, err, "default config file should be written")
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := `display:
  color: "#FF8800"
  dark_theme: false
  24hr_clock: false
notifications:
  enabled: false
timers:
  sound: bell
  message: Time is up
  label_prefix: Task
  cmd: "notify-send done"
`

	err := os.WriteFile(configPath, []byte(yml), 0o644)
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "#FF8800", cfg.Display.Color)
	assert.False(t, cfg.Display.DarkTheme)
	assert.False(t, cfg.Display.TwentyFourHour)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "bell", cfg.Timers.Sound)
	assert.Equal(t, "Time is up", cfg.Timers.Message)
	assert.Equal(t, "Task", cfg.Timers.LabelPrefix)
	assert.Equal(t, "notify-send done", cfg.Timers.Cmd)
}

func TestPartialConfigKeepsRemainingDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := `display:
  color: "#22AA22"
`

	err := os.WriteFile(configPath, []byte(yml), 0o644)
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "#22AA22", cfg.Display.Color)
	assert.Equal(t, "Timer", cfg.Timers.LabelPrefix)
	assert.True(t, cfg.Notifications.Enabled)
}

func TestInvalidColorRejected(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := `display:
  color: blue
`

	err := os.WriteFile(configPath, []byte(yml), 0o644)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}

func TestEmptyLabelPrefixRejected(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := `timers:
  label_prefix: ""
`

	err := os.WriteFile(configPath, []byte(yml), 0o644)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}

func TestValidColor(t *testing.T) {
	valid := []string{"#43B0DB", "#000000", "#abcdef"}
	for _, c := range valid {
		assert.True(t, config.ValidColor(c), c)
	}

	invalid := []string{"", "blue", "#FFF", "#43B0DBAA", "43B0DB", "#43B0GZ"}
	for _, c := range invalid {
		assert.False(t, config.ValidColor(c), c)
	}
}

func TestFailingOptionSurfaces(t *testing.T) {
	boom := errors.New("boom")

	_, err := config.New(func(*config.Config) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}
