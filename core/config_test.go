package core_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/devblok/glsketch/core"
	"github.com/gobuffalo/envy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "glsketch")
	require.NoError(t, err)
	file := filepath.Join(dir, "glsketch.env")
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))
	return file, func() { os.RemoveAll(dir) }
}

func TestLoadConfigurationDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg, err := core.LoadConfiguration()
		require.NoError(t, err)
		assert.Equal(t, core.DefaultConfiguration, cfg)
	})
}

func TestLoadConfigurationFile(t *testing.T) {
	file, cleanup := writeEnv(t, `
GLSKETCH_WIDTH=1024
GLSKETCH_HEIGHT=768
GLSKETCH_FPS=30
GLSKETCH_VSYNC=false
GLSKETCH_DEMO=webgl-instancing
GLSKETCH_ASSETS=demo.kar
`)
	defer cleanup()

	envy.Temp(func() {
		cfg, err := core.LoadConfiguration(file)
		require.NoError(t, err)

		assert.Equal(t, 1024, cfg.Window.Width)
		assert.Equal(t, 768, cfg.Window.Height)
		assert.False(t, cfg.Window.VSync)
		assert.Equal(t, 30, cfg.Time.FramesPerSecond)
		assert.Equal(t, core.DefaultConfiguration.Time.EventPollDelay, cfg.Time.EventPollDelay)
		assert.Equal(t, "webgl-instancing", cfg.Demo)
		assert.Equal(t, "demo.kar", cfg.Assets.Archive)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestLoadConfigurationOverride(t *testing.T) {
	file, cleanup := writeEnv(t, "GLSKETCH_DEMO=blank\n")
	defer cleanup()

	envy.Temp(func() {
		envy.Set(core.EnvLogLevel, "debug")

		cfg, err := core.LoadConfiguration(file)
		require.NoError(t, err)
		assert.Equal(t, "blank", cfg.Demo)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoadConfigurationInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"width", "GLSKETCH_WIDTH=wide\n"},
		{"negative fps", "GLSKETCH_FPS=-1\n"},
		{"vsync", "GLSKETCH_VSYNC=sometimes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, cleanup := writeEnv(t, tt.content)
			defer cleanup()

			envy.Temp(func() {
				_, err := core.LoadConfiguration(file)
				assert.Error(t, err)
			})
		})
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	envy.Temp(func() {
		_, err := core.LoadConfiguration(filepath.Join(os.TempDir(), "does-not-exist.env"))
		assert.Error(t, err)
	})
}
