package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfiguration.
const (
	EnvWidth          = "GLSKETCH_WIDTH"
	EnvHeight         = "GLSKETCH_HEIGHT"
	EnvVSync          = "GLSKETCH_VSYNC"
	EnvFps            = "GLSKETCH_FPS"
	EnvEventPollDelay = "GLSKETCH_EVENT_POLL_MS"
	EnvDemo           = "GLSKETCH_DEMO"
	EnvAssets         = "GLSKETCH_ASSETS"
	EnvLogLevel       = "GLSKETCH_LOG_LEVEL"
)

// Configuration defines a global gallery configuration setting
type Configuration struct {
	Time   TimeConfiguration
	Window WindowConfiguration
	Assets AssetsConfiguration

	// Demo is the name of the demo shown on start
	Demo string

	// LogLevel is parsed by logrus.ParseLevel
	LogLevel string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between input polls in milliseconds
	EventPollDelay int
}

// WindowConfiguration is used to configure the window the demos draw to
type WindowConfiguration struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// AssetsConfiguration tells where demo assets come from
type AssetsConfiguration struct {
	// Archive is a kar archive searched before the embedded assets,
	// empty to use only the embedded ones
	Archive string
}

// DefaultConfiguration is used when no environment overrides a value
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  10,
	},
	Window: WindowConfiguration{
		Title:  "glsketch",
		Width:  800,
		Height: 600,
		VSync:  true,
	},
	Demo:     "webgl-setup",
	LogLevel: "info",
}

// LoadConfiguration reads the given dotenv files into the environment
// and resolves the configuration from it. Variables already set in the
// process environment are not overridden by the files.
func LoadConfiguration(files ...string) (Configuration, error) {
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return Configuration{}, fmt.Errorf("godotenv.Read(%s): %w", file, err)
		}
		for key, value := range values {
			if _, ok := os.LookupEnv(key); ok {
				continue
			}
			envy.Set(key, value)
		}
	}

	def := DefaultConfiguration
	cfg := Configuration{
		Window: WindowConfiguration{Title: def.Window.Title},
		Assets: AssetsConfiguration{
			Archive: envy.Get(EnvAssets, def.Assets.Archive),
		},
		Demo:     envy.Get(EnvDemo, def.Demo),
		LogLevel: envy.Get(EnvLogLevel, def.LogLevel),
	}

	var err error
	if cfg.Window.Width, err = envInt(EnvWidth, def.Window.Width); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Height, err = envInt(EnvHeight, def.Window.Height); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.VSync, err = envBool(EnvVSync, def.Window.VSync); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.FramesPerSecond, err = envInt(EnvFps, def.Time.FramesPerSecond); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.EventPollDelay, err = envInt(EnvEventPollDelay, def.Time.EventPollDelay); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%s=%q: not a positive number", key, v)
	}
	return i, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return b, nil
}
