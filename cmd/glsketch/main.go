// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !js
// +build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"github.com/devblok/glsketch/assets"
	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/demo"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glcore"
	"github.com/devblok/glsketch/utility/kar"
	"github.com/gobuffalo/packd"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

var (
	envFile   = flag.String("env", "", "Read configuration from this dotenv file")
	demoName  = flag.String("demo", "", "Demo to show first, overrides "+core.EnvDemo)
	listDemos = flag.Bool("list", false, "List the demos and exit")
)

// surface is the SDL window the stage draws to
type surface struct {
	window *sdl.Window
	loader *assets.Loader
}

func (s surface) Size() (int, int) {
	w, h := s.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (s surface) Assets() *assets.Loader {
	return s.loader
}

func newWindow(cfg core.WindowConfiguration) (*sdl.Window, sdl.GLContext) {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		panic(err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		panic(fmt.Errorf("sdl.GLCreateContext(): %s: %w", err, gfx.ErrContextUnavailable))
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.WithError(err).Warn("Swap interval not supported")
	}
	return window, glContext
}

func main() {
	flag.Parse()

	if *listDemos {
		for _, d := range core.Demos() {
			fmt.Printf("%-28s %s\n", d.Name, d.Title)
		}
		return
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	configuration, err := core.LoadConfiguration(envFiles...)
	if err != nil {
		panic(err)
	}
	if *demoName != "" {
		configuration.Demo = *demoName
	}
	if level, err := log.ParseLevel(configuration.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithError(err).Warn("Keeping default log level")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}

	sources := []packd.Finder{}
	if configuration.Assets.Archive != "" {
		archive, err := kar.OpenFile(configuration.Assets.Archive)
		if err != nil {
			panic(err)
		}
		defer archive.Close()
		sources = append(sources, archive)
	}
	sources = append(sources, &demo.Assets)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window, glContext := newWindow(configuration.Window)
	defer window.Destroy()
	defer sdl.GLDeleteContext(glContext)

	gl, err := glcore.Init()
	if err != nil {
		panic(err)
	}
	log.WithFields(log.Fields{
		"renderer": gl.GetString(gfx.RENDERER),
		"version":  gl.GetString(gfx.VERSION),
	}).Info("Context created")

	loader := assets.NewLoader(sources...)
	loader.MaxImageSize = gl.GetInteger(gfx.MAX_TEXTURE_SIZE)

	stage := core.NewStage(gl, surface{window: window, loader: loader})
	if err := stage.Show(configuration.Demo); err != nil {
		panic(err)
	}

	timeService := core.NewTime(configuration.Time)
	defer timeService.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	step := func(n int) {
		if err := stage.Step(n); err != nil {
			log.WithError(err).Error("Switching demo failed")
			return
		}
		window.SetTitle(configuration.Window.Title + " - " + stage.Current())
	}
	window.SetTitle(configuration.Window.Title + " - " + stage.Current())

	poll := func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch et := event.(type) {
			case *sdl.KeyboardEvent:
				if et.Type != sdl.KEYDOWN {
					continue
				}
				switch et.Keysym.Sym {
				case sdl.K_ESCAPE:
					cancel()
				case sdl.K_RIGHT:
					step(1)
				case sdl.K_LEFT:
					step(-1)
				}
			case *sdl.QuitEvent:
				cancel()
			}
		}
	}

	var (
		frames    int
		lastCount = time.Now()
	)
	present := func() {
		window.GLSwap()
		frames++
		if since := time.Since(lastCount); since >= time.Second {
			log.WithFields(log.Fields{
				"demo": stage.Current(),
				"fps":  float64(frames) / since.Seconds(),
			}).Debug("Frame count")
			frames, lastCount = 0, time.Now()
		}
	}

	if err := stage.Run(ctx, timeService, poll, present); err != nil {
		log.WithError(err).Error("Gallery stopped")
		return
	}
	log.Info("Event loop exited")
}
