package core

import (
	"context"
	"fmt"
	"time"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	log "github.com/sirupsen/logrus"
)

// NewStage creates an empty stage drawing on gl
func NewStage(gl gfx.Context, s Surface) *Stage {
	return &Stage{
		gl:      gl,
		surface: s,
	}
}

// Stage owns the graphics context and lets exactly one demo use it at
// a time. It is not safe for concurrent use.
type Stage struct {
	gl      gfx.Context
	surface Surface

	current   string
	attempted string
	scene     Scene
	mountedAt time.Time
}

// Current returns the name of the mounted demo, empty if none is
func (s *Stage) Current() string {
	return s.current
}

// Show unmounts the current demo and mounts the named one.
// When mounting fails the stage is left empty.
func (s *Stage) Show(name string) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	s.Unmount()
	s.attempted = d.Name

	log.WithField("demo", d.Name).Debug("Mounting demo")
	scene, err := d.Mount(s.gl, s.surface)
	if err != nil {
		glr.UnbindAll(s.gl)
		return fmt.Errorf("mount %s: %w", d.Name, err)
	}

	s.current = d.Name
	s.scene = scene
	s.mountedAt = time.Now()
	return nil
}

// Step mounts the demo n places away from the last one shown in name
// order, wrapping around at either end. A demo that failed to mount
// still counts as the last one shown.
func (s *Stage) Step(n int) error {
	demos := Demos()
	if len(demos) == 0 {
		return ErrUnknownDemo
	}

	idx := 0
	for i, d := range demos {
		if d.Name == s.attempted {
			idx = i
			break
		}
	}
	idx = ((idx+n)%len(demos) + len(demos)) % len(demos)
	return s.Show(demos[idx].Name)
}

// Unmount releases the current demo and resets all context bindings.
// It is a no-op on an empty stage.
func (s *Stage) Unmount() {
	if s.scene == nil {
		return
	}
	log.WithField("demo", s.current).Debug("Unmounting demo")

	s.scene.Release()
	glr.UnbindAll(s.gl)

	s.scene = nil
	s.current = ""
}

// Frame draws one frame of the mounted demo
func (s *Stage) Frame(now time.Time) error {
	if s.scene == nil {
		return nil
	}
	if err := s.scene.Draw(now.Sub(s.mountedAt)); err != nil {
		return fmt.Errorf("draw %s: %w", s.current, err)
	}
	return nil
}

// Run draws a frame on every tick of t's fps ticker and calls poll on
// every tick of its event ticker, until ctx is done or a frame fails.
// present is called after each frame, poll and present may be nil.
// The stage is unmounted before Run returns.
func (s *Stage) Run(ctx context.Context, t *Time, poll, present func()) error {
	defer s.Unmount()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.EventTicker().C:
			if poll != nil {
				poll()
			}
		case now := <-t.FpsTicker().C:
			if err := s.Frame(now); err != nil {
				return err
			}
			if present != nil {
				present()
			}
		}
	}
}
