// Package core holds what every demo of the gallery shares: configuration,
// time services, the demo registry and the Stage that owns the context.
package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/devblok/glsketch/assets"
	"github.com/devblok/glsketch/gfx"
)

// ErrUnknownDemo is returned for names nothing was registered under
var ErrUnknownDemo = errors.New("unknown demo")

// Surface is what a demo draws to
type Surface interface {
	// Size returns the drawable size in pixels
	Size() (width, height int)

	// Assets returns the loader demos read shaders and images from
	Assets() *assets.Loader
}

// Scene is a mounted demo
type Scene interface {
	gfx.Releasable

	// Draw renders one frame, elapsed is the time since mounting
	Draw(elapsed time.Duration) error
}

// MountFunc sets a demo up on gl. Every GPU object it creates must be
// freed again by Release of the returned Scene.
type MountFunc func(gl gfx.Context, s Surface) (Scene, error)

// Demo is a registered gallery entry
type Demo struct {
	Name  string
	Title string
	Mount MountFunc
}

var registry = struct {
	sync.RWMutex
	demos map[string]Demo
}{demos: make(map[string]Demo)}

// Register makes a demo available by its name.
// It panics if the name is taken or Mount is nil.
func Register(d Demo) {
	registry.Lock()
	defer registry.Unlock()

	if d.Mount == nil {
		panic("core: Register mount func is nil for " + d.Name)
	}
	if _, dup := registry.demos[d.Name]; dup {
		panic("core: Register called twice for demo " + d.Name)
	}
	registry.demos[d.Name] = d
}

// Lookup finds a registered demo
func Lookup(name string) (Demo, error) {
	registry.RLock()
	defer registry.RUnlock()

	d, ok := registry.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%q: %w", name, ErrUnknownDemo)
	}
	return d, nil
}

// Demos returns every registered demo sorted by name
func Demos() []Demo {
	registry.RLock()
	defer registry.RUnlock()

	demos := make([]Demo, 0, len(registry.demos))
	for _, d := range registry.demos {
		demos = append(demos, d)
	}
	sort.Slice(demos, func(i, j int) bool { return demos[i].Name < demos[j].Name })
	return demos
}
