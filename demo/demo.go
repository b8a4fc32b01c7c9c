// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package demo holds the sketches of the gallery. Every demo registers
// itself with core on init, importing the package is enough to list them.
package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	"github.com/gobuffalo/packr"
)

// ErrMissingExtension is returned when a demo needs a context
// extension that is not available.
var ErrMissingExtension = errors.New("missing context extension")

// Boxes with the shader sources and the bundled demo assets
var (
	Shaders packr.Box
	Assets  packr.Box
)

func init() {
	Shaders = packr.NewBox("./shaders")
	Assets = packr.NewBox("./assets")
}

// scene is the Scene most demos return: a tracker for the GPU objects
// plus the programs, which the tracker does not own.
type scene struct {
	gl       gfx.Context
	res      *glr.Resources
	programs []gfx.Program
	draw     func(elapsed time.Duration) error
}

func newScene(gl gfx.Context) *scene {
	return &scene{
		gl:  gl,
		res: glr.NewResources(gl),
	}
}

// program compiles shaders/<vert> and shaders/<frag> into a program
// that is deleted together with the scene.
func (s *scene) program(vert, frag string) (gfx.Program, error) {
	vs, err := Shaders.FindString(vert)
	if err != nil {
		return gfx.Program{}, fmt.Errorf("shader %s: %w", vert, err)
	}
	fs, err := Shaders.FindString(frag)
	if err != nil {
		return gfx.Program{}, fmt.Errorf("shader %s: %w", frag, err)
	}

	p, err := glr.CreateProgramForShaders(s.gl, vs, fs)
	if err != nil {
		return gfx.Program{}, err
	}
	s.programs = append(s.programs, p)
	return p, nil
}

// Draw implements core.Scene
func (s *scene) Draw(elapsed time.Duration) error {
	if s.draw == nil {
		return nil
	}
	return s.draw(elapsed)
}

// Release implements gfx.Releasable
func (s *scene) Release() {
	for _, p := range s.programs {
		s.gl.DeleteProgram(p)
	}
	s.programs = nil
	s.res.Release()
}

// releaseOnError frees what a failed mount created so far
func (s *scene) releaseOnError(err *error) {
	if *err != nil {
		s.Release()
	}
}

// viewport covers the whole surface and clears it
func viewport(gl gfx.Context, width, height int) {
	gl.Viewport(0, 0, width, height)
	gl.Clear(gfx.COLOR_BUFFER_BIT)
}

// fullscreenQuad creates a vertex array with the clip space quad of
// glr bound to the aPosition and aTexCoord inputs of p
func fullscreenQuad(sc *scene, p gfx.Program) (gfx.VertexArray, error) {
	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return vao, err
	}
	glr.WithVertexArray(sc.gl, vao, func() {
		err = glr.CreateFullscreenQuadAttributes(sc.gl, p, sc.res)
	})
	return vao, err
}
