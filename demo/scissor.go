// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package demo

import (
	"time"

	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
)

func init() {
	core.Register(core.Demo{Name: "webgl-scissor", Title: "Scissored gradient", Mount: mountScissor})
}

// ScissorBox is x, y, width and height of the only region
// webgl-scissor draws to, in pixels from the bottom left
var ScissorBox = [4]int{50, 150, 50, 50}

func mountScissor(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("quad.vert", "gradient.frag")
	if err != nil {
		return nil, err
	}
	vao, err := fullscreenQuad(sc, program)
	if err != nil {
		return nil, err
	}

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		gl.Viewport(0, 0, w, h)
		gl.Clear(gfx.COLOR_BUFFER_BIT)

		gl.Enable(gfx.SCISSOR_TEST)
		gl.Scissor(ScissorBox[0], ScissorBox[1], ScissorBox[2], ScissorBox[3])
		gl.Clear(gfx.COLOR_BUFFER_BIT)
		gl.UseProgram(program)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, glr.QuadVertices)
		})
		gl.Disable(gfx.SCISSOR_TEST)
		return nil
	}
	return sc, nil
}
