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
	core.Register(core.Demo{Name: "webgl-draw-elements", Title: "Indexed mesh", Mount: mountElements})
}

// a 3x2 grid of vertices, position xy and color rgb
var elementVertices = []float32{
	0, 0, 0, 0, 0,
	0.3, 0, 1, 0, 0,
	0.6, 0, 0, 1, 0,
	0, 0.3, 0, 0, 1,
	0.3, 0.3, 1, 1, 0,
	0.6, 0.3, 0, 1, 1,
}

// ElementIndices are the four faces webgl-draw-elements draws
var ElementIndices = []uint16{
	0, 1, 3,
	3, 1, 4,
	1, 2, 4,
	2, 4, 5,
}

func mountElements(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("color.vert", "color.frag")
	if err != nil {
		return nil, err
	}
	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	vertices, err := sc.res.CreateBuffer(gfx.Float32Bytes(elementVertices), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	indices, err := sc.res.CreateBuffer(nil, gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}

	// the element binding is part of the vertex array
	glr.WithVertexArray(gl, vao, func() {
		for _, a := range interleavedAttributes(vertices, 0) {
			if err = glr.CreateAttribute(gl, program, a); err != nil {
				return
			}
		}
		gl.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, indices)
		gl.BufferData(gfx.ELEMENT_ARRAY_BUFFER, gfx.Uint16Bytes(ElementIndices), gfx.STATIC_DRAW)
	})
	if err != nil {
		return nil, err
	}

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawElements(gfx.TRIANGLES, len(ElementIndices), gfx.UNSIGNED_SHORT, 0)
		})
		return nil
	}
	return sc, nil
}
