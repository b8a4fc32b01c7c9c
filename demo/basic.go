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
	core.Register(core.Demo{Name: "blank", Title: "Blank", Mount: mountBlank})
	core.Register(core.Demo{Name: "webgl-setup", Title: "WebGL setup", Mount: mountSetup})
	core.Register(core.Demo{Name: "webgl-buffer-interleaved", Title: "Interleaved buffer", Mount: mountInterleaved})
	core.Register(core.Demo{Name: "webgl-buffer-sub-data", Title: "Partial buffer updates", Mount: mountSubData})
}

// BlankColor is what the blank demo clears to
var BlankColor = [4]float32{0.1, 0.1, 0.12, 1}

func mountBlank(gl gfx.Context, s core.Surface) (core.Scene, error) {
	sc := newScene(gl)
	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(BlankColor[0], BlankColor[1], BlankColor[2], BlankColor[3])
		viewport(gl, w, h)
		return nil
	}
	return sc, nil
}

var setupVertices = []float32{
	0, 0,
	1, 0,
	0, 1,
}

func mountSetup(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("setup.vert", "setup.frag")
	if err != nil {
		return nil, err
	}

	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	buffer, err := sc.res.CreateBuffer(gfx.Float32Bytes(setupVertices), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	glr.WithVertexArray(gl, vao, func() {
		err = glr.CreateAttribute(gl, program, glr.Attribute{Name: "a_pos", Buffer: buffer, Size: 2})
	})
	if err != nil {
		return nil, err
	}

	// the time uniform is dropped by compilers that fold the wave away
	uTime, err := glr.UniformLocation(gl, program, "u_time", true)
	if err != nil {
		return nil, err
	}

	sc.draw = func(elapsed time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		gl.Uniform1f(uTime, float32(elapsed.Milliseconds()))
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, len(setupVertices)/2)
		})
		return nil
	}
	return sc, nil
}

// interleaved vertices: clip position xy, color rgb
const interleavedFloats = 5

var interleavedVertices = []float32{
	-0.7, 0.9, 1, 1, 0,
	-0.9, 0.5, 1, 0, 0,
	-0.5, 0.5, 1, 1, 1,

	0, 0.2, 0, 1, 1,
	-0.2, -0.2, 0, 1, 0,
	0.2, -0.2, 1, 1, 1,

	0.7, -0.5, 0, 1, 1,
	0.5, -0.9, 0, 0, 1,
	0.9, -0.9, 1, 1, 1,
}

// interleavedAttributes describes a_pos and a_color in one buffer
func interleavedAttributes(buffer gfx.Buffer, instanced int) []glr.Attribute {
	return []glr.Attribute{
		{
			Name:      "a_pos",
			Buffer:    buffer,
			Size:      2,
			Stride:    interleavedFloats * 4,
			Instanced: instanced,
		},
		{
			Name:      "a_color",
			Buffer:    buffer,
			Size:      3,
			Stride:    interleavedFloats * 4,
			Offset:    2 * 4,
			Instanced: instanced,
		},
	}
}

func bindAttributes(gl gfx.Context, p gfx.Program, vao gfx.VertexArray, attributes ...glr.Attribute) (err error) {
	glr.WithVertexArray(gl, vao, func() {
		for _, a := range attributes {
			if err = glr.CreateAttribute(gl, p, a); err != nil {
				return
			}
		}
	})
	return
}

func mountInterleaved(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
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
	buffer, err := sc.res.CreateBuffer(gfx.Float32Bytes(interleavedVertices), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	if err := bindAttributes(gl, program, vao, interleavedAttributes(buffer, 0)...); err != nil {
		return nil, err
	}

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, len(interleavedVertices)/interleavedFloats)
		})
		return nil
	}
	return sc, nil
}

// SubDataInterval is how often the sub-data demo moves its vertices
const SubDataInterval = 50 * time.Millisecond

// x coordinates of the middle triangle
var subDataIndices = []int{15, 20, 25}

func mountSubData(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
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

	vertices := append([]float32(nil), interleavedVertices...)
	buffer, err := sc.res.CreateBuffer(gfx.Float32Bytes(vertices), gfx.DYNAMIC_DRAW)
	if err != nil {
		return nil, err
	}
	if err := bindAttributes(gl, program, vao, interleavedAttributes(buffer, 0)...); err != nil {
		return nil, err
	}

	var steps int64
	first, last := subDataIndices[0], subDataIndices[len(subDataIndices)-1]+interleavedFloats
	sc.draw = func(elapsed time.Duration) error {
		if due := int64(elapsed / SubDataInterval); due > steps {
			for ; steps < due; steps++ {
				for _, i := range subDataIndices {
					if vertices[i] += 0.01; vertices[i] > 1 {
						vertices[i] = -1
					}
				}
			}
			gl.BindBuffer(gfx.ARRAY_BUFFER, buffer)
			gl.BufferSubData(gfx.ARRAY_BUFFER, first*4, gfx.Float32Bytes(vertices[first:last]))
			gl.BindBuffer(gfx.ARRAY_BUFFER, gfx.Buffer{})
		}

		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, len(vertices)/interleavedFloats)
		})
		return nil
	}
	return sc, nil
}
