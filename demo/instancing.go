// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package demo

import (
	"math"
	"time"

	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	glm "github.com/go-gl/mathgl/mgl32"
)

func init() {
	core.Register(core.Demo{Name: "webgl-instancing", Title: "Instanced triangles", Mount: mountInstancing})
	core.Register(core.Demo{Name: "webgl-mat2d-transform", Title: "2D transforms as instance matrices", Mount: mountTransform})
}

// local offsets of the instanced triangle in clip space
var instanceTriangle = []float32{
	0, 0,
	-0.2, -0.4,
	0.2, -0.4,
}

// per instance: position xy, color rgb
var instances = []float32{
	-0.7, 0.9, 1, 1, 0,
	0, 0.2, 0, 1, 1,
	0.7, -0.5, 1, 0, 1,
}

func mountInstancing(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("instancing.vert", "color.frag")
	if err != nil {
		return nil, err
	}
	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	vertices, err := sc.res.CreateBuffer(gfx.Float32Bytes(instanceTriangle), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	perInstance, err := sc.res.CreateBuffer(gfx.Float32Bytes(instances), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}

	attributes := append([]glr.Attribute{
		{Name: "a_vertexPos", Buffer: vertices, Size: 2},
	}, interleavedAttributes(perInstance, glr.PerInstance)...)
	if err := bindAttributes(gl, program, vao, attributes...); err != nil {
		return nil, err
	}

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArraysInstanced(gfx.TRIANGLES, 0, len(instanceTriangle)/2, len(instances)/interleavedFloats)
		})
		return nil
	}
	return sc, nil
}

// Transform is one instance of the transform demo, a 2D affine
// matrix in pixels and the color to fill with
type Transform struct {
	M   glm.Mat3
	RGB glm.Vec3
}

// Transforms are the instances drawn by webgl-mat2d-transform
var Transforms = []Transform{
	{M: glm.Ident3(), RGB: glm.Vec3{1, 1, 1}},
	{M: glm.Scale2D(0.5, 0.5), RGB: glm.Vec3{1, 0, 0}},
	{M: glm.Translate2D(100, 50), RGB: glm.Vec3{0, 0.5, 0}},
	{M: glm.HomogRotate2D(math.Pi / 3), RGB: glm.Vec3{0.3, 0.3, 1}},
}

// one mat3 followed by a color
const transformFloats = 9 + 3

// transformData packs Transforms column major, matching the
// consecutive locations a mat3 attribute occupies
func transformData(transforms []Transform) []float32 {
	data := make([]float32, 0, len(transforms)*transformFloats)
	for _, t := range transforms {
		data = append(data, t.M[:]...)
		data = append(data, t.RGB[:]...)
	}
	return data
}

func mountTransform(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("transform.vert", "color.frag")
	if err != nil {
		return nil, err
	}
	uResolution, err := glr.UniformLocation(gl, program, "u_resolution", false)
	if err != nil {
		return nil, err
	}

	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	w, h := s.Size()
	triangle := []float32{0, 0, float32(w) * 0.1, 0, 0, float32(h) * 0.1}
	vertices, err := sc.res.CreateBuffer(gfx.Float32Bytes(triangle), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	perInstance, err := sc.res.CreateBuffer(gfx.Float32Bytes(transformData(Transforms)), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}

	err = bindAttributes(gl, program, vao,
		glr.Attribute{Name: "a_vertexPos", Buffer: vertices, Size: 2},
		glr.Attribute{
			Name:       "a_matrix",
			Buffer:     perInstance,
			Size:       3,
			MatrixSize: 3,
			Stride:     transformFloats * 4,
			Instanced:  glr.PerInstance,
		},
		glr.Attribute{
			Name:      "a_color",
			Buffer:    perInstance,
			Size:      3,
			Stride:    transformFloats * 4,
			Offset:    9 * 4,
			Instanced: glr.PerInstance,
		},
	)
	if err != nil {
		return nil, err
	}

	sc.draw = func(time.Duration) error {
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, w, h)

		gl.UseProgram(program)
		gl.Uniform2f(uResolution, float32(w), float32(h))
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArraysInstanced(gfx.TRIANGLES, 0, len(triangle)/2, len(Transforms))
		})
		return nil
	}
	return sc, nil
}
