// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package demo

import (
	"fmt"
	"time"

	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	"github.com/devblok/glsketch/model"
	glm "github.com/go-gl/mathgl/mgl32"
)

func init() {
	core.Register(core.Demo{Name: "mesh", Title: "Collada mesh", Mount: mountMesh})
}

// MeshModel is the Collada file the mesh demo draws
const MeshModel = "models/cube.dae"

// MeshSpin is the rotation speed of the mesh in radians per second
const MeshSpin = 0.8

var meshAxis = glm.Vec3{1, 1, 0}.Normalize()

// meshCamera returns view and projection for a surface of the given size
func meshCamera(width, height int) (view, projection glm.Mat4) {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	view = glm.LookAtV(glm.Vec3{0, 0, 5}, glm.Vec3{}, glm.Vec3{0, 1, 0})
	projection = glm.Perspective(glm.DegToRad(45), aspect, 0.1, 100)
	return
}

func mountMesh(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	data, err := s.Assets().Bytes(MeshModel)
	if err != nil {
		return nil, err
	}
	object, err := model.ImportColladaObject(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MeshModel, err)
	}
	vertices := object.Vertices()

	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("mesh.vert", "mesh.frag")
	if err != nil {
		return nil, err
	}
	uniforms, err := glr.UniformLocations(gl, program, []string{"u_mvp", "u_model"}, false)
	if err != nil {
		return nil, err
	}

	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	buffer, err := sc.res.CreateBuffer(model.VertexBytes(vertices), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	if err := bindAttributes(gl, program, vao, model.VertexAttributes(buffer)...); err != nil {
		return nil, err
	}

	sc.draw = func(elapsed time.Duration) error {
		w, h := s.Size()
		object.SetRotation(glm.HomogRotate3D(float32(elapsed.Seconds())*MeshSpin, meshAxis))

		u := model.Uniform{Model: model.Transform(object)}
		u.View, u.Projection = meshCamera(w, h)
		mvp := u.MVP()

		gl.ClearColor(0.05, 0.05, 0.08, 1)
		gl.Viewport(0, 0, w, h)
		gl.Enable(gfx.DEPTH_TEST)
		gl.Clear(gfx.COLOR_BUFFER_BIT | gfx.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)
		gl.UniformMatrix4fv(uniforms["u_mvp"], mvp[:])
		gl.UniformMatrix4fv(uniforms["u_model"], u.Model[:])
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, len(vertices))
		})
		gl.Disable(gfx.DEPTH_TEST)
		return nil
	}
	return sc, nil
}
