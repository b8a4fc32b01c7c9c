// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr_test

import (
	"errors"
	"testing"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	"github.com/devblok/glsketch/gfx/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoundVertexArray(t *testing.T, attribs map[string]gfx.Attrib) (*gltest.Context, *glr.Resources) {
	gl := gltest.New()
	for name, loc := range attribs {
		gl.Attribs[name] = loc
	}
	res := glr.NewResources(gl)
	vao, err := res.CreateVertexArray()
	require.NoError(t, err)
	gl.BindVertexArray(vao)
	return gl, res
}

func TestCreateAttributeSingle(t *testing.T) {
	gl, res := newBoundVertexArray(t, map[string]gfx.Attrib{"a_pos": 0})

	buffer, err := res.CreateBuffer(gfx.Float32Bytes([]float32{0, 0, 1, 0, 0, 1}), 0)
	require.NoError(t, err)

	err = glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{
		Name:   "a_pos",
		Buffer: buffer,
		Size:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, []gfx.Attrib{0}, gl.EnabledAttribs())
	state := gl.Attrib(0)
	assert.Equal(t, buffer, state.Buffer)
	assert.Equal(t, 2, state.Size)
	assert.Equal(t, gfx.FLOAT, state.Type)
	assert.False(t, state.Normalized)
	assert.Zero(t, state.Stride)
	assert.Zero(t, state.Offset)
	assert.Zero(t, state.Divisor)
	assert.False(t, gl.BoundBuffer(gfx.ARRAY_BUFFER).Valid())
}

func TestCreateAttributeDefaults(t *testing.T) {
	gl, res := newBoundVertexArray(t, map[string]gfx.Attrib{"a_value": 5})
	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)

	require.NoError(t, glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{Name: "a_value", Buffer: buffer}))

	state := gl.Attrib(5)
	assert.True(t, state.Enabled)
	assert.Equal(t, 1, state.Size)
	assert.Equal(t, gfx.FLOAT, state.Type)
	assert.Equal(t, 1, gl.Calls["EnableVertexAttribArray"])
	assert.Zero(t, gl.Calls["VertexAttribDivisor"])
}

func TestCreateAttributeMatrix(t *testing.T) {
	gl, res := newBoundVertexArray(t, map[string]gfx.Attrib{"a_matrix": 2})
	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)

	err = glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{
		Name:       "a_matrix",
		Buffer:     buffer,
		Size:       3,
		MatrixSize: 3,
		Stride:     48,
	})
	require.NoError(t, err)

	assert.Equal(t, []gfx.Attrib{2, 3, 4}, gl.EnabledAttribs())
	for i, loc := range []gfx.Attrib{2, 3, 4} {
		state := gl.Attrib(loc)
		assert.Equal(t, 3, state.Size)
		assert.Equal(t, 48, state.Stride)
		assert.Equal(t, i*3*4, state.Offset, "column %d", i)
	}
}

func TestCreateAttributeMatrixBaseOffset(t *testing.T) {
	gl, res := newBoundVertexArray(t, map[string]gfx.Attrib{"a_matrix": 0})
	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)

	require.NoError(t, glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{
		Name:       "a_matrix",
		Buffer:     buffer,
		Size:       4,
		MatrixSize: 4,
		Offset:     8,
	}))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 8+i*16, gl.Attrib(gfx.Attrib(i)).Offset)
	}
}

func TestCreateAttributeInstanced(t *testing.T) {
	tests := []struct {
		name      string
		instanced int
		matrix    int
	}{
		{"per instance", glr.PerInstance, 1},
		{"every third instance", 3, 1},
		{"matrix per instance", glr.PerInstance, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gl, res := newBoundVertexArray(t, map[string]gfx.Attrib{"a_attr": 1})
			buffer, err := res.CreateBuffer(nil, 0)
			require.NoError(t, err)

			require.NoError(t, glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{
				Name:       "a_attr",
				Buffer:     buffer,
				Size:       3,
				MatrixSize: tt.matrix,
				Instanced:  tt.instanced,
			}))

			locs := gl.EnabledAttribs()
			assert.Len(t, locs, tt.matrix)
			for _, loc := range locs {
				assert.Equal(t, tt.instanced, gl.Attrib(loc).Divisor)
			}
			assert.Equal(t, tt.matrix, gl.Calls["VertexAttribDivisor"])
		})
	}
}

func TestCreateAttributeMissing(t *testing.T) {
	gl, res := newBoundVertexArray(t, nil)
	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)

	err = glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{Name: "a_gone", Buffer: buffer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, glr.ErrAttributeNotFound))
	assert.Contains(t, err.Error(), "a_gone")

	assert.Empty(t, gl.EnabledAttribs())
	assert.Zero(t, gl.Calls["BindBuffer"])
}

func TestCreateAttributeOptional(t *testing.T) {
	gl, res := newBoundVertexArray(t, nil)
	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)

	err = glr.CreateAttribute(gl, gfx.Program{V: 1}, glr.Attribute{Name: "a_gone", Buffer: buffer, Optional: true})
	assert.NoError(t, err)
	assert.Empty(t, gl.EnabledAttribs())
}

func TestWithVertexArray(t *testing.T) {
	gl := gltest.New()
	vao := gfx.VertexArray{V: 7}

	var inside gfx.VertexArray
	glr.WithVertexArray(gl, vao, func() {
		inside = gl.BoundVertexArray()
	})
	assert.Equal(t, vao, inside)
	assert.False(t, gl.BoundVertexArray().Valid())
}

func TestUnbindAll(t *testing.T) {
	gl := gltest.New()
	res := glr.NewResources(gl)

	for unit := 0; unit < 4; unit++ {
		texture, err := res.CreateTexture()
		require.NoError(t, err)
		gl.ActiveTexture(gfx.TEXTURE0 + gfx.Enum(unit))
		gl.BindTexture(gfx.TEXTURE_2D, texture)
	}
	cube, err := res.CreateTexture()
	require.NoError(t, err)
	gl.BindTexture(gfx.TEXTURE_CUBE_MAP, cube)

	buffer, err := res.CreateBuffer(nil, 0)
	require.NoError(t, err)
	gl.BindBuffer(gfx.ARRAY_BUFFER, buffer)
	gl.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, buffer)
	fbo, err := res.CreateFramebuffer()
	require.NoError(t, err)
	gl.BindFramebuffer(gfx.FRAMEBUFFER, fbo)
	gl.BindRenderbuffer(gfx.RENDERBUFFER, gfx.Renderbuffer{V: 3})

	glr.UnbindAll(gl)

	for unit := 0; unit < gl.MaxTextureUnits; unit++ {
		assert.False(t, gl.BoundTexture(unit, gfx.TEXTURE_2D).Valid(), "unit %d", unit)
		assert.False(t, gl.BoundTexture(unit, gfx.TEXTURE_CUBE_MAP).Valid(), "unit %d", unit)
	}
	assert.Equal(t, 0, gl.ActiveUnit())
	assert.False(t, gl.BoundBuffer(gfx.ARRAY_BUFFER).Valid())
	assert.False(t, gl.BoundBuffer(gfx.ELEMENT_ARRAY_BUFFER).Valid())
	assert.False(t, gl.BoundFramebuffer().Valid())
	assert.False(t, gl.BoundRenderbuffer().Valid())
}

func TestUnbindAllReadsUnitCount(t *testing.T) {
	gl := gltest.New()
	gl.MaxTextureUnits = 8

	glr.UnbindAll(gl)
	// one activation per unit plus the final reset to unit 0
	assert.Equal(t, 9, gl.Calls["ActiveTexture"])
	assert.Equal(t, 16, gl.Calls["BindTexture"])
}
