// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package demo_test

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/devblok/glsketch/assets"
	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/demo"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surface struct {
	width, height int
	loader        *assets.Loader
}

func (s surface) Size() (int, int)        { return s.width, s.height }
func (s surface) Assets() *assets.Loader { return s.loader }

func newSurface() surface {
	return surface{width: 640, height: 320, loader: assets.NewLoader(&demo.Assets)}
}

// newContext resolves every input the gallery's shaders declare
func newContext() *gltest.Context {
	gl := gltest.New()
	for name, loc := range map[string]gfx.Attrib{
		"a_pos":       0,
		"a_color":     1,
		"a_vertexPos": 2,
		"a_matrix":    3, // 3, 4 and 5
		"a_position":  6,
		"a_texCoord":  7,
		"aPosition":   8,
		"aNormal":     9,
		"aColor":      10,
		"aTexCoord":   11,
	} {
		gl.Attribs[name] = loc
	}
	for i, name := range []string{"u_time", "u_resolution", "u_image", "u_mvp", "u_model"} {
		gl.Uniforms[name] = gfx.Uniform{V: i}
	}
	gl.Extensions["EXT_color_buffer_float"] = true
	return gl
}

var kinds = []string{
	gltest.KindBuffer,
	gltest.KindVertexArray,
	gltest.KindTexture,
	gltest.KindFramebuffer,
	gltest.KindShader,
	gltest.KindProgram,
}

func assertNothingLive(t *testing.T, gl *gltest.Context) {
	t.Helper()
	for _, kind := range kinds {
		assert.Zero(t, gl.Live(kind), "live %s objects", kind)
	}
}

func mount(t *testing.T, gl *gltest.Context, name string) core.Scene {
	t.Helper()
	d, err := core.Lookup(name)
	require.NoError(t, err)
	scene, err := d.Mount(gl, newSurface())
	require.NoError(t, err)
	return scene
}

func TestRegistered(t *testing.T) {
	var names []string
	for _, d := range core.Demos() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Title, d.Name)
	}
	assert.Equal(t, []string{
		"blank",
		"mesh",
		"webgl-buffer-interleaved",
		"webgl-buffer-sub-data",
		"webgl-draw-elements",
		"webgl-extract-framebuffer",
		"webgl-framebuffer-bouncing",
		"webgl-instancing",
		"webgl-mat2d-transform",
		"webgl-scissor",
		"webgl-setup",
		"webgl-texture",
		"webgl-texture-data",
	}, names)
}

func TestDemosReleaseEverything(t *testing.T) {
	for _, d := range core.Demos() {
		t.Run(d.Name, func(t *testing.T) {
			gl := newContext()
			scene := mount(t, gl, d.Name)

			require.NoError(t, scene.Draw(0))
			require.NoError(t, scene.Draw(1200*time.Millisecond))
			assert.NotZero(t, gl.Calls["Clear"])
			assert.False(t, gl.BoundVertexArray().Valid(), "vertex array left bound")

			scene.Release()
			assertNothingLive(t, gl)
		})
	}
}

func TestStageCyclesDemos(t *testing.T) {
	gl := newContext()
	stage := core.NewStage(gl, newSurface())
	require.NoError(t, stage.Show("blank"))

	for range core.Demos() {
		require.NoError(t, stage.Step(1))
		require.NoError(t, stage.Frame(time.Now()))
	}
	assert.Equal(t, "blank", stage.Current())

	stage.Unmount()
	assertNothingLive(t, gl)
	assert.False(t, gl.BoundFramebuffer().Valid())
}

func TestSetup(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-setup")
	defer scene.Release()

	require.NoError(t, scene.Draw(250*time.Millisecond))
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, gfx.TRIANGLES, gl.Draws[0].Mode)
	assert.Equal(t, 3, gl.Draws[0].Count)
	assert.Equal(t, []float32{250}, gl.UniformValue(gl.Uniforms["u_time"]))
}

func TestInstancing(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-instancing")
	defer scene.Release()

	require.NoError(t, scene.Draw(0))
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, 3, gl.Draws[0].Count)
	assert.Equal(t, 3, gl.Draws[0].Instances)
	// a_pos and a_color advance per instance, a_vertexPos per vertex
	assert.Equal(t, 2, gl.Calls["VertexAttribDivisor"])
}

func TestTransformInstances(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-mat2d-transform")
	defer scene.Release()

	require.NoError(t, scene.Draw(0))
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, len(demo.Transforms), gl.Draws[0].Instances)
	assert.Equal(t, []float32{640, 320}, gl.UniformValue(gl.Uniforms["u_resolution"]))
	// a_matrix takes three columns and a_color one more location
	assert.Equal(t, 4, gl.Calls["VertexAttribDivisor"])
}

func TestTextureData(t *testing.T) {
	assert.Equal(t, []byte{128, 128, 128, 255, 0, 0, 0, 255}, demo.DataTexture([]byte{128, 0}))

	gl := newContext()
	scene := mount(t, gl, "webgl-texture-data")
	defer scene.Release()

	require.Equal(t, 1, gl.Live(gltest.KindTexture))
	assert.Equal(t, 1, gl.Calls["TexImage2D"])
	require.NoError(t, scene.Draw(0))
	assert.Equal(t, []float32{0}, gl.UniformValue(gl.Uniforms["u_image"]))
}

func TestTextureImages(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-texture")
	defer scene.Release()

	assert.Equal(t, len(demo.TextureImages), gl.Live(gltest.KindTexture))
	assert.Equal(t, len(demo.TextureImages), gl.Calls["TexImage2D"])
	assert.False(t, gl.BoundTexture(0, gfx.TEXTURE_2D).Valid())
}

func TestBouncingNeedsFloatTargets(t *testing.T) {
	gl := newContext()
	gl.Extensions = map[string]bool{}

	d, err := core.Lookup("webgl-framebuffer-bouncing")
	require.NoError(t, err)
	_, err = d.Mount(gl, newSurface())
	assert.True(t, errors.Is(err, demo.ErrMissingExtension))
	assertNothingLive(t, gl)
}

func TestBouncingPasses(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-framebuffer-bouncing")
	defer scene.Release()

	assert.Equal(t, 2, gl.Live(gltest.KindFramebuffer))
	assert.Equal(t, 3, gl.Live(gltest.KindProgram))
	// clip space positions and texture coordinates of the shared quad
	assert.Equal(t, 2, gl.Live(gltest.KindBuffer))

	require.NoError(t, scene.Draw(0))
	assert.Len(t, gl.Draws, 4)
	assert.Equal(t, [4]int{0, 0, 640, 320}, gl.CurrentViewport())
	assert.False(t, gl.BoundFramebuffer().Valid())
}

func TestMountFailureReleases(t *testing.T) {
	gl := newContext()
	gl.FailNext(gltest.KindFramebuffer)

	d, err := core.Lookup("webgl-framebuffer-bouncing")
	require.NoError(t, err)
	_, err = d.Mount(gl, newSurface())
	require.Error(t, err)
	assertNothingLive(t, gl)
}

func TestSubDataStreams(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-buffer-sub-data")
	defer scene.Release()

	require.NoError(t, scene.Draw(120*time.Millisecond))
	require.NoError(t, scene.Draw(130*time.Millisecond))
	assert.Equal(t, 1, gl.Calls["BufferSubData"])

	require.NoError(t, scene.Draw(160*time.Millisecond))
	assert.Equal(t, 2, gl.Calls["BufferSubData"])
	assert.False(t, gl.BoundBuffer(gfx.ARRAY_BUFFER).Valid())
}

func TestMesh(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "mesh")
	defer scene.Release()

	require.NoError(t, scene.Draw(time.Second))
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, 36, gl.Draws[0].Count)
	assert.Len(t, gl.UniformValue(gl.Uniforms["u_mvp"]), 16)
	assert.False(t, gl.IsEnabled(gfx.DEPTH_TEST))
}

func TestDrawElements(t *testing.T) {
	gl := newContext()
	stage := core.NewStage(gl, newSurface())
	require.NoError(t, stage.Show("webgl-draw-elements"))

	indices := gl.BoundBuffer(gfx.ELEMENT_ARRAY_BUFFER)
	require.True(t, indices.Valid())
	assert.Equal(t, gfx.Uint16Bytes(demo.ElementIndices), gl.Contents(indices))

	require.NoError(t, stage.Frame(time.Now()))
	require.Len(t, gl.Draws, 1)
	assert.True(t, gl.Draws[0].Elements)
	assert.Equal(t, len(demo.ElementIndices), gl.Draws[0].Count)

	stage.Unmount()
	assertNothingLive(t, gl)
	assert.False(t, gl.BoundBuffer(gfx.ELEMENT_ARRAY_BUFFER).Valid())
}

func TestScissor(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-scissor")
	defer scene.Release()

	require.NoError(t, scene.Draw(0))
	require.Len(t, gl.Draws, 1)
	assert.True(t, gl.Draws[0].Scissored)
	assert.Equal(t, demo.ScissorBox, gl.CurrentScissor())
	assert.False(t, gl.IsEnabled(gfx.SCISSOR_TEST))
}

func TestExtractFramebuffer(t *testing.T) {
	gl := newContext()
	scene := mount(t, gl, "webgl-extract-framebuffer")
	defer scene.Release()

	assert.Equal(t, 1, gl.Calls["ReadPixels"])
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, [4]int{0, 0, demo.ExtractSize, demo.ExtractSize}, gl.CurrentViewport())
	assert.False(t, gl.BoundFramebuffer().Valid())
	assert.Equal(t, 2, gl.Live(gltest.KindTexture))

	require.NoError(t, scene.Draw(0))
	assert.Len(t, gl.Draws, 2)
	assert.Equal(t, [4]int{0, 0, 640, 320}, gl.CurrentViewport())
	assert.Equal(t, 1, gl.Calls["ReadPixels"])
}

func TestMeanColor(t *testing.T) {
	assert.Equal(t, color.RGBA{}, demo.MeanColor(nil))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 255}, demo.MeanColor([]byte{
		200, 0, 0, 255,
		0, 100, 0, 255,
	}))
}
