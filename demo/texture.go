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
	core.Register(core.Demo{Name: "webgl-texture", Title: "Image textures", Mount: mountTexture})
	core.Register(core.Demo{Name: "webgl-texture-data", Title: "Data texture", Mount: mountTextureData})
}

// TextureImages are cycled through by webgl-texture, one per second
var TextureImages = []string{
	"textures/tile-0.png",
	"textures/tile-1.png",
	"textures/tile-2.png",
}

var quadTexCoords = []float32{0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 1}

func quadPositions(x, y, w, h float32) []float32 {
	x2, y2 := x+w, y+h
	return []float32{x, y, x2, y, x, y2, x, y2, x2, y, x2, y2}
}

// texturedQuad is a program drawing a pixel space quad with
// one sampled texture, shared by the texture demos
type texturedQuad struct {
	program     gfx.Program
	vao         gfx.VertexArray
	uResolution gfx.Uniform
	uImage      gfx.Uniform
}

func newTexturedQuad(sc *scene, width, height int) (*texturedQuad, error) {
	program, err := sc.program("texture.vert", "texture.frag")
	if err != nil {
		return nil, err
	}
	uniforms, err := glr.UniformLocations(sc.gl, program, []string{"u_resolution", "u_image"}, false)
	if err != nil {
		return nil, err
	}

	vao, err := sc.res.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	positions, err := sc.res.CreateBuffer(gfx.Float32Bytes(quadPositions(0, 0, float32(width), float32(height))), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	texCoords, err := sc.res.CreateBuffer(gfx.Float32Bytes(quadTexCoords), gfx.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	err = bindAttributes(sc.gl, program, vao,
		glr.Attribute{Name: "a_position", Buffer: positions, Size: 2},
		glr.Attribute{Name: "a_texCoord", Buffer: texCoords, Size: 2},
	)
	if err != nil {
		return nil, err
	}

	return &texturedQuad{
		program:     program,
		vao:         vao,
		uResolution: uniforms["u_resolution"],
		uImage:      uniforms["u_image"],
	}, nil
}

func (q *texturedQuad) draw(gl gfx.Context, texture gfx.Texture, width, height int) {
	gl.ClearColor(0, 0, 0, 0)
	viewport(gl, width, height)

	gl.UseProgram(q.program)
	gl.Uniform2f(q.uResolution, float32(width), float32(height))
	gl.Uniform1i(q.uImage, 0)

	gl.ActiveTexture(gfx.TEXTURE0)
	gl.BindTexture(gfx.TEXTURE_2D, texture)
	glr.WithVertexArray(gl, q.vao, func() {
		gl.DrawArrays(gfx.TRIANGLES, 0, len(quadTexCoords)/2)
	})
	gl.BindTexture(gfx.TEXTURE_2D, gfx.Texture{})
}

func mountTexture(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	if err := s.Assets().Preload(TextureImages...); err != nil {
		return nil, err
	}

	w, h := s.Size()
	quad, err := newTexturedQuad(sc, w, h)
	if err != nil {
		return nil, err
	}

	textures := make([]gfx.Texture, 0, len(TextureImages))
	for _, name := range TextureImages {
		img, err := s.Assets().Image(name)
		if err != nil {
			return nil, err
		}
		texture, err := sc.res.CreateTexture()
		if err != nil {
			return nil, err
		}
		textures = append(textures, glr.UploadTexture(gl, texture, img, glr.TextureOptions{Nearest: true}))
	}

	sc.draw = func(elapsed time.Duration) error {
		current := int(elapsed/time.Second) % len(textures)
		quad.draw(gl, textures[current], w, h)
		return nil
	}
	return sc, nil
}

// DataTextureWidth and DataTextureHeight are the size of the
// texture webgl-texture-data builds
const (
	DataTextureWidth  = 4
	DataTextureHeight = 2
)

var dataTextureLevels = []byte{128, 64, 128, 0, 192, 0, 64, 128}

// DataTexture expands grey levels to opaque RGBA texels
func DataTexture(levels []byte) []byte {
	texels := make([]byte, 0, len(levels)*4)
	for _, l := range levels {
		texels = append(texels, l, l, l, 255)
	}
	return texels
}

func mountTextureData(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	w, h := s.Size()
	quad, err := newTexturedQuad(sc, w, h)
	if err != nil {
		return nil, err
	}

	texture, err := sc.res.CreateTexture()
	if err != nil {
		return nil, err
	}
	glr.UploadTextureData(gl, texture, glr.TextureData{
		Width:          DataTextureWidth,
		Height:         DataTextureHeight,
		InternalFormat: gfx.RGBA8,
		Format:         gfx.RGBA,
		Type:           gfx.UNSIGNED_BYTE,
		Pixels:         DataTexture(dataTextureLevels),
	}, glr.TextureOptions{Nearest: true})

	sc.draw = func(time.Duration) error {
		quad.draw(gl, texture, w, h)
		return nil
	}
	return sc, nil
}
