// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package demo

import (
	"fmt"
	"image/color"
	"time"

	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	log "github.com/sirupsen/logrus"
)

func init() {
	core.Register(core.Demo{Name: "webgl-framebuffer-bouncing", Title: "Framebuffer bouncing", Mount: mountBouncing})
	core.Register(core.Demo{Name: "webgl-extract-framebuffer", Title: "Read back a framebuffer", Mount: mountExtract})
}

// BounceSize is the edge of the square render targets
const BounceSize = 8

const colorBufferFloat = "EXT_color_buffer_float"

// renderTarget is a texture with a framebuffer around it
type renderTarget struct {
	texture gfx.Texture
	fbo     gfx.Framebuffer
}

func newRenderTarget(sc *scene, data glr.TextureData, opts glr.TextureOptions) (renderTarget, error) {
	var rt renderTarget
	texture, err := sc.res.CreateTexture()
	if err != nil {
		return rt, err
	}
	glr.UploadTextureData(sc.gl, texture, data, opts)

	fbo, err := sc.res.CreateFramebuffer()
	if err != nil {
		return rt, err
	}
	sc.gl.BindFramebuffer(gfx.FRAMEBUFFER, fbo)
	sc.gl.FramebufferTexture2D(gfx.FRAMEBUFFER, gfx.COLOR_ATTACHMENT0, gfx.TEXTURE_2D, texture, 0)
	err = glr.CheckFramebuffer(sc.gl, gfx.FRAMEBUFFER)
	sc.gl.BindFramebuffer(gfx.FRAMEBUFFER, gfx.Framebuffer{})

	return renderTarget{texture: texture, fbo: fbo}, err
}

func mountBouncing(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	if !gl.GetExtension(colorBufferFloat) {
		return nil, fmt.Errorf("%s: %w", colorBufferFloat, ErrMissingExtension)
	}

	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	gradient, err := sc.program("quad.vert", "gradient.frag")
	if err != nil {
		return nil, err
	}
	hueCycle, err := sc.program("quad.vert", "huecycle.frag")
	if err != nil {
		return nil, err
	}
	tile, err := sc.program("quad.vert", "tile.frag")
	if err != nil {
		return nil, err
	}

	// the quad inputs are pinned in quad.vert, one vertex array
	// serves all three programs
	vao, err := fullscreenQuad(sc, gradient)
	if err != nil {
		return nil, err
	}

	// tiling samples outside the unit square
	halfFloat := glr.TextureData{
		Width:          BounceSize,
		Height:         BounceSize,
		InternalFormat: gfx.RGBA16F,
		Format:         gfx.RGBA,
		Type:           gfx.HALF_FLOAT,
	}
	first, err := newRenderTarget(sc, halfFloat, glr.TextureOptions{Nearest: true, Repeat: true})
	if err != nil {
		return nil, err
	}
	second, err := newRenderTarget(sc, halfFloat, glr.TextureOptions{Nearest: true, Repeat: true})
	if err != nil {
		return nil, err
	}

	pass := func(p gfx.Program, src gfx.Texture, dst gfx.Framebuffer, width, height int) {
		gl.BindFramebuffer(gfx.FRAMEBUFFER, dst)
		viewport(gl, width, height)
		gl.UseProgram(p)
		gl.BindTexture(gfx.TEXTURE_2D, src)
		gl.DrawArrays(gfx.TRIANGLES, 0, glr.QuadVertices)
	}

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		gl.ClearColor(0, 0, 0, 0)
		gl.ActiveTexture(gfx.TEXTURE0)

		glr.WithVertexArray(gl, vao, func() {
			pass(gradient, gfx.Texture{}, first.fbo, BounceSize, BounceSize)
			pass(hueCycle, first.texture, second.fbo, BounceSize, BounceSize)
			pass(hueCycle, second.texture, first.fbo, BounceSize, BounceSize)
			pass(tile, first.texture, gfx.Framebuffer{}, w, h)
		})
		gl.BindTexture(gfx.TEXTURE_2D, gfx.Texture{})
		return nil
	}
	return sc, nil
}

// ExtractImage is drawn into an ExtractSize square framebuffer and read back
const (
	ExtractImage = "textures/tile-0.png"
	ExtractSize  = 8
)

// MeanColor averages tightly packed RGBA pixels
func MeanColor(pixels []byte) color.RGBA {
	n := len(pixels) / 4
	if n == 0 {
		return color.RGBA{}
	}
	var sum [4]int
	for i := 0; i < n*4; i += 4 {
		for ch := range sum {
			sum[ch] += int(pixels[i+ch])
		}
	}
	return color.RGBA{R: uint8(sum[0] / n), G: uint8(sum[1] / n), B: uint8(sum[2] / n), A: uint8(sum[3] / n)}
}

func mountExtract(gl gfx.Context, s core.Surface) (_ core.Scene, err error) {
	img, err := s.Assets().Image(ExtractImage)
	if err != nil {
		return nil, err
	}

	sc := newScene(gl)
	defer sc.releaseOnError(&err)

	program, err := sc.program("quad.vert", "sample.frag")
	if err != nil {
		return nil, err
	}
	uImage, err := glr.UniformLocation(gl, program, "u_image", false)
	if err != nil {
		return nil, err
	}
	vao, err := fullscreenQuad(sc, program)
	if err != nil {
		return nil, err
	}

	texture, err := sc.res.CreateTexture()
	if err != nil {
		return nil, err
	}
	glr.UploadTexture(gl, texture, img, glr.TextureOptions{Nearest: true})

	target, err := newRenderTarget(sc, glr.TextureData{
		Width:          ExtractSize,
		Height:         ExtractSize,
		InternalFormat: gfx.RGBA8,
		Format:         gfx.RGBA,
		Type:           gfx.UNSIGNED_BYTE,
	}, glr.TextureOptions{Nearest: true})
	if err != nil {
		return nil, err
	}

	render := func(dst gfx.Framebuffer, width, height int) {
		gl.BindFramebuffer(gfx.FRAMEBUFFER, dst)
		gl.ClearColor(0, 0, 0, 0)
		viewport(gl, width, height)
		gl.UseProgram(program)
		gl.Uniform1i(uImage, 0)
		gl.ActiveTexture(gfx.TEXTURE0)
		gl.BindTexture(gfx.TEXTURE_2D, texture)
		glr.WithVertexArray(gl, vao, func() {
			gl.DrawArrays(gfx.TRIANGLES, 0, glr.QuadVertices)
		})
		gl.BindTexture(gfx.TEXTURE_2D, gfx.Texture{})
	}

	// rows come back bottom to top
	pixels := make([]byte, ExtractSize*ExtractSize*4)
	render(target.fbo, ExtractSize, ExtractSize)
	gl.ReadPixels(pixels, 0, 0, ExtractSize, ExtractSize, gfx.RGBA, gfx.UNSIGNED_BYTE)
	gl.BindFramebuffer(gfx.FRAMEBUFFER, gfx.Framebuffer{})
	log.WithFields(log.Fields{
		"image": ExtractImage,
		"mean":  MeanColor(pixels),
	}).Debug("Framebuffer read back")

	sc.draw = func(time.Duration) error {
		w, h := s.Size()
		render(gfx.Framebuffer{}, w, h)
		return nil
	}
	return sc, nil
}
