// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"image"
	"image/draw"

	"github.com/devblok/glsketch/gfx"
)

// TextureOptions control sampling of uploaded textures.
type TextureOptions struct {
	// Nearest selects nearest neighbour filtering instead of linear.
	Nearest bool

	// Repeat wraps texture coordinates instead of clamping them.
	Repeat bool
}

// TextureData is raw texel data for UploadTextureData. Pixels may be nil
// to allocate storage only, as used by render targets.
type TextureData struct {
	Width, Height  int
	InternalFormat gfx.Enum
	Format         gfx.Enum
	Type           gfx.Enum
	Pixels         []byte
}

// UploadTexture fills t with img as 8 bit RGBA, without mipmaps.
func UploadTexture(gl gfx.Context, t gfx.Texture, img image.Image, opts TextureOptions) gfx.Texture {
	b := img.Bounds()
	return UploadTextureData(gl, t, TextureData{
		Width:          b.Dx(),
		Height:         b.Dy(),
		InternalFormat: gfx.RGBA,
		Format:         gfx.RGBA,
		Type:           gfx.UNSIGNED_BYTE,
		Pixels:         Pixels(img),
	}, opts)
}

// UploadTextureData fills t with raw texel data, without mipmaps.
func UploadTextureData(gl gfx.Context, t gfx.Texture, data TextureData, opts TextureOptions) gfx.Texture {
	filter, wrap := gfx.LINEAR, gfx.CLAMP_TO_EDGE
	if opts.Nearest {
		filter = gfx.NEAREST
	}
	if opts.Repeat {
		wrap = gfx.REPEAT
	}

	gl.BindTexture(gfx.TEXTURE_2D, t)
	gl.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_S, int(wrap))
	gl.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_T, int(wrap))
	gl.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MIN_FILTER, int(filter))
	gl.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MAG_FILTER, int(filter))
	gl.TexImage2D(gfx.TEXTURE_2D, 0, data.InternalFormat, data.Width, data.Height, data.Format, data.Type, data.Pixels)
	gl.BindTexture(gfx.TEXTURE_2D, gfx.Texture{})
	return t
}

// Pixels returns the tightly packed RGBA bytes of img,
// reusing the pixel buffer when img already is one.
func Pixels(img image.Image) []byte {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() && rgba.Rect.Min == (image.Point{}) {
		// a sub image keeps the rows of its parent below it
		n := 4 * rgba.Rect.Dx() * rgba.Rect.Dy()
		return rgba.Pix[:n:n]
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba.Pix
}
