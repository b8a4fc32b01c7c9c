// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assets_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/devblok/glsketch/assets"
	"github.com/gobuffalo/packd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newBox(t *testing.T, files map[string][]byte) *packd.MemoryBox {
	box := packd.NewMemoryBox()
	for name, b := range files {
		require.NoError(t, box.AddBytes(name, b))
	}
	return box
}

func TestLoaderSourceOrder(t *testing.T) {
	override := newBox(t, map[string][]byte{"shaders/quad.vert": []byte("override")})
	base := newBox(t, map[string][]byte{
		"shaders/quad.vert": []byte("base"),
		"shaders/quad.frag": []byte("frag"),
	})
	loader := assets.NewLoader(override, base)

	src, err := loader.String("shaders/quad.vert")
	require.NoError(t, err)
	assert.Equal(t, "override", src)

	src, err = loader.String("shaders/quad.frag")
	require.NoError(t, err)
	assert.Equal(t, "frag", src)

	assert.Equal(t, []string{"shaders/quad.frag", "shaders/quad.vert"}, loader.List())
}

func TestLoaderNotFound(t *testing.T) {
	loader := assets.NewLoader(newBox(t, nil))

	_, err := loader.Bytes("missing.png")
	assert.True(t, errors.Is(err, assets.ErrNotFound))

	_, err = loader.Image("missing.png")
	assert.True(t, errors.Is(err, assets.ErrNotFound))
}

func TestLoaderImage(t *testing.T) {
	loader := assets.NewLoader(newBox(t, map[string][]byte{"tex.png": encodePNG(t, 4, 2)}))

	img, err := loader.Image("tex.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 2), img.Bounds().Size())

	again, err := loader.Image("tex.png")
	require.NoError(t, err)
	assert.Equal(t, img, again)
}

func TestLoaderImageBroken(t *testing.T) {
	loader := assets.NewLoader(newBox(t, map[string][]byte{"tex.png": []byte("not an image")}))

	_, err := loader.Image("tex.png")
	require.Error(t, err)
	assert.False(t, errors.Is(err, assets.ErrNotFound))
}

func TestLoaderDownscale(t *testing.T) {
	loader := assets.NewLoader(newBox(t, map[string][]byte{"big.png": encodePNG(t, 64, 32)}))
	loader.MaxImageSize = 16

	img, err := loader.Image("big.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 8), img.Bounds().Size())
}

func TestLoaderPreload(t *testing.T) {
	files := map[string][]byte{}
	names := []string{"a.png", "b.png", "c.png", "d.png"}
	for _, name := range names {
		files[name] = encodePNG(t, 8, 8)
	}
	loader := assets.NewLoader(newBox(t, files))

	require.NoError(t, loader.Preload(names...))
	for _, name := range names {
		img, err := loader.Image(name)
		require.NoError(t, err)
		assert.Equal(t, image.Pt(8, 8), img.Bounds().Size())
	}

	err := loader.Preload("a.png", "missing.png")
	assert.True(t, errors.Is(err, assets.ErrNotFound))
}
