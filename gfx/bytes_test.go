// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/devblok/glsketch/gfx"
	"github.com/stretchr/testify/assert"
)

func TestFloat32Bytes(t *testing.T) {
	data := []float32{0, 1, -2.5}
	b := gfx.Float32Bytes(data)
	if assert.Len(t, b, 12) {
		assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])))
		assert.Equal(t, float32(-2.5), math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])))
	}
	assert.Equal(t, data, gfx.BytesFloat32(b))
	assert.Nil(t, gfx.Float32Bytes(nil))
}

func TestUint16Bytes(t *testing.T) {
	b := gfx.Uint16Bytes([]uint16{1, 0x0203})
	assert.Equal(t, []byte{1, 0, 3, 2}, b)
}

func BenchmarkFloat32BytesSmall(b *testing.B) {
	data := make([]float32, 100)
	for idx := 0; idx < b.N; idx++ {
		gfx.Float32Bytes(data)
	}
}

func BenchmarkFloat32BytesBig(b *testing.B) {
	data := make([]float32, 100000)
	for idx := 0; idx < b.N; idx++ {
		gfx.Float32Bytes(data)
	}
}
