// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "unsafe"

// Float32Bytes reslices data into bytes without copying, to be
// submitted as buffer or texture contents.
func Float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	const m = 0x7fffffff
	n := len(data) * 4
	return (*[m]byte)(unsafe.Pointer(&data[0]))[:n:n]
}

// Uint16Bytes reslices index data into bytes without copying.
func Uint16Bytes(data []uint16) []byte {
	if len(data) == 0 {
		return nil
	}
	const m = 0x7fffffff
	n := len(data) * 2
	return (*[m]byte)(unsafe.Pointer(&data[0]))[:n:n]
}

// BytesFloat32 is the inverse of Float32Bytes, used when reading
// float render targets back.
func BytesFloat32(data []byte) []float32 {
	if len(data) < 4 {
		return nil
	}
	const m = 0x7fffffff
	n := len(data) / 4
	return (*[m / 4]float32)(unsafe.Pointer(&data[0]))[:n:n]
}
