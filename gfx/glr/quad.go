// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import "github.com/devblok/glsketch/gfx"

var (
	quadPositions = []float32{
		-1, 1, 0, 1,
		1, 1, 0, 1,
		-1, -1, 0, 1,
		-1, -1, 0, 1,
		1, 1, 0, 1,
		1, -1, 0, 1,
	}
	quadTexCoords = []float32{
		0, 0,
		1, 0,
		0, 1,
		0, 1,
		1, 0,
		1, 1,
	}
)

// QuadVertices is the vertex count of the fullscreen quad.
const QuadVertices = 6

// CreateFullscreenQuadAttributes binds aPosition (vec4) and aTexCoord (vec2)
// of p to two triangles covering clip space. Buffers are created on res,
// a vertex array must already be bound.
func CreateFullscreenQuadAttributes(gl gfx.Context, p gfx.Program, res *Resources) error {
	positions, err := res.CreateBuffer(gfx.Float32Bytes(quadPositions), gfx.STATIC_DRAW)
	if err != nil {
		return err
	}
	if err := CreateAttribute(gl, p, Attribute{Name: "aPosition", Buffer: positions, Size: 4}); err != nil {
		return err
	}

	texCoords, err := res.CreateBuffer(gfx.Float32Bytes(quadTexCoords), gfx.STATIC_DRAW)
	if err != nil {
		return err
	}
	return CreateAttribute(gl, p, Attribute{Name: "aTexCoord", Buffer: texCoords, Size: 2})
}
