package model

import (
	"unsafe"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Object represents a drawable model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Vertices returns the vertices, three per triangle,
	// laid out as described by VertexAttributes
	Vertices() []Vertex
}

// Vertex is a model vertex
type Vertex struct {
	Pos    glm.Vec3
	Normal glm.Vec3
	Color  glm.Vec4
}

// VertexSize is the size of a Vertex in bytes
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// MVP returns the combined transform
func (u Uniform) MVP() glm.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}

// Transform returns the model matrix of o, rotation applied first
func Transform(o Object) glm.Mat4 {
	return o.Position().Mul4(o.Rotation())
}

// VertexBytes flattens vertices for upload into a buffer
func VertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	const m = 0x7fffffff
	n := len(vertices) * VertexSize
	return (*[m]byte)(unsafe.Pointer(&vertices[0]))[:n:n]
}

// VertexAttributes describes a buffer of Vertex for the aPosition,
// aNormal and aColor inputs of a program
func VertexAttributes(buffer gfx.Buffer) []glr.Attribute {
	return []glr.Attribute{
		{
			Name:   "aPosition",
			Buffer: buffer,
			Size:   3,
			Stride: VertexSize,
			Offset: int(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Name:     "aNormal",
			Buffer:   buffer,
			Size:     3,
			Stride:   VertexSize,
			Offset:   int(unsafe.Offsetof(Vertex{}.Normal)),
			Optional: true,
		},
		{
			Name:     "aColor",
			Buffer:   buffer,
			Size:     4,
			Stride:   VertexSize,
			Offset:   int(unsafe.Offsetof(Vertex{}.Color)),
			Optional: true,
		},
	}
}
