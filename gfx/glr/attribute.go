// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"

	"github.com/devblok/glsketch/gfx"
	log "github.com/sirupsen/logrus"
)

// PerInstance advances an instanced attribute once for every instance.
const PerInstance = 1

// Attribute describes how a named vertex input reads from a buffer.
// Zero values fall back to a single float component per vertex.
type Attribute struct {
	Name   string
	Buffer gfx.Buffer

	// Size is the number of components per location, 1 to 4.
	Size int

	// MatrixSize is the number of consecutive locations a matrix
	// input occupies, 3 for a mat3. Each location is one column.
	MatrixSize int

	// Type of the components, FLOAT when zero.
	Type       gfx.Enum
	Normalized bool
	Stride     int
	Offset     int

	// Instanced is the instance divisor, zero for per-vertex data.
	Instanced int

	// Optional turns a name the program does not use into a no-op
	// instead of an error.
	Optional bool
}

func (a Attribute) withDefaults() Attribute {
	if a.Size == 0 {
		a.Size = 1
	}
	if a.MatrixSize == 0 {
		a.MatrixSize = 1
	}
	if a.Type == 0 {
		a.Type = gfx.FLOAT
	}
	return a
}

// CreateAttribute configures attribute a of program p in the bound vertex
// array. Matrix attributes take MatrixSize locations starting at the resolved
// one, column i reading at Offset + i*4*MatrixSize bytes.
func CreateAttribute(gl gfx.Context, p gfx.Program, a Attribute) error {
	a = a.withDefaults()

	loc := gl.GetAttribLocation(p, a.Name)
	if !loc.Valid() {
		if a.Optional {
			log.WithField("attribute", a.Name).Debug("Skipping inactive attribute")
			return nil
		}
		return fmt.Errorf("gl.GetAttribLocation(%q): %w", a.Name, ErrAttributeNotFound)
	}

	gl.BindBuffer(gfx.ARRAY_BUFFER, a.Buffer)
	for i := 0; i < a.MatrixSize; i++ {
		column := loc + gfx.Attrib(i)
		offset := a.Offset + i*a.MatrixSize*4

		gl.EnableVertexAttribArray(column)
		gl.VertexAttribPointer(column, a.Size, a.Type, a.Normalized, a.Stride, offset)
		if a.Instanced > 0 {
			gl.VertexAttribDivisor(column, a.Instanced)
		}
	}
	gl.BindBuffer(gfx.ARRAY_BUFFER, gfx.Buffer{})
	return nil
}

// WithVertexArray runs fn with vao bound and unbinds it afterwards.
func WithVertexArray(gl gfx.Context, vao gfx.VertexArray, fn func()) {
	gl.BindVertexArray(vao)
	fn()
	gl.BindVertexArray(gfx.VertexArray{})
}

// UnbindAll resets every texture unit and the buffer, renderbuffer and
// framebuffer bindings, leaving the context clean for the next sketch.
func UnbindAll(gl gfx.Context) {
	units := gl.GetInteger(gfx.MAX_TEXTURE_IMAGE_UNITS)
	for unit := 0; unit < units; unit++ {
		gl.ActiveTexture(gfx.TEXTURE0 + gfx.Enum(unit))
		gl.BindTexture(gfx.TEXTURE_2D, gfx.Texture{})
		gl.BindTexture(gfx.TEXTURE_CUBE_MAP, gfx.Texture{})
	}
	gl.ActiveTexture(gfx.TEXTURE0)
	gl.BindVertexArray(gfx.VertexArray{})
	gl.BindBuffer(gfx.ARRAY_BUFFER, gfx.Buffer{})
	gl.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, gfx.Buffer{})
	gl.BindRenderbuffer(gfx.RENDERBUFFER, gfx.Renderbuffer{})
	gl.BindFramebuffer(gfx.FRAMEBUFFER, gfx.Framebuffer{})
}
