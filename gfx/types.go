// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Handles are plain values so they can key maps. The zero value of every
// object handle is the null object, which unbinds when bound.
type (
	Buffer       struct{ V uint }
	VertexArray  struct{ V uint }
	Texture      struct{ V uint }
	Framebuffer  struct{ V uint }
	Renderbuffer struct{ V uint }
	Program      struct{ V uint }
	Shader       struct{ V uint }
	Uniform      struct{ V int }
)

// Attrib is a vertex attribute location. -1 means the attribute
// is not active in the program.
type Attrib int

// NoAttrib is returned for names that do not resolve to an active attribute.
const NoAttrib Attrib = -1

// NoUniform is returned for names that do not resolve to an active uniform.
var NoUniform = Uniform{V: -1}

// Valid reports whether b names a buffer object.
func (b Buffer) Valid() bool { return b.V != 0 }

// Valid reports whether a names a vertex array object.
func (a VertexArray) Valid() bool { return a.V != 0 }

// Valid reports whether t names a texture object.
func (t Texture) Valid() bool { return t.V != 0 }

// Valid reports whether fb names a framebuffer object.
// The zero Framebuffer is the default framebuffer.
func (fb Framebuffer) Valid() bool { return fb.V != 0 }

// Valid reports whether rb names a renderbuffer object.
func (rb Renderbuffer) Valid() bool { return rb.V != 0 }

// Valid reports whether p names a program object.
func (p Program) Valid() bool { return p.V != 0 }

// Valid reports whether s names a shader object.
func (s Shader) Valid() bool { return s.V != 0 }

// Valid reports whether u is an active uniform location.
func (u Uniform) Valid() bool { return u.V != -1 }

// Valid reports whether a is an active attribute location.
func (a Attrib) Valid() bool { return a >= 0 }
