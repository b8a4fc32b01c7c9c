// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the graphics context that every sketch renders through.
// The Context interface follows the WebGL2 rendering context closely, so the
// same setup code runs on a desktop OpenGL 3.3 core context and in a browser.
package gfx

import "errors"

// ErrContextUnavailable is returned when a surface cannot produce
// the rendering context that was asked of it.
var ErrContextUnavailable = errors.New("rendering context unavailable")

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// Context is a WebGL2 shaped graphics context. Every call is a direct,
// synchronous command against the context state. Implementations are not
// safe for concurrent use, a Context belongs to the goroutine that created it.
type Context interface {
	// Buffers
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	BufferDataSize(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// Vertex arrays and attributes
	CreateVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	BindVertexArray(a VertexArray)
	GetAttribLocation(p Program, name string) Attrib
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribDivisor(a Attrib, divisor int)

	// Textures
	CreateTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexParameteri(target, pname Enum, param int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)

	// Framebuffers and renderbuffers
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(fb Framebuffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	CheckFramebufferStatus(target Enum) Enum
	BindRenderbuffer(target Enum, rb Renderbuffer)

	// Shaders and programs
	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	// Uniforms
	GetUniformLocation(p Program, name string) Uniform
	Uniform1i(u Uniform, v int)
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	UniformMatrix3fv(u Uniform, m []float32)
	UniformMatrix4fv(u Uniform, m []float32)

	// State and drawing
	GetInteger(pname Enum) int
	GetString(pname Enum) string
	GetExtension(name string) bool
	Enable(capability Enum)
	Disable(capability Enum)
	Viewport(x, y, width, height int)
	Scissor(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	ReadPixels(dst []byte, x, y, width, height int, format, typ Enum)
}
