// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !js
// +build !js

// Package glcore implements gfx.Context on a desktop OpenGL 3.3 core
// profile context. A context must be current on the calling thread
// before Init is called.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/devblok/glsketch/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"
)

const (
	esVersion   = "#version 300 es"
	coreVersion = "#version 330 core"
)

// Context is a gfx.Context over the current OpenGL context.
type Context struct {
	extensions map[string]bool
}

// Init loads the GL entry points of the current context.
func Init() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init(): %s: %w", err, gfx.ErrContextUnavailable)
	}

	c := &Context{extensions: make(map[string]bool)}
	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	for i := uint32(0); i < uint32(count); i++ {
		c.extensions[gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i))] = true
	}
	// float color attachments are core since 3.0
	c.extensions["EXT_color_buffer_float"] = true

	log.WithFields(log.Fields{
		"version":    gl.GoStr(gl.GetString(gl.VERSION)),
		"extensions": count,
	}).Debug("OpenGL context initialised")
	return c, nil
}

// TranslateSource rewrites a WebGL2 shader header for the core profile.
// Sources without one are returned unchanged.
func TranslateSource(src string) string {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	if !strings.HasPrefix(trimmed, esVersion) {
		return src
	}
	return coreVersion + trimmed[len(esVersion):]
}

// CreateBuffer implements gfx.Context.
func (c *Context) CreateBuffer() gfx.Buffer {
	var v uint32
	gl.GenBuffers(1, &v)
	return gfx.Buffer{V: uint(v)}
}

// DeleteBuffer implements gfx.Context.
func (c *Context) DeleteBuffer(b gfx.Buffer) {
	v := uint32(b.V)
	gl.DeleteBuffers(1, &v)
}

// BindBuffer implements gfx.Context.
func (c *Context) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

// BufferData implements gfx.Context.
func (c *Context) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

// BufferDataSize implements gfx.Context.
func (c *Context) BufferDataSize(target gfx.Enum, size int, usage gfx.Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

// BufferSubData implements gfx.Context.
func (c *Context) BufferSubData(target gfx.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

// CreateVertexArray implements gfx.Context.
func (c *Context) CreateVertexArray() gfx.VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return gfx.VertexArray{V: uint(v)}
}

// DeleteVertexArray implements gfx.Context.
func (c *Context) DeleteVertexArray(a gfx.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

// BindVertexArray implements gfx.Context.
func (c *Context) BindVertexArray(a gfx.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

// GetAttribLocation implements gfx.Context.
func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(gl.GetAttribLocation(uint32(p.V), gl.Str(name+"\x00")))
}

// EnableVertexAttribArray implements gfx.Context.
func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

// VertexAttribPointer implements gfx.Context.
func (c *Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

// VertexAttribDivisor implements gfx.Context.
func (c *Context) VertexAttribDivisor(a gfx.Attrib, divisor int) {
	gl.VertexAttribDivisor(uint32(a), uint32(divisor))
}

// CreateTexture implements gfx.Context.
func (c *Context) CreateTexture() gfx.Texture {
	var v uint32
	gl.GenTextures(1, &v)
	return gfx.Texture{V: uint(v)}
}

// DeleteTexture implements gfx.Context.
func (c *Context) DeleteTexture(t gfx.Texture) {
	v := uint32(t.V)
	gl.DeleteTextures(1, &v)
}

// ActiveTexture implements gfx.Context.
func (c *Context) ActiveTexture(unit gfx.Enum) {
	gl.ActiveTexture(uint32(unit))
}

// BindTexture implements gfx.Context.
func (c *Context) BindTexture(target gfx.Enum, t gfx.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

// TexParameteri implements gfx.Context.
func (c *Context) TexParameteri(target, pname gfx.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

// TexImage2D implements gfx.Context. A nil data slice allocates storage only.
func (c *Context) TexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, format, typ gfx.Enum, data []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0,
		uint32(format), uint32(typ), ptr(data))
}

// CreateFramebuffer implements gfx.Context.
func (c *Context) CreateFramebuffer() gfx.Framebuffer {
	var v uint32
	gl.GenFramebuffers(1, &v)
	return gfx.Framebuffer{V: uint(v)}
}

// DeleteFramebuffer implements gfx.Context.
func (c *Context) DeleteFramebuffer(fb gfx.Framebuffer) {
	v := uint32(fb.V)
	gl.DeleteFramebuffers(1, &v)
}

// BindFramebuffer implements gfx.Context.
func (c *Context) BindFramebuffer(target gfx.Enum, fb gfx.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

// FramebufferTexture2D implements gfx.Context.
func (c *Context) FramebufferTexture2D(target, attachment, texTarget gfx.Enum, t gfx.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

// CheckFramebufferStatus implements gfx.Context.
func (c *Context) CheckFramebufferStatus(target gfx.Enum) gfx.Enum {
	return gfx.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

// BindRenderbuffer implements gfx.Context.
func (c *Context) BindRenderbuffer(target gfx.Enum, rb gfx.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

// CreateShader implements gfx.Context.
func (c *Context) CreateShader(typ gfx.Enum) gfx.Shader {
	return gfx.Shader{V: uint(gl.CreateShader(uint32(typ)))}
}

// ShaderSource implements gfx.Context. WebGL2 headers are
// translated with TranslateSource.
func (c *Context) ShaderSource(s gfx.Shader, src string) {
	csources, free := gl.Strs(TranslateSource(src) + "\x00")
	gl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

// CompileShader implements gfx.Context.
func (c *Context) CompileShader(s gfx.Shader) {
	gl.CompileShader(uint32(s.V))
}

// GetShaderi implements gfx.Context.
func (c *Context) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

// GetShaderInfoLog implements gfx.Context.
func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	n := c.GetShaderi(s, gfx.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(uint32(s.V), int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

// DeleteShader implements gfx.Context.
func (c *Context) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(uint32(s.V))
}

// CreateProgram implements gfx.Context.
func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program{V: uint(gl.CreateProgram())}
}

// AttachShader implements gfx.Context.
func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

// LinkProgram implements gfx.Context.
func (c *Context) LinkProgram(p gfx.Program) {
	gl.LinkProgram(uint32(p.V))
}

// GetProgrami implements gfx.Context.
func (c *Context) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

// GetProgramInfoLog implements gfx.Context.
func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	n := c.GetProgrami(p, gfx.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(uint32(p.V), int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

// DeleteProgram implements gfx.Context.
func (c *Context) DeleteProgram(p gfx.Program) {
	gl.DeleteProgram(uint32(p.V))
}

// UseProgram implements gfx.Context.
func (c *Context) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p.V))
}

// GetUniformLocation implements gfx.Context.
func (c *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	return gfx.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}

// Uniform1i implements gfx.Context.
func (c *Context) Uniform1i(u gfx.Uniform, v int) {
	gl.Uniform1i(int32(u.V), int32(v))
}

// Uniform1f implements gfx.Context.
func (c *Context) Uniform1f(u gfx.Uniform, v float32) {
	gl.Uniform1f(int32(u.V), v)
}

// Uniform2f implements gfx.Context.
func (c *Context) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(u.V), v0, v1)
}

// Uniform4f implements gfx.Context.
func (c *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(u.V), v0, v1, v2, v3)
}

// UniformMatrix3fv implements gfx.Context.
func (c *Context) UniformMatrix3fv(u gfx.Uniform, m []float32) {
	if len(m) < 9 {
		return
	}
	gl.UniformMatrix3fv(int32(u.V), int32(len(m)/9), false, &m[0])
}

// UniformMatrix4fv implements gfx.Context.
func (c *Context) UniformMatrix4fv(u gfx.Uniform, m []float32) {
	if len(m) < 16 {
		return
	}
	gl.UniformMatrix4fv(int32(u.V), int32(len(m)/16), false, &m[0])
}

// GetInteger implements gfx.Context.
func (c *Context) GetInteger(pname gfx.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

// GetString implements gfx.Context.
func (c *Context) GetString(pname gfx.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

// GetExtension implements gfx.Context. WebGL extension names are looked
// up with the GL_ prefix of their desktop counterpart.
func (c *Context) GetExtension(name string) bool {
	return c.extensions[name] || c.extensions["GL_"+name]
}

// Enable implements gfx.Context.
func (c *Context) Enable(capability gfx.Enum) {
	gl.Enable(uint32(capability))
}

// Disable implements gfx.Context.
func (c *Context) Disable(capability gfx.Enum) {
	gl.Disable(uint32(capability))
}

// Viewport implements gfx.Context.
func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Scissor implements gfx.Context.
func (c *Context) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor implements gfx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements gfx.Context.
func (c *Context) Clear(mask gfx.Enum) {
	gl.Clear(uint32(mask))
}

// DrawArrays implements gfx.Context.
func (c *Context) DrawArrays(mode gfx.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

// DrawArraysInstanced implements gfx.Context.
func (c *Context) DrawArraysInstanced(mode gfx.Enum, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

// DrawElements implements gfx.Context.
func (c *Context) DrawElements(mode gfx.Enum, count int, typ gfx.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

// ReadPixels implements gfx.Context.
func (c *Context) ReadPixels(dst []byte, x, y, width, height int, format, typ gfx.Enum) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(dst))
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

var _ gfx.Context = (*Context)(nil)
