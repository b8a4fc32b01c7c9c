// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build js && wasm
// +build js,wasm

// Package webgl implements gfx.Context on a browser WebGL2 context.
// Objects live in a table keyed by the handle values gfx hands out.
package webgl

import (
	"fmt"
	"syscall/js"

	"github.com/devblok/glsketch/gfx"
	log "github.com/sirupsen/logrus"
)

// Context is a gfx.Context over a WebGL2RenderingContext.
type Context struct {
	gl js.Value

	next    uint
	objects map[uint]js.Value

	// uniform locations, dropped with the program they belong to
	nextUniform int
	uniforms    map[int]js.Value
	uniformIDs  map[uniformKey]int
}

type uniformKey struct {
	program uint
	name    string
}

// NewContext requests a webgl2 context from canvas.
func NewContext(canvas js.Value, attrs map[string]interface{}) (*Context, error) {
	if canvas.IsUndefined() || canvas.IsNull() {
		return nil, fmt.Errorf("canvas.getContext(): no canvas: %w", gfx.ErrContextUnavailable)
	}
	gl := canvas.Call("getContext", "webgl2", attrs)
	if gl.IsNull() || gl.IsUndefined() {
		return nil, fmt.Errorf("canvas.getContext(\"webgl2\"): %w", gfx.ErrContextUnavailable)
	}
	log.WithField("version", gl.Call("getParameter", int(gfx.VERSION)).String()).
		Debug("WebGL2 context created")
	return &Context{
		gl:         gl,
		objects:    make(map[uint]js.Value),
		uniforms:   make(map[int]js.Value),
		uniformIDs: make(map[uniformKey]int),
	}, nil
}

// Value returns the underlying WebGL2RenderingContext.
func (c *Context) Value() js.Value {
	return c.gl
}

func (c *Context) put(v js.Value) uint {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.next++
	c.objects[c.next] = v
	return c.next
}

func (c *Context) get(id uint) js.Value {
	if v, ok := c.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) drop(id uint) js.Value {
	v := c.get(id)
	delete(c.objects, id)
	return v
}

func (c *Context) lookup(v js.Value) uint {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	for id, o := range c.objects {
		if o.Equal(v) {
			return id
		}
	}
	return 0
}

func bytesToJS(data []byte) js.Value {
	u8 := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(u8, data)
	return u8
}

// typedArray views data as the typed array WebGL expects for typ.
func typedArray(typ gfx.Enum, data []byte) js.Value {
	u8 := bytesToJS(data)
	switch typ {
	case gfx.FLOAT:
		return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data)/4)
	case gfx.HALF_FLOAT, gfx.UNSIGNED_SHORT:
		return js.Global().Get("Uint16Array").New(u8.Get("buffer"), 0, len(data)/2)
	}
	return u8
}

func float32Array(v []float32) js.Value {
	return typedArray(gfx.FLOAT, gfx.Float32Bytes(v))
}

// CreateBuffer implements gfx.Context.
func (c *Context) CreateBuffer() gfx.Buffer {
	return gfx.Buffer{V: c.put(c.gl.Call("createBuffer"))}
}

// DeleteBuffer implements gfx.Context.
func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.gl.Call("deleteBuffer", c.drop(b.V))
}

// BindBuffer implements gfx.Context.
func (c *Context) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	c.gl.Call("bindBuffer", int(target), c.get(b.V))
}

// BufferData implements gfx.Context.
func (c *Context) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	c.gl.Call("bufferData", int(target), bytesToJS(data), int(usage))
}

// BufferDataSize implements gfx.Context.
func (c *Context) BufferDataSize(target gfx.Enum, size int, usage gfx.Enum) {
	c.gl.Call("bufferData", int(target), size, int(usage))
}

// BufferSubData implements gfx.Context.
func (c *Context) BufferSubData(target gfx.Enum, offset int, data []byte) {
	c.gl.Call("bufferSubData", int(target), offset, bytesToJS(data))
}

// CreateVertexArray implements gfx.Context.
func (c *Context) CreateVertexArray() gfx.VertexArray {
	return gfx.VertexArray{V: c.put(c.gl.Call("createVertexArray"))}
}

// DeleteVertexArray implements gfx.Context.
func (c *Context) DeleteVertexArray(a gfx.VertexArray) {
	c.gl.Call("deleteVertexArray", c.drop(a.V))
}

// BindVertexArray implements gfx.Context.
func (c *Context) BindVertexArray(a gfx.VertexArray) {
	c.gl.Call("bindVertexArray", c.get(a.V))
}

// GetAttribLocation implements gfx.Context.
func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(c.gl.Call("getAttribLocation", c.get(p.V), name).Int())
}

// EnableVertexAttribArray implements gfx.Context.
func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a))
}

// VertexAttribPointer implements gfx.Context.
func (c *Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(a), size, int(typ), normalized, stride, offset)
}

// VertexAttribDivisor implements gfx.Context.
func (c *Context) VertexAttribDivisor(a gfx.Attrib, divisor int) {
	c.gl.Call("vertexAttribDivisor", int(a), divisor)
}

// CreateTexture implements gfx.Context.
func (c *Context) CreateTexture() gfx.Texture {
	return gfx.Texture{V: c.put(c.gl.Call("createTexture"))}
}

// DeleteTexture implements gfx.Context.
func (c *Context) DeleteTexture(t gfx.Texture) {
	c.gl.Call("deleteTexture", c.drop(t.V))
}

// ActiveTexture implements gfx.Context.
func (c *Context) ActiveTexture(unit gfx.Enum) {
	c.gl.Call("activeTexture", int(unit))
}

// BindTexture implements gfx.Context.
func (c *Context) BindTexture(target gfx.Enum, t gfx.Texture) {
	c.gl.Call("bindTexture", int(target), c.get(t.V))
}

// TexParameteri implements gfx.Context.
func (c *Context) TexParameteri(target, pname gfx.Enum, param int) {
	c.gl.Call("texParameteri", int(target), int(pname), param)
}

// TexImage2D implements gfx.Context.
func (c *Context) TexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, format, typ gfx.Enum, data []byte) {
	pixels := js.Null()
	if data != nil {
		pixels = typedArray(typ, data)
	}
	c.gl.Call("pixelStorei", int(gfx.UNPACK_ALIGNMENT), 1)
	c.gl.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(typ), pixels)
}

// CreateFramebuffer implements gfx.Context.
func (c *Context) CreateFramebuffer() gfx.Framebuffer {
	return gfx.Framebuffer{V: c.put(c.gl.Call("createFramebuffer"))}
}

// DeleteFramebuffer implements gfx.Context.
func (c *Context) DeleteFramebuffer(fb gfx.Framebuffer) {
	c.gl.Call("deleteFramebuffer", c.drop(fb.V))
}

// BindFramebuffer implements gfx.Context.
func (c *Context) BindFramebuffer(target gfx.Enum, fb gfx.Framebuffer) {
	c.gl.Call("bindFramebuffer", int(target), c.get(fb.V))
}

// FramebufferTexture2D implements gfx.Context.
func (c *Context) FramebufferTexture2D(target, attachment, texTarget gfx.Enum, t gfx.Texture, level int) {
	c.gl.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), c.get(t.V), level)
}

// CheckFramebufferStatus implements gfx.Context.
func (c *Context) CheckFramebufferStatus(target gfx.Enum) gfx.Enum {
	return gfx.Enum(c.gl.Call("checkFramebufferStatus", int(target)).Int())
}

// BindRenderbuffer implements gfx.Context.
func (c *Context) BindRenderbuffer(target gfx.Enum, rb gfx.Renderbuffer) {
	c.gl.Call("bindRenderbuffer", int(target), c.get(rb.V))
}

// CreateShader implements gfx.Context.
func (c *Context) CreateShader(typ gfx.Enum) gfx.Shader {
	return gfx.Shader{V: c.put(c.gl.Call("createShader", int(typ)))}
}

// ShaderSource implements gfx.Context.
func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.gl.Call("shaderSource", c.get(s.V), src)
}

// CompileShader implements gfx.Context.
func (c *Context) CompileShader(s gfx.Shader) {
	c.gl.Call("compileShader", c.get(s.V))
}

// GetShaderi implements gfx.Context.
func (c *Context) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	if pname == gfx.INFO_LOG_LENGTH {
		return len(c.GetShaderInfoLog(s))
	}
	return parameterInt(c.gl.Call("getShaderParameter", c.get(s.V), int(pname)))
}

// GetShaderInfoLog implements gfx.Context.
func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	return stringOrEmpty(c.gl.Call("getShaderInfoLog", c.get(s.V)))
}

// DeleteShader implements gfx.Context.
func (c *Context) DeleteShader(s gfx.Shader) {
	c.gl.Call("deleteShader", c.drop(s.V))
}

// CreateProgram implements gfx.Context.
func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program{V: c.put(c.gl.Call("createProgram"))}
}

// AttachShader implements gfx.Context.
func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.gl.Call("attachShader", c.get(p.V), c.get(s.V))
}

// LinkProgram implements gfx.Context.
func (c *Context) LinkProgram(p gfx.Program) {
	c.gl.Call("linkProgram", c.get(p.V))
}

// GetProgrami implements gfx.Context.
func (c *Context) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	if pname == gfx.INFO_LOG_LENGTH {
		return len(c.GetProgramInfoLog(p))
	}
	return parameterInt(c.gl.Call("getProgramParameter", c.get(p.V), int(pname)))
}

// GetProgramInfoLog implements gfx.Context.
func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	return stringOrEmpty(c.gl.Call("getProgramInfoLog", c.get(p.V)))
}

// DeleteProgram implements gfx.Context.
func (c *Context) DeleteProgram(p gfx.Program) {
	for key, id := range c.uniformIDs {
		if key.program == p.V {
			delete(c.uniformIDs, key)
			delete(c.uniforms, id)
		}
	}
	c.gl.Call("deleteProgram", c.drop(p.V))
}

// UseProgram implements gfx.Context.
func (c *Context) UseProgram(p gfx.Program) {
	c.gl.Call("useProgram", c.get(p.V))
}

// GetUniformLocation implements gfx.Context. Locations are kept until
// their program is deleted, asking twice returns the same handle.
func (c *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	key := uniformKey{program: p.V, name: name}
	if id, ok := c.uniformIDs[key]; ok {
		return gfx.Uniform{V: id}
	}
	loc := c.gl.Call("getUniformLocation", c.get(p.V), name)
	if loc.IsNull() || loc.IsUndefined() {
		return gfx.NoUniform
	}
	id := c.nextUniform
	c.nextUniform++
	c.uniforms[id] = loc
	c.uniformIDs[key] = id
	return gfx.Uniform{V: id}
}

func (c *Context) uniform(u gfx.Uniform) js.Value {
	if loc, ok := c.uniforms[u.V]; ok {
		return loc
	}
	return js.Null()
}

// Uniform1i implements gfx.Context.
func (c *Context) Uniform1i(u gfx.Uniform, v int) {
	c.gl.Call("uniform1i", c.uniform(u), v)
}

// Uniform1f implements gfx.Context.
func (c *Context) Uniform1f(u gfx.Uniform, v float32) {
	c.gl.Call("uniform1f", c.uniform(u), v)
}

// Uniform2f implements gfx.Context.
func (c *Context) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	c.gl.Call("uniform2f", c.uniform(u), v0, v1)
}

// Uniform4f implements gfx.Context.
func (c *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	c.gl.Call("uniform4f", c.uniform(u), v0, v1, v2, v3)
}

// UniformMatrix3fv implements gfx.Context.
func (c *Context) UniformMatrix3fv(u gfx.Uniform, m []float32) {
	c.gl.Call("uniformMatrix3fv", c.uniform(u), false, float32Array(m))
}

// UniformMatrix4fv implements gfx.Context.
func (c *Context) UniformMatrix4fv(u gfx.Uniform, m []float32) {
	c.gl.Call("uniformMatrix4fv", c.uniform(u), false, float32Array(m))
}

// GetInteger implements gfx.Context. Object bindings are reported
// as their handle values.
func (c *Context) GetInteger(pname gfx.Enum) int {
	v := c.gl.Call("getParameter", int(pname))
	switch v.Type() {
	case js.TypeNumber, js.TypeBoolean:
		return parameterInt(v)
	case js.TypeObject:
		return int(c.lookup(v))
	}
	return 0
}

// GetString implements gfx.Context.
func (c *Context) GetString(pname gfx.Enum) string {
	return stringOrEmpty(c.gl.Call("getParameter", int(pname)))
}

// GetExtension implements gfx.Context.
func (c *Context) GetExtension(name string) bool {
	ext := c.gl.Call("getExtension", name)
	return !ext.IsNull() && !ext.IsUndefined()
}

// Enable implements gfx.Context.
func (c *Context) Enable(capability gfx.Enum) {
	c.gl.Call("enable", int(capability))
}

// Disable implements gfx.Context.
func (c *Context) Disable(capability gfx.Enum) {
	c.gl.Call("disable", int(capability))
}

// Viewport implements gfx.Context.
func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

// Scissor implements gfx.Context.
func (c *Context) Scissor(x, y, width, height int) {
	c.gl.Call("scissor", x, y, width, height)
}

// ClearColor implements gfx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

// Clear implements gfx.Context.
func (c *Context) Clear(mask gfx.Enum) {
	c.gl.Call("clear", int(mask))
}

// DrawArrays implements gfx.Context.
func (c *Context) DrawArrays(mode gfx.Enum, first, count int) {
	c.gl.Call("drawArrays", int(mode), first, count)
}

// DrawArraysInstanced implements gfx.Context.
func (c *Context) DrawArraysInstanced(mode gfx.Enum, first, count, instances int) {
	c.gl.Call("drawArraysInstanced", int(mode), first, count, instances)
}

// DrawElements implements gfx.Context.
func (c *Context) DrawElements(mode gfx.Enum, count int, typ gfx.Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(typ), offset)
}

// ReadPixels implements gfx.Context.
func (c *Context) ReadPixels(dst []byte, x, y, width, height int, format, typ gfx.Enum) {
	u8 := js.Global().Get("Uint8Array").New(len(dst))
	c.gl.Call("readPixels", x, y, width, height, int(format), int(typ), u8)
	js.CopyBytesToGo(dst, u8)
}

func parameterInt(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	}
	return 0
}

func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

var _ gfx.Context = (*Context)(nil)
