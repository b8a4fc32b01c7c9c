// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gltest provides an in-memory gfx.Context that records the state
// a real driver would hold, so setup code can be tested without a GPU.
package gltest

import (
	"sort"

	"github.com/devblok/glsketch/gfx"
)

// Object kinds used by Live and FailNext.
const (
	KindBuffer       = "buffer"
	KindVertexArray  = "vertexArray"
	KindTexture      = "texture"
	KindFramebuffer  = "framebuffer"
	KindRenderbuffer = "renderbuffer"
	KindShader       = "shader"
	KindProgram      = "program"
)

// AttribState is the pointer state of a single attribute location.
type AttribState struct {
	Enabled    bool
	Buffer     gfx.Buffer
	Size       int
	Type       gfx.Enum
	Normalized bool
	Stride     int
	Offset     int
	Divisor    int
}

// TexImage is the last image specified for a texture.
type TexImage struct {
	InternalFormat gfx.Enum
	Width, Height  int
	Format, Type   gfx.Enum
	Data           []byte
}

// Draw records one draw call.
type Draw struct {
	Mode      gfx.Enum
	First     int
	Count     int
	Instances int
	Program   gfx.Program
	Elements  bool
	Scissored bool
}

type shader struct {
	typ      gfx.Enum
	src      string
	compiled bool
}

type program struct {
	shaders []gfx.Shader
	linked  bool
}

// Context is a recording gfx.Context.
type Context struct {
	// MaxTextureUnits is reported for MAX_TEXTURE_IMAGE_UNITS.
	MaxTextureUnits int

	// Attribs and Uniforms are the active locations of every program.
	Attribs  map[string]gfx.Attrib
	Uniforms map[string]gfx.Uniform

	// CompileLog, when set, fails every shader compilation with this log.
	// LinkLog does the same for program linking.
	CompileLog string
	LinkLog    string

	Extensions map[string]bool
	Strings    map[gfx.Enum]string

	// Calls counts invocations per method name.
	Calls map[string]int
	Draws []Draw

	next     uint
	fail     map[string]int
	live     map[string]map[uint]bool
	buffers  map[uint][]byte
	bindings map[gfx.Enum]uint
	vao      uint
	attribs  map[uint]map[gfx.Attrib]*AttribState
	unit     int
	units    []map[gfx.Enum]gfx.Texture
	params   map[uint]map[gfx.Enum]int
	images   map[uint]TexImage
	attached map[uint]gfx.Texture
	shaders  map[uint]*shader
	programs map[uint]*program
	program  uint
	uniforms map[int][]float32
	enabled  map[gfx.Enum]bool
	clear    [4]float32
	viewport [4]int
	scissor  [4]int
}

// New creates an empty context with 16 texture units.
func New() *Context {
	c := &Context{
		MaxTextureUnits: 16,
		Attribs:         map[string]gfx.Attrib{},
		Uniforms:        map[string]gfx.Uniform{},
		Extensions:      map[string]bool{},
		Strings: map[gfx.Enum]string{
			gfx.VENDOR:                   "gltest",
			gfx.RENDERER:                 "gltest",
			gfx.VERSION:                  "WebGL 2.0 (gltest)",
			gfx.SHADING_LANGUAGE_VERSION: "WebGL GLSL ES 3.00 (gltest)",
		},
		Calls:    map[string]int{},
		fail:     map[string]int{},
		live:     map[string]map[uint]bool{},
		buffers:  map[uint][]byte{},
		bindings: map[gfx.Enum]uint{},
		attribs:  map[uint]map[gfx.Attrib]*AttribState{},
		params:   map[uint]map[gfx.Enum]int{},
		images:   map[uint]TexImage{},
		attached: map[uint]gfx.Texture{},
		shaders:  map[uint]*shader{},
		programs: map[uint]*program{},
		uniforms: map[int][]float32{},
		enabled:  map[gfx.Enum]bool{},
	}
	return c
}

// FailNext makes the next creation of the given kind return a null handle.
func (c *Context) FailNext(kind string) {
	c.fail[kind]++
}

// Live returns the number of objects of kind that exist in the context.
func (c *Context) Live(kind string) int {
	return len(c.live[kind])
}

// IsLive reports whether name v of kind exists in the context.
func (c *Context) IsLive(kind string, v uint) bool {
	return c.live[kind][v]
}

func (c *Context) called(name string) {
	c.Calls[name]++
}

func (c *Context) create(kind string) uint {
	if c.fail[kind] > 0 {
		c.fail[kind]--
		return 0
	}
	c.next++
	if c.live[kind] == nil {
		c.live[kind] = map[uint]bool{}
	}
	c.live[kind][c.next] = true
	return c.next
}

func (c *Context) destroy(kind string, v uint) {
	if v == 0 {
		return
	}
	delete(c.live[kind], v)
}

func (c *Context) ensureUnits() {
	for len(c.units) < c.MaxTextureUnits {
		c.units = append(c.units, map[gfx.Enum]gfx.Texture{})
	}
}

// CreateBuffer implements gfx.Context.
func (c *Context) CreateBuffer() gfx.Buffer {
	c.called("CreateBuffer")
	return gfx.Buffer{V: c.create(KindBuffer)}
}

// DeleteBuffer implements gfx.Context.
func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.called("DeleteBuffer")
	c.destroy(KindBuffer, b.V)
	delete(c.buffers, b.V)
	for target, v := range c.bindings {
		if v == b.V && (target == gfx.ARRAY_BUFFER || target == gfx.ELEMENT_ARRAY_BUFFER) {
			c.bindings[target] = 0
		}
	}
}

// BindBuffer implements gfx.Context.
func (c *Context) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	c.called("BindBuffer")
	c.bindings[target] = b.V
}

// BufferData implements gfx.Context.
func (c *Context) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	c.called("BufferData")
	if v := c.bindings[target]; v != 0 {
		c.buffers[v] = append([]byte(nil), data...)
	}
}

// BufferDataSize implements gfx.Context.
func (c *Context) BufferDataSize(target gfx.Enum, size int, usage gfx.Enum) {
	c.called("BufferDataSize")
	if v := c.bindings[target]; v != 0 {
		c.buffers[v] = make([]byte, size)
	}
}

// BufferSubData implements gfx.Context.
func (c *Context) BufferSubData(target gfx.Enum, offset int, data []byte) {
	c.called("BufferSubData")
	if v := c.bindings[target]; v != 0 {
		buf := c.buffers[v]
		if offset+len(data) > len(buf) {
			return
		}
		copy(buf[offset:], data)
	}
}

// Contents returns the data store of b.
func (c *Context) Contents(b gfx.Buffer) []byte {
	return c.buffers[b.V]
}

// BoundBuffer returns the buffer bound to target.
func (c *Context) BoundBuffer(target gfx.Enum) gfx.Buffer {
	return gfx.Buffer{V: c.bindings[target]}
}

// CreateVertexArray implements gfx.Context.
func (c *Context) CreateVertexArray() gfx.VertexArray {
	c.called("CreateVertexArray")
	return gfx.VertexArray{V: c.create(KindVertexArray)}
}

// DeleteVertexArray implements gfx.Context.
func (c *Context) DeleteVertexArray(a gfx.VertexArray) {
	c.called("DeleteVertexArray")
	if a.V == 0 {
		return
	}
	c.destroy(KindVertexArray, a.V)
	delete(c.attribs, a.V)
	if c.vao == a.V {
		c.vao = 0
	}
}

// BindVertexArray implements gfx.Context.
func (c *Context) BindVertexArray(a gfx.VertexArray) {
	c.called("BindVertexArray")
	c.vao = a.V
}

// BoundVertexArray returns the bound vertex array.
func (c *Context) BoundVertexArray() gfx.VertexArray {
	return gfx.VertexArray{V: c.vao}
}

// GetAttribLocation implements gfx.Context.
func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	c.called("GetAttribLocation")
	if loc, ok := c.Attribs[name]; ok {
		return loc
	}
	return gfx.NoAttrib
}

func (c *Context) attrib(a gfx.Attrib) *AttribState {
	state, ok := c.attribs[c.vao]
	if !ok {
		state = map[gfx.Attrib]*AttribState{}
		c.attribs[c.vao] = state
	}
	s, ok := state[a]
	if !ok {
		s = &AttribState{Size: 4, Type: gfx.FLOAT}
		state[a] = s
	}
	return s
}

// EnableVertexAttribArray implements gfx.Context.
func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.called("EnableVertexAttribArray")
	c.attrib(a).Enabled = true
}

// VertexAttribPointer implements gfx.Context.
func (c *Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	c.called("VertexAttribPointer")
	s := c.attrib(a)
	s.Buffer = gfx.Buffer{V: c.bindings[gfx.ARRAY_BUFFER]}
	s.Size = size
	s.Type = typ
	s.Normalized = normalized
	s.Stride = stride
	s.Offset = offset
}

// VertexAttribDivisor implements gfx.Context.
func (c *Context) VertexAttribDivisor(a gfx.Attrib, divisor int) {
	c.called("VertexAttribDivisor")
	c.attrib(a).Divisor = divisor
}

// Attrib returns the state of location a in the bound vertex array.
func (c *Context) Attrib(a gfx.Attrib) AttribState {
	if s, ok := c.attribs[c.vao][a]; ok {
		return *s
	}
	return AttribState{Size: 4, Type: gfx.FLOAT}
}

// EnabledAttribs returns the enabled locations of the bound vertex array
// in ascending order.
func (c *Context) EnabledAttribs() []gfx.Attrib {
	var locs []gfx.Attrib
	for loc, s := range c.attribs[c.vao] {
		if s.Enabled {
			locs = append(locs, loc)
		}
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
	return locs
}

// CreateTexture implements gfx.Context.
func (c *Context) CreateTexture() gfx.Texture {
	c.called("CreateTexture")
	return gfx.Texture{V: c.create(KindTexture)}
}

// DeleteTexture implements gfx.Context.
func (c *Context) DeleteTexture(t gfx.Texture) {
	c.called("DeleteTexture")
	c.destroy(KindTexture, t.V)
	delete(c.params, t.V)
	delete(c.images, t.V)
	for _, unit := range c.units {
		for target, bound := range unit {
			if bound == t {
				delete(unit, target)
			}
		}
	}
}

// ActiveTexture implements gfx.Context.
func (c *Context) ActiveTexture(unit gfx.Enum) {
	c.called("ActiveTexture")
	c.unit = int(unit - gfx.TEXTURE0)
}

// ActiveUnit returns the active texture unit index.
func (c *Context) ActiveUnit() int {
	return c.unit
}

// BindTexture implements gfx.Context.
func (c *Context) BindTexture(target gfx.Enum, t gfx.Texture) {
	c.called("BindTexture")
	c.ensureUnits()
	if c.unit < 0 || c.unit >= len(c.units) {
		return
	}
	if t.Valid() {
		c.units[c.unit][target] = t
	} else {
		delete(c.units[c.unit], target)
	}
}

// BoundTexture returns the texture bound to target on unit.
func (c *Context) BoundTexture(unit int, target gfx.Enum) gfx.Texture {
	if unit < 0 || unit >= len(c.units) {
		return gfx.Texture{}
	}
	return c.units[unit][target]
}

func (c *Context) boundTexture(target gfx.Enum) uint {
	return c.BoundTexture(c.unit, target).V
}

// TexParameteri implements gfx.Context.
func (c *Context) TexParameteri(target, pname gfx.Enum, param int) {
	c.called("TexParameteri")
	v := c.boundTexture(target)
	if v == 0 {
		return
	}
	if c.params[v] == nil {
		c.params[v] = map[gfx.Enum]int{}
	}
	c.params[v][pname] = param
}

// TexParameter returns a parameter previously set on t.
func (c *Context) TexParameter(t gfx.Texture, pname gfx.Enum) int {
	return c.params[t.V][pname]
}

// TexImage2D implements gfx.Context.
func (c *Context) TexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, format, typ gfx.Enum, data []byte) {
	c.called("TexImage2D")
	v := c.boundTexture(target)
	if v == 0 || level != 0 {
		return
	}
	c.images[v] = TexImage{
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
		Format:         format,
		Type:           typ,
		Data:           append([]byte(nil), data...),
	}
}

// Image returns the level 0 image of t.
func (c *Context) Image(t gfx.Texture) (TexImage, bool) {
	img, ok := c.images[t.V]
	return img, ok
}

// CreateFramebuffer implements gfx.Context.
func (c *Context) CreateFramebuffer() gfx.Framebuffer {
	c.called("CreateFramebuffer")
	return gfx.Framebuffer{V: c.create(KindFramebuffer)}
}

// DeleteFramebuffer implements gfx.Context.
func (c *Context) DeleteFramebuffer(fb gfx.Framebuffer) {
	c.called("DeleteFramebuffer")
	c.destroy(KindFramebuffer, fb.V)
	delete(c.attached, fb.V)
	if c.bindings[gfx.FRAMEBUFFER] == fb.V {
		c.bindings[gfx.FRAMEBUFFER] = 0
	}
}

// BindFramebuffer implements gfx.Context.
func (c *Context) BindFramebuffer(target gfx.Enum, fb gfx.Framebuffer) {
	c.called("BindFramebuffer")
	c.bindings[target] = fb.V
}

// BoundFramebuffer returns the framebuffer bound to FRAMEBUFFER.
func (c *Context) BoundFramebuffer() gfx.Framebuffer {
	return gfx.Framebuffer{V: c.bindings[gfx.FRAMEBUFFER]}
}

// FramebufferTexture2D implements gfx.Context.
func (c *Context) FramebufferTexture2D(target, attachment, texTarget gfx.Enum, t gfx.Texture, level int) {
	c.called("FramebufferTexture2D")
	if v := c.bindings[target]; v != 0 {
		c.attached[v] = t
	}
}

// CheckFramebufferStatus implements gfx.Context.
func (c *Context) CheckFramebufferStatus(target gfx.Enum) gfx.Enum {
	c.called("CheckFramebufferStatus")
	v := c.bindings[target]
	if v == 0 {
		return gfx.FRAMEBUFFER_COMPLETE
	}
	if t, ok := c.attached[v]; !ok || !c.IsLive(KindTexture, t.V) {
		return gfx.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gfx.FRAMEBUFFER_COMPLETE
}

// BindRenderbuffer implements gfx.Context.
func (c *Context) BindRenderbuffer(target gfx.Enum, rb gfx.Renderbuffer) {
	c.called("BindRenderbuffer")
	c.bindings[target] = rb.V
}

// BoundRenderbuffer returns the renderbuffer bound to RENDERBUFFER.
func (c *Context) BoundRenderbuffer() gfx.Renderbuffer {
	return gfx.Renderbuffer{V: c.bindings[gfx.RENDERBUFFER]}
}

// CreateShader implements gfx.Context.
func (c *Context) CreateShader(typ gfx.Enum) gfx.Shader {
	c.called("CreateShader")
	v := c.create(KindShader)
	if v != 0 {
		c.shaders[v] = &shader{typ: typ}
	}
	return gfx.Shader{V: v}
}

// ShaderSource implements gfx.Context.
func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.called("ShaderSource")
	if sh, ok := c.shaders[s.V]; ok {
		sh.src = src
	}
}

// CompileShader implements gfx.Context.
func (c *Context) CompileShader(s gfx.Shader) {
	c.called("CompileShader")
	if sh, ok := c.shaders[s.V]; ok {
		sh.compiled = c.CompileLog == "" && sh.src != ""
	}
}

// GetShaderi implements gfx.Context.
func (c *Context) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	c.called("GetShaderi")
	sh, ok := c.shaders[s.V]
	if !ok {
		return 0
	}
	switch pname {
	case gfx.COMPILE_STATUS:
		if sh.compiled {
			return 1
		}
	case gfx.INFO_LOG_LENGTH:
		return len(c.shaderLog(sh))
	}
	return 0
}

func (c *Context) shaderLog(sh *shader) string {
	if sh.compiled {
		return ""
	}
	if c.CompileLog != "" {
		return c.CompileLog
	}
	return "ERROR: 0:1: empty source"
}

// GetShaderInfoLog implements gfx.Context.
func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	c.called("GetShaderInfoLog")
	if sh, ok := c.shaders[s.V]; ok {
		return c.shaderLog(sh)
	}
	return ""
}

// ShaderSourceOf returns the source last given to s.
func (c *Context) ShaderSourceOf(s gfx.Shader) string {
	if sh, ok := c.shaders[s.V]; ok {
		return sh.src
	}
	return ""
}

// DeleteShader implements gfx.Context.
func (c *Context) DeleteShader(s gfx.Shader) {
	c.called("DeleteShader")
	c.destroy(KindShader, s.V)
	delete(c.shaders, s.V)
}

// CreateProgram implements gfx.Context.
func (c *Context) CreateProgram() gfx.Program {
	c.called("CreateProgram")
	v := c.create(KindProgram)
	if v != 0 {
		c.programs[v] = &program{}
	}
	return gfx.Program{V: v}
}

// AttachShader implements gfx.Context.
func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.called("AttachShader")
	if pr, ok := c.programs[p.V]; ok {
		pr.shaders = append(pr.shaders, s)
	}
}

// LinkProgram implements gfx.Context.
func (c *Context) LinkProgram(p gfx.Program) {
	c.called("LinkProgram")
	pr, ok := c.programs[p.V]
	if !ok {
		return
	}
	pr.linked = c.LinkLog == "" && len(pr.shaders) > 0
	for _, s := range pr.shaders {
		// a deleted shader stays attached, only live ones are checked
		if sh, ok := c.shaders[s.V]; ok && !sh.compiled {
			pr.linked = false
		}
	}
}

// GetProgrami implements gfx.Context.
func (c *Context) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	c.called("GetProgrami")
	pr, ok := c.programs[p.V]
	if !ok {
		return 0
	}
	switch pname {
	case gfx.LINK_STATUS:
		if pr.linked {
			return 1
		}
	case gfx.INFO_LOG_LENGTH:
		return len(c.LinkLog)
	}
	return 0
}

// GetProgramInfoLog implements gfx.Context.
func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	c.called("GetProgramInfoLog")
	if pr, ok := c.programs[p.V]; ok && !pr.linked {
		return c.LinkLog
	}
	return ""
}

// DeleteProgram implements gfx.Context.
func (c *Context) DeleteProgram(p gfx.Program) {
	c.called("DeleteProgram")
	c.destroy(KindProgram, p.V)
	delete(c.programs, p.V)
	if c.program == p.V {
		c.program = 0
	}
}

// UseProgram implements gfx.Context.
func (c *Context) UseProgram(p gfx.Program) {
	c.called("UseProgram")
	c.program = p.V
}

// CurrentProgram returns the program in use.
func (c *Context) CurrentProgram() gfx.Program {
	return gfx.Program{V: c.program}
}

// GetUniformLocation implements gfx.Context.
func (c *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	c.called("GetUniformLocation")
	if u, ok := c.Uniforms[name]; ok {
		return u
	}
	return gfx.NoUniform
}

func (c *Context) setUniform(u gfx.Uniform, v ...float32) {
	if !u.Valid() {
		return
	}
	c.uniforms[u.V] = append([]float32(nil), v...)
}

// UniformValue returns the last value set on u.
func (c *Context) UniformValue(u gfx.Uniform) []float32 {
	return c.uniforms[u.V]
}

// Uniform1i implements gfx.Context.
func (c *Context) Uniform1i(u gfx.Uniform, v int) {
	c.called("Uniform1i")
	c.setUniform(u, float32(v))
}

// Uniform1f implements gfx.Context.
func (c *Context) Uniform1f(u gfx.Uniform, v float32) {
	c.called("Uniform1f")
	c.setUniform(u, v)
}

// Uniform2f implements gfx.Context.
func (c *Context) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	c.called("Uniform2f")
	c.setUniform(u, v0, v1)
}

// Uniform4f implements gfx.Context.
func (c *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	c.called("Uniform4f")
	c.setUniform(u, v0, v1, v2, v3)
}

// UniformMatrix3fv implements gfx.Context.
func (c *Context) UniformMatrix3fv(u gfx.Uniform, m []float32) {
	c.called("UniformMatrix3fv")
	c.setUniform(u, m...)
}

// UniformMatrix4fv implements gfx.Context.
func (c *Context) UniformMatrix4fv(u gfx.Uniform, m []float32) {
	c.called("UniformMatrix4fv")
	c.setUniform(u, m...)
}

// GetInteger implements gfx.Context.
func (c *Context) GetInteger(pname gfx.Enum) int {
	c.called("GetInteger")
	switch pname {
	case gfx.MAX_TEXTURE_IMAGE_UNITS:
		return c.MaxTextureUnits
	case gfx.MAX_TEXTURE_SIZE:
		return 4096
	case gfx.MAX_VERTEX_ATTRIBS:
		return 16
	case gfx.ARRAY_BUFFER_BINDING:
		return int(c.bindings[gfx.ARRAY_BUFFER])
	case gfx.ELEMENT_ARRAY_BUFFER_BINDING:
		return int(c.bindings[gfx.ELEMENT_ARRAY_BUFFER])
	case gfx.FRAMEBUFFER_BINDING:
		return int(c.bindings[gfx.FRAMEBUFFER])
	case gfx.RENDERBUFFER_BINDING:
		return int(c.bindings[gfx.RENDERBUFFER])
	case gfx.VERTEX_ARRAY_BINDING:
		return int(c.vao)
	case gfx.ACTIVE_TEXTURE:
		return int(gfx.TEXTURE0) + c.unit
	}
	return 0
}

// GetString implements gfx.Context.
func (c *Context) GetString(pname gfx.Enum) string {
	c.called("GetString")
	return c.Strings[pname]
}

// GetExtension implements gfx.Context.
func (c *Context) GetExtension(name string) bool {
	c.called("GetExtension")
	return c.Extensions[name]
}

// Enable implements gfx.Context.
func (c *Context) Enable(capability gfx.Enum) {
	c.called("Enable")
	c.enabled[capability] = true
}

// Disable implements gfx.Context.
func (c *Context) Disable(capability gfx.Enum) {
	c.called("Disable")
	delete(c.enabled, capability)
}

// IsEnabled reports whether capability was enabled.
func (c *Context) IsEnabled(capability gfx.Enum) bool {
	return c.enabled[capability]
}

// Viewport implements gfx.Context.
func (c *Context) Viewport(x, y, width, height int) {
	c.called("Viewport")
	c.viewport = [4]int{x, y, width, height}
}

// CurrentViewport returns the last viewport set.
func (c *Context) CurrentViewport() [4]int {
	return c.viewport
}

// Scissor implements gfx.Context.
func (c *Context) Scissor(x, y, width, height int) {
	c.called("Scissor")
	c.scissor = [4]int{x, y, width, height}
}

// CurrentScissor returns the last scissor box set.
func (c *Context) CurrentScissor() [4]int {
	return c.scissor
}

// ClearColor implements gfx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.called("ClearColor")
	c.clear = [4]float32{r, g, b, a}
}

// CurrentClearColor returns the last clear color set.
func (c *Context) CurrentClearColor() [4]float32 {
	return c.clear
}

// Clear implements gfx.Context.
func (c *Context) Clear(mask gfx.Enum) {
	c.called("Clear")
}

func (c *Context) draw(d Draw) {
	d.Program = c.CurrentProgram()
	d.Scissored = c.enabled[gfx.SCISSOR_TEST]
	c.Draws = append(c.Draws, d)
}

// DrawArrays implements gfx.Context.
func (c *Context) DrawArrays(mode gfx.Enum, first, count int) {
	c.called("DrawArrays")
	c.draw(Draw{Mode: mode, First: first, Count: count, Instances: 1})
}

// DrawArraysInstanced implements gfx.Context.
func (c *Context) DrawArraysInstanced(mode gfx.Enum, first, count, instances int) {
	c.called("DrawArraysInstanced")
	c.draw(Draw{Mode: mode, First: first, Count: count, Instances: instances})
}

// DrawElements implements gfx.Context.
func (c *Context) DrawElements(mode gfx.Enum, count int, typ gfx.Enum, offset int) {
	c.called("DrawElements")
	c.draw(Draw{Mode: mode, First: offset, Count: count, Instances: 1, Elements: true})
}

// ReadPixels implements gfx.Context. Reads return the clear color.
func (c *Context) ReadPixels(dst []byte, x, y, width, height int, format, typ gfx.Enum) {
	c.called("ReadPixels")
	if typ != gfx.UNSIGNED_BYTE || format != gfx.RGBA {
		return
	}
	for i := 0; i+4 <= len(dst) && i < width*height*4; i += 4 {
		for ch := 0; ch < 4; ch++ {
			dst[i+ch] = uint8(c.clear[ch]*255 + 0.5)
		}
	}
}

var _ gfx.Context = (*Context)(nil)
