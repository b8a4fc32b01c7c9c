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

// NewResources creates a tracker for objects created on gl.
// It is meant to live as long as one mounted sketch.
func NewResources(gl gfx.Context) *Resources {
	return &Resources{
		gl:           gl,
		buffers:      make(map[gfx.Buffer]struct{}),
		vertexArrays: make(map[gfx.VertexArray]struct{}),
		textures:     make(map[gfx.Texture]struct{}),
		framebuffers: make(map[gfx.Framebuffer]struct{}),
	}
}

// Resources creates buffers, vertex arrays, textures and framebuffers
// and remembers every one of them, so that DeleteAll can free the whole
// GPU footprint of a sketch in one call. Like the context it wraps,
// Resources is not safe for concurrent use.
type Resources struct {
	gl gfx.Context

	buffers      map[gfx.Buffer]struct{}
	vertexArrays map[gfx.VertexArray]struct{}
	textures     map[gfx.Texture]struct{}
	framebuffers map[gfx.Framebuffer]struct{}
}

// Context returns the context the objects are created on.
func (r *Resources) Context() gfx.Context {
	return r.gl
}

// CreateBuffer allocates a buffer. When data is not nil it is uploaded
// straight away with the given usage, STATIC_DRAW when usage is zero.
func (r *Resources) CreateBuffer(data []byte, usage gfx.Enum) (gfx.Buffer, error) {
	buffer := r.gl.CreateBuffer()
	if !buffer.Valid() {
		return gfx.Buffer{}, fmt.Errorf("gl.CreateBuffer(): %w", ErrAllocation)
	}
	if data != nil {
		if usage == 0 {
			usage = gfx.STATIC_DRAW
		}
		r.gl.BindBuffer(gfx.ARRAY_BUFFER, buffer)
		r.gl.BufferData(gfx.ARRAY_BUFFER, data, usage)
		r.gl.BindBuffer(gfx.ARRAY_BUFFER, gfx.Buffer{})
	}
	r.buffers[buffer] = struct{}{}
	return buffer, nil
}

// CreateBufferSize allocates a buffer with size bytes of uninitialised
// storage, to be filled later with BufferSubData.
func (r *Resources) CreateBufferSize(size int, usage gfx.Enum) (gfx.Buffer, error) {
	buffer := r.gl.CreateBuffer()
	if !buffer.Valid() {
		return gfx.Buffer{}, fmt.Errorf("gl.CreateBuffer(): %w", ErrAllocation)
	}
	if usage == 0 {
		usage = gfx.DYNAMIC_DRAW
	}
	r.gl.BindBuffer(gfx.ARRAY_BUFFER, buffer)
	r.gl.BufferDataSize(gfx.ARRAY_BUFFER, size, usage)
	r.gl.BindBuffer(gfx.ARRAY_BUFFER, gfx.Buffer{})
	r.buffers[buffer] = struct{}{}
	return buffer, nil
}

// CreateVertexArray allocates a vertex array object.
func (r *Resources) CreateVertexArray() (gfx.VertexArray, error) {
	vao := r.gl.CreateVertexArray()
	if !vao.Valid() {
		return gfx.VertexArray{}, fmt.Errorf("gl.CreateVertexArray(): %w", ErrAllocation)
	}
	r.vertexArrays[vao] = struct{}{}
	return vao, nil
}

// CreateTexture allocates a texture object.
func (r *Resources) CreateTexture() (gfx.Texture, error) {
	texture := r.gl.CreateTexture()
	if !texture.Valid() {
		return gfx.Texture{}, fmt.Errorf("gl.CreateTexture(): %w", ErrAllocation)
	}
	r.textures[texture] = struct{}{}
	return texture, nil
}

// CreateFramebuffer allocates a framebuffer object.
func (r *Resources) CreateFramebuffer() (gfx.Framebuffer, error) {
	fbo := r.gl.CreateFramebuffer()
	if !fbo.Valid() {
		return gfx.Framebuffer{}, fmt.Errorf("gl.CreateFramebuffer(): %w", ErrAllocation)
	}
	r.framebuffers[fbo] = struct{}{}
	return fbo, nil
}

// DeleteBuffer frees a buffer created by r.
// Buffers r does not know about are left alone.
func (r *Resources) DeleteBuffer(buffer gfx.Buffer) {
	if _, ok := r.buffers[buffer]; !ok {
		return
	}
	r.gl.DeleteBuffer(buffer)
	delete(r.buffers, buffer)
}

// DeleteVertexArray frees a vertex array created by r.
func (r *Resources) DeleteVertexArray(vao gfx.VertexArray) {
	if _, ok := r.vertexArrays[vao]; !ok {
		return
	}
	r.gl.DeleteVertexArray(vao)
	delete(r.vertexArrays, vao)
}

// DeleteTexture frees a texture created by r.
func (r *Resources) DeleteTexture(texture gfx.Texture) {
	if _, ok := r.textures[texture]; !ok {
		return
	}
	r.gl.DeleteTexture(texture)
	delete(r.textures, texture)
}

// DeleteFramebuffer frees a framebuffer created by r.
func (r *Resources) DeleteFramebuffer(fbo gfx.Framebuffer) {
	if _, ok := r.framebuffers[fbo]; !ok {
		return
	}
	r.gl.DeleteFramebuffer(fbo)
	delete(r.framebuffers, fbo)
}

// DeleteAll frees every object r still tracks, once each.
func (r *Resources) DeleteAll() {
	if r.empty() {
		return
	}
	log.WithFields(log.Fields{
		"buffers":      len(r.buffers),
		"vertexArrays": len(r.vertexArrays),
		"textures":     len(r.textures),
		"framebuffers": len(r.framebuffers),
	}).Debug("Releasing GPU resources")

	for buffer := range r.buffers {
		r.gl.DeleteBuffer(buffer)
	}
	for vao := range r.vertexArrays {
		r.gl.DeleteVertexArray(vao)
	}
	for texture := range r.textures {
		r.gl.DeleteTexture(texture)
	}
	for fbo := range r.framebuffers {
		r.gl.DeleteFramebuffer(fbo)
	}
	r.buffers = make(map[gfx.Buffer]struct{})
	r.vertexArrays = make(map[gfx.VertexArray]struct{})
	r.textures = make(map[gfx.Texture]struct{})
	r.framebuffers = make(map[gfx.Framebuffer]struct{})
}

// Release implements gfx.Releasable.
func (r *Resources) Release() {
	r.DeleteAll()
}

var _ gfx.Releasable = (*Resources)(nil)

// Len returns how many objects of kind are tracked.
func (r *Resources) Len(kind Kind) int {
	switch kind {
	case BufferKind:
		return len(r.buffers)
	case VertexArrayKind:
		return len(r.vertexArrays)
	case TextureKind:
		return len(r.textures)
	case FramebufferKind:
		return len(r.framebuffers)
	}
	return 0
}

// Tracks reports whether the object named v of kind is tracked.
func (r *Resources) Tracks(kind Kind, v uint) bool {
	var ok bool
	switch kind {
	case BufferKind:
		_, ok = r.buffers[gfx.Buffer{V: v}]
	case VertexArrayKind:
		_, ok = r.vertexArrays[gfx.VertexArray{V: v}]
	case TextureKind:
		_, ok = r.textures[gfx.Texture{V: v}]
	case FramebufferKind:
		_, ok = r.framebuffers[gfx.Framebuffer{V: v}]
	}
	return ok
}

func (r *Resources) empty() bool {
	return len(r.buffers) == 0 && len(r.vertexArrays) == 0 &&
		len(r.textures) == 0 && len(r.framebuffers) == 0
}
