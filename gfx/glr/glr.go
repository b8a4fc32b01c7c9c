// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr keeps track of the GPU objects a sketch creates and binds
// vertex attributes, textures and programs against a gfx.Context.
package glr

import (
	"errors"
	"fmt"

	"github.com/devblok/glsketch/gfx"
)

// package errors
var (
	ErrAllocation            = errors.New("context refused to allocate object")
	ErrAttributeNotFound     = errors.New("attribute not active in program")
	ErrUniformNotFound       = errors.New("uniform not active in program")
	ErrIncompleteFramebuffer = errors.New("framebuffer incomplete")
)

// ShaderError is returned when a shader fails to compile or
// a program fails to link. Log holds the driver diagnostics.
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Log)
}

// Kind identifies one of the object sets a Resources tracks.
type Kind int

// Tracked object kinds.
const (
	BufferKind Kind = iota
	VertexArrayKind
	TextureKind
	FramebufferKind
)

func (k Kind) String() string {
	switch k {
	case BufferKind:
		return "buffer"
	case VertexArrayKind:
		return "vertexArray"
	case TextureKind:
		return "texture"
	case FramebufferKind:
		return "framebuffer"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CheckFramebuffer returns ErrIncompleteFramebuffer when the framebuffer
// bound to target cannot be rendered to.
func CheckFramebuffer(gl gfx.Context, target gfx.Enum) error {
	if status := gl.CheckFramebufferStatus(target); status != gfx.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("gl.CheckFramebufferStatus(0x%x): %w", uint(status), ErrIncompleteFramebuffer)
	}
	return nil
}
