// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glcore"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)

	window, err := sdl.CreateWindow("glinfo", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		1, 1, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		panic(fmt.Errorf("sdl.GLCreateContext(): %s: %w", err, gfx.ErrContextUnavailable))
	}
	defer sdl.GLDeleteContext(glContext)

	gl, err := glcore.Init()
	if err != nil {
		panic(err)
	}

	if bytes, err := json.Marshal(gfx.QueryInfo(gl)); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		panic(err)
	}
}
