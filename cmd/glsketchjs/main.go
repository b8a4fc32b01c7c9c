// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build js && wasm
// +build js,wasm

// Command glsketchjs runs the gallery in a browser. It draws to the
// canvas with id "glsketch", the location hash selects the demo and
// the arrow keys step through the others.
package main

import (
	"strings"
	"syscall/js"
	"time"

	"github.com/devblok/glsketch/assets"
	"github.com/devblok/glsketch/core"
	"github.com/devblok/glsketch/demo"
	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/webgl"
	log "github.com/sirupsen/logrus"
)

const canvasID = "glsketch"

// surface is the canvas the stage draws to
type surface struct {
	canvas js.Value
	loader *assets.Loader
}

// Size resizes the drawing buffer to the displayed size of the canvas
func (s surface) Size() (int, int) {
	ratio := js.Global().Get("devicePixelRatio").Float()
	w := int(s.canvas.Get("clientWidth").Float() * ratio)
	h := int(s.canvas.Get("clientHeight").Float() * ratio)
	if s.canvas.Get("width").Int() != w || s.canvas.Get("height").Int() != h {
		s.canvas.Set("width", w)
		s.canvas.Set("height", h)
	}
	return w, h
}

func (s surface) Assets() *assets.Loader {
	return s.loader
}

func hashDemo(fallback string) string {
	if name := strings.TrimPrefix(js.Global().Get("location").Get("hash").String(), "#"); name != "" {
		return name
	}
	return fallback
}

func main() {
	configuration := core.DefaultConfiguration
	if level, err := log.ParseLevel(configuration.LogLevel); err == nil {
		log.SetLevel(level)
	}

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", canvasID)
	gl, err := webgl.NewContext(canvas, map[string]interface{}{"antialias": false})
	if err != nil {
		panic(err)
	}

	loader := assets.NewLoader(&demo.Assets)
	loader.MaxImageSize = gl.GetInteger(gfx.MAX_TEXTURE_SIZE)

	stage := core.NewStage(gl, surface{canvas: canvas, loader: loader})
	show := func(name string) {
		if err := stage.Show(name); err != nil {
			log.WithError(err).Error("Showing demo failed")
			return
		}
		js.Global().Get("location").Set("hash", stage.Current())
	}
	show(hashDemo(configuration.Demo))

	onHash := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if name := hashDemo(""); name != "" && name != stage.Current() {
			show(name)
		}
		return nil
	})
	defer onHash.Release()
	js.Global().Call("addEventListener", "hashchange", onHash)

	onKey := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var err error
		switch args[0].Get("key").String() {
		case "ArrowRight":
			err = stage.Step(1)
		case "ArrowLeft":
			err = stage.Step(-1)
		default:
			return nil
		}
		if err != nil {
			log.WithError(err).Error("Switching demo failed")
			return nil
		}
		js.Global().Get("location").Set("hash", stage.Current())
		return nil
	})
	defer onKey.Release()
	document.Call("addEventListener", "keydown", onKey)

	done := make(chan struct{})
	var render js.Func
	render = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := stage.Frame(time.Now()); err != nil {
			log.WithError(err).Error("Gallery stopped")
			stage.Unmount()
			close(done)
			return nil
		}
		js.Global().Call("requestAnimationFrame", render)
		return nil
	})
	defer render.Release()
	js.Global().Call("requestAnimationFrame", render)

	<-done
}
