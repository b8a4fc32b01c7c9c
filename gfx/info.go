// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Info describes the capabilities of a graphics context.
type Info struct {
	Vendor           string
	Renderer         string
	Version          string
	ShadingLanguage  string
	MaxTextureUnits  int
	MaxTextureSize   int
	MaxVertexAttribs int
}

// QueryInfo reads the capabilities of gl.
func QueryInfo(gl Context) Info {
	return Info{
		Vendor:           gl.GetString(VENDOR),
		Renderer:         gl.GetString(RENDERER),
		Version:          gl.GetString(VERSION),
		ShadingLanguage:  gl.GetString(SHADING_LANGUAGE_VERSION),
		MaxTextureUnits:  gl.GetInteger(MAX_TEXTURE_IMAGE_UNITS),
		MaxTextureSize:   gl.GetInteger(MAX_TEXTURE_SIZE),
		MaxVertexAttribs: gl.GetInteger(MAX_VERTEX_ATTRIBS),
	}
}
