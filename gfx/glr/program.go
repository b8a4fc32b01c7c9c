// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"

	"github.com/devblok/glsketch/gfx"
)

// CompileShader creates and compiles a shader of typ from src.
// The shader is deleted again if compilation fails.
func CompileShader(gl gfx.Context, typ gfx.Enum, src string) (gfx.Shader, error) {
	shader := gl.CreateShader(typ)
	if !shader.Valid() {
		return gfx.Shader{}, fmt.Errorf("gl.CreateShader(): %w", ErrAllocation)
	}

	gl.ShaderSource(shader, src)
	gl.CompileShader(shader)

	if gl.GetShaderi(shader, gfx.COMPILE_STATUS) == 0 {
		info := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return gfx.Shader{}, &ShaderError{Stage: stageName(typ), Log: info}
	}
	return shader, nil
}

// CreateProgram links a program out of a vertex and a fragment shader.
func CreateProgram(gl gfx.Context, vs, fs gfx.Shader) (gfx.Program, error) {
	program := gl.CreateProgram()
	if !program.Valid() {
		return gfx.Program{}, fmt.Errorf("gl.CreateProgram(): %w", ErrAllocation)
	}

	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	if gl.GetProgrami(program, gfx.LINK_STATUS) == 0 {
		info := gl.GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		return gfx.Program{}, &ShaderError{Stage: "program linking", Log: info}
	}
	return program, nil
}

// CreateProgramForShaders compiles both sources and links them.
// The shader objects are flagged for deletion once the program holds them.
func CreateProgramForShaders(gl gfx.Context, vertexSrc, fragmentSrc string) (gfx.Program, error) {
	vs, err := CompileShader(gl, gfx.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return gfx.Program{}, err
	}
	defer gl.DeleteShader(vs)

	fs, err := CompileShader(gl, gfx.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return gfx.Program{}, err
	}
	defer gl.DeleteShader(fs)

	return CreateProgram(gl, vs, fs)
}

// UniformLocation looks up name in p. Unless silent, a uniform the
// program does not use is an error.
func UniformLocation(gl gfx.Context, p gfx.Program, name string, silent bool) (gfx.Uniform, error) {
	u := gl.GetUniformLocation(p, name)
	if !u.Valid() && !silent {
		return u, fmt.Errorf("could not create location %s: %w", name, ErrUniformNotFound)
	}
	return u, nil
}

// UniformLocations looks up every name in p.
func UniformLocations(gl gfx.Context, p gfx.Program, names []string, silent bool) (map[string]gfx.Uniform, error) {
	locations := make(map[string]gfx.Uniform, len(names))
	for _, name := range names {
		u, err := UniformLocation(gl, p, name, silent)
		if err != nil {
			return nil, err
		}
		locations[name] = u
	}
	return locations, nil
}

func stageName(typ gfx.Enum) string {
	switch typ {
	case gfx.VERTEX_SHADER:
		return "vertex shader compilation"
	case gfx.FRAGMENT_SHADER:
		return "fragment shader compilation"
	}
	return "shader compilation"
}
