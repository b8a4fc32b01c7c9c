package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/devblok/glsketch/util/collada"
	glm "github.com/go-gl/mathgl/mgl32"
)

// package errors
var (
	ErrNoGeometry     = errors.New("collada document has no geometry")
	ErrSourceNotFound = errors.New("source type not found")
	ErrBadIndex       = errors.New("index out of source range")
)

// DefaultColor is given to imported vertices
var DefaultColor = glm.Vec4{1.0, 1.0, 0.0, 1.0}

// ImportColladaObject reads given file and converts the first geometry of
// the Collada document to an Object
func ImportColladaObject(fileContents []byte) (Object, error) {
	var colladaModel collada.Collada
	if err := xml.Unmarshal(fileContents, &colladaModel); err != nil {
		return nil, err
	}
	if len(colladaModel.Geometries) == 0 {
		return nil, ErrNoGeometry
	}

	mesh := colladaModel.Geometries[0].Mesh
	positions, err := findSource(mesh.Source, "positions")
	if err != nil {
		return nil, err
	}

	stride := mesh.Triangles.Stride()
	vertexIn, ok := mesh.Triangles.Input("VERTEX")
	if !ok || stride == 0 {
		return nil, fmt.Errorf("VERTEX input: %w", ErrSourceNotFound)
	}

	var normals collada.Source
	normalIn, hasNormals := mesh.Triangles.Input("NORMAL")
	if hasNormals {
		if normals, err = findSource(mesh.Source, "normals"); err != nil {
			return nil, err
		}
	}

	var vertices []Vertex
	for idx := 0; idx+stride <= len(mesh.Triangles.Index); idx += stride {
		indices := mesh.Triangles.Index[idx : idx+stride]

		var vert Vertex
		if vert.Pos, err = vec3(positions.Floats.Data, indices[vertexIn.Offset]); err != nil {
			return nil, err
		}
		if hasNormals {
			if vert.Normal, err = vec3(normals.Floats.Data, indices[normalIn.Offset]); err != nil {
				return nil, err
			}
		}
		vert.Color = DefaultColor
		vertices = append(vertices, vert)
	}

	return &ColladaObject{
		position: glm.Ident4(),
		rotation: glm.Ident4(),
		vertices: vertices,
	}, nil
}

func vec3(data []float32, i int) (glm.Vec3, error) {
	if i < 0 || 3*i+3 > len(data) {
		return glm.Vec3{}, fmt.Errorf("%d of %d: %w", i, len(data)/3, ErrBadIndex)
	}
	return glm.Vec3{data[3*i], data[3*i+1], data[3*i+2]}, nil
}

// ColladaObject is imported from a collada (.dae) file.
// Loaded and held in memory
type ColladaObject struct {
	mutex    sync.RWMutex
	position glm.Mat4
	rotation glm.Mat4

	vertices []Vertex
}

// SetPosition implements interface
func (co *ColladaObject) SetPosition(pos glm.Mat4) {
	co.mutex.Lock()
	co.position = pos
	co.mutex.Unlock()
}

// Position implements interface
func (co *ColladaObject) Position() glm.Mat4 {
	co.mutex.RLock()
	defer co.mutex.RUnlock()
	return co.position
}

// SetRotation implements interface
func (co *ColladaObject) SetRotation(rot glm.Mat4) {
	co.mutex.Lock()
	co.rotation = rot
	co.mutex.Unlock()
}

// Rotation implements interface
func (co *ColladaObject) Rotation() glm.Mat4 {
	co.mutex.RLock()
	defer co.mutex.RUnlock()
	return co.rotation
}

// Vertices implements interface
func (co *ColladaObject) Vertices() []Vertex {
	return co.vertices
}

func findSource(sources []collada.Source, dataType string) (collada.Source, error) {
	for _, s := range sources {
		if strings.HasSuffix(s.ID, fmt.Sprintf("-%s", dataType)) {
			return s, nil
		}
	}
	return collada.Source{}, fmt.Errorf("%s: %w", dataType, ErrSourceNotFound)
}
