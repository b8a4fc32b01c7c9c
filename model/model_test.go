package model_test

import (
	"errors"
	"io/ioutil"
	"testing"

	"github.com/devblok/glsketch/gfx"
	"github.com/devblok/glsketch/gfx/glr"
	"github.com/devblok/glsketch/gfx/gltest"
	"github.com/devblok/glsketch/model"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCube(t *testing.T) model.Object {
	data, err := ioutil.ReadFile("testdata/cube.dae")
	require.NoError(t, err)
	obj, err := model.ImportColladaObject(data)
	require.NoError(t, err)
	return obj
}

func TestImportCube(t *testing.T) {
	obj := loadCube(t)

	vertices := obj.Vertices()
	require.Len(t, vertices, 12*3)

	// first triangle lies on the -z face
	for _, v := range vertices[:3] {
		assert.Equal(t, float32(-1), v.Pos.Z())
		assert.Equal(t, glm.Vec3{0, 0, -1}, v.Normal)
		assert.Equal(t, model.DefaultColor, v.Color)
	}
	for _, v := range vertices {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1, abs(v.Pos[i]), 1e-6)
		}
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestImportErrors(t *testing.T) {
	_, err := model.ImportColladaObject([]byte("<COLLADA></COLLADA>"))
	assert.True(t, errors.Is(err, model.ErrNoGeometry))

	_, err = model.ImportColladaObject([]byte(`<COLLADA><library_geometries><geometry id="g"><mesh>
		<source id="g-positions"><float_array id="a">0 0 0</float_array></source>
		<triangles count="1"><input semantic="VERTEX" source="#v" offset="0"/><p>0 0 5</p></triangles>
	</mesh></geometry></library_geometries></COLLADA>`))
	assert.True(t, errors.Is(err, model.ErrBadIndex))

	_, err = model.ImportColladaObject([]byte(`<COLLADA><library_geometries><geometry id="g"><mesh>
		<triangles count="1"><input semantic="VERTEX" source="#v" offset="0"/><p>0 0 0</p></triangles>
	</mesh></geometry></library_geometries></COLLADA>`))
	assert.True(t, errors.Is(err, model.ErrSourceNotFound))

	_, err = model.ImportColladaObject([]byte("not xml"))
	assert.Error(t, err)
}

func TestTransform(t *testing.T) {
	obj := loadCube(t)
	assert.Equal(t, glm.Ident4(), model.Transform(obj))

	obj.SetRotation(glm.HomogRotate3DZ(0.5))
	obj.SetPosition(glm.Translate3D(1, 2, 3))
	assert.Equal(t, glm.HomogRotate3DZ(0.5), obj.Rotation())
	assert.Equal(t, glm.Translate3D(1, 2, 3).Mul4(glm.HomogRotate3DZ(0.5)), model.Transform(obj))
}

func TestUniformMVP(t *testing.T) {
	u := model.Uniform{
		Model:      glm.Translate3D(0, 0, -2),
		View:       glm.Ident4(),
		Projection: glm.Ident4(),
	}
	assert.Equal(t, glm.Translate3D(0, 0, -2), u.MVP())
}

func TestVertexAttributes(t *testing.T) {
	obj := loadCube(t)
	data := model.VertexBytes(obj.Vertices())
	assert.Len(t, data, 36*model.VertexSize)
	assert.Equal(t, 40, model.VertexSize)

	gl := gltest.New()
	gl.Attribs["aPosition"] = 0
	gl.Attribs["aNormal"] = 1
	res := glr.NewResources(gl)
	buffer, err := res.CreateBuffer(data, 0)
	require.NoError(t, err)
	vao, err := res.CreateVertexArray()
	require.NoError(t, err)

	glr.WithVertexArray(gl, vao, func() {
		for _, a := range model.VertexAttributes(buffer) {
			require.NoError(t, glr.CreateAttribute(gl, gfx.Program{V: 1}, a))
		}
		// aColor is not used by the program
		assert.Equal(t, []gfx.Attrib{0, 1}, gl.EnabledAttribs())
		assert.Equal(t, 12, gl.Attrib(1).Offset)
		assert.Equal(t, model.VertexSize, gl.Attrib(1).Stride)
	})
	assert.Empty(t, model.VertexBytes(nil))
}
