// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/devblok/glsketch/utility/kar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	for name, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	}
}

func TestCompressExtractList(t *testing.T) {
	dir, err := ioutil.TempDir("", "karcmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	files := map[string]string{
		"shaders/quad.vert":   "#version 300 es\nvoid main() {}\n",
		"textures/readme.txt": "tiles",
		"top.txt":             "top level",
	}
	src := filepath.Join(dir, "src")
	writeTree(t, src, files)

	archive := filepath.Join(dir, "assets.kar")
	require.NoError(t, compressFiles(src, archive, kar.Header{Author: "tester", Version: 2}))
	assert.Error(t, compressFiles(src, archive, kar.Header{}), "existing archives are not overwritten")

	var listing bytes.Buffer
	require.NoError(t, listFiles(archive, &listing))
	assert.Contains(t, listing.String(), "author: tester, version: 2")
	assert.Contains(t, listing.String(), "shaders/quad.vert")

	out := filepath.Join(dir, "out")
	require.NoError(t, extractFiles(archive, out))
	for name, contents := range files {
		data, err := ioutil.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, contents, string(data))
	}
}

func TestCompressSingleFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "karcmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writeTree(t, dir, map[string]string{"cube.dae": "<COLLADA/>"})
	archive := filepath.Join(dir, "one.kar")
	require.NoError(t, compressFiles(filepath.Join(dir, "cube.dae"), archive, kar.Header{}))

	ar, err := kar.OpenFile(archive)
	require.NoError(t, err)
	defer ar.Close()
	assert.Equal(t, []string{"cube.dae"}, ar.List())
}
