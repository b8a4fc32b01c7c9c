// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !js
// +build !js

package glcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateSource(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"es header", "#version 300 es\nvoid main() {}\n", "#version 330 core\nvoid main() {}\n"},
		{"leading blank line", "\n  #version 300 es\nin vec2 a_pos;", "#version 330 core\nin vec2 a_pos;"},
		{"core header", "#version 330 core\n", "#version 330 core\n"},
		{"no header", "void main() {}", "void main() {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateSource(tt.src))
		})
	}
}
