// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Enum is a GL enumerant. Values match both OpenGL and WebGL2.
type Enum uint

const (
	ACTIVE_TEXTURE                    Enum = 0x84e0
	ARRAY_BUFFER                      Enum = 0x8892
	ARRAY_BUFFER_BINDING              Enum = 0x8894
	BLEND                             Enum = 0x0be2
	BYTE                              Enum = 0x1400
	CLAMP_TO_EDGE                     Enum = 0x812f
	COLOR_ATTACHMENT0                 Enum = 0x8ce0
	COLOR_BUFFER_BIT                  Enum = 0x4000
	COMPILE_STATUS                    Enum = 0x8b81
	DEPTH_BUFFER_BIT                  Enum = 0x0100
	DEPTH_TEST                        Enum = 0x0b71
	DYNAMIC_DRAW                      Enum = 0x88e8
	ELEMENT_ARRAY_BUFFER              Enum = 0x8893
	ELEMENT_ARRAY_BUFFER_BINDING      Enum = 0x8895
	EXTENSIONS                        Enum = 0x1f03
	FLOAT                             Enum = 0x1406
	FRAGMENT_SHADER                   Enum = 0x8b30
	FRAMEBUFFER                       Enum = 0x8d40
	FRAMEBUFFER_BINDING               Enum = 0x8ca6
	FRAMEBUFFER_COMPLETE              Enum = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT Enum = 0x8cd6
	HALF_FLOAT                        Enum = 0x140b
	INFO_LOG_LENGTH                   Enum = 0x8b84
	INT                               Enum = 0x1404
	LINEAR                            Enum = 0x2601
	LINES                             Enum = 0x0001
	LINK_STATUS                       Enum = 0x8b82
	MAX_TEXTURE_IMAGE_UNITS           Enum = 0x8872
	MAX_TEXTURE_SIZE                  Enum = 0x0d33
	MAX_VERTEX_ATTRIBS                Enum = 0x8869
	NEAREST                           Enum = 0x2600
	NO_ERROR                          Enum = 0x0000
	ONE                               Enum = 0x0001
	ONE_MINUS_SRC_ALPHA               Enum = 0x0303
	PACK_ALIGNMENT                    Enum = 0x0d05
	POINTS                            Enum = 0x0000
	R32F                              Enum = 0x822e
	RED                               Enum = 0x1903
	RENDERBUFFER                      Enum = 0x8d41
	RENDERBUFFER_BINDING              Enum = 0x8ca7
	RENDERER                          Enum = 0x1f01
	REPEAT                            Enum = 0x2901
	RGB                               Enum = 0x1907
	RGBA                              Enum = 0x1908
	RGBA16F                           Enum = 0x881a
	RGBA32F                           Enum = 0x8814
	RGBA8                             Enum = 0x8058
	SCISSOR_TEST                      Enum = 0x0c11
	SHADING_LANGUAGE_VERSION          Enum = 0x8b8c
	SHORT                             Enum = 0x1402
	SRC_ALPHA                         Enum = 0x0302
	STATIC_DRAW                       Enum = 0x88e4
	STREAM_DRAW                       Enum = 0x88e0
	TEXTURE0                          Enum = 0x84c0
	TEXTURE_2D                        Enum = 0x0de1
	TEXTURE_BINDING_2D                Enum = 0x8069
	TEXTURE_BINDING_CUBE_MAP          Enum = 0x8514
	TEXTURE_CUBE_MAP                  Enum = 0x8513
	TEXTURE_MAG_FILTER                Enum = 0x2800
	TEXTURE_MIN_FILTER                Enum = 0x2801
	TEXTURE_WRAP_S                    Enum = 0x2802
	TEXTURE_WRAP_T                    Enum = 0x2803
	TRIANGLES                         Enum = 0x0004
	TRIANGLE_STRIP                    Enum = 0x0005
	UNPACK_ALIGNMENT                  Enum = 0x0cf5
	UNSIGNED_BYTE                     Enum = 0x1401
	UNSIGNED_INT                      Enum = 0x1405
	UNSIGNED_SHORT                    Enum = 0x1403
	VENDOR                            Enum = 0x1f00
	VERSION                           Enum = 0x1f02
	VERTEX_ARRAY_BINDING              Enum = 0x85b5
	VERTEX_SHADER                     Enum = 0x8b31
)
