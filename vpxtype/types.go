// The vpxtype package implements in-memory representations of the small value
// types stored inside VPX records, along with their fixed-width byte
// encodings.
//
// The functions in this package operate on byte slices only. They do not know
// about record framing; the biff package is responsible for handing them the
// right number of bytes.
package vpxtype

import (
	"encoding/binary"
	"errors"
	"math"
	"strconv"
)

var ErrShortBuffer = errors.New("buffer too short for value")

// Type holds a value of a particular VPX type.
type Type interface {
	// TypeString returns the name of the type.
	TypeString() string

	// String returns a string representation of the type's current value.
	String() string
}

func joinstr(a ...string) string {
	n := 0
	for i := 0; i < len(a); i++ {
		n += len(a[i])
	}
	b := make([]byte, 0, n)
	for _, s := range a {
		b = append(b, s...)
	}
	return string(b)
}

func fstr(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

////////////////////////////////////////////////////////////////

// Color is an 8-bit per channel color. A holds the fourth byte of the encoded
// value; for BGR colors it is normally zero but is kept as read.
type Color struct {
	R, G, B, A uint8
}

func (Color) TypeString() string {
	return "Color"
}
func (t Color) String() string {
	return joinstr(
		strconv.Itoa(int(t.R)), ", ",
		strconv.Itoa(int(t.G)), ", ",
		strconv.Itoa(int(t.B)), ", ",
		strconv.Itoa(int(t.A)),
	)
}

// RGB returns a color with the given channels and a zero fourth byte.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// DecodeARGB decodes a little-endian 0xAARRGGBB value.
func DecodeARGB(b []byte) (Color, error) {
	if len(b) < 4 {
		return Color{}, ErrShortBuffer
	}
	return Color{B: b[0], G: b[1], R: b[2], A: b[3]}, nil
}

// EncodeARGB is the inverse of DecodeARGB.
func EncodeARGB(c Color) [4]byte {
	return [4]byte{c.B, c.G, c.R, c.A}
}

// DecodeBGR decodes a little-endian 0x00BBGGRR value, the layout of a Windows
// COLORREF.
func DecodeBGR(b []byte) (Color, error) {
	if len(b) < 4 {
		return Color{}, ErrShortBuffer
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// EncodeBGR is the inverse of DecodeBGR.
func EncodeBGR(c Color) [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

////////////////////////////////////////////////////////////////

type Vertex2D struct {
	X, Y float32
}

func (Vertex2D) TypeString() string {
	return "Vertex2D"
}
func (t Vertex2D) String() string {
	return joinstr(fstr(t.X), ", ", fstr(t.Y))
}

const Vertex2DSize = 8

func DecodeVertex2D(b []byte) (Vertex2D, error) {
	if len(b) < Vertex2DSize {
		return Vertex2D{}, ErrShortBuffer
	}
	return Vertex2D{X: f32(b[0:]), Y: f32(b[4:])}, nil
}

func EncodeVertex2D(v Vertex2D) []byte {
	b := make([]byte, Vertex2DSize)
	putf32(b[0:], v.X)
	putf32(b[4:], v.Y)
	return b
}

////////////////

type Vertex3D struct {
	X, Y, Z float32
}

func (Vertex3D) TypeString() string {
	return "Vertex3D"
}
func (t Vertex3D) String() string {
	return joinstr(fstr(t.X), ", ", fstr(t.Y), ", ", fstr(t.Z))
}

const (
	// Vertex3DSize is the size of an unaligned vertex.
	Vertex3DSize = 12
	// Vertex3DPaddedSize is the size of a vertex followed by one padding
	// float.
	Vertex3DPaddedSize = 16
)

func DecodeVertex3D(b []byte) (Vertex3D, error) {
	if len(b) < Vertex3DSize {
		return Vertex3D{}, ErrShortBuffer
	}
	return Vertex3D{X: f32(b[0:]), Y: f32(b[4:]), Z: f32(b[8:])}, nil
}

func EncodeVertex3D(v Vertex3D) []byte {
	b := make([]byte, Vertex3DSize)
	putf32(b[0:], v.X)
	putf32(b[4:], v.Y)
	putf32(b[8:], v.Z)
	return b
}

// DecodeVertex3DPadded decodes a vertex and discards the trailing padding
// float.
func DecodeVertex3DPadded(b []byte) (Vertex3D, error) {
	if len(b) < Vertex3DPaddedSize {
		return Vertex3D{}, ErrShortBuffer
	}
	return DecodeVertex3D(b)
}

// EncodeVertex3DPadded encodes a vertex followed by a zero padding float.
func EncodeVertex3DPadded(v Vertex3D) []byte {
	b := make([]byte, Vertex3DPaddedSize)
	copy(b, EncodeVertex3D(v))
	return b
}

func f32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putf32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
