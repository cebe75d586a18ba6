package vpxtype

import (
	"bytes"
	"testing"
)

func TestColorEncodings(t *testing.T) {
	raw := []byte{0x11, 0x22, 0x33, 0x44}

	argb, err := DecodeARGB(raw)
	if err != nil {
		t.Fatal(err)
	}
	if argb != (Color{A: 0x44, R: 0x33, G: 0x22, B: 0x11}) {
		t.Errorf("unexpected ARGB color %v", argb)
	}
	if b := EncodeARGB(argb); !bytes.Equal(b[:], raw) {
		t.Errorf("ARGB re-encode mismatch: % X", b)
	}

	bgr, err := DecodeBGR(raw)
	if err != nil {
		t.Fatal(err)
	}
	if bgr != (Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}) {
		t.Errorf("unexpected BGR color %v", bgr)
	}
	if b := EncodeBGR(bgr); !bytes.Equal(b[:], raw) {
		t.Errorf("BGR re-encode mismatch: % X", b)
	}

	if _, err := DecodeBGR(raw[:3]); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestVertices(t *testing.T) {
	v2 := Vertex2D{X: 1.5, Y: -2}
	if got, err := DecodeVertex2D(EncodeVertex2D(v2)); err != nil || got != v2 {
		t.Errorf("vertex2d round trip: %v %v", got, err)
	}

	v3 := Vertex3D{X: 1, Y: 2, Z: 3}
	if got, err := DecodeVertex3D(EncodeVertex3D(v3)); err != nil || got != v3 {
		t.Errorf("vertex3d round trip: %v %v", got, err)
	}

	padded := EncodeVertex3DPadded(v3)
	if len(padded) != Vertex3DPaddedSize {
		t.Fatalf("padded length %d", len(padded))
	}
	padded[12] = 0xFF // padding is ignored
	if got, err := DecodeVertex3DPadded(padded); err != nil || got != v3 {
		t.Errorf("padded vertex3d round trip: %v %v", got, err)
	}
	if _, err := DecodeVertex3DPadded(padded[:12]); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestFont(t *testing.T) {
	f := Font{Version: 1, Charset: 1, Style: FontItalic, Weight: 700, Size: 240000, Name: "Tahoma"}
	b, err := EncodeFont(f)
	if err != nil {
		t.Fatal(err)
	}
	b = append(b, 0xAA, 0xBB) // trailing data belongs to the next record
	got, n, err := DecodeFont(b)
	if err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("expected %#v, got %#v", f, got)
	}
	if n != len(b)-2 {
		t.Errorf("expected %d bytes consumed, got %d", len(b)-2, n)
	}
	if _, _, err := DecodeFont(b[:12]); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}
