package vpxtype

import (
	"encoding/binary"
	"errors"
	"strconv"
)

// Font style flags.
const (
	FontItalic    = 0x02
	FontUnderline = 0x04
	FontStrikeout = 0x08
)

// Font describes a text font as persisted by the OLE standard font object.
// Items such as text boxes store it directly after their FONT tag without
// length framing.
type Font struct {
	// Version of the persisted layout; always 1 in practice.
	Version uint8
	Charset uint16
	Style   uint8
	Weight  uint16
	// Size is the point size multiplied by 10000.
	Size uint32
	// Name is the face name in the system code page.
	Name string
}

// DefaultFont is the font assigned to newly created text items.
var DefaultFont = Font{
	Version: 1,
	Charset: 0,
	Style:   0,
	Weight:  400,
	Size:    142500,
	Name:    "Arial",
}

func (Font) TypeString() string {
	return "Font"
}
func (t Font) String() string {
	return joinstr(t.Name, " ", strconv.FormatFloat(float64(t.Size)/10000, 'f', -1, 64), "pt")
}

const fontHeaderSize = 11

var ErrFontName = errors.New("font name longer than 255 bytes")

// DecodeFont decodes a persisted font from the start of b, returning the font
// and the number of bytes it occupied.
func DecodeFont(b []byte) (f Font, n int, err error) {
	if len(b) < fontHeaderSize {
		return Font{}, 0, ErrShortBuffer
	}
	f.Version = b[0]
	f.Charset = binary.LittleEndian.Uint16(b[1:])
	f.Style = b[3]
	f.Weight = binary.LittleEndian.Uint16(b[4:])
	f.Size = binary.LittleEndian.Uint32(b[6:])
	nameLen := int(b[10])
	if len(b) < fontHeaderSize+nameLen {
		return Font{}, 0, ErrShortBuffer
	}
	f.Name = string(b[fontHeaderSize : fontHeaderSize+nameLen])
	return f, fontHeaderSize + nameLen, nil
}

// EncodeFont is the inverse of DecodeFont.
func EncodeFont(f Font) ([]byte, error) {
	if len(f.Name) > 255 {
		return nil, ErrFontName
	}
	b := make([]byte, fontHeaderSize+len(f.Name))
	b[0] = f.Version
	binary.LittleEndian.PutUint16(b[1:], f.Charset)
	b[3] = f.Style
	binary.LittleEndian.PutUint16(b[4:], f.Weight)
	binary.LittleEndian.PutUint32(b[6:], f.Size)
	b[10] = byte(len(f.Name))
	copy(b[fontHeaderSize:], f.Name)
	return b, nil
}
