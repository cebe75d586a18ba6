package biff

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding indicates how the bytes of a String were, and will be, encoded.
type Encoding uint8

const (
	// UTF8 text is stored as-is.
	UTF8 Encoding = iota
	// Latin1 text is stored in the Windows-1252 code page, the legacy 8-bit
	// encoding used by older tables.
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case Latin1:
		return "Latin-1"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// String is 8-bit text together with the encoding it was read with. Keeping
// the encoding ensures that untouched text is written back with the exact
// bytes it was read from.
type String struct {
	Text     string
	Encoding Encoding
}

// NewString returns a UTF-8 String.
func NewString(text string) String {
	return String{Text: text}
}

func (s String) String() string {
	return s.Text
}

// DecodeString decodes 8-bit text. Valid UTF-8 is kept as UTF8; anything else
// is decoded from Windows-1252 and flagged as Latin1.
func DecodeString(b []byte) String {
	if utf8.Valid(b) {
		return String{Text: string(b), Encoding: UTF8}
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = decodeLatin1(c)
	}
	return String{Text: string(runes), Encoding: Latin1}
}

// EncodeString is the inverse of DecodeString.
func EncodeString(s String) ([]byte, error) {
	switch s.Encoding {
	case UTF8:
		return []byte(s.Text), nil
	case Latin1:
		b := make([]byte, 0, len(s.Text))
		for _, r := range s.Text {
			c, ok := encodeLatin1(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not representable in %s", ErrUnsupportedEncoding, s.Text, s.Encoding)
			}
			b = append(b, c)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, s.Encoding)
}

// Windows-1252 leaves 0x81, 0x8D, 0x8F, 0x90 and 0x9D unassigned. They are
// decoded to the C1 control characters with the same value and encoded back
// from them, so that every byte survives a round trip.

func decodeLatin1(c byte) rune {
	if r := charmap.Windows1252.DecodeByte(c); r != utf8.RuneError {
		return r
	}
	return rune(c)
}

func encodeLatin1(r rune) (byte, bool) {
	if c, ok := charmap.Windows1252.EncodeRune(r); ok {
		return c, true
	}
	if r >= 0x80 && r < 0xA0 && charmap.Windows1252.DecodeByte(byte(r)) == utf8.RuneError {
		return byte(r), true
	}
	return 0, false
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeWide decodes UTF-16LE text. Odd lengths and unpaired surrogates are
// reported as ErrUnsupportedEncoding.
func DecodeWide(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd UTF-16 byte count %d", ErrUnsupportedEncoding, len(b))
	}
	for i := 0; i < len(b); i += 2 {
		u := rune(b[i]) | rune(b[i+1])<<8
		if !utf16.IsSurrogate(u) {
			continue
		}
		if u >= 0xDC00 || i+3 >= len(b) {
			return "", fmt.Errorf("%w: unpaired surrogate at %d", ErrUnsupportedEncoding, i)
		}
		lo := rune(b[i+2]) | rune(b[i+3])<<8
		if lo < 0xDC00 || lo > 0xDFFF {
			return "", fmt.Errorf("%w: unpaired surrogate at %d", ErrUnsupportedEncoding, i)
		}
		i += 2
	}
	text, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, err)
	}
	return string(text), nil
}

// EncodeWide encodes text as UTF-16LE without a byte order mark.
func EncodeWide(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrUnsupportedEncoding, s)
	}
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, err)
	}
	return b, nil
}
