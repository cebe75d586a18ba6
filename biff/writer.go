package biff

import (
	"bytes"
	"fmt"

	"github.com/anaminus/parse"
)

// Writer builds a BIFF stream in memory. Errors are sticky: after the first
// failure every method is a no-op and Close reports the error.
type Writer struct {
	buf bytes.Buffer
	fw  *parse.BinaryWriter
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.fw = parse.NewBinaryWriter(&w.buf)
	return w
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Err returns the first error encountered by the writer.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err as a failure to write the record with the given tag,
// unless the writer has already failed.
func (w *Writer) Fail(tag string, err error) {
	w.fail(tag, err)
}

func (w *Writer) fail(tag string, cause error) {
	if w.err == nil {
		w.err = RecordError{Offset: int64(w.buf.Len()), Tag: tag, Cause: cause}
	}
}

func (w *Writer) number(tag string, v interface{}) {
	if w.err != nil {
		return
	}
	if w.fw.Number(v) {
		w.fail(tag, w.fw.Err())
	}
}

func (w *Writer) bytes(tag string, b []byte) {
	if w.err != nil {
		return
	}
	if w.fw.Bytes(b) {
		w.fail(tag, w.fw.Err())
	}
}

func (w *Writer) header(tag string, length uint32) bool {
	if len(tag) != TagSize {
		w.fail(tag, fmt.Errorf("%w: tag must be %d bytes", ErrMalformedRecord, TagSize))
		return false
	}
	w.number(tag, length)
	w.bytes(tag, []byte(tag))
	return w.err == nil
}

// RawU32 writes an untagged 32-bit integer, for headers that precede the
// first record.
func (w *Writer) RawU32(v uint32) {
	w.number("", v)
}

// RawBytes writes untagged bytes.
func (w *Writer) RawBytes(b []byte) {
	w.bytes("", b)
}

// Record writes a record with the given payload. Tags listed in
// LengthAfterTag get their length after the tag.
func (w *Writer) Record(tag string, payload []byte) {
	if LengthAfterTag[tag] {
		if !w.header(tag, TagSize) {
			return
		}
		w.number(tag, uint32(len(payload)))
		w.bytes(tag, payload)
		return
	}
	if !w.header(tag, uint32(len(payload)+TagSize)) {
		return
	}
	w.bytes(tag, payload)
}

// Unframed writes a record whose declared length covers only the tag, followed
// by payload bytes that the length does not account for.
func (w *Writer) Unframed(tag string, payload []byte) {
	if !w.header(tag, TagSize) {
		return
	}
	w.bytes(tag, payload)
}

// Child writes tag followed by a nested sub-stream produced by fn. The
// sub-stream is terminated with ENDB.
func (w *Writer) Child(tag string, fn func(w *Writer)) {
	if w.err != nil {
		return
	}
	c := NewWriter()
	fn(c)
	b, err := c.Close(true)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return
	}
	w.Unframed(tag, b)
}

func (w *Writer) Bool(tag string, v bool) {
	var n uint32
	if v {
		n = 1
	}
	w.U32(tag, n)
}

func (w *Writer) U32(tag string, v uint32) {
	if w.header(tag, TagSize+4) {
		w.number(tag, v)
	}
}

func (w *Writer) I32(tag string, v int32) {
	if w.header(tag, TagSize+4) {
		w.number(tag, v)
	}
}

func (w *Writer) F32(tag string, v float32) {
	if w.header(tag, TagSize+4) {
		w.number(tag, v)
	}
}

// String writes a length-prefixed 8-bit string in its recorded encoding.
func (w *Writer) String(tag string, s String) {
	if w.err != nil {
		return
	}
	b, err := EncodeString(s)
	if err != nil {
		w.fail(tag, err)
		return
	}
	if w.header(tag, uint32(TagSize+4+len(b))) {
		w.number(tag, uint32(len(b)))
		w.bytes(tag, b)
	}
}

// WideString writes a length-prefixed UTF-16LE string.
func (w *Writer) WideString(tag string, s string) {
	if w.err != nil {
		return
	}
	b, err := EncodeWide(s)
	if err != nil {
		w.fail(tag, err)
		return
	}
	if w.header(tag, uint32(TagSize+4+len(b))) {
		w.number(tag, uint32(len(b)))
		w.bytes(tag, b)
	}
}

// Close optionally appends the ENDB record and returns the finished stream.
func (w *Writer) Close(end bool) ([]byte, error) {
	if end {
		w.header(EndTag, TagSize)
	}
	if w.err != nil {
		return nil, w.err
	}
	if _, err := w.fw.End(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}
