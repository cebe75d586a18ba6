package biff

import (
	"bytes"

	"github.com/anaminus/parse"
	"github.com/francisdb/vpxtool/errors"
)

// Reader walks the records of a BIFF stream held in memory.
//
// Before the first call to Next, typed reads consume bytes from the start of
// the stream without record bounds; this is used for headers that precede
// the first record, such as the item type of a game item stream. After Next,
// typed reads are bounded by the payload of the current record.
type Reader struct {
	data []byte
	fr   *parse.BinaryReader

	tag       string
	offset    int64
	remaining int
	framed    bool
	ended     bool
	all       bool
	err       error

	warns *errors.Errors
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:  data,
		fr:    parse.NewBinaryReader(bytes.NewReader(data)),
		warns: new(errors.Errors),
	}
}

// Pos returns the number of bytes consumed from the stream.
func (r *Reader) Pos() int {
	return int(r.fr.N())
}

// Len returns the number of unconsumed bytes in the stream.
func (r *Reader) Len() int {
	return len(r.data) - r.Pos()
}

// EOF returns whether every byte of the stream has been consumed.
func (r *Reader) EOF() bool {
	return r.Len() <= 0
}

// Tag returns the tag of the current record.
func (r *Reader) Tag() string {
	return r.tag
}

// Remaining returns the number of unread payload bytes of the current record.
func (r *Reader) Remaining() int {
	return r.budget()
}

// Ended returns whether the reader stopped at an ENDB record.
func (r *Reader) Ended() bool {
	return r.ended
}

// Err returns the first error encountered by the reader.
func (r *Reader) Err() error {
	return r.err
}

// Warn adds a warning to the reader's warning list. Child readers share the
// list of their parent.
func (r *Reader) Warn(err error) {
	*r.warns = r.warns.Append(err)
}

// Warnings returns the accumulated warnings, or nil if there are none.
func (r *Reader) Warnings() error {
	return r.warns.Return()
}

func (r *Reader) fail(cause error) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := cause.(RecordError); ok {
		r.err = cause
		return r.err
	}
	r.err = RecordError{Offset: int64(r.Pos()), Tag: r.tag, Cause: cause}
	return r.err
}

func (r *Reader) budget() int {
	if !r.framed {
		return r.Len()
	}
	return r.remaining
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if n < 0 || n > r.budget() || n > r.Len() {
		return nil, r.fail(ErrTruncatedRecord)
	}
	b := make([]byte, n)
	if r.fr.Bytes(b) {
		return nil, r.fail(r.fr.Err())
	}
	if r.framed {
		r.remaining -= n
	}
	return b, nil
}

func (r *Reader) number(size int, v interface{}) error {
	if r.err != nil {
		return r.err
	}
	if size > r.budget() || size > r.Len() {
		return r.fail(ErrTruncatedRecord)
	}
	if r.fr.Number(v) {
		return r.fail(r.fr.Err())
	}
	if r.framed {
		r.remaining -= size
	}
	return nil
}

// Next advances to the next record, skipping whatever is left of the current
// one. It returns false when the stream is exhausted, when an ENDB record is
// reached, or when an error occurs, in which case Err returns the error.
func (r *Reader) Next() bool {
	if r.err != nil || (r.ended && !r.all) {
		return false
	}
	if r.framed && r.remaining > 0 {
		if _, err := r.take(r.remaining); err != nil {
			return false
		}
	}
	r.framed = true
	r.remaining = 0
	r.tag = ""
	if r.EOF() {
		return false
	}

	r.offset = int64(r.Pos())
	if r.Len() < 4+TagSize {
		r.fail(ErrTruncatedRecord)
		return false
	}
	var length uint32
	if r.fr.Number(&length) {
		r.fail(r.fr.Err())
		return false
	}
	var tag [TagSize]byte
	if r.fr.Bytes(tag[:]) {
		r.fail(r.fr.Err())
		return false
	}
	r.tag = string(tag[:])
	if length < TagSize {
		r.err = RecordError{Offset: r.offset, Tag: r.tag, Cause: ErrMalformedRecord}
		return false
	}
	r.remaining = int(length - TagSize)

	if LengthAfterTag[r.tag] {
		r.remaining = 4
		var n uint32
		if r.number(4, &n) != nil {
			return false
		}
		r.remaining = int(n)
	}
	if r.remaining > r.Len() {
		r.err = RecordError{Offset: r.offset, Tag: r.tag, Cause: ErrTruncatedRecord}
		return false
	}

	if r.tag == EndTag {
		r.ended = true
		return r.all
	}
	return true
}

// Offset returns the offset of the header of the current record.
func (r *Reader) Offset() int64 {
	return r.offset
}

func (r *Reader) U8() (v uint8, err error) {
	err = r.number(1, &v)
	return v, err
}

func (r *Reader) U16() (v uint16, err error) {
	err = r.number(2, &v)
	return v, err
}

func (r *Reader) U32() (v uint32, err error) {
	err = r.number(4, &v)
	return v, err
}

func (r *Reader) I32() (v int32, err error) {
	err = r.number(4, &v)
	return v, err
}

func (r *Reader) F32() (v float32, err error) {
	err = r.number(4, &v)
	return v, err
}

// Bool reads a boolean stored as a 32-bit integer.
func (r *Reader) Bool() (bool, error) {
	v, err := r.U32()
	return v != 0, err
}

// Bytes reads n bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// Rest reads the unread payload of the current record.
func (r *Reader) Rest() ([]byte, error) {
	return r.take(r.budget())
}

// Skip discards the unread payload of the current record.
func (r *Reader) Skip() error {
	_, err := r.take(r.budget())
	return err
}

// String reads a length-prefixed 8-bit string.
func (r *Reader) String() (String, error) {
	n, err := r.U32()
	if err != nil {
		return String{}, err
	}
	b, err := r.take(int(n))
	if err != nil {
		return String{}, err
	}
	return DecodeString(b), nil
}

// WideString reads a length-prefixed UTF-16LE string. The prefix counts
// bytes.
func (r *Reader) WideString() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	s, err := DecodeWide(b)
	if err != nil {
		return "", r.fail(err)
	}
	return s, nil
}

// Child returns a reader over the bytes following the cursor, up to the end
// of the stream. The child shares the warning list of r. Once the child is
// done, the parent must be advanced with Consume(child.Pos()).
func (r *Reader) Child() *Reader {
	rest := r.data[r.Pos():]
	return &Reader{
		data:  rest,
		fr:    parse.NewBinaryReader(bytes.NewReader(rest)),
		warns: r.warns,
	}
}

// Consume advances the cursor by n bytes that were read by a child. Bytes
// consumed beyond the payload of the current record are not charged against
// the next record.
func (r *Reader) Consume(n int) error {
	if r.err != nil {
		return r.err
	}
	if n < 0 || n > r.Len() {
		return r.fail(ErrTruncatedRecord)
	}
	if r.fr.Bytes(make([]byte, n)) {
		return r.fail(r.fr.Err())
	}
	if r.framed {
		r.remaining -= n
		if r.remaining < 0 {
			r.remaining = 0
		}
	}
	return nil
}
