package biff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates a record header that cannot be valid, such as a length
	// smaller than the tag.
	ErrMalformedRecord = errors.New("malformed record")
	// Indicates a read past the end of the current record or past the end of
	// the stream.
	ErrTruncatedRecord = errors.New("truncated record")
	// Indicates text that cannot be decoded or encoded with the required
	// encoding, such as unpaired UTF-16 surrogates.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// RecordError wraps an error that occurred while reading or writing a record.
type RecordError struct {
	// Offset is the byte offset within the stream where the error occurred.
	// A negative offset is not displayed.
	Offset int64
	// Tag is the tag of the current record, if known.
	Tag string

	Cause error
}

func (err RecordError) Error() string {
	var s strings.Builder
	s.WriteString("record")
	if err.Tag != "" {
		s.WriteString(" ")
		s.WriteString(strconv.Quote(err.Tag))
	}
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err RecordError) Unwrap() error {
	return err.Cause
}

// UnknownTagWarning reports a record that was preserved without being
// interpreted.
type UnknownTagWarning struct {
	Offset int64
	Tag    string
	Size   int
}

func (w UnknownTagWarning) Error() string {
	return fmt.Sprintf("unknown tag %q (%d bytes) at %d", w.Tag, w.Size, w.Offset)
}

// DuplicateTagWarning reports a repeat of a tag that holds a single value. The
// first occurrence is decoded; the repeat is preserved without being
// interpreted.
type DuplicateTagWarning struct {
	Offset int64
	Tag    string
}

func (w DuplicateTagWarning) Error() string {
	return fmt.Sprintf("duplicate tag %q at %d", w.Tag, w.Offset)
}
