// Package biff implements the tagged record layer of the VPX table format.
//
// A BIFF stream is a sequence of records. Each record starts with a 32-bit
// little-endian length, followed by a four character ASCII tag and a payload.
// The length counts the tag and the payload, so a record with an empty
// payload has a length of 4. A stream, or a nested sub-stream, ends with an
// ENDB record.
//
//     +--------+------+-----------------+
//     | length | tag  | payload         |
//     | u32    | [4]  | length-4 bytes  |
//     +--------+------+-----------------+
//
// Some tags do not follow this layout:
//
// CODE records carry a length of 4, and the real payload length is stored as
// a second u32 directly after the tag. The set of such tags is configurable
// through LengthAfterTag.
//
// Records such as DPNT or JPEG have a length of 4 and are followed by an
// unframed sub-stream that ends with its own ENDB record. These are decoded by
// opening a child Reader with Reader.Child, and accounted for afterwards with
// Reader.Consume.
//
// Reader and Writer operate on in-memory byte slices. Neither is safe for
// concurrent use, but independent streams can be decoded concurrently.
package biff

// EndTag marks the end of a stream or sub-stream.
const EndTag = "ENDB"

// CodeTag holds the table script.
const CodeTag = "CODE"

// TagSize is the size of a record tag.
const TagSize = 4

// LengthAfterTag lists the tags whose payload length is stored after the tag
// rather than before it. The length before such tags is always 4.
var LengthAfterTag = map[string]bool{
	CodeTag: true,
}

// Record is a single undecoded record.
type Record struct {
	Tag  string
	Data []byte
}

// Unknown is a record that a decoder did not recognize. It is kept so that it
// can be written back unchanged.
type Unknown struct {
	// After is the tag of the last recognized record that preceded this
	// record, or empty if no recognized record preceded it. The encoder uses
	// it to put the record back in place.
	After string
	Tag   string
	Data  []byte
	// Unframed is set when Data follows a record whose length covers only
	// the tag, as with a nested sub-stream.
	Unframed bool
}

func (u Unknown) write(w *Writer) {
	if u.Unframed {
		w.Unframed(u.Tag, u.Data)
		return
	}
	w.Record(u.Tag, u.Data)
}
