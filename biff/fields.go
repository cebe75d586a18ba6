package biff

import "bytes"

// Field binds a record tag to a location in a decoded value. A list of fields,
// in the order the encoder writes them, describes a whole record stream; the
// initial contents of the bound locations act as defaults for tags that are
// absent from the input.
type Field struct {
	Tag   string
	Read  func(r *Reader) error
	Write func(w *Writer)
	// Skip, if set, consumes a value without storing it. It is required
	// for values that extend past the length of their record, so that a
	// repeated occurrence can be preserved as an unknown record.
	Skip func(r *Reader) error

	// Set by Repeated.
	count   func() int
	writeAt func(w *Writer, i int)
}

func Bool(tag string, v *bool) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.Bool(); return },
		Write: func(w *Writer) { w.Bool(tag, *v) },
	}
}

func U32(tag string, v *uint32) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.U32(); return },
		Write: func(w *Writer) { w.U32(tag, *v) },
	}
}

func I32(tag string, v *int32) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.I32(); return },
		Write: func(w *Writer) { w.I32(tag, *v) },
	}
}

func F32(tag string, v *float32) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.F32(); return },
		Write: func(w *Writer) { w.F32(tag, *v) },
	}
}

// Str binds a length-prefixed 8-bit string.
func Str(tag string, v *String) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.String(); return },
		Write: func(w *Writer) { w.String(tag, *v) },
	}
}

// Wide binds a length-prefixed UTF-16LE string.
func Wide(tag string, v *string) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.WideString(); return },
		Write: func(w *Writer) { w.WideString(tag, *v) },
	}
}

// Raw binds the whole payload as bytes.
func Raw(tag string, v *[]byte) Field {
	return Field{
		Tag:   tag,
		Read:  func(r *Reader) (err error) { *v, err = r.Rest(); return },
		Write: func(w *Writer) { w.Record(tag, *v) },
	}
}

// Optional binds a tag that may be absent. A nil pointer is not written; a
// present tag allocates the value.
func Optional[T any](tag string, p **T, field func(string, *T) Field) Field {
	return Field{
		Tag: tag,
		Read: func(r *Reader) error {
			v := new(T)
			if err := field(tag, v).Read(r); err != nil {
				return err
			}
			*p = v
			return nil
		},
		Write: func(w *Writer) {
			if *p != nil {
				field(tag, *p).Write(w)
			}
		},
	}
}

// Repeated binds a tag that may occur any number of times. Values are
// appended in the order they are read and written in slice order.
func Repeated[T any](tag string, s *[]T, read func(r *Reader) (T, error), write func(w *Writer, tag string, v T)) Field {
	return Field{
		Tag: tag,
		Read: func(r *Reader) error {
			v, err := read(r)
			if err != nil {
				return err
			}
			*s = append(*s, v)
			return nil
		},
		Write: func(w *Writer) {
			for _, v := range *s {
				write(w, tag, v)
			}
		},
		count:   func() int { return len(*s) },
		writeAt: func(w *Writer, i int) { write(w, tag, (*s)[i]) },
	}
}

// Layout records the order of the records of a decoded stream, so that
// encoding the value again reproduces the stream. The zero Layout, as held
// by a value that was not decoded, writes every field in table order.
type Layout struct {
	// Unknown holds the records that no field accepted, in the order they
	// were read. Records appended to a decoded Layout are written at the end
	// of the stream.
	Unknown []Unknown

	decoded bool
	slots   []slot
	// absent holds the encoding, at the time of decoding, of each field
	// whose tag did not occur. Such a field is written only once its
	// encoding changes.
	absent map[string][]byte
}

type slot struct {
	tag     string
	unknown int // Index into Unknown, or -1 for a field.
}

// Decoded returns whether l was filled by DecodeFields.
func (l Layout) Decoded() bool {
	return l.decoded
}

// DecodeFields reads records from r until the end of the stream or an ENDB
// record, dispatching each one to the field with a matching tag. Records
// without a field, and repeats of a field that is not Repeated, are kept in
// layout and reported as warnings.
func DecodeFields(r *Reader, fields []Field, layout *Layout) error {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Tag] = i
	}
	*layout = Layout{decoded: true}
	seen := make(map[string]bool, len(fields))
	var last string
	for r.Next() {
		tag := r.Tag()
		i, known := index[tag]
		if known && (!seen[tag] || fields[i].count != nil) {
			if err := fields[i].Read(r); err != nil {
				return r.fail(err)
			}
			seen[tag] = true
			layout.slots = append(layout.slots, slot{tag: tag, unknown: -1})
			last = tag
			continue
		}
		offset := r.Offset()
		u := Unknown{After: last, Tag: tag}
		var err error
		switch {
		case known && fields[i].Skip != nil:
			start := r.Pos()
			if err := fields[i].Skip(r); err != nil {
				return r.fail(err)
			}
			u.Data = append([]byte(nil), r.data[start:r.Pos()]...)
			u.Unframed = true
		default:
			u.Data, err = r.Rest()
		}
		if err != nil {
			return err
		}
		if known {
			r.Warn(DuplicateTagWarning{Offset: offset, Tag: tag})
		} else {
			r.Warn(UnknownTagWarning{Offset: offset, Tag: tag, Size: len(u.Data)})
		}
		layout.slots = append(layout.slots, slot{tag: tag, unknown: len(layout.Unknown)})
		layout.Unknown = append(layout.Unknown, u)
	}
	if r.Err() != nil {
		return r.Err()
	}
	layout.absent = make(map[string][]byte)
	for _, f := range fields {
		if !seen[f.Tag] {
			layout.absent[f.Tag], _ = encodeField(f)
		}
	}
	return nil
}

func encodeField(f Field) ([]byte, error) {
	w := NewWriter()
	f.Write(w)
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// EncodeFields writes fields. A decoded layout is replayed: fields and
// unknown records are written in the order they were read, and fields that
// were absent stay absent unless their value changed, in which case they are
// written at the end. Repeated values beyond those that were read follow the
// last one read.
//
// With a zero layout, fields are written in order, and each unknown record
// is written after the field whose tag it names in After; those whose field
// was not written are appended at the end.
func EncodeFields(w *Writer, fields []Field, layout Layout) {
	if !layout.decoded {
		encodeOrdered(w, fields, layout.Unknown)
		return
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Tag] = i
	}
	final := make(map[string]int)
	replayed := 0
	for i, s := range layout.slots {
		if s.unknown < 0 {
			final[s.tag] = i
		} else {
			replayed++
		}
	}
	occurrence := make(map[string]int)
	for i, s := range layout.slots {
		if s.unknown >= 0 {
			if s.unknown < len(layout.Unknown) {
				layout.Unknown[s.unknown].write(w)
			}
			continue
		}
		j, ok := index[s.tag]
		if !ok {
			continue
		}
		f := fields[j]
		if f.count == nil {
			f.Write(w)
			continue
		}
		n, k := f.count(), occurrence[s.tag]
		occurrence[s.tag]++
		if k < n {
			f.writeAt(w, k)
		}
		if final[s.tag] == i {
			for k++; k < n; k++ {
				f.writeAt(w, k)
			}
		}
	}
	for _, f := range fields {
		before, ok := layout.absent[f.Tag]
		if !ok {
			continue
		}
		b, err := encodeField(f)
		if err != nil {
			if w.err == nil {
				w.err = err
			}
			return
		}
		if !bytes.Equal(b, before) {
			w.RawBytes(b)
		}
	}
	for i := replayed; i < len(layout.Unknown); i++ {
		layout.Unknown[i].write(w)
	}
}

func encodeOrdered(w *Writer, fields []Field, unknown []Unknown) {
	written := make(map[string]bool, len(fields))
	flush := func(after string) {
		for _, u := range unknown {
			if u.After == after {
				u.write(w)
			}
		}
	}
	flush("")
	for _, f := range fields {
		n := w.Len()
		f.Write(w)
		if w.Len() > n && !written[f.Tag] {
			written[f.Tag] = true
			flush(f.Tag)
		}
	}
	for _, u := range unknown {
		if u.After != "" && !written[u.After] {
			u.write(w)
		}
	}
}
